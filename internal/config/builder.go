package config

import (
	"io"

	"github.com/lgbarn/chessboard-go/internal/chess"
)

// ConfigBuilder provides a fluent API for building Config instances.
type ConfigBuilder struct {
	cfg *Config
}

// NewConfigBuilder creates a new ConfigBuilder with default values.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		cfg: NewConfig(),
	}
}

// Build returns the built Config.
func (b *ConfigBuilder) Build() *Config {
	return b.cfg
}

// WithLayout sets the start-up layout.
func (b *ConfigBuilder) WithLayout(layout chess.Layout) *ConfigBuilder {
	b.cfg.Layout = layout
	return b
}

// WithOutputFormat sets the move list format.
func (b *ConfigBuilder) WithOutputFormat(format OutputFormat) *ConfigBuilder {
	b.cfg.Output.Format = format
	return b
}

// WithJSONOutput switches move lists to JSON.
func (b *ConfigBuilder) WithJSONOutput(enabled bool) *ConfigBuilder {
	if enabled {
		b.cfg.Output.Format = JSONFormat
	} else {
		b.cfg.Output.Format = TextFormat
	}
	return b
}

// WithJSONBatch collects JSON output into one document.
func (b *ConfigBuilder) WithJSONBatch(enabled bool) *ConfigBuilder {
	b.cfg.Output.JSONBatch = enabled
	return b
}

// WithMoveFlags appends move types to text output.
func (b *ConfigBuilder) WithMoveFlags(enabled bool) *ConfigBuilder {
	b.cfg.Output.ShowFlags = enabled
	return b
}

// WithBoardRedraw controls redrawing after each change.
func (b *ConfigBuilder) WithBoardRedraw(enabled bool) *ConfigBuilder {
	b.cfg.Output.ShowBoard = enabled
	return b
}

// WithBoardSize sets the pixel size used for clicks.
func (b *ConfigBuilder) WithBoardSize(width, height int) *ConfigBuilder {
	b.cfg.Display.BoardWidth = width
	b.cfg.Display.BoardHeight = height
	return b
}

// WithColour enables or disables terminal colours.
func (b *ConfigBuilder) WithColour(enabled bool) *ConfigBuilder {
	b.cfg.Display.Colour = enabled
	return b
}

// WithPossibleMoves controls candidate highlighting.
func (b *ConfigBuilder) WithPossibleMoves(enabled bool) *ConfigBuilder {
	b.cfg.Display.ShowPossible = enabled
	return b
}

// WithOutput sets the output writer.
func (b *ConfigBuilder) WithOutput(w io.Writer) *ConfigBuilder {
	b.cfg.OutputFile = w
	return b
}

// WithLogFile sets the log writer.
func (b *ConfigBuilder) WithLogFile(w io.Writer) *ConfigBuilder {
	b.cfg.LogFile = w
	return b
}

// WithVerbosity sets the verbosity level.
func (b *ConfigBuilder) WithVerbosity(level int) *ConfigBuilder {
	b.cfg.Verbosity = level
	return b
}

// WithScript reads commands from the named file.
func (b *ConfigBuilder) WithScript(path string) *ConfigBuilder {
	b.cfg.Script = path
	return b
}
