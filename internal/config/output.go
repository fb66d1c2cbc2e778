package config

import (
	"fmt"

	"github.com/lgbarn/chessboard-go/internal/errors"
)

// OutputFormat selects how move lists are written.
type OutputFormat int

const (
	TextFormat OutputFormat = iota // one move per line
	JSONFormat                     // one JSON document per list
)

// String returns the format name.
func (f OutputFormat) String() string {
	switch f {
	case TextFormat:
		return "text"
	case JSONFormat:
		return "json"
	}
	return "unknown"
}

// OutputConfig holds settings related to output formatting.
type OutputConfig struct {
	// Format selects text or JSON move lists
	Format OutputFormat

	// ShowFlags appends the move type and promotion to text output
	ShowFlags bool

	// ShowBoard redraws the board after every command that changes it
	ShowBoard bool

	// JSONBatch collects JSON documents and writes them as one object
	// on flush or when input ends
	JSONBatch bool
}

// NewOutputConfig creates an OutputConfig with default values.
func NewOutputConfig() *OutputConfig {
	return &OutputConfig{
		Format:    TextFormat,
		ShowBoard: true,
	}
}

// Validate checks that the output configuration is valid.
func (o *OutputConfig) Validate() error {
	if o.Format != TextFormat && o.Format != JSONFormat {
		return fmt.Errorf("output format %d: %w", int(o.Format), errors.ErrInvalidConfig)
	}
	return nil
}
