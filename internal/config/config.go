// Package config provides configuration for the chessboard viewer.
package config

import (
	"fmt"
	"io"
	"os"

	"github.com/lgbarn/chessboard-go/internal/chess"
	"github.com/lgbarn/chessboard-go/internal/errors"
)

// Verbosity levels written to LogFile.
const (
	Silent     = 0 // errors only
	Summary    = 1 // one line per session
	Commentary = 2 // one line per command
)

// Config holds all program configuration.
type Config struct {
	Verbosity int // 0=errors only, 1=session summary, 2=running commentary

	// Layout placed on start-up and by a bare "reset".
	Layout chess.Layout

	// Script names a command file read instead of standard input.
	Script string

	// Output streams
	OutputFile io.Writer
	LogFile    io.Writer

	Output  *OutputConfig
	Display *DisplayConfig
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Verbosity:  Summary,
		Layout:     chess.LayoutStandard,
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
		Output:     NewOutputConfig(),
		Display:    NewDisplayConfig(),
	}
}

// SetOutput sets the writer for board diagrams and move lists.
func (c *Config) SetOutput(w io.Writer) {
	c.OutputFile = w
}

// Validate checks the configuration and its sub-configs.
func (c *Config) Validate() error {
	if c.Verbosity < Silent || c.Verbosity > Commentary {
		return fmt.Errorf("verbosity %d out of range %d-%d: %w",
			c.Verbosity, Silent, Commentary, errors.ErrInvalidConfig)
	}
	if c.Layout < chess.LayoutStandard || c.Layout > chess.LayoutEmpty {
		return fmt.Errorf("layout %d: %w", int(c.Layout), errors.ErrInvalidConfig)
	}
	if c.OutputFile == nil || c.LogFile == nil {
		return fmt.Errorf("output and log writers must be set: %w", errors.ErrInvalidConfig)
	}
	if err := c.Output.Validate(); err != nil {
		return err
	}
	return c.Display.Validate()
}

// Logf writes a log line when the verbosity is at least level.
func (c *Config) Logf(level int, format string, args ...interface{}) {
	if c.LogFile == nil || c.Verbosity < level {
		return
	}
	fmt.Fprintf(c.LogFile, format, args...)
}
