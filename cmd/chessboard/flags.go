// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"

	"github.com/lgbarn/chessboard-go/internal/chess"
	"github.com/lgbarn/chessboard-go/internal/config"
)

var (
	// Board options
	layoutName  = flag.String("layout", "standard", "Starting layout: standard, knights, empty")
	boardWidth  = flag.Int("width", config.DefaultBoardSize, "Board width in pixels, used by click")
	boardHeight = flag.Int("height", config.DefaultBoardSize, "Board height in pixels, used by click")

	// Output options
	outputFile = flag.String("o", "", "Output file (default: stdout)")
	jsonOutput = flag.Bool("json", false, "Output boards and move lists as JSON lines")
	jsonBatch  = flag.Bool("jsonbatch", false, "With -json, write one JSON object when input ends")
	showFlags  = flag.Bool("flags", false, "Mark promotions and special moves in move lists")
	noBoard    = flag.Bool("noboard", false, "Don't redraw the board after each command")
	noColour   = flag.Bool("nocolor", false, "Disable coloured output")
	noPossible = flag.Bool("nopossible", false, "Don't mark the selected piece's possible moves")

	// Input
	scriptFile = flag.String("script", "", "Read commands from this file instead of stdin")

	// Logging
	verbosity = flag.Int("v", config.Summary, "Verbosity: 0=errors only, 1=summary, 2=every command")
	logFile   = flag.String("l", "", "Write diagnostics to log file")
	quiet     = flag.Bool("s", false, "Silent mode (errors only)")

	// Other options
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// applyFlags applies command-line flags to the configuration.
func applyFlags(cfg *config.Config) error {
	if err := applyBoardFlags(cfg); err != nil {
		return err
	}
	applyOutputFlags(cfg)
	applyLogFlags(cfg)
	cfg.Script = *scriptFile
	return nil
}

// applyBoardFlags configures the starting layout and board geometry.
func applyBoardFlags(cfg *config.Config) error {
	layout, err := chess.ParseLayout(*layoutName)
	if err != nil {
		return err
	}
	cfg.Layout = layout
	cfg.Display.BoardWidth = *boardWidth
	cfg.Display.BoardHeight = *boardHeight
	return nil
}

// applyOutputFlags configures output format and display settings.
func applyOutputFlags(cfg *config.Config) {
	if *jsonOutput {
		cfg.Output.Format = config.JSONFormat
	} else {
		cfg.Output.Format = config.TextFormat
	}
	cfg.Output.JSONBatch = *jsonOutput && *jsonBatch
	cfg.Output.ShowFlags = *showFlags
	cfg.Output.ShowBoard = !*noBoard
	cfg.Display.Colour = !*noColour
	cfg.Display.ShowPossible = !*noPossible
}

// applyLogFlags configures the verbosity level.
func applyLogFlags(cfg *config.Config) {
	cfg.Verbosity = *verbosity
	if *quiet {
		cfg.Verbosity = config.Silent
	}
}
