// chessboard is a terminal board viewer: it draws a board, lists candidate
// moves for any piece and plays moves typed or clicked by pixel coordinates.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/logrusorgru/aurora"

	"github.com/lgbarn/chessboard-go/internal/config"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("chessboard-go version %s\n", programVersion)
		os.Exit(0)
	}

	cfg := config.NewConfig()
	if err := applyFlags(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "%s %v\n", aurora.Red("Error:"), err)
		os.Exit(2)
	}

	// Set up logging and output files
	setupLogFile(cfg)
	setupOutputFile(cfg)

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "%s %v\n", aurora.Red("Error:"), err)
		os.Exit(2)
	}

	os.Exit(run(cfg, os.Stdin))
}

// run reads commands from the script file, or from stdin when none is set,
// and returns the process exit code.
func run(cfg *config.Config, stdin io.Reader) int {
	input := stdin
	if cfg.Script != "" {
		file, err := os.Open(cfg.Script) //nolint:gosec // G304: CLI tool opens user-specified files
		if err != nil {
			fmt.Fprintf(cfg.LogFile, "Error opening script %s: %v\n", cfg.Script, err)
			return 1
		}
		defer file.Close()
		input = file
	}

	session := NewSession(cfg)
	if err := session.Run(input); err != nil {
		fmt.Fprintf(cfg.LogFile, "Error: %v\n", err)
		return 1
	}
	if cfg.Script != "" && session.failed > 0 {
		return 1
	}
	return 0
}

// setupLogFile configures the log file based on command-line flags.
func setupLogFile(cfg *config.Config) {
	if *logFile == "" {
		return
	}

	file, err := os.Create(*logFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating log file %s: %v\n", *logFile, err)
		os.Exit(1)
	}
	cfg.LogFile = file
}

// setupOutputFile configures the output file based on command-line flags.
func setupOutputFile(cfg *config.Config) {
	if *outputFile == "" {
		return
	}

	file, err := os.Create(*outputFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output file %s: %v\n", *outputFile, err)
		os.Exit(1)
	}
	cfg.OutputFile = file
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: chessboard [options]\n\n")
	fmt.Fprintf(os.Stderr, "A terminal chess board viewer and move generator.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\n%s", helpText)
}
