// Package output writes boards and candidate move lists as text or JSON.
package output

import (
	"fmt"
	"io"

	"github.com/lgbarn/chessboard-go/internal/chess"
	"github.com/lgbarn/chessboard-go/internal/config"
)

// DefaultLineLength is the wrap column for text move lists.
const DefaultLineLength = 80

// View is the interactive state drawn on top of a board.
type View struct {
	Hover    chess.Position
	Selected chess.Position
	Possible chess.MoveSet
}

// NoView is a view with nothing hovered or selected.
func NoView() View {
	return View{Hover: chess.InvalidPosition, Selected: chess.InvalidPosition}
}

// NewWriter returns the writer for the configured output format.
func NewWriter(w io.Writer, cfg *config.Config) MoveWriter {
	if cfg.Output.Format == config.JSONFormat {
		if cfg.Output.JSONBatch {
			return NewJSONWriter(w, cfg)
		}
		return NewJSONWriterSingle(w, cfg)
	}
	return NewTextWriter(w, cfg)
}

// OutputWriter handles formatted output with line length control.
type OutputWriter struct {
	w             io.Writer
	lineLength    int
	maxLineLength int
	needsSpace    bool
	err           error
}

// NewOutputWriter creates a new output writer.
func NewOutputWriter(w io.Writer, maxLineLength int) *OutputWriter {
	if maxLineLength <= 0 {
		maxLineLength = DefaultLineLength
	}
	return &OutputWriter{
		w:             w,
		maxLineLength: maxLineLength,
	}
}

// Write writes a string, adding a space separator if needed.
func (o *OutputWriter) Write(s string) {
	if o.needsSpace && len(s) > 0 {
		// Check if we need a new line
		if o.lineLength+1+len(s) > o.maxLineLength {
			o.print("\n")
			o.lineLength = 0
			o.needsSpace = false
		} else {
			o.print(" ")
			o.lineLength++
		}
	}

	o.print(s)
	o.lineLength += len(s)
	o.needsSpace = true
}

// NewLine starts a new line.
func (o *OutputWriter) NewLine() {
	o.print("\n")
	o.lineLength = 0
	o.needsSpace = false
}

// Err returns the first write error.
func (o *OutputWriter) Err() error {
	return o.err
}

func (o *OutputWriter) print(s string) {
	if o.err != nil {
		return
	}
	_, o.err = fmt.Fprint(o.w, s)
}
