package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/chessboard-go/internal/chess"
	"github.com/lgbarn/chessboard-go/internal/config"
	"github.com/lgbarn/chessboard-go/internal/render"
)

// MoveWriter is the interface for writing viewer output.
// Different implementations handle different output formats (text, JSON).
type MoveWriter interface {
	// WriteBoard writes the board with the view's marks.
	WriteBoard(board *chess.Board, view View) error

	// WriteMoves writes a labelled list of candidate moves.
	WriteMoves(label string, moves chess.MoveSet) error

	// Flush flushes any buffered data to the underlying writer.
	Flush() error

	// Close closes the writer and releases any resources.
	// For batch writers (like JSON), this also writes any pending output.
	Close() error
}

// TextWriter writes boards as terminal diagrams and moves as wrapped lines.
type TextWriter struct {
	w   io.Writer
	cfg *config.Config
}

// NewTextWriter creates a new text writer.
func NewTextWriter(w io.Writer, cfg *config.Config) *TextWriter {
	return &TextWriter{
		w:   w,
		cfg: cfg,
	}
}

// WriteBoard draws the board through a terminal drawer.
func (tw *TextWriter) WriteBoard(board *chess.Board, view View) error {
	term := render.NewTerminal(tw.cfg.Display.Colour)
	possible := view.Possible
	if !tw.cfg.Display.ShowPossible {
		possible = chess.MoveSet{}
	}
	board.Display(term, view.Hover, view.Selected, possible)
	return term.Flush(tw.w)
}

// WriteMoves writes "label (n): move move ..." wrapped at DefaultLineLength.
func (tw *TextWriter) WriteMoves(label string, moves chess.MoveSet) error {
	ow := NewOutputWriter(tw.w, DefaultLineLength)
	ow.Write(fmt.Sprintf("%s (%d):", label, moves.Len()))
	for _, m := range moves.Moves() {
		ow.Write(tw.formatMove(m))
	}
	ow.NewLine()
	return ow.Err()
}

// formatMove returns the move text, with the move type and promotion
// appended when flags are enabled.
func (tw *TextWriter) formatMove(m chess.Move) string {
	text := m.String()
	if !tw.cfg.Output.ShowFlags {
		return text
	}
	if m.IsPromotion() {
		text += "=" + strings.ToUpper(string(m.Promote.Letter()))
	}
	if m.Type != chess.MovePlain {
		text += "(" + m.Type.String() + ")"
	}
	return text
}

// Flush is a no-op; text is written immediately.
func (tw *TextWriter) Flush() error {
	return nil
}

// Close closes the text writer.
func (tw *TextWriter) Close() error {
	return nil
}
