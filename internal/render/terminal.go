// Package render draws boards on a character terminal.
package render

import (
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/lgbarn/chessboard-go/internal/chess"
)

// Square marks, strongest first.
type mark int

const (
	markNone mark = iota
	markPossible
	markHover
	markSelected
)

type cell struct {
	glyph byte
	mark  mark
}

// Terminal is a chess.Drawer that collects draw commands into a character
// grid. Flush writes the grid, rank 8 first, framed by file and rank labels.
//
// Marks are shown with brackets so they survive without colour:
// "(N)" selected, "[N]" hover, "<n>" possible capture and " * " possible move.
type Terminal struct {
	cells [chess.NumSquares]cell

	light    *color.Color
	dark     *color.Color
	hover    *color.Color
	selected *color.Color
	possible *color.Color
	label    *color.Color
}

var _ chess.Drawer = (*Terminal)(nil)

// NewTerminal creates a drawer. With useColour false no escape codes are
// written, whatever the terminal supports.
func NewTerminal(useColour bool) *Terminal {
	t := &Terminal{
		light:    color.New(color.FgBlack, color.BgHiWhite),
		dark:     color.New(color.FgBlack, color.BgWhite),
		hover:    color.New(color.FgBlack, color.BgHiCyan),
		selected: color.New(color.FgBlack, color.BgHiYellow, color.Bold),
		possible: color.New(color.FgBlack, color.BgHiGreen),
		label:    color.New(color.Faint),
	}
	for _, c := range t.colours() {
		if useColour {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	t.DrawBoard()
	return t
}

func (t *Terminal) colours() []*color.Color {
	return []*color.Color{t.light, t.dark, t.hover, t.selected, t.possible, t.label}
}

// DrawBoard clears every square.
func (t *Terminal) DrawBoard() {
	for i := range t.cells {
		t.cells[i] = cell{}
	}
}

// DrawHover marks the square under the pointer.
func (t *Terminal) DrawHover(pos chess.Position) { t.setMark(pos, markHover) }

// DrawSelected marks the selected square.
func (t *Terminal) DrawSelected(pos chess.Position) { t.setMark(pos, markSelected) }

// DrawPossible marks a candidate destination.
func (t *Terminal) DrawPossible(pos chess.Position) { t.setMark(pos, markPossible) }

func (t *Terminal) DrawPawn(pos chess.Position, black bool)   { t.setPiece(pos, chess.Pawn, black) }
func (t *Terminal) DrawKnight(pos chess.Position, black bool) { t.setPiece(pos, chess.Knight, black) }
func (t *Terminal) DrawBishop(pos chess.Position, black bool) { t.setPiece(pos, chess.Bishop, black) }
func (t *Terminal) DrawRook(pos chess.Position, black bool)   { t.setPiece(pos, chess.Rook, black) }
func (t *Terminal) DrawQueen(pos chess.Position, black bool)  { t.setPiece(pos, chess.Queen, black) }
func (t *Terminal) DrawKing(pos chess.Position, black bool)   { t.setPiece(pos, chess.King, black) }

// setMark keeps the stronger of the existing and new marks.
func (t *Terminal) setMark(pos chess.Position, m mark) {
	if !pos.IsValid() {
		return
	}
	c := &t.cells[pos.Location()]
	if m > c.mark {
		c.mark = m
	}
}

func (t *Terminal) setPiece(pos chess.Position, pt chess.PieceType, black bool) {
	if !pos.IsValid() {
		return
	}
	colour := chess.White
	if black {
		colour = chess.Black
	}
	t.cells[pos.Location()].glyph = chess.NewPiece(pt, colour, pos).Letter()
}

// Flush writes the grid to w.
func (t *Terminal) Flush(w io.Writer) error {
	_, err := io.WriteString(w, t.String())
	return err
}

// String returns the grid as Flush would write it.
func (t *Terminal) String() string {
	var sb strings.Builder
	files := t.label.Sprint("   a  b  c  d  e  f  g  h   ")

	sb.WriteString(files)
	sb.WriteByte('\n')
	for row := chess.BoardSize - 1; row >= 0; row-- {
		rank := t.label.Sprint(string(rune(chess.RankBase + row)))
		sb.WriteString(rank)
		sb.WriteByte(' ')
		for col := 0; col < chess.BoardSize; col++ {
			pos := chess.NewPosition(col, row)
			c := t.cells[pos.Location()]
			sb.WriteString(t.paint(pos, c).Sprint(cellText(c)))
		}
		sb.WriteByte(' ')
		sb.WriteString(rank)
		sb.WriteByte('\n')
	}
	sb.WriteString(files)
	sb.WriteByte('\n')
	return sb.String()
}

// paint picks the background for a square.
func (t *Terminal) paint(pos chess.Position, c cell) *color.Color {
	switch c.mark {
	case markSelected:
		return t.selected
	case markHover:
		return t.hover
	case markPossible:
		return t.possible
	}
	if (pos.Col()+pos.Row())%2 == 1 {
		return t.light
	}
	return t.dark
}

// cellText renders one square as three characters.
func cellText(c cell) string {
	glyph := c.glyph
	if glyph == 0 {
		glyph = '.'
	}
	switch c.mark {
	case markSelected:
		return "(" + string(glyph) + ")"
	case markHover:
		return "[" + string(glyph) + "]"
	case markPossible:
		if c.glyph == 0 {
			return " * "
		}
		return "<" + string(glyph) + ">"
	}
	return " " + string(glyph) + " "
}
