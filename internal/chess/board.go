package chess

import (
	"fmt"
	"strings"

	"github.com/lgbarn/chessboard-go/internal/errors"
)

// Board is an 8x8 grid of piece slots plus a move counter.
// Every cell always holds a Piece; empty cells hold a Space.
type Board struct {
	// Row-major by Position.Location.
	squares [NumSquares]Piece

	// Number of moves applied since the last reset.
	moveCount int
}

// NewBoard creates a board set up with the given layout.
func NewBoard(layout Layout) *Board {
	b := &Board{}
	b.Reset(layout)
	return b
}

// NewEmptyBoard creates a board holding only spaces.
func NewEmptyBoard() *Board {
	return NewBoard(LayoutEmpty)
}

// Clear fills every cell with a space and zeroes the move counter.
func (b *Board) Clear() {
	for i := range b.squares {
		b.squares[i] = NewSpace(PositionFromLocation(i))
	}
	b.moveCount = 0
}

// Reset clears the board and places the pieces of layout.
func (b *Board) Reset(layout Layout) {
	b.Clear()
	for _, p := range layout.pieces() {
		b.Place(p)
	}
}

// MoveCount returns the number of moves applied since the last reset.
func (b *Board) MoveCount() int {
	return b.moveCount
}

// At returns a copy of the occupant of pos. An invalid position yields a
// space at InvalidPosition.
func (b *Board) At(pos Position) Piece {
	if !pos.IsValid() {
		return NewSpace(InvalidPosition)
	}
	return b.squares[pos.Location()]
}

// Ref returns the occupant of pos for in-place changes, or nil for an
// invalid position. The pointer is only good until the next move.
func (b *Board) Ref(pos Position) *Piece {
	if !pos.IsValid() {
		return nil
	}
	return &b.squares[pos.Location()]
}

// Place puts p on the cell named by p.Position, replacing the occupant.
func (b *Board) Place(p Piece) {
	if !p.Position.IsValid() {
		return
	}
	b.squares[p.Position.Location()] = p
}

// Remove replaces the occupant of pos with a space.
func (b *Board) Remove(pos Position) {
	if !pos.IsValid() {
		return
	}
	b.squares[pos.Location()] = NewSpace(pos)
}

// ApplyMove relocates the piece on the move's source to its destination,
// leaving a space behind, and advances the move counter. Moves with an
// invalid square or an empty source are ignored. It reports whether the
// board changed.
func (b *Board) ApplyMove(m Move) bool {
	if !b.Relocate(m.Source, m.Dest) {
		return false
	}
	b.moveCount++
	return true
}

// Relocate moves the piece on src to dest like ApplyMove but without
// advancing the move counter. The piece still records the current move
// index as its last move.
func (b *Board) Relocate(src, dest Position) bool {
	if !src.IsValid() || !dest.IsValid() || src == dest {
		return false
	}
	piece := b.squares[src.Location()]
	if piece.IsSpace() {
		return false
	}

	piece.LastMove = b.moveCount
	piece.Moves++
	piece.Position = dest

	b.squares[dest.Location()] = piece
	b.squares[src.Location()] = NewSpace(src)
	return true
}

// Pieces returns a copy of every non-space occupant of the given colour,
// in location order.
func (b *Board) Pieces(colour Colour) []Piece {
	var pieces []Piece
	for _, p := range b.squares {
		if !p.IsSpace() && p.Colour == colour {
			pieces = append(pieces, p)
		}
	}
	return pieces
}

// AssertWellFormed verifies every cell holds a known piece type that
// records the cell it sits on.
func (b *Board) AssertWellFormed() error {
	for i, p := range b.squares {
		pos := PositionFromLocation(i)
		if p.Type < Space || p.Type >= NumPieceTypes {
			return fmt.Errorf("cell %s holds piece type %d: %w", pos, int(p.Type), errors.ErrMalformedBoard)
		}
		if p.Position != pos {
			return fmt.Errorf("cell %s holds a %s recorded at %s: %w", pos, p.Type, p.Position, errors.ErrMalformedBoard)
		}
	}
	return nil
}

// String draws the board as eight lines, rank 8 first.
func (b *Board) String() string {
	var sb strings.Builder
	for row := BoardSize - 1; row >= 0; row-- {
		for col := 0; col < BoardSize; col++ {
			sb.WriteByte(b.squares[row*BoardSize+col].Letter())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
