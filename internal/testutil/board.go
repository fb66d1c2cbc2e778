package testutil

import (
	"fmt"
	"strings"
	"testing"

	"github.com/lgbarn/chessboard-go/internal/chess"
)

// Sq parses algebraic square text, failing the test on bad input.
func Sq(t *testing.T, text string) chess.Position {
	t.Helper()
	pos := chess.PositionFromText(text)
	if !pos.IsValid() {
		t.Fatalf("invalid square %q", text)
	}
	return pos
}

// BoardFromPlacement builds a board from the piece-placement field of a FEN
// record ("rnbqkbnr/pppppppp/8/..."). Only placement is read; every piece
// starts unmoved.
func BoardFromPlacement(placement string) (*chess.Board, error) {
	b := chess.NewEmptyBoard()
	ranks := strings.Split(placement, "/")
	if len(ranks) != chess.BoardSize {
		return nil, fmt.Errorf("placement %q: want %d ranks, got %d", placement, chess.BoardSize, len(ranks))
	}
	for i, rank := range ranks {
		row := chess.BoardSize - 1 - i
		col := 0
		for j := 0; j < len(rank); j++ {
			c := rank[j]
			if c >= '1' && c <= '8' {
				col += int(c - '0')
				continue
			}
			pt := chess.PieceTypeFromLetter(c)
			if pt == chess.Space {
				return nil, fmt.Errorf("placement %q: unknown piece %q", placement, c)
			}
			colour := chess.Black
			if c >= 'A' && c <= 'Z' {
				colour = chess.White
			}
			pos := chess.NewPosition(col, row)
			if !pos.IsValid() {
				return nil, fmt.Errorf("placement %q: rank %d overflows", placement, row+1)
			}
			b.Place(chess.NewPiece(pt, colour, pos))
			col++
		}
		if col != chess.BoardSize {
			return nil, fmt.Errorf("placement %q: rank %d has %d files", placement, row+1, col)
		}
	}
	return b, nil
}

// BoardFromDiagram builds a board from eight lines of eight characters,
// rank 8 first, as printed by Board.String. Uppercase letters are white,
// lowercase black and '.' empty. Surrounding blank lines and indentation
// are ignored.
func BoardFromDiagram(t *testing.T, diagram string) *chess.Board {
	t.Helper()
	var rows []string
	for _, line := range strings.Split(diagram, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			rows = append(rows, line)
		}
	}
	if len(rows) != chess.BoardSize {
		t.Fatalf("diagram has %d rows; want %d", len(rows), chess.BoardSize)
	}

	placement := make([]string, 0, chess.BoardSize)
	for _, row := range rows {
		if len(row) != chess.BoardSize {
			t.Fatalf("diagram row %q has %d files; want %d", row, len(row), chess.BoardSize)
		}
		placement = append(placement, strings.ReplaceAll(row, ".", "1"))
	}

	b, err := BoardFromPlacement(strings.Join(placement, "/"))
	if err != nil {
		t.Fatalf("BoardFromDiagram: %v", err)
	}
	return b
}

// MarkMoved records that the piece on each square has already moved, so it
// no longer qualifies for a first move, castling or en passant.
func MarkMoved(t *testing.T, b *chess.Board, squares ...string) {
	t.Helper()
	for _, text := range squares {
		p := b.Ref(Sq(t, text))
		if p.IsSpace() {
			t.Fatalf("MarkMoved: %s is empty", text)
		}
		p.Moves = 1
	}
}

// MarkJustMoved makes each piece look as if its only move was the board's
// previous one, which is what en passant looks for. At least one move must
// already have been applied to the board.
func MarkJustMoved(t *testing.T, b *chess.Board, squares ...string) {
	t.Helper()
	if b.MoveCount() == 0 {
		t.Fatal("MarkJustMoved: board has no previous move")
	}
	for _, text := range squares {
		p := b.Ref(Sq(t, text))
		if p.IsSpace() {
			t.Fatalf("MarkJustMoved: %s is empty", text)
		}
		p.Moves = 1
		p.LastMove = b.MoveCount() - 1
	}
}
