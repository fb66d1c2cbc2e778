package chess

import (
	"fmt"
	"strings"

	"github.com/lgbarn/chessboard-go/internal/errors"
)

// Layout selects the pieces placed by Board.Reset.
type Layout int

const (
	// LayoutStandard is the full 32-piece starting array.
	LayoutStandard Layout = iota
	// LayoutKnights places only the four knights on their standard squares,
	// white on b1 and g1, black on b8 and g8.
	LayoutKnights
	// LayoutEmpty places nothing.
	LayoutEmpty
)

var layoutNames = map[Layout]string{
	LayoutStandard: "standard",
	LayoutKnights:  "knights",
	LayoutEmpty:    "empty",
}

// String returns the layout name.
func (l Layout) String() string {
	if name, ok := layoutNames[l]; ok {
		return name
	}
	return "unknown"
}

// ParseLayout reads a layout name, case-insensitively.
func ParseLayout(name string) (Layout, error) {
	want := strings.ToLower(strings.TrimSpace(name))
	for l, n := range layoutNames {
		if n == want {
			return l, nil
		}
	}
	return LayoutStandard, fmt.Errorf("layout %q: %w", name, errors.ErrInvalidConfig)
}

var backRank = [BoardSize]PieceType{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}

// pieces returns the occupied cells of the layout.
func (l Layout) pieces() []Piece {
	var placed []Piece
	switch l {
	case LayoutStandard:
		for col := 0; col < BoardSize; col++ {
			placed = append(placed,
				W(backRank[col], NewPosition(col, 0)),
				W(Pawn, NewPosition(col, 1)),
				B(Pawn, NewPosition(col, 6)),
				B(backRank[col], NewPosition(col, 7)),
			)
		}
	case LayoutKnights:
		placed = append(placed,
			W(Knight, NewPosition(1, 0)),
			W(Knight, NewPosition(6, 0)),
			B(Knight, NewPosition(1, 7)),
			B(Knight, NewPosition(6, 7)),
		)
	}
	return placed
}
