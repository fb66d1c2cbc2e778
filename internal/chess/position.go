package chess

import "golang.org/x/exp/constraints"

// Position is a board coordinate packed into one byte: the column in the
// high nibble and the row in the low nibble. Row 0 is rank 1.
type Position uint8

// InvalidPosition marks a coordinate that is off the board.
const InvalidPosition Position = 0xff

// Delta is a row/column offset used to walk the board.
type Delta struct {
	Row int
	Col int
}

// Unit deltas along the board axes.
var (
	AddRow = Delta{Row: 1, Col: 0}
	AddCol = Delta{Row: 0, Col: 1}
	SubRow = Delta{Row: -1, Col: 0}
	SubCol = Delta{Row: 0, Col: -1}
)

func onBoard[T constraints.Integer](v T) bool {
	return v >= 0 && v < BoardSize
}

// NewPosition returns the position at col, row or InvalidPosition if either
// is outside [0,7].
func NewPosition(col, row int) Position {
	if !onBoard(col) || !onBoard(row) {
		return InvalidPosition
	}
	return Position(col<<4 | row)
}

// PositionFromText parses algebraic text such as "e4". The file letter may
// be either case. Anything else yields InvalidPosition.
func PositionFromText(s string) Position {
	if len(s) < 2 {
		return InvalidPosition
	}
	file := s[0] | 0x20
	if file < 'a' || file > 'z' {
		return InvalidPosition
	}
	rank := s[1]
	if rank < '0' || rank > '9' {
		return InvalidPosition
	}
	return NewPosition(int(file)-ColBase, int(rank)-RankBase)
}

// PositionFromLocation converts a row-major index 0..63 to a position.
func PositionFromLocation(n int) Position {
	if n < 0 || n >= NumSquares {
		return InvalidPosition
	}
	return NewPosition(n%BoardSize, n/BoardSize)
}

// IsValid reports whether both coordinates are on the board.
func (p Position) IsValid() bool {
	return onBoard(uint8(p)>>4) && onBoard(uint8(p)&0x0f)
}

// Col returns the column 0..7, or -1 for an invalid position.
func (p Position) Col() int {
	if !p.IsValid() {
		return -1
	}
	return int(p >> 4)
}

// Row returns the row 0..7, or -1 for an invalid position.
func (p Position) Row() int {
	if !p.IsValid() {
		return -1
	}
	return int(p & 0x0f)
}

// Location returns the row-major index 0..63. The result for an invalid
// position is -1 and carries no meaning; check IsValid first.
func (p Position) Location() int {
	if !p.IsValid() {
		return -1
	}
	return p.Row()*BoardSize + p.Col()
}

// Add returns the position offset by d, possibly InvalidPosition.
func (p Position) Add(d Delta) Position {
	if !p.IsValid() {
		return InvalidPosition
	}
	return NewPosition(p.Col()+d.Col, p.Row()+d.Row)
}

// String returns the algebraic form, or "??" for an invalid position.
func (p Position) String() string {
	if !p.IsValid() {
		return "??"
	}
	return string([]byte{byte(ColBase + p.Col()), byte(RankBase + p.Row())})
}
