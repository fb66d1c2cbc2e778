// Package chess provides the board model: positions, moves, pieces and the
// board that owns them.
package chess

// Colour represents the colour of a piece or player.
type Colour int

const (
	Black Colour = iota
	White
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// PieceType tags the variant of a Piece.
type PieceType int

const (
	Space PieceType = iota // Empty square marker
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
	NumPieceTypes
)

var pieceNames = [...]string{"Space", "Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}

// String returns the string representation of a piece type.
func (pt PieceType) String() string {
	if pt >= 0 && pt < NumPieceTypes {
		return pieceNames[pt]
	}
	return "Unknown"
}

// Letter returns the lowercase letter used for the piece type in move text.
// Space maps to ' ' and unknown values to '?'.
func (pt PieceType) Letter() byte {
	letters := []byte{' ', 'p', 'n', 'b', 'r', 'q', 'k'}
	if pt >= 0 && pt < NumPieceTypes {
		return letters[pt]
	}
	return '?'
}

// PieceTypeFromLetter decodes a piece letter in either case.
// Unrecognised letters decode to Space.
func PieceTypeFromLetter(letter byte) PieceType {
	switch letter | 0x20 {
	case 'p':
		return Pawn
	case 'n':
		return Knight
	case 'b':
		return Bishop
	case 'r':
		return Rook
	case 'q':
		return Queen
	case 'k':
		return King
	}
	return Space
}

// Constants for board dimensions and coordinates.
const (
	BoardSize   = 8
	NumSquares  = BoardSize * BoardSize
	RankBase    = '1'
	ColBase     = 'a'
	BorderCount = 2 // border squares framing the board when drawn
)

// ColourOffset returns +1 for White, -1 for Black (for pawn direction).
func ColourOffset(colour Colour) int {
	if colour == White {
		return 1
	}
	return -1
}

// HomeRow returns the back-rank row for a colour.
func HomeRow(colour Colour) int {
	if colour == White {
		return 0
	}
	return BoardSize - 1
}
