package chess

// NeverMoved is the LastMove value of a piece that has not moved.
const NeverMoved = -1

// Piece is one occupant of a board cell. Space marks an empty cell.
type Piece struct {
	Type     PieceType
	Colour   Colour
	Position Position

	// Number of times the piece has moved.
	Moves int

	// Board move index at which the piece last moved, or NeverMoved.
	LastMove int
}

// NewPiece creates an unmoved piece at pos.
func NewPiece(pt PieceType, colour Colour, pos Position) Piece {
	return Piece{
		Type:     pt,
		Colour:   colour,
		Position: pos,
		LastMove: NeverMoved,
	}
}

// NewSpace creates the empty-cell marker for pos.
func NewSpace(pos Position) Piece {
	return NewPiece(Space, Black, pos)
}

// W creates an unmoved white piece.
func W(pt PieceType, pos Position) Piece {
	return NewPiece(pt, White, pos)
}

// B creates an unmoved black piece.
func B(pt PieceType, pos Position) Piece {
	return NewPiece(pt, Black, pos)
}

// IsSpace reports whether the piece is the empty-cell marker.
func (p Piece) IsSpace() bool {
	return p.Type == Space
}

// IsWhite reports whether the piece is white.
func (p Piece) IsWhite() bool {
	return p.Colour == White
}

// IsMoved reports whether the piece has moved at least once.
func (p Piece) IsMoved() bool {
	return p.Moves > 0
}

// IsOpponent reports whether other is a real piece of the other colour.
func (p Piece) IsOpponent(other Piece) bool {
	return other.Type != Space && other.Colour != p.Colour
}

// JustMoved reports whether the piece's last move was the one made at
// board move index moveCount-1.
func (p Piece) JustMoved(moveCount int) bool {
	return p.LastMove != NeverMoved && p.LastMove == moveCount-1
}

// Letter returns the board diagram letter: uppercase for white,
// lowercase for black and '.' for a space.
func (p Piece) Letter() byte {
	if p.Type == Space {
		return '.'
	}
	letter := p.Type.Letter()
	if p.Colour == White {
		return letter - ('a' - 'A')
	}
	return letter
}
