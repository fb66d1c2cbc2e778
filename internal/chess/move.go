package chess

import (
	"fmt"

	"github.com/lgbarn/chessboard-go/internal/errors"
)

// MoveType categorizes a move.
type MoveType int

const (
	MovePlain MoveType = iota
	MoveEnPassant
	MoveCastleKing
	MoveCastleQueen
	MoveError
)

// String returns the string representation of a move type.
func (t MoveType) String() string {
	switch t {
	case MovePlain:
		return "move"
	case MoveEnPassant:
		return "enpassant"
	case MoveCastleKing:
		return "castle-king"
	case MoveCastleQueen:
		return "castle-queen"
	}
	return "error"
}

// Special characters in the fifth position of move text.
const (
	castleKingChar  = 'c'
	castleQueenChar = 'C'
	enPassantChar   = 'E'
)

// Move is one relocation of a piece across the board.
type Move struct {
	Source Position
	Dest   Position
	Type   MoveType

	// The piece type captured (Space if none).
	Capture PieceType

	// The piece type promoted to (Space if not a promotion).
	Promote PieceType

	// Colour of the moving piece.
	Mover Colour
}

// NewInvalidMove returns a move in the error state.
func NewInvalidMove() Move {
	return Move{
		Source: InvalidPosition,
		Dest:   InvalidPosition,
		Type:   MoveError,
	}
}

// NewMove creates a plain move from src to dest for the given colour.
func NewMove(src, dest Position, mover Colour) Move {
	return Move{
		Source: src,
		Dest:   dest,
		Type:   MovePlain,
		Mover:  mover,
	}
}

// ParseMove reads move text of the form <src><dest>[special], e.g. "e2e4",
// "e5d6r", "e1g1c", "e1c1C" or "b5a6E". Malformed text yields a move whose
// Type is MoveError; see Err for the reason.
func ParseMove(text string) Move {
	m := NewInvalidMove()
	if len(text) < 4 {
		return m
	}

	m.Source = PositionFromText(text[0:2])
	m.Dest = PositionFromText(text[2:4])
	if !m.Source.IsValid() || !m.Dest.IsValid() {
		return m
	}

	m.Type = MovePlain
	if len(text) >= 5 {
		m.applySpecial(text[4])
	}
	return m
}

// ReadMove parses text as ParseMove does and returns the reason malformed
// text was rejected, naming the text in the ParseError.
func ReadMove(text string) (Move, error) {
	m := ParseMove(text)
	err := m.Err()
	if parseErr, ok := err.(*errors.ParseError); ok {
		parseErr.Input = text
	}
	return m, err
}

// applySpecial interprets the optional fifth character of move text.
func (m *Move) applySpecial(c byte) {
	switch {
	case c == castleKingChar:
		m.Type = MoveCastleKing
	case c == castleQueenChar:
		m.Type = MoveCastleQueen
	case c == enPassantChar:
		m.Type = MoveEnPassant
		m.Capture = Pawn
	case (c >= 'a' && c <= 'z') || c == ' ':
		m.Capture = PieceTypeFromLetter(c)
	}
}

// Err reports why a move is unusable, or nil for a usable move.
func (m Move) Err() error {
	if m.IsValid() {
		return nil
	}
	switch {
	case !m.Source.IsValid():
		return &errors.ParseError{Err: errors.ErrInvalidMove, Column: 1, Expected: "source square"}
	case !m.Dest.IsValid():
		return &errors.ParseError{Err: errors.ErrInvalidMove, Column: 3, Expected: "destination square"}
	}
	return errors.ErrInvalidMove
}

// IsValid reports whether the move has usable squares and is not in the
// error state.
func (m Move) IsValid() bool {
	return m.Type != MoveError && m.Source.IsValid() && m.Dest.IsValid()
}

// IsCapture returns true if this move captures a piece.
func (m Move) IsCapture() bool {
	return m.Capture != Space || m.Type == MoveEnPassant
}

// IsPromotion returns true if this move promotes a pawn.
func (m Move) IsPromotion() bool {
	return m.Promote != Space
}

// IsCastle returns true if this move is a castling move.
func (m Move) IsCastle() bool {
	switch m.Type {
	case MoveCastleKing, MoveCastleQueen:
		return true
	default:
		return false
	}
}

// String rebuilds the move text. It round-trips with ParseMove.
func (m Move) String() string {
	text := m.Source.String() + m.Dest.String()
	switch m.Type {
	case MoveCastleKing:
		return text + string(castleKingChar)
	case MoveCastleQueen:
		return text + string(castleQueenChar)
	case MoveEnPassant:
		return text + string(enPassantChar)
	}
	if m.Capture != Space {
		return text + string(m.Capture.Letter())
	}
	return text
}

// GoString includes every field, for test failure output.
func (m Move) GoString() string {
	return fmt.Sprintf("Move{%s %s capture=%s promote=%s mover=%s}",
		m, m.Type, m.Capture, m.Promote, m.Mover)
}

// Equal reports whether both moves share source and destination.
func (m Move) Equal(other Move) bool {
	return m.Source == other.Source && m.Dest == other.Dest
}

// CompareMoves orders moves by destination, then by source.
func CompareMoves(a, b Move) int {
	if a.Dest != b.Dest {
		if a.Dest < b.Dest {
			return -1
		}
		return 1
	}
	if a.Source != b.Source {
		if a.Source < b.Source {
			return -1
		}
		return 1
	}
	return 0
}
