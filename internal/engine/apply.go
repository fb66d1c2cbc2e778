package engine

import (
	"github.com/lgbarn/chessboard-go/internal/chess"
	"github.com/lgbarn/chessboard-go/internal/errors"
)

// Resolve matches a typed move against the candidates of the piece on its
// source square and returns the generated move, whose capture, castle, en
// passant and promotion fields are authoritative. Flags in the typed move
// are ignored.
func Resolve(board *chess.Board, typed chess.Move) (chess.Move, error) {
	if err := typed.Err(); err != nil {
		return chess.NewInvalidMove(), &errors.MoveError{
			Err:       err,
			MoveIndex: board.MoveCount(),
		}
	}

	piece := board.At(typed.Source)
	if piece.IsSpace() {
		return chess.NewInvalidMove(), &errors.MoveError{
			Err:       errors.ErrEmptySquare,
			MoveText:  typed.String(),
			Square:    typed.Source.String(),
			MoveIndex: board.MoveCount(),
		}
	}

	m, ok := MovesFor(board, piece).Get(typed)
	if !ok {
		return chess.NewInvalidMove(), &errors.MoveError{
			Err:       errors.ErrIllegalMove,
			MoveText:  typed.String(),
			Square:    typed.Source.String(),
			MoveIndex: board.MoveCount(),
		}
	}
	return m, nil
}

// Play applies a move together with its side effects: the castling rook
// crosses the king, an en passant victim is lifted, and a promoting pawn
// becomes the promotion piece. The board's move counter advances once.
// It reports whether the board changed.
func Play(board *chess.Board, m chess.Move) bool {
	if !m.IsValid() || board.At(m.Source).IsSpace() || m.Source == m.Dest {
		return false
	}

	switch m.Type {
	case chess.MoveCastleKing, chess.MoveCastleQueen:
		return playCastle(board, m)
	case chess.MoveEnPassant:
		return playEnPassant(board, m)
	default:
		return playPlain(board, m)
	}
}

// playCastle moves the rook first so both pieces record the same move index.
func playCastle(board *chess.Board, m chess.Move) bool {
	rookSrc, rookDest := castleRook(m)
	if !board.Relocate(rookSrc, rookDest) {
		return false
	}
	return board.ApplyMove(m)
}

func playEnPassant(board *chess.Board, m chess.Move) bool {
	if !board.ApplyMove(m) {
		return false
	}
	board.Remove(chess.NewPosition(m.Dest.Col(), m.Source.Row()))
	return true
}

func playPlain(board *chess.Board, m chess.Move) bool {
	if !board.ApplyMove(m) {
		return false
	}
	if m.IsPromotion() {
		board.Ref(m.Dest).Type = m.Promote
	}
	return true
}
