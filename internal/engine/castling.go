package engine

import "github.com/lgbarn/chessboard-go/internal/chess"

// Columns of the king and rooks on their home rank.
const (
	kingHomeCol      = 4
	kingSideRookCol  = chess.BoardSize - 1
	queenSideRookCol = 0
)

// castleMoves offers king-side and queen-side castling for an unmoved king
// on its home square. Attacked squares are not considered.
func castleMoves(board *chess.Board, king chess.Piece) chess.MoveSet {
	var moves chess.MoveSet
	home := chess.NewPosition(kingHomeCol, chess.HomeRow(king.Colour))
	if king.IsMoved() || king.Position != home {
		return moves
	}
	if m, ok := castle(board, king, kingSideRookCol, chess.MoveCastleKing); ok {
		moves.Insert(m)
	}
	if m, ok := castle(board, king, queenSideRookCol, chess.MoveCastleQueen); ok {
		moves.Insert(m)
	}
	return moves
}

// castle checks for an unmoved rook of the king's colour on rookCol with
// only empty squares between, and builds the king's two-square move.
func castle(board *chess.Board, king chess.Piece, rookCol int, moveType chess.MoveType) (chess.Move, bool) {
	row := king.Position.Row()
	rook := board.At(chess.NewPosition(rookCol, row))
	if rook.Type != chess.Rook || rook.Colour != king.Colour || rook.IsMoved() {
		return chess.Move{}, false
	}

	dir := sign(rookCol - kingHomeCol)
	for col := kingHomeCol + dir; col != rookCol; col += dir {
		if !board.At(chess.NewPosition(col, row)).IsSpace() {
			return chess.Move{}, false
		}
	}

	m := chess.NewMove(king.Position, chess.NewPosition(kingHomeCol+2*dir, row), king.Colour)
	m.Type = moveType
	return m, true
}

// castleRook returns the rook's source and destination for a castling move.
func castleRook(m chess.Move) (src, dest chess.Position) {
	row := m.Source.Row()
	if m.Type == chess.MoveCastleKing {
		return chess.NewPosition(kingSideRookCol, row), chess.NewPosition(kingHomeCol+1, row)
	}
	return chess.NewPosition(queenSideRookCol, row), chess.NewPosition(kingHomeCol-1, row)
}
