package engine

import "github.com/lgbarn/chessboard-go/internal/chess"

// pawnMoves generates forward steps, the opening double step, diagonal
// captures and en passant. Any move reaching the far rank promotes to a queen.
func pawnMoves(board *chess.Board, pawn chess.Piece) chess.MoveSet {
	var moves chess.MoveSet
	dir := chess.ColourOffset(pawn.Colour)
	forward := chess.Delta{Row: dir}

	one := pawn.Position.Add(forward)
	if one.IsValid() && board.At(one).IsSpace() {
		moves.Insert(promote(pawn, chess.NewMove(pawn.Position, one, pawn.Colour)))

		two := one.Add(forward)
		if !pawn.IsMoved() && two.IsValid() && board.At(two).IsSpace() {
			moves.Insert(promote(pawn, chess.NewMove(pawn.Position, two, pawn.Colour)))
		}
	}

	for _, side := range []int{-1, 1} {
		dest := pawn.Position.Add(chess.Delta{Row: dir, Col: side})
		if !dest.IsValid() {
			continue
		}
		target := board.At(dest)
		if pawn.IsOpponent(target) {
			moves.Insert(promote(pawn, captureMove(pawn, dest, target.Type)))
			continue
		}
		if target.IsSpace() && canTakeEnPassant(board, pawn, side) {
			m := captureMove(pawn, dest, chess.Pawn)
			m.Type = chess.MoveEnPassant
			moves.Insert(m)
		}
	}
	return moves
}

// canTakeEnPassant reports whether the square beside pawn on the given side
// holds an enemy pawn whose only move was a double step made on the
// previous board move.
func canTakeEnPassant(board *chess.Board, pawn chess.Piece, side int) bool {
	if pawn.Position.Row() != enPassantRow(pawn.Colour) {
		return false
	}
	victim := board.At(pawn.Position.Add(chess.Delta{Col: side}))
	return victim.Type == chess.Pawn &&
		pawn.IsOpponent(victim) &&
		victim.Moves == 1 &&
		victim.JustMoved(board.MoveCount())
}

// enPassantRow is the row a pawn of colour must stand on to capture en
// passant: two rows past the enemy pawns' starting row.
func enPassantRow(colour chess.Colour) int {
	if colour == chess.White {
		return 4
	}
	return 3
}

// promote marks m as a queen promotion when it lands on the far rank.
func promote(pawn chess.Piece, m chess.Move) chess.Move {
	if m.Dest.Row() == chess.HomeRow(pawn.Colour.Opposite()) {
		m.Promote = chess.Queen
	}
	return m
}
