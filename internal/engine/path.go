package engine

import "github.com/lgbarn/chessboard-go/internal/chess"

var knightDeltas = []chess.Delta{
	{Row: 2, Col: 1}, {Row: 2, Col: -1},
	{Row: -2, Col: 1}, {Row: -2, Col: -1},
	{Row: 1, Col: 2}, {Row: 1, Col: -2},
	{Row: -1, Col: 2}, {Row: -1, Col: -2},
}

var bishopDeltas = []chess.Delta{
	{Row: 1, Col: 1}, {Row: 1, Col: -1},
	{Row: -1, Col: 1}, {Row: -1, Col: -1},
}

var rookDeltas = []chess.Delta{
	chess.AddRow, chess.SubRow, chess.AddCol, chess.SubCol,
}

// Queen and king share the eight compass directions.
var (
	queenDeltas = append(append([]chess.Delta{}, bishopDeltas...), rookDeltas...)
	kingDeltas  = queenDeltas
)

// slide walks each direction from the piece until it leaves the board or
// meets an occupied square. Empty squares become plain moves; an opposing
// piece at the end of the walk becomes one capture.
func slide(board *chess.Board, piece chess.Piece, deltas []chess.Delta) chess.MoveSet {
	var moves chess.MoveSet
	for _, d := range deltas {
		for dest := piece.Position.Add(d); dest.IsValid(); dest = dest.Add(d) {
			target := board.At(dest)
			if target.IsSpace() {
				moves.Insert(chess.NewMove(piece.Position, dest, piece.Colour))
				continue
			}
			if piece.IsOpponent(target) {
				moves.Insert(captureMove(piece, dest, target.Type))
			}
			break
		}
	}
	return moves
}

// step tries one square per delta, keeping those that are empty or hold an
// opposing piece.
func step(board *chess.Board, piece chess.Piece, deltas []chess.Delta) chess.MoveSet {
	var moves chess.MoveSet
	for _, d := range deltas {
		dest := piece.Position.Add(d)
		if !dest.IsValid() {
			continue
		}
		target := board.At(dest)
		switch {
		case target.IsSpace():
			moves.Insert(chess.NewMove(piece.Position, dest, piece.Colour))
		case piece.IsOpponent(target):
			moves.Insert(captureMove(piece, dest, target.Type))
		}
	}
	return moves
}

// captureMove builds a plain move onto a square holding a piece of type captured.
func captureMove(piece chess.Piece, dest chess.Position, captured chess.PieceType) chess.Move {
	m := chess.NewMove(piece.Position, dest, piece.Colour)
	m.Capture = captured
	return m
}
