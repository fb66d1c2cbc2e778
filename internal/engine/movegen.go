// Package engine generates candidate moves for the pieces on a chess.Board
// and applies chosen moves back to it. Candidates are pseudo-legal: nothing
// here looks at whether a move leaves the mover's king attacked.
package engine

import "github.com/lgbarn/chessboard-go/internal/chess"

// generator produces the candidate moves of one piece.
type generator func(board *chess.Board, piece chess.Piece) chess.MoveSet

// generators is indexed by chess.PieceType.
var generators = [chess.NumPieceTypes]generator{
	chess.Space:  spaceMoves,
	chess.Pawn:   pawnMoves,
	chess.Knight: knightMoves,
	chess.Bishop: bishopMoves,
	chess.Rook:   rookMoves,
	chess.Queen:  queenMoves,
	chess.King:   kingMoves,
}

// GenerateMoves returns the candidate moves of whatever occupies pos.
// An empty or invalid square yields an empty set.
func GenerateMoves(board *chess.Board, pos chess.Position) chess.MoveSet {
	return MovesFor(board, board.At(pos))
}

// MovesFor returns the candidate moves of piece, read against board.
// The piece's Position is taken as its square.
func MovesFor(board *chess.Board, piece chess.Piece) chess.MoveSet {
	if piece.Type < chess.Space || piece.Type >= chess.NumPieceTypes || !piece.Position.IsValid() {
		return chess.MoveSet{}
	}
	return generators[piece.Type](board, piece)
}

// GenerateAll returns the union of the candidate moves of every piece of
// the given colour.
func GenerateAll(board *chess.Board, colour chess.Colour) chess.MoveSet {
	var all chess.MoveSet
	for _, piece := range board.Pieces(colour) {
		all.Union(MovesFor(board, piece))
	}
	return all
}

func spaceMoves(*chess.Board, chess.Piece) chess.MoveSet {
	return chess.MoveSet{}
}

func knightMoves(board *chess.Board, piece chess.Piece) chess.MoveSet {
	return step(board, piece, knightDeltas)
}

func bishopMoves(board *chess.Board, piece chess.Piece) chess.MoveSet {
	return slide(board, piece, bishopDeltas)
}

func rookMoves(board *chess.Board, piece chess.Piece) chess.MoveSet {
	return slide(board, piece, rookDeltas)
}

func queenMoves(board *chess.Board, piece chess.Piece) chess.MoveSet {
	return slide(board, piece, queenDeltas)
}

func kingMoves(board *chess.Board, piece chess.Piece) chess.MoveSet {
	moves := step(board, piece, kingDeltas)
	moves.Union(castleMoves(board, piece))
	return moves
}
