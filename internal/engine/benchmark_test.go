package engine

import (
	"testing"

	"github.com/lgbarn/chessboard-go/internal/chess"
	"github.com/lgbarn/chessboard-go/internal/testutil"
)

var benchPlacements = map[string]string{
	"Initial":   "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR",
	"Midgame":   "r1bqkb1r/pppp1ppp/2n2n2/4p3/2B1P3/5N2/PPPP1PPP/RNBQK2R",
	"Endgame":   "8/5k2/8/8/8/8/5K2/4R3",
	"Complex":   "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R",
	"OpenQueen": "8/8/8/3Q4/8/8/8/8",
}

func BenchmarkGenerateAll(b *testing.B) {
	for name, placement := range benchPlacements {
		board, err := testutil.BoardFromPlacement(placement)
		if err != nil {
			b.Fatalf("BoardFromPlacement(%q): %v", placement, err)
		}
		b.Run(name, func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				GenerateAll(board, chess.White)
			}
		})
	}
}

func BenchmarkGenerateMoves(b *testing.B) {
	cases := []struct {
		name   string
		square string
	}{
		{"Knight", "f3"},
		{"Bishop", "c4"},
		{"King", "e1"},
		{"Pawn", "e4"},
	}

	board, err := testutil.BoardFromPlacement(benchPlacements["Midgame"])
	if err != nil {
		b.Fatal(err)
	}
	for _, tc := range cases {
		pos := chess.PositionFromText(tc.square)
		b.Run(tc.name, func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				GenerateMoves(board, pos)
			}
		})
	}
}

func BenchmarkPlay(b *testing.B) {
	move := chess.ParseMove("e2e4")
	for i := 0; i < b.N; i++ {
		board := chess.NewBoard(chess.LayoutStandard)
		Play(board, move)
	}
}
