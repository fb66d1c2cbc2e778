package engine

import (
	"testing"

	"github.com/lgbarn/chessboard-go/internal/chess"
	"github.com/lgbarn/chessboard-go/internal/testutil"
)

func TestPawnMoves(t *testing.T) {
	tests := []struct {
		name      string
		placement string
		moved     []string
		square    string
		want      []string
	}{
		{
			name:      "white single step",
			placement: "8/8/8/8/1P6/8/8/8",
			moved:     []string{"b4"},
			square:    "b4",
			want:      []string{"b4b5"},
		},
		{
			name:      "black single step",
			placement: "8/8/8/8/1p6/8/8/8",
			moved:     []string{"b4"},
			square:    "b4",
			want:      []string{"b4b3"},
		},
		{
			name:      "white initial advance",
			placement: "8/8/8/8/8/8/1P6/8",
			square:    "b2",
			want:      []string{"b2b3", "b2b4"},
		},
		{
			name:      "black initial advance",
			placement: "8/2p5/8/8/8/8/8/8",
			square:    "c7",
			want:      []string{"c7c6", "c7c5"},
		},
		{
			name:      "two-step blocked on the far square",
			placement: "8/8/8/8/1n6/8/1P6/8",
			square:    "b2",
			want:      []string{"b2b3"},
		},
		{
			name:      "fully blocked",
			placement: "8/8/8/8/8/1n6/1P6/8",
			square:    "b2",
			want:      nil,
		},
		{
			name:      "friends on the diagonals are not captured",
			placement: "8/8/8/8/8/P1P5/1P6/8",
			square:    "b2",
			want:      []string{"b2b3", "b2b4"},
		},
		{
			name:      "white captures both ways",
			placement: "8/ppp5/1P6/8/8/8/8/8",
			moved:     []string{"b6"},
			square:    "b6",
			want:      []string{"b6a7p", "b6c7p"},
		},
		{
			name:      "black captures both ways",
			placement: "8/8/1p6/PPP5/8/8/8/8",
			moved:     []string{"b6"},
			square:    "b6",
			want:      []string{"b6a5p", "b6c5p"},
		},
		{
			name:      "white promotion",
			placement: "r1r5/1P6/8/8/8/8/8/8",
			moved:     []string{"b7"},
			square:    "b7",
			want:      []string{"b7a8r", "b7b8", "b7c8r"},
		},
		{
			name:      "black promotion",
			placement: "8/8/8/8/8/8/4p3/3R1R2",
			moved:     []string{"e2"},
			square:    "e2",
			want:      []string{"e2d1r", "e2e1", "e2f1r"},
		},
		{
			name:      "edge file captures one way",
			placement: "8/8/8/8/8/1p6/P7/8",
			square:    "a2",
			want:      []string{"a2a3", "a2a4", "a2b3p"},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			b := mustPlacement(t, tt.placement)
			testutil.MarkMoved(t, b, tt.moved...)
			got := GenerateMoves(b, testutil.Sq(t, tt.square))
			testutil.AssertMoves(t, got, tt.want)
		})
	}
}

func TestPawnMoves_PromotionFlag(t *testing.T) {
	tests := []struct {
		name      string
		placement string
		square    string
		promote   bool
	}{
		{"white reaching rank 8", "r1r5/1P6/8/8/8/8/8/8", "b7", true},
		{"black reaching rank 1", "8/8/8/8/8/8/4p3/3R1R2", "e2", true},
		{"white mid-board", "8/8/8/8/1P6/8/8/8", "b4", false},
		{"black on rank 7 does not promote", "8/1p6/8/8/8/8/8/8", "b7", false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			b := mustPlacement(t, tt.placement)
			moves := GenerateMoves(b, testutil.Sq(t, tt.square))
			if moves.Len() == 0 {
				t.Fatal("no moves generated")
			}
			for _, m := range moves.Moves() {
				if m.IsPromotion() != tt.promote {
					t.Errorf("%s: IsPromotion() = %v; want %v", m, m.IsPromotion(), tt.promote)
				}
				if tt.promote && m.Promote != chess.Queen {
					t.Errorf("%s: Promote = %v; want Queen", m, m.Promote)
				}
			}
		})
	}
}

// An unmoved pawn placed on the sixth row double steps onto the far rank.
func TestPawnMoves_DoubleStepPromotes(t *testing.T) {
	b := mustPlacement(t, "8/8/1P6/8/8/8/8/8")
	moves := GenerateMoves(b, testutil.Sq(t, "b6"))
	testutil.AssertMoves(t, moves, []string{"b6b7", "b6b8"})
	for _, m := range moves.Moves() {
		want := m.Dest == testutil.Sq(t, "b8")
		if m.IsPromotion() != want {
			t.Errorf("%s: IsPromotion() = %v; want %v", m, m.IsPromotion(), want)
		}
		if want && m.Promote != chess.Queen {
			t.Errorf("%s: Promote = %v; want Queen", m, m.Promote)
		}
	}
}

func TestPawnMoves_EnPassant(t *testing.T) {
	t.Run("white takes both ways", func(t *testing.T) {
		b := mustPlacement(t, "8/8/1p6/pPp5/8/8/8/7K")
		testutil.MarkMoved(t, b, "b5")
		if !b.ApplyMove(chess.ParseMove("h1h2")) {
			t.Fatal("spare move failed")
		}
		testutil.MarkJustMoved(t, b, "a5", "c5")

		got := GenerateMoves(b, testutil.Sq(t, "b5"))
		testutil.AssertMoves(t, got, []string{"b5a6E", "b5c6E"})
		for _, m := range got.Moves() {
			if m.Type != chess.MoveEnPassant || m.Capture != chess.Pawn {
				t.Errorf("%#v: want en passant capturing a pawn", m)
			}
		}
	})

	t.Run("black takes both ways", func(t *testing.T) {
		b := mustPlacement(t, "k7/8/8/8/4PpP1/5P2/8/8")
		testutil.MarkMoved(t, b, "f4")
		if !b.ApplyMove(chess.ParseMove("a8b8")) {
			t.Fatal("spare move failed")
		}
		testutil.MarkJustMoved(t, b, "e4", "g4")

		got := GenerateMoves(b, testutil.Sq(t, "f4"))
		testutil.AssertMoves(t, got, []string{"f4e3E", "f4g3E"})
	})

	tests := []struct {
		name  string
		moves []string
		want  []string
	}{
		{
			name:  "immediately after the double step",
			moves: []string{"d7d5"},
			want:  []string{"e5d6E", "e5e6"},
		},
		{
			name:  "one move too late",
			moves: []string{"d7d5", "e1e2"},
			want:  []string{"e5e6"},
		},
		{
			name:  "victim arrived in two single steps",
			moves: []string{"d7d6", "e1e2", "d6d5"},
			want:  []string{"e5e6"},
		},
		{
			name:  "no victim beside",
			moves: []string{"e8d8"},
			want:  []string{"e5e6"},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			b := mustPlacement(t, "4k3/3p4/8/4P3/8/8/8/4K3")
			testutil.MarkMoved(t, b, "e5")
			for _, text := range tt.moves {
				if !b.ApplyMove(chess.ParseMove(text)) {
					t.Fatalf("ApplyMove(%s) failed", text)
				}
			}
			testutil.AssertMoves(t, GenerateMoves(b, testutil.Sq(t, "e5")), tt.want)
		})
	}

	t.Run("capturing pawn on the wrong rank", func(t *testing.T) {
		b := mustPlacement(t, "4k3/8/8/3p4/4P3/8/8/4K3")
		testutil.MarkMoved(t, b, "e4")
		if !b.ApplyMove(chess.ParseMove("d5d4")) {
			t.Fatal("ApplyMove(d5d4) failed")
		}
		testutil.AssertMoves(t, GenerateMoves(b, testutil.Sq(t, "e4")), []string{"e4e5"})
	})

	t.Run("just-moved piece that is not a pawn", func(t *testing.T) {
		b := mustPlacement(t, "4k3/8/8/4P3/8/2n5/8/4K3")
		testutil.MarkMoved(t, b, "e5")
		if !b.ApplyMove(chess.ParseMove("c3d5")) {
			t.Fatal("ApplyMove(c3d5) failed")
		}
		testutil.AssertMoves(t, GenerateMoves(b, testutil.Sq(t, "e5")), []string{"e5e6"})
	})
}
