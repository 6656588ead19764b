package engine

import "testing"

func TestGameState(t *testing.T) {
	cases := []struct {
		name string
		fen  string
		want GameStatus
	}{
		{"starting position", StartingFEN, Playing},
		{"fools mate", "rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3", Checkmate},
		{"stalemate", "7k/5Q2/6K1/8/8/8/8/8 b - - 0 1", Stalemate},
		{"check, not mate", "4k3/8/8/8/8/8/4R3/4K3 b - - 0 1", Check},
		{"bare kings draw", "8/8/4k3/8/8/3K4/8/8 w - - 0 1", DrawInsufficientMaterial},
		{"king and bishop vs king draw", "8/8/4k3/8/8/3K1B2/8/8 w - - 0 1", DrawInsufficientMaterial},
		{"fifty move draw", "8/8/4k3/8/8/3K4/8/7R w - - 100 60", DrawFiftyMove},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b, err := FromFEN(tc.fen)
			if err != nil {
				t.Fatalf("FromFEN(%q) error: %v", tc.fen, err)
			}
			if got := b.GameState(); got != tc.want {
				t.Errorf("GameState() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestGameState_ThreefoldRepetition(t *testing.T) {
	b := NewBoard()
	shuffle := []string{"g1f3", "g8f6", "f3g1", "f6g8", "g1f3", "g8f6", "f3g1", "f6g8"}
	for _, s := range shuffle {
		mv, err := b.ParseMove(s)
		if err != nil {
			t.Fatalf("ParseMove(%q) error: %v", s, err)
		}
		b.MakeMove(mv)
	}
	if got := b.GameState(); got != DrawThreefold {
		t.Errorf("GameState() after repeating shuffle = %v, want DrawThreefold", got)
	}
}

func TestHasInsufficientMaterial_OppositeColoredBishopsNotDrawn(t *testing.T) {
	// Bishops on opposite color complexes retain mating potential.
	b, err := FromFEN("8/8/4k3/8/8/3K1B2/8/6b1 w - - 0 1")
	if err != nil {
		t.Fatalf("FromFEN error: %v", err)
	}
	if b.hasInsufficientMaterial() {
		t.Errorf("opposite-colored bishops should not be ruled insufficient material")
	}
}
