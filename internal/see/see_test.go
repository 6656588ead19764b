package see_test

import (
	"testing"

	"corechess/internal/engine"
	"corechess/internal/see"
)

func TestEvaluate_PawnTakesPawn(t *testing.T) {
	b, err := engine.FromFEN("4k3/8/8/3p4/4P3/8/8/4K3 w - - 0 1")
	if err != nil {
		t.Fatalf("FromFEN error: %v", err)
	}
	mv, err := b.ParseMove("e4d5")
	if err != nil {
		t.Fatalf("ParseMove error: %v", err)
	}
	if got := see.Evaluate(b, mv); got != 100 {
		t.Errorf("Evaluate(exd5, undefended) = %d, want 100", got)
	}
}

func TestEvaluate_WinningRookForPawnIsNegative(t *testing.T) {
	// White rook captures a pawn defended by a black rook: net loss.
	b, err := engine.FromFEN("3rk3/8/8/3p4/8/8/8/3RK3 w - - 0 1")
	if err != nil {
		t.Fatalf("FromFEN error: %v", err)
	}
	mv, err := b.ParseMove("d1d5")
	if err != nil {
		t.Fatalf("ParseMove error: %v", err)
	}
	if got := see.Evaluate(b, mv); got >= 0 {
		t.Errorf("Evaluate(Rxd5, rook recaptured) = %d, want negative", got)
	}
}

func TestEvaluate_DefendedPawnTradeIsEven(t *testing.T) {
	// Pawn takes pawn, recaptured by another pawn: an even trade.
	b, err := engine.FromFEN("4k3/8/8/3p4/4P3/3P4/8/4K3 b - - 0 1")
	if err != nil {
		t.Fatalf("FromFEN error: %v", err)
	}
	mv, err := b.ParseMove("d5e4")
	if err != nil {
		t.Fatalf("ParseMove error: %v", err)
	}
	if got := see.Evaluate(b, mv); got != 0 {
		t.Errorf("Evaluate(dxe4, defended by pawn) = %d, want 0 (pawn for pawn nets even)", got)
	}
}

func TestEvaluate_UndefendedQueenCapture(t *testing.T) {
	b, err := engine.FromFEN("4k3/8/8/3q4/4P3/8/8/4K3 w - - 0 1")
	if err != nil {
		t.Fatalf("FromFEN error: %v", err)
	}
	mv, err := b.ParseMove("e4d5")
	if err != nil {
		t.Fatalf("ParseMove error: %v", err)
	}
	if got := see.Evaluate(b, mv); got != 900 {
		t.Errorf("Evaluate(exd5 queen, undefended) = %d, want 900", got)
	}
}
