package engine

import "testing"

func TestGeneratePseudoLegalMoves_StartingPositionCount(t *testing.T) {
	b := NewBoard()
	moves := b.GeneratePseudoLegalMoves()
	if len(moves) != 20 {
		t.Errorf("starting position pseudo-legal move count = %d, want 20", len(moves))
	}
}

func TestGenerateCastlingMoves_DeniedWhenSquareAttacked(t *testing.T) {
	// White king on e1, rook on h1, black rook on e8 giving check along
	// the e-file is not relevant here - instead place a black rook
	// attacking f1, which must veto kingside castling.
	b, err := FromFEN("4k3/8/8/8/8/8/8/4K2R w K - 0 1")
	if err != nil {
		t.Fatalf("FromFEN error: %v", err)
	}
	moves := b.LegalMoves()
	if !containsCastling(moves, G1) {
		t.Fatalf("expected kingside castling to be available with clear path")
	}

	attacked, err := FromFEN("4k3/8/8/8/8/5r2/8/4K2R w K - 0 1")
	if err != nil {
		t.Fatalf("FromFEN error: %v", err)
	}
	moves = attacked.LegalMoves()
	if containsCastling(moves, G1) {
		t.Errorf("castling through attacked square f1 should be denied")
	}
}

func TestGenerateCastlingMoves_QueensideRequiresThreeEmptySquares(t *testing.T) {
	b, err := FromFEN("4k3/8/8/8/8/8/8/R3K3 w Q - 0 1")
	if err != nil {
		t.Fatalf("FromFEN error: %v", err)
	}
	moves := b.LegalMoves()
	if !containsCastling(moves, C1) {
		t.Fatalf("expected queenside castling with b1,c1,d1 empty")
	}

	blocked, err := FromFEN("4k3/8/8/8/8/8/8/RN2K3 w Q - 0 1")
	if err != nil {
		t.Fatalf("FromFEN error: %v", err)
	}
	moves = blocked.LegalMoves()
	if containsCastling(moves, C1) {
		t.Errorf("queenside castling should be denied when b1 is occupied")
	}
}

func containsCastling(moves []Move, kingTo Square) bool {
	for _, mv := range moves {
		if mv.Kind == Castling && mv.To == kingTo {
			return true
		}
	}
	return false
}

func TestGeneratePawnMoves_EnPassantAndPromotion(t *testing.T) {
	b, err := FromFEN("8/P7/8/1pP5/8/8/8/k6K w - b6 0 1")
	if err != nil {
		t.Fatalf("FromFEN error: %v", err)
	}
	moves := b.LegalMoves()

	var sawPromotions, sawEnPassant int
	for _, mv := range moves {
		if mv.Kind == Promotion {
			sawPromotions++
		}
		if mv.Kind == EnPassant {
			sawEnPassant++
		}
	}
	if sawPromotions != 4 {
		t.Errorf("promotion move count = %d, want 4 (one per promotion piece)", sawPromotions)
	}
	if sawEnPassant != 1 {
		t.Errorf("en passant move count = %d, want 1", sawEnPassant)
	}
}

func TestLegalMoves_PinnedPieceCannotLeaveTheLine(t *testing.T) {
	// White king e1, white rook e2 pinned by black rook on e8: the
	// rook may slide along the e-file but never step off it.
	b, err := FromFEN("4r2k/8/8/8/8/8/4R3/4K3 w - - 0 1")
	if err != nil {
		t.Fatalf("FromFEN error: %v", err)
	}
	moves := b.LegalMoves()
	var rookMoves int
	for _, mv := range moves {
		if mv.From != E2 {
			continue
		}
		rookMoves++
		if mv.To.File() != E2.File() {
			t.Errorf("pinned rook made illegal move off the e-file: %v", mv)
		}
	}
	if rookMoves == 0 {
		t.Errorf("expected the pinned rook to still have moves along the e-file")
	}
}
