package engine

import "testing"

func TestFromFEN_StartingPosition(t *testing.T) {
	b, err := FromFEN(StartingFEN)
	if err != nil {
		t.Fatalf("FromFEN(starting) unexpected error: %v", err)
	}
	if b.ActiveColor != White {
		t.Errorf("ActiveColor = %v, want White", b.ActiveColor)
	}
	if b.CastlingRights != CastleAll {
		t.Errorf("CastlingRights = %04b, want %04b", b.CastlingRights, CastleAll)
	}
	if b.EnPassantSq != NoSquare {
		t.Errorf("EnPassantSq = %v, want NoSquare", b.EnPassantSq)
	}
	if b.Pieces[White].Len() != 16 || b.Pieces[Black].Len() != 16 {
		t.Errorf("piece counts = %d/%d, want 16/16", b.Pieces[White].Len(), b.Pieces[Black].Len())
	}
	if got, want := b.KingSquare[White], E1; got != want {
		t.Errorf("White king square = %v, want %v", got, want)
	}
	if got := b.Hash; got != b.ComputeHash() {
		t.Errorf("incremental hash %d does not match recomputed hash %d", got, b.ComputeHash())
	}
}

func TestFromFEN_Errors(t *testing.T) {
	cases := []string{
		"",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP w KQkq - 0 1",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKXNR w KQkq - 0 1",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR x KQkq - 0 1",
		"8/8/8/8/8/8/8/8 w KQkq - 0 1",
	}
	for _, fen := range cases {
		t.Run(fen, func(t *testing.T) {
			if _, err := FromFEN(fen); err == nil {
				t.Errorf("FromFEN(%q) expected error, got nil", fen)
			}
		})
	}
}

func TestFromFENOrStart_FallsBackOnGarbage(t *testing.T) {
	b := FromFENOrStart("not a fen")
	if b.FEN() != StartingFEN {
		t.Errorf("FromFENOrStart fallback FEN = %q, want %q", b.FEN(), StartingFEN)
	}
}

func TestFEN_RoundTrip(t *testing.T) {
	cases := []string{
		StartingFEN,
		"r1bqkbnr/pppp1ppp/2n5/4p3/4P3/5N2/PPPP1PPP/RNBQKB1R w KQkq - 2 3",
		"8/8/8/4k3/8/8/4K3/8 w - - 0 1",
		"rnbqk2r/pppp1ppp/5n2/2b1p3/2B1P3/5N2/PPPP1PPP/RNBQK2R w KQkq - 4 4",
	}
	for _, fen := range cases {
		t.Run(fen, func(t *testing.T) {
			b, err := FromFEN(fen)
			if err != nil {
				t.Fatalf("FromFEN(%q) unexpected error: %v", fen, err)
			}
			if got := b.FEN(); got != fen {
				t.Errorf("FEN() = %q, want %q", got, fen)
			}
		})
	}
}
