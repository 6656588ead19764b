package tt_test

import (
	"testing"

	"corechess/internal/engine"
	"corechess/internal/tt"
)

func TestStoreProbe_RoundTrip(t *testing.T) {
	table := tt.New(1)
	hash := uint64(0x1234_5678_9abc_def0)
	mv := engine.Move{From: engine.E2, To: engine.E4, Kind: engine.Normal}

	table.Store(hash, 8, 150, tt.Exact, mv, 0)

	entry, ok := table.Probe(hash, 0)
	if !ok {
		t.Fatalf("Probe did not find the stored entry")
	}
	if entry.Score != 150 {
		t.Errorf("Score = %d, want 150", entry.Score)
	}
	if entry.Depth != 8 {
		t.Errorf("Depth = %d, want 8", entry.Depth)
	}
	if entry.Bound != tt.Exact {
		t.Errorf("Bound = %v, want Exact", entry.Bound)
	}
	if !entry.BestMove.Equal(mv) {
		t.Errorf("BestMove = %v, want %v", entry.BestMove, mv)
	}
}

func TestProbe_MissOnEmptyTable(t *testing.T) {
	table := tt.New(1)
	if _, ok := table.Probe(0xdeadbeef, 0); ok {
		t.Errorf("Probe on an empty table should miss")
	}
}

func TestProbe_KeyCollisionMisses(t *testing.T) {
	table := tt.New(1)
	mv := engine.Move{From: engine.A2, To: engine.A4, Kind: engine.Normal}
	table.Store(0x0000_0001_0000_0000, 4, 10, tt.Exact, mv, 0)

	// Same index (low 32 bits of mask match), different stored key.
	if _, ok := table.Probe(0x0000_0002_0000_0000, 0); ok {
		t.Errorf("Probe with a different verification key should miss")
	}
}

func TestStore_DepthPreferredReplacement(t *testing.T) {
	table := tt.New(1)
	hash := uint64(0xaaaa_bbbb_cccc_dddd)
	deep := engine.Move{From: engine.D2, To: engine.D4, Kind: engine.Normal}
	shallow := engine.Move{From: engine.D2, To: engine.D3, Kind: engine.Normal}

	table.Store(hash, 10, 300, tt.Exact, deep, 0)
	table.Store(hash, 3, 50, tt.Exact, shallow, 0)

	entry, ok := table.Probe(hash, 0)
	if !ok {
		t.Fatalf("Probe did not find the stored entry")
	}
	if entry.Depth != 10 {
		t.Errorf("a shallower same-generation store should not replace a deeper entry, got depth %d", entry.Depth)
	}
	if !entry.BestMove.Equal(deep) {
		t.Errorf("BestMove = %v, want the deep entry's move %v", entry.BestMove, deep)
	}
}

func TestStore_NewGenerationAllowsShallowerReplacement(t *testing.T) {
	table := tt.New(1)
	hash := uint64(0x1111_2222_3333_4444)
	old := engine.Move{From: engine.D2, To: engine.D4, Kind: engine.Normal}
	fresh := engine.Move{From: engine.D2, To: engine.D3, Kind: engine.Normal}

	table.Store(hash, 10, 300, tt.Exact, old, 0)
	table.NewGeneration()
	table.Store(hash, 2, 50, tt.Exact, fresh, 0)

	entry, ok := table.Probe(hash, 0)
	if !ok {
		t.Fatalf("Probe did not find the stored entry")
	}
	if !entry.BestMove.Equal(fresh) {
		t.Errorf("a new generation's store should replace a stale entry regardless of depth, got %v", entry.BestMove)
	}
}

func TestMateScoreAdjustment_RoundTripsThroughStore(t *testing.T) {
	table := tt.New(1)
	hash := uint64(0x2222_3333_4444_5555)
	mv := engine.Move{From: engine.H7, To: engine.H8, Kind: engine.Promotion, Promotion: engine.Queen}

	const rootPly = 2
	mateInTwoFromRoot := int32(tt.MateScore - 4)
	table.Store(hash, 6, mateInTwoFromRoot, tt.Exact, mv, rootPly)

	// Probing from the ply it was stored at must recover the original
	// root-relative mate score after the round trip through the stored,
	// position-relative form.
	entry, ok := table.Probe(hash, rootPly)
	if !ok {
		t.Fatalf("Probe did not find the stored entry")
	}
	if entry.Score != mateInTwoFromRoot {
		t.Errorf("rescaled mate score = %d, want %d", entry.Score, mateInTwoFromRoot)
	}
}

func TestClear_RemovesAllEntries(t *testing.T) {
	table := tt.New(1)
	hash := uint64(0x5555_6666_7777_8888)
	mv := engine.Move{From: engine.B1, To: engine.C3, Kind: engine.Normal}
	table.Store(hash, 5, 20, tt.Exact, mv, 0)

	table.Clear()

	if _, ok := table.Probe(hash, 0); ok {
		t.Errorf("Probe after Clear should miss")
	}
	if rate := table.HitRate(); rate != 0 {
		t.Errorf("HitRate after Clear = %f, want 0", rate)
	}
}
