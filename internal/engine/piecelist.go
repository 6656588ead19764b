package engine

// maxPiecesPerSide is the maximum number of pieces a single color can
// have on the board (the starting position).
const maxPiecesPerSide = 16

// PieceList is an unordered collection of at most 16 squares occupied
// by one color's pieces. Kings are included (move generation needs
// them alongside every other piece) even though the king square is
// also tracked redundantly in Board's king-square cache. Add is O(1);
// Remove finds the square by a linear scan of at most 16 entries, then
// swaps it with the last one instead of shifting the slice.
type PieceList struct {
	squares [maxPiecesPerSide]Square
	count   int
}

// Len returns the number of squares currently tracked.
func (pl *PieceList) Len() int {
	return pl.count
}

// At returns the square at the given index (0 <= i < Len()).
func (pl *PieceList) At(i int) Square {
	return pl.squares[i]
}

// Squares returns the occupied squares as a fresh slice.
func (pl *PieceList) Squares() []Square {
	out := make([]Square, pl.count)
	copy(out, pl.squares[:pl.count])
	return out
}

// Add appends a square to the list.
func (pl *PieceList) Add(sq Square) {
	pl.squares[pl.count] = sq
	pl.count++
}

// Remove deletes the given square from the list by swapping it with
// the last entry, then shrinking the count. It is a no-op if sq is not
// present.
func (pl *PieceList) Remove(sq Square) {
	for i := 0; i < pl.count; i++ {
		if pl.squares[i] == sq {
			pl.removeAt(i)
			return
		}
	}
}

func (pl *PieceList) removeAt(i int) {
	last := pl.count - 1
	pl.squares[i] = pl.squares[last]
	pl.count--
}

// Relocate replaces the first occurrence of from with to, preserving
// the entry's position in the backing array (so callers holding an
// index remain valid across the call).
func (pl *PieceList) Relocate(from, to Square) {
	for i := 0; i < pl.count; i++ {
		if pl.squares[i] == from {
			pl.squares[i] = to
			return
		}
	}
}
