// Package book defines the opening-book port search consults before
// falling back to its own calculation. No concrete book is shipped -
// parsing and bundling opening data is out of scope here - but search
// is written against the interface so a future book implementation
// plugs in without touching search code.
package book

import "corechess/internal/engine"

// Prober answers whether a known book move exists for a position.
type Prober interface {
	// Probe returns a move to play from this position and true, or the
	// zero Move and false if the position is not in the book.
	Probe(hash uint64) (engine.Move, bool)
}

// None is the default Prober: it never has a book move. Search uses
// it whenever no real book is configured, so difficulty tiers that
// consult a book still compile and run identically to "no book".
type None struct{}

// Probe always reports no book move.
func (None) Probe(uint64) (engine.Move, bool) {
	return engine.Move{}, false
}
