// Package bot adapts the search engine into move-selecting opponents
// at a range of playing strengths, from a one-ply heuristic scorer up
// to the full pruning search.
package bot

import (
	"context"

	"corechess/internal/engine"
)

// Engine selects moves for a position. The context allows the caller
// to bound how long a move may take to compute.
type Engine interface {
	// SelectMove returns the bot's chosen move for the given position.
	SelectMove(ctx context.Context, board *engine.Board) (engine.Move, error)

	// Name returns a human-readable name for this engine.
	Name() string

	// Close releases any resources held by the engine. Implementations
	// must be idempotent.
	Close() error
}

// Info describes an engine's identity and configured strength.
type Info struct {
	Name       string
	Difficulty int
	Features   map[string]bool
}

// Inspectable engines can report their Info, for UI display and
// debugging.
type Inspectable interface {
	Engine
	Info() Info
}
