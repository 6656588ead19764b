package bot

import (
	"corechess/internal/eval"
	"corechess/internal/search"
)

// Difficulty bounds. Below DifficultyTwoPly the bot plays a one-ply
// heuristic scorer with a randomized margin so it doesn't play
// deterministically; at DifficultyTwoPly it adds a plain two-ply
// minimax with no book; at DifficultyFullSearch and above it hands
// off to the full iterative-deepening search, which in turn only
// enables its most aggressive pruning once difficulty clears
// DifficultyAggressivePruning.
const (
	DifficultyOnePly            = 1
	DifficultyTwoPly            = 2
	DifficultyFullSearch        = 3
	DifficultyAggressivePruning = 7
	MaxDifficulty               = 10
)

// New builds an Engine at the given difficulty (1-10, clamped).
// Difficulties at or above DifficultyFullSearch share one underlying
// search.Engine (and its transposition table) across calls, so a
// single bot instance should be reused across a game rather than
// recreated per move.
func New(difficulty int) Engine {
	if difficulty < DifficultyOnePly {
		difficulty = DifficultyOnePly
	}
	if difficulty > MaxDifficulty {
		difficulty = MaxDifficulty
	}

	switch {
	case difficulty < DifficultyTwoPly:
		return &heuristicEngine{name: "Hedge (level 1)", evaluator: eval.NewClassical()}
	case difficulty < DifficultyFullSearch:
		return &twoPlyEngine{name: "Tactician (level 2)", evaluator: eval.NewClassical()}
	default:
		opts := search.Options{
			MaxDepth:    depthForDifficulty(difficulty),
			Threads:     1,
			UseNullMove: difficulty >= DifficultyAggressivePruning,
			UseLMR:      difficulty >= DifficultyAggressivePruning,
			UseFutility: difficulty >= DifficultyAggressivePruning,
			UseIID:      difficulty >= DifficultyAggressivePruning,
		}
		return newSearchEngine(difficulty, opts)
	}
}

// depthForDifficulty scales the iterative-deepening depth cap with
// difficulty so higher tiers search visibly further, independent of
// whatever time budget the caller grants per move.
func depthForDifficulty(difficulty int) int {
	return 2 + difficulty
}
