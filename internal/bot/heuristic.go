package bot

import (
	"context"
	"errors"
	"math/rand"

	"corechess/internal/engine"
	"corechess/internal/eval"
)

// heuristicEngine is the level-1 bot: it scores each legal move by
// the static evaluation of the position one ply deep, then picks
// randomly among the moves within a small margin of the best score,
// so it plays a recognizable but not perfectly calculating opponent.
type heuristicEngine struct {
	name      string
	evaluator eval.Evaluator
	closed    bool
}

// scoreMargin is how far below the best one-ply score a move can be
// and still be eligible for random selection.
const scoreMargin = 40

func (e *heuristicEngine) SelectMove(ctx context.Context, board *engine.Board) (engine.Move, error) {
	if e.closed {
		return engine.Move{}, errors.New("engine is closed")
	}
	select {
	case <-ctx.Done():
		return engine.Move{}, ctx.Err()
	default:
	}

	moves := board.LegalMoves()
	if len(moves) == 0 {
		return engine.Move{}, errors.New("no legal moves available")
	}
	if len(moves) == 1 {
		return moves[0], nil
	}

	scores := make([]int32, len(moves))
	best := int32(-1 << 30)
	for i, mv := range moves {
		board.MakeMove(mv)
		scores[i] = -e.evaluator.Evaluate(board)
		board.UndoMove()
		if scores[i] > best {
			best = scores[i]
		}
	}

	var candidates []engine.Move
	for i, mv := range moves {
		if best-scores[i] <= scoreMargin {
			candidates = append(candidates, mv)
		}
	}

	return candidates[rand.Intn(len(candidates))], nil
}

func (e *heuristicEngine) Name() string { return e.name }

func (e *heuristicEngine) Close() error {
	e.closed = true
	return nil
}

func (e *heuristicEngine) Info() Info {
	return Info{
		Name:       e.name,
		Difficulty: DifficultyOnePly,
		Features:   map[string]bool{"one_ply_heuristic": true, "randomized_margin": true},
	}
}
