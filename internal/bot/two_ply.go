package bot

import (
	"context"
	"errors"

	"corechess/internal/engine"
	"corechess/internal/eval"
)

// twoPlyEngine is the level-2 bot: a plain two-ply negamax with
// alpha-beta pruning and simple capture-first move ordering, and no
// opening book. It is deliberately simpler than the full search
// engine - no transposition table, no quiescence, no reductions - so
// it plays a consistent, beatable "sees one exchange ahead" game.
type twoPlyEngine struct {
	name      string
	evaluator eval.Evaluator
	closed    bool
}

const twoPlyDepth = 2

func (e *twoPlyEngine) SelectMove(ctx context.Context, board *engine.Board) (engine.Move, error) {
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

	moves = orderByCaptureFirst(board, moves)

	const inf = int32(1 << 30)
	alpha, beta := -inf, inf
	var bestMove engine.Move
	bestScore := -inf

	for _, mv := range moves {
		board.MakeMove(mv)
		score := -e.negamax(board, twoPlyDepth-1, -beta, -alpha)
		board.UndoMove()

		if score > bestScore {
			bestScore = score
			bestMove = mv
		}
		if score > alpha {
			alpha = score
		}
	}

	return bestMove, nil
}

func (e *twoPlyEngine) negamax(board *engine.Board, depth int, alpha, beta int32) int32 {
	if depth == 0 {
		return e.evaluator.Evaluate(board)
	}

	moves := board.LegalMoves()
	if len(moves) == 0 {
		if board.InCheck() {
			return -(1 << 20)
		}
		return 0
	}

	moves = orderByCaptureFirst(board, moves)
	best := int32(-1 << 30)

	for _, mv := range moves {
		board.MakeMove(mv)
		score := -e.negamax(board, depth-1, -beta, -alpha)
		board.UndoMove()

		if score > best {
			best = score
		}
		if score > alpha {
			alpha = score
		}
		if alpha >= beta {
			break
		}
	}

	return best
}

// orderByCaptureFirst is a simple move-ordering pass: captures before
// quiet moves, no further ranking within each group.
func orderByCaptureFirst(board *engine.Board, moves []engine.Move) []engine.Move {
	ordered := make([]engine.Move, 0, len(moves))
	var quiet []engine.Move
	for _, mv := range moves {
		if mv.IsCapture() {
			ordered = append(ordered, mv)
		} else {
			quiet = append(quiet, mv)
		}
	}
	return append(ordered, quiet...)
}

func (e *twoPlyEngine) Name() string { return e.name }

func (e *twoPlyEngine) Close() error {
	e.closed = true
	return nil
}

func (e *twoPlyEngine) Info() Info {
	return Info{
		Name:       e.name,
		Difficulty: DifficultyTwoPly,
		Features:   map[string]bool{"two_ply_minimax": true, "alpha_beta": true},
	}
}
