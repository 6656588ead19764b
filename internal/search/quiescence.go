package search

import (
	"corechess/internal/engine"
	"corechess/internal/see"
)

// quiescence extends the search along capture sequences past the
// nominal depth limit, so the static evaluator is never asked to
// judge a position in the middle of a trade. The stand-pat score
// (the static evaluation, as if the side to move simply stopped
// capturing) acts as a lower bound: a side never has to capture if
// every capture only makes things worse - unless it is in check, where
// standing pat is not a legal option and every evasion must be tried.
func (w *worker) quiescence(alpha, beta int32, ply int) int32 {
	w.nodes++
	if w.stop.Load() {
		return 0
	}
	if ply >= maxPly {
		return w.engine.Eval.Evaluate(w.board)
	}

	if w.board.InCheck() {
		return w.quiescenceEvasions(alpha, beta, ply)
	}

	standPat := w.engine.Eval.Evaluate(w.board)
	if standPat >= beta {
		return beta
	}
	if alpha < standPat {
		alpha = standPat
	}

	moves := w.board.LegalTacticalMoves()
	w.orderMoves(moves, engine.Move{}, ply, engine.Move{})

	const deltaMargin = 200

	for _, mv := range moves {
		if !mv.IsPromotion() {
			gain := see.Evaluate(w.board, mv)
			if gain < 0 {
				continue
			}
			// Delta pruning: if even the best-case material gain from
			// this capture can't bring the position within reach of
			// alpha, skip searching it.
			if standPat+gain+deltaMargin < alpha {
				continue
			}
		}

		w.board.MakeMove(mv)
		score := -w.quiescence(-beta, -alpha, ply+1)
		w.board.UndoMove()

		if w.stop.Load() {
			return 0
		}

		if score >= beta {
			return beta
		}
		if score > alpha {
			alpha = score
		}
	}

	return alpha
}

// quiescenceEvasions handles the in-check case: there is no stand-pat
// option, so every legal reply (not just captures) is searched, and no
// legal reply at all means the side to move has been mated here.
func (w *worker) quiescenceEvasions(alpha, beta int32, ply int) int32 {
	moves := w.board.LegalMoves()
	if len(moves) == 0 {
		return -mateScore + int32(ply)
	}

	w.orderMoves(moves, engine.Move{}, ply, engine.Move{})

	for _, mv := range moves {
		w.board.MakeMove(mv)
		score := -w.quiescence(-beta, -alpha, ply+1)
		w.board.UndoMove()

		if w.stop.Load() {
			return 0
		}

		if score >= beta {
			return beta
		}
		if score > alpha {
			alpha = score
		}
	}

	return alpha
}
