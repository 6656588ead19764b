package search

import (
	"corechess/internal/engine"
	"corechess/internal/tt"
)

// negamax is the principal-variation search: the first move at each
// node is searched with the full (alpha, beta) window, and every
// later move is first tried with a zero window around alpha (a cheap
// "is this better than what we already have" probe) and only
// re-searched with the full window if it beats alpha - cutting the
// typical node count roughly in half versus plain alpha-beta when
// move ordering is good.
func (w *worker) negamax(depth int, alpha, beta int32, ply int, allowNull bool, prevMove engine.Move) int32 {
	w.nodes++
	if w.stop.Load() {
		return 0
	}

	if ply > 0 {
		if w.board.IsRepetition() {
			return 0
		}

		alpha = maxI32(alpha, -mateScore+int32(ply))
		beta = minI32(beta, mateScore-int32(ply)-1)
		if alpha >= beta {
			return alpha
		}
	}

	pvNode := beta-alpha > 1

	var ttMove engine.Move
	if entry, ok := w.engine.TT.Probe(w.board.Hash, ply); ok {
		ttMove = entry.BestMove
		if entry.Depth >= int8(depth) && !pvNode {
			switch entry.Bound {
			case tt.Exact:
				return entry.Score
			case tt.LowerBound:
				if entry.Score >= beta {
					return entry.Score
				}
			case tt.UpperBound:
				if entry.Score <= alpha {
					return entry.Score
				}
			}
		}
	}

	inCheck := w.board.InCheck()

	if depth <= 0 {
		if inCheck {
			depth = 1
		} else {
			return w.quiescence(alpha, beta, ply)
		}
	}

	if inCheck {
		depth++
	}

	staticEval := w.engine.Eval.Evaluate(w.board)

	// Futility pruning: at shallow depth, a static eval already far
	// enough below alpha makes it very unlikely any quiet move here
	// can climb back above it, so the whole node is cut short.
	if w.opts.UseFutility && !pvNode && !inCheck && depth <= 4 && staticEval+80+100*int32(depth) <= alpha {
		return alpha
	}

	// Reverse futility pruning: symmetric case - a static eval already
	// far enough above beta makes it very unlikely any move here fails
	// to hold that advantage, so beta is returned without searching.
	if w.opts.UseFutility && !pvNode && !inCheck && depth <= 3 && staticEval-120*int32(depth) >= beta {
		return beta
	}

	// Null-move pruning: if passing the move entirely still leaves a
	// position so good it fails high, the real move almost certainly
	// will too. Disabled near the endgame (low material phase), when in
	// check, and on the principal variation, where a wrong pruning
	// decision costs the most.
	if w.opts.UseNullMove && allowNull && !pvNode && !inCheck && depth >= 3 && w.board.Phase() > 64 && staticEval >= beta {
		reduction := 3 + depth/4
		if reduction > depth-1 {
			reduction = depth - 1
		}
		w.board.MakeNullMove()
		score := -w.negamax(depth-1-reduction, -beta, -beta+1, ply+1, false, engine.Move{})
		w.board.UndoNullMove()
		if w.stop.Load() {
			return 0
		}
		if score >= beta {
			return beta
		}
	}

	// Internal iterative deepening: without a TT move to try first, a
	// shallow search just to find a decent ordering move pays for
	// itself at high depth by tightening the window for the real
	// search.
	if w.opts.UseIID && ttMove.IsNull() && depth >= 6 && pvNode {
		w.negamax(depth-2, alpha, beta, ply, false, prevMove)
		if entry, ok := w.engine.TT.Probe(w.board.Hash, ply); ok {
			ttMove = entry.BestMove
		}
	}

	moves := w.board.LegalMoves()
	if len(moves) == 0 {
		if inCheck {
			return -mateScore + int32(ply)
		}
		return 0
	}

	w.orderMoves(moves, ttMove, ply, prevMove)

	// Late-move pruning: beyond a depth-scaled move count, a quiet move
	// ordered this far down the list is vanishingly unlikely to matter,
	// so it is skipped outright rather than searched at reduced depth.
	lmpAllowed := !pvNode && !inCheck && depth >= 3 && depth <= 7
	lmpThreshold := 4 + depth*depth/2

	bestScore := int32(-infinity)
	var bestMove engine.Move
	bound := tt.UpperBound
	legalSearched := 0

	for moveIndex, mv := range moves {
		isQuiet := mv.IsQuiet()

		if w.opts.UseLMR && lmpAllowed && isQuiet && moveIndex >= lmpThreshold {
			continue
		}

		w.board.MakeMove(mv)
		givesCheck := w.board.InCheck()

		var score int32
		reduction := 0
		if w.opts.UseLMR && depth >= 3 && legalSearched >= 3 && isQuiet && !inCheck && !givesCheck {
			reduction = 1 + moveIndex/8 + depth/8
			if reduction > depth-1 {
				reduction = depth - 1
			}
		}

		if legalSearched == 0 {
			score = -w.negamax(depth-1, -beta, -alpha, ply+1, true, mv)
		} else {
			score = -w.negamax(depth-1-reduction, -alpha-1, -alpha, ply+1, true, mv)
			if score > alpha && (reduction > 0 || score < beta) {
				score = -w.negamax(depth-1, -beta, -alpha, ply+1, true, mv)
			}
		}

		w.board.UndoMove()
		legalSearched++

		if w.stop.Load() {
			return 0
		}

		if score > bestScore {
			bestScore = score
			bestMove = mv
		}
		if score > alpha {
			alpha = score
			bound = tt.Exact
			if isQuiet {
				w.history.record(mv, depth)
			}
		}
		if alpha >= beta {
			if isQuiet {
				w.killers.record(ply, mv)
				w.counters.record(prevMove, mv)
			}
			bound = tt.LowerBound
			break
		}
	}

	w.engine.TT.Store(w.board.Hash, depth, bestScore, bound, bestMove, ply)

	return bestScore
}

func maxI32(a, b int32) int32 {
	if a > b {
		return a
	}
	return b
}

func minI32(a, b int32) int32 {
	if a < b {
		return a
	}
	return b
}
