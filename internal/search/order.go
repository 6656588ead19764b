package search

import (
	"sort"

	"corechess/internal/engine"
	"corechess/internal/see"
)

// Move ordering scores occupy disjoint bands so a single integer sort
// key can express "TT move first, then captures by MVV-LVA plus SEE,
// then promotions, then killers, then counter-moves, then history,
// then everything else" - grounded on Blunder's CaptureBonus/
// killer-bonus scheme, extended with SEE-ranked captures and a
// counter-move slot.
const (
	ttMoveScore = 10_000_000

	// captureBase plus 10*victim-value minus aggressor-value, plus the
	// capture's own SEE score, with a flat penalty folded in once SEE
	// calls the trade losing - MVV-LVA with an SEE correction, not
	// MVV-LVA alone.
	captureBase          = 1_000_000
	losingCapturePenalty = 100_000

	promotionScore = 900_000

	killerFirstScore  = 800_000
	killerSecondScore = 700_000
	counterMoveScore  = 600_000
	historyBase       = 0

	centreBonus         = 400
	extendedCentreBonus = 150
)

// centreDistance gives a move-ordering bonus for quiet moves landing
// on d4/e4/d5/e5, a smaller one for the surrounding extended centre,
// and nothing elsewhere.
var centreDistance = [64]int32{}

func init() {
	for sq := engine.Square(0); sq < 64; sq++ {
		file := sq.File()
		rank := sq.Rank()
		switch {
		case (file == 3 || file == 4) && (rank == 3 || rank == 4):
			centreDistance[sq] = centreBonus
		case file >= 2 && file <= 5 && rank >= 2 && rank <= 5:
			centreDistance[sq] = extendedCentreBonus
		}
	}
}

// killerTable stores, per ply, the two most recent quiet moves that
// caused a beta cutoff.
type killerTable struct {
	moves [maxPly][2]engine.Move
}

func (k *killerTable) record(ply int, mv engine.Move) {
	if k.moves[ply][0].Equal(mv) {
		return
	}
	k.moves[ply][1] = k.moves[ply][0]
	k.moves[ply][0] = mv
}

func (k *killerTable) isKiller(ply int, mv engine.Move) (first bool, second bool) {
	return k.moves[ply][0].Equal(mv), k.moves[ply][1].Equal(mv)
}

// historyTable scores quiet moves by how often they raised alpha,
// indexed [from][to], same as Blunder's searchHistory.
type historyTable struct {
	scores [64][64]int32
}

func (h *historyTable) bonus(depth int) int32 {
	return int32(depth * depth)
}

func (h *historyTable) record(mv engine.Move, depth int) {
	h.scores[mv.From][mv.To] += h.bonus(depth)
}

func (h *historyTable) score(mv engine.Move) int32 {
	return h.scores[mv.From][mv.To]
}

// counterMoveTable records, per opponent (from,to), the move that
// most recently refuted it.
type counterMoveTable struct {
	moves [64][64]engine.Move
}

func (c *counterMoveTable) record(prev, reply engine.Move) {
	if prev.IsNull() {
		return
	}
	c.moves[prev.From][prev.To] = reply
}

func (c *counterMoveTable) get(prev engine.Move) engine.Move {
	if prev.IsNull() {
		return engine.Move{}
	}
	return c.moves[prev.From][prev.To]
}

// orderMoves scores and sorts moves in place, descending, for maximal
// alpha-beta cutoff effectiveness. ttMove (the zero Move if none) is
// tried first; captures are scored by MVV-LVA with an SEE correction
// (a penalty once SEE calls the trade losing), then promotions,
// killers, counter-moves, and history-ordered quiets.
func (w *worker) orderMoves(moves []engine.Move, ttMove engine.Move, ply int, prevMove engine.Move) {
	scores := make([]int32, len(moves))
	counter := w.counters.get(prevMove)

	for i, mv := range moves {
		switch {
		case mv.Equal(ttMove) && !ttMove.IsNull():
			scores[i] = ttMoveScore
		case mv.IsCapture():
			victim := capturedPieceType(w.board, mv)
			aggressor := w.board.PieceAt(mv.From).Type()
			gain := see.Evaluate(w.board, mv)
			score := captureBase + 10*see.PieceValue[victim] - see.PieceValue[aggressor] + gain
			if gain < 0 {
				score -= losingCapturePenalty
			}
			scores[i] = score
		case mv.IsPromotion():
			scores[i] = promotionScore
		default:
			if first, second := w.killers.isKiller(ply, mv); first {
				scores[i] = killerFirstScore
			} else if second {
				scores[i] = killerSecondScore
			} else if mv.Equal(counter) {
				scores[i] = counterMoveScore
			} else {
				scores[i] = historyBase + w.history.score(mv) + centreDistance[mv.To]
			}
		}
	}

	sort.Sort(&moveSorter{moves: moves, scores: scores})
}

type moveSorter struct {
	moves  []engine.Move
	scores []int32
}

func (s *moveSorter) Len() int { return len(s.moves) }
func (s *moveSorter) Less(i, j int) bool { return s.scores[i] > s.scores[j] }
func (s *moveSorter) Swap(i, j int) {
	s.moves[i], s.moves[j] = s.moves[j], s.moves[i]
	s.scores[i], s.scores[j] = s.scores[j], s.scores[i]
}

// capturedPieceType returns the type of the piece mv removes from the
// board, looking at the en passant square rather than mv.To for an en
// passant capture.
func capturedPieceType(b *engine.Board, mv engine.Move) engine.PieceType {
	if mv.Kind == engine.EnPassant {
		return engine.Pawn
	}
	return b.PieceAt(mv.To).Type()
}
