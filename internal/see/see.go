// Package see implements Static Exchange Evaluation: a cheap,
// search-free estimate of the material result of a sequence of
// captures on a single square, used to prune losing captures out of
// move ordering and quiescence search before spending any recursion
// on them.
package see

import "corechess/internal/engine"

// PieceValue gives SEE's own value table, independent of the
// evaluator's tapered values - SEE only ever compares relative
// ordering of attacker values, so the classical values are both
// sufficient and cheaper to keep local to this package. Exported so
// move ordering's MVV-LVA term can share the same scale.
var PieceValue = [7]int32{
	engine.Empty:  0,
	engine.Pawn:   100,
	engine.Knight: 320,
	engine.Bishop: 330,
	engine.Rook:   500,
	engine.Queen:  900,
	engine.King:   20000,
}

var attackerValue = PieceValue

// Evaluate returns the net material gain (in centipawns, from the
// mover's perspective) of playing mv and then trading off with every
// attacker and defender of the destination square, in increasing
// order of piece value, until one side stops recapturing.
//
// It mutates and restores b via MakeMove/UndoMove, so it must only be
// called with b's side to move equal to the mover of mv.
func Evaluate(b *engine.Board, mv engine.Move) int32 {
	target := mv.To
	var captured engine.Piece
	if mv.Kind == engine.EnPassant {
		captured = engine.NewPiece(b.ActiveColor.Opponent(), engine.Pawn)
	} else {
		captured = b.PieceAt(target)
	}

	gains := make([]int32, 0, 32)
	gains = append(gains, attackerValue[captured.Type()])

	movingPieceType := b.PieceAt(mv.From).Type()
	if mv.Kind == engine.Promotion {
		movingPieceType = mv.Promotion
	}

	b.MakeMove(mv)
	defer b.UndoMove()

	side := b.ActiveColor
	lastValue := attackerValue[movingPieceType]

	for {
		attackerSq, attackerType, ok := leastValuableAttacker(b, target, side)
		if !ok {
			break
		}
		gains = append(gains, lastValue-gains[len(gains)-1])
		lastValue = attackerValue[attackerType]

		simMove := engine.Move{From: attackerSq, To: target, Kind: engine.Capture}
		b.MakeMove(simMove)
		defer b.UndoMove()

		side = side.Opponent()
	}

	// Negamax fold: at each step the side on move may stop capturing, so
	// its value is whichever is worse for the side one ply up - itself,
	// or the negation of continuing.
	for i := len(gains) - 2; i >= 0; i-- {
		if -gains[i+1] < gains[i] {
			gains[i] = -gains[i+1]
		}
	}

	return gains[0]
}

// leastValuableAttacker finds the cheapest piece of color attacking
// sq, scanning the board directly rather than via the piece list
// (SEE runs after MakeMove already mutated the piece lists for this
// hypothetical sequence, so re-deriving from the mailbox is simplest).
func leastValuableAttacker(b *engine.Board, sq engine.Square, color engine.Color) (engine.Square, engine.PieceType, bool) {
	best := engine.NoSquare
	bestType := engine.PieceType(0)
	bestValue := int32(1 << 30)

	for s := engine.Square(0); s < 64; s++ {
		p := b.PieceAt(s)
		if p.IsEmpty() || p.Color() != color {
			continue
		}
		if !attacksSquare(b, s, sq, p.Type()) {
			continue
		}
		v := attackerValue[p.Type()]
		if v < bestValue {
			bestValue = v
			best = s
			bestType = p.Type()
		}
	}

	if best == engine.NoSquare {
		return engine.NoSquare, 0, false
	}
	return best, bestType, true
}

// attacksSquare reports whether the piece of type t on from attacks
// to, used by leastValuableAttacker to test a specific candidate
// rather than asking "is this square attacked at all" the way
// Board.IsSquareAttacked does.
func attacksSquare(b *engine.Board, from, to engine.Square, t engine.PieceType) bool {
	df := to.File() - from.File()
	dr := to.Rank() - from.Rank()
	adf, adr := abs(df), abs(dr)

	switch t {
	case engine.Pawn:
		p := b.PieceAt(from)
		dir := 1
		if p.Color() == engine.Black {
			dir = -1
		}
		return adf == 1 && dr == dir
	case engine.Knight:
		return (adf == 1 && adr == 2) || (adf == 2 && adr == 1)
	case engine.King:
		return adf <= 1 && adr <= 1
	case engine.Bishop:
		return adf == adr && clearPath(b, from, to)
	case engine.Rook:
		return (df == 0 || dr == 0) && clearPath(b, from, to)
	case engine.Queen:
		if adf == adr {
			return clearPath(b, from, to)
		}
		if df == 0 || dr == 0 {
			return clearPath(b, from, to)
		}
	}
	return false
}

// clearPath reports whether every square strictly between from and to
// is empty, stepping along whatever straight line (diagonal,
// horizontal, or vertical) connects them.
func clearPath(b *engine.Board, from, to engine.Square) bool {
	stepFile := sign(to.File() - from.File())
	stepRank := sign(to.Rank() - from.Rank())
	f, r := from.File()+stepFile, from.Rank()+stepRank
	for engine.NewSquare(f, r) != to {
		if !b.PieceAt(engine.NewSquare(f, r)).IsEmpty() {
			return false
		}
		f += stepFile
		r += stepRank
	}
	return true
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func sign(x int) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return 0
	}
}
