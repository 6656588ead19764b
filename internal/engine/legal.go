package engine

// LegalMoves returns every pseudo-legal move that does not leave the
// mover's own king in check. It generates pseudo-legal moves, plays
// each one, tests check, and undoes it - straightforward and correct,
// traded for the speed of a pin-aware generator, since search spends
// its time in quiescence and TT probes far more than in move
// generation itself.
func (b *Board) LegalMoves() []Move {
	pseudo := b.GeneratePseudoLegalMoves()
	legal := make([]Move, 0, len(pseudo))
	mover := b.ActiveColor

	for _, mv := range pseudo {
		b.MakeMove(mv)
		if !b.IsSquareAttacked(b.KingSquare[mover], mover.Opponent()) {
			legal = append(legal, mv)
		}
		b.UndoMove()
	}

	return legal
}

// LegalTacticalMoves returns the legal subset of captures, en passant,
// and promotions - the moves quiescence search considers.
func (b *Board) LegalTacticalMoves() []Move {
	pseudo := b.GenerateTacticalMoves()
	legal := make([]Move, 0, len(pseudo))
	mover := b.ActiveColor

	for _, mv := range pseudo {
		b.MakeMove(mv)
		if !b.IsSquareAttacked(b.KingSquare[mover], mover.Opponent()) {
			legal = append(legal, mv)
		}
		b.UndoMove()
	}

	return legal
}

// GameStatus classifies the current position's game-ending state.
type GameStatus uint8

const (
	// Playing means the game continues normally.
	Playing GameStatus = iota
	// Check means the side to move is in check but has legal replies.
	Check
	// Checkmate means the side to move is in check with no legal reply.
	Checkmate
	// Stalemate means the side to move has no legal move but is not in
	// check.
	Stalemate
	// DrawFiftyMove means the half-move clock reached 100 (fifty full
	// moves without a pawn move or capture).
	DrawFiftyMove
	// DrawThreefold means the current position (by Zobrist hash) has
	// occurred three times since the last irreversible move.
	DrawThreefold
	// DrawInsufficientMaterial means neither side has enough material to
	// deliver checkmate.
	DrawInsufficientMaterial
)

// GameState classifies the position. It checks termination conditions
// in the order a player would notice them: checkmate/stalemate (no
// legal moves) first, then the automatic draws.
func (b *Board) GameState() GameStatus {
	inCheck := b.InCheck()
	hasLegalMove := len(b.LegalMoves()) > 0

	if !hasLegalMove {
		if inCheck {
			return Checkmate
		}
		return Stalemate
	}

	if b.HalfMoveClock >= 100 {
		return DrawFiftyMove
	}
	if b.isThreefoldRepetition() {
		return DrawThreefold
	}
	if b.hasInsufficientMaterial() {
		return DrawInsufficientMaterial
	}
	if inCheck {
		return Check
	}
	return Playing
}

// isThreefoldRepetition reports whether the current hash has occurred
// twice before in the history stack, scanning backward only as far as
// the most recent irreversible move (a pawn move or capture, including
// en passant, so no earlier position can ever recur).
func (b *Board) isThreefoldRepetition() bool {
	count := 1
	for i := b.historyLen - 1; i >= 0; i-- {
		rec := b.history[i]
		if rec.Move.Kind == EnPassant || rec.MovedPiece.Type() == Pawn || rec.Move.IsCapture() {
			break
		}
		// rec.PrevHash is the hash the board held just before move i was
		// made - the position at ply i, including the true ply 0 (the
		// state before the earliest move still on the undo stack).
		if rec.PrevHash == b.Hash {
			count++
			if count >= 3 {
				return true
			}
		}
	}
	return false
}

// IsRepetition reports whether the current position has occurred at
// least twice before since the last irreversible move - the weaker
// condition search uses to cut a branch short as a draw, distinct from
// the three-occurrence rule GameState enforces as an actual game
// result.
func (b *Board) IsRepetition() bool {
	count := 0
	for i := b.historyLen - 1; i >= 0; i-- {
		rec := b.history[i]
		if rec.Move.Kind == EnPassant || rec.MovedPiece.Type() == Pawn || rec.Move.IsCapture() {
			break
		}
		if rec.PrevHash == b.Hash {
			count++
			if count >= 2 {
				return true
			}
		}
	}
	return false
}

// hasInsufficientMaterial reports whether the material on the board
// can never force checkmate: king vs king, king+minor vs king, or
// king+bishop vs king+bishop with both bishops on the same color
// complex.
func (b *Board) hasInsufficientMaterial() bool {
	var minorSquares [2]Square
	var minorCount [2]int
	for c := White; c <= Black; c++ {
		pieces := &b.Pieces[c]
		for i := 0; i < pieces.Len(); i++ {
			sq := pieces.At(i)
			switch b.Squares[sq].Type() {
			case Pawn, Rook, Queen:
				return false
			case Knight:
				minorCount[c]++
				minorSquares[c] = sq
			case Bishop:
				minorCount[c]++
				minorSquares[c] = sq
			}
		}
	}

	if minorCount[White] == 0 && minorCount[Black] == 0 {
		return true
	}
	if minorCount[White]+minorCount[Black] == 1 {
		return true
	}
	if minorCount[White] == 1 && minorCount[Black] == 1 {
		wp := b.Squares[minorSquares[White]]
		bp := b.Squares[minorSquares[Black]]
		if wp.Type() == Bishop && bp.Type() == Bishop {
			return squareColor(minorSquares[White]) == squareColor(minorSquares[Black])
		}
	}
	return false
}

// squareColor returns 0 for a dark square, 1 for a light square.
func squareColor(sq Square) int {
	return (sq.File() + sq.Rank()) % 2
}
