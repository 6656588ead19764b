package engine

// castlingRookMove describes the rook accompanying a king's castling
// move, indexed by the king's destination square.
type castlingRookMove struct {
	from, to Square
}

var castlingRookMoves = map[Square]castlingRookMove{
	G1: {from: H1, to: F1},
	C1: {from: A1, to: D1},
	G8: {from: H8, to: F8},
	C8: {from: A8, to: D8},
}

// castlingRightsLost returns the bits cleared from CastlingRights when
// a piece leaves or a piece is captured on the given square.
func castlingRightsLost(sq Square) uint8 {
	switch sq {
	case E1:
		return CastleWhiteKing | CastleWhiteQueen
	case A1:
		return CastleWhiteQueen
	case H1:
		return CastleWhiteKing
	case E8:
		return CastleBlackKing | CastleBlackQueen
	case A8:
		return CastleBlackQueen
	case H8:
		return CastleBlackKing
	default:
		return 0
	}
}

// MakeMove applies mv to the board without verifying legality; callers
// must only pass moves produced by the board's own move generator
// (LegalMoves, LegalTacticalMoves) or restore the board on a later
// UndoMove. The full sequence: snapshot undo state, remove any
// captured piece (including en passant's displaced pawn), relocate the
// moving piece (promoting it if applicable), move the castling rook,
// update castling rights and en passant target, update the half-move
// clock and full-move number, and finally flip the side to move.
func (b *Board) MakeMove(mv Move) {
	rec := MoveRecord{
		Move:           mv,
		MovedPiece:     b.Squares[mv.From],
		PrevEnPassant:  b.EnPassantSq,
		PrevCastling:   b.CastlingRights,
		PrevHalfMove:   b.HalfMoveClock,
		PrevKingSquare: b.KingSquare,
		PrevHash:       b.Hash,
		PrevMGScore:    b.MGScore,
		PrevEGScore:    b.EGScore,
	}

	moved := rec.MovedPiece
	color := moved.Color()

	// Clear the previous en passant hash contribution; it is
	// recomputed below if this move creates a new target.
	b.Hash ^= hashEnPassant(b.EnPassantSq)

	switch mv.Kind {
	case EnPassant:
		capturedSq := NewSquare(mv.To.File(), mv.From.Rank())
		rec.CapturedPiece = b.Squares[capturedSq]
		b.removePiece(capturedSq, rec.CapturedPiece)
	default:
		if !b.Squares[mv.To].IsEmpty() {
			rec.CapturedPiece = b.Squares[mv.To]
			b.removePiece(mv.To, rec.CapturedPiece)
		}
	}

	b.removePiece(mv.From, moved)

	finalPiece := moved.WithMoved(true)
	if mv.Kind == Promotion {
		finalPiece = NewPiece(color, mv.Promotion).WithMoved(true)
	}
	b.setPiece(mv.To, finalPiece)

	if mv.Kind == Castling {
		rookMove := castlingRookMoves[mv.To]
		rook := b.Squares[rookMove.from]
		b.removePiece(rookMove.from, rook)
		b.setPiece(rookMove.to, rook.WithMoved(true))
	}

	b.CastlingRights &^= castlingRightsLost(mv.From)
	b.CastlingRights &^= castlingRightsLost(mv.To)
	b.Hash ^= hashCastling(rec.PrevCastling)
	b.Hash ^= hashCastling(b.CastlingRights)

	b.EnPassantSq = NoSquare
	if moved.Type() == Pawn {
		delta := mv.To.Rank() - mv.From.Rank()
		if delta == 2 || delta == -2 {
			b.EnPassantSq = NewSquare(mv.From.File(), mv.From.Rank()+delta/2)
		}
	}
	b.Hash ^= hashEnPassant(b.EnPassantSq)

	if moved.Type() == Pawn || mv.IsCapture() {
		b.HalfMoveClock = 0
	} else {
		b.HalfMoveClock++
	}

	if b.ActiveColor == Black {
		b.FullMoveNum++
	}

	b.ActiveColor = b.ActiveColor.Opponent()
	b.Hash ^= zobristSideToMove

	b.history[b.historyLen] = rec
	b.historyLen++
}

// UndoMove reverses the most recent MakeMove call. Calling UndoMove
// without a matching prior MakeMove is a programming error.
func (b *Board) UndoMove() {
	b.historyLen--
	rec := b.history[b.historyLen]
	mv := rec.Move

	b.ActiveColor = b.ActiveColor.Opponent()

	placed := b.Squares[mv.To]
	b.removePiece(mv.To, placed)

	if mv.Kind == Castling {
		rookMove := castlingRookMoves[mv.To]
		rookNow := b.Squares[rookMove.to]
		b.removePiece(rookMove.to, rookNow)
		b.setPiece(rookMove.from, rookNow.WithMoved(false))
	}

	b.setPiece(mv.From, rec.MovedPiece)

	switch mv.Kind {
	case EnPassant:
		capturedSq := NewSquare(mv.To.File(), mv.From.Rank())
		b.setPiece(capturedSq, rec.CapturedPiece)
	default:
		if !rec.CapturedPiece.IsEmpty() {
			b.setPiece(mv.To, rec.CapturedPiece)
		}
	}

	b.EnPassantSq = rec.PrevEnPassant
	b.CastlingRights = rec.PrevCastling
	b.HalfMoveClock = rec.PrevHalfMove
	b.KingSquare = rec.PrevKingSquare
	b.Hash = rec.PrevHash
	b.MGScore = rec.PrevMGScore
	b.EGScore = rec.PrevEGScore

	if b.ActiveColor == Black {
		b.FullMoveNum--
	}
}

// MakeNullMove flips the side to move without moving any piece,
// clearing only the en passant target. Used by null-move pruning to
// probe whether the opponent has a strong reply even after a "free"
// move.
func (b *Board) MakeNullMove() {
	rec := NullMoveRecord{
		PrevEnPassant: b.EnPassantSq,
		PrevHash:      b.Hash,
	}

	b.Hash ^= hashEnPassant(b.EnPassantSq)
	b.EnPassantSq = NoSquare

	b.ActiveColor = b.ActiveColor.Opponent()
	b.Hash ^= zobristSideToMove

	b.nullHistory[b.nullHistoryLen] = rec
	b.nullHistoryLen++
}

// UndoNullMove reverses the most recent MakeNullMove call.
func (b *Board) UndoNullMove() {
	b.nullHistoryLen--
	rec := b.nullHistory[b.nullHistoryLen]

	b.ActiveColor = b.ActiveColor.Opponent()
	b.EnPassantSq = rec.PrevEnPassant
	b.Hash = rec.PrevHash
}
