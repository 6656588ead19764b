package engine

var bishopDirs = diagonalDirs
var rookDirs = orthogonalDirs
var knightJumps = knightOffsets
var kingSteps = kingOffsets

// GeneratePseudoLegalMoves returns every pseudo-legal move for the
// side to move: ordinary piece moves, castling, en passant, and the
// four promotion choices, without checking whether the move leaves
// the mover's own king in check. LegalMoves filters this list.
func (b *Board) GeneratePseudoLegalMoves() []Move {
	moves := make([]Move, 0, 48)
	color := b.ActiveColor
	pieces := &b.Pieces[color]

	for i := 0; i < pieces.Len(); i++ {
		sq := pieces.At(i)
		piece := b.Squares[sq]
		switch piece.Type() {
		case Pawn:
			b.generatePawnMoves(sq, &moves)
		case Knight:
			b.generateJumpMoves(sq, knightJumps[:], &moves)
		case Bishop:
			b.generateSlideMoves(sq, bishopDirs[:], &moves)
		case Rook:
			b.generateSlideMoves(sq, rookDirs[:], &moves)
		case Queen:
			b.generateSlideMoves(sq, bishopDirs[:], &moves)
			b.generateSlideMoves(sq, rookDirs[:], &moves)
		case King:
			b.generateJumpMoves(sq, kingSteps[:], &moves)
			b.generateCastlingMoves(sq, &moves)
		}
	}

	return moves
}

// GenerateTacticalMoves returns only captures, en passant, and
// promotions - the subset quiescence search expands.
func (b *Board) GenerateTacticalMoves() []Move {
	all := b.GeneratePseudoLegalMoves()
	out := all[:0]
	for _, mv := range all {
		if mv.IsCapture() || mv.IsPromotion() {
			out = append(out, mv)
		}
	}
	return out
}

var promotionPieces = [4]PieceType{Queen, Rook, Bishop, Knight}

func (b *Board) generatePawnMoves(sq Square, moves *[]Move) {
	color := b.ActiveColor
	file := sq.File()
	rank := sq.Rank()

	direction := 1
	startRank := 1
	promoRank := 7
	if color == Black {
		direction = -1
		startRank = 6
		promoRank = 0
	}

	emitForward := func(to Square) {
		if to.Rank() == promoRank {
			for _, promo := range promotionPieces {
				*moves = append(*moves, Move{From: sq, To: to, Kind: Promotion, Promotion: promo})
			}
		} else {
			*moves = append(*moves, Move{From: sq, To: to, Kind: Normal})
		}
	}
	emitCapture := func(to Square, captured Piece) {
		kind := Capture
		if to.Rank() == promoRank {
			for _, promo := range promotionPieces {
				*moves = append(*moves, Move{From: sq, To: to, Kind: Promotion, Promotion: promo, Captured: captured})
			}
			return
		}
		*moves = append(*moves, Move{From: sq, To: to, Kind: kind, Captured: captured})
	}

	forwardRank := rank + direction
	if forwardRank >= 0 && forwardRank <= 7 {
		forwardSq := NewSquare(file, forwardRank)
		if b.Squares[forwardSq].IsEmpty() {
			emitForward(forwardSq)

			if rank == startRank {
				twoForwardSq := NewSquare(file, rank+2*direction)
				if b.Squares[twoForwardSq].IsEmpty() {
					*moves = append(*moves, Move{From: sq, To: twoForwardSq, Kind: Normal})
				}
			}
		}
	}

	for _, fileOffset := range [2]int{-1, 1} {
		captureFile := file + fileOffset
		captureRank := rank + direction
		if captureFile < 0 || captureFile > 7 || captureRank < 0 || captureRank > 7 {
			continue
		}
		captureSq := NewSquare(captureFile, captureRank)

		if captureSq == b.EnPassantSq {
			*moves = append(*moves, Move{From: sq, To: captureSq, Kind: EnPassant})
			continue
		}

		target := b.Squares[captureSq]
		if !target.IsEmpty() && target.Color() != b.ActiveColor {
			emitCapture(captureSq, target)
		}
	}
}

func (b *Board) generateJumpMoves(sq Square, offsets [][2]int, moves *[]Move) {
	file := sq.File()
	rank := sq.Rank()
	for _, offset := range offsets {
		toFile := file + offset[0]
		toRank := rank + offset[1]
		if toFile < 0 || toFile > 7 || toRank < 0 || toRank > 7 {
			continue
		}
		to := NewSquare(toFile, toRank)
		target := b.Squares[to]
		if target.IsEmpty() {
			*moves = append(*moves, Move{From: sq, To: to, Kind: Normal})
		} else if target.Color() != b.ActiveColor {
			*moves = append(*moves, Move{From: sq, To: to, Kind: Capture, Captured: target})
		}
	}
}

func (b *Board) generateSlideMoves(sq Square, dirs [][2]int, moves *[]Move) {
	file := sq.File()
	rank := sq.Rank()
	for _, dir := range dirs {
		for dist := 1; dist <= 7; dist++ {
			toFile := file + dir[0]*dist
			toRank := rank + dir[1]*dist
			if toFile < 0 || toFile > 7 || toRank < 0 || toRank > 7 {
				break
			}
			to := NewSquare(toFile, toRank)
			target := b.Squares[to]
			if target.IsEmpty() {
				*moves = append(*moves, Move{From: sq, To: to, Kind: Normal})
				continue
			}
			if target.Color() != b.ActiveColor {
				*moves = append(*moves, Move{From: sq, To: to, Kind: Capture, Captured: target})
			}
			break
		}
	}
}

// generateCastlingMoves adds kingside/queenside castling moves when
// the corresponding right is held, the squares between king and rook
// are empty, and the king does not start, pass through, or end in
// check.
func (b *Board) generateCastlingMoves(kingSq Square, moves *[]Move) {
	color := b.ActiveColor
	opponent := color.Opponent()

	type castleOption struct {
		right        uint8
		kingTo       Square
		emptySquares []Square
		safeSquares  [3]Square
	}

	var options []castleOption
	if color == White {
		options = []castleOption{
			{CastleWhiteKing, G1, []Square{F1, G1}, [3]Square{E1, F1, G1}},
			{CastleWhiteQueen, C1, []Square{D1, C1, B1}, [3]Square{E1, D1, C1}},
		}
	} else {
		options = []castleOption{
			{CastleBlackKing, G8, []Square{F8, G8}, [3]Square{E8, F8, G8}},
			{CastleBlackQueen, C8, []Square{D8, C8, B8}, [3]Square{E8, D8, C8}},
		}
	}

	for _, opt := range options {
		if b.CastlingRights&opt.right == 0 {
			continue
		}
		clear := true
		for _, sq := range opt.emptySquares {
			if !b.Squares[sq].IsEmpty() {
				clear = false
				break
			}
		}
		if !clear {
			continue
		}
		safe := true
		for _, sq := range opt.safeSquares {
			if b.IsSquareAttacked(sq, opponent) {
				safe = false
				break
			}
		}
		if !safe {
			continue
		}
		*moves = append(*moves, Move{From: kingSq, To: opt.kingTo, Kind: Castling})
	}
}
