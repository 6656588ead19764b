package engine

// IsSquareAttacked reports whether sq is attacked by any piece of
// byColor. It works backwards from the target square, probing each
// attacker pattern in turn rather than scanning every piece on the
// board.
func (b *Board) IsSquareAttacked(sq Square, byColor Color) bool {
	if !sq.IsValid() {
		return false
	}

	file := sq.File()
	rank := sq.Rank()

	if b.isSquareAttackedByPawn(sq, file, rank, byColor) {
		return true
	}
	if b.isSquareAttackedByKnight(sq, file, rank, byColor) {
		return true
	}
	if b.isSquareAttackedByKing(sq, file, rank, byColor) {
		return true
	}
	if b.isSquareAttackedDiagonally(file, rank, byColor) {
		return true
	}
	if b.isSquareAttackedOrthogonally(file, rank, byColor) {
		return true
	}

	return false
}

// isSquareAttackedByPawn checks the two diagonal squares a pawn of
// byColor would attack from.
func (b *Board) isSquareAttackedByPawn(sq Square, file, rank int, byColor Color) bool {
	var attackerRank int
	if byColor == White {
		attackerRank = rank - 1
	} else {
		attackerRank = rank + 1
	}
	if attackerRank < 0 || attackerRank > 7 {
		return false
	}

	for _, attackerFile := range [2]int{file - 1, file + 1} {
		if attackerFile < 0 || attackerFile > 7 {
			continue
		}
		attackerSq := NewSquare(attackerFile, attackerRank)
		piece := b.Squares[attackerSq]
		if piece.Type() == Pawn && piece.Color() == byColor {
			return true
		}
	}

	return false
}

var knightOffsets = [8][2]int{
	{+2, +1}, {+2, -1}, {-2, +1}, {-2, -1},
	{+1, +2}, {+1, -2}, {-1, +2}, {-1, -2},
}

func (b *Board) isSquareAttackedByKnight(sq Square, file, rank int, byColor Color) bool {
	for _, offset := range knightOffsets {
		attackerFile := file + offset[0]
		attackerRank := rank + offset[1]
		if attackerFile < 0 || attackerFile > 7 || attackerRank < 0 || attackerRank > 7 {
			continue
		}
		attackerSq := NewSquare(attackerFile, attackerRank)
		piece := b.Squares[attackerSq]
		if piece.Type() == Knight && piece.Color() == byColor {
			return true
		}
	}
	return false
}

var kingOffsets = [8][2]int{
	{+1, +1}, {+1, -1}, {-1, +1}, {-1, -1},
	{+1, 0}, {-1, 0}, {0, +1}, {0, -1},
}

func (b *Board) isSquareAttackedByKing(sq Square, file, rank int, byColor Color) bool {
	for _, offset := range kingOffsets {
		attackerFile := file + offset[0]
		attackerRank := rank + offset[1]
		if attackerFile < 0 || attackerFile > 7 || attackerRank < 0 || attackerRank > 7 {
			continue
		}
		attackerSq := NewSquare(attackerFile, attackerRank)
		piece := b.Squares[attackerSq]
		if piece.Type() == King && piece.Color() == byColor {
			return true
		}
	}
	return false
}

var diagonalDirs = [4][2]int{{+1, +1}, {+1, -1}, {-1, +1}, {-1, -1}}
var orthogonalDirs = [4][2]int{{+1, 0}, {-1, 0}, {0, +1}, {0, -1}}

// isSquareAttackedDiagonally slides along each diagonal until it hits
// a piece or the board edge; a bishop or queen of byColor at the first
// occupied square attacks.
func (b *Board) isSquareAttackedDiagonally(file, rank int, byColor Color) bool {
	for _, dir := range diagonalDirs {
		for dist := 1; dist <= 7; dist++ {
			attackerFile := file + dir[0]*dist
			attackerRank := rank + dir[1]*dist
			if attackerFile < 0 || attackerFile > 7 || attackerRank < 0 || attackerRank > 7 {
				break
			}
			attackerSq := NewSquare(attackerFile, attackerRank)
			piece := b.Squares[attackerSq]
			if piece.IsEmpty() {
				continue
			}
			if piece.Color() == byColor && (piece.Type() == Bishop || piece.Type() == Queen) {
				return true
			}
			break
		}
	}
	return false
}

// isSquareAttackedOrthogonally slides along each rank/file the same
// way isSquareAttackedDiagonally slides diagonals.
func (b *Board) isSquareAttackedOrthogonally(file, rank int, byColor Color) bool {
	for _, dir := range orthogonalDirs {
		for dist := 1; dist <= 7; dist++ {
			attackerFile := file + dir[0]*dist
			attackerRank := rank + dir[1]*dist
			if attackerFile < 0 || attackerFile > 7 || attackerRank < 0 || attackerRank > 7 {
				break
			}
			attackerSq := NewSquare(attackerFile, attackerRank)
			piece := b.Squares[attackerSq]
			if piece.IsEmpty() {
				continue
			}
			if piece.Color() == byColor && (piece.Type() == Rook || piece.Type() == Queen) {
				return true
			}
			break
		}
	}
	return false
}
