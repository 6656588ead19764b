package engine

// PieceValue gives the standard material value of a piece type in
// centipawns, used both for the incremental score and by callers (SEE,
// move ordering) that need a standalone material figure.
var PieceValue = [7]int32{
	Empty:  0,
	Pawn:   100,
	Knight: 320,
	Bishop: 330,
	Rook:   500,
	Queen:  900,
	King:   20000,
}

// Piece-square tables are declared from White's perspective (index 0 is
// a1, index 63 is h8); Black pieces look up the vertically mirrored
// square via MirrorSquare. Separate middlegame/endgame tables let the
// evaluator taper between them; Board maintains both sums
// incrementally so a full recompute is never needed mid-search.
var pstMG = [7][64]int32{
	Pawn: {
		0, 0, 0, 0, 0, 0, 0, 0,
		5, 10, 10, -20, -20, 10, 10, 5,
		5, -5, -10, 0, 0, -10, -5, 5,
		0, 0, 0, 20, 20, 0, 0, 0,
		5, 5, 10, 25, 25, 10, 5, 5,
		10, 10, 20, 30, 30, 20, 10, 10,
		50, 50, 50, 50, 50, 50, 50, 50,
		0, 0, 0, 0, 0, 0, 0, 0,
	},
	Knight: {
		-50, -40, -30, -30, -30, -30, -40, -50,
		-40, -20, 0, 5, 5, 0, -20, -40,
		-30, 5, 10, 15, 15, 10, 5, -30,
		-30, 0, 15, 20, 20, 15, 0, -30,
		-30, 5, 15, 20, 20, 15, 5, -30,
		-30, 0, 10, 15, 15, 10, 0, -30,
		-40, -20, 0, 0, 0, 0, -20, -40,
		-50, -40, -30, -30, -30, -30, -40, -50,
	},
	Bishop: {
		-20, -10, -10, -10, -10, -10, -10, -20,
		-10, 5, 0, 0, 0, 0, 5, -10,
		-10, 10, 10, 10, 10, 10, 10, -10,
		-10, 0, 10, 10, 10, 10, 0, -10,
		-10, 5, 5, 10, 10, 5, 5, -10,
		-10, 0, 5, 10, 10, 5, 0, -10,
		-10, 0, 0, 0, 0, 0, 0, -10,
		-20, -10, -10, -10, -10, -10, -10, -20,
	},
	Rook: {
		0, 0, 0, 5, 5, 0, 0, 0,
		-5, 0, 0, 0, 0, 0, 0, -5,
		-5, 0, 0, 0, 0, 0, 0, -5,
		-5, 0, 0, 0, 0, 0, 0, -5,
		-5, 0, 0, 0, 0, 0, 0, -5,
		-5, 0, 0, 0, 0, 0, 0, -5,
		5, 10, 10, 10, 10, 10, 10, 5,
		0, 0, 0, 0, 0, 0, 0, 0,
	},
	Queen: {
		-20, -10, -10, -5, -5, -10, -10, -20,
		-10, 0, 5, 0, 0, 0, 0, -10,
		-10, 5, 5, 5, 5, 5, 0, -10,
		0, 0, 5, 5, 5, 5, 0, -5,
		-5, 0, 5, 5, 5, 5, 0, -5,
		-10, 0, 5, 5, 5, 5, 0, -10,
		-10, 0, 0, 0, 0, 0, 0, -10,
		-20, -10, -10, -5, -5, -10, -10, -20,
	},
	King: {
		20, 30, 10, 0, 0, 10, 30, 20,
		20, 20, 0, 0, 0, 0, 20, 20,
		-10, -20, -20, -20, -20, -20, -20, -10,
		-20, -30, -30, -40, -40, -30, -30, -20,
		-30, -40, -40, -50, -50, -40, -40, -30,
		-30, -40, -40, -50, -50, -40, -40, -30,
		-30, -40, -40, -50, -50, -40, -40, -30,
		-30, -40, -40, -50, -50, -40, -40, -30,
	},
}

var pstEG = [7][64]int32{
	Pawn: {
		0, 0, 0, 0, 0, 0, 0, 0,
		5, 5, 10, 10, 10, 10, 5, 5,
		10, 10, 15, 20, 20, 15, 10, 10,
		15, 15, 20, 30, 30, 20, 15, 15,
		25, 25, 30, 40, 40, 30, 25, 25,
		45, 45, 50, 55, 55, 50, 45, 45,
		80, 80, 80, 80, 80, 80, 80, 80,
		0, 0, 0, 0, 0, 0, 0, 0,
	},
	Knight: pstMG[Knight],
	Bishop: pstMG[Bishop],
	Rook:   pstMG[Rook],
	Queen:  pstMG[Queen],
	King: {
		-50, -30, -30, -30, -30, -30, -30, -50,
		-30, -20, -10, 0, 0, -10, -20, -30,
		-30, -10, 20, 30, 30, 20, -10, -30,
		-30, -10, 30, 40, 40, 30, -10, -30,
		-30, -10, 30, 40, 40, 30, -10, -30,
		-30, -10, 20, 30, 30, 20, -10, -30,
		-30, -30, 0, 0, 0, 0, -30, -30,
		-50, -40, -30, -20, -20, -30, -40, -50,
	},
}

// MirrorSquare flips a square vertically (rank r -> rank 7-r, same
// file). Black pieces read White-perspective PST tables through this
// mirror.
func MirrorSquare(sq Square) Square {
	return Square((7-sq.Rank())*8 + sq.File())
}

// pstLookup returns the (mg, eg) piece-square value for a piece sitting
// on sq, signed from White's perspective (positive favors White).
func pstLookup(p Piece, sq Square) (mg, eg int32) {
	t := p.Type()
	idx := sq
	if p.Color() == Black {
		idx = MirrorSquare(sq)
	}
	mg = pstMG[t][idx]
	eg = pstEG[t][idx]
	material := PieceValue[t]
	if p.Color() == White {
		return mg + material, eg + material
	}
	return -(mg + material), -(eg + material)
}

// gamePhaseWeight gives the phase contribution of one piece, used to
// compute the tapering scalar described in the evaluator: Q=4, R=2,
// B=1, N=1, totalling 24 in the starting position.
var gamePhaseWeight = [7]int32{
	Knight: 1,
	Bishop: 1,
	Rook:   2,
	Queen:  4,
}

const maxGamePhase = 24
