package engine

import "math/rand"

// Zobrist hash tables are process-wide and initialized once at package
// init time with deterministic values, so saved positions and
// transposition-table dumps stay comparable across runs of the
// program.
var (
	// zobristPieces[pieceIndex][square] - random value for each piece
	// type on each square. pieceIndex = color*6 + (pieceType-1), giving
	// 12 piece indices (0-5 White, 6-11 Black) x 64 squares.
	zobristPieces [12][64]uint64

	// zobristSideToMove is XORed in whenever it is Black's turn.
	zobristSideToMove uint64

	// zobristCastling[rights] - one value per castling-rights bitmask
	// (0-15), XORed in whole rather than per-bit so a single XOR
	// captures whatever combination of rights is active.
	zobristCastling [16]uint64

	// zobristEnPassant[file] - XORed in only when an en passant square
	// is available, indexed by its file.
	zobristEnPassant [8]uint64
)

// zobristSeed is fixed so hashes are reproducible across runs.
const zobristSeed = 0x5D4E3C2B1A

func init() {
	rng := rand.New(rand.NewSource(zobristSeed))

	for pieceIndex := 0; pieceIndex < 12; pieceIndex++ {
		for square := 0; square < 64; square++ {
			zobristPieces[pieceIndex][square] = rng.Uint64()
		}
	}

	zobristSideToMove = rng.Uint64()

	for rights := 0; rights < 16; rights++ {
		zobristCastling[rights] = rng.Uint64()
	}

	for file := 0; file < 8; file++ {
		zobristEnPassant[file] = rng.Uint64()
	}
}

// pieceZobristIndex returns the Zobrist table index for a piece.
// Returns -1 for empty squares.
func pieceZobristIndex(p Piece) int {
	if p.IsEmpty() {
		return -1
	}
	return int(p.Color())*6 + int(p.Type()) - 1
}

// hashPiece returns the Zobrist contribution of placing piece p on sq.
// XOR the same value again to remove it.
func hashPiece(p Piece, sq Square) uint64 {
	if p.IsEmpty() {
		return 0
	}
	return zobristPieces[pieceZobristIndex(p)][sq]
}

// hashCastling returns the Zobrist contribution of a castling-rights
// bitmask.
func hashCastling(rights uint8) uint64 {
	return zobristCastling[rights]
}

// hashEnPassant returns the Zobrist contribution of an en passant
// target square, or 0 if there is none.
func hashEnPassant(sq Square) uint64 {
	if sq == NoSquare {
		return 0
	}
	return zobristEnPassant[sq.File()]
}

// ComputeHash computes the Zobrist hash for the current board position
// from scratch. Used on FEN parse and to validate incremental updates.
func (b *Board) ComputeHash() uint64 {
	var hash uint64

	for sq := Square(0); sq < 64; sq++ {
		piece := b.Squares[sq]
		if !piece.IsEmpty() {
			hash ^= hashPiece(piece, sq)
		}
	}

	if b.ActiveColor == Black {
		hash ^= zobristSideToMove
	}

	hash ^= hashCastling(b.CastlingRights)
	hash ^= hashEnPassant(b.EnPassantSq)

	return hash
}
