// Package engine implements the board representation, move generation,
// and position bookkeeping for the chess core.
package engine

// Color represents the color of a chess piece (White or Black).
type Color uint8

const (
	// White is the white player (value 0).
	White Color = 0
	// Black is the black player (value 1).
	Black Color = 1
)

// Opponent returns the other color.
func (c Color) Opponent() Color {
	return c ^ 1
}

// PieceType represents the kind of a chess piece.
type PieceType uint8

const (
	// Empty represents an empty square.
	Empty PieceType = 0
	// Pawn represents a pawn piece.
	Pawn PieceType = 1
	// Knight represents a knight piece.
	Knight PieceType = 2
	// Bishop represents a bishop piece.
	Bishop PieceType = 3
	// Rook represents a rook piece.
	Rook PieceType = 4
	// Queen represents a queen piece.
	Queen PieceType = 5
	// King represents a king piece.
	King PieceType = 6
)

// Piece represents a chess piece encoded as a single byte.
// Bit 7 stores the color (0=White, 1=Black), bit 3 stores the
// has-moved flag (only meaningful for Kings and Rooks), and the
// low 3 bits store the piece type.
type Piece uint8

const (
	pieceTypeMask  = 0x07
	pieceMovedBit  = 0x08
	pieceColorShft = 7
)

// NewPiece creates a new Piece with the given color and piece type.
// The has-moved flag starts cleared.
func NewPiece(color Color, pieceType PieceType) Piece {
	return Piece((uint8(color) << pieceColorShft) | uint8(pieceType))
}

// Color returns the color of the piece.
func (p Piece) Color() Color {
	return Color(p >> pieceColorShft)
}

// Type returns the type of the piece.
func (p Piece) Type() PieceType {
	return PieceType(p & pieceTypeMask)
}

// IsEmpty returns true if the piece is empty (no piece on square).
func (p Piece) IsEmpty() bool {
	return p.Type() == Empty
}

// HasMoved reports the has-moved bit. Only Kings and Rooks consult it.
func (p Piece) HasMoved() bool {
	return p&pieceMovedBit != 0
}

// WithMoved returns a copy of the piece with the has-moved bit set or
// cleared. It does not mutate p.
func (p Piece) WithMoved(moved bool) Piece {
	if moved {
		return p | pieceMovedBit
	}
	return p &^ pieceMovedBit
}

// Equal reports whether two pieces have the same kind and color. The
// has-moved flag is metadata and is ignored.
func (p Piece) Equal(o Piece) bool {
	return p.Type() == o.Type() && (p.Type() == Empty || p.Color() == o.Color())
}

// Square represents a square on the chess board (0-63).
// Indexed as rank*8 + file, where a1 = 0, h8 = 63.
type Square int8

const (
	// NoSquare represents an invalid or non-existent square.
	NoSquare Square = -1
)

// NewSquare creates a Square from file and rank (both 0-7).
// file: 0=a, 1=b, ..., 7=h
// rank: 0=1, 1=2, ..., 7=8
func NewSquare(file, rank int) Square {
	if file < 0 || file > 7 || rank < 0 || rank > 7 {
		return NoSquare
	}
	return Square(rank*8 + file)
}

// File returns the file of the square (0=a, 1=b, ..., 7=h).
func (s Square) File() int {
	return int(s) % 8
}

// Rank returns the rank of the square (0=1, 1=2, ..., 7=8).
func (s Square) Rank() int {
	return int(s) / 8
}

// IsValid returns true if the square is a valid board square (0-63).
func (s Square) IsValid() bool {
	return s >= 0 && s <= 63
}

// String returns the algebraic notation of the square (e.g., "a1", "h8").
func (s Square) String() string {
	if !s.IsValid() {
		return "-"
	}
	file := 'a' + rune(s.File())
	rank := '1' + rune(s.Rank())
	return string(file) + string(rank)
}

// chebyshevDistance returns the number of king moves needed to go from
// a to b: max(|file delta|, |rank delta|).
func chebyshevDistance(a, b Square) int {
	df := a.File() - b.File()
	if df < 0 {
		df = -df
	}
	dr := a.Rank() - b.Rank()
	if dr < 0 {
		dr = -dr
	}
	if df > dr {
		return df
	}
	return dr
}
