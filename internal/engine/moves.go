package engine

import (
	"errors"
	"fmt"
)

// MoveKind classifies a move for the purposes of make/undo and move
// ordering.
type MoveKind uint8

const (
	// Normal is a non-capturing, non-special move.
	Normal MoveKind = iota
	// Capture is an ordinary capture (the captured piece sits on To).
	Capture
	// EnPassant is a pawn capturing en passant; the captured pawn does
	// not sit on To.
	EnPassant
	// Castling is a king move of two squares with the matching rook
	// move applied alongside it.
	Castling
	// Promotion is a pawn reaching the last rank; combined with
	// Capture semantics via IsCapture when the destination is occupied.
	Promotion
)

// Move is a compact move record: origin, destination, kind, promotion
// piece (None unless Kind == Promotion), and a copy of the piece that
// sat on the destination (or was captured en passant) before the move
// was made. Equality ignores Captured - see Equal.
type Move struct {
	From      Square
	To        Square
	Kind      MoveKind
	Promotion PieceType
	Captured  Piece
}

// IsCapture reports whether the move removes an enemy piece, including
// en passant and capturing promotions.
func (m Move) IsCapture() bool {
	return m.Kind == Capture || m.Kind == EnPassant || (m.Kind == Promotion && !m.Captured.IsEmpty())
}

// IsPromotion reports whether the move promotes a pawn.
func (m Move) IsPromotion() bool {
	return m.Kind == Promotion
}

// IsQuiet reports whether the move is neither a capture, promotion,
// en passant, nor castling.
func (m Move) IsQuiet() bool {
	return m.Kind == Normal
}

// Equal compares moves by (From, To, Kind, Promotion); Captured is
// metadata recorded for convenience and does not participate in move
// identity.
func (m Move) Equal(o Move) bool {
	return m.From == o.From && m.To == o.To && m.Kind == o.Kind && m.Promotion == o.Promotion
}

// IsNull reports whether this is the null move (used by null-move
// pruning and serialized as "0000").
func (m Move) IsNull() bool {
	return m.From == NoSquare && m.To == NoSquare
}

// NullMove is the sentinel move returned when no legal move exists.
var NullMove = Move{From: NoSquare, To: NoSquare}

// ParseMove parses a move from coordinate notation (e.g. "e2e4",
// "a7a8q"). It does not validate the move against any position - see
// Board.ParseMove for that.
func ParseMove(s string) (Move, error) {
	if s == "0000" {
		return NullMove, nil
	}
	if len(s) < 4 || len(s) > 5 {
		return Move{}, errors.New("invalid move format: expected 4-5 characters")
	}

	fromFile := int(s[0] - 'a')
	fromRank := int(s[1] - '1')
	if fromFile < 0 || fromFile > 7 || fromRank < 0 || fromRank > 7 {
		return Move{}, fmt.Errorf("invalid from square: %s", s[0:2])
	}

	toFile := int(s[2] - 'a')
	toRank := int(s[3] - '1')
	if toFile < 0 || toFile > 7 || toRank < 0 || toRank > 7 {
		return Move{}, fmt.Errorf("invalid to square: %s", s[2:4])
	}

	from := NewSquare(fromFile, fromRank)
	to := NewSquare(toFile, toRank)

	promotion := Empty
	kind := Normal
	if len(s) == 5 {
		kind = Promotion
		switch s[4] {
		case 'q':
			promotion = Queen
		case 'r':
			promotion = Rook
		case 'b':
			promotion = Bishop
		case 'n':
			promotion = Knight
		default:
			return Move{}, fmt.Errorf("invalid promotion character: %c", s[4])
		}
	}

	return Move{From: from, To: to, Kind: kind, Promotion: promotion}, nil
}

// String returns the move in coordinate notation (e.g. "e2e4", "a7a8q",
// castling as the king's two-square move, "0000" for the null move).
func (m Move) String() string {
	if m.IsNull() {
		return "0000"
	}
	s := m.From.String() + m.To.String()
	if m.Kind == Promotion {
		switch m.Promotion {
		case Queen:
			s += "q"
		case Rook:
			s += "r"
		case Bishop:
			s += "b"
		case Knight:
			s += "n"
		}
	}
	return s
}

// ParseMove finds the legal move in the current position matching the
// given coordinate-notation string. Delegating to the legal-move list
// is what classifies captures, en passant, castling, and promotion
// automatically - the string alone is ambiguous about move kind.
func (b *Board) ParseMove(s string) (Move, error) {
	raw, err := ParseMove(s)
	if err != nil {
		return Move{}, err
	}
	if raw.IsNull() {
		return NullMove, nil
	}
	for _, mv := range b.LegalMoves() {
		if mv.From == raw.From && mv.To == raw.To && mv.Promotion == raw.Promotion {
			return mv, nil
		}
	}
	return Move{}, fmt.Errorf("no legal move matches %s", s)
}
