package engine

import (
	"fmt"
	"strconv"
	"strings"
)

// FromFEN creates a Board from a FEN (Forsyth-Edwards Notation)
// string: <pieces> <active> <castling> <ep> <halfmove> <fullmove>,
// e.g. "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1".
func FromFEN(fen string) (*Board, error) {
	parts := strings.Fields(fen)
	if len(parts) != 6 {
		return nil, fmt.Errorf("FEN must have 6 parts, got %d", len(parts))
	}

	b := &Board{
		ActiveColor:   White,
		EnPassantSq:   NoSquare,
		HalfMoveClock: 0,
		FullMoveNum:   1,
	}
	b.KingSquare[White] = NoSquare
	b.KingSquare[Black] = NoSquare

	ranks := strings.Split(parts[0], "/")
	if len(ranks) != 8 {
		return nil, fmt.Errorf("FEN piece placement must have 8 ranks, got %d", len(ranks))
	}

	for rankIdx := 0; rankIdx < 8; rankIdx++ {
		rank := 7 - rankIdx
		rankStr := ranks[rankIdx]
		file := 0

		for _, ch := range rankStr {
			if ch >= '1' && ch <= '8' {
				file += int(ch - '0')
				continue
			}

			if file > 7 {
				return nil, fmt.Errorf("too many pieces in rank %d", rank+1)
			}

			var color Color
			pieceCh := ch
			if pieceCh >= 'A' && pieceCh <= 'Z' {
				color = White
			} else {
				color = Black
				pieceCh = pieceCh - 'a' + 'A'
			}

			var pieceType PieceType
			switch pieceCh {
			case 'P':
				pieceType = Pawn
			case 'N':
				pieceType = Knight
			case 'B':
				pieceType = Bishop
			case 'R':
				pieceType = Rook
			case 'Q':
				pieceType = Queen
			case 'K':
				pieceType = King
			default:
				return nil, fmt.Errorf("invalid piece character: %c", ch)
			}

			sq := NewSquare(file, rank)
			b.setPiece(sq, NewPiece(color, pieceType))
			file++
		}

		if file != 8 {
			return nil, fmt.Errorf("rank %d has %d squares, expected 8", rank+1, file)
		}
	}

	if b.KingSquare[White] == NoSquare || b.KingSquare[Black] == NoSquare {
		return nil, fmt.Errorf("FEN must place exactly one king per side")
	}

	switch parts[1] {
	case "w":
		b.ActiveColor = White
	case "b":
		b.ActiveColor = Black
	default:
		return nil, fmt.Errorf("invalid active color: %s (expected 'w' or 'b')", parts[1])
	}

	if parts[2] != "-" {
		for _, ch := range parts[2] {
			switch ch {
			case 'K':
				b.CastlingRights |= CastleWhiteKing
			case 'Q':
				b.CastlingRights |= CastleWhiteQueen
			case 'k':
				b.CastlingRights |= CastleBlackKing
			case 'q':
				b.CastlingRights |= CastleBlackQueen
			default:
				return nil, fmt.Errorf("invalid castling character: %c", ch)
			}
		}
	}

	if parts[3] != "-" {
		if len(parts[3]) != 2 {
			return nil, fmt.Errorf("invalid en passant square: %s", parts[3])
		}
		file := int(parts[3][0] - 'a')
		rank := int(parts[3][1] - '1')
		if file < 0 || file > 7 || rank < 0 || rank > 7 {
			return nil, fmt.Errorf("invalid en passant square: %s", parts[3])
		}
		b.EnPassantSq = NewSquare(file, rank)
	}

	halfMove, err := strconv.Atoi(parts[4])
	if err != nil || halfMove < 0 || halfMove > 255 {
		return nil, fmt.Errorf("invalid half-move clock: %s", parts[4])
	}
	b.HalfMoveClock = uint8(halfMove)

	fullMove, err := strconv.Atoi(parts[5])
	if err != nil || fullMove < 1 || fullMove > 65535 {
		return nil, fmt.Errorf("invalid full move number: %s", parts[5])
	}
	b.FullMoveNum = uint16(fullMove)

	b.Hash = b.ComputeHash()

	return b, nil
}

// FromFENOrStart parses fen and falls back to the standard starting
// position if it is malformed, for callers that would rather start a
// sane game than propagate a parse error from untrusted input.
func FromFENOrStart(fen string) *Board {
	b, err := FromFEN(fen)
	if err != nil {
		return NewBoard()
	}
	return b
}

// FEN serializes the board back to Forsyth-Edwards Notation.
func (b *Board) FEN() string {
	var sb strings.Builder

	for rankIdx := 0; rankIdx < 8; rankIdx++ {
		rank := 7 - rankIdx
		empty := 0
		for file := 0; file < 8; file++ {
			p := b.Squares[NewSquare(file, rank)]
			if p.IsEmpty() {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			sb.WriteRune(pieceFENChar(p))
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
		if rankIdx != 7 {
			sb.WriteByte('/')
		}
	}

	sb.WriteByte(' ')
	if b.ActiveColor == White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}

	sb.WriteByte(' ')
	if b.CastlingRights == 0 {
		sb.WriteByte('-')
	} else {
		if b.CastlingRights&CastleWhiteKing != 0 {
			sb.WriteByte('K')
		}
		if b.CastlingRights&CastleWhiteQueen != 0 {
			sb.WriteByte('Q')
		}
		if b.CastlingRights&CastleBlackKing != 0 {
			sb.WriteByte('k')
		}
		if b.CastlingRights&CastleBlackQueen != 0 {
			sb.WriteByte('q')
		}
	}

	sb.WriteByte(' ')
	if b.EnPassantSq == NoSquare {
		sb.WriteByte('-')
	} else {
		sb.WriteString(b.EnPassantSq.String())
	}

	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(int(b.HalfMoveClock)))
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(int(b.FullMoveNum)))

	return sb.String()
}

func pieceFENChar(p Piece) rune {
	var ch rune
	switch p.Type() {
	case Pawn:
		ch = 'p'
	case Knight:
		ch = 'n'
	case Bishop:
		ch = 'b'
	case Rook:
		ch = 'r'
	case Queen:
		ch = 'q'
	case King:
		ch = 'k'
	}
	if p.Color() == White {
		ch = ch - 'a' + 'A'
	}
	return ch
}
