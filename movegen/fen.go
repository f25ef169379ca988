package movegen

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// StartFEN is the FEN string for the standard initial chess position.
const StartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// ErrInvalidFEN is matched by every error ParseFEN returns.
var ErrInvalidFEN = errors.New("invalid FEN")

// FEN field names reported in FenError.Field.
const (
	FieldCount     = "fields"
	FieldPlacement = "position"
	FieldSide      = "side to move"
	FieldCastling  = "castling"
	FieldEnPassant = "en passant"
	FieldHalfmove  = "halfmove clock"
	FieldFullmove  = "fullmove number"
)

// FenError describes why a FEN string was rejected and which field was at fault.
type FenError struct {
	Field  string
	Reason string
}

func (e *FenError) Error() string {
	return fmt.Sprintf("invalid FEN: %s: %s", e.Field, e.Reason)
}

// Unwrap lets errors.Is(err, ErrInvalidFEN) match.
func (e *FenError) Unwrap() error { return ErrInvalidFEN }

func fenError(field, format string, args ...any) error {
	return &FenError{Field: field, Reason: fmt.Sprintf(format, args...)}
}

// ParseFEN parses a FEN string. The halfmove clock and fullmove number may be
// omitted and default to 0 and 1.
func ParseFEN(fen string) (Position, error) {
	fields := strings.Fields(fen)
	if len(fields) < 4 || len(fields) > 6 {
		return Position{}, fenError(FieldCount, "expected 4 to 6 fields, got %d", len(fields))
	}

	p := Position{ep: NoSquare, fullmove: 1}

	// 1. Piece placement
	ranks := strings.Split(fields[0], "/")
	if len(ranks) != 8 {
		return Position{}, fenError(FieldPlacement, "expected 8 ranks, got %d", len(ranks))
	}
	for row, rank := range ranks {
		label := 8 - row
		file := 0
		for i := 0; i < len(rank); i++ {
			ch := rank[i]
			if ch >= '1' && ch <= '8' {
				file += int(ch - '0')
			} else {
				pc, ok := pieceFromChar(ch)
				if !ok {
					return Position{}, fenError(FieldPlacement, "invalid character %q in rank %d", ch, label)
				}
				if file < 8 {
					p.addPiece(Square(row*8+file), pc.Color(), pc.Kind())
				}
				file++
			}
			if file > 8 {
				return Position{}, fenError(FieldPlacement, "rank %d describes more than 8 squares", label)
			}
		}
		if file != 8 {
			return Position{}, fenError(FieldPlacement, "rank %d describes %d squares, want 8", label, file)
		}
	}

	// 2. Side to move
	switch fields[1] {
	case "w":
		p.side = White
	case "b":
		p.side = Black
	default:
		return Position{}, fenError(FieldSide, "want \"w\" or \"b\", got %q", fields[1])
	}

	// 3. Castling rights
	if fields[2] != "-" {
		for i := 0; i < len(fields[2]); i++ {
			var right CastleRights
			switch fields[2][i] {
			case 'K':
				right = WhiteShort
			case 'Q':
				right = WhiteLong
			case 'k':
				right = BlackShort
			case 'q':
				right = BlackLong
			default:
				return Position{}, fenError(FieldCastling, "invalid character %q", fields[2][i])
			}
			if p.castle.Has(right) {
				return Position{}, fenError(FieldCastling, "%q given twice", fields[2][i])
			}
			p.castle |= right
		}
	}

	// 4. En passant target square
	if fields[3] != "-" {
		sq, err := ParseSquare(fields[3])
		if err != nil {
			return Position{}, fenError(FieldEnPassant, "%q is not a square", fields[3])
		}
		p.ep = sq
	}

	// 5. Halfmove clock
	if len(fields) > 4 {
		n, err := parseCounter(fields[4])
		if err != nil {
			return Position{}, fenError(FieldHalfmove, "%q is not a non-negative integer", fields[4])
		}
		p.halfmove = n
	}

	// 6. Fullmove number
	if len(fields) > 5 {
		n, err := parseCounter(fields[5])
		if err != nil {
			return Position{}, fenError(FieldFullmove, "%q is not a non-negative integer", fields[5])
		}
		p.fullmove = n
	}

	p.hash = p.ComputeHash()
	return p, nil
}

// parseCounter reads a move counter, which is written with digits only.
func parseCounter(s string) (int, error) {
	if s == "" || s[0] < '0' || s[0] > '9' {
		return 0, strconv.ErrSyntax
	}
	return strconv.Atoi(s)
}

// MustParseFEN is like ParseFEN but panics on invalid input. Intended for
// constants and tests.
func MustParseFEN(fen string) Position {
	p, err := ParseFEN(fen)
	if err != nil {
		panic(err)
	}
	return p
}

// FEN produces the FEN string of the position.
func (p *Position) FEN() string {
	var sb strings.Builder

	// 1. Piece placement, rank 8 first
	for row := 0; row < 8; row++ {
		empty := 0
		for file := 0; file < 8; file++ {
			pc := p.PieceAt(Square(row*8 + file))
			if pc == NoPiece {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte('0' + byte(empty))
				empty = 0
			}
			sb.WriteByte(pc.Char())
		}
		if empty > 0 {
			sb.WriteByte('0' + byte(empty))
		}
		if row < 7 {
			sb.WriteByte('/')
		}
	}

	// 2. Side to move
	if p.side == White {
		sb.WriteString(" w ")
	} else {
		sb.WriteString(" b ")
	}

	// 3-4. Castling rights and en passant square
	sb.WriteString(p.castle.String())
	sb.WriteByte(' ')
	sb.WriteString(p.ep.String())

	// 5-6. Clocks
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(p.halfmove))
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(p.fullmove))
	return sb.String()
}
