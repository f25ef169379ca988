package movegen

import (
	"errors"
	"strings"
)

// MoveKind tags a move for fast dispatch when it is applied. The tag is always
// derivable from the origin, destination, moving piece and target occupancy.
type MoveKind uint8

const (
	Quiet MoveKind = iota
	Capture
	DoublePawnPush
	EnPassantCapture
	CastleShort
	CastleLong
	Promotion
	PromotionCapture
)

var moveKindNames = [...]string{
	"quiet", "capture", "double pawn push", "en passant",
	"castle short", "castle long", "promotion", "promotion capture",
}

func (k MoveKind) String() string {
	if int(k) < len(moveKindNames) {
		return moveKindNames[k]
	}
	return "invalid"
}

// Move encodes a move in a 32-bit value.
type Move uint32

// Bitfield layout within Move (from LSB to MSB)
const (
	moveFromShift  = 0  // 6 bits
	moveToShift    = 6  // 6 bits
	moveKindShift  = 12 // 3 bits
	movePromoShift = 15 // 3 bits
)

// NoMove is the zero Move; it is never produced by the generator.
const NoMove Move = 0

// ErrIllegalMove is returned when a move text does not match any legal move.
var ErrIllegalMove = errors.New("illegal move")

// NewMove constructs a Move. promo is ignored unless kind is a promotion.
func NewMove(from, to Square, kind MoveKind, promo PieceKind) Move {
	if kind != Promotion && kind != PromotionCapture {
		promo = NoKind
	}
	return Move(uint32(from&0x3F)<<moveFromShift |
		uint32(to&0x3F)<<moveToShift |
		uint32(kind&0x7)<<moveKindShift |
		uint32(promo&0x7)<<movePromoShift)
}

// From returns the origin square.
func (m Move) From() Square { return Square((uint32(m) >> moveFromShift) & 0x3F) }

// To returns the destination square.
func (m Move) To() Square { return Square((uint32(m) >> moveToShift) & 0x3F) }

// Kind returns the move-kind tag.
func (m Move) Kind() MoveKind { return MoveKind((uint32(m) >> moveKindShift) & 0x7) }

// Promotion returns the promoted-to kind, or NoKind.
func (m Move) Promotion() PieceKind { return PieceKind((uint32(m) >> movePromoShift) & 0x7) }

// IsCapture reports captures, including en passant and capturing promotions.
func (m Move) IsCapture() bool {
	k := m.Kind()
	return k == Capture || k == EnPassantCapture || k == PromotionCapture
}

func (m Move) IsPromotion() bool {
	k := m.Kind()
	return k == Promotion || k == PromotionCapture
}

func (m Move) IsCastle() bool {
	k := m.Kind()
	return k == CastleShort || k == CastleLong
}

// String produces coordinate notation, e.g. "e2e4" or "e7e8q".
func (m Move) String() string {
	if m == NoMove {
		return "0000"
	}
	s := m.From().String() + m.To().String()
	if m.IsPromotion() {
		s += strings.ToLower(MakePiece(White, m.Promotion()).String())
	}
	return s
}

// FindMove returns the legal move written in coordinate notation ("e2e4",
// "e7e8q"). Castling is written as the king's two-square move.
func (p *Position) FindMove(text string) (Move, error) {
	text = strings.ToLower(strings.TrimSpace(text))
	if len(text) < 4 || len(text) > 5 {
		return NoMove, ErrIllegalMove
	}
	from, err := ParseSquare(text[0:2])
	if err != nil {
		return NoMove, ErrIllegalMove
	}
	to, err := ParseSquare(text[2:4])
	if err != nil {
		return NoMove, ErrIllegalMove
	}
	promo := NoKind
	if len(text) == 5 {
		switch text[4] {
		case 'q':
			promo = Queen
		case 'r':
			promo = Rook
		case 'b':
			promo = Bishop
		case 'n':
			promo = Knight
		default:
			return NoMove, ErrIllegalMove
		}
	}
	for _, m := range p.GenerateLegalMoves() {
		if m.From() == from && m.To() == to && m.Promotion() == promo {
			return m, nil
		}
	}
	return NoMove, ErrIllegalMove
}
