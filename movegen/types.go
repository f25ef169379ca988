package movegen

import "errors"

// Color of a side or of a piece.
type Color uint8

const (
	White Color = 0
	Black Color = 1
)

// Other returns the opposing color.
func (c Color) Other() Color { return c ^ 1 }

func (c Color) String() string {
	if c == White {
		return "white"
	}
	return "black"
}

// PieceKind is a colorless piece type. The values index Position's per-kind bitboards.
type PieceKind uint8

const (
	Pawn PieceKind = iota
	Knight
	Bishop
	Rook
	Queen
	King

	// NoKind marks the absence of a piece (empty square, no capture, no promotion).
	NoKind
)

var kindNames = [...]string{"pawn", "knight", "bishop", "rook", "queen", "king", "none"}

func (k PieceKind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "invalid"
}

// Piece combines a color and a kind. The kind lives in the low three bits and the
// color in bit 3, so p&7 gives the kind and p>>3 the color.
type Piece uint8

const (
	WhitePawn   Piece = Piece(Pawn)
	WhiteKnight Piece = Piece(Knight)
	WhiteBishop Piece = Piece(Bishop)
	WhiteRook   Piece = Piece(Rook)
	WhiteQueen  Piece = Piece(Queen)
	WhiteKing   Piece = Piece(King)

	BlackPawn   Piece = 8 | Piece(Pawn)
	BlackKnight Piece = 8 | Piece(Knight)
	BlackBishop Piece = 8 | Piece(Bishop)
	BlackRook   Piece = 8 | Piece(Rook)
	BlackQueen  Piece = 8 | Piece(Queen)
	BlackKing   Piece = 8 | Piece(King)

	NoPiece Piece = Piece(NoKind)
)

// MakePiece builds the piece of the given color and kind.
func MakePiece(c Color, k PieceKind) Piece {
	if k >= NoKind {
		return NoPiece
	}
	return Piece(c)<<3 | Piece(k)
}

// Kind returns the colorless kind of the piece.
func (p Piece) Kind() PieceKind { return PieceKind(p & 7) }

// Color returns the owner of the piece. NoPiece reports White.
func (p Piece) Color() Color { return Color(p >> 3) }

const pieceLetters = "PNBRQK"

// Char returns the FEN letter of the piece, uppercase for White.
func (p Piece) Char() byte {
	k := p.Kind()
	if k >= NoKind {
		return '.'
	}
	ch := pieceLetters[k]
	if p.Color() == Black {
		ch += 'a' - 'A'
	}
	return ch
}

func (p Piece) String() string { return string(p.Char()) }

// pieceFromChar converts a FEN letter to a piece.
func pieceFromChar(ch byte) (Piece, bool) {
	switch ch {
	case 'P':
		return WhitePawn, true
	case 'N':
		return WhiteKnight, true
	case 'B':
		return WhiteBishop, true
	case 'R':
		return WhiteRook, true
	case 'Q':
		return WhiteQueen, true
	case 'K':
		return WhiteKing, true
	case 'p':
		return BlackPawn, true
	case 'n':
		return BlackKnight, true
	case 'b':
		return BlackBishop, true
	case 'r':
		return BlackRook, true
	case 'q':
		return BlackQueen, true
	case 'k':
		return BlackKing, true
	default:
		return NoPiece, false
	}
}

// CastleRights holds the four castling flags as a bit set.
type CastleRights uint8

const (
	WhiteShort CastleRights = 1 << iota
	WhiteLong
	BlackShort
	BlackLong

	NoCastling  CastleRights = 0
	AllCastling              = WhiteShort | WhiteLong | BlackShort | BlackLong
)

// Has reports whether every right in r2 is present in r.
func (r CastleRights) Has(r2 CastleRights) bool { return r&r2 == r2 }

// String renders the rights in FEN order ("KQkq"), or "-" when none remain.
func (r CastleRights) String() string {
	if r&AllCastling == 0 {
		return "-"
	}
	buf := make([]byte, 0, 4)
	if r.Has(WhiteShort) {
		buf = append(buf, 'K')
	}
	if r.Has(WhiteLong) {
		buf = append(buf, 'Q')
	}
	if r.Has(BlackShort) {
		buf = append(buf, 'k')
	}
	if r.Has(BlackLong) {
		buf = append(buf, 'q')
	}
	return string(buf)
}

// Square is a board index in [0, 63]. Index 0 is a8 and index 63 is h1, so the
// index grows left to right along a rank and from rank 8 down to rank 1.
type Square int

const NoSquare Square = -1

const (
	A8 Square = iota
	B8
	C8
	D8
	E8
	F8
	G8
	H8
	A7
	B7
	C7
	D7
	E7
	F7
	G7
	H7
	A6
	B6
	C6
	D6
	E6
	F6
	G6
	H6
	A5
	B5
	C5
	D5
	E5
	F5
	G5
	H5
	A4
	B4
	C4
	D4
	E4
	F4
	G4
	H4
	A3
	B3
	C3
	D3
	E3
	F3
	G3
	H3
	A2
	B2
	C2
	D2
	E2
	F2
	G2
	H2
	A1
	B1
	C1
	D1
	E1
	F1
	G1
	H1
)

// ErrInvalidSquare is returned by ParseSquare for text that is not a square name.
var ErrInvalidSquare = errors.New("invalid square")

// SquareAt returns the square on the given file (0 = a) and rank (0 = rank 1).
func SquareAt(file, rank int) Square {
	if file < 0 || file > 7 || rank < 0 || rank > 7 {
		return NoSquare
	}
	return Square((7-rank)*8 + file)
}

// File returns 0 for the a-file through 7 for the h-file.
func (sq Square) File() int { return int(sq) & 7 }

// Rank returns 0 for rank 1 through 7 for rank 8.
func (sq Square) Rank() int { return 7 - int(sq)>>3 }

// Valid reports whether sq is on the board.
func (sq Square) Valid() bool { return sq >= 0 && sq < 64 }

func (sq Square) String() string {
	if !sq.Valid() {
		return "-"
	}
	return string([]byte{'a' + byte(sq.File()), '1' + byte(sq.Rank())})
}

// ParseSquare converts an algebraic name such as "e4" to a Square.
func ParseSquare(s string) (Square, error) {
	if len(s) != 2 || s[0] < 'a' || s[0] > 'h' || s[1] < '1' || s[1] > '8' {
		return NoSquare, ErrInvalidSquare
	}
	return SquareAt(int(s[0]-'a'), int(s[1]-'1')), nil
}
