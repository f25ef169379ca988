package movegen

import (
	"errors"
	"fmt"
)

// ErrCorruptPosition is wrapped by the errors Validate returns.
var ErrCorruptPosition = errors.New("corrupt position")

// Position is the complete board state. It is a fixed-size value with no pointers,
// so copying it by assignment yields an independent position; concurrent callers
// should each work on their own copy.
//
// The zero value is not a usable position: its en-passant square reads as a8
// and its hash is unset. Start from NewPosition, StartPosition or ParseFEN.
type Position struct {
	// One bitboard per kind, shared by both colors.
	kinds [6]BitBoard
	// Occupancy per color (colors[White], colors[Black]).
	colors [2]BitBoard

	side   Color
	castle CastleRights
	// En-passant target square, NoSquare unless the last move was a double pawn push.
	ep Square
	// Half-moves since the last pawn move or capture.
	halfmove int
	// Starts at 1 and increments after Black's move.
	fullmove int

	// Zobrist key, kept in sync by every mutating method.
	hash uint64
}

// NewPosition returns an empty board with White to move.
func NewPosition() Position {
	p := Position{ep: NoSquare, fullmove: 1}
	p.hash = p.ComputeHash()
	return p
}

// StartPosition returns the standard initial position.
func StartPosition() Position { return MustParseFEN(StartFEN) }

// SideToMove reports which side is to play.
func (p *Position) SideToMove() Color { return p.side }

// CastleRights returns the remaining castling rights.
func (p *Position) CastleRights() CastleRights { return p.castle }

// EnPassant returns the en-passant target square or NoSquare.
func (p *Position) EnPassant() Square { return p.ep }

// HalfmoveClock returns the number of half-moves since the last pawn move or capture.
func (p *Position) HalfmoveClock() int { return p.halfmove }

// FullmoveNumber returns the full move counter.
func (p *Position) FullmoveNumber() int { return p.fullmove }

// Hash returns the current Zobrist key.
func (p *Position) Hash() uint64 { return p.hash }

// Pieces returns the squares holding kind k of either color.
func (p *Position) Pieces(k PieceKind) BitBoard {
	if k >= NoKind {
		return EmptyBB
	}
	return p.kinds[k]
}

// PiecesOf returns the squares holding kind k of color c.
func (p *Position) PiecesOf(c Color, k PieceKind) BitBoard {
	if k >= NoKind {
		return EmptyBB
	}
	return p.kinds[k] & p.colors[c]
}

// ColorOccupancy returns the squares occupied by color c.
func (p *Position) ColorOccupancy(c Color) BitBoard { return p.colors[c] }

// Occupancy returns every occupied square.
func (p *Position) Occupancy() BitBoard { return p.colors[White] | p.colors[Black] }

// KingSquare returns the square of c's king, or NoSquare if it has none.
func (p *Position) KingSquare(c Color) Square {
	sq, err := (p.kinds[King] & p.colors[c]).LSB()
	if err != nil {
		return NoSquare
	}
	return sq
}

// kindAt returns the kind on sq, or NoKind for an empty square.
func (p *Position) kindAt(sq Square) PieceKind {
	bb := SquareBB(sq)
	if p.Occupancy()&bb == 0 {
		return NoKind
	}
	for k := Pawn; k <= King; k++ {
		if p.kinds[k]&bb != 0 {
			return k
		}
	}
	return NoKind
}

// PieceAt returns the piece on sq.
func (p *Position) PieceAt(sq Square) Piece {
	k := p.kindAt(sq)
	if k == NoKind {
		return NoPiece
	}
	if p.colors[Black].Has(sq) {
		return MakePiece(Black, k)
	}
	return MakePiece(White, k)
}

// ==========================
// Board editing
// ==========================

// addPiece places a piece on an empty square and updates bitboards and hash.
func (p *Position) addPiece(sq Square, c Color, k PieceKind) {
	if k >= NoKind {
		return
	}
	bb := SquareBB(sq)
	p.kinds[k] |= bb
	p.colors[c] |= bb
	p.hash ^= zobristPiece[MakePiece(c, k)][sq]
}

// removePiece takes a known piece off sq and updates bitboards and hash.
func (p *Position) removePiece(sq Square, c Color, k PieceKind) {
	if k >= NoKind {
		return
	}
	mask := ^SquareBB(sq)
	p.kinds[k] &= mask
	p.colors[c] &= mask
	p.hash ^= zobristPiece[MakePiece(c, k)][sq]
}

// SetPiece puts pc on sq, replacing whatever was there. NoPiece clears the square.
func (p *Position) SetPiece(sq Square, pc Piece) {
	p.ClearSquare(sq)
	if pc == NoPiece {
		return
	}
	p.addPiece(sq, pc.Color(), pc.Kind())
}

// ClearSquare removes any piece from sq.
func (p *Position) ClearSquare(sq Square) {
	if pc := p.PieceAt(sq); pc != NoPiece {
		p.removePiece(sq, pc.Color(), pc.Kind())
	}
}

// SetSideToMove updates the side to play. Move application toggles it automatically.
func (p *Position) SetSideToMove(c Color) {
	if p.side == c {
		return
	}
	p.side = c
	p.hash ^= zobristSide
}

// SetCastleRights replaces the castling rights.
func (p *Position) SetCastleRights(r CastleRights) {
	r &= AllCastling
	p.hash ^= zobristCastle[p.castle] ^ zobristCastle[r]
	p.castle = r
}

// SetEnPassant replaces the en-passant target; NoSquare clears it.
func (p *Position) SetEnPassant(sq Square) {
	if p.ep != NoSquare {
		p.hash ^= zobristEnPassant[p.ep.File()]
	}
	if !sq.Valid() {
		sq = NoSquare
	}
	p.ep = sq
	if p.ep != NoSquare {
		p.hash ^= zobristEnPassant[p.ep.File()]
	}
}

// Validate checks the internal consistency of the bitboards and the hash.
func (p *Position) Validate() error {
	var seen BitBoard
	for k := Pawn; k <= King; k++ {
		if overlap := seen & p.kinds[k]; overlap != 0 {
			return fmt.Errorf("%w: %s shares a square with another kind", ErrCorruptPosition, k)
		}
		seen |= p.kinds[k]
	}
	if p.colors[White]&p.colors[Black] != 0 {
		return fmt.Errorf("%w: square owned by both colors", ErrCorruptPosition)
	}
	if seen != p.Occupancy() {
		return fmt.Errorf("%w: kind and color occupancy disagree", ErrCorruptPosition)
	}
	if p.ep != NoSquare && !p.ep.Valid() {
		return fmt.Errorf("%w: en-passant square %d off the board", ErrCorruptPosition, int(p.ep))
	}
	if p.hash != p.ComputeHash() {
		return fmt.Errorf("%w: stale hash", ErrCorruptPosition)
	}
	return nil
}

// String renders the board with FEN letters, rank 8 on top.
func (p Position) String() string {
	buf := make([]byte, 0, 8*18+32)
	for row := 0; row < 8; row++ {
		buf = append(buf, '8'-byte(row))
		for file := 0; file < 8; file++ {
			buf = append(buf, ' ', p.PieceAt(Square(row*8+file)).Char())
		}
		buf = append(buf, '\n')
	}
	buf = append(buf, "  a b c d e f g h\n"...)
	return string(buf) + p.FEN()
}
