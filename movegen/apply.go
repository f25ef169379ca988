package movegen

// Undo holds the minimal state needed to take back a move made with MakeMove.
type Undo struct {
	captured      PieceKind
	prevCastle    CastleRights
	prevEnPassant Square
	prevHalfmove  int
	prevHash      uint64
}

// Captured returns the kind of the captured piece, or NoKind.
func (u Undo) Captured() PieceKind { return u.captured }

// castleRightsLost[sq] lists the rights that disappear when a piece leaves or
// arrives on sq: a king or rook leaving home, or a rook captured at home.
var castleRightsLost = func() (t [64]CastleRights) {
	t[E1] = WhiteShort | WhiteLong
	t[H1] = WhiteShort
	t[A1] = WhiteLong
	t[E8] = BlackShort | BlackLong
	t[H8] = BlackShort
	t[A8] = BlackLong
	return t
}()

// castleRookSquares returns the rook's origin and destination for a castling king move.
func castleRookSquares(kingFrom Square, kind MoveKind) (from, to Square) {
	if kind == CastleShort {
		return kingFrom + 3, kingFrom + 1
	}
	return kingFrom - 4, kingFrom - 1
}

// Apply returns the position after m. The receiver is a copy and is not modified.
// m must be a legal move for the position, as produced by GenerateLegalMoves.
func (p Position) Apply(m Move) Position {
	p.MakeMove(m)
	return p
}

// MakeMove plays m in place and returns the record UnmakeMove needs to revert
// it. The move is not validated: it must come from the generator or be known
// to be legal.
func (p *Position) MakeMove(m Move) Undo {
	u := Undo{
		captured:      NoKind,
		prevCastle:    p.castle,
		prevEnPassant: p.ep,
		prevHalfmove:  p.halfmove,
		prevHash:      p.hash,
	}

	us := p.side
	them := us.Other()
	from, to := m.From(), m.To()
	kind := m.Kind()
	moving := p.kindAt(from)

	if p.ep != NoSquare {
		p.hash ^= zobristEnPassant[p.ep.File()]
		p.ep = NoSquare
	}

	// Remove the captured piece; for en passant it stands behind the target.
	switch kind {
	case EnPassantCapture:
		p.removePiece(to-pawnPush(us), them, Pawn)
		u.captured = Pawn
	case Capture, PromotionCapture:
		u.captured = p.kindAt(to)
		p.removePiece(to, them, u.captured)
	}

	placed := moving
	if m.IsPromotion() {
		placed = m.Promotion()
	}
	p.removePiece(from, us, moving)
	p.addPiece(to, us, placed)

	switch kind {
	case CastleShort, CastleLong:
		rookFrom, rookTo := castleRookSquares(from, kind)
		p.removePiece(rookFrom, us, Rook)
		p.addPiece(rookTo, us, Rook)
	case DoublePawnPush:
		p.ep = from + pawnPush(us)
		p.hash ^= zobristEnPassant[p.ep.File()]
	}

	if lost := p.castle & (castleRightsLost[from] | castleRightsLost[to]); lost != 0 {
		p.hash ^= zobristCastle[p.castle]
		p.castle &^= lost
		p.hash ^= zobristCastle[p.castle]
	}

	if moving == Pawn || u.captured != NoKind {
		p.halfmove = 0
	} else {
		p.halfmove++
	}
	if us == Black {
		p.fullmove++
	}

	p.side = them
	p.hash ^= zobristSide
	return u
}

// UnmakeMove reverts m, which must be the last move made with MakeMove, using
// the Undo it returned.
func (p *Position) UnmakeMove(m Move, u Undo) {
	them := p.side
	us := them.Other()
	p.side = us
	if us == Black {
		p.fullmove--
	}

	from, to := m.From(), m.To()
	kind := m.Kind()

	placed := p.kindAt(to)
	moved := placed
	if m.IsPromotion() {
		moved = Pawn
	}
	p.removePiece(to, us, placed)
	p.addPiece(from, us, moved)

	switch kind {
	case CastleShort, CastleLong:
		rookFrom, rookTo := castleRookSquares(from, kind)
		p.removePiece(rookTo, us, Rook)
		p.addPiece(rookFrom, us, Rook)
	case EnPassantCapture:
		p.addPiece(to-pawnPush(us), them, Pawn)
	case Capture, PromotionCapture:
		p.addPiece(to, them, u.captured)
	}

	p.castle = u.prevCastle
	p.ep = u.prevEnPassant
	p.halfmove = u.prevHalfmove

	// Piece keys were toggled back above; the saved key restores the rest exactly.
	p.hash = u.prevHash
}
