package movegen

// ==========================
// Attack queries
// ==========================

// attackersTo returns the pieces of color by that attack sq under occupancy occ.
func (p *Position) attackersTo(sq Square, by Color, occ BitBoard) BitBoard {
	them := p.colors[by]
	diag := (p.kinds[Bishop] | p.kinds[Queen]) & them
	ortho := (p.kinds[Rook] | p.kinds[Queen]) & them

	// A pawn of color by attacks sq exactly when a pawn of the other color on sq
	// would attack the pawn's square.
	attackers := pawnAttacks[by.Other()][sq] & p.kinds[Pawn] & them
	attackers |= knightAttacks[sq] & p.kinds[Knight] & them
	attackers |= kingAttacks[sq] & p.kinds[King] & them
	if diag != 0 {
		attackers |= bishopAttacks(sq, occ) & diag
	}
	if ortho != 0 {
		attackers |= rookAttacks(sq, occ) & ortho
	}
	return attackers
}

// IsSquareAttacked reports whether sq is attacked by any piece of color by.
func (p *Position) IsSquareAttacked(sq Square, by Color) bool {
	return p.attackersTo(sq, by, p.Occupancy()) != 0
}

// Checkers returns the enemy pieces giving check to the side to move.
func (p *Position) Checkers() BitBoard {
	ksq := p.KingSquare(p.side)
	if ksq == NoSquare {
		return EmptyBB
	}
	return p.attackersTo(ksq, p.side.Other(), p.Occupancy())
}

// InCheck reports whether the king of color c is attacked. A side without a
// king is never in check.
func (p *Position) InCheck(c Color) bool {
	ksq := p.KingSquare(c)
	if ksq == NoSquare {
		return false
	}
	return p.IsSquareAttacked(ksq, c.Other())
}

// ==========================
// Generation
// ==========================

// filter modes for selective generation
type genFilter int

const (
	genAll genFilter = iota
	genCaptures
	genQuiets
)

func (f genFilter) wants(capture bool) bool {
	switch f {
	case genCaptures:
		return capture
	case genQuiets:
		return !capture
	default:
		return true
	}
}

var promotionKinds = [4]PieceKind{Queen, Rook, Bishop, Knight}

// pawnPush is the index step of a single pawn advance for color c.
func pawnPush(c Color) Square {
	if c == White {
		return -8
	}
	return 8
}

// castlePaths describes, per color and wing, the squares that must be empty and
// the squares the king occupies or crosses (which must not be attacked).
var castlePaths = [2][2]struct {
	right    CastleRights
	king     Square
	rook     Square
	to       Square
	kind     MoveKind
	empty    BitBoard
	traverse [3]Square
}{
	White: {
		{WhiteShort, E1, H1, G1, CastleShort, SquareBB(F1) | SquareBB(G1), [3]Square{E1, F1, G1}},
		{WhiteLong, E1, A1, C1, CastleLong, SquareBB(B1) | SquareBB(C1) | SquareBB(D1), [3]Square{E1, D1, C1}},
	},
	Black: {
		{BlackShort, E8, H8, G8, CastleShort, SquareBB(F8) | SquareBB(G8), [3]Square{E8, F8, G8}},
		{BlackLong, E8, A8, C8, CastleLong, SquareBB(B8) | SquareBB(C8) | SquareBB(D8), [3]Square{E8, D8, C8}},
	},
}

// castleTargets returns the king destinations of every castling move available
// to the side to move.
func (p *Position) castleTargets(kingSq Square) BitBoard {
	us := p.side
	them := us.Other()
	occ := p.Occupancy()
	rooks := p.kinds[Rook] & p.colors[us]
	var targets BitBoard
	for _, c := range castlePaths[us] {
		if !p.castle.Has(c.right) || kingSq != c.king || !rooks.Has(c.rook) || occ&c.empty != 0 {
			continue
		}
		safe := true
		for _, sq := range c.traverse {
			if p.attackersTo(sq, them, occ) != 0 {
				safe = false
				break
			}
		}
		if safe {
			targets |= SquareBB(c.to)
		}
	}
	return targets
}

// appendTargets emits one move per target square, tagging captures of enemy pieces.
func appendTargets(moves []Move, from Square, targets, enemy BitBoard, filter genFilter) []Move {
	for targets != 0 {
		to := popLSB(&targets)
		capture := enemy.Has(to)
		if !filter.wants(capture) {
			continue
		}
		kind := Quiet
		if capture {
			kind = Capture
		}
		moves = append(moves, NewMove(from, to, kind, NoKind))
	}
	return moves
}

// appendPawnMoves emits pushes, captures, en passant and promotions for the pawn
// on from, in ascending destination order.
func (p *Position) appendPawnMoves(moves []Move, from Square, occ, enemy BitBoard, filter genFilter) []Move {
	us := p.side
	push := pawnPush(us)
	promoRank, homeRank := Rank8BB, Rank2BB
	if us == Black {
		promoRank, homeRank = Rank1BB, Rank7BB
	}

	var single, double BitBoard
	if one := from + push; one.Valid() && !occ.Has(one) {
		single = SquareBB(one)
		if homeRank.Has(from) && !occ.Has(one+push) {
			double = SquareBB(one + push)
		}
	}
	captures := pawnAttacks[us][from] & enemy

	// The en-passant victim sits one step behind the target square.
	var epBB BitBoard
	if p.ep != NoSquare && pawnAttacks[us][from].Has(p.ep) && !occ.Has(p.ep) {
		if victim := p.ep - push; victim.Valid() && (p.kinds[Pawn] & enemy).Has(victim) {
			epBB = SquareBB(p.ep)
		}
	}

	for targets := single | double | captures | epBB; targets != 0; {
		to := popLSB(&targets)
		switch {
		case epBB.Has(to):
			if filter.wants(true) {
				moves = append(moves, NewMove(from, to, EnPassantCapture, NoKind))
			}
		case captures.Has(to):
			if !filter.wants(true) {
				continue
			}
			if promoRank.Has(to) {
				for _, k := range promotionKinds {
					moves = append(moves, NewMove(from, to, PromotionCapture, k))
				}
			} else {
				moves = append(moves, NewMove(from, to, Capture, NoKind))
			}
		case double.Has(to):
			if filter.wants(false) {
				moves = append(moves, NewMove(from, to, DoublePawnPush, NoKind))
			}
		default:
			if !filter.wants(false) {
				continue
			}
			if promoRank.Has(to) {
				for _, k := range promotionKinds {
					moves = append(moves, NewMove(from, to, Promotion, k))
				}
			} else {
				moves = append(moves, NewMove(from, to, Quiet, NoKind))
			}
		}
	}
	return moves
}

// generatePseudo appends the pseudo-legal moves of the side to move in board
// order: origin square ascending, then destination ascending. Castling is the
// one exception to "pseudo": its path attack test is done here because it cannot
// be expressed as a king-left-in-check test afterwards.
func (p *Position) generatePseudo(moves []Move, filter genFilter) []Move {
	us := p.side
	own := p.colors[us]
	enemy := p.colors[us.Other()]
	occ := own | enemy

	for pieces := own; pieces != 0; {
		from := popLSB(&pieces)
		switch p.kindAt(from) {
		case Pawn:
			moves = p.appendPawnMoves(moves, from, occ, enemy, filter)
		case Knight:
			moves = appendTargets(moves, from, knightAttacks[from]&^own, enemy, filter)
		case Bishop:
			moves = appendTargets(moves, from, bishopAttacks(from, occ)&^own, enemy, filter)
		case Rook:
			moves = appendTargets(moves, from, rookAttacks(from, occ)&^own, enemy, filter)
		case Queen:
			moves = appendTargets(moves, from, (rookAttacks(from, occ)|bishopAttacks(from, occ))&^own, enemy, filter)
		case King:
			var castles BitBoard
			if filter.wants(false) {
				castles = p.castleTargets(from)
			}
			for targets := (kingAttacks[from] &^ own) | castles; targets != 0; {
				to := popLSB(&targets)
				switch {
				case castles.Has(to) && to > from:
					moves = append(moves, NewMove(from, to, CastleShort, NoKind))
				case castles.Has(to):
					moves = append(moves, NewMove(from, to, CastleLong, NoKind))
				case enemy.Has(to):
					if filter.wants(true) {
						moves = append(moves, NewMove(from, to, Capture, NoKind))
					}
				default:
					if filter.wants(false) {
						moves = append(moves, NewMove(from, to, Quiet, NoKind))
					}
				}
			}
		}
	}
	return moves
}

// leavesKingSafe plays m on a copy and reports whether the mover's king is not attacked.
func (p *Position) leavesKingSafe(m Move) bool {
	next := *p
	next.MakeMove(m)
	return !next.InCheck(p.side)
}

// generateInto is the core generator: pseudo-legal moves filtered by the single
// legality gate of applying each move and testing the mover's king.
func (p *Position) generateInto(dst []Move, filter genFilter) []Move {
	moves := p.generatePseudo(dst[:0], filter)
	n := 0
	for _, m := range moves {
		if p.leavesKingSafe(m) {
			moves[n] = m
			n++
		}
	}
	return moves[:n]
}

// GenerateLegalMoves returns every legal move for the side to move, ordered by
// origin square and then destination square. An empty result means checkmate or
// stalemate.
func (p *Position) GenerateLegalMoves() []Move { return p.generateInto(make([]Move, 0, 64), genAll) }

// GenerateLegalMovesInto appends the legal moves into dst (truncated first) and
// returns it. It does not allocate when dst has enough capacity.
func (p *Position) GenerateLegalMovesInto(dst []Move) []Move { return p.generateInto(dst, genAll) }

// GenerateCaptures returns the legal captures, including en passant and capturing promotions.
func (p *Position) GenerateCaptures() []Move {
	return p.generateInto(make([]Move, 0, 32), genCaptures)
}

// GenerateQuiets returns the legal non-captures, including quiet promotions and castling.
func (p *Position) GenerateQuiets() []Move {
	return p.generateInto(make([]Move, 0, 64), genQuiets)
}

// GeneratePseudoMoves returns moves that obey piece movement and blockers but
// may leave the mover's king in check.
func (p *Position) GeneratePseudoMoves() []Move {
	return p.generatePseudo(make([]Move, 0, 64), genAll)
}

// HasLegalMoves reports whether the side to move has any legal move.
func (p *Position) HasLegalMoves() bool {
	var buf [256]Move
	return len(p.generateInto(buf[:0], genAll)) > 0
}
