package movegen

import "math/bits"

// Ray directions. North points toward rank 8, which is toward lower square indices.
const (
	North = iota
	NorthEast
	East
	SouthEast
	South
	SouthWest
	West
	NorthWest
	numDirections
)

// dirDelta holds the (file, row) step of each direction; row 0 is rank 8.
var dirDelta = [numDirections][2]int{
	North:     {0, -1},
	NorthEast: {1, -1},
	East:      {1, 0},
	SouthEast: {1, 1},
	South:     {0, 1},
	SouthWest: {-1, 1},
	West:      {-1, 0},
	NorthWest: {-1, -1},
}

// increasing reports whether stepping along the direction raises the square index.
var increasing = [numDirections]bool{
	East:      true,
	SouthEast: true,
	South:     true,
	SouthWest: true,
}

var (
	rookDirections   = [4]int{North, East, South, West}
	bishopDirections = [4]int{NorthEast, SouthEast, SouthWest, NorthWest}
)

// Precomputed attack sets for the non-sliding pieces.
var (
	knightAttacks [64]BitBoard
	kingAttacks   [64]BitBoard
	// pawnAttacks[color][sq] holds the squares a pawn of color attacks from sq.
	pawnAttacks [2][64]BitBoard
)

// rays[dir][sq] is every square from sq toward dir, excluding sq itself.
var rays [numDirections][64]BitBoard

// Occupancy-indexed slider tables. The relevant mask drops the last square of
// every ray since a blocker there never changes the attack set.
var (
	rookMask    [64]BitBoard
	bishopMask  [64]BitBoard
	rookTable   [64][]BitBoard
	bishopTable [64][]BitBoard
)

func init() {
	initLeaperTables()
	initRays()
	initSliderTables()
}

func onBoard(file, row int) bool { return file >= 0 && file < 8 && row >= 0 && row < 8 }

// initLeaperTables precomputes knight, king and pawn capture sets.
func initLeaperTables() {
	knightOffsets := [8][2]int{
		{1, 2}, {2, 1}, {2, -1}, {1, -2},
		{-1, -2}, {-2, -1}, {-2, 1}, {-1, 2},
	}
	for sq := 0; sq < 64; sq++ {
		file, row := sq%8, sq/8
		for _, off := range knightOffsets {
			if f, r := file+off[0], row+off[1]; onBoard(f, r) {
				knightAttacks[sq] |= SquareBB(Square(r*8 + f))
			}
		}
		for _, d := range dirDelta {
			if f, r := file+d[0], row+d[1]; onBoard(f, r) {
				kingAttacks[sq] |= SquareBB(Square(r*8 + f))
			}
		}

		// White pawns capture toward rank 8 (row-1), Black toward rank 1 (row+1).
		for _, df := range [2]int{-1, 1} {
			if onBoard(file+df, row-1) {
				pawnAttacks[White][sq] |= SquareBB(Square((row-1)*8 + file + df))
			}
			if onBoard(file+df, row+1) {
				pawnAttacks[Black][sq] |= SquareBB(Square((row+1)*8 + file + df))
			}
		}
	}
}

// initRays precomputes the eight directional rays from every square.
func initRays() {
	for sq := 0; sq < 64; sq++ {
		file, row := sq%8, sq/8
		for dir, d := range dirDelta {
			var ray BitBoard
			for f, r := file+d[0], row+d[1]; onBoard(f, r); f, r = f+d[0], r+d[1] {
				ray |= SquareBB(Square(r*8 + f))
			}
			rays[dir][sq] = ray
		}
	}
}

// relevantMask returns the union of the rays in dirs, each without its edge square.
func relevantMask(sq int, dirs [4]int) BitBoard {
	var mask BitBoard
	for _, dir := range dirs {
		ray := rays[dir][sq]
		if ray == 0 {
			continue
		}
		var edge int
		if increasing[dir] {
			edge = 63 - bits.LeadingZeros64(uint64(ray))
		} else {
			edge = bits.TrailingZeros64(uint64(ray))
		}
		mask |= ray &^ SquareBB(Square(edge))
	}
	return mask
}

// initSliderTables enumerates every subset of each relevant mask and stores the
// ray-cast attack set for it.
func initSliderTables() {
	for sq := 0; sq < 64; sq++ {
		rookMask[sq] = relevantMask(sq, rookDirections)
		bishopMask[sq] = relevantMask(sq, bishopDirections)

		rBits := rookMask[sq].Count()
		bBits := bishopMask[sq].Count()
		rookTable[sq] = make([]BitBoard, 1<<rBits)
		bishopTable[sq] = make([]BitBoard, 1<<bBits)

		for idx := 0; idx < 1<<rBits; idx++ {
			occ := pdep(uint64(idx), uint64(rookMask[sq]))
			rookTable[sq][idx] = RookRayAttacks(Square(sq), BitBoard(occ))
		}
		for idx := 0; idx < 1<<bBits; idx++ {
			occ := pdep(uint64(idx), uint64(bishopMask[sq]))
			bishopTable[sq][idx] = BishopRayAttacks(Square(sq), BitBoard(occ))
		}
	}
}

// software pext: extract bits of x at positions where mask has 1s, packed into low bits
func pext(x, mask uint64) uint64 {
	var res uint64
	var idx uint
	for m := mask; m != 0; m &= m - 1 {
		bit := uint(bits.TrailingZeros64(m))
		if (x>>bit)&1 != 0 {
			res |= 1 << idx
		}
		idx++
	}
	return res
}

// software pdep: deposit low bits of x into positions of mask
func pdep(x, mask uint64) uint64 {
	var res uint64
	var idx uint
	for m := mask; m != 0; m &= m - 1 {
		bit := uint(bits.TrailingZeros64(m))
		if (x>>idx)&1 != 0 {
			res |= 1 << bit
		}
		idx++
	}
	return res
}

// ==========================
// Ray casting
// ==========================

// slide casts a ray in each direction, stopping at and including the first occupied square.
func slide(sq Square, occ BitBoard, dirs [4]int) BitBoard {
	var attacks BitBoard
	for _, dir := range dirs {
		ray := rays[dir][sq]
		if blockers := ray & occ; blockers != 0 {
			var first int
			if increasing[dir] {
				first = bits.TrailingZeros64(uint64(blockers))
			} else {
				first = 63 - bits.LeadingZeros64(uint64(blockers))
			}
			ray &^= rays[dir][first]
		}
		attacks |= ray
	}
	return attacks
}

// RookRayAttacks returns rook attacks from sq by casting rays over occ.
func RookRayAttacks(sq Square, occ BitBoard) BitBoard { return slide(sq, occ, rookDirections) }

// BishopRayAttacks returns bishop attacks from sq by casting rays over occ.
func BishopRayAttacks(sq Square, occ BitBoard) BitBoard { return slide(sq, occ, bishopDirections) }

// ==========================
// Table lookups
// ==========================

func rookAttacks(sq Square, occ BitBoard) BitBoard {
	return rookTable[sq][pext(uint64(occ), uint64(rookMask[sq]))]
}

func bishopAttacks(sq Square, occ BitBoard) BitBoard {
	return bishopTable[sq][pext(uint64(occ), uint64(bishopMask[sq]))]
}

// KnightAttacks returns the knight attack set from sq.
func KnightAttacks(sq Square) BitBoard { return knightAttacks[sq] }

// KingAttacks returns the king attack set from sq.
func KingAttacks(sq Square) BitBoard { return kingAttacks[sq] }

// PawnAttacks returns the squares a pawn of color c attacks from sq.
func PawnAttacks(c Color, sq Square) BitBoard { return pawnAttacks[c][sq] }

// RookAttacks returns rook attacks from sq for the occupancy occ.
func RookAttacks(sq Square, occ BitBoard) BitBoard { return rookAttacks(sq, occ) }

// BishopAttacks returns bishop attacks from sq for the occupancy occ.
func BishopAttacks(sq Square, occ BitBoard) BitBoard { return bishopAttacks(sq, occ) }

// QueenAttacks returns queen attacks from sq for the occupancy occ.
func QueenAttacks(sq Square, occ BitBoard) BitBoard {
	return rookAttacks(sq, occ) | bishopAttacks(sq, occ)
}

// Attacks returns the squares a piece of kind k (and color c, for pawns) attacks
// from sq given the occupancy occ. Piece colors of the targets are ignored.
func Attacks(k PieceKind, c Color, sq Square, occ BitBoard) BitBoard {
	switch k {
	case Pawn:
		return pawnAttacks[c][sq]
	case Knight:
		return knightAttacks[sq]
	case Bishop:
		return bishopAttacks(sq, occ)
	case Rook:
		return rookAttacks(sq, occ)
	case Queen:
		return rookAttacks(sq, occ) | bishopAttacks(sq, occ)
	case King:
		return kingAttacks[sq]
	default:
		return EmptyBB
	}
}
