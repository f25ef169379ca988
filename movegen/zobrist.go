package movegen

import "math/rand"

// Zobrist hashing tables for pieces, castling, en passant, and side to move.
var zobristPiece [16][64]uint64 // indexed by Piece code, then square
var zobristCastle [16]uint64    // one key per castling-rights state
var zobristEnPassant [8]uint64  // per en-passant file
var zobristSide uint64          // XORed in when Black is to move

func init() {
	initZobrist()
}

func initZobrist() {
	// Fixed seed keeps hashes reproducible across runs.
	rnd := rand.New(rand.NewSource(0xC0DE))

	for p := 0; p < 16; p++ {
		for sq := 0; sq < 64; sq++ {
			zobristPiece[p][sq] = rnd.Uint64()
		}
	}
	for cr := 0; cr < 16; cr++ {
		zobristCastle[cr] = rnd.Uint64()
	}
	for f := 0; f < 8; f++ {
		zobristEnPassant[f] = rnd.Uint64()
	}
	zobristSide = rnd.Uint64()
}

// ComputeHash calculates the Zobrist hash of the position from scratch. It covers
// piece placement, side to move, castling rights and the en-passant file; the
// move clocks are not part of the hash.
func (p *Position) ComputeHash() uint64 {
	var key uint64
	for c := White; c <= Black; c++ {
		for k := Pawn; k <= King; k++ {
			pc := MakePiece(c, k)
			for bb := p.kinds[k] & p.colors[c]; bb != 0; {
				key ^= zobristPiece[pc][popLSB(&bb)]
			}
		}
	}
	if p.side == Black {
		key ^= zobristSide
	}
	key ^= zobristCastle[p.castle&AllCastling]
	if p.ep != NoSquare {
		key ^= zobristEnPassant[p.ep.File()]
	}
	return key
}
