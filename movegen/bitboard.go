package movegen

import (
	"errors"
	"math/bits"
	"strings"
)

// BitBoard is a set of squares with one bit per square.
//
// Bit layout (bit index per square):
//
//	8    0  1  2  3  4  5  6  7
//	7    8  9 10 11 12 13 14 15
//	6   16 17 18 19 20 21 22 23
//	5   24 25 26 27 28 29 30 31
//	4   32 33 34 35 36 37 38 39
//	3   40 41 42 43 44 45 46 47
//	2   48 49 50 51 52 53 54 55
//	1   56 57 58 59 60 61 62 63
//
//	     a  b  c  d  e  f  g  h
type BitBoard uint64

// ErrEmptyBitBoard is returned when a bit index is requested from an empty set.
var ErrEmptyBitBoard = errors.New("empty bitboard")

const (
	EmptyBB BitBoard = 0
	FullBB  BitBoard = ^EmptyBB

	FileABB BitBoard = 0x0101010101010101
	FileHBB BitBoard = FileABB << 7

	Rank8BB BitBoard = 0xFF
	Rank7BB BitBoard = Rank8BB << (8 * 1)
	Rank6BB BitBoard = Rank8BB << (8 * 2)
	Rank5BB BitBoard = Rank8BB << (8 * 3)
	Rank4BB BitBoard = Rank8BB << (8 * 4)
	Rank3BB BitBoard = Rank8BB << (8 * 5)
	Rank2BB BitBoard = Rank8BB << (8 * 6)
	Rank1BB BitBoard = Rank8BB << (8 * 7)

	// a8 is a light square, a1 a dark one.
	LightSquaresBB BitBoard = 0xAA55AA55AA55AA55
	DarkSquaresBB  BitBoard = ^LightSquaresBB
)

// SquareBB returns the set holding only sq.
func SquareBB(sq Square) BitBoard { return BitBoard(1) << uint(sq) }

// FromBytes builds a BitBoard from eight rank bytes. Byte 0 is rank 8 and byte 7
// rank 1; within a byte bit 7 is the a-file and bit 0 the h-file, so every byte
// is bit-reversed into its 8-bit slot.
func FromBytes(ranks [8]byte) BitBoard {
	var result uint64
	for i, b := range ranks {
		result |= uint64(bits.Reverse8(b)) << (8 * uint(i))
	}
	return BitBoard(result)
}

func (b BitBoard) Union(o BitBoard) BitBoard     { return b | o }
func (b BitBoard) Intersect(o BitBoard) BitBoard { return b & o }
func (b BitBoard) Without(o BitBoard) BitBoard   { return b &^ o }

// Set returns b with sq added.
func (b BitBoard) Set(sq Square) BitBoard { return b | SquareBB(sq) }

// Clear returns b with sq removed.
func (b BitBoard) Clear(sq Square) BitBoard { return b &^ SquareBB(sq) }

// Has reports whether sq is in the set.
func (b BitBoard) Has(sq Square) bool { return b&SquareBB(sq) != 0 }

// Count returns the number of squares in the set.
func (b BitBoard) Count() int { return bits.OnesCount64(uint64(b)) }

func (b BitBoard) IsEmpty() bool { return b == 0 }

// LSB returns the lowest-indexed square of the set.
func (b BitBoard) LSB() (Square, error) {
	if b == 0 {
		return NoSquare, ErrEmptyBitBoard
	}
	return Square(bits.TrailingZeros64(uint64(b))), nil
}

// MSB returns the highest-indexed square of the set.
func (b BitBoard) MSB() (Square, error) {
	if b == 0 {
		return NoSquare, ErrEmptyBitBoard
	}
	return Square(63 - bits.LeadingZeros64(uint64(b))), nil
}

// PopLSB removes and returns the lowest-indexed square, or NoSquare when b is empty.
func (b *BitBoard) PopLSB() Square {
	if *b == 0 {
		return NoSquare
	}
	return popLSB(b)
}

// Squares lists the members in ascending order.
func (b BitBoard) Squares() []Square {
	out := make([]Square, 0, b.Count())
	for b != 0 {
		out = append(out, popLSB(&b))
	}
	return out
}

// North shifts every square one rank toward rank 8.
func (b BitBoard) North() BitBoard { return b >> 8 }

// South shifts every square one rank toward rank 1.
func (b BitBoard) South() BitBoard { return b << 8 }

// East shifts every square one file toward the h-file, dropping the h-file.
func (b BitBoard) East() BitBoard { return (b &^ FileHBB) << 1 }

// West shifts every square one file toward the a-file, dropping the a-file.
func (b BitBoard) West() BitBoard { return (b &^ FileABB) >> 1 }

// String draws the set as a diagram, rank 8 on top.
func (b BitBoard) String() string {
	var sb strings.Builder
	for row := 0; row < 8; row++ {
		sb.WriteByte('8' - byte(row))
		for file := 0; file < 8; file++ {
			sb.WriteByte(' ')
			if b.Has(Square(row*8 + file)) {
				sb.WriteByte('x')
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("  a b c d e f g h")
	return sb.String()
}

// popLSB removes and returns the least significant set bit. The mask must be non-empty.
func popLSB(mask *BitBoard) Square {
	idx := bits.TrailingZeros64(uint64(*mask))
	*mask &= *mask - 1
	return Square(idx)
}
