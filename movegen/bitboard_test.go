package movegen_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LFS6502/aperture/movegen"
)

func TestFromBytes(t *testing.T) {
	tests := []struct {
		name  string
		ranks [8]byte
		want  movegen.BitBoard
	}{
		{
			name:  "light squares",
			ranks: [8]byte{0b10101010, 0b01010101, 0b10101010, 0b01010101, 0b10101010, 0b01010101, 0b10101010, 0b01010101},
			want:  0b10101010_01010101_10101010_01010101_10101010_01010101_10101010_01010101,
		},
		{
			name:  "dark squares",
			ranks: [8]byte{0b01010101, 0b10101010, 0b01010101, 0b10101010, 0b01010101, 0b10101010, 0b01010101, 0b10101010},
			want:  0b01010101_10101010_01010101_10101010_01010101_10101010_01010101_10101010,
		},
		{
			name:  "e4",
			ranks: [8]byte{0, 0, 0, 0, 0b00001000, 0, 0, 0},
			want:  1 << 36,
		},
		{
			name:  "a8 and h1",
			ranks: [8]byte{0b10000000, 0, 0, 0, 0, 0, 0, 0b00000001},
			want:  movegen.SquareBB(movegen.A8) | movegen.SquareBB(movegen.H1),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, movegen.FromBytes(tt.ranks))
		})
	}

	assert.Equal(t, movegen.LightSquaresBB, movegen.FromBytes(tests[0].ranks))
	assert.Equal(t, movegen.DarkSquaresBB, movegen.FromBytes(tests[1].ranks))
	assert.Equal(t, movegen.E4, movegen.Square(36))
}

func TestBitBoardSetOperations(t *testing.T) {
	a := movegen.EmptyBB.Set(movegen.A1).Set(movegen.E4)
	b := movegen.EmptyBB.Set(movegen.E4).Set(movegen.H8)

	assert.True(t, a.Has(movegen.A1))
	assert.False(t, a.Has(movegen.H8))
	assert.Equal(t, 3, a.Union(b).Count())
	assert.Equal(t, movegen.SquareBB(movegen.E4), a.Intersect(b))
	assert.Equal(t, movegen.SquareBB(movegen.A1), a.Without(b))
	assert.Equal(t, movegen.SquareBB(movegen.A1), a.Clear(movegen.E4))
	assert.True(t, movegen.EmptyBB.IsEmpty())
	assert.Equal(t, 64, movegen.FullBB.Count())
}

func TestBitBoardLSB(t *testing.T) {
	_, err := movegen.EmptyBB.LSB()
	require.Error(t, err)
	assert.True(t, errors.Is(err, movegen.ErrEmptyBitBoard))
	_, err = movegen.EmptyBB.MSB()
	assert.ErrorIs(t, err, movegen.ErrEmptyBitBoard)

	bb := movegen.SquareBB(movegen.C3) | movegen.SquareBB(movegen.F7)
	lsb, err := bb.LSB()
	require.NoError(t, err)
	assert.Equal(t, movegen.F7, lsb) // rank 7 squares have lower indices than rank 3
	msb, err := bb.MSB()
	require.NoError(t, err)
	assert.Equal(t, movegen.C3, msb)

	assert.Equal(t, movegen.F7, bb.PopLSB())
	assert.Equal(t, movegen.C3, bb.PopLSB())
	assert.Equal(t, movegen.NoSquare, bb.PopLSB())
	assert.True(t, bb.IsEmpty())
}

func TestBitBoardSquaresAscending(t *testing.T) {
	bb := movegen.Rank2BB
	sqs := bb.Squares()
	require.Len(t, sqs, 8)
	for i, sq := range sqs {
		assert.Equal(t, movegen.SquareAt(i, 1), sq)
	}
}

func TestBitBoardShifts(t *testing.T) {
	e4 := movegen.SquareBB(movegen.E4)
	assert.Equal(t, movegen.SquareBB(movegen.E5), e4.North())
	assert.Equal(t, movegen.SquareBB(movegen.E3), e4.South())
	assert.Equal(t, movegen.SquareBB(movegen.F4), e4.East())
	assert.Equal(t, movegen.SquareBB(movegen.D4), e4.West())

	assert.True(t, movegen.FileHBB.East().IsEmpty(), "east shift must not wrap")
	assert.True(t, movegen.FileABB.West().IsEmpty(), "west shift must not wrap")
	assert.True(t, movegen.Rank8BB.North().IsEmpty())
	assert.True(t, movegen.Rank1BB.South().IsEmpty())
	assert.Equal(t, movegen.Rank3BB, movegen.Rank2BB.North())
}

func TestRanksAndFilesPartitionBoard(t *testing.T) {
	ranks := []movegen.BitBoard{
		movegen.Rank1BB, movegen.Rank2BB, movegen.Rank3BB, movegen.Rank4BB,
		movegen.Rank5BB, movegen.Rank6BB, movegen.Rank7BB, movegen.Rank8BB,
	}
	var all movegen.BitBoard
	for i, r := range ranks {
		assert.Equal(t, 8, r.Count())
		assert.True(t, r.Has(movegen.SquareAt(0, i)), "rank %d", i+1)
		assert.True(t, r.Has(movegen.SquareAt(7, i)), "rank %d", i+1)
		assert.True(t, all.Intersect(r).IsEmpty())
		all = all.Union(r)
	}
	assert.Equal(t, movegen.FullBB, all)

	assert.True(t, movegen.FileABB.Has(movegen.A1))
	assert.True(t, movegen.FileABB.Has(movegen.A8))
	assert.True(t, movegen.FileHBB.Has(movegen.H4))
	assert.Equal(t, movegen.EmptyBB, movegen.FileABB.Intersect(movegen.FileHBB))
	assert.Equal(t, movegen.SquareBB(movegen.E4), movegen.Rank4BB.Intersect(movegen.SquareBB(movegen.E4)))
	assert.Equal(t, movegen.EmptyBB, movegen.LightSquaresBB.Intersect(movegen.DarkSquaresBB))
}

func TestBitBoardString(t *testing.T) {
	s := movegen.SquareBB(movegen.A8).String()
	assert.Contains(t, s, "8 x . . . . . . .")
	assert.Contains(t, s, "1 . . . . . . . .")
	assert.Contains(t, s, "a b c d e f g h")
}

func TestSquareNames(t *testing.T) {
	for _, name := range []string{"a1", "h1", "a8", "h8", "e4", "d5"} {
		sq, err := movegen.ParseSquare(name)
		require.NoError(t, err, name)
		assert.Equal(t, name, sq.String())
	}
	assert.Equal(t, movegen.A8, movegen.Square(0))
	assert.Equal(t, movegen.H1, movegen.Square(63))
	assert.Equal(t, 4, movegen.E4.File())
	assert.Equal(t, 3, movegen.E4.Rank())

	for _, bad := range []string{"", "e", "i1", "a9", "a0", "e44"} {
		_, err := movegen.ParseSquare(bad)
		assert.ErrorIs(t, err, movegen.ErrInvalidSquare, bad)
	}
	assert.Equal(t, movegen.NoSquare, movegen.SquareAt(8, 0))
	assert.Equal(t, "-", movegen.NoSquare.String())
}
