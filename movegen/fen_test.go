package movegen_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LFS6502/aperture/movegen"
)

const (
	kiwipeteFEN = "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"
	pos3FEN     = "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1"
	pos4FEN     = "r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1"
	pos5FEN     = "rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8"
	pos6FEN     = "r4rk1/1pp1qppp/p1np1n2/2b1p3/2B1P3/2NP1N2/PPP1QPPP/R4RK1 w - - 0 10"
)

func TestParseFENStartPosition(t *testing.T) {
	p, err := movegen.ParseFEN(movegen.StartFEN)
	require.NoError(t, err)
	require.NoError(t, p.Validate())

	assert.Equal(t, movegen.White, p.SideToMove())
	assert.Equal(t, movegen.AllCastling, p.CastleRights())
	assert.Equal(t, movegen.NoSquare, p.EnPassant())
	assert.Equal(t, 0, p.HalfmoveClock())
	assert.Equal(t, 1, p.FullmoveNumber())
	assert.Equal(t, 32, p.Occupancy().Count())

	assert.Equal(t, movegen.WhiteRook, p.PieceAt(movegen.A1))
	assert.Equal(t, movegen.WhiteKing, p.PieceAt(movegen.E1))
	assert.Equal(t, movegen.BlackRook, p.PieceAt(movegen.A8))
	assert.Equal(t, movegen.BlackKing, p.PieceAt(movegen.E8))
	assert.Equal(t, movegen.BlackQueen, p.PieceAt(movegen.D8))
	assert.Equal(t, movegen.NoPiece, p.PieceAt(movegen.E4))
	assert.Equal(t, movegen.Rank2BB, p.PiecesOf(movegen.White, movegen.Pawn))
	assert.Equal(t, movegen.Rank7BB, p.PiecesOf(movegen.Black, movegen.Pawn))
	assert.Equal(t, movegen.E1, p.KingSquare(movegen.White))
	assert.Equal(t, movegen.E8, p.KingSquare(movegen.Black))

	assert.Equal(t, movegen.StartPosition(), p)
}

func TestFENRoundTrip(t *testing.T) {
	fens := []string{
		movegen.StartFEN,
		kiwipeteFEN,
		pos3FEN,
		pos4FEN,
		pos5FEN,
		pos6FEN,
		"rnbqkbnr/pppp1ppp/8/4p3/4P3/8/PPPP1PPP/RNBQKBNR w KQkq e6 0 2",
		"8/8/8/8/8/8/8/8 b - - 42 99",
		"4k3/8/8/8/8/8/8/4K2R w K - 0 1",
	}
	for _, fen := range fens {
		p, err := movegen.ParseFEN(fen)
		require.NoError(t, err, fen)
		assert.Equal(t, fen, p.FEN())

		again, err := movegen.ParseFEN(p.FEN())
		require.NoError(t, err)
		assert.Equal(t, p, again, "re-decoded position differs for %s", fen)
	}
}

func TestParseFENOptionalClocks(t *testing.T) {
	p, err := movegen.ParseFEN("4k3/8/8/8/8/8/8/4K3 w - -")
	require.NoError(t, err)
	assert.Equal(t, 0, p.HalfmoveClock())
	assert.Equal(t, 1, p.FullmoveNumber())
	assert.Equal(t, "4k3/8/8/8/8/8/8/4K3 w - - 0 1", p.FEN())

	p, err = movegen.ParseFEN("4k3/8/8/8/8/8/8/4K3 b - - 7")
	require.NoError(t, err)
	assert.Equal(t, 7, p.HalfmoveClock())
	assert.Equal(t, 1, p.FullmoveNumber())
}

func TestParseFENEnPassant(t *testing.T) {
	p, err := movegen.ParseFEN("rnbqkbnr/pppp1ppp/8/4p3/4P3/8/PPPP1PPP/RNBQKBNR w KQkq e6 0 2")
	require.NoError(t, err)
	assert.Equal(t, movegen.E6, p.EnPassant())
}

func TestParseFENErrors(t *testing.T) {
	tests := []struct {
		name  string
		fen   string
		field string
	}{
		{"empty", "", movegen.FieldCount},
		{"too few fields", "8/8/8/8/8/8/8/8 w -", movegen.FieldCount},
		{"too many fields", "8/8/8/8/8/8/8/8 w - - 0 1 extra", movegen.FieldCount},
		{"seven ranks", "8/8/8/8/8/8/8 w - - 0 1", movegen.FieldPlacement},
		{"nine ranks", "8/8/8/8/8/8/8/8/8 w - - 0 1", movegen.FieldPlacement},
		{"short rank", "rnbqkbnr/ppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1", movegen.FieldPlacement},
		{"long rank", "rnbqkbnr/pppppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1", movegen.FieldPlacement},
		{"overflow then short", "9/8/8/8/8/8/8/8 w - - 0 1", movegen.FieldPlacement},
		{"digits overflow", "44p/8/8/8/8/8/8/8 w - - 0 1", movegen.FieldPlacement},
		{"unknown piece", "rnbqkbnr/ppppxppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1", movegen.FieldPlacement},
		{"zero digit", "rnbqkbnr/pppppppp/80/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1", movegen.FieldPlacement},
		{"bad side", "8/8/8/8/8/8/8/8 x - - 0 1", movegen.FieldSide},
		{"bad castling", "8/8/8/8/8/8/8/8 w KX - 0 1", movegen.FieldCastling},
		{"bad en passant", "8/8/8/8/8/8/8/8 w - z9 0 1", movegen.FieldEnPassant},
		{"negative halfmove", "8/8/8/8/8/8/8/8 w - - -1 1", movegen.FieldHalfmove},
		{"word halfmove", "8/8/8/8/8/8/8/8 w - - ten 1", movegen.FieldHalfmove},
		{"bad fullmove", "8/8/8/8/8/8/8/8 w - - 0 x", movegen.FieldFullmove},
		{"signed halfmove", "8/8/8/8/8/8/8/8 w - - +3 1", movegen.FieldHalfmove},
		{"negative zero halfmove", "8/8/8/8/8/8/8/8 w - - -0 1", movegen.FieldHalfmove},
		{"signed fullmove", "8/8/8/8/8/8/8/8 w - - 0 +1", movegen.FieldFullmove},
		{"repeated castling letter", "8/8/8/8/8/8/8/8 w KKkk - 0 1", movegen.FieldCastling},
		{"repeated castling letter apart", "8/8/8/8/8/8/8/8 w KQkqK - 0 1", movegen.FieldCastling},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := movegen.ParseFEN(tt.fen)
			require.Error(t, err)
			assert.True(t, errors.Is(err, movegen.ErrInvalidFEN))

			var fe *movegen.FenError
			require.True(t, errors.As(err, &fe))
			assert.Equal(t, tt.field, fe.Field)
			assert.NotEmpty(t, fe.Reason)
			assert.Contains(t, err.Error(), tt.field)
		})
	}
}

func TestMustParseFENPanics(t *testing.T) {
	assert.Panics(t, func() { movegen.MustParseFEN("not a fen") })
	assert.NotPanics(t, func() { movegen.MustParseFEN(movegen.StartFEN) })
}

func TestPositionEditing(t *testing.T) {
	p := movegen.NewPosition()
	require.NoError(t, p.Validate())
	assert.Equal(t, "8/8/8/8/8/8/8/8 w - - 0 1", p.FEN())

	p.SetPiece(movegen.E1, movegen.WhiteKing)
	p.SetPiece(movegen.E8, movegen.BlackKing)
	p.SetPiece(movegen.E2, movegen.WhitePawn)
	p.SetPiece(movegen.E2, movegen.WhiteQueen) // replaces the pawn
	p.SetSideToMove(movegen.Black)
	p.SetCastleRights(movegen.WhiteShort | movegen.BlackLong)
	p.SetEnPassant(movegen.C3)
	require.NoError(t, p.Validate())
	assert.Equal(t, "4k3/8/8/8/8/8/4Q3/4K3 b Kq c3 0 1", p.FEN())

	p.ClearSquare(movegen.E2)
	p.SetEnPassant(movegen.NoSquare)
	require.NoError(t, p.Validate())
	assert.Equal(t, movegen.NoPiece, p.PieceAt(movegen.E2))
	assert.Equal(t, movegen.EmptyBB, p.Pieces(movegen.Queen))

	q, err := movegen.ParseFEN(p.FEN())
	require.NoError(t, err)
	assert.Equal(t, q.Hash(), p.Hash(), "edited hash must match a fresh parse")
}

func TestZeroPositionIsNotUsable(t *testing.T) {
	var zero movegen.Position
	assert.ErrorIs(t, zero.Validate(), movegen.ErrCorruptPosition)

	p := movegen.NewPosition()
	require.NoError(t, p.Validate())
	assert.Equal(t, movegen.NoSquare, p.EnPassant())
	assert.Equal(t, 1, p.FullmoveNumber())
}

func TestPositionString(t *testing.T) {
	p := movegen.StartPosition()
	s := p.String()
	assert.Contains(t, s, "8 r n b q k b n r")
	assert.Contains(t, s, "1 R N B Q K B N R")
	assert.Contains(t, s, movegen.StartFEN)
}
