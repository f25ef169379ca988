// Package session tracks a game in progress: the current position, the moves
// played with their undo records, and the hash history the repetition rule needs.
package session

import (
	"errors"
	"fmt"

	"golang.org/x/exp/slices"

	"github.com/LFS6502/aperture/movegen"
)

var (
	// ErrIllegalMove is returned by Push for a move that is not legal in the current position.
	ErrIllegalMove = movegen.ErrIllegalMove
	// ErrNoMoves is returned by Pop when nothing has been played.
	ErrNoMoves = errors.New("no moves to take back")
)

type frame struct {
	move movegen.Move
	undo movegen.Undo
}

// Game owns a position and its history. The zero value is not usable; call New
// or FromFEN.
type Game struct {
	pos   movegen.Position
	stack []frame
	// hashes[i] is the hash of the position before stack[i] was played.
	hashes []uint64
}

// New starts a game from the standard initial position.
func New() *Game {
	return &Game{pos: movegen.StartPosition()}
}

// FromFEN starts a game from a FEN position.
func FromFEN(fen string) (*Game, error) {
	pos, err := movegen.ParseFEN(fen)
	if err != nil {
		return nil, fmt.Errorf("session: %w", err)
	}
	return &Game{pos: pos}, nil
}

// Position returns a copy of the current position.
func (g *Game) Position() movegen.Position { return g.pos }

// LegalMoves returns the legal moves in the current position.
func (g *Game) LegalMoves() []movegen.Move { return g.pos.GenerateLegalMoves() }

// Moves returns the moves played so far, oldest first.
func (g *Game) Moves() []movegen.Move {
	out := make([]movegen.Move, len(g.stack))
	for i, f := range g.stack {
		out[i] = f.move
	}
	return out
}

// Push plays m if it is legal in the current position.
func (g *Game) Push(m movegen.Move) error {
	if !slices.Contains(g.pos.GenerateLegalMoves(), m) {
		return fmt.Errorf("%w: %s", ErrIllegalMove, m)
	}
	g.play(m)
	return nil
}

// PushUCI plays a move written in coordinate notation, e.g. "e2e4" or "a7a8q".
func (g *Game) PushUCI(text string) error {
	m, err := g.pos.FindMove(text)
	if err != nil {
		return fmt.Errorf("%w: %q", err, text)
	}
	g.play(m)
	return nil
}

func (g *Game) play(m movegen.Move) {
	g.hashes = append(g.hashes, g.pos.Hash())
	u := g.pos.MakeMove(m)
	g.stack = append(g.stack, frame{move: m, undo: u})
}

// Pop takes back the last move.
func (g *Game) Pop() (movegen.Move, error) {
	n := len(g.stack)
	if n == 0 {
		return movegen.NoMove, ErrNoMoves
	}
	f := g.stack[n-1]
	g.stack = g.stack[:n-1]
	g.hashes = g.hashes[:n-1]
	g.pos.UnmakeMove(f.move, f.undo)
	return f.move, nil
}

// PriorHashes returns the hashes of earlier positions that can still repeat the
// current one: those reached since the last pawn move or capture.
func (g *Game) PriorHashes() []uint64 {
	n := g.pos.HalfmoveClock()
	if n > len(g.hashes) {
		n = len(g.hashes)
	}
	return g.hashes[len(g.hashes)-n:]
}

// Status classifies the current position using the game's own history.
func (g *Game) Status() movegen.GameState {
	return movegen.Classify(&g.pos, g)
}
