// Package crosscheck compares movegen's perft counts against independent
// third-party move generators, root move by root move.
package crosscheck

import (
	"errors"
	"fmt"
	"strings"

	goosemg "github.com/Oliverans/GooseEngineMG/goosemg"
	"github.com/dylhunn/dragontoothmg"
	"golang.org/x/exp/slices"

	"github.com/LFS6502/aperture/movegen"
)

// Mismatch is a root move whose subtree counts disagree. A count of zero on one
// side means that generator did not produce the move at all.
type Mismatch struct {
	Move string
	Got  uint64 // movegen
	Want uint64 // reference
}

func (m Mismatch) String() string {
	return fmt.Sprintf("%s: got %d want %d", m.Move, m.Got, m.Want)
}

// Report is the outcome of Compare.
type Report struct {
	FEN            string
	Depth          int
	Nodes          uint64
	ReferenceNodes uint64
	// Divide holds movegen's per-root-move counts keyed by coordinate notation.
	Divide     map[string]uint64
	Mismatches []Mismatch
}

// OK reports whether the two generators agree completely.
func (r Report) OK() bool { return r.Nodes == r.ReferenceNodes && len(r.Mismatches) == 0 }

// Compare runs perft divide on fen to the given depth with movegen and with
// dragontoothmg, and lists every root move on which they disagree.
func Compare(fen string, depth int) (Report, error) {
	pos, err := movegen.ParseFEN(fen)
	if err != nil {
		return Report{}, err
	}
	if depth < 1 {
		return Report{}, fmt.Errorf("crosscheck: depth must be at least 1, got %d", depth)
	}
	if err := checkKings(&pos); err != nil {
		return Report{}, err
	}
	// dragontoothmg wants all six fields; normalise through our encoder.
	norm := pos.FEN()

	r := Report{FEN: norm, Depth: depth, Divide: make(map[string]uint64)}
	for m, n := range movegen.PerftDivide(&pos, depth) {
		r.Divide[m.String()] = n
		r.Nodes += n
	}

	ref := dragonDivide(norm, depth)
	for _, n := range ref {
		r.ReferenceNodes += n
	}

	for mv, got := range r.Divide {
		if want := ref[mv]; want != got {
			r.Mismatches = append(r.Mismatches, Mismatch{Move: mv, Got: got, Want: want})
		}
	}
	for mv, want := range ref {
		if _, ok := r.Divide[mv]; !ok {
			r.Mismatches = append(r.Mismatches, Mismatch{Move: mv, Want: want})
		}
	}
	slices.SortFunc(r.Mismatches, func(a, b Mismatch) int { return strings.Compare(a.Move, b.Move) })
	return r, nil
}

// ErrKingCount is returned for positions the reference generators cannot take:
// both of them index the board by king square without checking for one.
var ErrKingCount = errors.New("crosscheck: reference generators need one king per side")

func checkKings(pos *movegen.Position) error {
	for _, c := range [2]movegen.Color{movegen.White, movegen.Black} {
		if n := pos.PiecesOf(c, movegen.King).Count(); n != 1 {
			return fmt.Errorf("%w: %s has %d", ErrKingCount, c, n)
		}
	}
	return nil
}

func dragonDivide(fen string, depth int) map[string]uint64 {
	b := dragontoothmg.ParseFen(fen)
	out := make(map[string]uint64)
	moves := b.GenerateLegalMoves()
	for i := range moves {
		m := moves[i]
		undo := b.Apply(m)
		out[m.String()] = dragonPerft(&b, depth-1)
		undo()
	}
	return out
}

func dragonPerft(b *dragontoothmg.Board, depth int) uint64 {
	if depth == 0 {
		return 1
	}
	moves := b.GenerateLegalMoves()
	if depth == 1 {
		return uint64(len(moves))
	}
	var nodes uint64
	for _, m := range moves {
		undo := b.Apply(m)
		nodes += dragonPerft(b, depth-1)
		undo()
	}
	return nodes
}

// ReferencePerft returns the perft total from the GooseEngineMG generator, a
// second independent reference for positions where dragontoothmg is in doubt.
func ReferencePerft(fen string, depth int) (uint64, error) {
	pos, err := movegen.ParseFEN(fen)
	if err != nil {
		return 0, err
	}
	if err := checkKings(&pos); err != nil {
		return 0, err
	}
	b, err := goosemg.ParseFEN(pos.FEN())
	if err != nil {
		return 0, fmt.Errorf("crosscheck: reference rejected %q: %w", fen, err)
	}
	return goosemg.Perft(b, depth), nil
}
