package movegen

// GameState is the classification of a position.
type GameState uint8

const (
	Ongoing GameState = iota
	Check
	Checkmate
	Stalemate
	DrawFiftyMove
	DrawInsufficientMaterial
	DrawThreefold
)

var gameStateNames = [...]string{
	"ongoing", "check", "checkmate", "stalemate",
	"draw by fifty-move rule", "draw by insufficient material", "draw by threefold repetition",
}

func (s GameState) String() string {
	if int(s) < len(gameStateNames) {
		return gameStateNames[s]
	}
	return "invalid"
}

// IsTerminal reports whether the game is over in this state.
func (s GameState) IsTerminal() bool { return s != Ongoing && s != Check }

// IsDraw reports whether the state is a drawn result.
func (s GameState) IsDraw() bool {
	return s == Stalemate || s == DrawFiftyMove || s == DrawInsufficientMaterial || s == DrawThreefold
}

// HistoryView is read-only access to the hashes of the positions that came
// before the current one. It is owned and filled by the caller.
type HistoryView interface {
	PriorHashes() []uint64
}

// HashHistory is the simplest HistoryView: a slice of prior position hashes.
type HashHistory []uint64

func (h HashHistory) PriorHashes() []uint64 { return h }

// fiftyMoveLimit is fifty moves by each side, counted in half-moves.
const fiftyMoveLimit = 100

// IsDrawByFiftyMoves reports a fifty-move rule draw.
func (p *Position) IsDrawByFiftyMoves() bool { return p.halfmove >= fiftyMoveLimit }

// IsCheckmate reports whether the side to move is checkmated.
func (p *Position) IsCheckmate() bool { return p.InCheck(p.side) && !p.HasLegalMoves() }

// IsStalemate reports whether the side to move has no legal move and is not in check.
func (p *Position) IsStalemate() bool { return !p.InCheck(p.side) && !p.HasLegalMoves() }

// HasInsufficientMaterial reports the piece combinations that can never reach
// checkmate: bare kings, a single minor piece, or only bishops that all stand
// on squares of one color.
func (p *Position) HasInsufficientMaterial() bool {
	if p.kinds[Pawn]|p.kinds[Rook]|p.kinds[Queen] != 0 {
		return false
	}
	minors := p.kinds[Knight] | p.kinds[Bishop]
	if minors.Count() <= 1 {
		return true
	}
	if p.kinds[Knight] == 0 {
		bishops := p.kinds[Bishop]
		return bishops&LightSquaresBB == bishops || bishops&DarkSquaresBB == bishops
	}
	return false
}

// IsThreefold reports whether the current position already occurred at least
// twice in history. A trailing history entry equal to the current hash is
// treated as the current position itself and not counted.
func (p *Position) IsThreefold(history HistoryView) bool {
	if history == nil {
		return false
	}
	prior := history.PriorHashes()
	end := len(prior)
	if end > 0 && prior[end-1] == p.hash {
		end--
	}
	matches := 0
	for i := 0; i < end; i++ {
		if prior[i] == p.hash {
			matches++
			if matches >= 2 {
				return true
			}
		}
	}
	return false
}

// Classify reports the state of the position. Checkmate and stalemate take
// precedence over the draw rules, which take precedence over a plain check.
// history may be nil, in which case repetition is never reported.
func Classify(p *Position, history HistoryView) GameState {
	inCheck := p.InCheck(p.side)
	if !p.HasLegalMoves() {
		if inCheck {
			return Checkmate
		}
		return Stalemate
	}
	switch {
	case p.HasInsufficientMaterial():
		return DrawInsufficientMaterial
	case p.IsThreefold(history):
		return DrawThreefold
	case p.IsDrawByFiftyMoves():
		return DrawFiftyMove
	case inCheck:
		return Check
	}
	return Ongoing
}
