package agent

import (
	"othello/game"

	"golang.org/x/exp/rand"
)

// Random plays a uniformly random legal move. It is the baseline opponent.
type Random struct {
	rng *rand.Rand
}

func NewRandom(seed uint64) *Random {
	return &Random{rng: rand.New(rand.NewSource(seed))}
}

func (r *Random) Face() string {
	return "🎲"
}

func (r *Random) Place(board game.Board, side game.Side) (game.Cell, bool) {
	moves := board.LegalMoves(side)
	if len(moves) == 0 {
		return game.Cell{}, false
	}
	return moves[r.rng.Intn(len(moves))], true
}

func (r *Random) Report() Decision {
	return Decision{Phase: RandomPhase}
}
