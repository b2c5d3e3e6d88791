package agent

import (
	"othello/game"
	"othello/searcher"

	"github.com/rs/zerolog/log"
)

const (
	DefaultEndgameThreshold = 10  // Empty cells at or below which the search takes over
	DefaultDangerPenalty    = 100 // Subtracted from a danger cell's flip count
)

type Option func(p *Panda)

// Panda plays the heuristic (corners first, danger cells last, most flips otherwise)
// until the endgame, then switches to minimax. It keeps no state between calls
// apart from the report of the last decision.
type Panda struct {
	search           searcher.Searcher
	endgameThreshold int
	dangerPenalty    int
	last             Decision
}

func WithEndgameThreshold(empties int) Option {
	return func(p *Panda) {
		if empties >= 0 {
			p.endgameThreshold = empties
		}
	}
}

func WithDangerPenalty(penalty int) Option {
	return func(p *Panda) {
		if penalty >= 0 {
			p.dangerPenalty = penalty
		}
	}
}

func WithSearcher(s searcher.Searcher) Option {
	return func(p *Panda) {
		if s != nil {
			p.search = s
		}
	}
}

func NewPanda(options ...Option) *Panda {
	p := &Panda{ // Default values
		search:           searcher.NewMinimax(),
		endgameThreshold: DefaultEndgameThreshold,
		dangerPenalty:    DefaultDangerPenalty,
	}
	for _, option := range options {
		option(p)
	}
	return p
}

func (p *Panda) Face() string {
	return "🐰"
}

// Phase returns which strategy Place uses on board.
func (p *Panda) Phase(board game.Board) Phase {
	if board.Empties() <= p.endgameThreshold {
		return SearchPhase
	}
	return HeuristicPhase
}

func (p *Panda) Place(board game.Board, side game.Side) (game.Cell, bool) {
	phase := p.Phase(board)
	p.last = Decision{Phase: phase}

	var move game.Cell
	var ok bool
	switch phase {
	case SearchPhase:
		move, _, ok = p.search.BestMove(board, side)
		p.last.Metric = p.search.Metric()
	default:
		move, ok = p.BestPlaceWithRiskManagement(board, side)
	}

	if !ok {
		log.Debug().Msgf("%s has no legal move", side)
		return game.Cell{}, false
	}
	log.Debug().Msgf("%s plays %s in %s phase", side, move, phase)
	return move, true
}

// BestPlaceWithRiskManagement returns the first legal corner in row-major order if
// there is one. Otherwise it returns the move flipping the most stones, where danger
// cells lose the danger penalty; ties go to the earliest move.
func (p *Panda) BestPlaceWithRiskManagement(board game.Board, side game.Side) (game.Cell, bool) {
	var best game.Cell
	bestScore := 0
	found := false

	for _, move := range board.LegalMoves(side) {
		if game.IsCorner(move) {
			return move, true
		}

		score := board.FlippableCount(side, move.X, move.Y)
		if game.IsDanger(move) {
			score -= p.dangerPenalty
		}

		if !found || score > bestScore {
			best, bestScore, found = move, score, true
		}
	}
	return best, found
}

func (p *Panda) Report() Decision {
	return p.last
}
