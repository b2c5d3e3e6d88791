package agent

import (
	"othello/experiments/metrics"
	"othello/game"
)

// Agent is the contract a host plays against: given the board and the side to move
// it returns a legal move, or ok=false when side has none and must pass.
type Agent interface {
	Face() string
	Place(board game.Board, side game.Side) (move game.Cell, ok bool)
}

// Reporter is implemented by agents that can describe their last decision.
type Reporter interface {
	Report() Decision
}

// Decision describes how the last move was chosen.
type Decision struct {
	Phase  Phase
	Metric metrics.SearchMetric
}

type Phase int

const (
	HeuristicPhase Phase = iota
	SearchPhase
	RandomPhase
)

func (p Phase) String() string {
	switch p {
	case HeuristicPhase:
		return "heuristic"
	case SearchPhase:
		return "search"
	case RandomPhase:
		return "random"
	default:
		return "unknown"
	}
}
