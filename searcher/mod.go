package searcher

import (
	"othello/experiments/metrics"
	"othello/game"
)

// Searcher picks a move for side on board. ok is false when side has no legal move.
type Searcher interface {
	BestMove(board game.Board, side game.Side) (move game.Cell, score int, ok bool)
	Metric() metrics.SearchMetric
}

// worse returns the initial value of a max (maximizing) or min node. Every
// non-leaf node has at least one child, so it never leaks out of the search.
func worse(maximizing bool) int {
	if maximizing {
		return minScore
	}
	return maxScore
}

const (
	maxScore = 1 << 30
	minScore = -maxScore
)
