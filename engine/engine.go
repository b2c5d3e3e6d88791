package engine

import (
	"othello/experiments/metrics"
	"othello/game"
)

// MaxMoves bounds the turns of a game, passes included.
const MaxMoves = 2 * game.Size * game.Size

// Draw is the winner of a game that ends level.
const Draw = "draw"

type Engine interface {
	// Run plays a game till neither side can move or MaxMoves turns are taken
	Run() (winner string, gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric)
}
