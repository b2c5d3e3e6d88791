package searcher

import (
	"othello/experiments/metrics"
	"othello/game"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

type Option func(m *Minimax)

// Minimax is a plain fixed-depth minimax: no pruning, no transposition table, no
// iterative deepening. A Minimax is not safe for concurrent BestMove calls; the
// goroutines option parallelizes inside a single call.
type Minimax struct {
	depth      int
	goroutines int
	evaluate   game.Evaluate
	metrics    metrics.Collector
	last       metrics.SearchMetric
}

func WithDepth(depth int) Option {
	return func(m *Minimax) {
		if depth >= 0 {
			m.depth = depth
		}
	}
}

func WithGoroutines(goroutines int) Option {
	return func(m *Minimax) {
		if goroutines > 0 {
			m.goroutines = goroutines
		}
	}
}

func WithEvaluationFn(evaluate game.Evaluate) Option {
	return func(m *Minimax) {
		if evaluate != nil {
			m.evaluate = evaluate
		}
	}
}

func WithMetrics() Option {
	return func(m *Minimax) {
		m.metrics = metrics.NewCollector()
	}
}

func NewMinimax(options ...Option) *Minimax {
	m := &Minimax{ // Default values
		depth:      DefaultDepth,
		goroutines: DefaultGoroutines,
		evaluate:   game.Score,
		metrics:    metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(m)
	}
	return m
}

// Depth returns the configured search depth.
func (m *Minimax) Depth() int {
	return m.depth
}

// Metric returns the metrics of the last completed search.
func (m *Minimax) Metric() metrics.SearchMetric {
	return m.last
}

// BestMove searches with the configured depth.
func (m *Minimax) BestMove(board game.Board, side game.Side) (game.Cell, int, bool) {
	return m.BestMoveByDepth(board, side, m.depth)
}

// BestMoveByDepth scores every legal move of side with Evaluate(child, side, depth,
// false) and returns the best one. Ties go to the earliest move in row-major order.
func (m *Minimax) BestMoveByDepth(board game.Board, side game.Side, depth int) (game.Cell, int, bool) {
	moves := board.LegalMoves(side)
	if len(moves) == 0 {
		m.last = metrics.SearchMetric{Depth: depth}
		return game.Cell{}, 0, false
	}

	m.metrics.Start(depth, m.goroutines)
	scores := m.scoreMoves(board, side, moves, depth)

	best := 0
	for i := 1; i < len(scores); i++ {
		if scores[i] > scores[best] { // Strictly greater keeps the earliest move
			best = i
		}
	}
	m.last = m.metrics.Complete(scores[best])

	log.Debug().
		Str("side", side.String()).
		Int("depth", depth).
		Int("candidates", len(moves)).
		Stringer("move", moves[best]).
		Int("score", scores[best]).
		Msg("minimax search complete")

	return moves[best], scores[best], true
}

func (m *Minimax) scoreMoves(board game.Board, side game.Side, moves []game.Cell, depth int) []int {
	scores := make([]int, len(moves))
	if m.goroutines <= 1 || len(moves) == 1 {
		for i, move := range moves {
			scores[i] = m.scoreMove(board, side, move, depth)
		}
		return scores
	}

	// Each goroutine writes only its own slot
	var g errgroup.Group
	g.SetLimit(m.goroutines)
	for i, move := range moves {
		i, move := i, move
		g.Go(func() error {
			scores[i] = m.scoreMove(board, side, move, depth)
			return nil
		})
	}
	_ = g.Wait()
	return scores
}

func (m *Minimax) scoreMove(board game.Board, side game.Side, move game.Cell, depth int) int {
	m.metrics.AddNode()
	return m.Evaluate(board.Apply(side, move.X, move.Y), side, depth, false)
}

// Evaluate returns the minimax value of board for side. When maximizing, side is
// to move; otherwise its opponent is. Boards at depth 0 or where neither side can
// move are scored by the evaluator.
//
// A mover without legal moves in a live position passes: the same board is searched
// at the same depth with the other side to move.
func (m *Minimax) Evaluate(board game.Board, side game.Side, depth int, maximizing bool) int {
	if depth <= 0 || board.IsTerminal() {
		m.metrics.AddLeaf()
		return m.evaluate(board, side)
	}

	mover := side
	if !maximizing {
		mover = side.Opponent()
	}

	moves := board.LegalMoves(mover)
	if len(moves) == 0 {
		m.metrics.AddPass()
		return m.Evaluate(board, side, depth, !maximizing)
	}

	best := worse(maximizing)
	for _, move := range moves {
		m.metrics.AddNode()
		value := m.Evaluate(board.Apply(mover, move.X, move.Y), side, depth-1, !maximizing)
		if maximizing && value > best || !maximizing && value < best {
			best = value
		}
	}
	return best
}
