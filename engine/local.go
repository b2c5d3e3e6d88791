package engine

import (
	"time"

	"othello/agent"
	"othello/experiments/metrics"
	"othello/game"

	"github.com/rs/zerolog/log"
)

var _ Engine = (*Local)(nil)

// Local runs a game between two in-process agents.
type Local struct {
	State  game.State
	Agents [2]agent.Agent // Indexed by side: black first
}

// LocalEngine hosts a game between two agents on the initial position with black
// to move.
func LocalEngine(black, white agent.Agent) *Local {
	if black == nil || white == nil {
		panic("both sides need an agent")
	}
	return &Local{
		State:  game.NewState(),
		Agents: [2]agent.Agent{black, white},
	}
}

func (e *Local) agentFor(side game.Side) agent.Agent {
	if side == game.Black {
		return e.Agents[0]
	}
	return e.Agents[1]
}

// Run executes the entire game loop. The mover passes when it has no legal move.
// An agent that answers with an illegal move, or with no move while it has one, is
// overruled with its first legal move.
func (e *Local) Run() (string, metrics.GameMetric, []metrics.MoveMetric) {
	gameMetric := metrics.GameMetric{
		StartingPlayer: e.State.Turn.String(),
		StartTime:      time.Now(),
	}
	var moveMetrics []metrics.MoveMetric

	log.Info().Msgf("%s %s vs %s %s", game.Black, e.Agents[0].Face(), game.White, e.Agents[1].Face())

	for turn := 1; !e.State.IsOver() && turn <= MaxMoves; turn++ {
		side := e.State.Turn
		legal := e.State.LegalMoves()
		if len(legal) == 0 {
			log.Debug().Msgf("turn %d: %s passes", turn, side)
			gameMetric.Passes++
			e.State = e.State.Pass()
			continue
		}

		player := e.agentFor(side)
		move, ok := player.Place(e.State.Board, side)
		if !ok || !e.State.Board.IsLegal(side, move.X, move.Y) {
			log.Warn().Msgf("turn %d: %s answered %s (ok=%t) => playing %s instead", turn, side, move, ok, legal[0])
			move = legal[0]
			gameMetric.Fallbacks++
		}

		next, err := e.State.Play(move)
		if err != nil {
			panic(err) // move was checked above
		}

		mm := metrics.MoveMetric{
			Step:   turn,
			Player: side.String(),
			Move:   move.String(),
		}
		if reporter, ok := player.(agent.Reporter); ok {
			decision := reporter.Report()
			mm.Phase = decision.Phase.String()
			mm.SearchMetric = decision.Metric
		}
		moveMetrics = append(moveMetrics, mm)

		log.Debug().Msgf("turn %d: %s plays %s\n%s", turn, side, move, next.Board)
		e.State = next
		gameMetric.TotalMoves++
	}

	winner := Draw
	if side, ok := e.State.Winner(); ok {
		winner = side.String()
	}

	gameMetric.Winner = winner
	gameMetric.BlackDiscs = e.State.Board.Count(game.BlackStone)
	gameMetric.WhiteDiscs = e.State.Board.Count(game.WhiteStone)
	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)

	log.Info().Msgf("game over after %d moves, winner: %s (%d-%d)", gameMetric.TotalMoves, winner, gameMetric.BlackDiscs, gameMetric.WhiteDiscs)
	return winner, gameMetric, moveMetrics
}
