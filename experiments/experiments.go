package experiments

import (
	"fmt"

	"othello/agent"
	"othello/engine"
	"othello/experiments/metrics"
	"othello/game"
	"othello/searcher"

	"github.com/rs/zerolog/log"
)

// Run plays every match-up of cfg and stores the agent configs, game records and
// move records as CSV files below cfg.Output. It returns the directory written to.
func Run(cfg Config) (string, error) {
	if err := cfg.Validate(); err != nil {
		return "", err
	}

	count := 0
	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}

	log.Info().Msgf("starting %s experiment...", cfg.Name)

	for mi, matchup := range cfg.MatchUps {
		config1 := cfg.agent(matchup[0])
		config2 := cfg.agent(matchup[1])

		log.Info().Msgf("starting matchup %d of %d between agent1=%+v and agent2=%+v...", mi+1, len(cfg.MatchUps), config1, config2)

		for i := 0; i < cfg.Games; i++ {
			// Alternate colours so neither agent always moves first
			black, white := config1, config2
			if i%2 == 1 {
				black, white = config2, config1
			}

			winner, gameMetric, moveMetrics := runGame(black, white)
			count++
			gameRecords = append(gameRecords, metrics.GameRecord{
				ID:         count,
				Black:      black.ID,
				White:      white.ID,
				GameMetric: gameMetric,
			})
			for _, mm := range moveMetrics {
				moveRecords = append(moveRecords, metrics.MoveRecord{
					Game:       count,
					MoveMetric: mm,
				})
			}

			log.Info().Msgf("completed matchup %d of %d game %d of %d with winner: %s", mi+1, len(cfg.MatchUps), i+1, cfg.Games, winner)
		}
	}

	log.Info().Msgf("completed %s experiment", cfg.Name)

	output := cfg.Output
	if output == "" {
		output = "experiments"
	}
	writer, err := metrics.NewWriter(output, cfg.Name)
	if err != nil {
		return "", fmt.Errorf("failed to create experiment writer: %w", err)
	}
	if err := writer.WriteAgentConfigs(cfg.Agents); err != nil {
		return "", fmt.Errorf("failed to store agent configs: %w", err)
	}
	if err := writer.WriteGameRecords(gameRecords); err != nil {
		return "", fmt.Errorf("failed to write game records: %w", err)
	}
	if err := writer.WriteMoveRecords(moveRecords); err != nil {
		return "", fmt.Errorf("failed to write move records: %w", err)
	}
	log.Info().Msgf("stored records in %s", writer.Dir())

	return writer.Dir(), nil
}

// runGame executes a single game between two agents and returns the winner
func runGame(black, white metrics.AgentConfig) (string, metrics.GameMetric, []metrics.MoveMetric) {
	var e engine.Engine = engine.LocalEngine(CreateAgent(black), CreateAgent(white))
	return e.Run()
}

// CreateAgent builds the agent an AgentConfig describes. A zero depth or goroutine
// count and an unset threshold or penalty keep the agents' defaults.
func CreateAgent(config metrics.AgentConfig) agent.Agent {
	if config.Kind == KindRandom {
		return agent.NewRandom(config.Seed)
	}

	options := []searcher.Option{searcher.WithMetrics()}
	if config.Depth > 0 {
		options = append(options, searcher.WithDepth(config.Depth))
	}
	if config.Goroutines > 0 {
		options = append(options, searcher.WithGoroutines(config.Goroutines))
	}
	if config.Evaluate == EvaluatePositional {
		options = append(options, searcher.WithEvaluationFn(game.EvaluatePositional))
	}

	pandaOptions := []agent.Option{agent.WithSearcher(searcher.NewMinimax(options...))}
	if config.EndgameThreshold != nil {
		pandaOptions = append(pandaOptions, agent.WithEndgameThreshold(*config.EndgameThreshold))
	}
	if config.DangerPenalty != nil {
		pandaOptions = append(pandaOptions, agent.WithDangerPenalty(*config.DangerPenalty))
	}
	return agent.NewPanda(pandaOptions...)
}
