package experiments

import (
	"errors"
	"fmt"
	"os"

	"othello/experiments/metrics"

	"gopkg.in/yaml.v3"
)

var ErrInvalidConfig = errors.New("invalid experiment config")

const (
	KindPanda  = "panda"
	KindRandom = "random"

	EvaluateMaterial   = "material"
	EvaluatePositional = "positional"
)

// Config describes an experiment: every match-up is played Games times with the
// colours swapped after each game.
type Config struct {
	Name     string                `yaml:"name"`
	Games    int                   `yaml:"games"`
	Output   string                `yaml:"output"`
	Agents   []metrics.AgentConfig `yaml:"agents"`
	MatchUps [][2]int              `yaml:"matchups"`
}

// LoadConfig reads and validates a YAML experiment config.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.Name == "" {
		return fmt.Errorf("%w: missing name", ErrInvalidConfig)
	}
	if c.Games <= 0 {
		return fmt.Errorf("%w: games must be positive, got %d", ErrInvalidConfig, c.Games)
	}

	ids := make(map[int]bool, len(c.Agents))
	for _, a := range c.Agents {
		if ids[a.ID] {
			return fmt.Errorf("%w: duplicate agent id %d", ErrInvalidConfig, a.ID)
		}
		ids[a.ID] = true

		switch a.Kind {
		case KindPanda, KindRandom:
		default:
			return fmt.Errorf("%w: agent %d has unknown kind %q", ErrInvalidConfig, a.ID, a.Kind)
		}
		if a.Depth < 0 || a.Goroutines < 0 {
			return fmt.Errorf("%w: agent %d has a negative depth or goroutine count", ErrInvalidConfig, a.ID)
		}
		if a.EndgameThreshold != nil && *a.EndgameThreshold < 0 {
			return fmt.Errorf("%w: agent %d has a negative endgame threshold", ErrInvalidConfig, a.ID)
		}
		if a.DangerPenalty != nil && *a.DangerPenalty < 0 {
			return fmt.Errorf("%w: agent %d has a negative danger penalty", ErrInvalidConfig, a.ID)
		}
		switch a.Evaluate {
		case "", EvaluateMaterial, EvaluatePositional:
		default:
			return fmt.Errorf("%w: agent %d has unknown evaluator %q", ErrInvalidConfig, a.ID, a.Evaluate)
		}
	}

	if len(c.MatchUps) == 0 {
		return fmt.Errorf("%w: no match-ups", ErrInvalidConfig)
	}
	for _, m := range c.MatchUps {
		for _, id := range m {
			if !ids[id] {
				return fmt.Errorf("%w: match-up references unknown agent %d", ErrInvalidConfig, id)
			}
		}
	}
	return nil
}

func (c Config) agent(id int) metrics.AgentConfig {
	for _, a := range c.Agents {
		if a.ID == id {
			return a
		}
	}
	panic(fmt.Sprintf("unknown agent %d", id))
}
