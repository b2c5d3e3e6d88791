package metrics

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

type AgentConfig struct {
	ID               int    `yaml:"id"`
	Kind             string `yaml:"kind"` // panda or random
	Depth            int    `yaml:"depth"`
	EndgameThreshold *int   `yaml:"endgame_threshold"` // nil keeps the agent default
	DangerPenalty    *int   `yaml:"danger_penalty"`    // nil keeps the agent default
	Goroutines       int    `yaml:"goroutines"`
	Evaluate         string `yaml:"evaluate"` // material or positional
	Seed             uint64 `yaml:"seed"`
}

type GameRecord struct {
	ID    int
	Black int // AgentConfig.ID
	White int // AgentConfig.ID
	GameMetric
}

type MoveRecord struct {
	Game int // GameRecord.ID
	MoveMetric
}

type Writer struct {
	baseDir string
}

// NewWriter creates <root>/<name>/<timestamp> and writes all records below it.
func NewWriter(root, name string) (*Writer, error) {
	timestamp := time.Now().UTC().Format("20060102T150405Z")
	baseDir := filepath.Join(root, name, timestamp)
	err := os.MkdirAll(baseDir, 0755)
	if err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	return &Writer{
		baseDir: baseDir,
	}, nil
}

func (w *Writer) Dir() string {
	return w.baseDir
}

func (w *Writer) WriteAgentConfigs(configs []AgentConfig) error {
	header := []string{"id", "kind", "depth", "endgame_threshold", "danger_penalty", "goroutines", "evaluate", "seed"}
	rows := make([][]string, 0, len(configs))
	for _, config := range configs {
		rows = append(rows, []string{
			strconv.Itoa(config.ID),
			config.Kind,
			strconv.Itoa(config.Depth),
			optional(config.EndgameThreshold),
			optional(config.DangerPenalty),
			strconv.Itoa(config.Goroutines),
			config.Evaluate,
			strconv.FormatUint(config.Seed, 10),
		})
	}
	return w.write("agent_configs.csv", header, rows)
}

// optional renders an unset value as an empty cell.
func optional(value *int) string {
	if value == nil {
		return ""
	}
	return strconv.Itoa(*value)
}

func (w *Writer) WriteGameRecords(records []GameRecord) error {
	header := []string{"id", "black", "white", "starting_player", "winner", "black_discs", "white_discs", "moves", "passes", "fallbacks", "start_time", "end_time", "duration"}
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			strconv.Itoa(record.ID),
			strconv.Itoa(record.Black),
			strconv.Itoa(record.White),
			record.StartingPlayer,
			record.Winner,
			strconv.Itoa(record.BlackDiscs),
			strconv.Itoa(record.WhiteDiscs),
			strconv.Itoa(record.TotalMoves),
			strconv.Itoa(record.Passes),
			strconv.Itoa(record.Fallbacks),
			record.StartTime.Format(time.RFC3339),
			record.EndTime.Format(time.RFC3339),
			record.Duration.String(),
		})
	}
	return w.write("game_records.csv", header, rows)
}

func (w *Writer) WriteMoveRecords(records []MoveRecord) error {
	header := []string{"game", "step", "player", "move", "phase", "depth", "goroutines", "duration", "nodes", "leaves", "passes", "score"}
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			strconv.Itoa(record.Game),
			strconv.Itoa(record.Step),
			record.Player,
			record.Move,
			record.Phase,
			strconv.Itoa(record.Depth),
			strconv.Itoa(record.Goroutines),
			record.Duration.String(),
			strconv.Itoa(record.Nodes),
			strconv.Itoa(record.Leaves),
			strconv.Itoa(record.Passes),
			strconv.Itoa(record.Score),
		})
	}
	return w.write("move_records.csv", header, rows)
}

func (w *Writer) write(file string, header []string, rows [][]string) error {
	path := filepath.Join(w.baseDir, file)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", file, err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write %s header: %w", file, err)
	}
	if err := writer.WriteAll(rows); err != nil {
		return fmt.Errorf("failed to write %s rows: %w", file, err)
	}
	return nil
}
