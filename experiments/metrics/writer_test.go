package metrics

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return rows
}

func TestWriter(t *testing.T) {
	root := t.TempDir()
	w, err := NewWriter(root, "unit")
	require.NoError(t, err)
	require.Equal(t, filepath.Join(root, "unit"), filepath.Dir(w.Dir()))

	t.Run("agent configs", func(t *testing.T) {
		threshold, penalty := 10, 0
		err := w.WriteAgentConfigs([]AgentConfig{
			{ID: 1, Kind: "panda", Depth: 3, EndgameThreshold: &threshold, DangerPenalty: &penalty, Goroutines: 2, Evaluate: "material"},
			{ID: 2, Kind: "random", Seed: 7},
		})
		require.NoError(t, err)

		rows := readCSV(t, filepath.Join(w.Dir(), "agent_configs.csv"))
		require.Len(t, rows, 3)
		require.Equal(t, []string{"1", "panda", "3", "10", "0", "2", "material", "0"}, rows[1])
		require.Equal(t, []string{"2", "random", "0", "", "", "0", "", "7"}, rows[2], "Unset options should stay empty")
	})

	t.Run("game records", func(t *testing.T) {
		start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
		err := w.WriteGameRecords([]GameRecord{{ID: 1, Black: 1, White: 2, GameMetric: GameMetric{
			StartingPlayer: "black", Winner: "white", BlackDiscs: 10, WhiteDiscs: 26,
			StartTime: start, EndTime: start.Add(time.Second), Duration: time.Second, TotalMoves: 32,
		}}})
		require.NoError(t, err)

		rows := readCSV(t, filepath.Join(w.Dir(), "game_records.csv"))
		require.Len(t, rows, 2)
		require.Equal(t, "white", rows[1][4])
		require.Equal(t, "32", rows[1][7])
		require.Equal(t, "1s", rows[1][12])
	})

	t.Run("move records", func(t *testing.T) {
		err := w.WriteMoveRecords([]MoveRecord{
			{Game: 1, MoveMetric: MoveMetric{Step: 1, Player: "black", Move: "(3,1)", Phase: "heuristic"}},
			{Game: 1, MoveMetric: MoveMetric{Step: 30, Player: "black", Move: "(5,5)", Phase: "search", SearchMetric: SearchMetric{Depth: 3, Nodes: 120, Leaves: 90, Score: 4}}},
		})
		require.NoError(t, err)

		rows := readCSV(t, filepath.Join(w.Dir(), "move_records.csv"))
		require.Len(t, rows, 3)
		require.Equal(t, "search", rows[2][4])
		require.Equal(t, "120", rows[2][8])
		require.Equal(t, "4", rows[2][11])
	})
}

func TestCollector(t *testing.T) {
	c := NewCollector()
	c.Start(3, 2)
	c.AddNode()
	c.AddNode()
	c.AddLeaf()
	c.AddPass()

	metric := c.Complete(5)

	require.Equal(t, SearchMetric{Depth: 3, Goroutines: 2, Duration: metric.Duration, Nodes: 2, Leaves: 1, Passes: 1, Score: 5}, metric)

	c.Start(1, 1)
	require.Equal(t, 0, c.Complete(0).Nodes, "Start should reset the counters")
}
