package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"othello/agent"
	"othello/engine"
	"othello/experiments"
	"othello/game"
	"othello/searcher"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	verbose bool

	rootCmd = &cobra.Command{
		Use:   "othello",
		Short: "A 6x6 Othello engine",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := zerolog.InfoLevel
			if verbose {
				level = zerolog.DebugLevel
			}
			zerolog.SetGlobalLevel(level)
			log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})
		},
		SilenceUsage: true,
	}

	placeCmd = &cobra.Command{
		Use:   "place",
		Short: "Prints the move the panda agent plays on a board",
		Long: `Reads a board of six rows with six cells each ('.', 'B' or 'W') and prints
the chosen move as "x y", or "pass" when the side has no legal move.`,
		RunE: runPlace,
	}
	boardPath string
	side      string
	depth     int
	threshold int

	playCmd = &cobra.Command{
		Use:   "play",
		Short: "Plays one game between two agents",
		RunE:  runPlay,
	}
	black string
	white string
	seed  uint64

	experimentCmd = &cobra.Command{
		Use:   "experiment",
		Short: "Runs the match-ups of an experiment config and stores the records",
		RunE:  runExperiment,
	}
	configPath string
)

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log every move")

	placeCmd.Flags().StringVar(&boardPath, "board", "-", "board file, - for stdin")
	placeCmd.Flags().StringVar(&side, "side", "black", "side to move: black or white")
	placeCmd.Flags().IntVar(&depth, "depth", searcher.DefaultDepth, "minimax depth in the endgame")
	placeCmd.Flags().IntVar(&threshold, "threshold", agent.DefaultEndgameThreshold, "empty cells at which the search takes over")

	playCmd.Flags().StringVar(&black, "black", experiments.KindPanda, "black agent: panda or random")
	playCmd.Flags().StringVar(&white, "white", experiments.KindRandom, "white agent: panda or random")
	playCmd.Flags().Uint64Var(&seed, "seed", 1, "seed of the random agents")

	experimentCmd.Flags().StringVar(&configPath, "config", "", "experiment config (YAML)")
	_ = experimentCmd.MarkFlagRequired("config")

	rootCmd.AddCommand(placeCmd, playCmd, experimentCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runPlace(cmd *cobra.Command, args []string) error {
	s, err := game.ParseSide(side)
	if err != nil {
		return err
	}

	var data []byte
	if boardPath == "-" {
		data, err = io.ReadAll(cmd.InOrStdin())
	} else {
		data, err = os.ReadFile(boardPath)
	}
	if err != nil {
		return fmt.Errorf("failed to read board: %w", err)
	}
	board, err := game.ParseBoard(string(data))
	if err != nil {
		return err
	}

	p := agent.NewPanda(
		agent.WithSearcher(searcher.NewMinimax(searcher.WithDepth(depth))),
		agent.WithEndgameThreshold(threshold),
	)
	move, ok := p.Place(board, s)
	if !ok {
		fmt.Fprintln(cmd.OutOrStdout(), "pass")
		return nil
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%d %d\n", move.X, move.Y)
	return nil
}

func runPlay(cmd *cobra.Command, args []string) error {
	agents := [2]agent.Agent{}
	for i, kind := range []string{black, white} {
		switch kind {
		case experiments.KindPanda:
			agents[i] = agent.NewPanda()
		case experiments.KindRandom:
			agents[i] = agent.NewRandom(seed + uint64(i))
		default:
			return fmt.Errorf("unknown agent %q", kind)
		}
	}

	e := engine.LocalEngine(agents[0], agents[1])
	winner, gameMetric, _ := e.Run()

	fmt.Fprintln(cmd.OutOrStdout(), e.State.Board)
	fmt.Fprintf(cmd.OutOrStdout(), "winner: %s (%d-%d)\n", winner, gameMetric.BlackDiscs, gameMetric.WhiteDiscs)
	return nil
}

func runExperiment(cmd *cobra.Command, args []string) error {
	cfg, err := experiments.LoadConfig(configPath)
	if err != nil {
		return err
	}
	dir, err := experiments.Run(cfg)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), dir)
	return nil
}
