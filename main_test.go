package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, stdin string, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetOut(&out)
	rootCmd.SetArgs(args)
	require.NoError(t, rootCmd.Execute())
	return out.String()
}

func TestPlaceCommand(t *testing.T) {
	t.Run("opening", func(t *testing.T) {
		board := "......\n......\n..BW..\n..WB..\n......\n......\n"

		require.Equal(t, "3 1\n", execute(t, board, "place", "--board", "-", "--side", "black"))
	})

	t.Run("pass", func(t *testing.T) {
		board := "BW....\n......\n......\n......\n......\n......\n"

		require.Equal(t, "pass\n", execute(t, board, "place", "--board", "-", "--side", "white"))
	})
}

func TestPlayCommand(t *testing.T) {
	out := execute(t, "", "play", "--black", "random", "--white", "random", "--seed", "3")

	require.Contains(t, out, "winner: ")
}
