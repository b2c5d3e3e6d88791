package game

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func mustParse(t *testing.T, text string) Board {
	t.Helper()
	b, err := ParseBoard(text)
	require.NoError(t, err)
	return b
}

// randomBoard fills each cell independently, which also produces positions that
// can't arise in play. The rules must hold on those too.
func randomBoard(rng *rand.Rand) Board {
	var b Board
	for y := 0; y < Size; y++ {
		for x := 0; x < Size; x++ {
			b[y][x] = Stone(rng.Intn(3))
		}
	}
	return b
}

func TestOpeningMoves(t *testing.T) {
	b := NewBoard()

	require.Equal(t, []Cell{{3, 1}, {4, 2}, {1, 3}, {2, 4}}, b.LegalMoves(Black))
	require.Equal(t, []Cell{{2, 1}, {1, 2}, {4, 3}, {3, 4}}, b.LegalMoves(White))
	for _, c := range b.LegalMoves(Black) {
		require.Equal(t, 1, b.FlippableCount(Black, c.X, c.Y))
	}
}

func TestIsLegal(t *testing.T) {
	t.Run("occupied cells are never legal", func(t *testing.T) {
		b := NewBoard()

		require.False(t, b.IsLegal(Black, 2, 2))
		require.False(t, b.IsLegal(Black, 3, 2))
		require.Equal(t, 0, b.FlippableCount(Black, 3, 2))
	})

	t.Run("off-board cells are never legal", func(t *testing.T) {
		b := NewBoard()

		require.False(t, b.IsLegal(Black, -1, 3))
		require.False(t, b.IsLegal(Black, 3, Size))
		require.Equal(t, 0, b.FlippableCount(Black, Size, Size))
	})

	t.Run("a run must end on an own stone", func(t *testing.T) {
		b := mustParse(t, `
			.WWW..
			......
			......
			......
			......
			......`)

		require.False(t, b.IsLegal(Black, 4, 0))
		require.Equal(t, 0, b.FlippableCount(Black, 4, 0))
	})

	t.Run("adjacent own stone without opponent stones does not count", func(t *testing.T) {
		b := mustParse(t, `
			BB....
			......
			......
			......
			......
			......`)

		require.False(t, b.IsLegal(Black, 2, 0))
	})

	t.Run("scanning stops at the edge without wrapping", func(t *testing.T) {
		b := mustParse(t, `
			.....W
			B.....
			......
			......
			......
			......`)

		require.False(t, b.IsLegal(Black, 4, 0))
		require.Equal(t, 0, b.FlippableCount(Black, 4, 0))
	})

	t.Run("long run", func(t *testing.T) {
		b := mustParse(t, `
			BWWW..
			......
			......
			......
			......
			......`)

		require.True(t, b.IsLegal(Black, 4, 0))
		require.Equal(t, 3, b.FlippableCount(Black, 4, 0))
		require.False(t, b.IsLegal(White, 4, 0))
	})

	t.Run("all eight directions", func(t *testing.T) {
		b := mustParse(t, `
			B.B.B.
			.WWW..
			BW.WB.
			.WWW..
			B.B.B.
			......`)

		require.True(t, b.IsLegal(Black, 2, 2))
		require.Equal(t, 8, b.FlippableCount(Black, 2, 2))
	})
}

func TestHasLegalMove(t *testing.T) {
	require.True(t, NewBoard().HasLegalMove(Black))
	require.True(t, NewBoard().HasLegalMove(White))

	onlyBlack := mustParse(t, `
		BBBBBB
		BBBBBB
		BBBBBB
		BBBBBB
		BBBBBB
		BBBBB.`)
	require.False(t, onlyBlack.HasLegalMove(Black))
	require.False(t, onlyBlack.HasLegalMove(White))
	require.True(t, onlyBlack.IsTerminal())
	require.False(t, NewBoard().IsTerminal())
}

func TestRulesAgreeWithApply(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for i := 0; i < 300; i++ {
		b := randomBoard(rng)
		for _, side := range []Side{Black, White} {
			opp := side.Opponent().Stone()
			for y := 0; y < Size; y++ {
				for x := 0; x < Size; x++ {
					legal := b.IsLegal(side, x, y)
					count := b.FlippableCount(side, x, y)

					if legal {
						require.GreaterOrEqual(t, count, 1, "Legal move should flip at least one stone")
					} else {
						require.Equal(t, 0, count, "Illegal move should flip nothing")
					}
					if b.At(x, y) != Empty {
						continue
					}

					next := b.Apply(side, x, y)
					flipped := b.Count(opp) - next.Count(opp)
					require.Equal(t, count, flipped, "FlippableCount should match the stones Apply flips")
					require.Equal(t, legal, flipped > 0, "Legality should match whether Apply flips anything")
				}
			}
		}
	}
}
