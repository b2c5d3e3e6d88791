package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestScore(t *testing.T) {
	t.Run("balanced opening", func(t *testing.T) {
		require.Equal(t, 0, Score(NewBoard(), Black))
		require.Equal(t, 0, Score(NewBoard(), White))
	})

	t.Run("material difference is antisymmetric", func(t *testing.T) {
		b := NewBoard().Apply(Black, 3, 1)

		require.Equal(t, 3, Score(b, Black))
		require.Equal(t, -3, Score(b, White))
	})
}

func TestEvaluatePositional(t *testing.T) {
	t.Run("center stones carry little weight", func(t *testing.T) {
		require.Equal(t, 0, EvaluatePositional(NewBoard(), Black))
	})

	t.Run("corners dominate", func(t *testing.T) {
		b := Board{}.With(0, 0, BlackStone).With(1, 1, WhiteStone)

		require.Equal(t, 150, EvaluatePositional(b, Black))
		require.Equal(t, -150, EvaluatePositional(b, White))
	})
}
