package service

import (
	"testing"

	"github.com/rocketscienceinc/tictactoe-solver/internal/tictactoe"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHintService_Suggest(t *testing.T) {
	t.Run("Suggests the opening move", func(t *testing.T) {
		// When: a hint is requested for the empty board
		hint, err := NewHintService().Suggest(tictactoe.InitialState())
		require.NoError(t, err)

		// Then: X should open in the corner, and the game is a draw
		assert.Equal(t, tictactoe.X, hint.Player)
		assert.Equal(t, tictactoe.Action{Row: 0, Col: 0}, hint.Action)
		assert.Equal(t, 0, hint.Score)
		assert.Positive(t, hint.Visited)
	})

	t.Run("Error on a finished board", func(t *testing.T) {
		_, err := NewHintService().Suggest(mustBoard(t, "XXX/OO./..."))

		assert.ErrorIs(t, err, ErrGameOver)
	})
}
