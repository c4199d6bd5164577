package tictactoe

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMinimax(t *testing.T) {
	t.Run("No action on a terminal board", func(t *testing.T) {
		// Given: X already owns the top row
		board := mustParse(t, "XXX/.../...")

		// When: the best move is requested
		_, ok := Minimax(board)

		// Then: there is nothing to play
		assert.False(t, ok)
	})

	t.Run("No action on a drawn board", func(t *testing.T) {
		_, ok := Minimax(mustParse(t, "XOX/XOO/OXX"))

		assert.False(t, ok)
	})

	t.Run("Initial board opens in the first corner", func(t *testing.T) {
		// When: the search runs on the empty board
		decision := Evaluate(InitialState())

		// Then: the game value is a draw and (0,0) is the first action reaching it
		require.True(t, decision.Found)
		assert.Equal(t, Action{Row: 0, Col: 0}, decision.Action)
		assert.Equal(t, 0, decision.Score)
		assert.Greater(t, decision.Visited, 1)
	})

	t.Run("O answers a corner opening in the centre", func(t *testing.T) {
		// Given: X opened in the top-left corner
		board := mustParse(t, "X../.../...")

		// When: O searches
		decision := Evaluate(board)

		// Then: the centre is the only drawing reply
		require.True(t, decision.Found)
		assert.Equal(t, Action{Row: 1, Col: 1}, decision.Action)
		assert.Equal(t, 0, decision.Score)
	})

	t.Run("X takes the first winning cell", func(t *testing.T) {
		// Given: X to move with both diagonals open on the bottom row
		board := mustParse(t, "XOX/OXO/...")
		require.Equal(t, X, Player(board))

		// When: X searches
		decision := Evaluate(board)

		// Then: (2,0) wins at once and is found before (2,2)
		require.True(t, decision.Found)
		assert.Equal(t, Action{Row: 2, Col: 0}, decision.Action)
		assert.Equal(t, 1, decision.Score)

		next, err := Result(board, decision.Action)
		require.NoError(t, err)
		assert.Equal(t, 1, Utility(next))
	})

	t.Run("O takes an immediate win", func(t *testing.T) {
		// Given: O to move with the top row open
		board := mustParse(t, "OO./X.X/X..")
		require.Equal(t, O, Player(board))

		// When: O searches
		decision := Evaluate(board)

		// Then: O completes the row
		assert.Equal(t, Action{Row: 0, Col: 2}, decision.Action)
		assert.Equal(t, -1, decision.Score)
	})

	t.Run("Keeps the first action reaching the optimal value", func(t *testing.T) {
		// Given: X can win at once on (1,0), but (0,1) also forces a win and comes first
		board := mustParse(t, "X../.O./XO.")
		require.Equal(t, X, Player(board))

		// When: X searches
		action, ok := Minimax(board)

		// Then: the earlier forced win is kept, later ties do not overwrite it
		require.True(t, ok)
		assert.Equal(t, Action{Row: 0, Col: 1}, action)
	})

	t.Run("Optimal play from the initial board ends in a draw", func(t *testing.T) {
		board := InitialState()

		for !Terminal(board) {
			action, ok := Minimax(board)
			require.True(t, ok)

			next, err := Result(board, action)
			require.NoError(t, err)
			board = next
		}

		_, won := Winner(board)
		assert.False(t, won)
		assert.Equal(t, 0, Utility(board))
	})
}

func TestEvaluate_TerminalBoard(t *testing.T) {
	// Given: O has won
	board := mustParse(t, "XX./OOO/X..")

	// When: the board is evaluated
	decision := Evaluate(board)

	// Then: only the root was visited and its utility reported
	assert.False(t, decision.Found)
	assert.Equal(t, -1, decision.Score)
	assert.Equal(t, 1, decision.Visited)
}
