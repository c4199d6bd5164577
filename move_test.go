package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-solver/internal/tictactoe"
)

func runMoveCmd(t *testing.T, board string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	moveCmd.SetOut(&out)
	t.Cleanup(func() { moveCmd.SetOut(nil) })

	err := runMove(moveCmd, []string{board})

	return out.String(), err
}

func TestMoveCommand(t *testing.T) {
	t.Run("Prints the winning move", func(t *testing.T) {
		out, err := runMoveCmd(t, "XOX/OXO/...")

		require.NoError(t, err)
		assert.Contains(t, out, "X plays (2, 0) (score 1,")
	})

	t.Run("Reports a finished game", func(t *testing.T) {
		out, err := runMoveCmd(t, "OOO/XX./X..")

		require.NoError(t, err)
		assert.Equal(t, "game over: O wins\n", out)

		out, err = runMoveCmd(t, "XOX/OXO/OXO")

		require.NoError(t, err)
		assert.Equal(t, "game over: draw\n", out)
	})

	t.Run("Rejects a malformed board", func(t *testing.T) {
		_, err := runMoveCmd(t, "XO/...")

		assert.ErrorIs(t, err, tictactoe.ErrInvalidBoard)
	})
}
