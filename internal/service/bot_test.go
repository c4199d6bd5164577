package service

import (
	"testing"

	"github.com/rocketscienceinc/tictactoe-solver/internal/entity"
	"github.com/rocketscienceinc/tictactoe-solver/internal/tictactoe"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustBoard(t *testing.T, s string) tictactoe.Board {
	t.Helper()

	board, err := tictactoe.ParseBoard(s)
	require.NoError(t, err)

	return board
}

func TestBotService_MakeTurn(t *testing.T) {
	t.Run("Plays the minimax action", func(t *testing.T) {
		// Given: a bot holding X with two winning cells on the bottom row
		game := &entity.Game{
			ID:      "g1",
			Board:   mustBoard(t, "XOX/OXO/..."),
			Status:  entity.StatusOngoing,
			Turn:    tictactoe.X,
			Type:    entity.WithBotType,
			Players: []*entity.Player{{ID: "p1", Mark: tictactoe.O}, entity.NewBotPlayer("g1", tictactoe.X)},
		}

		// When: the bot moves
		err := NewBotService(discardLogger()).MakeTurn(game)
		require.NoError(t, err)

		// Then: it took the first winning cell and the game is over
		assert.Equal(t, mustBoard(t, "XOX/OXO/X.."), game.Board)
		assert.True(t, game.IsFinished())
		assert.Equal(t, "X", game.Winner)
	})

	t.Run("Blocks the human as O", func(t *testing.T) {
		// Given: X threatens the top row and the bot holds O
		game := &entity.Game{
			ID:      "g1",
			Board:   mustBoard(t, "XX./.O./..."),
			Status:  entity.StatusOngoing,
			Turn:    tictactoe.O,
			Type:    entity.WithBotType,
			Players: []*entity.Player{{ID: "p1", Mark: tictactoe.X}, entity.NewBotPlayer("g1", tictactoe.O)},
		}

		// When: the bot moves
		require.NoError(t, NewBotService(discardLogger()).MakeTurn(game))

		// Then: the row is blocked
		assert.Equal(t, tictactoe.O, game.Board[0][2])
		assert.Equal(t, tictactoe.X, game.Turn)
	})

	t.Run("Error when the game has no bot", func(t *testing.T) {
		game := &entity.Game{Status: entity.StatusOngoing, Players: []*entity.Player{{ID: "p1"}}}

		err := NewBotService(discardLogger()).MakeTurn(game)

		assert.ErrorIs(t, err, ErrBotNotFound)
	})

	t.Run("Error when the board is terminal", func(t *testing.T) {
		game := &entity.Game{
			Board:   mustBoard(t, "XXX/OO./..."),
			Status:  entity.StatusOngoing,
			Players: []*entity.Player{entity.NewBotPlayer("g1", tictactoe.O)},
		}

		err := NewBotService(discardLogger()).MakeTurn(game)

		assert.ErrorIs(t, err, ErrNoAvailableMoves)
	})
}
