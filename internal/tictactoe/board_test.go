package tictactoe

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, s string) Board {
	t.Helper()

	board, err := ParseBoard(s)
	require.NoError(t, err)

	return board
}

func TestInitialState(t *testing.T) {
	// When: the initial state is requested
	board := InitialState()

	// Then: every cell is empty and X moves first
	for _, row := range board {
		for _, cell := range row {
			assert.Equal(t, Empty, cell)
		}
	}
	assert.Equal(t, X, Player(board))
	assert.Len(t, Actions(board), 9)
}

func TestPlayer(t *testing.T) {
	t.Run("X moves on odd number of empty cells", func(t *testing.T) {
		// Given: a board with two marks placed
		board := mustParse(t, "XO./.../...")

		// When/Then: X is to move
		assert.Equal(t, X, Player(board))
	})

	t.Run("O moves on even number of empty cells", func(t *testing.T) {
		// Given: a board after the opening move
		board := mustParse(t, ".../.X./...")

		// When/Then: O is to move
		assert.Equal(t, O, Player(board))
	})

	t.Run("Full board reports O", func(t *testing.T) {
		// Given: a full board, zero empties is even
		board := mustParse(t, "XOX/XOO/OXX")

		// When/Then: parity yields O
		assert.Equal(t, O, Player(board))
	})

	t.Run("Alternates strictly from the initial state", func(t *testing.T) {
		board := InitialState()
		expected := X

		for !Terminal(board) {
			// Given: the mark derived before the move
			require.Equal(t, expected, Player(board))

			// When: the first free cell is taken
			next, err := Result(board, Actions(board)[0])
			require.NoError(t, err)

			// Then: the turn passes to the other mark
			board = next
			expected = Opponent(expected)
		}
	})
}

func TestActions(t *testing.T) {
	t.Run("Returns empty cells in row-major order", func(t *testing.T) {
		// Given: a board with three free cells
		board := mustParse(t, "X.O/OX./X.O")

		// When: actions are listed
		actions := Actions(board)

		// Then: only the free cells are listed, top to bottom
		assert.Equal(t, []Action{{Row: 0, Col: 1}, {Row: 1, Col: 2}, {Row: 2, Col: 1}}, actions)
	})

	t.Run("Returns no actions on a full board", func(t *testing.T) {
		board := mustParse(t, "XOX/XOO/OXX")

		assert.Empty(t, Actions(board))
	})
}

func TestWinner(t *testing.T) {
	tests := []struct {
		name   string
		board  string
		winner Mark
		ok     bool
	}{
		{name: "row 0 X wins", board: "XXX/.O./.O.", winner: X, ok: true},
		{name: "row 2 O wins", board: "XX./X../OOO", winner: O, ok: true},
		{name: "col 1 O wins", board: "XO./.OX/.O.", winner: O, ok: true},
		{name: "col 2 X wins", board: "O.X/O.X/..X", winner: X, ok: true},
		{name: "main diagonal X wins", board: "XO./.XO/..X", winner: X, ok: true},
		{name: "anti diagonal O wins", board: "X.O/XO./O.X", winner: O, ok: true},
		{name: "draw", board: "XOX/XOO/OXX", winner: Empty, ok: false},
		{name: "in progress", board: "XOX/.O./OX.", winner: Empty, ok: false},
		{name: "empty board", board: ".../.../...", winner: Empty, ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// When: the winner is checked
			winner, ok := Winner(mustParse(t, tt.board))

			// Then: the owning mark is reported, or none
			assert.Equal(t, tt.winner, winner)
			assert.Equal(t, tt.ok, ok)
		})
	}
}

func TestTerminalAndUtility(t *testing.T) {
	t.Run("Row of X is terminal with utility 1", func(t *testing.T) {
		// Given: X owns the top row, everything else is empty
		board := mustParse(t, "XXX/.../...")

		// Then: X has won
		winner, ok := Winner(board)
		require.True(t, ok)
		assert.Equal(t, X, winner)
		assert.True(t, Terminal(board))
		assert.Equal(t, 1, Utility(board))
	})

	t.Run("O win has utility -1", func(t *testing.T) {
		board := mustParse(t, "XX./OOO/X..")

		assert.True(t, Terminal(board))
		assert.Equal(t, -1, Utility(board))
	})

	t.Run("Full board without a line is a draw", func(t *testing.T) {
		// Given: a full board where nobody owns a line
		board := mustParse(t, "XOX/XOO/OXX")

		// Then: no winner, the game is over, utility is 0
		_, ok := Winner(board)
		assert.False(t, ok)
		assert.True(t, Terminal(board))
		assert.Equal(t, 0, Utility(board))
	})

	t.Run("Board in progress is not terminal", func(t *testing.T) {
		board := mustParse(t, "XOX/OXO/...")

		_, ok := Winner(board)
		assert.False(t, ok)
		assert.False(t, Terminal(board))
		assert.Equal(t, 0, Utility(board))
	})
}

func TestReachableBoards(t *testing.T) {
	// Given: every board reachable from the initial state by legal play
	seen := map[Board]bool{}

	var walk func(board Board)
	walk = func(board Board) {
		if seen[board] {
			return
		}
		seen[board] = true

		winner, won := Winner(board)
		actions := Actions(board)

		// Then: terminal iff somebody won or no cell is free
		require.Equal(t, won || len(actions) == 0, Terminal(board), board.String())

		// Then: utility agrees with the winner
		switch {
		case won && winner == X:
			require.Equal(t, 1, Utility(board))
		case won && winner == O:
			require.Equal(t, -1, Utility(board))
		default:
			require.Equal(t, 0, Utility(board))
		}

		if Terminal(board) {
			return
		}

		mover := Player(board)
		for _, action := range actions {
			before := board

			next, err := Result(board, action)
			require.NoError(t, err)

			// Then: the input board is left untouched and the turn passes over
			require.Equal(t, before, board)
			require.Equal(t, mover, next[action.Row][action.Col])
			require.Equal(t, Opponent(mover), Player(next))

			walk(next)
		}
	}

	walk(InitialState())

	assert.Len(t, seen, 5478)
}
