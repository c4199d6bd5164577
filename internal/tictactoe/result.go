package tictactoe

import (
	"errors"
	"fmt"
)

var (
	ErrIllegalMove   = errors.New("this is not a legal move")
	ErrInvalidAction = errors.New("invalid action")
	ErrInvalidBoard  = errors.New("invalid board")
)

// Result returns the board produced by the player to move taking action.
// The input board is never modified.
func Result(board Board, action Action) (Board, error) {
	if !action.Valid() {
		return board, fmt.Errorf("%w: %s", ErrInvalidAction, action)
	}

	if board[action.Row][action.Col] != Empty {
		return board, fmt.Errorf("%w: cell %s is occupied by %s", ErrIllegalMove, action, board[action.Row][action.Col])
	}

	next := board
	next[action.Row][action.Col] = Player(board)

	return next, nil
}

// Valid reports whether both coordinates are on the board.
func (that Action) Valid() bool {
	return that.Row >= 0 && that.Row < Size && that.Col >= 0 && that.Col < Size
}

func (that Action) String() string {
	return fmt.Sprintf("(%d, %d)", that.Row, that.Col)
}
