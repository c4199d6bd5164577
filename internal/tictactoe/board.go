package tictactoe

// Mark is the content of a single cell. A non-empty Mark also names a player.
type Mark string

const (
	Empty Mark = ""
	X     Mark = "X"
	O     Mark = "O"
)

const Size = 3

// Board is a row-major 3x3 grid, (0,0) is the top-left cell.
// Board is an array, so it is copied on assignment and never shared between states.
type Board [Size][Size]Mark

// Action names a cell by its row and column.
type Action struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// lines are the 8 winning lines: rows, columns, main diagonal, anti-diagonal.
var lines = [8][3]Action{
	{{0, 0}, {0, 1}, {0, 2}},
	{{1, 0}, {1, 1}, {1, 2}},
	{{2, 0}, {2, 1}, {2, 2}},
	{{0, 0}, {1, 0}, {2, 0}},
	{{0, 1}, {1, 1}, {2, 1}},
	{{0, 2}, {1, 2}, {2, 2}},
	{{0, 0}, {1, 1}, {2, 2}},
	{{2, 0}, {1, 1}, {0, 2}},
}

// InitialState returns the empty board.
func InitialState() Board {
	return Board{}
}

// Player returns the mark that moves next.
// The turn is derived from the parity of empty cells: odd means X, even means O.
func Player(board Board) Mark {
	if countEmpty(board)%2 == 0 {
		return O
	}

	return X
}

// Actions returns every empty cell in row-major order.
func Actions(board Board) []Action {
	actions := make([]Action, 0, Size*Size)
	for row := range board {
		for col := range board[row] {
			if board[row][col] == Empty {
				actions = append(actions, Action{Row: row, Col: col})
			}
		}
	}

	return actions
}

// Winner reports the mark owning a full line. The second result is false when nobody has won.
func Winner(board Board) (Mark, bool) {
	for _, line := range lines {
		x, o := 0, 0
		for _, cell := range line {
			switch board[cell.Row][cell.Col] {
			case X:
				x++
			case O:
				o++
			}
		}

		if x == Size {
			return X, true
		}

		if o == Size {
			return O, true
		}
	}

	return Empty, false
}

// Terminal reports whether the game is over, by a win or a full board.
func Terminal(board Board) bool {
	if _, ok := Winner(board); ok {
		return true
	}

	return countEmpty(board) == 0
}

// Utility scores a finished board: 1 when X won, -1 when O won, 0 otherwise.
// The value of a non-terminal board is 0 and says nothing about a draw.
func Utility(board Board) int {
	winner, _ := Winner(board)

	switch winner {
	case X:
		return 1
	case O:
		return -1
	default:
		return 0
	}
}

// Opponent returns the other player's mark.
func Opponent(mark Mark) Mark {
	if mark == X {
		return O
	}

	return X
}

func countEmpty(board Board) int {
	count := 0
	for _, row := range board {
		for _, cell := range row {
			if cell == Empty {
				count++
			}
		}
	}

	return count
}
