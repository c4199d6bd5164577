package tictactoe

import "math"

// Decision is the outcome of a full minimax search from one board.
type Decision struct {
	Action Action
	// Found is false when the board is terminal and no action exists.
	Found bool
	// Score is the minimax value of the board from X's point of view.
	Score int
	// Visited counts the boards examined, the root included.
	Visited int
}

// Minimax returns the optimal action for the player to move.
// The second result is false when the game is already over.
func Minimax(board Board) (Action, bool) {
	decision := Evaluate(board)

	return decision.Action, decision.Found
}

// Evaluate runs an exhaustive minimax search and reports the chosen action with its value.
//
// Actions are tried in row-major order. The recorded action only changes when a
// candidate strictly improves the running best score, so among equally good
// actions the first one to reach the optimal value wins.
func Evaluate(board Board) Decision {
	s := &searcher{}

	if Terminal(board) {
		s.visited++
		return Decision{Score: Utility(board), Visited: s.visited}
	}

	var (
		score  int
		action Action
		found  bool
	)

	if Player(board) == X {
		score, action, found = s.maxValue(board)
	} else {
		score, action, found = s.minValue(board)
	}

	return Decision{Action: action, Found: found, Score: score, Visited: s.visited}
}

type searcher struct {
	visited int
}

func (that *searcher) maxValue(board Board) (int, Action, bool) {
	that.visited++

	if Terminal(board) {
		return Utility(board), Action{}, false
	}

	best := math.MinInt
	var (
		bestAction Action
		found      bool
	)

	for _, action := range Actions(board) {
		next, err := Result(board, action)
		if err != nil {
			// Actions only yields empty cells.
			panic(err)
		}

		score, _, _ := that.minValue(next)
		if score > best {
			bestAction = action
			found = true
		}
		best = max(best, score)
	}

	return best, bestAction, found
}

func (that *searcher) minValue(board Board) (int, Action, bool) {
	that.visited++

	if Terminal(board) {
		return Utility(board), Action{}, false
	}

	best := math.MaxInt
	var (
		bestAction Action
		found      bool
	)

	for _, action := range Actions(board) {
		next, err := Result(board, action)
		if err != nil {
			panic(err)
		}

		score, _, _ := that.maxValue(next)
		if score < best {
			bestAction = action
			found = true
		}
		best = min(best, score)
	}

	return best, bestAction, found
}
