package service

import (
	"errors"

	"github.com/rocketscienceinc/tictactoe-solver/internal/tictactoe"
)

var ErrGameOver = errors.New("game is over")

// Hint is the optimal move for the player to move on a board.
type Hint struct {
	Player  tictactoe.Mark   `json:"player"`
	Action  tictactoe.Action `json:"action"`
	Score   int              `json:"score"`
	Visited int              `json:"visited"`
}

type HintService interface {
	Suggest(board tictactoe.Board) (Hint, error)
}

type hintService struct{}

func NewHintService() HintService {
	return &hintService{}
}

func (that *hintService) Suggest(board tictactoe.Board) (Hint, error) {
	decision := tictactoe.Evaluate(board)
	if !decision.Found {
		return Hint{}, ErrGameOver
	}

	return Hint{
		Player:  tictactoe.Player(board),
		Action:  decision.Action,
		Score:   decision.Score,
		Visited: decision.Visited,
	}, nil
}
