package entity

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/rocketscienceinc/tictactoe-solver/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-solver/internal/tictactoe"
)

const (
	StatusFinished = "finished"
	StatusOngoing  = "ongoing"
	StatusWaiting  = "waiting"

	PlayerTie = "-"
)

const (
	// WithBotType games answer every human turn with the engine's optimal move.
	WithBotType = "bot"
	// LocalType games accept both marks from the same player.
	LocalType = "local"
)

var ErrUnknownGameStatus = errors.New("unknown game status")

type Game struct {
	ID      string          `json:"id"`
	Board   tictactoe.Board `json:"board"`
	Winner  string          `json:"winner"`
	Status  string          `json:"status"`
	Turn    tictactoe.Mark  `json:"player_turn"`
	Players []*Player       `json:"players,omitempty"`
	Type    string          `json:"type,omitempty"`
}

func NewGame(id, gameType string) *Game {
	board := tictactoe.InitialState()

	return &Game{
		ID:     id,
		Board:  board,
		Turn:   tictactoe.Player(board),
		Status: StatusWaiting,
		Type:   gameType,
	}
}

// IsValidType reports whether gameType names a supported game type.
func IsValidType(gameType string) bool {
	return gameType == WithBotType || gameType == LocalType
}

// DetermineGameResult returns "X" or "O" for a win, PlayerTie for a full board and "" otherwise.
func (that *Game) DetermineGameResult() string {
	if winner, ok := tictactoe.Winner(that.Board); ok {
		return string(winner)
	}

	if tictactoe.Terminal(that.Board) {
		return PlayerTie
	}

	return ""
}

func (that *Game) UpdateGameState() {
	switch result := that.DetermineGameResult(); result {
	// one player wins or tie
	case string(tictactoe.X), string(tictactoe.O), PlayerTie:
		that.Winner = result
		that.Status = StatusFinished
		that.Turn = tictactoe.Empty
	// game continue
	default:
		that.Status = StatusOngoing
		that.Turn = tictactoe.Player(that.Board)
	}
}

func (that *Game) MakeTurn(playerMark tictactoe.Mark, action tictactoe.Action) error {
	if err := that.ConfirmOngoingState(); err != nil {
		return err
	}

	if !action.Valid() {
		return fmt.Errorf("%w: %s", apperror.ErrInvalidCell, action)
	}

	if that.Turn != playerMark {
		return apperror.ErrNotYourTurn
	}

	board, err := tictactoe.Result(that.Board, action)
	if errors.Is(err, tictactoe.ErrIllegalMove) {
		return fmt.Errorf("%w: %w", apperror.ErrCellOccupied, err)
	}

	if err != nil {
		return fmt.Errorf("failed to apply action: %w", err)
	}

	that.Board = board
	that.UpdateGameState()

	return nil
}

func (that *Game) IsFinished() bool {
	return that.Status == StatusFinished
}

func (that *Game) IsOngoing() bool {
	return that.Status == StatusOngoing
}

func (that *Game) IsWaiting() bool {
	return that.Status == StatusWaiting
}

func (that *Game) ConfirmOngoingState() error {
	switch {
	case that.IsWaiting():
		return apperror.ErrGameIsNotStarted
	case that.IsFinished():
		return apperror.ErrGameFinished
	case that.IsOngoing():
		return nil
	default:
		return fmt.Errorf("%w: %s", ErrUnknownGameStatus, that.Status)
	}
}

func (that *Game) IsWithBot() bool {
	return that.Type == WithBotType
}

func (that *Game) IsLocal() bool {
	return that.Type == LocalType
}

// Bot returns the engine-controlled player, or nil for games without one.
func (that *Game) Bot() *Player {
	for _, player := range that.Players {
		if player.IsBot() {
			return player
		}
	}

	return nil
}

func (that *Game) GetRandomMarks() (tictactoe.Mark, tictactoe.Mark) {
	if rand.Intn(2) == 0 { //nolint: gosec // it's ok
		return tictactoe.X, tictactoe.O
	}
	return tictactoe.O, tictactoe.X
}
