package service

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-solver/internal/entity"
	"github.com/rocketscienceinc/tictactoe-solver/internal/tictactoe"
)

var (
	ErrBotNotFound      = errors.New("bot player not found")
	ErrNoAvailableMoves = errors.New("no available moves")
)

type BotService interface {
	MakeTurn(game *entity.Game) error
}

type botService struct {
	logger *slog.Logger
}

// NewBotService - the bot always plays the minimax move for its mark.
func NewBotService(logger *slog.Logger) BotService {
	return &botService{
		logger: logger.With("component", "bot"),
	}
}

func (that *botService) MakeTurn(game *entity.Game) error {
	botPlayer := game.Bot()
	if botPlayer == nil {
		return ErrBotNotFound
	}

	decision := tictactoe.Evaluate(game.Board)
	if !decision.Found {
		return ErrNoAvailableMoves
	}

	that.logger.Debug("bot chose action",
		"gameID", game.ID,
		"mark", botPlayer.Mark,
		"action", decision.Action.String(),
		"score", decision.Score,
		"visited", decision.Visited,
	)

	if err := game.MakeTurn(botPlayer.Mark, decision.Action); err != nil {
		return fmt.Errorf("bot failed to make turn: %w", err)
	}

	return nil
}
