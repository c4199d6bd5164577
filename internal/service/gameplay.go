package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-solver/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-solver/internal/entity"
	"github.com/rocketscienceinc/tictactoe-solver/internal/repository"
	"github.com/rocketscienceinc/tictactoe-solver/internal/tictactoe"
)

type GamePlayService interface {
	GetOrCreatePlayer(ctx context.Context, playerID string) (*entity.Player, error)

	StartGame(ctx context.Context, playerID, gameType string, mark tictactoe.Mark) (*entity.Game, error)
	GetGame(ctx context.Context, playerID string) (*entity.Game, error)
	CleanupGame(ctx context.Context, game *entity.Game)

	MakeTurn(ctx context.Context, playerID string, action tictactoe.Action) (*entity.Game, error)
}

type gamePlayService struct {
	logger *slog.Logger

	playerService PlayerService
	gameService   GameService
	botService    BotService
}

func NewGamePlayService(logger *slog.Logger, playerService PlayerService, gameService GameService, botService BotService) GamePlayService {
	return &gamePlayService{
		logger:        logger.With("component", "gameplay"),
		playerService: playerService,
		gameService:   gameService,
		botService:    botService,
	}
}

// GetOrCreatePlayer - returns the stored player, creating it when the id is empty or unknown.
func (that *gamePlayService) GetOrCreatePlayer(ctx context.Context, playerID string) (*entity.Player, error) {
	if playerID == "" {
		return that.playerService.CreatePlayer(ctx, "")
	}

	player, err := that.playerService.GetPlayerByID(ctx, playerID)
	if errors.Is(err, repository.ErrPlayerNotFound) {
		return that.playerService.CreatePlayer(ctx, playerID)
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get player by id: %w", err)
	}

	return player, nil
}

// StartGame - abandons the player's current game, if any, and starts a new one.
// For bot games an empty mark picks one at random; the bot opens when it holds X.
func (that *gamePlayService) StartGame(ctx context.Context, playerID, gameType string, mark tictactoe.Mark) (*entity.Game, error) {
	if !entity.IsValidType(gameType) {
		return nil, fmt.Errorf("%w: %q", apperror.ErrUnknownGameType, gameType)
	}

	if mark != tictactoe.Empty && mark != tictactoe.X && mark != tictactoe.O {
		return nil, fmt.Errorf("%w: %q", apperror.ErrInvalidMark, mark)
	}

	player, err := that.playerService.GetPlayerByID(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get player by id: %w", err)
	}

	if player.GameID != "" {
		that.abandonGame(ctx, player.GameID)
	}

	game, err := that.gameService.CreateGame(ctx, gameType)
	if err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}

	player.GameID = game.ID
	player.Mark = tictactoe.Empty
	game.Status = entity.StatusOngoing
	game.Players = []*entity.Player{player}

	if game.IsWithBot() {
		if mark == tictactoe.Empty {
			mark, _ = game.GetRandomMarks()
		}

		player.Mark = mark
		game.Players = append(game.Players, entity.NewBotPlayer(game.ID, tictactoe.Opponent(mark)))

		if game.Turn != mark {
			if err = that.botService.MakeTurn(game); err != nil {
				return nil, fmt.Errorf("bot failed to make first turn: %w", err)
			}
		}
	}

	if err = that.playerService.UpdatePlayer(ctx, player); err != nil {
		return nil, fmt.Errorf("failed to update player: %w", err)
	}

	if err = that.gameService.UpdateGame(ctx, game); err != nil {
		return nil, fmt.Errorf("failed to update game: %w", err)
	}

	return game, nil
}

func (that *gamePlayService) GetGame(ctx context.Context, playerID string) (*entity.Game, error) {
	player, err := that.playerService.GetPlayerByID(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get player by id: %w", err)
	}

	if player.GameID == "" {
		return nil, apperror.ErrNoActiveGames
	}

	game, err := that.gameService.GetGameByID(ctx, player.GameID)
	if errors.Is(err, repository.ErrGameNotFound) {
		return nil, apperror.ErrNoActiveGames
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get game by id: %w", err)
	}

	return game, nil
}

// MakeTurn - plays the action for the player; in a bot game the bot answers right away.
func (that *gamePlayService) MakeTurn(ctx context.Context, playerID string, action tictactoe.Action) (*entity.Game, error) {
	game, err := that.GetGame(ctx, playerID)
	if err != nil {
		return nil, err
	}

	mark := game.Turn
	if !game.IsLocal() {
		mark = that.markOf(game, playerID)
	}

	if err = game.MakeTurn(mark, action); err != nil {
		return game, fmt.Errorf("failed to make turn: %w", err)
	}

	if !game.IsFinished() && game.IsWithBot() {
		if err = that.botService.MakeTurn(game); err != nil {
			return nil, fmt.Errorf("bot failed to make turn: %w", err)
		}
	}

	if err = that.gameService.UpdateGame(ctx, game); err != nil {
		return nil, fmt.Errorf("failed to update game: %w", err)
	}

	return game, nil
}

// CleanupGame - deletes the game and detaches its human players from it.
func (that *gamePlayService) CleanupGame(ctx context.Context, game *entity.Game) {
	log := that.logger.With("method", "CleanupGame", "gameID", game.ID)

	if err := that.gameService.DeleteGame(ctx, game.ID); err != nil {
		log.Error("failed to delete game", "error", err)
	}

	for _, player := range game.Players {
		if player.IsBot() {
			continue
		}

		player.GameID = ""
		player.Mark = tictactoe.Empty
		if err := that.playerService.UpdatePlayer(ctx, player); err != nil {
			log.Error("failed to update", "player", player.ID, "error", err)
		}
	}
}

func (that *gamePlayService) abandonGame(ctx context.Context, gameID string) {
	game, err := that.gameService.GetGameByID(ctx, gameID)
	if err != nil {
		that.logger.Debug("previous game is gone", "gameID", gameID, "error", err)
		return
	}

	that.CleanupGame(ctx, game)
}

func (that *gamePlayService) markOf(game *entity.Game, playerID string) tictactoe.Mark {
	for _, player := range game.Players {
		if player.ID == playerID {
			return player.Mark
		}
	}

	return tictactoe.Empty
}
