package websocket

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rocketscienceinc/tictactoe-solver/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-solver/internal/entity"
	"github.com/rocketscienceinc/tictactoe-solver/internal/tictactoe"
)

const (
	actionConnect  = "connect"
	actionNewGame  = "game:new"
	actionGameTurn = "game:turn"
	actionGameHint = "game:hint"
)

var ErrActionRequired = errors.New("action is required")

type newGameRequest struct {
	Type string `json:"type"`
	Mark string `json:"mark,omitempty"`
}

type turnRequest struct {
	Action *tictactoe.Action `json:"action"`
}

// handleConnect - registers the session player and resumes its game, if any.
func (that *Server) handleConnect(ctx context.Context, playerID string, _ *Message) (*Payload, error) {
	player, err := that.gamePlay.GetOrCreatePlayer(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get or create player: %w", err)
	}

	payload := &Payload{Player: player}

	if player.GameID == "" {
		return payload, nil
	}

	game, err := that.gamePlay.GetGame(ctx, player.ID)
	if errors.Is(err, apperror.ErrNoActiveGames) {
		return payload, nil
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get the game: %w", err)
	}

	payload.Game = game

	return payload, nil
}

func (that *Server) handleNewGame(ctx context.Context, playerID string, msg *Message) (*Payload, error) {
	req := newGameRequest{Type: entity.WithBotType}
	if err := decodePayload(msg, &req); err != nil {
		return nil, err
	}

	player, err := that.gamePlay.GetOrCreatePlayer(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get or create player: %w", err)
	}

	game, err := that.gamePlay.StartGame(ctx, player.ID, req.Type, tictactoe.Mark(strings.ToUpper(req.Mark)))
	if err != nil {
		return nil, err
	}

	return &Payload{Player: playerOf(game, player), Game: game}, nil
}

func (that *Server) handleGameTurn(ctx context.Context, playerID string, msg *Message) (*Payload, error) {
	var req turnRequest
	if err := decodePayload(msg, &req); err != nil {
		return nil, err
	}

	if req.Action == nil {
		return nil, ErrActionRequired
	}

	game, err := that.gamePlay.MakeTurn(ctx, playerID, *req.Action)
	if err != nil {
		return nil, err
	}

	return &Payload{Game: game}, nil
}

// handleGameHint - suggests the optimal move on the player's current board.
func (that *Server) handleGameHint(ctx context.Context, playerID string, _ *Message) (*Payload, error) {
	game, err := that.gamePlay.GetGame(ctx, playerID)
	if err != nil {
		return nil, err
	}

	hint, err := that.hints.Suggest(game.Board)
	if err != nil {
		return nil, err
	}

	return &Payload{Game: game, Hint: &hint}, nil
}

func playerOf(game *entity.Game, fallback *entity.Player) *entity.Player {
	for _, player := range game.Players {
		if player.ID == fallback.ID {
			return player
		}
	}

	return fallback
}
