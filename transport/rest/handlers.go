package rest

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/rocketscienceinc/tictactoe-solver/internal/entity"
	"github.com/rocketscienceinc/tictactoe-solver/internal/service"
	"github.com/rocketscienceinc/tictactoe-solver/internal/tictactoe"
)

// PlayerIDHeader identifies the caller across game requests.
const PlayerIDHeader = "X-Player-ID"

type gamePlayService interface {
	GetOrCreatePlayer(ctx context.Context, playerID string) (*entity.Player, error)
	StartGame(ctx context.Context, playerID, gameType string, mark tictactoe.Mark) (*entity.Game, error)
	GetGame(ctx context.Context, playerID string) (*entity.Game, error)
	MakeTurn(ctx context.Context, playerID string, action tictactoe.Action) (*entity.Game, error)
}

type hintService interface {
	Suggest(board tictactoe.Board) (service.Hint, error)
}

type handlers struct {
	logger   *slog.Logger
	gamePlay gamePlayService
	hints    hintService
}

func newHandlers(logger *slog.Logger, gamePlay gamePlayService, hints hintService) *handlers {
	return &handlers{
		logger:   logger.With("component", "rest"),
		gamePlay: gamePlay,
		hints:    hints,
	}
}

type boardRequest struct {
	Board  *tictactoe.Board  `json:"board"`
	Action *tictactoe.Action `json:"action,omitempty"`
}

type minimaxResponse struct {
	Player   tictactoe.Mark    `json:"player,omitempty"`
	Action   *tictactoe.Action `json:"action,omitempty"`
	Score    int               `json:"score"`
	Visited  int               `json:"visited,omitempty"`
	Terminal bool              `json:"terminal"`
	Winner   tictactoe.Mark    `json:"winner,omitempty"`
}

type boardResponse struct {
	Board    tictactoe.Board `json:"board"`
	Terminal bool            `json:"terminal"`
	Utility  int             `json:"utility"`
}

type createGameRequest struct {
	Type string `json:"type"`
	Mark string `json:"mark,omitempty"`
}

type gameResponse struct {
	PlayerID string       `json:"player_id"`
	Game     *entity.Game `json:"game"`
}

type errorResponse struct {
	Error string `json:"error"`
}

var errBoardRequired = errors.New("board is required")

func (that *handlers) PingHandler(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte("pong")); err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
}

// Minimax - returns the optimal action for the player to move on the posted board.
func (that *handlers) Minimax(w http.ResponseWriter, r *http.Request) {
	var req boardRequest
	if err := decodeBody(r, &req); err != nil {
		that.writeError(w, err)
		return
	}

	board := *req.Board

	hint, err := that.hints.Suggest(board)
	if errors.Is(err, service.ErrGameOver) {
		winner, _ := tictactoe.Winner(board)
		writeJSON(w, http.StatusOK, minimaxResponse{
			Score:    tictactoe.Utility(board),
			Terminal: true,
			Winner:   winner,
		})
		return
	}

	if err != nil {
		that.writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, minimaxResponse{
		Player:  hint.Player,
		Action:  &hint.Action,
		Score:   hint.Score,
		Visited: hint.Visited,
	})
}

// Result - applies the posted action to the posted board.
func (that *handlers) Result(w http.ResponseWriter, r *http.Request) {
	var req boardRequest
	if err := decodeBody(r, &req); err != nil {
		that.writeError(w, err)
		return
	}

	if req.Action == nil {
		that.writeError(w, fmt.Errorf("%w: action is required", tictactoe.ErrInvalidAction))
		return
	}

	board, err := tictactoe.Result(*req.Board, *req.Action)
	if err != nil {
		that.writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, boardResponse{
		Board:    board,
		Terminal: tictactoe.Terminal(board),
		Utility:  tictactoe.Utility(board),
	})
}

func (that *handlers) CreateGame(w http.ResponseWriter, r *http.Request) {
	var req createGameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		that.writeError(w, fmt.Errorf("%w: %w", errBadRequest, err))
		return
	}

	if req.Type == "" {
		req.Type = entity.WithBotType
	}

	player, err := that.gamePlay.GetOrCreatePlayer(r.Context(), r.Header.Get(PlayerIDHeader))
	if err != nil {
		that.writeError(w, err)
		return
	}

	game, err := that.gamePlay.StartGame(r.Context(), player.ID, req.Type, tictactoe.Mark(strings.ToUpper(req.Mark)))
	if err != nil {
		that.writeError(w, err)
		return
	}

	w.Header().Set(PlayerIDHeader, player.ID)
	writeJSON(w, http.StatusCreated, gameResponse{PlayerID: player.ID, Game: game})
}

func (that *handlers) CurrentGame(w http.ResponseWriter, r *http.Request) {
	playerID := r.Header.Get(PlayerIDHeader)

	game, err := that.gamePlay.GetGame(r.Context(), playerID)
	if err != nil {
		that.writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, gameResponse{PlayerID: playerID, Game: game})
}

func (that *handlers) MakeTurn(w http.ResponseWriter, r *http.Request) {
	var action tictactoe.Action
	if err := json.NewDecoder(r.Body).Decode(&action); err != nil {
		that.writeError(w, fmt.Errorf("%w: %w", errBadRequest, err))
		return
	}

	playerID := r.Header.Get(PlayerIDHeader)

	game, err := that.gamePlay.MakeTurn(r.Context(), playerID, action)
	if err != nil {
		that.writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, gameResponse{PlayerID: playerID, Game: game})
}

func decodeBody(r *http.Request, req *boardRequest) error {
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		if errors.Is(err, tictactoe.ErrInvalidBoard) {
			return err
		}
		return fmt.Errorf("%w: %w", errBadRequest, err)
	}

	if req.Board == nil {
		return fmt.Errorf("%w: %w", errBadRequest, errBoardRequired)
	}

	return nil
}
