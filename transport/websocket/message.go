package websocket

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/gorilla/websocket"
	"github.com/rocketscienceinc/tictactoe-solver/internal/entity"
	"github.com/rocketscienceinc/tictactoe-solver/internal/service"
)

var (
	ErrBadMessage    = errors.New("message is not valid json")
	ErrUnknownAction = errors.New("unknown action")
)

// Message represents a WebSocket message with an action type and a payload.
type Message struct {
	Action  string          `json:"action"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// Payload is the body of every server response.
type Payload struct {
	Player *entity.Player `json:"player,omitempty"`
	Game   *entity.Game   `json:"game,omitempty"`
	Hint   *service.Hint  `json:"hint,omitempty"`
	Error  string         `json:"error,omitempty"`
}

type response struct {
	Action  string   `json:"action"`
	Payload *Payload `json:"payload"`
}

func (that *Server) sendMessage(conn *websocket.Conn, action string, payload *Payload) error {
	if err := conn.WriteJSON(response{Action: action, Payload: payload}); err != nil {
		return fmt.Errorf("failed to send response: %w", err)
	}

	return nil
}

func (that *Server) sendError(conn *websocket.Conn, action string, cause error) error {
	return that.sendMessage(conn, action, &Payload{Error: cause.Error()})
}

// decodePayload unmarshals an optional payload; a missing payload leaves v untouched.
func decodePayload(msg *Message, v any) error {
	if len(msg.Payload) == 0 {
		return nil
	}

	if err := json.Unmarshal(msg.Payload, v); err != nil {
		return fmt.Errorf("failed to unmarshal payload: %w", err)
	}

	return nil
}
