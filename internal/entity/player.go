package entity

import "github.com/rocketscienceinc/tictactoe-solver/internal/tictactoe"

const botIDPrefix = "bot:"

type Player struct {
	ID     string         `json:"id"`
	Mark   tictactoe.Mark `json:"mark,omitempty"`
	GameID string         `json:"game_id,omitempty"`
	Bot    bool           `json:"bot,omitempty"`
}

// NewBotPlayer returns the engine-controlled opponent of a game.
func NewBotPlayer(gameID string, mark tictactoe.Mark) *Player {
	return &Player{
		ID:     botIDPrefix + gameID,
		Mark:   mark,
		GameID: gameID,
		Bot:    true,
	}
}

func (that *Player) IsBot() bool {
	return that.Bot
}
