package ws

import (
	"encoding/json"

	"github.com/lk16/reversi/internal/models"
)

type Incoming struct {
	Event string          `json:"event"`
	ID    int             `json:"id"`
	Data  json.RawMessage `json:"data"`
}

type Outgoing struct {
	ID    int    `json:"id"`
	Data  any    `json:"data,omitempty"`
	Error string `json:"error,omitempty"`
}

type NewGameRequest = models.NewGameRequest

type GetGameRequest struct {
	GameID string `json:"game_id"`
}

type MoveRequest struct {
	GameID string `json:"game_id"`
	models.MoveRequest
}

type GameResponse struct {
	Game models.GameResponse `json:"game"`
}
