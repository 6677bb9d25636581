package websocket

import (
	"encoding/json"

	"github.com/rocketscienceinc/tictactoe-solo/internal/entity"
)

const (
	actionCellSelect       = "cell:select"
	actionDifficultySelect = "difficulty:select"
	actionGameRestart      = "game:restart"
	actionGameState        = "game:state"
	actionError            = "error"
)

// Message represents a WebSocket message with an action type and a payload.
type Message struct {
	Action  string          `json:"action"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

type cellPayload struct {
	Cell *int `json:"cell"`
}

type difficultyPayload struct {
	Difficulty string `json:"difficulty"`
}

type StatePayload struct {
	SessionID string                `json:"session_id"`
	Game      entity.GameState      `json:"game"`
	Status    entity.Status         `json:"status"`
	Metrics   *entity.SearchMetrics `json:"metrics,omitempty"`
}

type ErrorPayload struct {
	Action string `json:"action,omitempty"`
	Error  string `json:"error"`
}
