package websocket

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rocketscienceinc/tictactoe-solo/internal/entity"
	"github.com/rocketscienceinc/tictactoe-solo/internal/tictactoe"
)

const writeTimeout = 10 * time.Second

// session is one connected client playing one game.
type session struct {
	id          string
	logger      *slog.Logger
	conn        *websocket.Conn
	broadcaster broadcaster

	writeMu    sync.Mutex
	controller *tictactoe.GameController
}

// Publish sends event to the client and mirrors it to the broadcaster.
func (that *session) Publish(ctx context.Context, event entity.Event) {
	if err := that.send(string(event.Type), event); err != nil {
		that.logger.WarnContext(ctx, "failed to send event", "type", event.Type, "error", err)
	}

	if that.broadcaster == nil {
		return
	}

	if err := that.broadcaster.Broadcast(ctx, that.id, event); err != nil {
		that.logger.WarnContext(ctx, "failed to broadcast event", "type", event.Type, "error", err)
	}
}

func (that *session) sendError(action string, err error) error {
	return that.send(actionError, ErrorPayload{Action: action, Error: err.Error()})
}

func (that *session) send(action string, payload any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	that.writeMu.Lock()
	defer that.writeMu.Unlock()

	if err = that.conn.SetWriteDeadline(time.Now().Add(writeTimeout)); err != nil {
		return fmt.Errorf("failed to set write deadline: %w", err)
	}

	if err = that.conn.WriteJSON(Message{Action: action, Payload: data}); err != nil {
		return fmt.Errorf("failed to write message: %w", err)
	}

	return nil
}
