package websocket

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/rocketscienceinc/tictactoe-solo/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-solo/internal/entity"
	"github.com/rocketscienceinc/tictactoe-solo/internal/tictactoe"
)

const maxMessageSize = 4096

type bot interface {
	ChooseMove(ctx context.Context, board entity.Board, mark entity.Mark, difficulty entity.Difficulty) (entity.Move, error)
}

type broadcaster interface {
	Broadcast(ctx context.Context, sessionID string, event entity.Event) error
}

type handler func(ctx context.Context, sess *session, msg *Message) error

// Settings apply to every new game session.
type Settings struct {
	OpponentDelay time.Duration
	Difficulty    entity.Difficulty
}

type Server struct {
	logger      *slog.Logger
	bot         bot
	broadcaster broadcaster
	settings    Settings
	upgrader    websocket.Upgrader

	handlers map[string]handler
}

// New builds the game WebSocket endpoint. broadcaster may be nil.
func New(logger *slog.Logger, bot bot, broadcaster broadcaster, settings Settings) *Server {
	server := &Server{
		logger:      logger.With("component", "websocket"),
		bot:         bot,
		broadcaster: broadcaster,
		settings:    settings,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// the client is served from another origin
			CheckOrigin: func(*http.Request) bool { return true },
		},

		handlers: make(map[string]handler),
	}

	server.handlers[actionCellSelect] = server.handleCellSelect
	server.handlers[actionDifficultySelect] = server.handleDifficultySelect
	server.handlers[actionGameRestart] = server.handleGameRestart
	server.handlers[actionGameState] = server.handleGameState

	return server
}

// ServeHTTP upgrades the request and plays one game until the client leaves.
func (that *Server) ServeHTTP(writer http.ResponseWriter, req *http.Request) {
	log := that.logger.With("method", "ServeHTTP")

	conn, err := that.upgrader.Upgrade(writer, req, nil)
	if err != nil {
		log.Warn("failed to upgrade connection", "error", err)
		return
	}

	defer conn.Close()

	ctx, cancel := context.WithCancel(req.Context())
	defer cancel()

	sess := &session{
		id:          uuid.NewString(),
		conn:        conn,
		broadcaster: that.broadcaster,
	}
	sess.logger = that.logger.With("session", sess.id)
	sess.controller = tictactoe.NewGameController(sess.logger, that.bot, sess, that.settings.OpponentDelay, that.settings.Difficulty)
	defer sess.controller.Close()

	log.InfoContext(ctx, "WebSocket connection established", "session", sess.id)

	sess.controller.Start(ctx)

	if err = that.handleMessages(ctx, sess); err != nil {
		log.ErrorContext(ctx, "error handling messages", "session", sess.id, "error", err)
		return
	}

	log.InfoContext(ctx, "WebSocket connection closed", "session", sess.id)
}

// handleMessages reads client messages until the connection closes.
func (that *Server) handleMessages(ctx context.Context, sess *session) error {
	sess.conn.SetReadLimit(maxMessageSize)

	for {
		_, data, err := sess.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				return fmt.Errorf("failed to read message: %w", err)
			}

			return nil
		}

		that.dispatch(ctx, sess, data)
	}
}

func (that *Server) dispatch(ctx context.Context, sess *session, data []byte) {
	log := sess.logger.With("method", "dispatch")

	var message Message
	if err := json.Unmarshal(data, &message); err != nil {
		log.WarnContext(ctx, "failed to unmarshal message", "error", err)
		that.reply(ctx, sess, "", fmt.Errorf("%w: %w", apperror.ErrInvalidPayload, err))
		return
	}

	handle, ok := that.handlers[message.Action]
	if !ok {
		log.WarnContext(ctx, "unknown action", "action", message.Action)
		that.reply(ctx, sess, message.Action, fmt.Errorf("%w: %q", apperror.ErrUnknownAction, message.Action))
		return
	}

	err := handle(ctx, sess, &message)
	switch {
	case err == nil:
	case errors.Is(err, apperror.ErrIllegalMove):
		log.DebugContext(ctx, "ignoring illegal move", "action", message.Action, "error", err)
	default:
		log.WarnContext(ctx, "error processing message", "action", message.Action, "error", err)
		that.reply(ctx, sess, message.Action, err)
	}
}

func (that *Server) reply(ctx context.Context, sess *session, action string, cause error) {
	if err := sess.sendError(action, cause); err != nil {
		sess.logger.WarnContext(ctx, "failed to send error", "error", err)
	}
}
