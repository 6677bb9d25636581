package websocket

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-solo/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-solo/internal/entity"
)

func (that *Server) handleCellSelect(ctx context.Context, sess *session, msg *Message) error {
	var payload cellPayload
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		return fmt.Errorf("%w: %w", apperror.ErrInvalidPayload, err)
	}

	if payload.Cell == nil {
		return fmt.Errorf("%w: cell is required", apperror.ErrInvalidPayload)
	}

	if err := sess.controller.SelectCell(ctx, *payload.Cell); err != nil {
		return fmt.Errorf("failed to handle cell select: %w", err)
	}

	return nil
}

func (that *Server) handleDifficultySelect(ctx context.Context, sess *session, msg *Message) error {
	var payload difficultyPayload
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		return fmt.Errorf("%w: %w", apperror.ErrInvalidPayload, err)
	}

	difficulty, err := entity.ParseDifficulty(payload.Difficulty)
	if err != nil {
		return fmt.Errorf("%w: %w", apperror.ErrInvalidPayload, err)
	}

	if err = sess.controller.SelectDifficulty(ctx, difficulty); err != nil {
		return fmt.Errorf("failed to handle difficulty select: %w", err)
	}

	that.logger.DebugContext(ctx, "difficulty changed", "session", sess.id, "difficulty", difficulty)

	return nil
}

func (that *Server) handleGameRestart(ctx context.Context, sess *session, _ *Message) error {
	sess.controller.Restart(ctx)

	return nil
}

func (that *Server) handleGameState(_ context.Context, sess *session, msg *Message) error {
	state := sess.controller.State()

	payload := StatePayload{
		SessionID: sess.id,
		Game:      state,
		Status:    state.Status(),
		Metrics:   sess.controller.Metrics(),
	}

	if err := sess.send(msg.Action, payload); err != nil {
		return fmt.Errorf("failed to send game state: %w", err)
	}

	return nil
}
