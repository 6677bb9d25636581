package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/rocketscienceinc/tictactoe-solo/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-solo/internal/entity"
	"github.com/rocketscienceinc/tictactoe-solo/internal/strategy"
)

type BotService interface {
	ChooseMove(ctx context.Context, board entity.Board, mark entity.Mark, difficulty entity.Difficulty) (entity.Move, error)
}

type botService struct {
	logger *slog.Logger

	strategies map[entity.Difficulty]strategy.Strategy
	now        func() time.Time
}

// NewBotService maps easy, medium and hard to the given strategies.
func NewBotService(logger *slog.Logger, easy, medium, hard strategy.Strategy) BotService {
	return &botService{
		logger: logger.With("component", "bot"),
		strategies: map[entity.Difficulty]strategy.Strategy{
			entity.EasyDifficulty:   easy,
			entity.MediumDifficulty: medium,
			entity.HardDifficulty:   hard,
		},
		now: time.Now,
	}
}

func (that *botService) ChooseMove(ctx context.Context, board entity.Board, mark entity.Mark, difficulty entity.Difficulty) (entity.Move, error) {
	log := that.logger.With("method", "ChooseMove", "difficulty", difficulty)

	chosen, ok := that.strategies[difficulty]
	if !ok {
		return entity.Move{}, fmt.Errorf("%w: %q", apperror.ErrUnknownDifficulty, difficulty)
	}

	started := that.now()

	move, err := chosen.ChooseMove(&board, mark)
	if err != nil {
		return entity.Move{}, fmt.Errorf("bot failed to choose move: %w", err)
	}

	if move.Metrics != nil {
		move.Metrics.Elapsed = that.now().Sub(started)
		move.Metrics.Moves = board.Count()
	}

	log.DebugContext(ctx, "bot chose move", "cell", move.Cell, "board", board.String())

	return move, nil
}
