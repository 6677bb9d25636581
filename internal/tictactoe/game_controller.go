package tictactoe

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/rocketscienceinc/tictactoe-solo/internal/entity"
)

type bot interface {
	ChooseMove(ctx context.Context, board entity.Board, mark entity.Mark, difficulty entity.Difficulty) (entity.Move, error)
}

type publisher interface {
	Publish(ctx context.Context, event entity.Event)
}

// GameController runs one game between the human (X) and the computer (O).
// Commands and the delayed computer move are serialized by a single mutex.
type GameController struct {
	logger    *slog.Logger
	bot       bot
	publisher publisher
	delay     time.Duration

	mu         sync.Mutex
	state      entity.GameState
	metrics    *entity.SearchMetrics
	pending    *time.Timer
	generation uint64
}

func NewGameController(logger *slog.Logger, bot bot, publisher publisher, delay time.Duration, difficulty entity.Difficulty) *GameController {
	return &GameController{
		logger:    logger.With("component", "game_controller"),
		bot:       bot,
		publisher: publisher,
		delay:     delay,
		state:     entity.NewGameState(difficulty),
	}
}

// Start publishes the initial board and status.
func (that *GameController) Start(ctx context.Context) {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.publishSnapshot(ctx)
}

// SelectCell plays the human move at cell. A rejected move changes nothing.
func (that *GameController) SelectCell(ctx context.Context, cell int) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	finished, err := that.play(ctx, entity.HumanMark, cell)
	if err != nil {
		return fmt.Errorf("failed to select cell: %w", err)
	}

	if !finished {
		that.scheduleOpponent(ctx)
	}

	return nil
}

// SelectDifficulty changes the level used for the next computer move.
func (that *GameController) SelectDifficulty(_ context.Context, difficulty entity.Difficulty) error {
	if _, err := entity.ParseDifficulty(string(difficulty)); err != nil {
		return fmt.Errorf("failed to select difficulty: %w", err)
	}

	that.mu.Lock()
	defer that.mu.Unlock()

	that.state.Difficulty = difficulty

	return nil
}

// Restart drops the current game, including a pending computer move.
func (that *GameController) Restart(ctx context.Context) {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.cancelPending()

	that.state = entity.NewGameState(that.state.Difficulty)
	that.metrics = nil

	that.publishSnapshot(ctx)
}

// State returns a copy of the game state.
func (that *GameController) State() entity.GameState {
	that.mu.Lock()
	defer that.mu.Unlock()

	state := that.state
	if state.WinningLine != nil {
		line := *state.WinningLine
		state.WinningLine = &line
	}

	return state
}

// Metrics returns the metrics of the last computer search, if any.
func (that *GameController) Metrics() *entity.SearchMetrics {
	that.mu.Lock()
	defer that.mu.Unlock()

	if that.metrics == nil {
		return nil
	}

	metrics := *that.metrics

	return &metrics
}

// Close cancels a pending computer move.
func (that *GameController) Close() {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.cancelPending()
}

// play validates and applies a move, then publishes what changed.
func (that *GameController) play(ctx context.Context, mark entity.Mark, cell int) (bool, error) {
	if err := that.state.ValidateMove(mark, cell); err != nil {
		return false, err
	}

	finished := that.state.Apply(mark, cell)

	that.publisher.Publish(ctx, entity.BoardChanged(that.state.Board))
	that.publisher.Publish(ctx, entity.StatusChanged(that.state.Status()))

	if finished {
		if that.state.WinningLine != nil {
			that.publisher.Publish(ctx, entity.LineFound(*that.state.WinningLine))
		}

		that.logger.InfoContext(ctx, "game finished", "outcome", that.state.Outcome, "board", that.state.Board.String())
	}

	return finished, nil
}

func (that *GameController) scheduleOpponent(ctx context.Context) {
	that.cancelPending()

	generation := that.generation
	that.pending = time.AfterFunc(that.delay, func() {
		that.opponentTurn(ctx, generation)
	})
}

// cancelPending stops the timer and invalidates a callback that already fired.
func (that *GameController) cancelPending() {
	if that.pending != nil {
		that.pending.Stop()
		that.pending = nil
	}

	that.generation++
}

func (that *GameController) opponentTurn(ctx context.Context, generation uint64) {
	log := that.logger.With("method", "opponentTurn")

	that.mu.Lock()
	defer that.mu.Unlock()

	if generation != that.generation || ctx.Err() != nil {
		log.DebugContext(ctx, "discarding stale computer move")
		return
	}

	that.pending = nil

	if !that.state.Active || that.state.Turn != entity.ComputerMark {
		return
	}

	move, err := that.bot.ChooseMove(ctx, that.state.Board, entity.ComputerMark, that.state.Difficulty)
	if err != nil {
		log.ErrorContext(ctx, "bot failed to choose a move", "error", err, "board", that.state.Board.String())
		return
	}

	if _, err = that.play(ctx, entity.ComputerMark, move.Cell); err != nil {
		log.ErrorContext(ctx, "bot chose an illegal move", "error", err, "cell", move.Cell)
		return
	}

	that.metrics = move.Metrics
	if that.metrics != nil {
		that.publisher.Publish(ctx, entity.MetricsChanged(*that.metrics))
	}
}

func (that *GameController) publishSnapshot(ctx context.Context) {
	that.publisher.Publish(ctx, entity.BoardChanged(that.state.Board))
	that.publisher.Publish(ctx, entity.StatusChanged(that.state.Status()))
}
