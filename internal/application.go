package application

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"os/signal"
	"syscall"
	"time"

	"github.com/rocketscienceinc/tictactoe-solo/internal/config"
	"github.com/rocketscienceinc/tictactoe-solo/internal/entity"
	"github.com/rocketscienceinc/tictactoe-solo/internal/server"
	"github.com/rocketscienceinc/tictactoe-solo/internal/service"
	"github.com/rocketscienceinc/tictactoe-solo/internal/strategy"
	"github.com/rocketscienceinc/tictactoe-solo/internal/transport/redis"
	"github.com/rocketscienceinc/tictactoe-solo/internal/transport/websocket"
)

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	difficulty, err := entity.ParseDifficulty(conf.Game.Difficulty)
	if err != nil {
		return fmt.Errorf("invalid game config: %w", err)
	}

	bot := service.NewBotService(logger,
		strategy.NewRandom(rand.New(rand.NewSource(time.Now().UnixNano()))), //nolint: gosec // not security sensitive
		strategy.NewHeuristic(),
		strategy.NewMinimax(),
	)

	settings := websocket.Settings{
		OpponentDelay: conf.Game.OpponentDelay,
		Difficulty:    difficulty,
	}

	ws := websocket.New(logger, bot, nil, settings)

	if conf.Redis.Enabled {
		addr := conf.Redis.GetRedisAddr()

		client, connErr := redis.Connect(ctx, addr)
		if connErr != nil {
			return fmt.Errorf("could not connect to redis: %w", connErr)
		}

		mirror := redis.New(logger, client, conf.Redis.ChannelPrefix)
		defer func() {
			if closeErr := mirror.Close(); closeErr != nil {
				log.Error("could not close redis broadcaster", "error", closeErr)
			}
		}()

		ws = websocket.New(logger, bot, mirror, settings)

		log.Info("Mirroring game events to redis", "addr", addr)
	}

	if err = server.New(logger, conf.HTTPPort, ws).Start(ctx); err != nil {
		return fmt.Errorf("HTTP server error: %w", err)
	}

	log.Info("Application context canceled, shutting down", "reason", context.Cause(ctx))

	return nil
}
