package application

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/tictactoe-engine/internal/config"
	"github.com/rocketscienceinc/tictactoe-engine/internal/repository"
	"github.com/rocketscienceinc/tictactoe-engine/internal/repository/storage"
	"github.com/rocketscienceinc/tictactoe-engine/internal/service"
	"github.com/rocketscienceinc/tictactoe-engine/transport/rest"
)

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	gameRepo, scoreRepo, closeStorage, err := initStorage(ctx, conf)
	if err != nil {
		return err
	}
	defer func() {
		if err := closeStorage(); err != nil {
			log.Error("could not close storage", "error", err)
		}
	}()

	scoreLog := repository.NewScoreLog(conf.Scores.ExportFile)
	log.Info("Score export file", "path", scoreLog.Path())

	bot := service.NewBotService()
	scoreService := service.NewScoreService(logger, scoreRepo, scoreLog)
	gameService := service.NewGameService(gameRepo)
	gamePlayService := service.NewGamePlayService(logger, gameService, scoreService, bot)

	router := rest.NewRouter(logger, gamePlayService, scoreService, bot)

	log.Info("Starting HTTP server", "port", conf.HTTPPort, "storage", conf.Storage.Driver)
	if err = rest.Start(ctx, conf.HTTPPort, router); err != nil {
		return fmt.Errorf("HTTP server error: %w", err)
	}

	log.Info("Application context canceled, shutting down")

	return nil
}

func initStorage(ctx context.Context, conf *config.Config) (repository.GameRepository, repository.ScoreRepository, func() error, error) {
	if conf.Storage.Driver != config.StorageRedis {
		noop := func() error { return nil }
		return repository.NewMemoryGameRepository(), repository.NewMemoryScoreRepository(), noop, nil
	}

	client, err := storage.NewRedisStorage(ctx, conf.Redis.GetRedisAddr())
	if err != nil {
		return nil, nil, nil, fmt.Errorf("could not connect to redis storage: %w", err)
	}

	return repository.NewGameRepository(client, conf.Redis.TTL), repository.NewScoreRepository(client), client.Close, nil
}
