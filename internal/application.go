package application

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/gomokun/internal/apperror"
	"github.com/rocketscienceinc/gomokun/internal/config"
	"github.com/rocketscienceinc/gomokun/internal/entity"
	"github.com/rocketscienceinc/gomokun/internal/repository"
	"github.com/rocketscienceinc/gomokun/internal/repository/storage"
	"github.com/rocketscienceinc/gomokun/internal/usecase"
	"github.com/rocketscienceinc/gomokun/transport/console"
)

var ErrAddrNotFound = errors.New("redis host is empty")

type matchResult struct {
	result *entity.Result
	err    error
}

// RunApp - plays one game over in and out and returns its result.
func RunApp(logger *slog.Logger, conf *config.Config, in io.Reader, out io.Writer) (*entity.Result, error) {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)

	go func() {
		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	var resultRepo repository.ResultRepository
	if conf.Results.Enabled {
		if conf.Results.Redis.Host == "" {
			return nil, ErrAddrNotFound
		}

		redisStorage, err := storage.New(ctx, conf.Results.Redis.GetRedisAddr())
		if err != nil {
			return nil, fmt.Errorf("could not connect to redis storage: %w", err)
		}

		defer func() {
			if err = redisStorage.Close(); err != nil {
				log.Error("could not close redis storage", "error", err)
			}
		}()

		resultRepo = repository.NewResultRepository(redisStorage)
	}

	matchManager := usecase.NewMatchManager(logger, resultRepo, conf.BoardSize)
	prompter := console.New(in, out)

	// reading the console blocks, so the match runs aside and a signal can end the wait
	doneCh := make(chan matchResult, 1)
	go func() {
		result, err := matchManager.Play(ctx, prompter)
		doneCh <- matchResult{result: result, err: err}
	}()

	select {
	case done := <-doneCh:
		if done.err != nil {
			return nil, fmt.Errorf("match failed: %w", done.err)
		}

		if err := prompter.Err(); err != nil {
			log.Error("console output failed", "error", err)
		}

		return done.result, nil
	case <-ctx.Done():
		log.Info("Application context canceled, shutting down")
		return nil, fmt.Errorf("%w: %w", apperror.ErrInterrupted, ctx.Err())
	}
}
