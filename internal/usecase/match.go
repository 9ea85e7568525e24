package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/rocketscienceinc/gomokun/internal/apperror"
	"github.com/rocketscienceinc/gomokun/internal/entity"
	"github.com/rocketscienceinc/gomokun/internal/gomoku"
	"github.com/rocketscienceinc/gomokun/internal/pkg"
)

// UI is how a match talks to the players.
type UI interface {
	AskSize() (int, error)
	AskMove(player int) (int, int, error)

	ShowBoard(board string)
	ShowInvalidSize(size int)
	ShowOutOfBounds()
	ShowOccupied()
	ShowWinner(player int)
	ShowDraw()
	ShowTally(tally entity.Tally)
}

type resultRepo interface {
	Record(ctx context.Context, result *entity.Result) error
	Totals(ctx context.Context) (entity.Tally, error)
}

type MatchManager struct {
	logger     *slog.Logger
	resultRepo resultRepo

	size int
	now  func() time.Time
}

// NewMatchManager - size 0 asks the players for the board size. resultRepo may be nil.
func NewMatchManager(logger *slog.Logger, resultRepo resultRepo, size int) *MatchManager {
	return &MatchManager{
		logger:     logger,
		resultRepo: resultRepo,
		size:       size,
		now:        time.Now,
	}
}

// Play - runs one game to its end and returns its result.
func (that *MatchManager) Play(ctx context.Context, ui UI) (*entity.Result, error) {
	size, err := that.boardSize(ui)
	if err != nil {
		return nil, fmt.Errorf("failed to get board size: %w", err)
	}

	gameID, err := pkg.GenerateGameID()
	if err != nil {
		return nil, fmt.Errorf("failed to start game: %w", err)
	}

	log := that.logger.With("method", "Play", "game_id", gameID)

	game := gomoku.NewGame(size)
	log.Info("game started", "size", size, "side", game.Board().Side())

	ui.ShowBoard(game.Board().Render())

	for !game.IsFinished() {
		if err = ctx.Err(); err != nil {
			return nil, fmt.Errorf("%w: %w", apperror.ErrInterrupted, err)
		}

		if err = that.playTurn(game, ui, log); err != nil {
			return nil, err
		}
	}

	result := &entity.Result{
		ID:         gameID,
		Size:       size,
		Winner:     entity.PlayerNumber(game.Winner()),
		Moves:      game.Moves(),
		FinishedAt: that.now().UTC(),
	}

	if result.IsDraw() {
		ui.ShowDraw()
	} else {
		ui.ShowWinner(result.Winner)
	}

	log.Info("game finished", "status", game.Status(), "winner", result.Winner, "moves", result.Moves)

	that.recordResult(ctx, ui, result)

	return result, nil
}

// playTurn - asks the current player for a move until one is accepted.
func (that *MatchManager) playTurn(game *gomoku.Game, ui UI, log *slog.Logger) error {
	player := entity.PlayerNumber(game.Turn())

	x, y, err := ui.AskMove(player)
	if err != nil {
		return fmt.Errorf("failed to read move: %w", err)
	}

	status, err := game.MakeMove(x, y)
	switch {
	case errors.Is(err, apperror.ErrOutOfBounds):
		log.Debug("move rejected", "player", player, "x", x, "y", y, "error", err)
		ui.ShowOutOfBounds()
		return nil
	case errors.Is(err, apperror.ErrCellOccupied):
		log.Debug("move rejected", "player", player, "x", x, "y", y, "error", err)
		ui.ShowOccupied()
		return nil
	case err != nil:
		return fmt.Errorf("failed make move: %w", err)
	}

	log.Debug("move accepted", "player", player, "x", x, "y", y, "moves", game.Moves(), "status", status)
	ui.ShowBoard(game.Board().Render())

	return nil
}

func (that *MatchManager) boardSize(ui UI) (int, error) {
	if that.size != 0 {
		if that.size <= 2 {
			return 0, fmt.Errorf("%w: got %d", apperror.ErrInvalidSize, that.size)
		}
		return that.size, nil
	}

	for {
		size, err := ui.AskSize()
		if err != nil {
			return 0, err
		}

		if size > 2 {
			return size, nil
		}

		ui.ShowInvalidSize(size)
	}
}

// recordResult - failures are logged only, the game result stands.
func (that *MatchManager) recordResult(ctx context.Context, ui UI, result *entity.Result) {
	if that.resultRepo == nil {
		return
	}

	log := that.logger.With("method", "recordResult", "game_id", result.ID)

	if err := that.resultRepo.Record(ctx, result); err != nil {
		log.Error("failed to record result", "error", err)
		return
	}

	tally, err := that.resultRepo.Totals(ctx)
	if err != nil {
		log.Error("failed to get totals", "error", err)
		return
	}

	ui.ShowTally(tally)
}
