package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/tictactoe"
)

// ScoreService keeps the running tally of finished games. The engine itself never counts.
type ScoreService interface {
	Record(ctx context.Context, outcome tictactoe.Outcome) error
	GetScores(ctx context.Context) (*entity.Tally, error)
	ResetScores(ctx context.Context) error
	ExportScores(ctx context.Context) (string, error)
}

type scoreRepo interface {
	Add(ctx context.Context, winner entity.Player) error
	Get(ctx context.Context) (*entity.Tally, error)
	Reset(ctx context.Context) error
}

type scoreLog interface {
	Append(ctx context.Context, tally entity.Tally) (string, error)
}

type scoreService struct {
	logger *slog.Logger

	scoreRepo scoreRepo
	scoreLog  scoreLog
}

func NewScoreService(logger *slog.Logger, scoreRepo scoreRepo, scoreLog scoreLog) ScoreService {
	return &scoreService{
		logger:    logger.With("component", "score"),
		scoreRepo: scoreRepo,
		scoreLog:  scoreLog,
	}
}

// Record counts a terminal outcome. Continue is ignored.
func (that *scoreService) Record(ctx context.Context, outcome tictactoe.Outcome) error {
	var winner entity.Player

	switch outcome.Result {
	case tictactoe.ResultWin:
		winner = outcome.Winner
	case tictactoe.ResultDraw:
		winner = entity.PlayerNone
	default:
		return nil
	}

	if err := that.scoreRepo.Add(ctx, winner); err != nil {
		return fmt.Errorf("failed to record outcome: %w", err)
	}

	that.logger.Debug("outcome recorded", "result", outcome.Result.String(), "winner", winner.String())

	return nil
}

func (that *scoreService) GetScores(ctx context.Context) (*entity.Tally, error) {
	tally, err := that.scoreRepo.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get scores: %w", err)
	}

	return tally, nil
}

func (that *scoreService) ResetScores(ctx context.Context) error {
	if err := that.scoreRepo.Reset(ctx); err != nil {
		return fmt.Errorf("failed to reset scores: %w", err)
	}

	that.logger.Info("scores reset")

	return nil
}

// ExportScores appends the current tally to the score log and returns where it was written.
func (that *scoreService) ExportScores(ctx context.Context) (string, error) {
	tally, err := that.GetScores(ctx)
	if err != nil {
		return "", err
	}

	path, err := that.scoreLog.Append(ctx, *tally)
	if err != nil {
		return "", fmt.Errorf("failed to export scores: %w", err)
	}

	that.logger.Info("scores exported", "path", path)

	return path, nil
}
