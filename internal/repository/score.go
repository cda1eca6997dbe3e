package repository

import (
	"context"
	"fmt"
	"strconv"

	"github.com/redis/go-redis/v9"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

const (
	scoresKey = "scores"

	fieldXWins = "x_wins"
	fieldOWins = "o_wins"
	fieldDraws = "draws"
)

type ScoreRepository interface {
	// Add counts one finished game. PlayerNone counts a draw.
	Add(ctx context.Context, winner entity.Player) error
	Get(ctx context.Context) (*entity.Tally, error)
	Reset(ctx context.Context) error
}

type dbScore struct {
	client *redis.Client
}

func NewScoreRepository(client *redis.Client) ScoreRepository {
	return &dbScore{
		client: client,
	}
}

func (that *dbScore) Add(ctx context.Context, winner entity.Player) error {
	if err := that.client.HIncrBy(ctx, scoresKey, scoreField(winner), 1).Err(); err != nil {
		return fmt.Errorf("failed to increment score: %w", err)
	}

	return nil
}

func (that *dbScore) Get(ctx context.Context) (*entity.Tally, error) {
	fields, err := that.client.HGetAll(ctx, scoresKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get scores: %w", err)
	}

	tally := &entity.Tally{}
	for field, target := range map[string]*int{fieldXWins: &tally.XWins, fieldOWins: &tally.OWins, fieldDraws: &tally.Draws} {
		value, ok := fields[field]
		if !ok {
			continue
		}

		if *target, err = strconv.Atoi(value); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", field, err)
		}
	}

	return tally, nil
}

func (that *dbScore) Reset(ctx context.Context) error {
	if err := that.client.Del(ctx, scoresKey).Err(); err != nil {
		return fmt.Errorf("failed to reset scores: %w", err)
	}

	return nil
}

func scoreField(winner entity.Player) string {
	switch winner {
	case entity.PlayerX:
		return fieldXWins
	case entity.PlayerO:
		return fieldOWins
	default:
		return fieldDraws
	}
}
