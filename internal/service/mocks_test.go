package service

import (
	"context"

	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/stretchr/testify/mock"
)

type mockGameRepo struct {
	mock.Mock
}

func (that *mockGameRepo) CreateOrUpdate(ctx context.Context, game *entity.Game) error {
	args := that.Called(ctx, game)
	return args.Error(0)
}

func (that *mockGameRepo) GetByID(ctx context.Context, id string) (*entity.Game, error) {
	args := that.Called(ctx, id)
	game, _ := args.Get(0).(*entity.Game)
	return game, args.Error(1)
}

func (that *mockGameRepo) DeleteByID(ctx context.Context, id string) error {
	args := that.Called(ctx, id)
	return args.Error(0)
}

type mockScoreRepo struct {
	mock.Mock
}

func (that *mockScoreRepo) Add(ctx context.Context, winner entity.Player) error {
	args := that.Called(ctx, winner)
	return args.Error(0)
}

func (that *mockScoreRepo) Get(ctx context.Context) (*entity.Tally, error) {
	args := that.Called(ctx)
	tally, _ := args.Get(0).(*entity.Tally)
	return tally, args.Error(1)
}

func (that *mockScoreRepo) Reset(ctx context.Context) error {
	args := that.Called(ctx)
	return args.Error(0)
}

type mockScoreLog struct {
	mock.Mock
}

func (that *mockScoreLog) Append(ctx context.Context, tally entity.Tally) (string, error) {
	args := that.Called(ctx, tally)
	return args.String(0), args.Error(1)
}

type mockStrategy struct {
	mock.Mock
}

func (that *mockStrategy) SelectMove(board entity.Snapshot, opponent entity.Player) (entity.Position, bool) {
	args := that.Called(board, opponent)
	return args.Get(0).(entity.Position), args.Bool(1)
}
