package repository

import (
	"context"
	"sync"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

type memoryGame struct {
	mu    sync.RWMutex
	games map[string]entity.Game
}

// NewMemoryGameRepository keeps games in process memory.
func NewMemoryGameRepository() GameRepository {
	return &memoryGame{
		games: make(map[string]entity.Game),
	}
}

func (that *memoryGame) CreateOrUpdate(_ context.Context, game *entity.Game) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.games[game.ID] = cloneGame(*game)

	return nil
}

func (that *memoryGame) GetByID(_ context.Context, id string) (*entity.Game, error) {
	that.mu.RLock()
	defer that.mu.RUnlock()

	game, ok := that.games[id]
	if !ok {
		return nil, apperror.ErrGameNotFound
	}

	clone := cloneGame(game)
	return &clone, nil
}

func (that *memoryGame) DeleteByID(_ context.Context, id string) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	if _, ok := that.games[id]; !ok {
		return apperror.ErrGameNotFound
	}

	delete(that.games, id)

	return nil
}

// cloneGame copies the move history so callers never share it with the store.
func cloneGame(game entity.Game) entity.Game {
	game.Moves = append([]entity.Move{}, game.Moves...)
	return game
}

type memoryScore struct {
	mu    sync.Mutex
	tally entity.Tally
}

func NewMemoryScoreRepository() ScoreRepository {
	return &memoryScore{}
}

func (that *memoryScore) Add(_ context.Context, winner entity.Player) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	switch winner {
	case entity.PlayerX:
		that.tally.XWins++
	case entity.PlayerO:
		that.tally.OWins++
	default:
		that.tally.Draws++
	}

	return nil
}

func (that *memoryScore) Get(_ context.Context) (*entity.Tally, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	tally := that.tally
	return &tally, nil
}

func (that *memoryScore) Reset(_ context.Context) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.tally = entity.Tally{}

	return nil
}
