package service

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/tictactoe"
)

type GamePlayService interface {
	NewGame(ctx context.Context, mode string) (*entity.Game, error)
	GetGame(ctx context.Context, gameID string) (*entity.Game, error)
	RestartGame(ctx context.Context, gameID string) (*entity.Game, error)
	DeleteGame(ctx context.Context, gameID string) error

	MakeTurn(ctx context.Context, gameID string, row, col int) (*entity.Game, error)
}

type gamePlayService struct {
	logger *slog.Logger

	// mu serializes load, apply and save so a session never sees two writers.
	mu sync.Mutex

	gameService  GameService
	scoreService ScoreService
	strategy     Strategy
}

func NewGamePlayService(logger *slog.Logger, gameService GameService, scoreService ScoreService, strategy Strategy) GamePlayService {
	return &gamePlayService{
		logger:       logger.With("component", "gameplay"),
		gameService:  gameService,
		scoreService: scoreService,
		strategy:     strategy,
	}
}

func (that *gamePlayService) NewGame(ctx context.Context, mode string) (*entity.Game, error) {
	game, err := that.gameService.CreateGame(ctx, mode)
	if err != nil {
		return nil, fmt.Errorf("failed to create new game: %w", err)
	}

	that.logger.Info("game created", "gameID", game.ID, "mode", game.Mode)

	return game, nil
}

func (that *gamePlayService) GetGame(ctx context.Context, gameID string) (*entity.Game, error) {
	game, err := that.gameService.GetGameByID(ctx, gameID)
	if err != nil {
		return nil, fmt.Errorf("failed to get game by id: %w", err)
	}

	return game, nil
}

// MakeTurn applies the move for the player to move. In a bot game the bot answers right away
// unless the move ended the game.
func (that *gamePlayService) MakeTurn(ctx context.Context, gameID string, row, col int) (*entity.Game, error) {
	log := that.logger.With("method", "MakeTurn", "gameID", gameID)

	that.mu.Lock()
	defer that.mu.Unlock()

	game, err := that.gameService.GetGameByID(ctx, gameID)
	if err != nil {
		return nil, fmt.Errorf("failed to get game by id: %w", err)
	}

	engine, err := tictactoe.Replay(game.Moves)
	if err != nil {
		return nil, fmt.Errorf("failed to restore game: %w", err)
	}

	if game.IsWithBot() && engine.CurrentPlayer() == game.BotMark {
		return nil, apperror.ErrNotYourTurn
	}

	outcome, err := applyMove(game, engine, row, col)
	if err != nil {
		return nil, fmt.Errorf("failed to make turn: %w", err)
	}

	if !outcome.IsTerminal() && game.IsWithBot() {
		if outcome, err = that.makeBotTurn(game, engine); err != nil {
			return nil, fmt.Errorf("bot failed to make turn: %w", err)
		}

		log.Debug("bot moved", "board", game.Board.String())
	}

	if err = that.gameService.UpdateGame(ctx, game); err != nil {
		return nil, fmt.Errorf("failed to update game: %w", err)
	}

	if outcome.IsTerminal() {
		log.Info("game finished", "result", outcome.Result.String(), "winner", game.Winner)

		if err = that.scoreService.Record(ctx, outcome); err != nil {
			return nil, fmt.Errorf("failed to record score: %w", err)
		}
	}

	return game, nil
}

func (that *gamePlayService) makeBotTurn(game *entity.Game, engine *tictactoe.Engine) (tictactoe.Outcome, error) {
	pos, ok := that.strategy.SelectMove(engine.Snapshot(), game.BotMark)
	if !ok {
		return tictactoe.Outcome{}, apperror.ErrNoAvailableMoves
	}

	return applyMove(game, engine, pos.Row, pos.Col)
}

// RestartGame clears the board and history but keeps the mode.
func (that *gamePlayService) RestartGame(ctx context.Context, gameID string) (*entity.Game, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	game, err := that.gameService.GetGameByID(ctx, gameID)
	if err != nil {
		return nil, fmt.Errorf("failed to get game by id: %w", err)
	}

	game.Moves = []entity.Move{}
	syncGame(game, tictactoe.NewGame())

	if err = that.gameService.UpdateGame(ctx, game); err != nil {
		return nil, fmt.Errorf("failed to update game: %w", err)
	}

	that.logger.Info("game restarted", "gameID", gameID)

	return game, nil
}

func (that *gamePlayService) DeleteGame(ctx context.Context, gameID string) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	if err := that.gameService.DeleteGame(ctx, gameID); err != nil {
		return fmt.Errorf("failed to delete game: %w", err)
	}

	return nil
}

// applyMove runs one move through the engine and records it on the game.
func applyMove(game *entity.Game, engine *tictactoe.Engine, row, col int) (tictactoe.Outcome, error) {
	player := engine.CurrentPlayer()

	outcome, err := engine.ApplyMove(row, col)
	if err != nil {
		return tictactoe.Outcome{}, err
	}

	game.Moves = append(game.Moves, entity.Move{Row: row, Col: col, Player: player})
	syncGame(game, engine)

	return outcome, nil
}

// syncGame copies the engine's derived state onto the stored game.
func syncGame(game *entity.Game, engine *tictactoe.Engine) {
	game.Board = engine.Snapshot()
	game.Turn = engine.CurrentPlayer()

	switch state := engine.State(); state.Status {
	case tictactoe.StatusWon:
		game.Status = entity.StatusFinished
		game.Winner = state.Player.String()
	case tictactoe.StatusDraw:
		game.Status = entity.StatusFinished
		game.Winner = entity.WinnerTie
	default:
		game.Status = entity.StatusOngoing
		game.Winner = ""
	}
}
