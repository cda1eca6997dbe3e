package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

// Engine runs the turn state machine of one game. It is the only mutator of its board
// and is not safe for concurrent use.
type Engine struct {
	board *entity.Board
}

func NewGame() *Engine {
	return &Engine{board: entity.NewBoard()}
}

// Replay rebuilds an engine by applying the recorded moves in order.
func Replay(moves []entity.Move) (*Engine, error) {
	engine := NewGame()

	for i, move := range moves {
		if current := engine.CurrentPlayer(); move.Player != current {
			return nil, fmt.Errorf("move %d: %w: expected %q, got %q", i, apperror.ErrNotYourTurn, current, move.Player)
		}

		if _, err := engine.ApplyMove(move.Row, move.Col); err != nil {
			return nil, fmt.Errorf("move %d: %w", i, err)
		}
	}

	return engine, nil
}

// ApplyMove places the current player's mark and reports the result.
func (that *Engine) ApplyMove(row, col int) (Outcome, error) {
	state := that.State()
	if state.IsTerminal() {
		return Outcome{}, apperror.ErrGameOver
	}

	player := state.Player
	if err := that.board.Place(row, col, player); err != nil {
		return Outcome{}, fmt.Errorf("invalid turn: %w", err)
	}

	// a winning move that also fills the board is a win
	if HasWin(that.board.Snapshot(), player) {
		return Outcome{Result: ResultWin, Winner: player}, nil
	}

	if that.board.IsFull() {
		return Outcome{Result: ResultDraw}, nil
	}

	return Outcome{Result: ResultContinue}, nil
}

// CurrentPlayer returns the player to move, or PlayerNone once the game is over.
func (that *Engine) CurrentPlayer() entity.Player {
	state := that.State()
	if state.IsTerminal() {
		return entity.PlayerNone
	}

	return state.Player
}

func (that *Engine) State() State {
	return Evaluate(that.board.Snapshot())
}

func (that *Engine) Snapshot() entity.Snapshot {
	return that.board.Snapshot()
}

func (that *Engine) Reset() {
	that.board.Reset()
}
