package entity

import (
	"fmt"
	"time"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
)

const (
	StatusFinished = "finished"
	StatusOngoing  = "ongoing"

	// WinnerTie is stored as the winner of a drawn game.
	WinnerTie = "-"
)

const (
	ModeHuman = "human"
	ModeBot   = "bot"
)

// Game is a hosted session: the move history plus the state derived from it.
type Game struct {
	ID        string    `json:"id"`
	Mode      string    `json:"mode"`
	BotMark   Player    `json:"bot_mark,omitempty"`
	Board     Snapshot  `json:"board"`
	Moves     []Move    `json:"moves"`
	Status    string    `json:"status"`
	Winner    string    `json:"winner"`
	Turn      Player    `json:"player_turn"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func NewGame(id, mode string, now time.Time) (*Game, error) {
	if err := ValidateMode(mode); err != nil {
		return nil, err
	}

	game := &Game{
		ID:        id,
		Mode:      mode,
		Moves:     []Move{},
		Status:    StatusOngoing,
		Turn:      PlayerX,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if mode == ModeBot {
		game.BotMark = PlayerO
	}

	return game, nil
}

func ValidateMode(mode string) error {
	switch mode {
	case ModeHuman, ModeBot:
		return nil
	default:
		return fmt.Errorf("%w: %q", apperror.ErrInvalidMode, mode)
	}
}

func (that *Game) IsFinished() bool {
	return that.Status == StatusFinished
}

func (that *Game) IsOngoing() bool {
	return that.Status == StatusOngoing
}

func (that *Game) IsWithBot() bool {
	return that.Mode == ModeBot
}

// Tally is the running score across games.
type Tally struct {
	XWins int `json:"x_wins"`
	OWins int `json:"o_wins"`
	Draws int `json:"draws"`
}
