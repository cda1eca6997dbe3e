package entity

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
)

// Player is one of the two sides. The zero value means "no player".
type Player uint8

const (
	PlayerNone Player = iota
	PlayerX
	PlayerO
)

func (that Player) Valid() bool {
	return that == PlayerX || that == PlayerO
}

// Opponent returns the other side. PlayerNone has no opponent.
func (that Player) Opponent() Player {
	switch that {
	case PlayerX:
		return PlayerO
	case PlayerO:
		return PlayerX
	default:
		return PlayerNone
	}
}

func (that Player) String() string {
	switch that {
	case PlayerX:
		return "X"
	case PlayerO:
		return "O"
	default:
		return ""
	}
}

func (that Player) MarshalText() ([]byte, error) {
	return []byte(that.String()), nil
}

func (that *Player) UnmarshalText(text []byte) error {
	player, err := ParsePlayer(string(text))
	if err != nil {
		return err
	}

	*that = player
	return nil
}

// ParsePlayer accepts "X", "O" and "" (no player).
func ParsePlayer(s string) (Player, error) {
	switch s {
	case "X", "x":
		return PlayerX, nil
	case "O", "o":
		return PlayerO, nil
	case "":
		return PlayerNone, nil
	default:
		return PlayerNone, fmt.Errorf("%w: %q", apperror.ErrInvalidPlayer, s)
	}
}
