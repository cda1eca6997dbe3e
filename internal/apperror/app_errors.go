package apperror

import "errors"

var (
	ErrOutOfRange       = errors.New("cell is out of range")
	ErrIllegalMove      = errors.New("cell is already occupied")
	ErrGameOver         = errors.New("game is already finished")
	ErrInvalidPlayer    = errors.New("invalid player")
	ErrNotYourTurn      = errors.New("it's not your turn")
	ErrNoAvailableMoves = errors.New("no available moves")
	ErrGameNotFound     = errors.New("game not found")
	ErrInvalidMode      = errors.New("invalid game mode")
	ErrInvalidBoard     = errors.New("invalid board")
)
