package service

import (
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/tictactoe"
)

// Strategy proposes the next move for the automated player.
type Strategy interface {
	SelectMove(board entity.Snapshot, opponent entity.Player) (entity.Position, bool)
}

var (
	center  = entity.Position{Row: 1, Col: 1}
	corners = []entity.Position{{Row: 0, Col: 0}, {Row: 0, Col: 2}, {Row: 2, Col: 0}, {Row: 2, Col: 2}}
	sides   = []entity.Position{{Row: 0, Col: 1}, {Row: 1, Col: 0}, {Row: 1, Col: 2}, {Row: 2, Col: 1}}
)

type botService struct{}

// NewBotService returns the fixed-priority heuristic opponent.
func NewBotService() Strategy {
	return &botService{}
}

func (that *botService) SelectMove(board entity.Snapshot, opponent entity.Player) (entity.Position, bool) {
	return SelectMove(board, opponent)
}

// SelectMove picks the move for opponent, first rule wins: complete a line, block the other
// player's line, center, corners, sides. It returns false only for a full board.
func SelectMove(board entity.Snapshot, opponent entity.Player) (entity.Position, bool) {
	if pos, ok := findWinningMove(board, opponent); ok {
		return pos, true
	}

	if pos, ok := findWinningMove(board, opponent.Opponent()); ok {
		return pos, true
	}

	if board.IsEmpty(center) {
		return center, true
	}

	for _, pos := range corners {
		if board.IsEmpty(pos) {
			return pos, true
		}
	}

	for _, pos := range sides {
		if board.IsEmpty(pos) {
			return pos, true
		}
	}

	return entity.Position{}, false
}

// findWinningMove returns the first empty cell, row-major, that completes a line for player.
func findWinningMove(board entity.Snapshot, player entity.Player) (entity.Position, bool) {
	for _, pos := range board.EmptyPositions() {
		if tictactoe.HasWin(board.With(pos, player), player) {
			return pos, true
		}
	}

	return entity.Position{}, false
}
