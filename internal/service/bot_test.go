package service

import (
	"testing"

	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectMove(t *testing.T) {
	tests := []struct {
		name     string
		board    string
		opponent entity.Player
		expected entity.Position
	}{
		{
			name:     "Empty board takes the center",
			board:    ".........",
			opponent: entity.PlayerO,
			expected: entity.Position{Row: 1, Col: 1},
		},
		{
			name:     "Blocks X's top row instead of taking the center",
			board:    "XX.......",
			opponent: entity.PlayerO,
			expected: entity.Position{Row: 0, Col: 2},
		},
		{
			name:     "Completes its own row before anything else",
			board:    "...OO....",
			opponent: entity.PlayerO,
			expected: entity.Position{Row: 1, Col: 2},
		},
		{
			name: "Winning beats blocking",
			// X X . / O O . / X . .
			board:    "XX.OO.X..",
			opponent: entity.PlayerO,
			expected: entity.Position{Row: 1, Col: 2},
		},
		{
			name: "First winning cell in row-major order",
			// O . O / . . . / O . .
			board:    "O.O...O..",
			opponent: entity.PlayerO,
			expected: entity.Position{Row: 0, Col: 1},
		},
		{
			name: "First blocking cell in row-major order",
			// X . X / . X . / . . .  X threatens (0,1), (2,0) and (2,2)
			board:    "X.X.X....",
			opponent: entity.PlayerO,
			expected: entity.Position{Row: 0, Col: 1},
		},
		{
			name: "Corner when the center is taken",
			// . . . / . X . / . . .
			board:    "....X....",
			opponent: entity.PlayerO,
			expected: entity.Position{Row: 0, Col: 0},
		},
		{
			name: "Next free corner in fixed order",
			// O . . / . X . / . . X
			board:    "O...X...X",
			opponent: entity.PlayerO,
			expected: entity.Position{Row: 0, Col: 2},
		},
		{
			name: "Side when center and corners are taken",
			// X . O / . O . / X . X  -> X threatens (2,1) and (1,0): block first row-major
			board:    "X.O.O.X.X",
			opponent: entity.PlayerO,
			expected: entity.Position{Row: 1, Col: 0},
		},
		{
			name: "Side in fixed order with no threats",
			// X O X / . X . / O X O
			board:    "XOX.X.OXO",
			opponent: entity.PlayerO,
			expected: entity.Position{Row: 1, Col: 0},
		},
		{
			name:     "Plays for X as well",
			board:    "O.O.X.X..",
			opponent: entity.PlayerX,
			expected: entity.Position{Row: 0, Col: 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Given: a board
			board, err := entity.ParseSnapshot(tt.board)
			require.NoError(t, err)

			// When: the bot selects a move
			pos, ok := SelectMove(board, tt.opponent)

			// Then: it picks exactly the expected cell
			require.True(t, ok)
			assert.Equal(t, tt.expected, pos)

			// And: the board it was given is untouched
			assert.Equal(t, tt.board, board.String())
		})
	}
}

func TestSelectMove_FullBoard(t *testing.T) {
	board, err := entity.ParseSnapshot("XOXXOOOXX")
	require.NoError(t, err)

	_, ok := NewBotService().SelectMove(board, entity.PlayerO)

	assert.False(t, ok)
}
