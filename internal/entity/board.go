package entity

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
)

// Size is the side length of the board.
const Size = 3

// Snapshot is an immutable copy of the board contents, indexed [row][col].
type Snapshot [Size][Size]Cell

// Board owns the mutable cell state of a single game.
type Board struct {
	cells Snapshot
}

func NewBoard() *Board {
	return &Board{}
}

// BoardFrom builds a board holding the given contents.
func BoardFrom(snapshot Snapshot) *Board {
	return &Board{cells: snapshot}
}

func (that *Board) IsEmpty(row, col int) (bool, error) {
	if err := checkRange(row, col); err != nil {
		return false, err
	}

	return that.cells[row][col].IsEmpty(), nil
}

// Place marks the cell for player. The board is left untouched on error.
func (that *Board) Place(row, col int, player Player) error {
	if !player.Valid() {
		return fmt.Errorf("%w: %d", apperror.ErrInvalidPlayer, player)
	}

	empty, err := that.IsEmpty(row, col)
	if err != nil {
		return err
	}

	if !empty {
		return fmt.Errorf("%w: %s", apperror.ErrIllegalMove, Position{Row: row, Col: col})
	}

	that.cells[row][col] = MarkOf(player)

	return nil
}

func (that *Board) IsFull() bool {
	return that.cells.IsFull()
}

func (that *Board) Snapshot() Snapshot {
	return that.cells
}

func (that *Board) Reset() {
	that.cells = Snapshot{}
}

func checkRange(row, col int) error {
	if !(Position{Row: row, Col: col}).Valid() {
		return fmt.Errorf("%w: row %d, col %d", apperror.ErrOutOfRange, row, col)
	}

	return nil
}

func (that Snapshot) At(pos Position) Cell {
	return that[pos.Row][pos.Col]
}

func (that Snapshot) IsEmpty(pos Position) bool {
	return pos.Valid() && that.At(pos).IsEmpty()
}

func (that Snapshot) IsFull() bool {
	for _, row := range that {
		for _, cell := range row {
			if cell.IsEmpty() {
				return false
			}
		}
	}

	return true
}

// Count returns the number of cells marked by player.
func (that Snapshot) Count(player Player) int {
	count := 0
	for _, row := range that {
		for _, cell := range row {
			if cell == MarkOf(player) {
				count++
			}
		}
	}

	return count
}

// With returns a copy of the snapshot with pos marked for player.
func (that Snapshot) With(pos Position, player Player) Snapshot {
	that[pos.Row][pos.Col] = MarkOf(player)
	return that
}

// EmptyPositions lists the empty cells in row-major order.
func (that Snapshot) EmptyPositions() []Position {
	positions := make([]Position, 0, Size*Size)
	for row := range Size {
		for col := range Size {
			if that[row][col].IsEmpty() {
				positions = append(positions, Position{Row: row, Col: col})
			}
		}
	}

	return positions
}

// String renders the board row-major, "." standing for an empty cell.
func (that Snapshot) String() string {
	var sb strings.Builder
	for _, row := range that {
		for _, cell := range row {
			if cell.IsEmpty() {
				sb.WriteByte('.')
				continue
			}
			sb.WriteString(Player(cell).String())
		}
	}

	return sb.String()
}

// ParseSnapshot reads the row-major form produced by String. Both "." and "-" are empty cells.
func ParseSnapshot(s string) (Snapshot, error) {
	var snapshot Snapshot

	if len(s) != Size*Size {
		return snapshot, fmt.Errorf("%w: board must have %d cells, got %d", apperror.ErrInvalidBoard, Size*Size, len(s))
	}

	for i, r := range s {
		switch r {
		case '.', '-':
			continue
		default:
			player, err := ParsePlayer(string(r))
			if err != nil {
				return Snapshot{}, fmt.Errorf("%w: cell %d: %w", apperror.ErrInvalidBoard, i, err)
			}
			snapshot[i/Size][i%Size] = MarkOf(player)
		}
	}

	return snapshot, nil
}
