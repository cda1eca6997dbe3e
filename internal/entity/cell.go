package entity

import "fmt"

// Cell holds either nothing or the mark of one player.
type Cell uint8

const EmptyCell Cell = 0

// MarkOf returns the cell value holding p's mark.
func MarkOf(p Player) Cell {
	return Cell(p)
}

// Player returns the owner of the mark, false for an empty cell.
func (that Cell) Player() (Player, bool) {
	p := Player(that)
	return p, p.Valid()
}

func (that Cell) IsEmpty() bool {
	return that == EmptyCell
}

func (that Cell) MarshalText() ([]byte, error) {
	return []byte(Player(that).String()), nil
}

func (that *Cell) UnmarshalText(text []byte) error {
	p, err := ParsePlayer(string(text))
	if err != nil {
		return fmt.Errorf("failed to parse cell: %w", err)
	}

	*that = MarkOf(p)
	return nil
}

// Position addresses a cell by row and column.
type Position struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func (that Position) Valid() bool {
	return that.Row >= 0 && that.Row < Size && that.Col >= 0 && that.Col < Size
}

func (that Position) String() string {
	return fmt.Sprintf("(%d,%d)", that.Row, that.Col)
}

// Move is a single placement request.
type Move struct {
	Row    int    `json:"row"`
	Col    int    `json:"col"`
	Player Player `json:"player"`
}

func (that Move) Position() Position {
	return Position{Row: that.Row, Col: that.Col}
}
