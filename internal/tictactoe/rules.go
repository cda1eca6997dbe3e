package tictactoe

import "github.com/rocketscienceinc/tictactoe-engine/internal/entity"

// WinLines are the 8 lines that win the game: 3 rows, 3 columns and 2 diagonals.
var WinLines = [8][3]entity.Position{
	{{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 0, Col: 2}},
	{{Row: 1, Col: 0}, {Row: 1, Col: 1}, {Row: 1, Col: 2}},
	{{Row: 2, Col: 0}, {Row: 2, Col: 1}, {Row: 2, Col: 2}},
	{{Row: 0, Col: 0}, {Row: 1, Col: 0}, {Row: 2, Col: 0}},
	{{Row: 0, Col: 1}, {Row: 1, Col: 1}, {Row: 2, Col: 1}},
	{{Row: 0, Col: 2}, {Row: 1, Col: 2}, {Row: 2, Col: 2}},
	{{Row: 0, Col: 0}, {Row: 1, Col: 1}, {Row: 2, Col: 2}},
	{{Row: 0, Col: 2}, {Row: 1, Col: 1}, {Row: 2, Col: 0}},
}

// HasWin reports whether any line is fully marked by player.
func HasWin(board entity.Snapshot, player entity.Player) bool {
	mark := entity.MarkOf(player)
	for _, line := range WinLines {
		if board.At(line[0]) == mark && board.At(line[1]) == mark && board.At(line[2]) == mark {
			return true
		}
	}

	return false
}

type Status uint8

const (
	StatusInProgress Status = iota
	StatusWon
	StatusDraw
)

func (that Status) String() string {
	switch that {
	case StatusWon:
		return "won"
	case StatusDraw:
		return "draw"
	default:
		return "in_progress"
	}
}

// State is InProgress(player to move), Won(winner) or Draw.
type State struct {
	Status Status
	Player entity.Player
}

func (that State) IsTerminal() bool {
	return that.Status != StatusInProgress
}

// Evaluate derives the game state from the board contents. X always moves first, so the
// player to move follows from the number of marks.
func Evaluate(board entity.Snapshot) State {
	switch {
	case HasWin(board, entity.PlayerX):
		return State{Status: StatusWon, Player: entity.PlayerX}
	case HasWin(board, entity.PlayerO):
		return State{Status: StatusWon, Player: entity.PlayerO}
	case board.IsFull():
		return State{Status: StatusDraw}
	}

	if board.Count(entity.PlayerX) > board.Count(entity.PlayerO) {
		return State{Status: StatusInProgress, Player: entity.PlayerO}
	}

	return State{Status: StatusInProgress, Player: entity.PlayerX}
}

type Result uint8

const (
	ResultContinue Result = iota
	ResultWin
	ResultDraw
)

func (that Result) String() string {
	switch that {
	case ResultWin:
		return "win"
	case ResultDraw:
		return "draw"
	default:
		return "continue"
	}
}

// Outcome is what a single move produced. Winner is set only for ResultWin.
type Outcome struct {
	Result Result
	Winner entity.Player
}

func (that Outcome) IsTerminal() bool {
	return that.Result != ResultContinue
}
