package entity

const (
	StatusFinished = "finished"
	StatusOngoing  = "ongoing"

	PlayerX = "X"
	PlayerO = "O"

	// PlayerTie marks a full board without a winner in DetermineGameResult;
	// it is never stored in Winner.
	PlayerTie = "-"

	EmptyCell = ""
)

// BoardSize is the side length of the grid; the board itself is kept flat.
const BoardSize = 3

var WinCombos = [][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

// Game holds the full state of one match: the board, whose turn it is,
// the winner mark once decided, and the lifecycle status.
type Game struct {
	Board  [9]string
	Turn   string
	Winner string
	Status string
}

// NewGame - returns a game in the initial configuration: empty board, X to move.
func NewGame() *Game {
	return &Game{
		Board:  [9]string{EmptyCell, EmptyCell, EmptyCell, EmptyCell, EmptyCell, EmptyCell, EmptyCell, EmptyCell, EmptyCell},
		Turn:   PlayerX,
		Status: StatusOngoing,
	}
}

// CellIndex - maps (row, col) coordinates to the flat board index.
func CellIndex(row, col int) int {
	return row*BoardSize + col
}

// InRange - reports whether (row, col) addresses a cell on the board.
func InRange(row, col int) bool {
	return row >= 0 && row < BoardSize && col >= 0 && col < BoardSize
}

// CellAt - returns the mark at (row, col), or EmptyCell for out-of-range coordinates.
func (that *Game) CellAt(row, col int) string {
	if !InRange(row, col) {
		return EmptyCell
	}
	return that.Board[CellIndex(row, col)]
}

// CheckWinner - reports whether mark fully occupies any of the eight win lines.
func (that *Game) CheckWinner(mark string) bool {
	if mark == EmptyCell {
		return false
	}

	for _, combo := range WinCombos {
		if that.Board[combo[0]] == mark && that.Board[combo[1]] == mark && that.Board[combo[2]] == mark {
			return true
		}
	}

	return false
}

// CheckDraw - reports whether every cell is occupied. Callers must check for a
// winner first: a full board with a completed line is a win, not a draw.
func (that *Game) CheckDraw() bool {
	for _, cell := range that.Board {
		if cell == EmptyCell {
			return false
		}
	}

	return true
}

// DetermineGameResult - returns the winner mark, PlayerTie for a full board
// without a winner, or EmptyCell while the game is undecided.
func (that *Game) DetermineGameResult() string {
	for _, combo := range WinCombos {
		a, b, c := that.Board[combo[0]], that.Board[combo[1]], that.Board[combo[2]]
		if a != EmptyCell && a == b && b == c {
			return a
		}
	}

	// the game continues until all the squares are full
	for _, cell := range that.Board {
		if cell == EmptyCell {
			return EmptyCell
		}
	}

	return PlayerTie
}

func (that *Game) IsFinished() bool {
	return that.Status == StatusFinished
}

func (that *Game) IsOngoing() bool {
	return that.Status == StatusOngoing
}

// IsDraw - reports whether the game ended with no winner.
func (that *Game) IsDraw() bool {
	return that.IsFinished() && that.Winner == EmptyCell
}
