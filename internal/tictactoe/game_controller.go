package tictactoe

import (
	"github.com/rocketscienceinc/tictactoe-terminal/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-terminal/internal/entity"
)

// GameController owns the single game of the session and is its only mutator.
// The UI shell calls MakeTurn and Reset from its event goroutine and re-reads
// the game to redraw.
type GameController struct {
	game *entity.Game
}

func NewGameController(game *entity.Game) *GameController {
	return &GameController{
		game: game,
	}
}

// Game - read access for rendering.
func (that *GameController) Game() *entity.Game {
	return that.game
}

// MakeTurn - places the current player's mark at (row, col).
//
// Returns a sentinel error for a rejected move; the game state is left
// untouched in every error case. On a winning or board-filling move the turn
// is not advanced.
func (that *GameController) MakeTurn(row, col int) error {
	if that.game.IsFinished() {
		return apperror.ErrGameFinished
	}

	if err := validateMove(that.game, row, col); err != nil {
		return err
	}

	mark := that.game.Turn
	that.game.Board[entity.CellIndex(row, col)] = mark
	updateGameStatus(that.game, mark)

	return nil
}

// Reset - returns the game to the initial configuration. Never fails.
func (that *GameController) Reset() {
	*that.game = *entity.NewGame()
}

// validateMove - checks if the move is valid.
func validateMove(game *entity.Game, row, col int) error {
	if !entity.InRange(row, col) {
		return apperror.ErrCellOutOfRange
	}

	if game.CellAt(row, col) != entity.EmptyCell {
		return apperror.ErrCellOccupied
	}

	return nil
}

// updateGameStatus - checks the game status after a move. The winner check
// takes precedence over the draw check.
func updateGameStatus(game *entity.Game, mark string) {
	switch {
	case game.CheckWinner(mark):
		game.Winner = mark
		game.Status = entity.StatusFinished
	case game.CheckDraw():
		game.Status = entity.StatusFinished
	default:
		game.Turn = toggleMark(mark)
	}
}

func toggleMark(currentMark string) string {
	if currentMark == entity.PlayerX {
		return entity.PlayerO
	}
	return entity.PlayerX
}
