package terminal

import "github.com/rocketscienceinc/tictactoe-terminal/internal/entity"

// StatusText - returns the line shown above the board: whose turn it is while
// the game is ongoing, the result once it is over.
func StatusText(game *entity.Game) string {
	if !game.IsFinished() {
		return "Current Player: " + game.Turn
	}

	switch game.Winner {
	case entity.PlayerX:
		return "Player X Wins!"
	case entity.PlayerO:
		return "Player O Wins!"
	default:
		return "It's a Draw!"
	}
}
