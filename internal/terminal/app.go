package terminal

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/rocketscienceinc/tictactoe-terminal/internal/config"
	"github.com/rocketscienceinc/tictactoe-terminal/internal/tictactoe"
)

const playAgainWidth = 14

// App composes the status line, the board and the "Play Again" control into
// one screen and runs the tview event loop. All game mutation happens on that
// loop, one event at a time.
type App struct {
	logger     *slog.Logger
	controller *tictactoe.GameController

	app       *tview.Application
	layout    *tview.Flex
	status    *tview.TextView
	board     *BoardView
	buttonRow *tview.Flex
}

func New(logger *slog.Logger, controller *tictactoe.GameController, theme config.Theme) *App {
	that := &App{
		logger:     logger.With("component", "terminal"),
		controller: controller,
		app:        tview.NewApplication(),
	}

	that.status = tview.NewTextView().SetTextAlign(tview.AlignCenter)

	that.board = NewBoardView(logger, controller, theme).SetChangedFunc(that.refresh)

	playAgain := tview.NewButton("Play Again").SetSelectedFunc(that.resetGame)

	that.buttonRow = tview.NewFlex().
		AddItem(tview.NewBox(), 0, 1, false).
		AddItem(playAgain, playAgainWidth, 0, false).
		AddItem(tview.NewBox(), 0, 1, false)

	hint := tview.NewTextView().
		SetTextAlign(tview.AlignCenter).
		SetText("arrows move, enter places, q quits")

	that.layout = tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(tview.NewBox(), 0, 1, false).
		AddItem(that.status, 1, 0, false).
		AddItem(tview.NewBox(), 1, 0, false).
		AddItem(that.board, boardHeight, 0, true).
		AddItem(tview.NewBox(), 1, 0, false).
		AddItem(that.buttonRow, 0, 0, false).
		AddItem(hint, 1, 0, false).
		AddItem(tview.NewBox(), 0, 1, false)

	that.app.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch {
		case event.Key() == tcell.KeyEscape || (event.Key() == tcell.KeyRune && event.Rune() == 'q'):
			that.app.Stop()
			return nil
		case event.Key() == tcell.KeyRune && event.Rune() == 'r':
			// the reset control is active only once the game is over
			if that.controller.Game().IsFinished() {
				that.resetGame()
			}
			return nil
		}

		return event
	})

	return that
}

// Run - runs the UI until the user quits or ctx is canceled.
func (that *App) Run(ctx context.Context) error {
	log := that.logger.With("method", "Run")

	that.refresh()

	go func() {
		<-ctx.Done()
		that.app.Stop()
	}()

	log.Info("starting terminal ui")

	if err := that.app.SetRoot(that.layout, true).SetFocus(that.board).EnableMouse(true).Run(); err != nil {
		return fmt.Errorf("failed to run terminal ui: %w", err)
	}

	log.Info("terminal ui closed")

	return nil
}

// refresh - re-reads the game state into the status line and toggles the
// "Play Again" control, which is visible only while the game is over.
func (that *App) refresh() {
	game := that.controller.Game()

	that.status.SetText(StatusText(game))

	if game.IsFinished() {
		that.layout.ResizeItem(that.buttonRow, 1, 0)
	} else {
		that.layout.ResizeItem(that.buttonRow, 0, 0)
	}
}

func (that *App) resetGame() {
	that.controller.Reset()
	that.logger.Info("game reset")
	that.refresh()
}
