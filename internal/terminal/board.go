package terminal

import (
	"log/slog"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/rocketscienceinc/tictactoe-terminal/internal/config"
	"github.com/rocketscienceinc/tictactoe-terminal/internal/entity"
	"github.com/rocketscienceinc/tictactoe-terminal/internal/tictactoe"
)

const (
	cellWidth  = 7
	cellHeight = 3
	cellGap    = 1

	boardWidth  = entity.BoardSize*cellWidth + (entity.BoardSize-1)*cellGap
	boardHeight = entity.BoardSize*cellHeight + (entity.BoardSize-1)*cellGap
)

// BoardView draws the 3x3 grid and turns key presses and mouse clicks into
// moves on the game controller.
type BoardView struct {
	*tview.Box

	logger     *slog.Logger
	controller *tictactoe.GameController
	onChange   func()

	selRow int
	selCol int

	// origin of the last drawn board, used for mouse hit testing
	originX int
	originY int

	xColor      tcell.Color
	oColor      tcell.Color
	cellColor   tcell.Color
	cursorColor tcell.Color
}

func NewBoardView(logger *slog.Logger, controller *tictactoe.GameController, theme config.Theme) *BoardView {
	board := &BoardView{
		Box:        tview.NewBox(),
		logger:     logger.With("component", "board"),
		controller: controller,

		selRow: 1,
		selCol: 1,

		xColor:      tcell.GetColor(theme.XColor),
		oColor:      tcell.GetColor(theme.OColor),
		cellColor:   tcell.GetColor(theme.CellColor),
		cursorColor: tcell.GetColor(theme.CursorColor),
	}

	board.Box.SetDrawFunc(func(screen tcell.Screen, x, y, width, height int) (int, int, int, int) {
		board.draw(screen, x, y, width, height)
		return x, y, width, height
	})

	return board
}

// SetChangedFunc - sets the callback invoked after every accepted move.
func (that *BoardView) SetChangedFunc(onChange func()) *BoardView {
	that.onChange = onChange
	return that
}

func (that *BoardView) draw(screen tcell.Screen, x, y, width, height int) {
	ox := x + (width-boardWidth)/2
	if ox < x {
		ox = x
	}

	oy := y + (height-boardHeight)/2
	if oy < y {
		oy = y
	}

	that.originX, that.originY = ox, oy

	game := that.controller.Game()

	for row := 0; row < entity.BoardSize; row++ {
		for col := 0; col < entity.BoardSize; col++ {
			mark := game.CellAt(row, col)

			background := that.cellColor
			if row == that.selRow && col == that.selCol && game.IsOngoing() && mark == entity.EmptyCell {
				background = that.cursorColor
			}

			foreground := tcell.ColorWhite
			switch mark {
			case entity.PlayerX:
				foreground = that.xColor
			case entity.PlayerO:
				foreground = that.oColor
			}

			cx, cy := cellOrigin(ox, oy, row, col)
			drawCell(screen, cx, cy, mark, tcell.StyleDefault.Background(background).Foreground(foreground))
		}
	}
}

// drawCell - fills one cell rectangle and puts the mark in its center.
func drawCell(screen tcell.Screen, x, y int, mark string, style tcell.Style) {
	for dy := 0; dy < cellHeight; dy++ {
		for dx := 0; dx < cellWidth; dx++ {
			screen.SetContent(x+dx, y+dy, ' ', nil, style)
		}
	}

	if mark != entity.EmptyCell {
		screen.SetContent(x+cellWidth/2, y+cellHeight/2, rune(mark[0]), nil, style.Bold(true))
	}
}

// cellOrigin - returns the screen position of the top-left corner of cell (row, col).
func cellOrigin(ox, oy, row, col int) (int, int) {
	return ox + col*(cellWidth+cellGap), oy + row*(cellHeight+cellGap)
}

// hitCell - maps a screen position to the cell it lands on.
func hitCell(ox, oy, x, y int) (int, int, bool) {
	for row := 0; row < entity.BoardSize; row++ {
		for col := 0; col < entity.BoardSize; col++ {
			cx, cy := cellOrigin(ox, oy, row, col)
			if x >= cx && x < cx+cellWidth && y >= cy && y < cy+cellHeight {
				return row, col, true
			}
		}
	}

	return 0, 0, false
}

// moveSelection - shifts the cursor by (dRow, dCol), staying on the board.
func (that *BoardView) moveSelection(dRow, dCol int) {
	if !entity.InRange(that.selRow+dRow, that.selCol+dCol) {
		return
	}

	that.selRow += dRow
	that.selCol += dCol
}

// place - dispatches a move to the controller. Rejected moves are silent in
// the UI; the sentinel error only goes to the debug log.
func (that *BoardView) place(row, col int) {
	if err := that.controller.MakeTurn(row, col); err != nil {
		that.logger.Debug("move rejected", "row", row, "col", col, "error", err)
		return
	}

	that.logger.Info("player made a turn", "row", row, "col", col)

	if that.onChange != nil {
		that.onChange()
	}
}

func (that *BoardView) InputHandler() func(event *tcell.EventKey, setFocus func(p tview.Primitive)) {
	return that.WrapInputHandler(func(event *tcell.EventKey, _ func(p tview.Primitive)) {
		switch event.Key() {
		case tcell.KeyUp:
			that.moveSelection(-1, 0)
		case tcell.KeyDown:
			that.moveSelection(1, 0)
		case tcell.KeyLeft:
			that.moveSelection(0, -1)
		case tcell.KeyRight:
			that.moveSelection(0, 1)
		case tcell.KeyEnter:
			that.place(that.selRow, that.selCol)
		case tcell.KeyRune:
			if event.Rune() == ' ' {
				that.place(that.selRow, that.selCol)
			}
		}
	})
}

func (that *BoardView) MouseHandler() func(action tview.MouseAction, event *tcell.EventMouse, setFocus func(p tview.Primitive)) (bool, tview.Primitive) {
	return that.WrapMouseHandler(func(action tview.MouseAction, event *tcell.EventMouse, setFocus func(p tview.Primitive)) (bool, tview.Primitive) {
		x, y := event.Position()
		if !that.InRect(x, y) {
			return false, nil
		}

		row, col, ok := hitCell(that.originX, that.originY, x, y)
		if !ok {
			return false, nil
		}

		switch action {
		case tview.MouseMove:
			// hover highlight follows the pointer
			that.selRow, that.selCol = row, col
			return true, nil
		case tview.MouseLeftClick:
			setFocus(that)
			that.selRow, that.selCol = row, col
			that.place(row, col)
			return true, nil
		}

		return false, nil
	})
}
