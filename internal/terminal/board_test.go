package terminal

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-terminal/internal/config"
	"github.com/rocketscienceinc/tictactoe-terminal/internal/entity"
	"github.com/rocketscienceinc/tictactoe-terminal/internal/tictactoe"
)

func newTestBoard(t *testing.T) (*BoardView, *tictactoe.GameController) {
	t.Helper()

	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	controller := tictactoe.NewGameController(entity.NewGame())

	return NewBoardView(logger, controller, config.Theme{}), controller
}

func TestHitCell(t *testing.T) {
	t.Run("Maps every cell rectangle back to its coordinates", func(t *testing.T) {
		for row := 0; row < entity.BoardSize; row++ {
			for col := 0; col < entity.BoardSize; col++ {
				// Given: the drawn origin of the cell
				cx, cy := cellOrigin(0, 0, row, col)

				// When: hit testing each corner of the cell rectangle
				corners := [][2]int{
					{cx, cy},
					{cx + cellWidth - 1, cy},
					{cx, cy + cellHeight - 1},
					{cx + cellWidth - 1, cy + cellHeight - 1},
				}

				for _, corner := range corners {
					hitRow, hitCol, ok := hitCell(0, 0, corner[0], corner[1])

					// Then: the hit resolves to the same cell
					require.True(t, ok)
					assert.Equal(t, row, hitRow)
					assert.Equal(t, col, hitCol)
				}
			}
		}
	})

	t.Run("Misses the gaps between cells", func(t *testing.T) {
		// Given: a position in the gap right of the first cell
		_, _, ok := hitCell(0, 0, cellWidth, 0)

		// Then: no cell is hit
		assert.False(t, ok)
	})

	t.Run("Misses positions outside the board", func(t *testing.T) {
		// Given: positions beyond the grid
		for _, pos := range [][2]int{{-1, 0}, {0, -1}, {boardWidth, 0}, {0, boardHeight}} {
			_, _, ok := hitCell(0, 0, pos[0], pos[1])

			// Then: no cell is hit
			assert.False(t, ok)
		}
	})
}

func TestBoardView_MoveSelection(t *testing.T) {
	t.Run("Moves the cursor within the board", func(t *testing.T) {
		// Given: a board with the cursor at the center
		board, _ := newTestBoard(t)
		require.Equal(t, 1, board.selRow)
		require.Equal(t, 1, board.selCol)

		// When: moving up and left
		board.moveSelection(-1, 0)
		board.moveSelection(0, -1)

		// Then: the cursor lands on (0, 0)
		assert.Equal(t, 0, board.selRow)
		assert.Equal(t, 0, board.selCol)
	})

	t.Run("Stops at the board edge", func(t *testing.T) {
		// Given: a board with the cursor in the top-left corner
		board, _ := newTestBoard(t)
		board.selRow, board.selCol = 0, 0

		// When: moving past the edge
		board.moveSelection(-1, 0)
		board.moveSelection(0, -1)

		// Then: the cursor stays in place
		assert.Equal(t, 0, board.selRow)
		assert.Equal(t, 0, board.selCol)
	})
}

func TestBoardView_Place(t *testing.T) {
	t.Run("Places a mark and notifies the change callback", func(t *testing.T) {
		// Given: a board with a change callback
		board, controller := newTestBoard(t)

		var changed int
		board.SetChangedFunc(func() { changed++ })

		// When: placing at the cursor position
		board.place(1, 1)

		// Then: the mark is on the board and the callback fired once
		assert.Equal(t, entity.PlayerX, controller.Game().CellAt(1, 1))
		assert.Equal(t, 1, changed)
	})

	t.Run("Swallows rejected moves without firing the callback", func(t *testing.T) {
		// Given: a board where (1, 1) is already taken
		board, controller := newTestBoard(t)
		board.place(1, 1)

		var changed int
		board.SetChangedFunc(func() { changed++ })

		// When: the occupied cell and an out-of-range cell are played
		board.place(1, 1)
		board.place(9, 9)

		// Then: the state is unchanged and the callback never fired
		assert.Equal(t, entity.PlayerX, controller.Game().CellAt(1, 1))
		assert.Equal(t, entity.PlayerO, controller.Game().Turn)
		assert.Equal(t, 0, changed)
	})
}
