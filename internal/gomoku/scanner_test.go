package gomoku

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/gomokun/internal/entity"
)

// gridOf builds a grid from rows of '.', 'X' and 'O'.
func gridOf(t *testing.T, rows ...string) *entity.Board {
	t.Helper()

	board := entity.NewBoard(len(rows) / 2)
	require.Equal(t, len(rows), board.Side(), "rows must describe a full board")

	for x, row := range rows {
		row = strings.ReplaceAll(row, " ", "")
		require.Len(t, row, board.Side())
		for y := range row {
			board.Set(x, y, entity.Cell(row[y]))
		}
	}

	return board
}

func TestHasRun(t *testing.T) {
	t.Run("Finds a vertical run of the minimum length", func(t *testing.T) {
		// Given: a column holding three X pieces in a row
		board := gridOf(t,
			". X . . . .",
			". X . . . .",
			". X . . . .",
			". . . . . .",
			". . . . . .",
			". . . . . .",
		)
		signal := &WinSignal{}

		// When: scanning for a run of three
		found := HasRun(board, 3, signal)

		// Then: the run is reported and the signal is set
		assert.True(t, found)
		assert.True(t, signal.IsSet())
	})

	t.Run("Does not report a run one short of the minimum", func(t *testing.T) {
		// Given: two X pieces in a column
		board := gridOf(t,
			". . . . . .",
			". . . . O .",
			". . . . O .",
			". . . . . .",
			". . . . . .",
			". . . . . .",
		)
		signal := &WinSignal{}

		// When: scanning for a run of three
		found := HasRun(board, 3, signal)

		// Then: nothing is found
		assert.False(t, found)
		assert.False(t, signal.IsSet())
	})

	t.Run("Empty cells never form a run", func(t *testing.T) {
		// Given: an empty board
		board := entity.NewBoard(3)
		signal := &WinSignal{}

		// When: scanning for runs as short as two
		found := HasRun(board, 2, signal)

		// Then: empty columns are not a run
		assert.False(t, found)
		assert.False(t, signal.IsSet())
	})

	t.Run("An empty gap breaks a run", func(t *testing.T) {
		// Given: X X . X in a column
		board := gridOf(t,
			"X . . . . .",
			"X . . . . .",
			". . . . . .",
			"X . . . . .",
			". . . . . .",
			". . . . . .",
		)

		// When: scanning for a run of three
		found := HasRun(board, 3, &WinSignal{})

		// Then: the gap resets the count
		assert.False(t, found)
	})

	t.Run("A different piece breaks a run", func(t *testing.T) {
		// Given: X X O X X in a column
		board := gridOf(t,
			"X . . . . .",
			"X . . . . .",
			"O . . . . .",
			"X . . . . .",
			"X . . . . .",
			". . . . . .",
		)

		// When: scanning for a run of three
		found := HasRun(board, 3, &WinSignal{})

		// Then: no run is found
		assert.False(t, found)
	})

	t.Run("A run that starts mid column is found", func(t *testing.T) {
		// Given: O X X X at the bottom of a column
		board := gridOf(t,
			". . . . . .",
			". . . . . .",
			". . . . . O",
			". . . . . X",
			". . . . . X",
			". . . . . X",
		)

		// When: scanning for a run of three
		found := HasRun(board, 3, &WinSignal{})

		// Then: the run at the end of the column is found
		assert.True(t, found)
	})

	t.Run("Rows are not scanned without a transpose", func(t *testing.T) {
		// Given: a horizontal run
		board := gridOf(t,
			"X X X . . .",
			". . . . . .",
			". . . . . .",
			". . . . . .",
			". . . . . .",
			". . . . . .",
		)

		// When: scanning the plain board and its transpose
		plain := HasRun(board, 3, &WinSignal{})
		flipped := HasRun(Transpose(board), 3, &WinSignal{})

		// Then: only the transpose sees the run
		assert.False(t, plain)
		assert.True(t, flipped)
	})

	t.Run("A set signal stops the scan", func(t *testing.T) {
		// Given: a board with a run and a signal already set by another scan
		board := gridOf(t,
			"X . . . . .",
			"X . . . . .",
			"X . . . . .",
			". . . . . .",
			". . . . . .",
			". . . . . .",
		)
		signal := &WinSignal{}
		signal.Set()

		// When: scanning
		found := HasRun(board, 3, signal)

		// Then: the scan gives up before the first column and the signal stays set
		assert.False(t, found)
		assert.True(t, signal.IsSet())
	})

	t.Run("A nil signal is never set", func(t *testing.T) {
		board := gridOf(t,
			"O . . . . .",
			"O . . . . .",
			"O . . . . .",
			". . . . . .",
			". . . . . .",
			". . . . . .",
		)

		assert.True(t, HasRun(board, 3, nil))
	})
}

func TestTranspose(t *testing.T) {
	// Given: a board with a single piece
	board := entity.NewBoard(3)
	board.Set(1, 4, entity.PlayerB)

	// When: transposing it
	view := Transpose(board)

	// Then: rows and columns swap
	assert.Equal(t, board.Cols(), view.Rows())
	assert.Equal(t, board.Rows(), view.Cols())
	assert.Equal(t, entity.PlayerB, view.At(4, 1))
	assert.Equal(t, entity.EmptyCell, view.At(1, 4))
}
