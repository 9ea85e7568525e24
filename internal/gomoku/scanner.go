package gomoku

import (
	"sync/atomic"

	"github.com/rocketscienceinc/gomokun/internal/entity"
)

// WinSignal is set once some scan finds a winning run and is never cleared.
type WinSignal struct {
	won atomic.Bool
}

func (that *WinSignal) Set() {
	if that == nil {
		return
	}
	that.won.Store(true)
}

func (that *WinSignal) IsSet() bool {
	if that == nil {
		return false
	}
	return that.won.Load()
}

// HasRun - scans the grid column by column, top to bottom, for minLength equal non-empty cells.
// It sets the signal and returns true as soon as such a run is found. A signal that is
// already set when a column starts stops the scan; the result is then false.
func HasRun(grid entity.Grid, minLength int, signal *WinSignal) bool {
	rows, cols := grid.Rows(), grid.Cols()

	for c := 0; c < cols; c++ {
		if signal.IsSet() {
			return false
		}

		current := entity.EmptyCell
		length := 0

		for r := 0; r < rows; r++ {
			cell := grid.At(r, c)

			switch {
			case cell.IsEmpty():
				current = entity.EmptyCell
				length = 0
				continue
			case cell == current:
				length++
			default:
				current = cell
				length = 1
			}

			if length >= minLength {
				signal.Set()
				return true
			}
		}
	}

	return false
}

type transposed struct {
	grid entity.Grid
}

// Transpose returns a view of the grid with rows and columns swapped. Scanning it finds row runs.
func Transpose(grid entity.Grid) entity.Grid {
	return transposed{grid: grid}
}

func (that transposed) Rows() int {
	return that.grid.Cols()
}

func (that transposed) Cols() int {
	return that.grid.Rows()
}

func (that transposed) At(row, col int) entity.Cell {
	return that.grid.At(col, row)
}
