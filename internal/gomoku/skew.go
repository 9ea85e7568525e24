package gomoku

import "github.com/rocketscienceinc/gomokun/internal/entity"

// SkewedGrid is a board re-projected so that one diagonal family lines up in columns.
// Cells that do not map back to the board hold entity.EmptyCell.
type SkewedGrid struct {
	cells      [][]entity.Cell
	sourceCols int
	shift      func(row int) int
}

// SkewDownLeft - shifts row i right by rows-1-i, so cells at (r, c) and (r+1, c+1) share a column.
func SkewDownLeft(board entity.Grid) *SkewedGrid {
	rows := board.Rows()
	return project(board, func(row int) int { return rows - 1 - row })
}

// SkewDownRight - shifts row i right by i, so cells at (r, c) and (r+1, c-1) share a column.
func SkewDownRight(board entity.Grid) *SkewedGrid {
	return project(board, func(row int) int { return row })
}

func project(board entity.Grid, shift func(row int) int) *SkewedGrid {
	rows, cols := board.Rows(), board.Cols()
	// 2*rows-1 for a square board
	width := rows + cols - 1

	cells := make([][]entity.Cell, rows)
	for r := range cells {
		cells[r] = make([]entity.Cell, width)
		for c := range cells[r] {
			cells[r][c] = entity.EmptyCell
		}

		s := shift(r)
		for c := 0; c < cols; c++ {
			cells[r][c+s] = board.At(r, c)
		}
	}

	return &SkewedGrid{
		cells:      cells,
		sourceCols: cols,
		shift:      shift,
	}
}

func (that *SkewedGrid) Rows() int {
	return len(that.cells)
}

func (that *SkewedGrid) Cols() int {
	if len(that.cells) == 0 {
		return 0
	}
	return len(that.cells[0])
}

func (that *SkewedGrid) At(row, col int) entity.Cell {
	return that.cells[row][col]
}

// Project returns where board cell (x, y) lands in the skewed grid.
func (that *SkewedGrid) Project(x, y int) (int, int) {
	return x, y + that.shift(x)
}

// Origin maps a skewed cell back to the board. ok is false for padding.
func (that *SkewedGrid) Origin(row, col int) (x, y int, ok bool) {
	y = col - that.shift(row)
	if y < 0 || y >= that.sourceCols {
		return 0, 0, false
	}
	return row, y, true
}
