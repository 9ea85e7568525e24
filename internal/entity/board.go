package entity

import (
	"strings"
)

// Cell is the content of one board square.
type Cell byte

const (
	EmptyCell Cell = '.'
	PlayerA   Cell = 'X'
	PlayerB   Cell = 'O'
)

func (that Cell) String() string {
	return string(that)
}

// IsEmpty reports whether no piece has been placed on the cell.
func (that Cell) IsEmpty() bool {
	return that == EmptyCell
}

// Grid is a read-only rectangular view over cells.
type Grid interface {
	Rows() int
	Cols() int
	At(row, col int) Cell
}

// Board is the square playing field. Its side is twice the requested size so
// runs longer than the winning length fit on it.
type Board struct {
	size  int
	cells [][]Cell
}

func NewBoard(size int) *Board {
	side := size * 2

	cells := make([][]Cell, side)
	for i := range cells {
		cells[i] = make([]Cell, side)
		for j := range cells[i] {
			cells[i][j] = EmptyCell
		}
	}

	return &Board{
		size:  size,
		cells: cells,
	}
}

// Size returns the size the board was created with, which is also the winning run length.
func (that *Board) Size() int {
	return that.size
}

// Side returns the number of rows (and columns) of the board.
func (that *Board) Side() int {
	return len(that.cells)
}

func (that *Board) Rows() int {
	return len(that.cells)
}

func (that *Board) Cols() int {
	return len(that.cells)
}

func (that *Board) At(row, col int) Cell {
	return that.cells[row][col]
}

// InBounds - checks that 0 <= x, y < side.
func (that *Board) InBounds(x, y int) bool {
	side := that.Side()
	return x >= 0 && y >= 0 && x < side && y < side
}

// Get returns the cell at row x, column y.
func (that *Board) Get(x, y int) Cell {
	return that.cells[x][y]
}

// Set writes the cell at row x, column y. Occupancy is not checked here.
func (that *Board) Set(x, y int, cell Cell) {
	that.cells[x][y] = cell
}

// Render - returns the board as text, one line per row.
func (that *Board) Render() string {
	return RenderGrid(that)
}

// RenderGrid - prints any grid the same way the board is printed.
func RenderGrid(grid Grid) string {
	var sb strings.Builder

	for r := 0; r < grid.Rows(); r++ {
		if r > 0 {
			sb.WriteByte('\n')
		}
		for c := 0; c < grid.Cols(); c++ {
			sb.WriteByte(' ')
			sb.WriteByte(byte(grid.At(r, c)))
			sb.WriteByte(' ')
		}
	}

	return sb.String()
}
