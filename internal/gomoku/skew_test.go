package gomoku

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/gomokun/internal/entity"
)

func numberedBoard(size int) *entity.Board {
	board := entity.NewBoard(size)
	marks := []entity.Cell{entity.PlayerA, entity.PlayerB, entity.EmptyCell}

	for x := 0; x < board.Side(); x++ {
		for y := 0; y < board.Side(); y++ {
			board.Set(x, y, marks[(x*7+y*3)%len(marks)])
		}
	}

	return board
}

func TestSkew_Dimensions(t *testing.T) {
	board := entity.NewBoard(3)

	for name, skewed := range map[string]*SkewedGrid{
		"down-left":  SkewDownLeft(board),
		"down-right": SkewDownRight(board),
	} {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, 6, skewed.Rows())
			assert.Equal(t, 11, skewed.Cols())
		})
	}
}

func TestSkewDownLeft_Layout(t *testing.T) {
	// Given: a board with a piece in the first column of every row
	board := entity.NewBoard(3)
	for x := 0; x < board.Side(); x++ {
		board.Set(x, 0, entity.PlayerA)
	}

	// When: projecting it
	skewed := SkewDownLeft(board)

	// Then: row i starts at column rows-1-i
	for x := 0; x < board.Side(); x++ {
		assert.Equal(t, entity.PlayerA, skewed.At(x, board.Side()-1-x), "row %d", x)
	}
}

func TestSkewDownRight_Layout(t *testing.T) {
	// Given: a board with a piece in the first column of every row
	board := entity.NewBoard(3)
	for x := 0; x < board.Side(); x++ {
		board.Set(x, 0, entity.PlayerB)
	}

	// When: projecting it
	skewed := SkewDownRight(board)

	// Then: row i starts at column i
	for x := 0; x < board.Side(); x++ {
		assert.Equal(t, entity.PlayerB, skewed.At(x, x), "row %d", x)
	}
}

func TestSkew_OriginRoundTrip(t *testing.T) {
	board := numberedBoard(3)

	for name, skewed := range map[string]*SkewedGrid{
		"down-left":  SkewDownLeft(board),
		"down-right": SkewDownRight(board),
	} {
		t.Run(name, func(t *testing.T) {
			mapped := 0

			for r := 0; r < skewed.Rows(); r++ {
				for c := 0; c < skewed.Cols(); c++ {
					x, y, ok := skewed.Origin(r, c)
					if !ok {
						// padding
						assert.Equal(t, entity.EmptyCell, skewed.At(r, c))
						continue
					}

					mapped++
					require.True(t, board.InBounds(x, y))
					assert.Equal(t, board.Get(x, y), skewed.At(r, c))

					pr, pc := skewed.Project(x, y)
					assert.Equal(t, r, pr)
					assert.Equal(t, c, pc)
				}
			}

			// every board cell is mapped exactly once
			assert.Equal(t, board.Side()*board.Side(), mapped)
		})
	}
}

func TestSkew_DiagonalNeighboursShareAColumn(t *testing.T) {
	board := entity.NewBoard(4)
	downLeft := SkewDownLeft(board)
	downRight := SkewDownRight(board)

	sameColumn := func(skewed *SkewedGrid, x1, y1, x2, y2 int) bool {
		r1, c1 := skewed.Project(x1, y1)
		r2, c2 := skewed.Project(x2, y2)
		return c1 == c2 && r2 == r1+1
	}

	for x := 0; x+1 < board.Side(); x++ {
		for y := 0; y < board.Side(); y++ {
			if y+1 < board.Side() {
				// (x, y) and (x+1, y+1)
				assert.True(t, sameColumn(downLeft, x, y, x+1, y+1))
				assert.False(t, sameColumn(downRight, x, y, x+1, y+1))
			}
			if y-1 >= 0 {
				// (x, y) and (x+1, y-1)
				assert.True(t, sameColumn(downRight, x, y, x+1, y-1))
				assert.False(t, sameColumn(downLeft, x, y, x+1, y-1))
			}
		}
	}
}

func TestSkew_RebuiltFromCurrentBoard(t *testing.T) {
	// Given: a projection taken before a move
	board := entity.NewBoard(3)
	before := SkewDownRight(board)

	// When: the board changes and a new projection is taken
	board.Set(2, 3, entity.PlayerA)
	after := SkewDownRight(board)

	// Then: only the new projection sees the piece
	r, c := after.Project(2, 3)
	assert.Equal(t, entity.PlayerA, after.At(r, c))
	assert.Equal(t, entity.EmptyCell, before.At(r, c))
}
