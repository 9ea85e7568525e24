package gomoku

import (
	"fmt"

	"github.com/rocketscienceinc/gomokun/internal/apperror"
	"github.com/rocketscienceinc/gomokun/internal/entity"
)

type Status string

const (
	StatusOngoing Status = "ongoing"
	StatusWon     Status = "won"
	StatusDraw    Status = "draw"
)

// Game holds the board and turn bookkeeping of one match.
type Game struct {
	board     *entity.Board
	evaluator *Evaluator

	turn   entity.Cell
	moves  int
	status Status
	winner entity.Cell
}

// NewGame - creates a game on a board of the given size. The size is also the winning run length.
func NewGame(size int) *Game {
	return &Game{
		board:     entity.NewBoard(size),
		evaluator: NewEvaluator(size),
		turn:      entity.PlayerA,
		status:    StatusOngoing,
		winner:    entity.EmptyCell,
	}
}

// MakeMove - places the current player's piece at row x, column y.
// Rejected moves leave the board, the turn and the move count untouched.
func (that *Game) MakeMove(x, y int) (Status, error) {
	if that.IsFinished() {
		return that.status, apperror.ErrGameFinished
	}

	if err := that.validateMove(x, y); err != nil {
		return that.status, fmt.Errorf("invalid move (%d, %d): %w", x, y, err)
	}

	that.board.Set(x, y, that.turn)
	that.moves++

	that.updateGameStatus()

	return that.status, nil
}

// validateMove - checks if the move is valid.
func (that *Game) validateMove(x, y int) error {
	if !that.board.InBounds(x, y) {
		return apperror.ErrOutOfBounds
	}

	if !that.board.Get(x, y).IsEmpty() {
		return apperror.ErrCellOccupied
	}

	return nil
}

// updateGameStatus - evaluates the board after an accepted move. A win on the
// last counted move beats the draw.
func (that *Game) updateGameStatus() {
	switch {
	case that.evaluator.Evaluate(that.board):
		that.status = StatusWon
		that.winner = that.turn
	case that.moves >= that.DrawThreshold():
		that.status = StatusDraw
	default:
		that.turn = entity.Opponent(that.turn)
	}
}

// DrawThreshold is the number of accepted moves after which the game is drawn.
// It is 4*size, not the cell count of the board.
func (that *Game) DrawThreshold() int {
	return 4 * that.board.Size()
}

func (that *Game) Board() *entity.Board {
	return that.board
}

// Turn returns the player to move, or the winner once the game is won.
func (that *Game) Turn() entity.Cell {
	return that.turn
}

func (that *Game) Moves() int {
	return that.moves
}

func (that *Game) Status() Status {
	return that.status
}

// Winner returns the winning piece, or entity.EmptyCell when there is none.
func (that *Game) Winner() entity.Cell {
	return that.winner
}

func (that *Game) IsFinished() bool {
	return that.status != StatusOngoing
}

func (that *Game) Size() int {
	return that.board.Size()
}
