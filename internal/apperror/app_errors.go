package apperror

import "errors"

var (
	ErrGameFinished = errors.New("game is already finished")
	ErrOutOfBounds  = errors.New("out of bounds")
	ErrCellOccupied = errors.New("cell is already occupied")
	ErrInvalidSize  = errors.New("board size must be greater than 2")
	ErrInputClosed  = errors.New("input closed before the game ended")
	ErrInterrupted  = errors.New("game interrupted")
)
