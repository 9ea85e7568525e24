package console

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/rocketscienceinc/gomokun/internal/apperror"
	"github.com/rocketscienceinc/gomokun/internal/entity"
)

// Prompter talks to the players over a text stream. Write errors are kept and
// reported by Err so callers are not forced to check every message.
type Prompter struct {
	scanner *bufio.Scanner
	out     io.Writer
	err     error
}

func New(in io.Reader, out io.Writer) *Prompter {
	scanner := bufio.NewScanner(in)
	scanner.Split(bufio.ScanWords)

	return &Prompter{
		scanner: scanner,
		out:     out,
	}
}

// AskSize - asks for the board size.
func (that *Prompter) AskSize() (int, error) {
	that.printf("Please enter the size of the board :\n")

	for {
		values, err := that.readInts(1)
		if err != nil {
			return 0, err
		}
		if values != nil {
			return values[0], nil
		}

		that.printf("Please enter an integer.\n")
	}
}

// AskMove - asks the given player (1 or 2) for the coordinates of the next move.
func (that *Prompter) AskMove(player int) (int, int, error) {
	that.printf("It is now Player %d's turn \n", player)

	for {
		that.printf("Please enter the coordinate of your next move (2 space delimited integers): \n")

		values, err := that.readInts(2)
		if err != nil {
			return 0, 0, err
		}
		if values != nil {
			return values[0], values[1], nil
		}

		that.printf("Please enter two integers.\n")
	}
}

// readInts reads n integer tokens. A nil slice without error means a token was not an integer.
func (that *Prompter) readInts(n int) ([]int, error) {
	values := make([]int, 0, n)

	for len(values) < n {
		if !that.scanner.Scan() {
			if err := that.scanner.Err(); err != nil {
				return nil, fmt.Errorf("failed to read input: %w", err)
			}
			return nil, apperror.ErrInputClosed
		}

		value, err := strconv.Atoi(that.scanner.Text())
		if err != nil {
			return nil, nil
		}
		values = append(values, value)
	}

	return values, nil
}

func (that *Prompter) ShowBoard(board string) {
	that.printf("%s\n", board)
}

func (that *Prompter) ShowInvalidSize(size int) {
	that.printf("The size must be greater than 2, got %d.\n", size)
}

func (that *Prompter) ShowOutOfBounds() {
	that.printf("Out of bounds!\n")
}

func (that *Prompter) ShowOccupied() {
	that.printf("Sorry, that location is occupied.\n")
}

func (that *Prompter) ShowWinner(player int) {
	that.printf("Player %d is the winner! \n", player)
}

func (that *Prompter) ShowDraw() {
	that.printf("The board is full, draw!\n")
}

func (that *Prompter) ShowTally(tally entity.Tally) {
	that.printf("Games played: %d (Player 1: %d, Player 2: %d, draws: %d)\n",
		tally.Total(), tally.Player1, tally.Player2, tally.Draws)
}

// Err returns the first write error, if any.
func (that *Prompter) Err() error {
	return that.err
}

func (that *Prompter) printf(format string, args ...any) {
	if that.err != nil {
		return
	}

	if _, err := fmt.Fprintf(that.out, format, args...); err != nil {
		that.err = fmt.Errorf("failed to write output: %w", err)
	}
}
