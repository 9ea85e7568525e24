package entity

import "time"

const (
	TallyPlayer1 = "player1"
	TallyPlayer2 = "player2"
	TallyDraw    = "draw"
)

// Result is the outcome of a finished game. Winner is 1 or 2, or 0 for a draw.
type Result struct {
	ID         string    `json:"id"`
	Size       int       `json:"size"`
	Winner     int       `json:"winner"`
	Moves      int       `json:"moves"`
	FinishedAt time.Time `json:"finished_at"`
}

func (that *Result) IsDraw() bool {
	return that.Winner == 0
}

// TallyField - returns the totals hash field counting this kind of result.
func (that *Result) TallyField() string {
	switch that.Winner {
	case 1:
		return TallyPlayer1
	case 2:
		return TallyPlayer2
	default:
		return TallyDraw
	}
}

// Tally is the running count of finished games.
type Tally struct {
	Player1 int64 `json:"player1"`
	Player2 int64 `json:"player2"`
	Draws   int64 `json:"draws"`
}

func (that Tally) Total() int64 {
	return that.Player1 + that.Player2 + that.Draws
}
