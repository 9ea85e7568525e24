package gomoku

import (
	"sync"
	"sync/atomic"

	"github.com/sourcegraph/conc"

	"github.com/rocketscienceinc/gomokun/internal/entity"
)

// RoundState is the stage of the last evaluation round.
type RoundState int32

const (
	RoundIdle RoundState = iota
	RoundScanning
	RoundJoined
	RoundWinDetected
	RoundNoWin
)

func (that RoundState) String() string {
	switch that {
	case RoundIdle:
		return "idle"
	case RoundScanning:
		return "scanning"
	case RoundJoined:
		return "joined"
	case RoundWinDetected:
		return "win detected"
	case RoundNoWin:
		return "no win"
	default:
		return "unknown"
	}
}

// Evaluator checks a board for a winning run after every move. The three scan
// axes run concurrently and share one WinSignal for the lifetime of the game.
type Evaluator struct {
	minLength int
	signal    WinSignal

	// one round at a time
	mu    sync.Mutex
	state atomic.Int32
}

func NewEvaluator(minLength int) *Evaluator {
	return &Evaluator{
		minLength: minLength,
	}
}

// Evaluate - runs the vertical, horizontal and diagonal scans and waits for all of them.
// The board must not be written until it returns. A panic in any scan is re-raised here.
func (that *Evaluator) Evaluate(board entity.Grid) bool {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.state.Store(int32(RoundScanning))

	var wg conc.WaitGroup
	wg.Go(func() {
		HasRun(board, that.minLength, &that.signal)
	})
	wg.Go(func() {
		HasRun(Transpose(board), that.minLength, &that.signal)
	})
	wg.Go(func() {
		that.scanDiagonals(board)
	})
	wg.Wait()

	that.state.Store(int32(RoundJoined))

	if that.signal.IsSet() {
		that.state.Store(int32(RoundWinDetected))
		return true
	}

	that.state.Store(int32(RoundNoWin))
	return false
}

// scanDiagonals - projects both diagonal families in turn and scans their columns.
func (that *Evaluator) scanDiagonals(board entity.Grid) {
	if HasRun(SkewDownLeft(board), that.minLength, &that.signal) {
		return
	}

	HasRun(SkewDownRight(board), that.minLength, &that.signal)
}

// Won reports whether any round so far found a winning run.
func (that *Evaluator) Won() bool {
	return that.signal.IsSet()
}

func (that *Evaluator) State() RoundState {
	return RoundState(that.state.Load())
}

func (that *Evaluator) MinLength() int {
	return that.minLength
}
