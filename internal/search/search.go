/*
 * chess-engine - UCI chess engine in Go
 *
 * MIT License
 *
 * Copyright (c) 2026 ggod
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

// Package search implements alpha-beta search over the position
// described by internal/board: iterative deepening, a transposition
// table, killer/history move ordering, null-move pruning and
// quiescence, under a single cooperative stop flag. The search itself
// is single-threaded: nothing here spawns a second search goroutine,
// and the stop flag exists only so a UCI goroutine elsewhere in the
// process can ask a running search to unwind early.
package search

import (
	"context"
	"time"

	"golang.org/x/sync/semaphore"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/op/go-logging"

	"github.com/ggodpl/chess-engine/internal/board"
	"github.com/ggodpl/chess-engine/internal/config"
	"github.com/ggodpl/chess-engine/internal/evaluator"
	"github.com/ggodpl/chess-engine/internal/history"
	mylogging "github.com/ggodpl/chess-engine/internal/logging"
	"github.com/ggodpl/chess-engine/internal/movegen"
	"github.com/ggodpl/chess-engine/internal/transpositiontable"
	"github.com/ggodpl/chess-engine/internal/types"
	"github.com/ggodpl/chess-engine/internal/util"
)

var out = message.NewPrinter(language.German)

// State is one of Search's lifecycle states: Idle -> Running ->
// (Returned | Stopped).
type State int

const (
	Idle State = iota
	Running
	Returned
	Stopped
)

// PV is a principal variation: the move sequence a search believes is
// best, root move first.
type PV []types.Move

// Result is what one Go call returns: the score of the position from
// the searching side's perspective is recoverable as Value signed
// toward White; BestMove is PV[0] (MoveNone if the position was already
// terminal).
type Result struct {
	Value    types.Value
	PV       PV
	BestMove types.Move
	Depth    int
	Nodes    uint64
	Elapsed  time.Duration
}

// Search owns every piece of mutable state one alpha-beta run touches:
// the transposition table, killer/history tables, node counter and stop
// flag. None of it is shared across concurrent searches - only one
// search may run at a time, enforced by isRunning.
type Search struct {
	log  *logging.Logger
	slog *logging.Logger

	tt      *transpositiontable.Table
	history *history.History

	isRunning     *semaphore.Weighted
	initSemaphore *semaphore.Weighted
	stopFlag      *util.Bool

	state     State
	nodes     uint64
	startTime time.Time
	timeLimit time.Duration

	// InfoFunc, if set, is called after every completed iterative
	// deepening depth - the hook internal/uci uses to emit UCI "info"
	// lines without this package importing uci.
	InfoFunc func(Result)

	// ResultFunc, if set, receives the final Result of a search launched
	// with StartSearch. Synchronous Go callers get the Result as a return
	// value and never see this fire.
	ResultFunc func(Result)
}

// NewSearch returns an idle Search ready for repeated Go calls. The
// transposition table persists across calls; ucinewgame clears it,
// ordinary position changes do not.
func NewSearch() *Search {
	return &Search{
		log:           mylogging.GetLog(),
		slog:          mylogging.GetSearchLog(),
		tt:            transpositiontable.NewTable(config.Settings.Search.TTSize),
		history:       history.New(config.Settings.Search.MaxDepth + 1),
		isRunning:     semaphore.NewWeighted(1),
		initSemaphore: semaphore.NewWeighted(1),
		stopFlag:      util.NewBool(false),
		state:         Idle,
	}
}

// State returns the search's current lifecycle state.
func (s *Search) State() State { return s.state }

// Stop asks a running search to return as soon as the next node-entry
// check observes the flag; it is the only field any other goroutine may
// touch. Safe to call whether or not a search is running.
func (s *Search) Stop() {
	s.stopFlag.Store(true)
}

// NewGame resets the transposition table and move-ordering memory
// between games, as UCI's ucinewgame asks for.
func (s *Search) NewGame() {
	s.tt.Clear()
	s.history.Clear()
}

// StartSearch runs Go on a goroutine of its own and returns once the
// search is fully started, so a Stop issued by the caller any time after
// StartSearch returns is guaranteed to reach it. The final Result is
// delivered through ResultFunc. The init semaphore handshake makes the
// "fully started" guarantee: the second Acquire only succeeds once the
// search goroutine has taken ownership and reset the stop flag.
func (s *Search) StartSearch(b *board.Board, limits Limits) {
	_ = s.initSemaphore.Acquire(context.TODO(), 1)
	go s.run(b, limits, func() { s.initSemaphore.Release(1) }, true)
	_ = s.initSemaphore.Acquire(context.TODO(), 1)
	s.initSemaphore.Release(1)
}

// IsSearching reports whether a search is currently running.
func (s *Search) IsSearching() bool {
	if !s.isRunning.TryAcquire(1) {
		return true
	}
	s.isRunning.Release(1)
	return false
}

// WaitWhileSearching blocks until any running search has stopped.
func (s *Search) WaitWhileSearching() {
	_ = s.isRunning.Acquire(context.TODO(), 1)
	s.isRunning.Release(1)
}

// Go runs iterative deepening from b under limits and returns the best
// result found. It blocks the calling goroutine for the duration of the
// search; callers that need to remain responsive to a concurrent Stop()
// (a UCI front-end, in particular) should use StartSearch instead.
func (s *Search) Go(b *board.Board, limits Limits) Result {
	return s.run(b, limits, nil, false)
}

// run is the single search driver behind both Go and StartSearch.
// deliver routes the final Result through ResultFunc while isRunning is
// still held, so WaitWhileSearching never unblocks before the result has
// been delivered.
func (s *Search) run(b *board.Board, limits Limits, started func(), deliver bool) Result {
	if !s.isRunning.TryAcquire(1) {
		if started != nil {
			started()
		}
		return Result{}
	}
	defer s.isRunning.Release(1)

	s.state = Running
	s.stopFlag.Store(false)
	s.nodes = 0
	s.startTime = time.Now()
	s.tt.NewGeneration()
	s.history.Clear()

	us := b.SideToMove()
	s.timeLimit = computeTimeLimit(limits, us)
	maximizing := us == types.White

	if started != nil {
		started()
	}

	// Hard stop at the full time budget: the soft three-quarters check
	// between iterations cannot catch a single iteration that overruns
	// on its own, this timer can.
	if s.timeLimit > 0 {
		timer := time.AfterFunc(s.timeLimit, func() { s.stopFlag.Store(true) })
		defer timer.Stop()
	}

	maxDepth := limits.Depth
	if maxDepth <= 0 || maxDepth > config.Settings.Search.MaxDepth {
		maxDepth = config.Settings.Search.MaxDepth
	}

	var best Result
	for depth := 1; depth <= maxDepth; depth++ {
		if s.stopFlag.Load() {
			break
		}
		value, pv := s.alphabeta(b, depth, 0, -types.ValueInfinite, types.ValueInfinite, maximizing)
		if s.stopFlag.Load() && depth > 1 {
			// This depth's result may be a half-searched fragment;
			// the last fully completed iteration (`best`) is the
			// usable result.
			break
		}

		best = Result{
			Value:   value,
			PV:      pv,
			Depth:   depth,
			Nodes:   s.nodes,
			Elapsed: time.Since(s.startTime),
		}
		if len(pv) > 0 {
			best.BestMove = pv[0]
		}
		if s.InfoFunc != nil {
			s.InfoFunc(best)
		}

		if !limits.Infinite {
			if limits.Depth != 0 && depth >= limits.Depth {
				break
			}
			if s.timeLimit > 0 && time.Since(s.startTime) > (s.timeLimit*3)/4 {
				break
			}
		}
	}

	if s.stopFlag.Load() {
		s.state = Stopped
	} else {
		s.state = Returned
	}
	s.slog.Debugf("search finished: depth=%d nodes=%s elapsed=%s",
		best.Depth, out.Sprintf("%d", best.Nodes), best.Elapsed)
	if deliver && s.ResultFunc != nil {
		s.ResultFunc(best)
	}
	return best
}

// computeTimeLimit allocates this move's time budget: a fixed move time
// if given, otherwise min(T/movesLeft + inc/2, T/5) with movesLeft
// defaulting to 30; zero (no cap) for depth-only or infinite searches.
func computeTimeLimit(limits Limits, us types.Color) time.Duration {
	if limits.MoveTime > 0 {
		return limits.MoveTime
	}
	if !limits.TimeControl {
		return 0
	}
	clock, inc := limits.WhiteTime, limits.WhiteInc
	if us == types.Black {
		clock, inc = limits.BlackTime, limits.BlackInc
	}
	movesLeft := limits.MovesToGo
	if movesLeft <= 0 {
		movesLeft = 30
	}
	alloc := clock/time.Duration(movesLeft) + inc/2
	cap := clock / 5
	if alloc > cap {
		alloc = cap
	}
	if alloc < 0 {
		alloc = 0
	}
	return alloc
}

// evalDiff returns the position's static value signed toward White, the
// common currency alphabeta's maximizer/minimizer compare against.
func evalDiff(b *board.Board) types.Value {
	white, black := evaluator.Evaluate(b)
	return white - black
}

// terminalDiff scores an already-terminal position signed toward White,
// adjusting a checkmate score by ply so that a shorter forced mate is
// always preferred over a longer one, rather than reporting every mate
// as the same flat ValueMate regardless of how deep it was found.
func terminalDiff(b *board.Board, ply int) types.Value {
	if movegen.IsCheckmate(b) {
		if b.SideToMove() == types.White {
			return types.MatedIn(ply)
		}
		return types.MateIn(ply)
	}
	return types.ValueDraw
}
