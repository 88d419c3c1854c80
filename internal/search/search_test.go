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

package search

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/ggodpl/chess-engine/internal/board"
	"github.com/ggodpl/chess-engine/internal/config"
	"github.com/ggodpl/chess-engine/internal/movegen"
	"github.com/ggodpl/chess-engine/internal/types"
)

func TestSearchReturnsLegalBestMove(t *testing.T) {
	b, err := board.NewBoardFromFEN(board.StartFEN)
	assert.NoError(t, err)

	s := NewSearch()
	result := s.Go(b, Limits{Depth: 2})

	assert.True(t, result.BestMove.IsValid())
	assert.Equal(t, 2, result.Depth)
	assert.NotEmpty(t, result.PV)
	assert.Equal(t, result.PV[0], result.BestMove)
}

func TestSearchStopHaltsIterativeDeepening(t *testing.T) {
	b, err := board.NewBoardFromFEN(board.StartFEN)
	assert.NoError(t, err)

	s := NewSearch()
	go func() {
		time.Sleep(5 * time.Millisecond)
		s.Stop()
	}()

	result := s.Go(b, Limits{Infinite: true})
	assert.True(t, result.BestMove.IsValid())
}

func TestSearchFindsMateInOne(t *testing.T) {
	// Classic back-rank mate: Ra1-a8#, the black king boxed in by its
	// own pawns with no piece able to block or capture.
	b, err := board.NewBoardFromFEN("6k1/5ppp/8/8/8/8/8/R5K1 w - - 0 1")
	assert.NoError(t, err)

	s := NewSearch()
	result := s.Go(b, Limits{Depth: 2})

	assert.Equal(t, "a1a8", result.BestMove.UCI())
}

// TestStartSearchDeliversResultBeforeWaitReturns pins the ordering
// contract between StartSearch, ResultFunc and WaitWhileSearching: by
// the time WaitWhileSearching unblocks, the final Result has already
// been delivered.
func TestStartSearchDeliversResultBeforeWaitReturns(t *testing.T) {
	b, err := board.NewBoardFromFEN(board.StartFEN)
	assert.NoError(t, err)

	s := NewSearch()
	var delivered Result
	s.ResultFunc = func(r Result) { delivered = r }

	s.StartSearch(b, Limits{Depth: 2})
	s.WaitWhileSearching()

	assert.True(t, delivered.BestMove.IsValid())
	assert.Equal(t, 2, delivered.Depth)
}

// refMinimax is a deliberately naive full-width minimax used as the
// correctness oracle for alphabeta: no pruning, no ordering, no tables.
func refMinimax(b *board.Board, depth, ply int, maximizing bool) types.Value {
	if movegen.IsCheckmate(b) || movegen.IsDraw(b) {
		return terminalDiff(b, ply)
	}
	if depth == 0 {
		return evalDiff(b)
	}
	var best types.Value
	if maximizing {
		best = -types.ValueInfinite
	} else {
		best = types.ValueInfinite
	}
	for _, m := range movegen.GenerateLegal(b) {
		st := b.MakeMove(m)
		v := refMinimax(b, depth-1, ply+1, !maximizing)
		b.UnmakeMove(m, st)
		if maximizing && v > best {
			best = v
		}
		if !maximizing && v < best {
			best = v
		}
	}
	return best
}

// plainSearchConfig strips the search down to literal alpha-beta for the
// duration of a test: every feature that could change the returned value
// (TT bound returns, quiescence extension, null-move, mate-distance
// clamping) goes off; ordering-only features may stay in any state.
func plainSearchConfig(t *testing.T) {
	t.Helper()
	saved := config.Settings.Search
	config.Settings.Search.UseTT = false
	config.Settings.Search.UseQuiescence = false
	config.Settings.Search.UseNullMove = false
	config.Settings.Search.UseMDP = false
	t.Cleanup(func() { config.Settings.Search = saved })
}

// TestAlphaBetaMatchesPureMinimax: with the full window and every
// value-changing feature off, alpha-beta pruning must return exactly
// the minimax score at the root.
func TestAlphaBetaMatchesPureMinimax(t *testing.T) {
	plainSearchConfig(t)

	b, err := board.NewBoardFromFEN(board.StartFEN)
	assert.NoError(t, err)

	s := NewSearch()
	got, _ := s.alphabeta(b, 3, 0, -types.ValueInfinite, types.ValueInfinite, true)
	want := refMinimax(b, 3, 0, true)
	assert.Equal(t, want, got)
}

// TestOrderingDoesNotChangeScore: killers, history and SEE demotion
// reshuffle the move list, which may change how many nodes get pruned
// but never which score comes back.
func TestOrderingDoesNotChangeScore(t *testing.T) {
	plainSearchConfig(t)

	b, err := board.NewBoardFromFEN("r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")
	assert.NoError(t, err)

	config.Settings.Search.UseKiller = true
	config.Settings.Search.UseHistory = true
	config.Settings.Search.UseSEE = true
	sOrdered := NewSearch()
	ordered, _ := sOrdered.alphabeta(b, 3, 0, -types.ValueInfinite, types.ValueInfinite, true)

	config.Settings.Search.UseKiller = false
	config.Settings.Search.UseHistory = false
	config.Settings.Search.UseSEE = false
	sPlain := NewSearch()
	plain, _ := sPlain.alphabeta(b, 3, 0, -types.ValueInfinite, types.ValueInfinite, true)

	assert.Equal(t, plain, ordered)
}

func TestNewGameClearsTranspositionTable(t *testing.T) {
	b, err := board.NewBoardFromFEN(board.StartFEN)
	assert.NoError(t, err)

	s := NewSearch()
	s.Go(b, Limits{Depth: 2})
	s.NewGame()
	// Clearing must not panic or corrupt state; a follow-up search
	// should still produce a legal move.
	result := s.Go(b, Limits{Depth: 2})
	assert.True(t, result.BestMove.IsValid())
}
