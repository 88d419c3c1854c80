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

package moveorder

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ggodpl/chess-engine/internal/board"
	"github.com/ggodpl/chess-engine/internal/history"
	"github.com/ggodpl/chess-engine/internal/movegen"
	"github.com/ggodpl/chess-engine/internal/types"
)

// TestOrderPutsTTMoveFirst checks the one hard guarantee Order makes:
// whatever move is passed as ttMove always sorts to the front,
// regardless of where it started in the slice.
func TestOrderPutsTTMoveFirst(t *testing.T) {
	b, err := board.NewBoardFromFEN(board.StartFEN)
	assert.NoError(t, err)

	moves := movegen.GenerateLegal(b)
	assert.NotEmpty(t, moves)
	ttMove := moves[len(moves)-1]

	h := history.New(64)
	Order(b, moves, ttMove, 0, h)

	assert.Equal(t, ttMove, moves[0])
}

// TestOrderRanksWinningCapturesAboveQuietMoves exercises MVV-LVA
// ordering on a position with both captures and quiet moves available:
// every capture that does not lose material by SEE must outrank every
// non-capture, non-promotion quiet move. Losing captures are expected
// to sink below the quiet moves, that demotion being SEE's whole job.
func TestOrderRanksWinningCapturesAboveQuietMoves(t *testing.T) {
	fen := "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"
	b, err := board.NewBoardFromFEN(fen)
	assert.NoError(t, err)

	moves := movegen.GenerateLegal(b)
	h := history.New(64)
	Order(b, moves, types.MoveNone, 0, h)

	lastWinningCaptureIdx := -1
	for i, m := range moves {
		if m.IsCapture() && SEE(b, m) >= 0 {
			lastWinningCaptureIdx = i
		}
	}
	firstQuietIdx := -1
	for i, m := range moves {
		if !m.IsCapture() && !m.IsPromotion() {
			firstQuietIdx = i
			break
		}
	}

	if lastWinningCaptureIdx >= 0 && firstQuietIdx >= 0 {
		assert.Less(t, lastWinningCaptureIdx, firstQuietIdx, "non-losing captures should sort before quiet moves")
	}
}

func TestKillerMoveOutranksOrdinaryQuietMove(t *testing.T) {
	b, err := board.NewBoardFromFEN(board.StartFEN)
	assert.NoError(t, err)

	moves := movegen.GenerateLegal(b)
	var killer, other types.Move
	for _, m := range moves {
		if !m.IsCapture() {
			if killer == types.MoveNone {
				killer = m
			} else if other == types.MoveNone {
				other = m
				break
			}
		}
	}
	assert.NotEqual(t, types.MoveNone, killer)
	assert.NotEqual(t, types.MoveNone, other)

	h := history.New(64)
	h.AddKiller(0, killer)

	ordered := append([]types.Move(nil), moves...)
	Order(b, ordered, types.MoveNone, 0, h)

	var killerIdx, otherIdx int
	for i, m := range ordered {
		if m == killer {
			killerIdx = i
		}
		if m == other {
			otherIdx = i
		}
	}
	assert.Less(t, killerIdx, otherIdx)
}
