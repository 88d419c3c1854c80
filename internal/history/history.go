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

// Package history holds the move-ordering memory carried across an
// iterative-deepening search: killer moves per ply and the history
// heuristic's piece/destination-square counts.
package history

import "github.com/ggodpl/chess-engine/internal/types"

// History accumulates move-ordering statistics for one search.
type History struct {
	killers [][2]types.Move
	// counts is indexed by (piece-index, to-square), not by
	// (color, from, to): two quiet moves landing on the same square
	// with the same piece kind and color share a bucket regardless of
	// origin, a coarser but cheaper key than the from/to pair.
	counts [12][64]int
}

// New returns a History sized for a search up to maxPly deep.
func New(maxPly int) *History {
	return &History{killers: make([][2]types.Move, maxPly)}
}

// AddKiller records m as a killer move at ply, demoting the previous
// primary killer to secondary unless m already is the primary killer.
func (h *History) AddKiller(ply int, m types.Move) {
	if ply >= len(h.killers) {
		return
	}
	if h.killers[ply][0] == m {
		return
	}
	h.killers[ply][1] = h.killers[ply][0]
	h.killers[ply][0] = m
}

// Killers returns the two killer moves recorded at ply.
func (h *History) Killers(ply int) (types.Move, types.Move) {
	if ply >= len(h.killers) {
		return types.MoveNone, types.MoveNone
	}
	return h.killers[ply][0], h.killers[ply][1]
}

// historyCap is the threshold past which AddHistory halves every entry,
// keeping the table's scale from drifting so far that younger cutoffs
// can never outweigh old ones.
const historyCap = 10_000

// AddHistory bumps the history score for a quiet move that caused a
// beta cutoff, weighted by the square of the remaining depth so deeper
// cutoffs dominate shallow ones. If any entry exceeds historyCap
// afterwards, the whole table is halved.
func (h *History) AddHistory(pieceIdx int, to types.Square, depth int) {
	h.counts[pieceIdx][to] += depth * depth
	if h.counts[pieceIdx][to] > historyCap {
		h.halveAll()
	}
}

func (h *History) halveAll() {
	for p := range h.counts {
		for sq := range h.counts[p] {
			h.counts[p][sq] /= 2
		}
	}
}

// Score returns the accumulated history score for (pieceIdx, to).
func (h *History) Score(pieceIdx int, to types.Square) int {
	return h.counts[pieceIdx][to]
}

// Clear resets all killer and history data, called between games.
func (h *History) Clear() {
	for i := range h.killers {
		h.killers[i] = [2]types.Move{}
	}
	for p := range h.counts {
		for sq := range h.counts[p] {
			h.counts[p][sq] = 0
		}
	}
}
