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

package movegen

import "github.com/ggodpl/chess-engine/internal/board"

// Perft counts every leaf position reachable in exactly depth plies from
// b, the standard exhaustive correctness oracle for a move generator:
// any bug in generation, make/unmake or legality filtering shows up as a
// wrong count at some depth.
func Perft(b *board.Board, depth int) uint64 {
	if depth == 0 {
		return 1
	}
	moves := GenerateLegal(b)
	if depth == 1 {
		return uint64(len(moves))
	}
	var nodes uint64
	for _, m := range moves {
		st := b.MakeMove(m)
		nodes += Perft(b, depth-1)
		b.UnmakeMove(m, st)
	}
	return nodes
}

// PerftDivide returns, for each legal move at the root, the perft count
// of the subtree it leads to at depth-1 - the "split" mode used to
// bisect a wrong total down to the single offending root move.
func PerftDivide(b *board.Board, depth int) map[string]uint64 {
	result := make(map[string]uint64)
	if depth == 0 {
		return result
	}
	moves := GenerateLegal(b)
	for _, m := range moves {
		st := b.MakeMove(m)
		result[m.UCI()] = Perft(b, depth-1)
		b.UnmakeMove(m, st)
	}
	return result
}
