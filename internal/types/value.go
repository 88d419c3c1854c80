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

package types

import "math"

// Value is the engine's single numeric score type, used end to end from
// static evaluation through alpha-beta to the transposition table (whose
// entries store value as a 64-bit float, so nothing along that path
// narrows to an integer and loses precision at the boundary).
type Value = float64

const (
	// ValueZero is a dead-even score.
	ValueZero Value = 0
	// ValueMate is the score assigned to the side that has delivered
	// checkmate, before the distance-to-mate adjustment applied while
	// unwinding the search.
	ValueMate Value = 1e8
	// ValueInfinite bounds alpha-beta's initial window.
	ValueInfinite Value = math.MaxFloat64 / 2
	// ValueDraw is the score for a drawn position.
	ValueDraw Value = 0
)

// IsMateScore reports whether v represents some distance-to-mate score.
func IsMateScore(v Value) bool {
	return v > ValueMate-1000 || v < -(ValueMate-1000)
}

// MateIn returns the mate score for delivering mate in ply plies.
func MateIn(ply int) Value {
	return ValueMate - Value(ply)
}

// MatedIn returns the mate score for being mated in ply plies.
func MatedIn(ply int) Value {
	return -ValueMate + Value(ply)
}
