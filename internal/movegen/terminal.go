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

// IsCheckmate reports whether the side to move has no legal moves and
// is currently in check.
func IsCheckmate(b *board.Board) bool {
	return b.Checkers() != 0 && len(GenerateLegal(b)) == 0
}

// IsStalemate reports whether the side to move has no legal moves and
// is not in check.
func IsStalemate(b *board.Board) bool {
	return b.Checkers() == 0 && len(GenerateLegal(b)) == 0
}

// IsDraw reports whether the position is drawn by stalemate,
// insufficient material, or the halfmove-clock rule. The clock must
// strictly exceed 100 before the draw triggers; a position reached on
// exactly the hundredth halfmove is still live.
func IsDraw(b *board.Board) bool {
	if b.HalfmoveClock() > 100 {
		return true
	}
	if b.HasInsufficientMaterial() {
		return true
	}
	return IsStalemate(b)
}
