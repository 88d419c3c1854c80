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

// CastlingRights is a 4-bit mask of which castles are still available.
type CastlingRights uint8

const (
	CastlingWhiteOO CastlingRights = 1 << iota
	CastlingWhiteOOO
	CastlingBlackOO
	CastlingBlackOOO

	CastlingWhite = CastlingWhiteOO | CastlingWhiteOOO
	CastlingBlack = CastlingBlackOO | CastlingBlackOOO
	CastlingAll   = CastlingWhite | CastlingBlack
	CastlingNone  CastlingRights = 0
)

// Has reports whether every bit in mask is set.
func (c CastlingRights) Has(mask CastlingRights) bool {
	return c&mask == mask
}

// Remove clears mask's bits from c.
func (c CastlingRights) Remove(mask CastlingRights) CastlingRights {
	return c &^ mask
}

func (c CastlingRights) String() string {
	if c == CastlingNone {
		return "-"
	}
	s := ""
	if c.Has(CastlingWhiteOO) {
		s += "K"
	}
	if c.Has(CastlingWhiteOOO) {
		s += "Q"
	}
	if c.Has(CastlingBlackOO) {
		s += "k"
	}
	if c.Has(CastlingBlackOOO) {
		s += "q"
	}
	return s
}
