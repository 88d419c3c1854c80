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

import (
	"github.com/ggodpl/chess-engine/internal/board"
	"github.com/ggodpl/chess-engine/internal/types"
)

var promoFromChar = map[byte]types.PromotionKind{
	'q': types.PromoQueen, 'r': types.PromoRook,
	'b': types.PromoBishop, 'n': types.PromoKnight,
}

// ParseUCIMove resolves a UCI long-algebraic string (e.g. "e2e4",
// "a7a8q") against b's legal moves. An unparseable or illegal string
// returns (MoveNone, false) rather than an error: the driver, not the
// core, decides what to do about a bad move from its input stream.
func ParseUCIMove(b *board.Board, s string) (types.Move, bool) {
	if len(s) != 4 && len(s) != 5 {
		return types.MoveNone, false
	}
	from, err := types.ParseSquare(s[0:2])
	if err != nil {
		return types.MoveNone, false
	}
	to, err := types.ParseSquare(s[2:4])
	if err != nil {
		return types.MoveNone, false
	}
	promo := types.NoPromotion
	if len(s) == 5 {
		var ok bool
		promo, ok = promoFromChar[s[4]]
		if !ok {
			return types.MoveNone, false
		}
	}

	for _, m := range GenerateLegal(b) {
		if m.From() == from && m.To() == to && m.Promotion() == promo {
			return m, true
		}
	}
	return types.MoveNone, false
}
