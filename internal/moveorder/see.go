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
	"github.com/ggodpl/chess-engine/internal/board"
	"github.com/ggodpl/chess-engine/internal/types"
)

// SEE (static exchange evaluation) estimates, without making any move,
// the net material result of the full capture sequence on m.To() if
// both sides keep recapturing with their least valuable attacker.
// Returns a negative value when the capturing side comes out behind,
// used to demote captures that look good by MVV-LVA alone but actually
// lose material (e.g. a queen taking a pawn defended by a pawn).
func SEE(b *board.Board, m types.Move) int {
	to := m.To()
	us := m.Color()

	var gains [32]int
	depth := 0

	initialVictim := captureVictimKind(b, m)
	gains[0] = initialVictim.NominalValue()

	occ := b.Occupied().PopSquare(m.From())
	if m.Type() == types.EnPassant {
		capturedSq := types.SquareOf(to.File(), m.From().Rank())
		occ = occ.PopSquare(capturedSq)
	}

	side := us.Opposite()
	attackerValue := m.PieceKind().NominalValue()

	for {
		candidates := b.AttackersTo(to, occ) & occ & b.ColorBb(side)
		if candidates == 0 {
			break
		}
		sq, kind := leastValuableAttacker(b, candidates, side)
		depth++
		gains[depth] = attackerValue - gains[depth-1]
		occ = occ.PopSquare(sq)
		attackerValue = kind.NominalValue()
		side = side.Opposite()
		if depth == len(gains)-1 {
			break
		}
	}

	for depth > 0 {
		if -gains[depth] < gains[depth-1] {
			gains[depth-1] = -gains[depth]
		}
		depth--
	}
	return gains[0]
}

func leastValuableAttacker(b *board.Board, candidates types.Bitboard, side types.Color) (types.Square, types.PieceKind) {
	for k := types.Pawn; k <= types.King; k++ {
		bb := candidates & b.PieceBb(side, k)
		if bb != 0 {
			return bb.Lsb(), k
		}
	}
	return types.SqNone, types.NoPieceKind
}
