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

package board

import (
	"github.com/ggodpl/chess-engine/internal/attacks"
	"github.com/ggodpl/chess-engine/internal/types"
)

// PinInfo describes, for the side to move, which of its own pieces are
// pinned against its king and the ray each pinned piece is restricted
// to moving along (including the pinning piece's own square, so the
// pinned piece may still capture it).
type PinInfo struct {
	Pinned  types.Bitboard
	Restrict [64]types.Bitboard
}

// ComputePins finds us's pinned pieces using the standard "xray
// sniper" method: take every enemy slider that would attack the king on
// an otherwise empty board along its own movement axis, then check
// whether exactly one piece (removing the sniper itself from the
// occupancy) sits between the king and that slider. If that one piece
// is friendly, it is pinned to the line between the king and the
// slider.
func (b *Board) ComputePins(us types.Color) PinInfo {
	them := us.Opposite()
	kingSq := b.KingSquare(us)

	var info PinInfo
	for i := range info.Restrict {
		info.Restrict[i] = types.BbAll
	}

	bishopsQueens := b.bb[them][types.Bishop] | b.bb[them][types.Queen]
	rooksQueens := b.bb[them][types.Rook] | b.bb[them][types.Queen]

	snipers := attacks.GetBishopAttacks(kingSq, 0) & bishopsQueens
	snipers |= attacks.GetRookAttacks(kingSq, 0) & rooksQueens

	occWithoutSnipers := b.all &^ snipers
	rem := snipers
	for rem != 0 {
		sniperSq := rem.PopLsb()
		between := attacks.Between[kingSq][sniperSq] & occWithoutSnipers
		if between.PopCount() != 1 {
			continue
		}
		blocker := between.Lsb()
		if !b.occ[us].Has(blocker) {
			continue
		}
		info.Pinned = info.Pinned.PushSquare(blocker)
		info.Restrict[blocker] = attacks.Between[kingSq][sniperSq].PushSquare(sniperSq)
	}
	return info
}

// IsLegal reports whether the pseudo-legal move m is actually legal,
// given us's pins, checkers and king square (all computed once per
// position by the caller and reused across every pseudo-legal move).
func (b *Board) IsLegal(m types.Move, pins PinInfo, checkers types.Bitboard, kingSq types.Square, us types.Color) bool {
	them := us.Opposite()
	from, to := m.From(), m.To()

	if m.PieceKind() == types.King && m.Type() != types.Castling {
		occAfter := b.all.PopSquare(from).PushSquare(to)
		return b.AttackersTo(to, occAfter)&b.occ[them] == 0
	}
	if m.Type() == types.Castling {
		// The move generator only emits castling moves whose king start,
		// transit and destination squares are already verified
		// unattacked and the path clear; nothing further to check here.
		return true
	}

	nCheckers := checkers.PopCount()
	if nCheckers >= 2 {
		return false
	}

	if m.Type() == types.EnPassant {
		capturedSq := types.SquareOf(to.File(), from.Rank())
		if nCheckers == 1 {
			checkerSq := checkers.Lsb()
			if checkerSq != capturedSq && !attacks.Between[kingSq][checkerSq].Has(to) {
				// The capture neither removes the checking pawn nor lands
				// on the ray between the checker and the king, so it
				// doesn't address the check either way.
				return false
			}
			return !pins.Pinned.Has(from)
		}
		return b.epLeavesKingSafe(from, to, capturedSq, kingSq, us)
	}

	if nCheckers == 1 {
		checkerSq := checkers.Lsb()
		allowed := attacks.Between[kingSq][checkerSq].PushSquare(checkerSq)
		if !allowed.Has(to) {
			return false
		}
	}

	if pins.Pinned.Has(from) && !pins.Restrict[from].Has(to) {
		return false
	}
	return true
}

// epLeavesKingSafe implements the en-passant discovered-check special
// case: removing both the capturing and captured pawns at once can
// expose a rank attack that ordinary single-blocker pin detection never
// considers, since it only ever removes one piece from the board.
func (b *Board) epLeavesKingSafe(from, to, capturedSq, kingSq types.Square, us types.Color) bool {
	them := us.Opposite()
	occAfter := b.all.PopSquare(from).PopSquare(capturedSq).PushSquare(to)
	rooksQueens := b.bb[them][types.Rook] | b.bb[them][types.Queen]
	if attacks.GetRookAttacks(kingSq, occAfter)&rooksQueens != 0 {
		return false
	}
	bishopsQueens := b.bb[them][types.Bishop] | b.bb[them][types.Queen]
	if attacks.GetBishopAttacks(kingSq, occAfter)&bishopsQueens != 0 {
		return false
	}
	return true
}
