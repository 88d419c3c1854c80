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

// Package evaluator computes a static score for a position: material,
// tapered piece-square tables, mobility, and king safety. It never walks
// the game tree itself; alpha-beta calls Evaluate only at leaf nodes.
package evaluator

import (
	"github.com/ggodpl/chess-engine/internal/attacks"
	"github.com/ggodpl/chess-engine/internal/board"
	"github.com/ggodpl/chess-engine/internal/config"
	"github.com/ggodpl/chess-engine/internal/movegen"
	"github.com/ggodpl/chess-engine/internal/types"
)

// MaxPhase is the material sum (minors + 2*rooks + 4*queens, both
// sides combined) at which the position is considered fully
// middlegame: 4 knights + 4 bishops (8) + 2*4 rooks (8) + 4*2 queens
// (8) = 24, the starting position's value.
const MaxPhase = 24

// mobilityWeight, kingSafety* constants are centipawn-scale tuning
// knobs; none of them come from a documented source, they are the
// engine's own tuning surface.
const (
	pawnShieldBonus       = 8
	pawnStormWeight       = 1
	enemyProximityWeight  = 1
	virtualMobilityWeight = 3
	attackedNeighborPen   = 4
	kingSafetyMaxMagnitude = 50
	kingSafetyFearCap     = 0.2
)

var kingZoneWeights = [3]int{3, 2, 1}

// CalculatePhase returns a 0..256 middlegame weight: 256 when both
// sides still carry their full starting complement of minors, rooks
// and queens, trending to 0 as material is traded off. The raw material
// sum is clamped to MaxPhase *before* the division; clamping after
// would shift the curve near the all-material end.
func CalculatePhase(b *board.Board) int {
	raw := 0
	for _, c := range [...]types.Color{types.White, types.Black} {
		raw += b.PieceBb(c, types.Knight).PopCount()
		raw += b.PieceBb(c, types.Bishop).PopCount()
		raw += 2 * b.PieceBb(c, types.Rook).PopCount()
		raw += 4 * b.PieceBb(c, types.Queen).PopCount()
	}
	if raw > MaxPhase {
		raw = MaxPhase
	}
	return raw * 256 / MaxPhase
}

// PstValue returns the tapered piece-square bonus for piece (c, k)
// standing on sq, given a phase from CalculatePhase.
func PstValue(phase int, c types.Color, k types.PieceKind, sq types.Square) int {
	return pstValue(c, k, sq, phase)
}

// Evaluate returns a (white, black) score pair: two
// non-negative-leaning totals, the difference of which (signed toward
// White) is the position's value. Callers
// interpret it relative to the side to move; Evaluate itself is
// side-agnostic. It assumes the position is not already terminal -
// search checks movegen.IsCheckmate/IsDraw before calling in.
func Evaluate(b *board.Board) (types.Value, types.Value) {
	phase := 256
	if config.Settings.Eval.TaperedEval {
		phase = CalculatePhase(b)
	}

	white := material(b, types.White) + pst(b, types.White, phase)
	black := material(b, types.Black) + pst(b, types.Black, phase)

	if config.Settings.Eval.UseMobility {
		white += mobility(b, types.White)
		black += mobility(b, types.Black)
	}
	if config.Settings.Eval.UseKingSafety {
		white += kingSafety(b, types.White)
		black += kingSafety(b, types.Black)
	}

	return types.Value(white), types.Value(black)
}

// Terminal returns the (white, black) score pair for a position already
// known to be checkmate or a draw: the mated side scores 0 and the
// winner scores ValueMate; a draw scores 0/0.
func Terminal(b *board.Board) (types.Value, types.Value) {
	if movegen.IsCheckmate(b) {
		loser := b.SideToMove()
		if loser == types.White {
			return 0, types.ValueMate
		}
		return types.ValueMate, 0
	}
	return types.ValueDraw, types.ValueDraw
}

func material(b *board.Board, c types.Color) int {
	total := 0
	for k := types.Pawn; k <= types.King; k++ {
		total += b.PieceBb(c, k).PopCount() * k.NominalValue() * 2
	}
	return total
}

func pst(b *board.Board, c types.Color, phase int) int {
	if !config.Settings.Eval.UsePST {
		return 0
	}
	total := 0
	for k := types.Pawn; k <= types.King; k++ {
		rem := b.PieceBb(c, k)
		for rem != 0 {
			sq := rem.PopLsb()
			total += pstValue(c, k, sq, phase)
		}
	}
	return total
}

func mobility(b *board.Board, c types.Color) int {
	return movegen.AttackedSquares(b, c).PopCount() * config.Settings.Eval.MobilityWeight
}

// kingSafety composes a pawn shield bonus, a pawn-storm penalty, an
// enemy-piece-proximity penalty, a virtual-mobility penalty (how many
// squares a queen planted on the king square could reach), an
// attacked-neighbor penalty, and the tapered king PST. A net-negative
// result has its magnitude scaled by the opponent's remaining attacking
// material, capped at kingSafetyFearCap of kingSafetyMaxMagnitude - an
// unthreatening opponent should not make an exposed king look as bad as
// a heavy-artillery one does.
func kingSafety(b *board.Board, us types.Color) int {
	them := us.Opposite()
	kingSq := b.KingSquare(us)
	phase := CalculatePhase(b)

	score := pstValue(us, types.King, kingSq, phase)

	forward := types.North
	if us == types.Black {
		forward = types.South
	}

	shieldZone := types.SquareBb(kingSq).Shift(forward)
	shieldZone |= shieldZone.Shift(types.East) | shieldZone.Shift(types.West)
	score += (shieldZone & b.PieceBb(us, types.Pawn)).PopCount() * pawnShieldBonus

	zone := types.SquareBb(kingSq)
	for _, w := range kingZoneWeights {
		zone = zone.Shift(forward)
		zone |= zone.Shift(types.East) | zone.Shift(types.West)
		if zone == 0 {
			break
		}
		score -= (zone & b.PieceBb(them, types.Pawn)).PopCount() * w * pawnStormWeight
		enemyPieces := b.ColorBb(them) &^ b.PieceBb(them, types.Pawn) &^ b.PieceBb(them, types.King)
		score -= (zone & enemyPieces).PopCount() * w * enemyProximityWeight
	}

	occWithoutOwnKing := b.Occupied().PopSquare(kingSq)
	virtualMoves := attacks.GetQueenAttacks(kingSq, occWithoutOwnKing)
	score -= virtualMoves.PopCount() * virtualMobilityWeight

	kingRing := attacks.KingAttacks[kingSq]
	attackedByThem := movegen.AttackedSquares(b, them)
	score -= (kingRing & attackedByThem).PopCount() * attackedNeighborPen

	if score < 0 {
		fear := enemyAttackPotential(b, them)
		cap := kingSafetyFearCap * kingSafetyMaxMagnitude
		scaled := float64(-score) * fear
		if scaled > cap {
			scaled = cap
		}
		score = -int(scaled)
	}
	return score
}

// enemyAttackPotential returns a 0..1 fraction of how much attacking
// material color c still has on the board, used to scale how much a
// king-safety deficit should actually be feared.
func enemyAttackPotential(b *board.Board, c types.Color) float64 {
	raw := b.PieceBb(c, types.Knight).PopCount() + b.PieceBb(c, types.Bishop).PopCount() +
		2*b.PieceBb(c, types.Rook).PopCount() + 4*b.PieceBb(c, types.Queen).PopCount()
	if raw > MaxPhase {
		raw = MaxPhase
	}
	return float64(raw) / float64(MaxPhase)
}
