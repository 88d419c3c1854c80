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

// Package moveorder ranks a position's legal moves so alpha-beta
// searches the most promising ones first: the transposition-table move,
// then captures by MVV-LVA (refined by SEE), then killer moves, then
// quiet moves by the history heuristic.
package moveorder

import (
	"sort"

	"github.com/ggodpl/chess-engine/internal/board"
	"github.com/ggodpl/chess-engine/internal/config"
	"github.com/ggodpl/chess-engine/internal/evaluator"
	"github.com/ggodpl/chess-engine/internal/history"
	"github.com/ggodpl/chess-engine/internal/types"
)

const (
	scoreTTMove          = 1_000_000
	scoreCaptureBase     = 100_000
	scoreKiller1         = 90_000
	scoreKiller2         = 80_000
	scorePromotion       = 70_000
	scoreCastling        = 60_000
	losingCapturePenalty = 150_000

	// historyDivisor scales raw history counts (which grow as depth²
	// per cutoff, capped near 10k) down to at most about 5k, well below
	// the killer bonuses but still far above the piece-square bonuses.
	historyDivisor = 2
)

// mvvLva is indexed [victim][aggressor]: capturing a more valuable
// victim with a less valuable aggressor scores higher. The king row is
// zero because a king is never actually captured.
var mvvLva = [6][6]int{
	//       P   N   B   R   Q   K  (aggressor)
	/* P */ {15, 14, 14, 13, 12, 11},
	/* N */ {25, 24, 24, 23, 22, 21},
	/* B */ {35, 34, 34, 33, 32, 31},
	/* R */ {45, 44, 44, 43, 42, 41},
	/* Q */ {55, 54, 54, 53, 52, 51},
	/* K */ {0, 0, 0, 0, 0, 0},
}

type scoredMove struct {
	move  types.Move
	score int
}

// Order sorts moves in place, best first, using ttMove (the best move
// from a previous search of this position, MoveNone if none), the
// search's killer/history tables, and SEE for capture re-ranking.
func Order(b *board.Board, moves []types.Move, ttMove types.Move, ply int, h *history.History) {
	scored := make([]scoredMove, len(moves))
	k1, k2 := h.Killers(ply)
	phase := evaluator.CalculatePhase(b)

	for i, m := range moves {
		scored[i] = scoredMove{move: m, score: scoreMove(b, m, ttMove, k1, k2, h, phase)}
	}

	sort.SliceStable(scored, func(i, j int) bool { return scored[i].score > scored[j].score })
	for i, sm := range scored {
		moves[i] = sm.move
	}
}

// scoreMove composes a move's ordering score additively: MVV-LVA for
// captures, then the TT-move bonus, killer/history bonuses for quiet
// moves, promotion and castling bonuses, and finally the destination's
// piece-square value as a tiebreaker among otherwise equal moves.
func scoreMove(b *board.Board, m, ttMove, k1, k2 types.Move, h *history.History, phase int) int {
	s := evaluator.PstValue(phase, m.Color(), m.PieceKind(), m.To())

	if m == ttMove {
		s += scoreTTMove
	}

	if m.IsCapture() {
		victim := captureVictimKind(b, m)
		aggressor := m.PieceKind()
		s += scoreCaptureBase + mvvLva[victim][aggressor]
		if aggressor.NominalValue() > victim.NominalValue() {
			s -= 2 * (aggressor.NominalValue() - victim.NominalValue())
		}
		if config.Settings.Search.UseSEE && SEE(b, m) < 0 {
			s -= losingCapturePenalty
		}
	} else {
		if config.Settings.Search.UseKiller {
			if m == k1 {
				s += scoreKiller1
			} else if m == k2 {
				s += scoreKiller2
			}
		}
		if config.Settings.Search.UseHistory {
			s += h.Score(pieceIndex(m), m.To()) / historyDivisor
		}
	}

	if m.IsPromotion() {
		s += scorePromotion
	}
	if m.Type() == types.Castling {
		s += scoreCastling
	}
	return s
}

func captureVictimKind(b *board.Board, m types.Move) types.PieceKind {
	if m.Type() == types.EnPassant {
		return types.Pawn
	}
	return b.PieceAt(m.To()).Kind()
}

func pieceIndex(m types.Move) int {
	return types.MakePiece(m.Color(), m.PieceKind()).Index()
}
