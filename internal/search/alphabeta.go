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

package search

import (
	"github.com/ggodpl/chess-engine/internal/board"
	"github.com/ggodpl/chess-engine/internal/config"
	"github.com/ggodpl/chess-engine/internal/movegen"
	"github.com/ggodpl/chess-engine/internal/moveorder"
	"github.com/ggodpl/chess-engine/internal/transpositiontable"
	"github.com/ggodpl/chess-engine/internal/types"
)

// alphabeta is fail-soft minimax with alpha-beta pruning and PV
// collection: it returns the best child's value even when that value
// lies outside [alpha, beta], and does not clamp it to the window (nor
// do the TT, null-move and quiescence returns). `maximizing` tracks which side the current
// node's mover is: true when it is White's turn to pick the highest
// evalDiff child, false when it is Black's turn to pick the lowest.
// Every returned Value is signed toward White regardless of maximizing,
// so a parent can compare a child's value directly against its window
// without renegotiating sign conventions the way negamax would.
func (s *Search) alphabeta(b *board.Board, depth, ply int, alpha, beta types.Value, maximizing bool) (types.Value, PV) {
	if s.stopFlag.Load() {
		return 0, nil
	}
	s.nodes++

	if movegen.IsCheckmate(b) || movegen.IsDraw(b) {
		return terminalDiff(b, ply), nil
	}
	if depth <= 0 {
		if config.Settings.Search.UseQuiescence {
			return s.quiescence(b, alpha, beta, maximizing, ply, 0)
		}
		return evalDiff(b), nil
	}

	// Mate distance pruning: a mate already found closer to the root
	// can never be beaten by one found deeper, so the window can be
	// clamped to the best/worst score still reachable from this ply
	// before any move is even generated.
	if config.Settings.Search.UseMDP {
		matingScore := types.MateIn(ply)
		matedScore := types.MatedIn(ply)
		if alpha < matedScore {
			alpha = matedScore
		}
		if beta > matingScore {
			beta = matingScore
		}
		if alpha >= beta {
			return alpha, nil
		}
	}

	hash := b.Hash()
	ttMove := types.MoveNone
	if config.Settings.Search.UseTT {
		if e, ok := s.tt.Probe(hash); ok {
			ttMove = e.BestMove
			if e.Generation == s.tt.Generation() && int(e.Depth) >= depth {
				ttValue := valueFromTT(e.Value, ply)
				switch e.NodeType {
				case transpositiontable.PV:
					return ttValue, PV{e.BestMove}
				case transpositiontable.Cut:
					if ttValue >= beta {
						return ttValue, PV{e.BestMove}
					}
				case transpositiontable.All:
					if ttValue <= alpha {
						return ttValue, PV{e.BestMove}
					}
				}
			}
		}
	}

	if nmValue, ok := s.tryNullMove(b, depth, ply, alpha, beta, maximizing); ok {
		return nmValue, nil
	}

	moves := movegen.GenerateLegal(b)
	moveorder.Order(b, moves, ttMove, ply, s.history)

	origAlpha, origBeta := alpha, beta
	var bestPV PV
	bestMove := types.MoveNone
	var bestValue types.Value
	if maximizing {
		bestValue = -types.ValueInfinite
	} else {
		bestValue = types.ValueInfinite
	}

	nodeType := transpositiontable.All
	for _, m := range moves {
		st := b.MakeMove(m)
		value, childPV := s.alphabeta(b, depth-1, ply+1, alpha, beta, !maximizing)
		b.UnmakeMove(m, st)

		if s.stopFlag.Load() {
			return 0, nil
		}

		if maximizing {
			if value > bestValue {
				bestValue = value
				bestMove = m
				bestPV = prepend(m, childPV)
			}
			if bestValue > alpha {
				alpha = bestValue
			}
		} else {
			if value < bestValue {
				bestValue = value
				bestMove = m
				bestPV = prepend(m, childPV)
			}
			if bestValue < beta {
				beta = bestValue
			}
		}

		if alpha >= beta {
			nodeType = transpositiontable.Cut
			if !m.IsCapture() {
				if config.Settings.Search.UseKiller {
					s.history.AddKiller(ply, m)
				}
				if config.Settings.Search.UseHistory {
					s.history.AddHistory(pieceIndex(m), m.To(), depth)
				}
			}
			break
		}
	}

	if nodeType != transpositiontable.Cut {
		if (maximizing && bestValue > origAlpha) || (!maximizing && bestValue < origBeta) {
			nodeType = transpositiontable.PV
		} else {
			nodeType = transpositiontable.All
		}
	}

	if config.Settings.Search.UseTT {
		s.tt.Store(hash, uint8(depth), valueToTT(bestValue, ply), nodeType, bestMove)
	}
	return bestValue, bestPV
}

// valueToTT and valueFromTT translate between a root-relative mate score
// (the value alphabeta actually computed, "mate in N plies from the
// root") and a node-relative one (the form stored in the TT, "mate in N
// plies from this position", since a TT entry is probed again from
// arbitrary ply and the distance from the original search's root no
// longer means what it did at store time).
func valueToTT(value types.Value, ply int) types.Value {
	if !types.IsMateScore(value) {
		return value
	}
	if value > 0 {
		return value + types.Value(ply)
	}
	return value - types.Value(ply)
}

func valueFromTT(value types.Value, ply int) types.Value {
	if !types.IsMateScore(value) {
		return value
	}
	if value > 0 {
		return value - types.Value(ply)
	}
	return value + types.Value(ply)
}

// tryNullMove attempts a reduced-depth null-move search: skip a move
// entirely and see if the opponent still cannot improve past the
// window even with a free tempo. If they can't, the real position is
// assumed at least that good and the subtree is pruned. Disabled in
// check (a null move into check is not a legal position to reason
// about) and near the board's own material floor (lone-king/pawn
// endings are exactly where null-move pruning misjudges zugzwang).
func (s *Search) tryNullMove(b *board.Board, depth, ply int, alpha, beta types.Value, maximizing bool) (types.Value, bool) {
	if !config.Settings.Search.UseNullMove {
		return 0, false
	}
	if depth < config.Settings.Search.NmpDepth {
		return 0, false
	}
	if b.Checkers() != 0 {
		return 0, false
	}
	if !hasNonPawnMaterial(b, b.SideToMove()) {
		return 0, false
	}

	reduced := depth - 1 - config.Settings.Search.NmpReduction
	if reduced < 0 {
		reduced = 0
	}

	st := b.MakeNullMove()
	value, _ := s.alphabeta(b, reduced, ply+1, alpha, beta, !maximizing)
	b.UnmakeNullMove(st)

	if s.stopFlag.Load() {
		return 0, false
	}
	if maximizing && value >= beta {
		return value, true
	}
	if !maximizing && value <= alpha {
		return value, true
	}
	return 0, false
}

func hasNonPawnMaterial(b *board.Board, c types.Color) bool {
	return b.PieceBb(c, types.Knight)|b.PieceBb(c, types.Bishop)|
		b.PieceBb(c, types.Rook)|b.PieceBb(c, types.Queen) != 0
}

// quiescence extends search past the nominal horizon along captures
// and promotions only, avoiding the "the position looks quiet only because we stopped
// mid-exchange" horizon effect a hard depth==0 cutoff would otherwise
// suffer. Bounded by MaxQuiescenceDepth so it always terminates even in
// positions with long capture chains.
func (s *Search) quiescence(b *board.Board, alpha, beta types.Value, maximizing bool, ply, qDepth int) (types.Value, PV) {
	if s.stopFlag.Load() {
		return 0, nil
	}
	s.nodes++

	if movegen.IsCheckmate(b) || movegen.IsDraw(b) {
		return terminalDiff(b, ply), nil
	}

	standPat := evalDiff(b)
	if maximizing {
		if standPat >= beta {
			return standPat, nil
		}
		if standPat > alpha {
			alpha = standPat
		}
	} else {
		if standPat <= alpha {
			return standPat, nil
		}
		if standPat < beta {
			beta = standPat
		}
	}

	if qDepth >= config.Settings.Search.MaxQuiescenceDepth {
		return standPat, nil
	}

	moves := movegen.GenerateLegal(b)
	captures := moves[:0:0]
	for _, m := range moves {
		if m.IsCapture() || m.IsPromotion() {
			captures = append(captures, m)
		}
	}
	moveorder.Order(b, captures, types.MoveNone, 0, s.history)

	bestValue := standPat
	var bestPV PV
	for _, m := range captures {
		st := b.MakeMove(m)
		value, childPV := s.quiescence(b, alpha, beta, !maximizing, ply+1, qDepth+1)
		b.UnmakeMove(m, st)

		if s.stopFlag.Load() {
			return 0, nil
		}

		if maximizing {
			if value > bestValue {
				bestValue = value
				bestPV = prepend(m, childPV)
			}
			if bestValue > alpha {
				alpha = bestValue
			}
		} else {
			if value < bestValue {
				bestValue = value
				bestPV = prepend(m, childPV)
			}
			if bestValue < beta {
				beta = bestValue
			}
		}
		if alpha >= beta {
			break
		}
	}
	return bestValue, bestPV
}

func prepend(m types.Move, pv PV) PV {
	out := make(PV, 0, len(pv)+1)
	out = append(out, m)
	out = append(out, pv...)
	return out
}

func pieceIndex(m types.Move) int {
	return types.MakePiece(m.Color(), m.PieceKind()).Index()
}
