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

// Package movegen generates pseudo-legal and legal moves from a Board,
// and implements perft (the exhaustive move-count correctness oracle).
package movegen

import (
	"github.com/ggodpl/chess-engine/internal/attacks"
	"github.com/ggodpl/chess-engine/internal/board"
	"github.com/ggodpl/chess-engine/internal/types"
)

var promoKinds = [4]types.PromotionKind{types.PromoQueen, types.PromoRook, types.PromoBishop, types.PromoKnight}

// GeneratePseudoLegal returns every pseudo-legal move for the side to
// move: legal in isolation, but not yet checked against pins or leaving
// one's own king in check. As a side effect it records the side to
// move's attacked-squares union onto the board (AttackedSquares does the
// same computation independent of whose turn it is, for the evaluator).
func GeneratePseudoLegal(b *board.Board) []types.Move {
	moves := make([]types.Move, 0, 48)
	us := b.SideToMove()

	genPawnMoves(b, us, &moves)
	genPieceMoves(b, us, types.Knight, &moves)
	genPieceMoves(b, us, types.Bishop, &moves)
	genPieceMoves(b, us, types.Rook, &moves)
	genPieceMoves(b, us, types.Queen, &moves)
	genPieceMoves(b, us, types.King, &moves)
	genCastling(b, us, &moves)

	b.SetAttackSet(us, AttackedSquares(b, us))
	return moves
}

// AttackedSquares returns every square c's pieces attack, including
// squares occupied by c's own pieces (a slider's ray still "attacks" up
// to and including the first blocker, friend or foe): the raw attack
// potential evaluation's mobility and king-safety terms consult.
func AttackedSquares(b *board.Board, c types.Color) types.Bitboard {
	occ := b.Occupied()
	var att types.Bitboard

	pawns := b.PieceBb(c, types.Pawn)
	rem := pawns
	for rem != 0 {
		att |= attacks.PawnAttacks[c][rem.PopLsb()]
	}

	for _, kind := range [...]types.PieceKind{types.Knight, types.Bishop, types.Rook, types.Queen, types.King} {
		rem = b.PieceBb(c, kind)
		for rem != 0 {
			att |= attacks.GetAttacksBb(kind, rem.PopLsb(), occ)
		}
	}
	return att
}

// GenerateLegal returns every legal move for the side to move.
func GenerateLegal(b *board.Board) []types.Move {
	pseudo := GeneratePseudoLegal(b)
	us := b.SideToMove()
	pins := b.ComputePins(us)
	checkers := b.Checkers()
	kingSq := b.KingSquare(us)

	legal := make([]types.Move, 0, len(pseudo))
	for _, m := range pseudo {
		if b.IsLegal(m, pins, checkers, kingSq, us) {
			legal = append(legal, m)
		}
	}
	return legal
}

func genPawnMoves(b *board.Board, us types.Color, moves *[]types.Move) {
	them := us.Opposite()
	pawns := b.PieceBb(us, types.Pawn)
	enemy := b.ColorBb(them)
	empty := ^b.Occupied()

	var pushDir types.Direction
	var startRank, promoRank types.Rank
	if us == types.White {
		pushDir, startRank, promoRank = types.North, types.Rank2, types.Rank8
	} else {
		pushDir, startRank, promoRank = types.South, types.Rank7, types.Rank1
	}

	rem := pawns
	for rem != 0 {
		from := rem.PopLsb()

		to := from.To(pushDir)
		if empty.Has(to) {
			addPawnMove(moves, from, to, types.Normal, us, promoRank)
			if from.Rank() == startRank {
				to2 := to.To(pushDir)
				if empty.Has(to2) {
					*moves = append(*moves, types.NewMove(from, to2, types.NoPromotion, types.Normal, types.Pawn, us))
				}
			}
		}

		capTargets := attacks.PawnAttacks[us][from] & enemy
		for capTargets != 0 {
			capTo := capTargets.PopLsb()
			addPawnMove(moves, from, capTo, types.CaptureMove, us, promoRank)
		}

		if ep := b.EpSquare(); ep != types.SqNone && attacks.PawnAttacks[us][from].Has(ep) {
			*moves = append(*moves, types.NewMove(from, ep, types.NoPromotion, types.EnPassant, types.Pawn, us))
		}
	}
}

func addPawnMove(moves *[]types.Move, from, to types.Square, mt types.MoveType, us types.Color, promoRank types.Rank) {
	if to.Rank() == promoRank {
		for _, promo := range promoKinds {
			*moves = append(*moves, types.NewMove(from, to, promo, mt, types.Pawn, us))
		}
		return
	}
	*moves = append(*moves, types.NewMove(from, to, types.NoPromotion, mt, types.Pawn, us))
}

func genPieceMoves(b *board.Board, us types.Color, kind types.PieceKind, moves *[]types.Move) {
	them := us.Opposite()
	own := b.ColorBb(us)
	enemy := b.ColorBb(them)
	occ := b.Occupied()

	rem := b.PieceBb(us, kind)
	for rem != 0 {
		from := rem.PopLsb()
		targets := attacks.GetAttacksBb(kind, from, occ) &^ own
		for targets != 0 {
			to := targets.PopLsb()
			mt := types.Normal
			if enemy.Has(to) {
				mt = types.CaptureMove
			}
			*moves = append(*moves, types.NewMove(from, to, types.NoPromotion, mt, kind, us))
		}
	}
}

func genCastling(b *board.Board, us types.Color, moves *[]types.Move) {
	them := us.Opposite()
	rights := b.CastlingRights()
	occ := b.Occupied()

	type castle struct {
		right            types.CastlingRights
		kingFrom, kingTo types.Square
		empty            types.Bitboard
		safe             [3]types.Square
	}

	var candidates []castle
	if us == types.White {
		candidates = []castle{
			{types.CastlingWhiteOO, types.SqE1, types.SqG1,
				types.SquareBb(types.SqF1) | types.SquareBb(types.SqG1),
				[3]types.Square{types.SqE1, types.SqF1, types.SqG1}},
			{types.CastlingWhiteOOO, types.SqE1, types.SqC1,
				types.SquareBb(types.SqB1) | types.SquareBb(types.SqC1) | types.SquareBb(types.SqD1),
				[3]types.Square{types.SqE1, types.SqD1, types.SqC1}},
		}
	} else {
		candidates = []castle{
			{types.CastlingBlackOO, types.SqE8, types.SqG8,
				types.SquareBb(types.SqF8) | types.SquareBb(types.SqG8),
				[3]types.Square{types.SqE8, types.SqF8, types.SqG8}},
			{types.CastlingBlackOOO, types.SqE8, types.SqC8,
				types.SquareBb(types.SqB8) | types.SquareBb(types.SqC8) | types.SquareBb(types.SqD8),
				[3]types.Square{types.SqE8, types.SqD8, types.SqC8}},
		}
	}

	for _, c := range candidates {
		if !rights.Has(c.right) {
			continue
		}
		if occ&c.empty != 0 {
			continue
		}
		attacked := false
		for _, sq := range c.safe {
			if b.IsSquareAttacked(sq, them) {
				attacked = true
				break
			}
		}
		if attacked {
			continue
		}
		*moves = append(*moves, types.NewMove(c.kingFrom, c.kingTo, types.NoPromotion, types.Castling, types.King, us))
	}
}
