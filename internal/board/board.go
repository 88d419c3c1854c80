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

// Package board implements the Board aggregate: piece placement, side to
// move, castling rights, en-passant state, make/unmake with incremental
// Zobrist hashing, and legality filtering (pins, checks, the dedicated
// en-passant discovered-check case).
package board

import (
	"github.com/ggodpl/chess-engine/internal/attacks"
	"github.com/ggodpl/chess-engine/internal/types"
	"github.com/ggodpl/chess-engine/internal/zobrist"
)

// Board is a chess position.
type Board struct {
	bb       [2][6]types.Bitboard
	occ      [2]types.Bitboard
	all      types.Bitboard
	mailbox  [64]types.Piece
	stm      types.Color
	castling types.CastlingRights
	ep       types.Square
	halfmove int
	fullmove int
	hash     zobrist.Key

	// attackSet[c] is the union of every square c's pieces attack, a
	// side effect movegen.GeneratePseudoLegal writes here for whichever
	// color it was asked to generate for. The evaluator recomputes the
	// union for both colors instead of reading this, since at a leaf only
	// the side to move's copy is fresh.
	attackSet [2]types.Bitboard
}

// State is everything MakeMove needs UnmakeMove to be able to undo a
// move: it is the caller's responsibility to pass the exact State
// returned by the matching MakeMove call back into UnmakeMove.
type State struct {
	CapturedKind   types.PieceKind
	CastlingRights types.CastlingRights
	EpSquare       types.Square
	HalfmoveClock  int
	Hash           zobrist.Key
}

// NewEmpty returns an empty board with White to move, no castling
// rights, no en-passant square.
func NewEmpty() *Board {
	b := &Board{ep: types.SqNone, hash: zobrist.InitialSeed}
	for sq := types.SqA8; sq <= types.SqH1; sq++ {
		b.mailbox[sq] = types.NoPiece
	}
	return b
}

func (b *Board) PieceAt(sq types.Square) types.Piece { return b.mailbox[sq] }
func (b *Board) Occupied() types.Bitboard            { return b.all }
func (b *Board) ColorBb(c types.Color) types.Bitboard { return b.occ[c] }
func (b *Board) PieceBb(c types.Color, k types.PieceKind) types.Bitboard {
	return b.bb[c][k]
}
func (b *Board) KingSquare(c types.Color) types.Square { return b.bb[c][types.King].Lsb() }
func (b *Board) SideToMove() types.Color               { return b.stm }
func (b *Board) CastlingRights() types.CastlingRights  { return b.castling }
func (b *Board) EpSquare() types.Square                { return b.ep }
func (b *Board) Hash() zobrist.Key                     { return b.hash }
func (b *Board) HalfmoveClock() int                    { return b.halfmove }
func (b *Board) FullmoveNumber() int                   { return b.fullmove }

// AttackSet returns the last attack bitboard recorded for color c by
// movegen.GeneratePseudoLegal.
func (b *Board) AttackSet(c types.Color) types.Bitboard { return b.attackSet[c] }

// SetAttackSet records the union of squares c attacks, written by
// movegen as a side effect of pseudo-legal generation.
func (b *Board) SetAttackSet(c types.Color, bb types.Bitboard) { b.attackSet[c] = bb }

func (b *Board) putPiece(c types.Color, k types.PieceKind, sq types.Square) {
	p := types.MakePiece(c, k)
	b.bb[c][k] = b.bb[c][k].PushSquare(sq)
	b.occ[c] = b.occ[c].PushSquare(sq)
	b.all = b.all.PushSquare(sq)
	b.mailbox[sq] = p
	b.hash ^= zobrist.Piece[p.Index()][sq]
}

func (b *Board) removePiece(c types.Color, k types.PieceKind, sq types.Square) {
	p := types.MakePiece(c, k)
	b.bb[c][k] = b.bb[c][k].PopSquare(sq)
	b.occ[c] = b.occ[c].PopSquare(sq)
	b.all = b.all.PopSquare(sq)
	b.mailbox[sq] = types.NoPiece
	b.hash ^= zobrist.Piece[p.Index()][sq]
}

func (b *Board) movePiece(c types.Color, k types.PieceKind, from, to types.Square) {
	b.removePiece(c, k, from)
	b.putPiece(c, k, to)
}

// AttackersTo returns every piece of either color attacking sq given
// occupancy occ (occ is a parameter rather than always b.all so callers
// can probe hypothetical occupancies, e.g. "if the king stood here").
func (b *Board) AttackersTo(sq types.Square, occ types.Bitboard) types.Bitboard {
	var att types.Bitboard
	att |= attacks.PawnAttacks[types.White][sq] & b.bb[types.Black][types.Pawn]
	att |= attacks.PawnAttacks[types.Black][sq] & b.bb[types.White][types.Pawn]
	att |= attacks.KnightAttacks[sq] & (b.bb[types.White][types.Knight] | b.bb[types.Black][types.Knight])
	att |= attacks.KingAttacks[sq] & (b.bb[types.White][types.King] | b.bb[types.Black][types.King])
	bishopsQueens := b.bb[types.White][types.Bishop] | b.bb[types.Black][types.Bishop] |
		b.bb[types.White][types.Queen] | b.bb[types.Black][types.Queen]
	att |= attacks.GetBishopAttacks(sq, occ) & bishopsQueens
	rooksQueens := b.bb[types.White][types.Rook] | b.bb[types.Black][types.Rook] |
		b.bb[types.White][types.Queen] | b.bb[types.Black][types.Queen]
	att |= attacks.GetRookAttacks(sq, occ) & rooksQueens
	return att
}

// IsSquareAttacked reports whether sq is attacked by any piece of color by.
func (b *Board) IsSquareAttacked(sq types.Square, by types.Color) bool {
	return b.AttackersTo(sq, b.all)&b.occ[by] != 0
}

// Checkers returns every enemy piece currently giving check to the side
// to move's king.
func (b *Board) Checkers() types.Bitboard {
	us := b.stm
	them := us.Opposite()
	return b.AttackersTo(b.KingSquare(us), b.all) & b.occ[them]
}

// HasInsufficientMaterial reports whether neither side has enough
// material to deliver checkmate (K vs K, K vs K+N, K vs K+B).
func (b *Board) HasInsufficientMaterial() bool {
	if b.bb[types.White][types.Pawn] != 0 || b.bb[types.Black][types.Pawn] != 0 {
		return false
	}
	if b.bb[types.White][types.Rook] != 0 || b.bb[types.Black][types.Rook] != 0 {
		return false
	}
	if b.bb[types.White][types.Queen] != 0 || b.bb[types.Black][types.Queen] != 0 {
		return false
	}
	minorCount := b.bb[types.White][types.Knight].PopCount() + b.bb[types.White][types.Bishop].PopCount() +
		b.bb[types.Black][types.Knight].PopCount() + b.bb[types.Black][types.Bishop].PopCount()
	return minorCount <= 1
}

// Clone returns a deep copy of b.
func (b *Board) Clone() *Board {
	c := *b
	return &c
}
