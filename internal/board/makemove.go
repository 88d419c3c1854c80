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
	"github.com/ggodpl/chess-engine/internal/types"
	"github.com/ggodpl/chess-engine/internal/zobrist"
)

func castlingLossMask(sq types.Square) types.CastlingRights {
	switch sq {
	case types.SqA1:
		return types.CastlingWhiteOOO
	case types.SqH1:
		return types.CastlingWhiteOO
	case types.SqA8:
		return types.CastlingBlackOOO
	case types.SqH8:
		return types.CastlingBlackOO
	default:
		return types.CastlingNone
	}
}

// castleRookSquares returns the rook's from/to squares for the castling
// move whose king destination is kingTo.
func castleRookSquares(kingTo types.Square) (from, to types.Square) {
	switch kingTo {
	case types.SqG1:
		return types.SqH1, types.SqF1
	case types.SqC1:
		return types.SqA1, types.SqD1
	case types.SqG8:
		return types.SqH8, types.SqF8
	case types.SqC8:
		return types.SqA8, types.SqD8
	default:
		return types.SqNone, types.SqNone
	}
}

// MakeMove applies m to the board and returns a State sufficient to
// reverse it with UnmakeMove. m must be a legal move in the current
// position.
func (b *Board) MakeMove(m types.Move) State {
	st := State{
		CapturedKind:   types.NoPieceKind,
		CastlingRights: b.castling,
		EpSquare:       b.ep,
		HalfmoveClock:  b.halfmove,
		Hash:           b.hash,
	}

	us := m.Color()
	them := us.Opposite()
	from, to := m.From(), m.To()
	kind := m.PieceKind()

	if b.ep != types.SqNone {
		b.hash ^= zobrist.EpFile[b.ep.File()]
	}
	b.hash ^= zobrist.Castling[b.castling]

	switch m.Type() {
	case types.EnPassant:
		capturedSq := types.SquareOf(to.File(), from.Rank())
		st.CapturedKind = types.Pawn
		b.removePiece(them, types.Pawn, capturedSq)
		b.movePiece(us, types.Pawn, from, to)
	case types.Castling:
		b.movePiece(us, types.King, from, to)
		rFrom, rTo := castleRookSquares(to)
		b.movePiece(us, types.Rook, rFrom, rTo)
	default:
		if m.Type() == types.CaptureMove {
			captured := b.mailbox[to]
			st.CapturedKind = captured.Kind()
			b.removePiece(them, captured.Kind(), to)
		}
		b.removePiece(us, kind, from)
		if m.IsPromotion() {
			b.putPiece(us, m.Promotion().Kind(), to)
		} else {
			b.putPiece(us, kind, to)
		}
	}

	b.castling = b.castling.Remove(castlingLossMask(from) | castlingLossMask(to))
	if kind == types.King {
		if us == types.White {
			b.castling = b.castling.Remove(types.CastlingWhite)
		} else {
			b.castling = b.castling.Remove(types.CastlingBlack)
		}
	}
	b.hash ^= zobrist.Castling[b.castling]

	b.ep = types.SqNone
	if kind == types.Pawn && types.Distance(from, to) == 2 {
		epSq := types.SquareOf(from.File(), (from.Rank()+to.Rank())/2)
		b.ep = epSq
		b.hash ^= zobrist.EpFile[epSq.File()]
	}

	if kind == types.Pawn || m.IsCapture() {
		b.halfmove = 0
	} else {
		b.halfmove++
	}
	if us == types.Black {
		b.fullmove++
	}

	b.hash ^= zobrist.SideToMove[types.White]
	b.hash ^= zobrist.SideToMove[types.Black]
	b.stm = them

	return st
}

// UnmakeMove reverses m using the State returned by the MakeMove call
// that applied it. st must be the exact value MakeMove returned.
func (b *Board) UnmakeMove(m types.Move, st State) {
	them := b.stm
	us := them.Opposite()
	from, to := m.From(), m.To()
	kind := m.PieceKind()

	switch m.Type() {
	case types.EnPassant:
		capturedSq := types.SquareOf(to.File(), from.Rank())
		b.movePiece(us, types.Pawn, to, from)
		b.putPiece(them, types.Pawn, capturedSq)
	case types.Castling:
		b.movePiece(us, types.King, to, from)
		rFrom, rTo := castleRookSquares(to)
		b.movePiece(us, types.Rook, rTo, rFrom)
	default:
		if m.IsPromotion() {
			b.removePiece(us, m.Promotion().Kind(), to)
		} else {
			b.removePiece(us, kind, to)
		}
		b.putPiece(us, kind, from)
		if m.Type() == types.CaptureMove {
			b.putPiece(them, st.CapturedKind, to)
		}
	}

	b.castling = st.CastlingRights
	b.ep = st.EpSquare
	b.halfmove = st.HalfmoveClock
	b.hash = st.Hash
	if us == types.Black {
		b.fullmove--
	}
	b.stm = us
}

// MakeNullMove passes the turn without moving a piece, used by
// null-move pruning. Illegal while in check; callers must verify
// Checkers() == 0 first.
func (b *Board) MakeNullMove() State {
	st := State{
		CapturedKind:   types.NoPieceKind,
		CastlingRights: b.castling,
		EpSquare:       b.ep,
		HalfmoveClock:  b.halfmove,
		Hash:           b.hash,
	}
	if b.ep != types.SqNone {
		b.hash ^= zobrist.EpFile[b.ep.File()]
		b.ep = types.SqNone
	}
	b.hash ^= zobrist.SideToMove[types.White]
	b.hash ^= zobrist.SideToMove[types.Black]
	b.stm = b.stm.Opposite()
	return st
}

// UnmakeNullMove reverses MakeNullMove.
func (b *Board) UnmakeNullMove(st State) {
	b.stm = b.stm.Opposite()
	b.ep = st.EpSquare
	b.hash = st.Hash
}
