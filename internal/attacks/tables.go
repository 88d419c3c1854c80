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

// Package attacks precomputes every attack pattern the move generator and
// legality filter need: knight/king/pawn jump tables, the rook/bishop/
// queen sliding tables built from magic bitboards, and the between/line
// masks used for pin detection and check evasion.
package attacks

import "github.com/ggodpl/chess-engine/internal/types"

var (
	// KnightAttacks[sq] is every square a knight on sq attacks.
	KnightAttacks [64]types.Bitboard
	// KingAttacks[sq] is every square a king on sq attacks.
	KingAttacks [64]types.Bitboard
	// PawnAttacks[color][sq] is every square a pawn of that color on sq
	// attacks (diagonal captures only, not the push square).
	PawnAttacks [2][64]types.Bitboard

	// Between[a][b] holds the squares strictly between a and b if they
	// share a rank, file or diagonal, else BbZero.
	Between [64][64]types.Bitboard
	// Line[a][b] holds every square on the rank/file/diagonal through a
	// and b (including a and b themselves) if they are aligned, else
	// BbZero.
	Line [64][64]types.Bitboard
)

var knightDeltas = [8][2]int{
	{1, 2}, {2, 1}, {2, -1}, {1, -2},
	{-1, -2}, {-2, -1}, {-2, 1}, {-1, 2},
}

var kingDeltas = [8][2]int{
	{1, 0}, {1, 1}, {0, 1}, {-1, 1},
	{-1, 0}, {-1, -1}, {0, -1}, {1, -1},
}

func init() {
	initJumpTables()
	initLineTables()
	initMagics()
}

func inBounds(f, r int) bool {
	return f >= 0 && f < 8 && r >= 1 && r <= 8
}

func initJumpTables() {
	for sq := types.SqA8; sq <= types.SqH1; sq++ {
		f, r := int(sq.File()), int(sq.Rank())

		var knight, king types.Bitboard
		for _, d := range knightDeltas {
			if nf, nr := f+d[0], r+d[1]; inBounds(nf, nr) {
				knight = knight.PushSquare(types.SquareOf(types.File(nf), types.Rank(nr)))
			}
		}
		for _, d := range kingDeltas {
			if nf, nr := f+d[0], r+d[1]; inBounds(nf, nr) {
				king = king.PushSquare(types.SquareOf(types.File(nf), types.Rank(nr)))
			}
		}
		KnightAttacks[sq] = knight
		KingAttacks[sq] = king

		single := types.SquareBb(sq)
		PawnAttacks[types.White][sq] = single.Shift(types.NorthEast) | single.Shift(types.NorthWest)
		PawnAttacks[types.Black][sq] = single.Shift(types.SouthEast) | single.Shift(types.SouthWest)
	}
}

var rayDirections = [8]types.Direction{
	types.North, types.South, types.East, types.West,
	types.NorthEast, types.NorthWest, types.SouthEast, types.SouthWest,
}

// rayAttacks walks from sq in direction d until it falls off the board
// or (if occupied is non-empty) hits an occupied square, which is included in
// the result (sliding attacks stop at, and include, the first blocker).
func rayAttacks(sq types.Square, d types.Direction, occupied types.Bitboard) types.Bitboard {
	var bb types.Bitboard
	cur := types.SquareBb(sq)
	for {
		next := cur.Shift(d)
		if next == 0 {
			break
		}
		bb |= next
		if next&occupied != 0 {
			break
		}
		cur = next
	}
	return bb
}

var axisPairs = [4][2]types.Direction{
	{types.North, types.South},
	{types.East, types.West},
	{types.NorthEast, types.SouthWest},
	{types.NorthWest, types.SouthEast},
}

func initLineTables() {
	for a := types.SqA8; a <= types.SqH1; a++ {
		for _, d := range rayDirections {
			ray := rayAttacks(a, d, 0)
			rem := ray
			for rem != 0 {
				b := rem.PopLsb()
				// Between[a][b] is the ray from a up to but not
				// including b; everything already pushed onto `ray`
				// before reaching b.
				between := rayAttacks(a, d, types.SquareBb(b)) &^ types.SquareBb(b)
				Between[a][b] = between
			}
		}
		for _, axis := range axisPairs {
			full := rayAttacks(a, axis[0], 0) | rayAttacks(a, axis[1], 0) | types.SquareBb(a)
			rem := full &^ types.SquareBb(a)
			for rem != 0 {
				b := rem.PopLsb()
				Line[a][b] = full
			}
		}
	}
}
