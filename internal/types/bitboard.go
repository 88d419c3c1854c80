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

package types

import "math/bits"

// Bitboard is a 64-bit occupancy mask, one bit per Square under this
// package's a8=bit0 layout.
type Bitboard uint64

const (
	BbZero Bitboard = 0
	BbAll  Bitboard = 0xFFFFFFFFFFFFFFFF
)

var (
	// SquareBB[sq] is the single-bit mask for sq, precomputed once.
	SquareBB [64]Bitboard
	// FileBB[f] holds every square on file f.
	FileBB [8]Bitboard
	// RankBB[r] holds every square on rank r (1-indexed, RankBB[0] unused).
	RankBB [9]Bitboard
)

func init() {
	for s := SqA8; s <= SqH1; s++ {
		SquareBB[s] = Bitboard(1) << uint(s)
	}
	for f := FileA; f <= FileH; f++ {
		var bb Bitboard
		for r := Rank1; r <= Rank8; r++ {
			bb |= SquareBB[SquareOf(f, r)]
		}
		FileBB[f] = bb
	}
	for r := Rank1; r <= Rank8; r++ {
		var bb Bitboard
		for f := FileA; f <= FileH; f++ {
			bb |= SquareBB[SquareOf(f, r)]
		}
		RankBB[r] = bb
	}
}

// SquareBb returns the single-bit mask for sq.
func SquareBb(sq Square) Bitboard {
	return SquareBB[sq]
}

// Has reports whether sq is set in b.
func (b Bitboard) Has(sq Square) bool {
	return b&SquareBB[sq] != 0
}

// PushSquare returns b with sq set.
func (b Bitboard) PushSquare(sq Square) Bitboard {
	return b | SquareBB[sq]
}

// PopSquare returns b with sq cleared.
func (b Bitboard) PopSquare(sq Square) Bitboard {
	return b &^ SquareBB[sq]
}

// PopCount returns the number of set bits.
func (b Bitboard) PopCount() int {
	return bits.OnesCount64(uint64(b))
}

// Lsb returns the least-significant set square, or SqNone if b is empty.
func (b Bitboard) Lsb() Square {
	return Square(bits.TrailingZeros64(uint64(b)))
}

// Msb returns the most-significant set square, or SqNone if b is empty.
func (b Bitboard) Msb() Square {
	if b == 0 {
		return SqNone
	}
	return Square(63 - bits.LeadingZeros64(uint64(b)))
}

// PopLsb clears and returns the least-significant set square.
func (b *Bitboard) PopLsb() Square {
	sq := b.Lsb()
	*b &= *b - 1
	return sq
}

// Shift moves every bit in b one step in direction d, discarding bits
// that would wrap around a file edge.
func (b Bitboard) Shift(d Direction) Bitboard {
	switch d {
	case North:
		return b >> 8
	case South:
		return b << 8
	case East:
		return (b &^ FileBB[FileH]) << 1
	case West:
		return (b &^ FileBB[FileA]) >> 1
	case NorthEast:
		return (b &^ FileBB[FileH]) >> 7
	case NorthWest:
		return (b &^ FileBB[FileA]) >> 9
	case SouthEast:
		return (b &^ FileBB[FileH]) << 9
	case SouthWest:
		return (b &^ FileBB[FileA]) << 7
	default:
		return 0
	}
}

// String renders b as an 8x8 grid, rank 8 first, for debugging.
func (b Bitboard) String() string {
	out := make([]byte, 0, 64+8)
	for sq := SqA8; sq <= SqH1; sq++ {
		if b.Has(sq) {
			out = append(out, '1')
		} else {
			out = append(out, '.')
		}
		if sq.File() == FileH {
			out = append(out, '\n')
		}
	}
	return string(out)
}
