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

import "fmt"

// Square is a board square, 0..63. Bit i has file = i mod 8 and
// rank-from-top = i div 8: bit 0 is a8, bit 7 is h8, bit 56 is a1, bit 63
// is h1. This is the reverse of the usual a1=0 chess-programming
// convention; every table in this package is built against it directly,
// none are borrowed as literal constants from elsewhere.
type Square int8

const (
	SqA8 Square = iota
	SqB8
	SqC8
	SqD8
	SqE8
	SqF8
	SqG8
	SqH8
	SqA7
	SqB7
	SqC7
	SqD7
	SqE7
	SqF7
	SqG7
	SqH7
	SqA6
	SqB6
	SqC6
	SqD6
	SqE6
	SqF6
	SqG6
	SqH6
	SqA5
	SqB5
	SqC5
	SqD5
	SqE5
	SqF5
	SqG5
	SqH5
	SqA4
	SqB4
	SqC4
	SqD4
	SqE4
	SqF4
	SqG4
	SqH4
	SqA3
	SqB3
	SqC3
	SqD3
	SqE3
	SqF3
	SqG3
	SqH3
	SqA2
	SqB2
	SqC2
	SqD2
	SqE2
	SqF2
	SqG2
	SqH2
	SqA1
	SqB1
	SqC1
	SqD1
	SqE1
	SqF1
	SqG1
	SqH1
	SqNone
)

// File is a board file, A=0 .. H=7.
type File int8

const (
	FileA File = iota
	FileB
	FileC
	FileD
	FileE
	FileF
	FileG
	FileH
)

// Rank is a chess rank, 1..8 (not 0-based).
type Rank int8

const (
	Rank1 Rank = iota + 1
	Rank2
	Rank3
	Rank4
	Rank5
	Rank6
	Rank7
	Rank8
)

// Direction is a delta in Square-index space for one compass step under
// this package's bit layout. North moves toward rank 8 (decreasing
// index), South toward rank 1 (increasing index).
type Direction int8

const (
	North     Direction = -8
	South     Direction = 8
	East      Direction = 1
	West      Direction = -1
	NorthEast Direction = North + East
	NorthWest Direction = North + West
	SouthEast Direction = South + East
	SouthWest Direction = South + West
)

// IsValid reports whether sq is one of the 64 real squares.
func (sq Square) IsValid() bool {
	return sq >= SqA8 && sq <= SqH1
}

// File returns sq's file.
func (sq Square) File() File {
	return File(int(sq) % 8)
}

// Rank returns sq's chess rank (1..8).
func (sq Square) Rank() Rank {
	return Rank(8 - int(sq)/8)
}

// SquareOf builds the Square at file f, rank r.
func SquareOf(f File, r Rank) Square {
	return Square(int(f) + 8*(8-int(r)))
}

// To steps sq one square in direction d without any wrap checking; use
// together with a file-distance check when walking rays across a
// potential file boundary (attacks.rayAttacks instead walks rays with
// Bitboard.Shift, which masks file wrap itself).
func (sq Square) To(d Direction) Square {
	return sq + Square(d)
}

// Distance returns the Chebyshev distance between two squares (the
// number of king steps needed to go from one to the other).
func Distance(a, b Square) int {
	df := int(a.File()) - int(b.File())
	if df < 0 {
		df = -df
	}
	dr := int(a.Rank()) - int(b.Rank())
	if dr < 0 {
		dr = -dr
	}
	if df > dr {
		return df
	}
	return dr
}

func (f File) String() string {
	return string(rune('a' + int(f)))
}

func (r Rank) String() string {
	return string(rune('0' + int(r)))
}

// String renders sq in algebraic notation, e.g. "e4".
func (sq Square) String() string {
	if !sq.IsValid() {
		return "-"
	}
	return sq.File().String() + sq.Rank().String()
}

// ParseSquare parses algebraic notation, e.g. "e4".
func ParseSquare(s string) (Square, error) {
	if len(s) != 2 {
		return SqNone, fmt.Errorf("types: invalid square %q", s)
	}
	f := s[0]
	r := s[1]
	if f < 'a' || f > 'h' || r < '1' || r > '8' {
		return SqNone, fmt.Errorf("types: invalid square %q", s)
	}
	return SquareOf(File(f-'a'), Rank(r-'0')), nil
}
