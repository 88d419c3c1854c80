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

// PieceKind identifies a piece irrespective of color.
type PieceKind int8

const (
	Pawn PieceKind = iota
	Knight
	Bishop
	Rook
	Queen
	King
	NoPieceKind
)

var pieceKindChars = [...]byte{'P', 'N', 'B', 'R', 'Q', 'K'}

// nominalValue holds the coarse material values the evaluation is
// built on: {pawn:1, knight:3, bishop:3, rook:5, queen:9, king:100}.
var nominalValue = [...]int{1, 3, 3, 5, 9, 100}

// Index returns the piece kind's 0..5 index (Pawn=0 .. King=5).
func (k PieceKind) Index() int {
	return int(k)
}

// IsValid reports whether k is one of the six real piece kinds.
func (k PieceKind) IsValid() bool {
	return k >= Pawn && k <= King
}

// NominalValue returns the coarse material value used by the evaluator.
func (k PieceKind) NominalValue() int {
	return nominalValue[k]
}

func (k PieceKind) String() string {
	if !k.IsValid() {
		return "-"
	}
	return string(pieceKindChars[k])
}

// Piece is a (PieceKind, Color) pair packed into a single small integer,
// indexed 0..11 as kind.Index() + 6*color.Index() (white pawn=0 .. white
// king=5, black pawn=6 .. black king=11), matching the 12x64 layout of
// the Zobrist piece-square table.
type Piece int8

// NoPiece marks an empty square.
const NoPiece Piece = 12

// MakePiece combines a color and kind into a Piece.
func MakePiece(c Color, k PieceKind) Piece {
	return Piece(k.Index() + 6*c.Index())
}

// Kind returns the piece's kind.
func (p Piece) Kind() PieceKind {
	if p == NoPiece {
		return NoPieceKind
	}
	return PieceKind(int(p) % 6)
}

// Color returns the piece's color.
func (p Piece) Color() Color {
	return Color(int(p) / 6)
}

// Index returns the piece's 0..11 index, used to index the Zobrist
// piece-square table.
func (p Piece) Index() int {
	return int(p)
}

// IsValid reports whether p is a real piece (not NoPiece).
func (p Piece) IsValid() bool {
	return p >= 0 && p < NoPiece
}

func (p Piece) String() string {
	if !p.IsValid() {
		return "."
	}
	s := p.Kind().String()
	if p.Color() == Black {
		return string(s[0] + 32) // lowercase
	}
	return s
}
