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

import "strings"

// Move is a move packed into 32 bits:
//
//	bits  0- 5  from square     (6 bits)
//	bits  6-11  to square       (6 bits)
//	bits 12-14  promotion kind  (3 bits: 0 none, 1 N, 2 B, 3 R, 4 Q)
//	bit     15  unused
//	bits 16-17  move type       (2 bits: 0 Normal, 1 Capture, 2 Castling, 3 EnPassant)
//	bits 18-20  piece kind      (3 bits, the moving piece: Pawn=0..King=5)
//	bit     21  color           (0 white, 1 black)
//	bits 22-31  unused
//
// Promotion is orthogonal to MoveType: a capturing promotion is
// MoveType=Capture with a nonzero promotion field, not a distinct move
// type.
type Move uint32

// MoveNone is the zero value: from == to == a8, never a legal move.
const MoveNone Move = 0

const (
	fromShift  = 0
	toShift    = 6
	promoShift = 12
	typeShift  = 16
	pieceShift = 18
	colorShift = 21

	fromMask  = 0x3F << fromShift
	toMask    = 0x3F << toShift
	promoMask = 0x7 << promoShift
	typeMask  = 0x3 << typeShift
	pieceMask = 0x7 << pieceShift
	colorMask = 0x1 << colorShift
)

// PromotionKind is the piece a pawn promotes to, or NoPromotion.
type PromotionKind uint8

const (
	NoPromotion PromotionKind = iota
	PromoKnight
	PromoBishop
	PromoRook
	PromoQueen
)

// Kind converts a promotion kind to the equivalent PieceKind.
func (p PromotionKind) Kind() PieceKind {
	switch p {
	case PromoKnight:
		return Knight
	case PromoBishop:
		return Bishop
	case PromoRook:
		return Rook
	case PromoQueen:
		return Queen
	default:
		return NoPieceKind
	}
}

// MoveType classifies how a move updates the board beyond a plain
// from/to relocation.
type MoveType uint8

const (
	Normal MoveType = iota
	CaptureMove
	Castling
	EnPassant
)

// NewMove packs a move's fields into a Move value.
func NewMove(from, to Square, promo PromotionKind, mt MoveType, pk PieceKind, c Color) Move {
	return Move(uint32(from)<<fromShift |
		uint32(to)<<toShift |
		uint32(promo)<<promoShift |
		uint32(mt)<<typeShift |
		uint32(pk)<<pieceShift |
		uint32(c)<<colorShift)
}

// From returns the move's origin square.
func (m Move) From() Square {
	return Square((uint32(m) & fromMask) >> fromShift)
}

// To returns the move's destination square.
func (m Move) To() Square {
	return Square((uint32(m) & toMask) >> toShift)
}

// Promotion returns the move's promotion kind, NoPromotion if none.
func (m Move) Promotion() PromotionKind {
	return PromotionKind((uint32(m) & promoMask) >> promoShift)
}

// Type returns the move's move type.
func (m Move) Type() MoveType {
	return MoveType((uint32(m) & typeMask) >> typeShift)
}

// PieceKind returns the kind of the piece making the move.
func (m Move) PieceKind() PieceKind {
	return PieceKind((uint32(m) & pieceMask) >> pieceShift)
}

// Color returns the color making the move.
func (m Move) Color() Color {
	return Color((uint32(m) & colorMask) >> colorShift)
}

// IsCapture reports whether the move removes an enemy piece (ordinary
// capture or en passant).
func (m Move) IsCapture() bool {
	t := m.Type()
	return t == CaptureMove || t == EnPassant
}

// IsPromotion reports whether the move promotes a pawn.
func (m Move) IsPromotion() bool {
	return m.Promotion() != NoPromotion
}

// IsValid reports whether m is not MoveNone and its from and to squares
// differ.
func (m Move) IsValid() bool {
	return m != MoveNone && m.From() != m.To()
}

// UCI renders the move in UCI long algebraic notation, e.g. "e2e4" or
// "a7a8q" for a promotion.
func (m Move) UCI() string {
	var sb strings.Builder
	sb.WriteString(m.From().String())
	sb.WriteString(m.To().String())
	switch m.Promotion() {
	case PromoKnight:
		sb.WriteByte('n')
	case PromoBishop:
		sb.WriteByte('b')
	case PromoRook:
		sb.WriteByte('r')
	case PromoQueen:
		sb.WriteByte('q')
	}
	return sb.String()
}

func (m Move) String() string {
	if !m.IsValid() {
		return "(none)"
	}
	return m.UCI()
}
