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
	"fmt"
	"strconv"
	"strings"

	"github.com/ggodpl/chess-engine/internal/types"
	"github.com/ggodpl/chess-engine/internal/zobrist"
)

// StartFEN is the standard chess starting position.
const StartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

var pieceFromChar = map[byte]types.PieceKind{
	'p': types.Pawn, 'n': types.Knight, 'b': types.Bishop,
	'r': types.Rook, 'q': types.Queen, 'k': types.King,
}

// NewBoardFromFEN parses a Forsyth-Edwards string into a Board. FEN's
// ranks run 8 down to 1, files a to h within each rank - exactly the
// order package types declares its Square constants in, so the
// placement field maps onto board squares without any reindexing.
func NewBoardFromFEN(fen string) (*Board, error) {
	fields := strings.Fields(fen)
	if len(fields) < 4 {
		return nil, fmt.Errorf("board: malformed FEN %q: need at least 4 fields", fen)
	}

	b := NewEmpty()
	b.hash = zobrist.InitialSeed

	sq := types.SqA8
	for i := 0; i < len(fields[0]); i++ {
		ch := fields[0][i]
		switch {
		case ch == '/':
			continue
		case ch >= '1' && ch <= '8':
			n, _ := strconv.Atoi(string(ch))
			sq += types.Square(n)
		default:
			if sq > types.SqH1 {
				return nil, fmt.Errorf("board: malformed FEN %q: too many squares", fen)
			}
			lower := ch | 0x20
			kind, ok := pieceFromChar[lower]
			if !ok {
				return nil, fmt.Errorf("board: malformed FEN %q: bad piece char %q", fen, ch)
			}
			color := types.White
			if ch >= 'a' && ch <= 'z' {
				color = types.Black
			}
			b.putPiece(color, kind, sq)
			sq++
		}
	}

	switch fields[1] {
	case "w":
		b.stm = types.White
	case "b":
		b.stm = types.Black
		b.hash ^= zobrist.SideToMove[types.White]
		b.hash ^= zobrist.SideToMove[types.Black]
	default:
		return nil, fmt.Errorf("board: malformed FEN %q: bad side to move %q", fen, fields[1])
	}

	if fields[2] != "-" {
		for _, ch := range fields[2] {
			switch ch {
			case 'K':
				b.castling |= types.CastlingWhiteOO
			case 'Q':
				b.castling |= types.CastlingWhiteOOO
			case 'k':
				b.castling |= types.CastlingBlackOO
			case 'q':
				b.castling |= types.CastlingBlackOOO
			default:
				return nil, fmt.Errorf("board: malformed FEN %q: bad castling char %q", fen, ch)
			}
		}
	}
	b.hash ^= zobrist.Castling[b.castling]

	b.ep = types.SqNone
	if fields[3] != "-" {
		epSq, err := types.ParseSquare(fields[3])
		if err != nil {
			return nil, fmt.Errorf("board: malformed FEN %q: bad en-passant field: %w", fen, err)
		}
		b.ep = epSq
		b.hash ^= zobrist.EpFile[epSq.File()]
	}

	b.halfmove = 0
	b.fullmove = 1
	if len(fields) >= 5 {
		if n, err := strconv.Atoi(fields[4]); err == nil {
			b.halfmove = n
		}
	}
	if len(fields) >= 6 {
		if n, err := strconv.Atoi(fields[5]); err == nil {
			b.fullmove = n
		}
	}

	if b.bb[types.White][types.King].PopCount() != 1 || b.bb[types.Black][types.King].PopCount() != 1 {
		return nil, fmt.Errorf("board: malformed FEN %q: must have exactly one king per side", fen)
	}

	return b, nil
}

// FEN serializes b back to Forsyth-Edwards notation.
func (b *Board) FEN() string {
	var sb strings.Builder

	for r := types.Rank8; ; r-- {
		run := 0
		for f := types.FileA; f <= types.FileH; f++ {
			p := b.mailbox[types.SquareOf(f, r)]
			if p == types.NoPiece {
				run++
				continue
			}
			if run > 0 {
				sb.WriteString(strconv.Itoa(run))
				run = 0
			}
			sb.WriteString(p.String())
		}
		if run > 0 {
			sb.WriteString(strconv.Itoa(run))
		}
		if r == types.Rank1 {
			break
		}
		sb.WriteByte('/')
	}

	sb.WriteByte(' ')
	if b.stm == types.White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}

	sb.WriteByte(' ')
	sb.WriteString(b.castling.String())

	sb.WriteByte(' ')
	if b.ep == types.SqNone {
		sb.WriteByte('-')
	} else {
		sb.WriteString(b.ep.String())
	}

	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(b.halfmove))
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(b.fullmove))

	return sb.String()
}

func (b *Board) String() string {
	var sb strings.Builder
	for sq := types.SqA8; sq <= types.SqH1; sq++ {
		sb.WriteString(b.mailbox[sq].String())
		sb.WriteByte(' ')
		if sq.File() == types.FileH {
			sb.WriteByte('\n')
		}
	}
	sb.WriteString(b.FEN())
	return sb.String()
}
