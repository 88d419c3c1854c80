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

package movegen

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ggodpl/chess-engine/internal/board"
)

// Perft scenarios and expected node counts, per
// https://www.chessprogramming.org/Perft_Results, the standard
// correctness oracle. Depths are capped at 4 so the suite runs in well under a
// second; deeper depths (5, 6, ...) are the same recursion and are
// exercised manually, not in CI, since they run into the minutes.
func TestPerftStartpos(t *testing.T) {
	b, err := board.NewBoardFromFEN(board.StartFEN)
	assert.NoError(t, err)

	expected := []uint64{1, 20, 400, 8902, 197281}
	for depth, want := range expected {
		got := Perft(b, depth)
		assert.Equalf(t, want, got, "depth %d", depth)
	}
}

func TestPerftKiwipete(t *testing.T) {
	fen := "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"
	b, err := board.NewBoardFromFEN(fen)
	assert.NoError(t, err)

	expected := []uint64{1, 48, 2039, 97862}
	for depth, want := range expected {
		got := Perft(b, depth)
		assert.Equalf(t, want, got, "depth %d", depth)
	}
}

func TestPerftPosition3(t *testing.T) {
	fen := "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1"
	b, err := board.NewBoardFromFEN(fen)
	assert.NoError(t, err)

	expected := []uint64{1, 14, 191, 2812, 43238}
	for depth, want := range expected {
		got := Perft(b, depth)
		assert.Equalf(t, want, got, "depth %d", depth)
	}
}

func TestCheckmateDetection(t *testing.T) {
	b, err := board.NewBoardFromFEN("7k/6Q1/5K2/8/8/8/8/8 b - - 0 1")
	assert.NoError(t, err)
	assert.True(t, IsCheckmate(b))
	assert.Empty(t, GenerateLegal(b))
}

func TestStalemateDetection(t *testing.T) {
	b, err := board.NewBoardFromFEN("7k/5K2/6Q1/8/8/8/8/8 b - - 0 1")
	assert.NoError(t, err)
	assert.Empty(t, GenerateLegal(b))
	assert.False(t, IsCheckmate(b))
	assert.True(t, IsDraw(b))
}

// TestEnPassantDiscoveredCheck covers the EP-pin case: the pawn capture
// exposes the White king to the rook along rank 5, so it must not
// appear among the legal moves.
func TestEnPassantDiscoveredCheck(t *testing.T) {
	b, err := board.NewBoardFromFEN("8/8/8/KPp4r/8/8/8/7k w - c6 0 1")
	assert.NoError(t, err)

	for _, m := range GenerateLegal(b) {
		assert.NotEqual(t, "b5c6", m.UCI(), "en-passant capture must be illegal: exposes king on rank 5")
	}
}

// TestEnPassantBlocksCheck covers the sibling case to
// TestEnPassantDiscoveredCheck: the king is already singly checked by a
// bishop along a diagonal, and the en-passant capture doesn't take the
// checking piece but still lands on that diagonal between the bishop
// and the king, blocking the check rather than capturing it.
func TestEnPassantBlocksCheck(t *testing.T) {
	b, err := board.NewBoardFromFEN("2b4k/8/8/3Pp3/6K1/8/8/8 w - e6 0 1")
	assert.NoError(t, err)

	found := false
	for _, m := range GenerateLegal(b) {
		if m.UCI() == "d5e6" {
			found = true
		}
	}
	assert.True(t, found, "en-passant capture blocking the only check must be legal")
}

func TestPerftDivideSumsToTotal(t *testing.T) {
	b, err := board.NewBoardFromFEN(board.StartFEN)
	assert.NoError(t, err)

	divide := PerftDivide(b, 3)
	var sum uint64
	for _, n := range divide {
		sum += n
	}
	assert.Equal(t, Perft(b, 3), sum)
	assert.Len(t, divide, 20)
}
