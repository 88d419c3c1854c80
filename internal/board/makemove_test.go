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

// Round-trip and hash-consistency tests live in an external test
// package (board_test) so they can drive real legal moves through
// movegen without internal/board importing internal/movegen back.
package board_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ggodpl/chess-engine/internal/board"
	"github.com/ggodpl/chess-engine/internal/movegen"
	"github.com/ggodpl/chess-engine/internal/zobrist"
)

// recomputeHash rebuilds a position's Zobrist key from scratch via its
// FEN, the independent oracle the incrementally maintained hash is
// checked against.
func recomputeHash(t *testing.T, b *board.Board) zobrist.Key {
	t.Helper()
	fresh, err := board.NewBoardFromFEN(b.FEN())
	assert.NoError(t, err)
	return fresh.Hash()
}

func TestMakeUnmakeRoundTripFromStartpos(t *testing.T) {
	b, err := board.NewBoardFromFEN(board.StartFEN)
	assert.NoError(t, err)

	before := b.FEN()
	beforeHash := b.Hash()

	for _, m := range movegen.GenerateLegal(b) {
		st := b.MakeMove(m)
		b.UnmakeMove(m, st)
		assert.Equal(t, before, b.FEN(), "unmake must restore FEN exactly for move %s", m.UCI())
		assert.Equal(t, beforeHash, b.Hash(), "unmake must restore hash exactly for move %s", m.UCI())
	}
}

// TestIncrementalHashMatchesRecompute plays a short random-ish legal
// sequence (the ply-th legal move modulo the move count, deterministic) from several
// positions and checks the incrementally maintained hash against one
// recomputed from scratch after every move.
func TestIncrementalHashMatchesRecompute(t *testing.T) {
	fens := []string{
		board.StartFEN,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
	}

	for _, fen := range fens {
		b, err := board.NewBoardFromFEN(fen)
		assert.NoError(t, err)

		for ply := 0; ply < 6; ply++ {
			moves := movegen.GenerateLegal(b)
			if len(moves) == 0 {
				break
			}
			m := moves[ply%len(moves)]
			b.MakeMove(m)
			assert.Equal(t, recomputeHash(t, b), b.Hash(), "incremental hash diverged after %s from %s", m.UCI(), fen)
		}
	}
}

func TestFENRoundTripFromStartpos(t *testing.T) {
	b, err := board.NewBoardFromFEN(board.StartFEN)
	assert.NoError(t, err)

	for _, m := range movegen.GenerateLegal(b)[:5] {
		st := b.MakeMove(m)
		reparsed, err := board.NewBoardFromFEN(b.FEN())
		assert.NoError(t, err)
		assert.Equal(t, b.FEN(), reparsed.FEN())
		b.UnmakeMove(m, st)
	}
}

func TestBoardInvariantsAfterMoves(t *testing.T) {
	b, err := board.NewBoardFromFEN("r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")
	assert.NoError(t, err)

	for _, m := range movegen.GenerateLegal(b) {
		st := b.MakeMove(m)

		assert.Equal(t, b.ColorBb(0)|b.ColorBb(1), b.Occupied())
		assert.Zero(t, b.ColorBb(0)&b.ColorBb(1))
		assert.Equal(t, 1, b.PieceBb(0, 5).PopCount())
		assert.Equal(t, 1, b.PieceBb(1, 5).PopCount())

		b.UnmakeMove(m, st)
	}
}
