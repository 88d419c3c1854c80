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

package zobrist

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestTableWordsAreNonZeroAndDistinct checks that the seeded table is
// populated and that a handful of known-distinct table slots do not
// collide, which would otherwise silently merge two positions into one
// hash bucket.
func TestTableWordsAreNonZeroAndDistinct(t *testing.T) {
	assert.NotZero(t, Piece[0][0])
	assert.NotEqual(t, Piece[0][0], Piece[0][1])
	assert.NotEqual(t, Piece[0][0], Piece[1][0])
	assert.NotEqual(t, SideToMove[0], SideToMove[1])
}

// TestCastlingFoldIsXorOfBaseWords checks the precomputed Castling
// table against the four-base-word XOR-fold it documents: full rights
// equals the XOR of each single-right entry.
func TestCastlingFoldIsXorOfBaseWords(t *testing.T) {
	var folded Key
	for r := 1; r < 16; r <<= 1 {
		folded ^= Castling[r]
	}
	assert.Equal(t, folded, Castling[15])
}

func TestCastlingNoRightsIsZero(t *testing.T) {
	assert.Zero(t, Castling[0])
}

func TestEpFileWordsAreDistinct(t *testing.T) {
	seen := make(map[Key]bool)
	for _, k := range EpFile {
		assert.False(t, seen[k], "duplicate en-passant file word")
		seen[k] = true
	}
}
