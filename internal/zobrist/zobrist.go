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

// Package zobrist holds the fixed-seed random table used to compute and
// incrementally update each position's hash key.
package zobrist

import (
	"math"
	"math/rand"

	"github.com/ggodpl/chess-engine/internal/types"
)

// Key is a Zobrist hash.
type Key = uint64

// InitialSeed is the hash value of the empty, un-XORed state before any
// piece/castling/side/en-passant words have been folded in. It is
// deliberately not zero; changing it changes every position key.
const InitialSeed Key = math.MaxInt64

// fixedSeed drives a dedicated rand.Source so the table is identical on
// every run: hashes are only ever compared within one process's lifetime
// (as a TT key), never persisted or
// compared across builds, so reproducibility - not unguessability - is
// what matters here.
const fixedSeed = 0x5EED_5EED_5EED_5EED

var (
	// Piece[p][sq] is the word for piece p standing on sq, p indexed
	// 0..11 per types.Piece.Index.
	Piece [12][64]Key
	// Castling[rights] is precomputed as the XOR-fold of the held
	// rights' four base words, so a castling-rights change is a single
	// table lookup rather than up to four XORs.
	Castling [16]Key
	// SideToMove holds two words, one per color. Both are XORed
	// unconditionally on every MakeMove/MakeNullMove (the unmake calls
	// restore the saved key instead), never just the moving side's;
	// changing that pairing would change every key.
	SideToMove [2]Key
	// EpFile[f] is the word for an en-passant capture being available
	// on file f.
	EpFile [8]Key
	// Unused is drawn from the stream to pin the table's layout at 783
	// words, but never folded into any hash.
	Unused Key
)

func init() {
	rng := rand.New(rand.NewSource(fixedSeed))
	next := func() Key { return rng.Uint64() }

	for p := 0; p < 12; p++ {
		for sq := 0; sq < 64; sq++ {
			Piece[p][sq] = next()
		}
	}

	var base [4]Key
	for i := range base {
		base[i] = next()
	}
	for r := types.CastlingRights(0); r < 16; r++ {
		var k Key
		if r.Has(types.CastlingWhiteOO) {
			k ^= base[0]
		}
		if r.Has(types.CastlingWhiteOOO) {
			k ^= base[1]
		}
		if r.Has(types.CastlingBlackOO) {
			k ^= base[2]
		}
		if r.Has(types.CastlingBlackOOO) {
			k ^= base[3]
		}
		Castling[r] = k
	}

	SideToMove[types.White] = next()
	SideToMove[types.Black] = next()

	for f := 0; f < 8; f++ {
		EpFile[f] = next()
	}

	Unused = next()
}
