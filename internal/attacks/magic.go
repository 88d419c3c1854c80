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

package attacks

import "github.com/ggodpl/chess-engine/internal/types"

// Magic holds one square's magic-bitboard lookup: mask the relevant
// occupancy bits, multiply by a magic constant, and shift to get an
// index into a precomputed attack table. The magic constants are found
// at startup by initMagics, not hardcoded, so they are correct under
// this package's square-indexing convention regardless of what
// convention any other engine's tables used.
type Magic struct {
	Mask    types.Bitboard
	Number  uint64
	Shift   uint
	Attacks []types.Bitboard
}

var (
	RookMagics   [64]Magic
	BishopMagics [64]Magic
)

var rookDirs = [4]types.Direction{types.North, types.South, types.East, types.West}
var bishopDirs = [4]types.Direction{types.NorthEast, types.NorthWest, types.SouthEast, types.SouthWest}

func slidingAttack(dirs [4]types.Direction, sq types.Square, occ types.Bitboard) types.Bitboard {
	var bb types.Bitboard
	for _, d := range dirs {
		bb |= rayAttacks(sq, d, occ)
	}
	return bb
}

func relevantMask(dirs [4]types.Direction, sq types.Square) types.Bitboard {
	full := slidingAttack(dirs, sq, 0)
	edges := (types.RankBB[types.Rank1] | types.RankBB[types.Rank8]) &^ types.RankBB[sq.Rank()]
	edges |= (types.FileBB[types.FileA] | types.FileBB[types.FileH]) &^ types.FileBB[sq.File()]
	return full &^ edges
}

// xorshift64star is a small deterministic PRNG: same seed, same stream,
// every run. Used only to search for magic constants at startup.
type xorshift64star struct{ state uint64 }

func newXorshift64star(seed uint64) *xorshift64star {
	return &xorshift64star{state: seed}
}

func (x *xorshift64star) next() uint64 {
	x.state ^= x.state >> 12
	x.state ^= x.state << 25
	x.state ^= x.state >> 27
	return x.state * 2685821657736338717
}

// sparse returns a sparsely-populated 64-bit candidate, which converges
// to a working magic number faster than a uniformly random one.
func (x *xorshift64star) sparse() uint64 {
	return x.next() & x.next() & x.next()
}

func initMagics() {
	initMagicsFor(rookDirs, &RookMagics, 0xABCDEF1234567890)
	initMagicsFor(bishopDirs, &BishopMagics, 0x0FEDCBA987654321)
}

func initMagicsFor(dirs [4]types.Direction, table *[64]Magic, seed uint64) {
	rng := newXorshift64star(seed)

	var occupancy [4096]types.Bitboard
	var reference [4096]types.Bitboard
	var epoch [4096]int
	currentEpoch := 0

	for sq := types.SqA8; sq <= types.SqH1; sq++ {
		mask := relevantMask(dirs, sq)
		bits := mask.PopCount()
		size := 1 << uint(bits)

		// Carry-Rippler: enumerate every subset of mask, including 0.
		n := 0
		subset := types.Bitboard(0)
		for {
			occupancy[n] = subset
			reference[n] = slidingAttack(dirs, sq, subset)
			n++
			subset = (subset - mask) & mask
			if subset == 0 {
				break
			}
		}

		m := &table[sq]
		m.Mask = mask
		m.Shift = uint(64 - bits)
		m.Attacks = make([]types.Bitboard, size)

		for {
			// Sparse candidates only: a magic number must place all the
			// mask's high bits into the top byte of the product for the
			// multiply-shift index to spread subsets well.
			var candidate uint64
			for {
				candidate = rng.sparse()
				if types.Bitboard((candidate*uint64(mask))>>56).PopCount() >= 6 {
					break
				}
			}

			currentEpoch++
			failed := false
			for i := 0; i < n && !failed; i++ {
				idx := (uint64(occupancy[i]) * candidate) >> m.Shift
				if epoch[idx] != currentEpoch {
					epoch[idx] = currentEpoch
					m.Attacks[idx] = reference[i]
				} else if m.Attacks[idx] != reference[i] {
					failed = true
				}
			}
			if !failed {
				m.Number = candidate
				break
			}
		}
	}
}

// GetRookAttacks returns a rook's attack set on sq given the full board
// occupancy occ.
func GetRookAttacks(sq types.Square, occ types.Bitboard) types.Bitboard {
	m := &RookMagics[sq]
	idx := (uint64(occ&m.Mask) * m.Number) >> m.Shift
	return m.Attacks[idx]
}

// GetBishopAttacks returns a bishop's attack set on sq given the full
// board occupancy occ.
func GetBishopAttacks(sq types.Square, occ types.Bitboard) types.Bitboard {
	m := &BishopMagics[sq]
	idx := (uint64(occ&m.Mask) * m.Number) >> m.Shift
	return m.Attacks[idx]
}

// GetQueenAttacks returns a queen's attack set on sq given the full board
// occupancy occ.
func GetQueenAttacks(sq types.Square, occ types.Bitboard) types.Bitboard {
	return GetRookAttacks(sq, occ) | GetBishopAttacks(sq, occ)
}

// GetAttacksBb returns the attack set for piece kind pk on sq given
// occupancy occ. Non-sliding kinds ignore occ.
func GetAttacksBb(pk types.PieceKind, sq types.Square, occ types.Bitboard) types.Bitboard {
	switch pk {
	case types.Knight:
		return KnightAttacks[sq]
	case types.King:
		return KingAttacks[sq]
	case types.Bishop:
		return GetBishopAttacks(sq, occ)
	case types.Rook:
		return GetRookAttacks(sq, occ)
	case types.Queen:
		return GetQueenAttacks(sq, occ)
	default:
		return 0
	}
}
