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

// Package transpositiontable caches search results keyed by a
// position's Zobrist hash, so transpositions - the same position
// reached by different move orders - are scored once, not once per path.
package transpositiontable

import "github.com/ggodpl/chess-engine/internal/types"

// NodeType records what an entry's stored value means relative to the
// alpha-beta window it was computed in.
type NodeType uint8

const (
	// NoNodeType marks an empty entry.
	NoNodeType NodeType = iota
	// PV means value is an exact score.
	PV
	// Cut means value is a lower bound (a beta cutoff occurred).
	Cut
	// All means value is an upper bound (no move improved alpha).
	All
)

// Entry is one transposition-table slot.
type Entry struct {
	Key        uint64
	Depth      uint8
	Value      types.Value
	NodeType   NodeType
	BestMove   types.Move
	Generation uint32
}

// Empty reports whether the slot holds no entry.
func (e *Entry) Empty() bool {
	return e.NodeType == NoNodeType
}
