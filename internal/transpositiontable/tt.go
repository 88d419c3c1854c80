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

package transpositiontable

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/ggodpl/chess-engine/internal/types"
)

var out = message.NewPrinter(language.German)

// MaxSizeInMB caps how large a table Resize will allocate.
const MaxSizeInMB = 65_536

const entrySize = 32 // approximate bytes per Entry, for sizing

// Table is a fixed-size, power-of-2-slotted transposition table. Each
// slot is replaced unconditionally by a newer search generation or by a
// different key; within the same generation a result for the same key
// replaces it only if searched at least as deep. Depth is not compared
// when two different keys collide on a slot - the simplest correct
// replacement policy, trading some hit rate for no extra bookkeeping.
type Table struct {
	entries    []Entry
	mask       uint64
	generation uint32
	hits       uint64
	probes     uint64
}

// NewTable allocates a Table sized to approximately sizeInMB megabytes,
// rounded down to a power of two number of entries.
func NewTable(sizeInMB int) *Table {
	t := &Table{}
	t.Resize(sizeInMB)
	return t
}

// Resize reallocates the table, discarding all existing entries.
func (t *Table) Resize(sizeInMB int) {
	if sizeInMB > MaxSizeInMB {
		sizeInMB = MaxSizeInMB
	}
	if sizeInMB < 1 {
		sizeInMB = 1
	}
	numEntries := (sizeInMB * 1024 * 1024) / entrySize
	size := 1
	for size*2 <= numEntries {
		size *= 2
	}
	t.entries = make([]Entry, size)
	t.mask = uint64(size - 1)
}

// SizeReport renders the table's current size using German thousands
// grouping, the format used throughout the engine's info/log lines.
func (t *Table) SizeReport() string {
	return out.Sprintf("%d entries", len(t.entries))
}

// Clear empties every slot and resets the generation counter, used
// between games.
func (t *Table) Clear() {
	for i := range t.entries {
		t.entries[i] = Entry{}
	}
	t.generation = 0
	t.hits = 0
	t.probes = 0
}

// NewGeneration advances the replacement generation, called once at the
// start of each new search so stale entries from old searches are
// preferentially overwritten.
func (t *Table) NewGeneration() {
	t.generation++
}

// Generation returns the current replacement generation. An entry whose
// Generation differs was stored by an earlier search: its value bound no
// longer applies, only its best move is still worth using for ordering.
func (t *Table) Generation() uint32 {
	return t.generation
}

func (t *Table) index(key uint64) uint64 {
	return key & t.mask
}

// Probe looks up key, returning the entry and whether it was found.
func (t *Table) Probe(key uint64) (Entry, bool) {
	t.probes++
	e := &t.entries[t.index(key)]
	if e.Key == key && !e.Empty() {
		t.hits++
		return *e, true
	}
	return Entry{}, false
}

// Store writes an entry for key, replacing the current occupant unless
// it holds this same key, is from the same generation and was searched
// deeper. An occupant with a different key is always replaced.
func (t *Table) Store(key uint64, depth uint8, value types.Value, nt NodeType, best types.Move) {
	idx := t.index(key)
	e := &t.entries[idx]
	if !e.Empty() && e.Key == key && e.Generation == t.generation && e.Depth > depth {
		return
	}
	*e = Entry{
		Key:        key,
		Depth:      depth,
		Value:      value,
		NodeType:   nt,
		BestMove:   best,
		Generation: t.generation,
	}
}

// Stats returns (hits, probes) since the last Clear.
func (t *Table) Stats() (uint64, uint64) {
	return t.hits, t.probes
}
