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

package config

// searchConfiguration toggles and tunes the search component. Every
// feature beyond plain alpha-beta (quiescence, SEE, null-move,
// killers/history) can be switched off to fall back to the minimal
// behaviour.
type searchConfiguration struct {
	// Transposition table
	UseTT  bool
	TTSize int // MB

	// Move ordering
	UseKiller  bool
	UseHistory bool
	UseSEE     bool

	// Quiescence search
	UseQuiescence      bool
	MaxQuiescenceDepth int

	// Null-move pruning
	UseNullMove  bool
	NmpDepth     int
	NmpReduction int

	// Mate distance pruning
	UseMDP bool

	// Iterative deepening / time control
	MaxDepth int
}

func init() {
	Settings.Search.UseTT = true
	Settings.Search.TTSize = 64

	Settings.Search.UseKiller = true
	Settings.Search.UseHistory = true
	Settings.Search.UseSEE = true

	Settings.Search.UseQuiescence = true
	Settings.Search.MaxQuiescenceDepth = 16

	Settings.Search.UseNullMove = true
	Settings.Search.NmpDepth = 3
	Settings.Search.NmpReduction = 2

	Settings.Search.UseMDP = true

	Settings.Search.MaxDepth = 64
}
