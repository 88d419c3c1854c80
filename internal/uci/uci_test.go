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

package uci

import (
	"bufio"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func newTestHandler(t *testing.T) (*Handler, *strings.Builder) {
	t.Helper()
	var out strings.Builder
	h := NewHandlerIO(strings.NewReader(""), &out)
	return h, &out
}

func lines(out *strings.Builder) []string {
	var result []string
	scanner := bufio.NewScanner(strings.NewReader(out.String()))
	for scanner.Scan() {
		result = append(result, scanner.Text())
	}
	return result
}

func TestUciHandshake(t *testing.T) {
	h, out := newTestHandler(t)
	h.Command("uci")

	got := lines(out)
	assert.Contains(t, got, "id name chess-engine")
	assert.Contains(t, got, "uciok")
}

func TestIsReady(t *testing.T) {
	h, out := newTestHandler(t)
	h.Command("isready")
	assert.Contains(t, lines(out), "readyok")
}

func TestPositionStartposWithMoves(t *testing.T) {
	h, _ := newTestHandler(t)
	h.Command("position startpos moves e2e4 e7e5")

	assert.Equal(t, "rnbqkbnr/pppp1ppp/8/4p3/4P3/8/PPPP1PPP/RNBQKBNR w KQkq e6 0 2", h.pos.FEN())
}

func TestPositionFen(t *testing.T) {
	h, _ := newTestHandler(t)
	fen := "8/8/8/8/8/8/8/K6k w - - 0 1"
	h.Command("position fen " + fen)
	assert.Equal(t, fen, h.pos.FEN())
}

func TestGoDepthReturnsBestMove(t *testing.T) {
	h, out := newTestHandler(t)
	h.Command("go depth 2")
	// go launches the search on its own goroutine; wait for it to finish
	// before inspecting the output.
	h.srch.WaitWhileSearching()

	found := false
	for _, l := range lines(out) {
		if strings.HasPrefix(l, "bestmove ") {
			found = true
		}
	}
	assert.True(t, found)
}

// TestStopHaltsInfiniteSearch drives the seam the async go exists for:
// an infinite search must keep the command loop responsive, and a stop
// must terminate it with a bestmove.
func TestStopHaltsInfiniteSearch(t *testing.T) {
	h, out := newTestHandler(t)
	h.Command("go infinite")

	time.Sleep(10 * time.Millisecond)
	h.Command("stop")
	h.srch.WaitWhileSearching()

	found := false
	for _, l := range lines(out) {
		if strings.HasPrefix(l, "bestmove ") {
			found = true
		}
	}
	assert.True(t, found)
}

func TestUnknownCommandRepliesInfoString(t *testing.T) {
	h, out := newTestHandler(t)
	h.Command("notacommand")
	assert.Contains(t, lines(out), "info string unknown option notacommand")
}

func TestQuitStopsLoop(t *testing.T) {
	h, _ := newTestHandler(t)
	h.Command("quit")
	assert.True(t, h.quit)
}
