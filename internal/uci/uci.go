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

// Package uci is the thin line-oriented text shell that drives the
// engine core: it owns no chess logic of its own, only command parsing
// and the translation between UCI wire format and the board/movegen/
// search packages. It consumes the core through four operations: FEN
// load, legal-move enumeration, make/unmake, and search.
package uci

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/op/go-logging"

	"github.com/ggodpl/chess-engine/internal/board"
	mylogging "github.com/ggodpl/chess-engine/internal/logging"
	"github.com/ggodpl/chess-engine/internal/movegen"
	"github.com/ggodpl/chess-engine/internal/search"
)

const (
	engineName   = "chess-engine"
	engineAuthor = "ggod"
)

// Handler reads UCI commands line by line and writes UCI responses.
// Create one with NewHandler; call Loop to run until "quit".
type Handler struct {
	in  *bufio.Scanner
	out *bufio.Writer
	// outLock serializes writes: "info" and "bestmove" lines arrive from
	// the search goroutine while the command loop may be answering
	// "isready" on its own.
	outLock sync.Mutex
	log     *logging.Logger

	pos  *board.Board
	srch *search.Search
	quit bool
}

// NewHandler wires a Handler to stdin/stdout, a fresh startpos board
// and a fresh Search instance.
func NewHandler() *Handler {
	pos, _ := board.NewBoardFromFEN(board.StartFEN)
	h := &Handler{
		in:   bufio.NewScanner(os.Stdin),
		out:  bufio.NewWriter(os.Stdout),
		log:  mylogging.GetUciLog(),
		pos:  pos,
		srch: search.NewSearch(),
	}
	h.srch.InfoFunc = h.sendIterationInfo
	h.srch.ResultFunc = h.sendBestMove
	return h
}

// NewHandlerIO wires a Handler to explicit reader/writer streams, used
// by tests to drive the protocol without touching the real stdio.
func NewHandlerIO(r io.Reader, w io.Writer) *Handler {
	pos, _ := board.NewBoardFromFEN(board.StartFEN)
	h := &Handler{
		in:   bufio.NewScanner(r),
		out:  bufio.NewWriter(w),
		log:  mylogging.GetUciLog(),
		pos:  pos,
		srch: search.NewSearch(),
	}
	h.srch.InfoFunc = h.sendIterationInfo
	h.srch.ResultFunc = h.sendBestMove
	return h
}

// Loop reads lines until EOF or "quit" is received.
func (h *Handler) Loop() {
	for !h.quit && h.in.Scan() {
		h.Command(h.in.Text())
	}
	h.srch.Stop()
	h.srch.WaitWhileSearching()
	h.flush()
}

// Command handles a single line of UCI protocol.
func (h *Handler) Command(line string) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return
	}
	h.log.Debugf("< %s", line)

	switch fields[0] {
	case "uci":
		h.send("id name " + engineName)
		h.send("id author " + engineAuthor)
		h.send("uciok")
	case "isready":
		h.send("readyok")
	case "ucinewgame":
		h.pos, _ = board.NewBoardFromFEN(board.StartFEN)
		h.srch.NewGame()
	case "position":
		h.handlePosition(fields[1:])
	case "go":
		h.handleGo(fields[1:])
	case "stop":
		h.srch.Stop()
	case "quit":
		h.srch.Stop()
		h.srch.WaitWhileSearching()
		h.quit = true
	default:
		h.send(fmt.Sprintf("info string unknown option %s", fields[0]))
	}
	h.flush()
}

func (h *Handler) send(line string) {
	h.log.Debugf("> %s", line)
	h.outLock.Lock()
	defer h.outLock.Unlock()
	_, _ = h.out.WriteString(line)
	_, _ = h.out.WriteString("\n")
	_ = h.out.Flush()
}

func (h *Handler) flush() {
	h.outLock.Lock()
	defer h.outLock.Unlock()
	_ = h.out.Flush()
}

func (h *Handler) handlePosition(args []string) {
	if len(args) == 0 {
		return
	}

	i := 0
	switch args[0] {
	case "startpos":
		h.pos, _ = board.NewBoardFromFEN(board.StartFEN)
		i = 1
	case "fen":
		if len(args) < 7 {
			h.send("info string malformed fen in position command")
			return
		}
		fen := strings.Join(args[1:7], " ")
		b, err := board.NewBoardFromFEN(fen)
		if err != nil {
			h.send(fmt.Sprintf("info string %s", err))
			return
		}
		h.pos = b
		i = 7
	default:
		h.send("info string unknown option " + args[0])
		return
	}

	if i < len(args) && args[i] == "moves" {
		for _, mv := range args[i+1:] {
			m, ok := movegen.ParseUCIMove(h.pos, mv)
			if !ok {
				h.send(fmt.Sprintf("info string illegal move %s", mv))
				break
			}
			h.pos.MakeMove(m)
		}
	}
}

func (h *Handler) handleGo(args []string) {
	if h.srch.IsSearching() {
		h.send("info string search already running")
		return
	}

	limits := search.Limits{}

	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "infinite":
			limits.Infinite = true
		case "depth":
			i++
			limits.Depth = atoiOr(args, i, 0)
		case "movetime":
			i++
			limits.MoveTime = time.Duration(atoiOr(args, i, 0)) * time.Millisecond
		case "wtime":
			i++
			limits.TimeControl = true
			limits.WhiteTime = time.Duration(atoiOr(args, i, 0)) * time.Millisecond
		case "btime":
			i++
			limits.TimeControl = true
			limits.BlackTime = time.Duration(atoiOr(args, i, 0)) * time.Millisecond
		case "winc":
			i++
			limits.WhiteInc = time.Duration(atoiOr(args, i, 0)) * time.Millisecond
		case "binc":
			i++
			limits.BlackInc = time.Duration(atoiOr(args, i, 0)) * time.Millisecond
		case "movestogo":
			i++
			limits.MovesToGo = atoiOr(args, i, 0)
		}
	}

	// A bare "go" with no limit tokens at all is an infinite search.
	if !limits.Infinite && !limits.TimeControl && limits.Depth == 0 && limits.MoveTime == 0 {
		limits.Infinite = true
	}

	// The search runs on its own goroutine so this loop stays free to
	// process "stop" and "isready"; bestmove is emitted by sendBestMove
	// when the search returns. The position is cloned so a subsequent
	// "position" command cannot mutate the board mid-search.
	h.srch.StartSearch(h.pos.Clone(), limits)
}

func (h *Handler) sendBestMove(result search.Result) {
	if result.BestMove.IsValid() {
		h.send("bestmove " + result.BestMove.UCI())
	} else {
		h.send("bestmove 0000")
	}
}

func atoiOr(args []string, i, fallback int) int {
	if i < 0 || i >= len(args) {
		return fallback
	}
	n, err := strconv.Atoi(args[i])
	if err != nil {
		return fallback
	}
	return n
}

func (h *Handler) sendIterationInfo(r search.Result) {
	nps := uint64(0)
	if r.Elapsed > 0 {
		nps = uint64(float64(r.Nodes) / r.Elapsed.Seconds())
	}
	h.send(fmt.Sprintf("info depth %d score cp %d nodes %d nps %d time %d pv %s",
		r.Depth, int(r.Value), r.Nodes, nps, r.Elapsed.Milliseconds(), pvString(r.PV)))
}

func pvString(pv search.PV) string {
	parts := make([]string, len(pv))
	for i, m := range pv {
		parts[i] = m.UCI()
	}
	return strings.Join(parts, " ")
}
