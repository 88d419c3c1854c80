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

// Command chessengine is the process entrypoint: it loads
// configuration and hands off to the UCI driver loop. All chess logic
// lives in internal/*; this file only wires flags to it.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/ggodpl/chess-engine/internal/config"
	"github.com/ggodpl/chess-engine/internal/uci"
)

func main() {
	configFile := flag.String("config", "./config.toml", "path to configuration settings file")
	perftFen := flag.String("perft", "", "run perft from the given FEN and exit (use with -perftdepth)")
	perftDepth := flag.Int("perftdepth", 5, "perft depth when -perft is set")
	flag.Parse()

	if err := config.Setup(*configFile); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if *perftFen != "" {
		runPerft(*perftFen, *perftDepth)
		return
	}

	uci.NewHandler().Loop()
}
