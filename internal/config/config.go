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

// Package config holds the engine's tunable settings: a package-level
// Settings value with defaults set in init(), optionally overridden by a
// TOML file read with github.com/BurntSushi/toml.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// LogLevel and TestLogLevel follow go-logging's Level ordering
// (0=CRITICAL .. 5=DEBUG); kept as plain ints here so config.toml does not
// need to import the logging package.
var (
	LogLevel     = 4 // INFO
	TestLogLevel = 3 // NOTICE
)

type conf struct {
	Search searchConfiguration
	Eval   evalConfiguration
}

// Settings is the single global configuration instance consulted
// throughout the engine. Mutating it at runtime (e.g. from a UCI
// "setoption") is expected and safe between searches.
var Settings conf

// Setup reads path as a TOML file and overlays it onto the defaults
// already set by this package's init() functions. A missing file is not
// an error: the engine runs fine on defaults alone.
func Setup(path string) error {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil
	}
	if _, err := toml.DecodeFile(path, &Settings); err != nil {
		return fmt.Errorf("config: decoding %s: %w", path, err)
	}
	return nil
}

func (c conf) String() string {
	return fmt.Sprintf("Search: %+v\nEval: %+v", c.Search, c.Eval)
}
