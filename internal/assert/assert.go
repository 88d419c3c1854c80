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

// Package assert provides zero-cost-in-release invariant checks.
//
// When DEBUG is false (the default) Assert compiles down to a no-op call;
// the message arguments are still evaluated by the caller, so expensive
// diagnostics should be built lazily behind a closure where it matters.
package assert

import "fmt"

// DEBUG gates whether Assert actually checks anything. Flip to true only
// for local debugging builds; it is never true in a committed build.
const DEBUG = false

// Assert panics with msg (formatted with a) when test is false and DEBUG
// is enabled. It is a no-op otherwise.
func Assert(test bool, msg string, a ...interface{}) {
	if !DEBUG {
		return
	}
	if !test {
		panic(fmt.Sprintf(msg, a...))
	}
}
