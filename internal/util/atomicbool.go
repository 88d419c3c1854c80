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

package util

import "sync/atomic"

// Bool is an atomic boolean flag, used for the cooperative search stop
// signal set from the UCI goroutine and polled from the search goroutine.
type Bool struct {
	v int32
}

// NewBool creates a Bool initialized to initial.
func NewBool(initial bool) *Bool {
	b := &Bool{}
	b.Store(initial)
	return b
}

// Load reads the current value.
func (b *Bool) Load() bool {
	return atomic.LoadInt32(&b.v) != 0
}

// Store sets the value.
func (b *Bool) Store(val bool) {
	var i int32
	if val {
		i = 1
	}
	atomic.StoreInt32(&b.v, i)
}

// Swap sets the value and returns the previous one.
func (b *Bool) Swap(val bool) bool {
	var i int32
	if val {
		i = 1
	}
	return atomic.SwapInt32(&b.v, i) != 0
}

// CAS does a compare-and-swap.
func (b *Bool) CAS(old, new bool) bool {
	var oi, ni int32
	if old {
		oi = 1
	}
	if new {
		ni = 1
	}
	return atomic.CompareAndSwapInt32(&b.v, oi, ni)
}
