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

package evaluator

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ggodpl/chess-engine/internal/board"
	"github.com/ggodpl/chess-engine/internal/types"
)

func TestEvaluateStartposIsSymmetric(t *testing.T) {
	b, err := board.NewBoardFromFEN(board.StartFEN)
	assert.NoError(t, err)

	white, black := Evaluate(b)
	assert.Equal(t, white, black, "startpos must score identically for both sides")
}

func TestCalculatePhaseStartposIsFullMiddlegame(t *testing.T) {
	b, err := board.NewBoardFromFEN(board.StartFEN)
	assert.NoError(t, err)
	assert.Equal(t, 256, CalculatePhase(b))
}

func TestCalculatePhaseBareKingsIsFullEndgame(t *testing.T) {
	b, err := board.NewBoardFromFEN("7k/8/8/8/8/8/8/7K w - - 0 1")
	assert.NoError(t, err)
	assert.Equal(t, 0, CalculatePhase(b))
}

func TestEvaluateExtraQueenScoresHigher(t *testing.T) {
	base, err := board.NewBoardFromFEN("4k3/8/8/8/8/8/8/4K3 w - - 0 1")
	assert.NoError(t, err)
	withQueen, err := board.NewBoardFromFEN("4k3/8/8/8/8/8/8/3QK3 w - - 0 1")
	assert.NoError(t, err)

	baseWhite, baseBlack := Evaluate(base)
	qWhite, qBlack := Evaluate(withQueen)

	assert.Greater(t, qWhite-qBlack, baseWhite-baseBlack)
}

func TestTerminalCheckmateScoresMateForWinner(t *testing.T) {
	b, err := board.NewBoardFromFEN("7k/6Q1/5K2/8/8/8/8/8 b - - 0 1")
	assert.NoError(t, err)

	white, black := Terminal(b)
	assert.Equal(t, types.ValueMate, white)
	assert.Equal(t, types.Value(0), black)
}

func TestTerminalStalemateIsDraw(t *testing.T) {
	b, err := board.NewBoardFromFEN("7k/5K2/6Q1/8/8/8/8/8 b - - 0 1")
	assert.NoError(t, err)

	white, black := Terminal(b)
	assert.Equal(t, types.ValueDraw, white)
	assert.Equal(t, types.ValueDraw, black)
}
