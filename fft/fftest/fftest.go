// {{{ Copyright (c) Paul R. Tagliamonte <paul@k3xec.com>, 2020
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE. }}}

// Package fftest contains the conformance tests every fft.Planner backend
// must pass. Backend packages call Run from their own test files.
package fftest

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/stretchr/testify/assert"

	"hz.tools/rf"

	"github.com/jcfitzpatrick12/spectre-lite/fft"
)

func generateCw(buf []complex128, freq rf.Hz, sampleRate int, phase float64) {
	var (
		carrierFreq float64 = float64(freq)
		tau                 = math.Pi * 2
	)

	for i := range buf {
		now := float64(i) / float64(sampleRate)
		buf[i] = complex(
			math.Cos(tau*carrierFreq*now+phase),
			math.Sin(tau*carrierFreq*now+phase),
		)
	}
}

type testFrequencies struct {
	Frequency rf.Hz
	Index     int
}

// Run will run the standard forward DFT tests against the provided Planner.
func Run(t *testing.T, planner fft.Planner) {
	t.Run("ForwardFFT", func(t *testing.T) {
		testForwardFFT(t, planner)
	})

	t.Run("DCOffset", func(t *testing.T) {
		testDCOffset(t, planner)
	})

	t.Run("PlanReuse", func(t *testing.T) {
		testPlanReuse(t, planner)
	})

	t.Run("EmptyScratch", func(t *testing.T) {
		testEmptyScratch(t, planner)
	})
}

func testForwardFFT(t *testing.T, planner fft.Planner) {
	scratch := make([]complex128, 1024)

	plan, err := planner(scratch)
	assert.NoError(t, err)
	defer plan.Close()

	for _, tfreq := range []testFrequencies{
		{Frequency: rf.Hz(10), Index: 0},
		{Frequency: rf.Hz(900000), Index: 512},
		{Frequency: rf.Hz(450000), Index: 256},
		{Frequency: rf.Hz(225000), Index: 128},
	} {
		generateCw(scratch, tfreq.Frequency, 1.8e6, 0)
		assert.NoError(t, plan.Transform())

		var (
			powerMax float64
			powerI   = -1
		)
		for i := range scratch {
			power := cmplx.Abs(scratch[i])
			if power > powerMax {
				powerMax = power
				powerI = i
			}
		}
		assert.Equal(t, tfreq.Index, powerI)
	}
}

func testDCOffset(t *testing.T, planner fft.Planner) {
	scratch := make([]complex128, 64)

	plan, err := planner(scratch)
	assert.NoError(t, err)
	defer plan.Close()

	for i := range scratch {
		scratch[i] = complex(0.5, 0)
	}
	assert.NoError(t, plan.Transform())

	// An unnormalized forward DFT puts c*N in bin 0 and nothing anywhere
	// else.
	assert.InDelta(t, 32, real(scratch[0]), 1e-9)
	assert.InDelta(t, 0, imag(scratch[0]), 1e-9)
	for i := 1; i < len(scratch); i++ {
		assert.InDelta(t, 0, cmplx.Abs(scratch[i]), 1e-9)
	}
}

func testPlanReuse(t *testing.T, planner fft.Planner) {
	scratch := make([]complex128, 256)

	plan, err := planner(scratch)
	assert.NoError(t, err)
	defer plan.Close()

	// Two transforms over the same plan must agree with each other when
	// fed the same samples.
	generateCw(scratch, rf.Hz(8000), 64000, 0.25)
	assert.NoError(t, plan.Transform())
	first := make([]complex128, len(scratch))
	copy(first, scratch)

	generateCw(scratch, rf.Hz(8000), 64000, 0.25)
	assert.NoError(t, plan.Transform())

	for i := range scratch {
		assert.InDelta(t, real(first[i]), real(scratch[i]), 1e-9)
		assert.InDelta(t, imag(first[i]), imag(scratch[i]), 1e-9)
	}
}

func testEmptyScratch(t *testing.T, planner fft.Planner) {
	_, err := planner(nil)
	assert.ErrorIs(t, err, fft.ErrEmptyScratch)

	_, err = planner([]complex128{})
	assert.ErrorIs(t, err, fft.ErrEmptyScratch)
}

// vim: foldmethod=marker
