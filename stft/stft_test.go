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

package stft_test

import (
	"math/cmplx"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	spectrel "github.com/jcfitzpatrick12/spectre-lite"
	"github.com/jcfitzpatrick12/spectre-lite/fft/algofft"
	"github.com/jcfitzpatrick12/spectre-lite/stft"
)

func mustPlan(t require.TestingT, windowSize int) *stft.Plan {
	plan, err := stft.NewPlan(algofft.Planner, windowSize)
	require.NoError(t, err)
	return plan
}

func mustBoxcar(t require.TestingT, windowSize int) spectrel.Signal {
	window, err := spectrel.MakeWindow(spectrel.WindowBoxcar, windowSize)
	require.NoError(t, err)
	return window
}

// A one hertz cosine sampled at 8 Hz, transformed with a non-overlapping
// 8 tap boxcar, lands all its energy in the +1 Hz and -1 Hz bins.
func TestTransformCosineTone(t *testing.T) {
	plan := mustPlan(t, 8)
	defer plan.Close()

	signal, err := spectrel.MakeCosineSignal(32, 8, 1, 1, 0)
	require.NoError(t, err)

	sg, err := stft.Transform(plan, mustBoxcar(t, 8), signal, 8, 8)
	require.NoError(t, err)

	assert.Equal(t, 4, sg.NumSpectrums)
	assert.Equal(t, 8, sg.NumBins)
	assert.Equal(t, []float64{0, 1, 2, 3}, sg.Times)
	assert.Equal(t, []float64{0, 1, 2, 3, -4, -3, -2, -1}, sg.Frequencies)

	// Frames 1..3 are interior: their windows lie entirely inside the
	// signal, so each holds half the tone's energy at +1 Hz and half at
	// -1 Hz.
	for k := 1; k < 4; k++ {
		for m := 0; m < 8; m++ {
			mag := cmplx.Abs(sg.At(k, m))
			switch m {
			case 1, 7:
				assert.InDelta(t, 4, mag, 1e-9, "frame %d bin %d", k, m)
			default:
				assert.InDelta(t, 0, mag, 1e-9, "frame %d bin %d", k, m)
			}
		}
	}
}

// A constant signal under a boxcar window is a pure DC measurement: every
// interior frame reads c*W in bin 0 and nothing anywhere else, and the
// dangling first frame reads c times the number of taps that actually
// landed on the signal.
func TestTransformConstantSignal(t *testing.T) {
	plan := mustPlan(t, 4)
	defer plan.Close()

	signal, err := spectrel.MakeConstantSignal(16, 1)
	require.NoError(t, err)

	sg, err := stft.Transform(plan, mustBoxcar(t, 4), signal, 4, 4)
	require.NoError(t, err)
	require.Equal(t, 4, sg.NumSpectrums)

	for k := 1; k < 4; k++ {
		assert.InDelta(t, 4, real(sg.At(k, 0)), 1e-9)
		assert.InDelta(t, 0, imag(sg.At(k, 0)), 1e-9)
		for m := 1; m < 4; m++ {
			assert.InDelta(t, 0, cmplx.Abs(sg.At(k, m)), 1e-9)
		}
	}

	// Frame 0 is centered at index 0, so floor(W/2) of its taps dangle
	// past the start and read zero.
	assert.InDelta(t, 2, real(sg.At(0, 0)), 1e-9)
	assert.InDelta(t, 0, imag(sg.At(0, 0)), 1e-9)
}

func TestTransformPreconditions(t *testing.T) {
	plan := mustPlan(t, 9)
	defer plan.Close()

	signal, err := spectrel.MakeConstantSignal(8, 1)
	require.NoError(t, err)

	// Window longer than the signal.
	_, err = stft.Transform(plan, mustBoxcar(t, 9), signal, 1, 8)
	assert.ErrorIs(t, err, spectrel.ErrInvalidArgument)

	// Window length disagreeing with the plan scratch.
	longSignal, err := spectrel.MakeConstantSignal(32, 1)
	require.NoError(t, err)
	_, err = stft.Transform(plan, mustBoxcar(t, 8), longSignal, 1, 8)
	assert.ErrorIs(t, err, spectrel.ErrInvalidArgument)

	// Non-positive hop and sample rate.
	_, err = stft.Transform(plan, mustBoxcar(t, 9), longSignal, 0, 8)
	assert.ErrorIs(t, err, spectrel.ErrInvalidArgument)
	_, err = stft.Transform(plan, mustBoxcar(t, 9), longSignal, 1, 0)
	assert.ErrorIs(t, err, spectrel.ErrInvalidArgument)
}

func TestNewPlanInvalidSize(t *testing.T) {
	_, err := stft.NewPlan(algofft.Planner, 0)
	assert.ErrorIs(t, err, spectrel.ErrInvalidArgument)
}

func TestTransformAfterClose(t *testing.T) {
	plan := mustPlan(t, 8)
	assert.Equal(t, 8, plan.WindowSize())
	assert.NoError(t, plan.Close())

	signal, err := spectrel.MakeConstantSignal(16, 1)
	require.NoError(t, err)
	_, err = stft.Transform(plan, mustBoxcar(t, 8), signal, 4, 8)
	assert.ErrorIs(t, err, spectrel.ErrInvalidArgument)
}

// Frame count, axis length, time, and frequency layout laws over random
// geometries.
func TestTransformLaws(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		var (
			windowSize = rapid.IntRange(1, 64).Draw(t, "windowSize")
			hop        = rapid.IntRange(1, 64).Draw(t, "hop")
			extra      = rapid.IntRange(0, 256).Draw(t, "extra")
			sampleRate = float64(rapid.IntRange(1, 1_000_000).Draw(t, "sampleRate"))

			numSamples = windowSize + extra
		)

		plan := mustPlan(t, windowSize)
		defer plan.Close()

		signal, err := spectrel.MakeConstantSignal(numSamples, 1)
		require.NoError(t, err)

		sg, err := stft.Transform(plan, mustBoxcar(t, windowSize), signal, hop, sampleRate)
		require.NoError(t, err)

		wantSpectrums := (numSamples-(windowSize+1)/2)/hop + 1
		assert.Equal(t, wantSpectrums, sg.NumSpectrums)
		assert.Equal(t, windowSize, sg.NumBins)
		assert.Len(t, sg.Times, sg.NumSpectrums)
		assert.Len(t, sg.Frequencies, sg.NumBins)
		assert.Len(t, sg.Samples, sg.NumSpectrums*sg.NumBins)

		for k := 0; k < sg.NumSpectrums; k++ {
			assert.InDelta(t, float64(k*hop)/sampleRate, sg.Times[k], 1e-12)
			if k > 0 {
				assert.Greater(t, sg.Times[k], sg.Times[k-1])
			}
		}

		assert.Zero(t, sg.Frequencies[0])
		for m := 0; m < windowSize; m++ {
			ratio := float64(m) / float64(windowSize)
			want := ratio * sampleRate
			if float64(m) >= float64(windowSize)/2 {
				want = -(1 - ratio) * sampleRate
			}
			assert.InDelta(t, want, sg.Frequencies[m], 1e-9)
		}
	})
}

// The transform is linear: the STFT of a*x + b*y is a*STFT(x) + b*STFT(y)
// for the same plan, window, and hop.
func TestTransformLinearity(t *testing.T) {
	const (
		windowSize = 16
		numSamples = 128
		hop        = 8
		sampleRate = 64.0
	)

	plan := mustPlan(t, windowSize)
	defer plan.Close()
	window := mustBoxcar(t, windowSize)

	rapid.Check(t, func(t *rapid.T) {
		var (
			alpha = rapid.Float64Range(-4, 4).Draw(t, "alpha")
			beta  = rapid.Float64Range(-4, 4).Draw(t, "beta")
			fx    = float64(rapid.IntRange(1, 31).Draw(t, "fx"))
			fy    = float64(rapid.IntRange(1, 31).Draw(t, "fy"))
		)

		x, err := spectrel.MakeCosineSignal(numSamples, sampleRate, fx, 1, 0)
		require.NoError(t, err)
		y, err := spectrel.MakeCosineSignal(numSamples, sampleRate, fy, 1, 0.5)
		require.NoError(t, err)

		mixed, err := spectrel.MakeEmptySignal(numSamples)
		require.NoError(t, err)
		for n := range mixed {
			mixed[n] = complex(alpha, 0)*x[n] + complex(beta, 0)*y[n]
		}

		sgx, err := stft.Transform(plan, window, x, hop, sampleRate)
		require.NoError(t, err)
		sgy, err := stft.Transform(plan, window, y, hop, sampleRate)
		require.NoError(t, err)
		sgm, err := stft.Transform(plan, window, mixed, hop, sampleRate)
		require.NoError(t, err)

		for i := range sgm.Samples {
			want := complex(alpha, 0)*sgx.Samples[i] + complex(beta, 0)*sgy.Samples[i]
			assert.InDelta(t, real(want), real(sgm.Samples[i]), 1e-6)
			assert.InDelta(t, imag(want), imag(sgm.Samples[i]), 1e-6)
		}
	})
}

// A complex window must multiply complex-on-complex: a purely imaginary
// window rotates every bin by 90 degrees without touching magnitudes.
func TestTransformComplexWindow(t *testing.T) {
	const windowSize = 8

	plan := mustPlan(t, windowSize)
	defer plan.Close()

	window, err := spectrel.MakeEmptySignal(windowSize)
	require.NoError(t, err)
	for m := range window {
		window[m] = complex(0, 1)
	}

	signal, err := spectrel.MakeCosineSignal(32, 8, 1, 1, 0)
	require.NoError(t, err)

	sg, err := stft.Transform(plan, window, signal, 8, 8)
	require.NoError(t, err)

	boxcar, err := stft.Transform(plan, mustBoxcar(t, windowSize), signal, 8, 8)
	require.NoError(t, err)

	for i := range sg.Samples {
		want := boxcar.Samples[i] * complex(0, 1)
		assert.InDelta(t, real(want), real(sg.Samples[i]), 1e-9)
		assert.InDelta(t, imag(want), imag(sg.Samples[i]), 1e-9)
	}
}

// vim: foldmethod=marker
