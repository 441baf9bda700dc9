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

// Package stft computes short-time Fourier transforms of complex baseband
// signals.
//
// A Plan owns the scratch buffer the DFT is executed in-place on; building
// one is expensive and is done once per capture run. Transform then walks
// an input signal with a sliding window, filling the scratch with windowed,
// zero-padded samples for each frame and copying the resulting spectrum
// into a row of a freshly allocated Spectrogram.
//
// The first frame is centered at signal index 0, so the left half of the
// window dangles past the start of the signal, and successive frame
// centers advance by the hop. Taps that fall outside the signal read as
// zero; there is no reflection and no wrap-around.
package stft

import (
	"fmt"

	spectrel "github.com/jcfitzpatrick12/spectre-lite"
	"github.com/jcfitzpatrick12/spectre-lite/fft"
)

// Plan holds a pre-planned in-place forward DFT together with the scratch
// buffer it is bound to. A Plan is reused across every frame of every
// Transform call in a capture run.
//
// The scratch buffer is owned by the Plan and is mutated by Transform;
// nothing else may touch it.
type Plan struct {
	scratch spectrel.Signal
	plan    fft.Plan
}

// NewPlan will allocate a scratch buffer of the provided window size and
// build an in-place forward DFT plan bound to it via the provided Planner.
// The scratch is written only after the plan is built, since the planner
// may probe the buffer.
func NewPlan(planner fft.Planner, windowSize int) (*Plan, error) {
	if windowSize < 1 {
		return nil, fmt.Errorf("%w: window size %d, need at least 1",
			spectrel.ErrInvalidArgument, windowSize)
	}
	scratch, err := spectrel.MakeEmptySignal(windowSize)
	if err != nil {
		return nil, err
	}
	plan, err := planner(scratch)
	if err != nil {
		return nil, err
	}
	return &Plan{
		scratch: scratch,
		plan:    plan,
	}, nil
}

// WindowSize will return the length of the scratch buffer, which is the
// window length every Transform call against this Plan must use.
func (p *Plan) WindowSize() int {
	return p.scratch.Length()
}

// Close will release the DFT plan and the scratch buffer. The Plan must
// not be used after Close.
func (p *Plan) Close() error {
	err := p.plan.Close()
	p.scratch = nil
	return err
}

// Transform computes the short-time Fourier transform of signal using a
// sliding window, returning a freshly allocated Spectrogram. Each tap is a
// full complex product of sample and window value.
//
// The window length must equal the Plan's scratch length, the signal must
// be at least one window long, and the hop and sample rate must be
// positive; anything else returns an error wrapping ErrInvalidArgument.
//
// Frame k is centered at signal index k*hop. The number of frames is the
// count of window positions whose right edge stays inside the signal:
//
//	floor((S - ceil(W/2)) / hop) + 1
//
// Each output row holds the DFT of the windowed frame in FFT natural
// order, Times holds each frame center in seconds, and Frequencies holds
// the baseband frequency of each bin in Hz.
func Transform(
	plan *Plan,
	window spectrel.Signal,
	signal spectrel.Signal,
	windowHop int,
	sampleRate float64,
) (*spectrel.Spectrogram, error) {
	if plan == nil || plan.scratch == nil {
		return nil, fmt.Errorf("%w: nil or closed plan", spectrel.ErrInvalidArgument)
	}
	windowSize := plan.scratch.Length()
	if window.Length() != windowSize {
		return nil, fmt.Errorf("%w: window length %d does not match plan scratch length %d",
			spectrel.ErrInvalidArgument, window.Length(), windowSize)
	}
	if signal.Length() < windowSize {
		return nil, fmt.Errorf("%w: signal length %d shorter than window length %d",
			spectrel.ErrInvalidArgument, signal.Length(), windowSize)
	}
	if windowHop < 1 {
		return nil, fmt.Errorf("%w: window hop %d, need at least 1",
			spectrel.ErrInvalidArgument, windowHop)
	}
	if sampleRate <= 0 {
		return nil, fmt.Errorf("%w: non-positive sample rate %f",
			spectrel.ErrInvalidArgument, sampleRate)
	}

	var (
		numSamples   = signal.Length()
		halfFloor    = windowSize / 2
		halfCeil     = (windowSize + 1) / 2
		numSpectrums = (numSamples-halfCeil)/windowHop + 1
	)

	spectrogram, err := spectrel.MakeSpectrogram(numSpectrums, windowSize)
	if err != nil {
		return nil, err
	}

	for k := 0; k < numSpectrums; k++ {
		center := k * windowHop

		for m := 0; m < windowSize; m++ {
			i := center - halfFloor + m
			if i < 0 || i >= numSamples {
				plan.scratch[m] = 0
			} else {
				plan.scratch[m] = signal[i] * window[m]
			}
		}

		if err := plan.plan.Transform(); err != nil {
			return nil, err
		}

		copy(spectrogram.Row(k), plan.scratch)
	}

	for k := 0; k < numSpectrums; k++ {
		spectrogram.Times[k] = float64(k*windowHop) / sampleRate
	}
	for m := 0; m < windowSize; m++ {
		ratio := float64(m) / float64(windowSize)
		if float64(m) < float64(windowSize)/2 {
			spectrogram.Frequencies[m] = ratio * sampleRate
		} else {
			spectrogram.Frequencies[m] = -(1 - ratio) * sampleRate
		}
	}

	return spectrogram, nil
}

// vim: foldmethod=marker
