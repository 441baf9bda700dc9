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

package spectrel

import (
	"fmt"
	"math"
	"strings"
)

// gaussianSigma is the width of the Gaussian window taper relative to its
// half-length.
const gaussianSigma = 0.25

// WindowType is an ID for one of the supported window tapers. Every taper
// is real-valued: the imaginary part of each window sample is zero.
type WindowType uint8

const (
	// WindowBoxcar is the rectangular window: every tap is 1.
	WindowBoxcar WindowType = 1

	// WindowHann is the raised-cosine Hann window.
	WindowHann WindowType = 2

	// WindowGaussian is a Gaussian taper centered on the window, with a
	// fixed width of gaussianSigma relative to the half-length.
	WindowGaussian WindowType = 3
)

// String returns the window name as a human readable string.
func (wt WindowType) String() string {
	switch wt {
	case WindowBoxcar:
		return "boxcar"
	case WindowHann:
		return "hann"
	case WindowGaussian:
		return "gaussian"
	default:
		return "unknown"
	}
}

// ParseWindowType will return the WindowType named by the provided string,
// as printed by WindowType.String.
func ParseWindowType(name string) (WindowType, error) {
	switch strings.ToLower(name) {
	case "boxcar", "rectangular":
		return WindowBoxcar, nil
	case "hann", "hanning":
		return WindowHann, nil
	case "gaussian", "gauss":
		return WindowGaussian, nil
	default:
		return 0, fmt.Errorf("%w: unknown window type %q", ErrInvalidArgument, name)
	}
}

// MakeWindow will create a real-valued window taper of the given type and
// length. The window length must match the scratch length of the stft.Plan
// it will be used with.
func MakeWindow(windowType WindowType, numSamples int) (Signal, error) {
	if numSamples < 1 {
		return nil, fmt.Errorf("%w: window length %d, need at least 1", ErrInvalidArgument, numSamples)
	}

	switch windowType {
	case WindowBoxcar:
		return MakeConstantSignal(numSamples, 1.0)
	case WindowHann:
		return makeHannWindow(numSamples)
	case WindowGaussian:
		return makeGaussianWindow(numSamples)
	default:
		return nil, fmt.Errorf("%w: unknown window type %d", ErrInvalidArgument, windowType)
	}
}

func makeHannWindow(numSamples int) (Signal, error) {
	s, err := MakeEmptySignal(numSamples)
	if err != nil {
		return nil, err
	}
	if numSamples == 1 {
		s[0] = 1
		return s, nil
	}
	for n := range s {
		s[n] = complex(0.5*(1-math.Cos(Tau*float64(n)/float64(numSamples-1))), 0)
	}
	return s, nil
}

func makeGaussianWindow(numSamples int) (Signal, error) {
	s, err := MakeEmptySignal(numSamples)
	if err != nil {
		return nil, err
	}
	if numSamples == 1 {
		s[0] = 1
		return s, nil
	}
	center := (float64(numSamples) - 1) / 2
	for n := range s {
		x := (float64(n) - center) / (gaussianSigma * center)
		s[n] = complex(math.Exp(-0.5*x*x), 0)
	}
	return s, nil
}

// vim: foldmethod=marker
