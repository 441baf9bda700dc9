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
	"io"
	"math"
	"unsafe"
)

// Signal is an owned, finite vector of complex samples. It is used for
// input signals read from the radio, for window tapers, and for the DFT
// scratch buffer owned by an stft.Plan.
//
// A Signal is a plain slice, so the usual slice semantics apply: mutations
// through a subslice are visible through the parent, and the zero value is
// an empty Signal.
type Signal []complex128

// Length will return the number of complex samples in this Signal.
func (s Signal) Length() int {
	return len(s)
}

// Size will return the size of this Signal in *bytes*. This should usually
// only be used at i/o boundaries; code processing samples wants Length.
func (s Signal) Size() int {
	return int(unsafe.Sizeof(complex128(0))) * len(s)
}

// Slice will return a subslice of the Signal from the provided starting
// position until the ending position. Mutations of the returned Signal
// will modify the Signal from whence it came.
func (s Signal) Slice(start, end int) Signal {
	return s[start:end]
}

// Describe will write every sample of the Signal to the provided Writer,
// one "re + imi" pair per line.
func (s Signal) Describe(w io.Writer) error {
	for _, sample := range s {
		if _, err := fmt.Fprintf(w, "%f + %fi\n", real(sample), imag(sample)); err != nil {
			return fmt.Errorf("%w: %v", ErrIO, err)
		}
	}
	return nil
}

// SignalKind is an ID for one of the analytic signal shapes that this
// package knows how to construct.
type SignalKind uint8

const (
	// KindEmpty is a Signal whose samples are left uninitialized; the
	// caller must fill it before first read. Used for the stft.Plan scratch
	// buffer and the receiver sample buffer.
	KindEmpty SignalKind = 1

	// KindConstant is a Signal where every sample holds the same real
	// value. A boxcar window is a constant Signal of value 1.
	KindConstant SignalKind = 2

	// KindCosine is a real cosine sampled at a fixed rate.
	KindCosine SignalKind = 3
)

// ConstantParams holds the parameter record for KindConstant.
type ConstantParams struct {
	// Value is the real part given to every sample.
	Value float64
}

// CosineParams holds the parameter record for KindCosine.
type CosineParams struct {
	// SampleRate is the rate the cosine is sampled at, in Hz.
	SampleRate float64

	// Frequency of the cosine, in Hz.
	Frequency float64

	// Amplitude of the cosine.
	Amplitude float64

	// Phase offset of the cosine, in radians.
	Phase float64
}

// MakeSignal will create a Signal of the requested kind and length. The
// params argument carries the per-kind parameter record: nil for KindEmpty,
// ConstantParams for KindConstant, and CosineParams for KindCosine. This
// function is used when the code constructing Signals is generic over the
// kind; code that knows which shape it wants should call the concrete
// constructor directly.
func MakeSignal(kind SignalKind, numSamples int, params interface{}) (Signal, error) {
	switch kind {
	case KindEmpty:
		return MakeEmptySignal(numSamples)
	case KindConstant:
		p, ok := params.(ConstantParams)
		if !ok {
			return nil, fmt.Errorf("%w: constant signal needs ConstantParams", ErrInvalidArgument)
		}
		return MakeConstantSignal(numSamples, p.Value)
	case KindCosine:
		p, ok := params.(CosineParams)
		if !ok {
			return nil, fmt.Errorf("%w: cosine signal needs CosineParams", ErrInvalidArgument)
		}
		return MakeCosineSignal(numSamples, p.SampleRate, p.Frequency, p.Amplitude, p.Phase)
	default:
		return nil, fmt.Errorf("%w: unknown signal kind %d", ErrInvalidArgument, kind)
	}
}

// MakeEmptySignal will create a Signal of the given length whose samples
// are uninitialized from the caller's point of view. The caller must fill
// the Signal before the first read.
func MakeEmptySignal(numSamples int) (Signal, error) {
	if numSamples < 0 {
		return nil, fmt.Errorf("%w: negative signal length %d", ErrInvalidArgument, numSamples)
	}
	return make(Signal, numSamples), nil
}

// MakeConstantSignal will create a Signal where every sample is
// value + 0i.
func MakeConstantSignal(numSamples int, value float64) (Signal, error) {
	s, err := MakeEmptySignal(numSamples)
	if err != nil {
		return nil, err
	}
	for n := range s {
		s[n] = complex(value, 0)
	}
	return s, nil
}

// MakeCosineSignal will sample a real cosine wave, so that sample n holds
//
//	amplitude * cos(2*pi*(frequency/sampleRate)*n + phase) + 0i
func MakeCosineSignal(numSamples int, sampleRate, frequency, amplitude, phase float64) (Signal, error) {
	if sampleRate <= 0 {
		return nil, fmt.Errorf("%w: non-positive sample rate %f", ErrInvalidArgument, sampleRate)
	}
	s, err := MakeEmptySignal(numSamples)
	if err != nil {
		return nil, err
	}
	for n := range s {
		s[n] = complex(amplitude*math.Cos(Tau*(frequency/sampleRate)*float64(n)+phase), 0)
	}
	return s, nil
}

// Tau is one full turn in radians.
const Tau = math.Pi * 2

// vim: foldmethod=marker
