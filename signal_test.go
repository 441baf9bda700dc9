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

package spectrel_test

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	spectrel "github.com/jcfitzpatrick12/spectre-lite"
)

func TestMakeEmptySignal(t *testing.T) {
	s, err := spectrel.MakeEmptySignal(128)
	assert.NoError(t, err)
	assert.Equal(t, 128, s.Length())
	assert.Equal(t, 128*16, s.Size())

	_, err = spectrel.MakeEmptySignal(-1)
	assert.ErrorIs(t, err, spectrel.ErrInvalidArgument)
}

func TestMakeConstantSignal(t *testing.T) {
	s, err := spectrel.MakeConstantSignal(16, 2.5)
	assert.NoError(t, err)
	for _, sample := range s {
		assert.Equal(t, complex(2.5, 0), sample)
	}
}

func TestMakeCosineSignal(t *testing.T) {
	// fs=8, f=1: one full cycle every 8 samples.
	s, err := spectrel.MakeCosineSignal(8, 8, 1, 1, 0)
	assert.NoError(t, err)

	assert.InDelta(t, 1, real(s[0]), 1e-12)
	assert.InDelta(t, math.Sqrt2/2, real(s[1]), 1e-12)
	assert.InDelta(t, 0, real(s[2]), 1e-12)
	assert.InDelta(t, -1, real(s[4]), 1e-12)
	for _, sample := range s {
		assert.Zero(t, imag(sample))
	}

	// Phase of pi/2 turns the cosine into a negative sine.
	s, err = spectrel.MakeCosineSignal(8, 8, 1, 3, math.Pi/2)
	assert.NoError(t, err)
	assert.InDelta(t, 0, real(s[0]), 1e-12)
	assert.InDelta(t, -3, real(s[2]), 1e-12)

	_, err = spectrel.MakeCosineSignal(8, 0, 1, 1, 0)
	assert.ErrorIs(t, err, spectrel.ErrInvalidArgument)
}

func TestMakeSignalDispatch(t *testing.T) {
	s, err := spectrel.MakeSignal(spectrel.KindEmpty, 4, nil)
	assert.NoError(t, err)
	assert.Equal(t, 4, s.Length())

	s, err = spectrel.MakeSignal(spectrel.KindConstant, 4, spectrel.ConstantParams{Value: 1})
	assert.NoError(t, err)
	assert.Equal(t, complex(1, 0), s[3])

	s, err = spectrel.MakeSignal(spectrel.KindCosine, 4, spectrel.CosineParams{
		SampleRate: 4,
		Frequency:  1,
		Amplitude:  1,
	})
	assert.NoError(t, err)
	assert.InDelta(t, -1, real(s[2]), 1e-12)

	_, err = spectrel.MakeSignal(spectrel.KindConstant, 4, nil)
	assert.ErrorIs(t, err, spectrel.ErrInvalidArgument)

	_, err = spectrel.MakeSignal(spectrel.SignalKind(99), 4, nil)
	assert.ErrorIs(t, err, spectrel.ErrInvalidArgument)
}

func TestSignalDescribe(t *testing.T) {
	s, err := spectrel.MakeConstantSignal(2, 1.5)
	assert.NoError(t, err)

	var buf strings.Builder
	assert.NoError(t, s.Describe(&buf))
	assert.Equal(t, "1.500000 + 0.000000i\n1.500000 + 0.000000i\n", buf.String())
}

func TestSignalSlice(t *testing.T) {
	s, err := spectrel.MakeConstantSignal(8, 1)
	assert.NoError(t, err)

	sub := s.Slice(2, 6)
	assert.Equal(t, 4, sub.Length())

	sub[0] = complex(7, 0)
	assert.Equal(t, complex(7, 0), s[2])
}

// vim: foldmethod=marker
