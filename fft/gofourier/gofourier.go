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

// Package gofourier implements the fft.Planner interface using Gonum's
// fourier package.
package gofourier

import (
	"gonum.org/v1/gonum/dsp/fourier"

	"github.com/jcfitzpatrick12/spectre-lite/fft"
)

type plan struct {
	scratch []complex128
	out     []complex128
	fft     *fourier.CmplxFFT
}

// Transform implements the fft.Plan interface.
func (p *plan) Transform() error {
	p.fft.Coefficients(p.out, p.scratch)
	copy(p.scratch, p.out)
	return nil
}

// Close implements the fft.Plan interface.
func (p *plan) Close() error {
	p.out = nil
	return nil
}

// Planner will plan a forward in-place DFT over the provided scratch
// buffer. Gonum computes coefficients into a destination slice, so the
// plan keeps a private output array and copies the bins back after each
// transform.
func Planner(scratch []complex128) (fft.Plan, error) {
	if len(scratch) == 0 {
		return nil, fft.ErrEmptyScratch
	}
	return &plan{
		scratch: scratch,
		out:     make([]complex128, len(scratch)),
		fft:     fourier.NewCmplxFFT(len(scratch)),
	}, nil
}

// vim: foldmethod=marker
