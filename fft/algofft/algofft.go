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

// Package algofft implements the fft.Planner interface using the algo-fft
// library. This is the default backend used by the spectrel CLI.
package algofft

import (
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"

	"github.com/jcfitzpatrick12/spectre-lite/fft"
)

// forwarder is the slice of the algo-fft plan surface this backend uses.
type forwarder interface {
	Forward(dst, src []complex128) error
}

type plan struct {
	scratch []complex128
	out     []complex128
	plan    forwarder
}

// Transform implements the fft.Plan interface.
func (p *plan) Transform() error {
	if err := p.plan.Forward(p.out, p.scratch); err != nil {
		return fmt.Errorf("algofft: forward transform: %w", err)
	}
	copy(p.scratch, p.out)
	return nil
}

// Close implements the fft.Plan interface.
func (p *plan) Close() error {
	p.out = nil
	return nil
}

// Planner will plan a forward in-place DFT over the provided scratch
// buffer. algo-fft transforms between distinct source and destination
// slices, so the plan keeps a private output array the same length as the
// scratch and copies the bins back after each transform.
func Planner(scratch []complex128) (fft.Plan, error) {
	if len(scratch) == 0 {
		return nil, fft.ErrEmptyScratch
	}
	p, err := algofft.NewPlan64(len(scratch))
	if err != nil {
		return nil, fmt.Errorf("algofft: planning size %d: %w", len(scratch), err)
	}
	return &plan{
		scratch: scratch,
		out:     make([]complex128, len(scratch)),
		plan:    p,
	}, nil
}

// vim: foldmethod=marker
