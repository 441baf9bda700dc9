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

// Package fft contains a common interface to plan repeated in-place forward
// DFTs over a scratch buffer.
//
// A Planner binds a Plan to the caller's scratch slice at plan time. After
// that, every Transform reads the time-domain samples currently in the
// scratch and leaves the frequency-domain bins in their place, in FFT
// natural order (bin 0 is DC). Plan construction may be expensive; the
// whole point of the interface is to pay that cost once and reuse the Plan
// for many frames.
package fft

import (
	"fmt"
)

var (
	// ErrEmptyScratch will be returned by a Planner when the provided
	// scratch buffer has no samples to transform.
	ErrEmptyScratch = fmt.Errorf("fft: scratch buffer is empty")
)

// Planner will compute a Plan for repeated in-place forward DFTs over the
// provided scratch buffer. The Plan stays bound to the slice for its whole
// lifetime, so the scratch must not be reallocated while the Plan is live.
//
// The scratch contents are undefined after planning; callers must fill the
// scratch after the Plan is built and before each Transform.
type Planner func(scratch []complex128) (Plan, error)

// Plan is used to perform the planned DFT over whatever samples are in the
// scratch buffer it was bound to.
type Plan interface {
	// Transform will execute the generated plan, performing a forward DFT
	// in place on the bound scratch buffer.
	Transform() error

	// Close will free any allocated resources or opened handles.
	Close() error
}

// TransformOnce will perform a single forward DFT in place on the provided
// buffer. If this is called multiple times, significant overhead can be
// reduced by holding onto the Plan instead.
func TransformOnce(planner Planner, scratch []complex128) error {
	plan, err := planner(scratch)
	if err != nil {
		return err
	}
	defer plan.Close()
	return plan.Transform()
}

// vim: foldmethod=marker
