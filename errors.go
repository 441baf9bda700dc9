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
)

var (
	// ErrInvalidArgument will be returned when a caller-provided value
	// violates a precondition, such as a window that is longer than the
	// signal it is applied to, or a non-positive hop.
	ErrInvalidArgument = fmt.Errorf("spectrel: invalid argument")

	// ErrAllocationFailed will be returned when a buffer that the pipeline
	// depends on could not be allocated.
	ErrAllocationFailed = fmt.Errorf("spectrel: allocation failed")

	// ErrSDR will be returned when the radio could not be created or
	// configured, or when the sample stream failed or timed out. The
	// device-reported error text is captured at the call site and wrapped
	// around this sentinel.
	ErrSDR = fmt.Errorf("spectrel: sdr failure")

	// ErrIO will be returned when the output directory or batch file could
	// not be created or written.
	ErrIO = fmt.Errorf("spectrel: i/o failure")

	// ErrUnsupportedFormat will be returned when an output format selector
	// is not one this library knows how to serialize.
	ErrUnsupportedFormat = fmt.Errorf("spectrel: unsupported output format")
)

// vim: foldmethod=marker
