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
	"time"

	"hz.tools/rf"
)

// ReadTimeout is how long a single ReadStream call may wait for the
// hardware to produce samples before the stream is considered dead.
const ReadTimeout = time.Second

// Tune groups the radio parameters applied when a Receiver is created.
type Tune struct {
	// Frequency is the center frequency the radio is tuned to.
	Frequency rf.Hz

	// SampleRate is the number of complex samples per second, in Hz.
	SampleRate float64

	// Bandwidth is the analog filter bandwidth.
	Bandwidth rf.Hz

	// Gain is the overall receive gain, in dB.
	Gain float64
}

// Receiver is the contract between the capture pipeline and an SDR device.
// Implementations wrap a vendor library (see the soapy package) or
// synthesize samples for tests (see the mock package).
//
// A Receiver is created tuned; the stream must be activated before the
// first ReadStream and deactivated when the capture run ends. Close frees
// the device. None of these methods are safe for concurrent use -- the
// capture loop is strictly sequential.
type Receiver interface {
	// ActivateStream will start the receive stream flowing.
	ActivateStream() error

	// DeactivateStream will stop the receive stream.
	DeactivateStream() error

	// ReadStream will completely fill the provided buffer with consecutive
	// samples, issuing as many underlying device reads as needed. It fails
	// with an error wrapping ErrSDR if the device reports an error or no
	// samples arrive within ReadTimeout.
	ReadStream(buf Signal) error

	// Close will release the device and any resources held by the
	// Receiver. After Close the Receiver must not be used.
	Close() error
}

// vim: foldmethod=marker
