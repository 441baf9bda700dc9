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

// Package mock contains a deterministic Receiver used to test the capture
// pipeline without hardware. It synthesizes a single complex tone and
// keeps its phase across reads, so consecutive buffers join into one
// continuous signal.
package mock

import (
	"fmt"
	"math"

	"hz.tools/rf"

	spectrel "github.com/jcfitzpatrick12/spectre-lite"
)

// Config is the set of default values and optional failure modes of the
// mock Receiver.
type Config struct {
	// Tune is the radio configuration the mock pretends to apply.
	Tune spectrel.Tune

	// ToneFrequency is the baseband frequency of the synthesized complex
	// tone.
	ToneFrequency rf.Hz

	// Amplitude of the synthesized tone. Zero means 1.
	Amplitude float64

	// ReadErr, if not nil, will be returned by every ReadStream call
	// instead of samples.
	ReadErr error
}

// New will create a new mock Receiver.
func New(cfg Config) *Receiver {
	if cfg.Amplitude == 0 {
		cfg.Amplitude = 1
	}
	return &Receiver{config: cfg}
}

// Receiver is a spectrel.Receiver that synthesizes samples instead of
// reading hardware.
type Receiver struct {
	config Config
	active bool
	closed bool

	// n counts samples delivered so far, which is the tone phase carried
	// across ReadStream calls.
	n int
}

// ActivateStream implements the spectrel.Receiver interface.
func (m *Receiver) ActivateStream() error {
	if m.closed {
		return fmt.Errorf("%w: mock receiver is closed", spectrel.ErrSDR)
	}
	if m.active {
		return fmt.Errorf("%w: stream already active", spectrel.ErrSDR)
	}
	m.active = true
	return nil
}

// DeactivateStream implements the spectrel.Receiver interface.
func (m *Receiver) DeactivateStream() error {
	if !m.active {
		return fmt.Errorf("%w: stream not active", spectrel.ErrSDR)
	}
	m.active = false
	return nil
}

// ReadStream implements the spectrel.Receiver interface.
func (m *Receiver) ReadStream(buf spectrel.Signal) error {
	if !m.active {
		return fmt.Errorf("%w: stream not active", spectrel.ErrSDR)
	}
	if m.config.ReadErr != nil {
		return fmt.Errorf("%w: %v", spectrel.ErrSDR, m.config.ReadErr)
	}

	var (
		freq = float64(m.config.ToneFrequency)
		rate = m.config.Tune.SampleRate
	)
	for i := range buf {
		phase := spectrel.Tau * freq * float64(m.n) / rate
		buf[i] = complex(
			m.config.Amplitude*math.Cos(phase),
			m.config.Amplitude*math.Sin(phase),
		)
		m.n++
	}
	return nil
}

// Close implements the spectrel.Receiver interface.
func (m *Receiver) Close() error {
	if m.closed {
		return fmt.Errorf("%w: mock receiver already closed", spectrel.ErrSDR)
	}
	m.closed = true
	m.active = false
	return nil
}

// SamplesDelivered will return the total number of samples handed out so
// far, which tests use to check the capture loop's sample accounting.
func (m *Receiver) SamplesDelivered() int {
	return m.n
}

// vim: foldmethod=marker
