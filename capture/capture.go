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

// Package capture drives the spectrogram pipeline: it repeatedly fills a
// reusable sample buffer from a Receiver, short-time transforms the
// buffer, and appends the result to an output stream, until a configured
// number of samples has been consumed.
//
// The loop is single threaded and strictly sequential. Its pace is set by
// the Receiver's blocking read; nothing else in the loop may block. At
// most one spectrogram is live at any moment, and the plan, window, and
// sample buffer are torn down on every exit path.
package capture

import (
	"io"

	"github.com/charmbracelet/log"

	spectrel "github.com/jcfitzpatrick12/spectre-lite"
	"github.com/jcfitzpatrick12/spectre-lite/fft"
	"github.com/jcfitzpatrick12/spectre-lite/pgm"
	"github.com/jcfitzpatrick12/spectre-lite/stft"
)

// Run will execute one capture run against an already-activated Receiver,
// appending one PGM document per buffer to the provided Writer. It
// consumes samples until at least Duration*SampleRate of them have been
// read, then returns nil. Any receiver, transform, or write error aborts
// the run immediately.
func Run(rx spectrel.Receiver, planner fft.Planner, cfg Config, out io.Writer) error {
	cfg = cfg.withDefaults()
	if err := cfg.Validate(); err != nil {
		return err
	}

	windowType, err := spectrel.ParseWindowType(cfg.WindowType)
	if err != nil {
		return err
	}

	plan, err := stft.NewPlan(planner, cfg.WindowSize)
	if err != nil {
		return err
	}
	defer plan.Close()

	window, err := spectrel.MakeWindow(windowType, cfg.WindowSize)
	if err != nil {
		return err
	}

	buffer, err := spectrel.MakeEmptySignal(cfg.BufferSize)
	if err != nil {
		return err
	}

	var (
		samplesTarget  = cfg.SamplesTarget()
		samplesElapsed = 0
	)

	log.Debug("starting capture",
		"driver", cfg.Driver,
		"samplesTarget", samplesTarget,
		"bufferSize", cfg.BufferSize,
		"windowSize", cfg.WindowSize,
		"windowHop", cfg.WindowHop,
		"windowType", cfg.WindowType)

	for samplesElapsed < samplesTarget {
		if err := rx.ReadStream(buffer); err != nil {
			return err
		}

		spectrogram, err := stft.Transform(plan, window, buffer, cfg.WindowHop, cfg.SampleRate)
		if err != nil {
			return err
		}

		if err := pgm.Write(out, spectrogram); err != nil {
			return err
		}

		samplesElapsed += buffer.Length()
		log.Debug("captured spectrogram",
			"spectrums", spectrogram.NumSpectrums,
			"samplesElapsed", samplesElapsed)
	}

	return nil
}

// vim: foldmethod=marker
