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

// Command spectrel captures complex baseband samples from a SoapySDR
// receiver and writes the resulting spectrograms to a timestamped batch
// file as concatenated PGM documents.
package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/pflag"
	"hz.tools/rf"

	"github.com/jcfitzpatrick12/spectre-lite/batch"
	"github.com/jcfitzpatrick12/spectre-lite/capture"
	"github.com/jcfitzpatrick12/spectre-lite/fft/algofft"
	"github.com/jcfitzpatrick12/spectre-lite/soapy"
)

func main() {
	os.Exit(run())
}

func run() int {
	var (
		dir        = pflag.StringP("dir", "d", batch.DataDir(), "Output directory for batch files.")
		driver     = pflag.StringP("receiver", "r", "", "SoapySDR driver identifier.")
		frequency  = pflag.Float64P("frequency", "f", 0, "Center frequency in Hz.")
		sampleRate = pflag.Float64P("sample-rate", "s", 0, "Sample rate in Hz.")
		bandwidth  = pflag.Float64P("bandwidth", "b", 0, "Bandwidth in Hz.")
		gain       = pflag.Float64P("gain", "g", 0, "Overall gain in dB.")
		duration   = pflag.Float64P("duration", "T", 0, "Total capture duration in seconds.")
		windowSize = pflag.IntP("window-size", "w", capture.DefaultWindowSize, "Window size in samples.")
		windowHop  = pflag.IntP("window-hop", "h", capture.DefaultWindowHop, "Window hop in samples.")
		bufferSize = pflag.IntP("buffer-size", "B", capture.DefaultBufferSize, "Receiver read buffer size in samples.")
		windowType = pflag.String("window-type", "boxcar", "Window taper: boxcar, hann, or gaussian.")
		configPath = pflag.StringP("config", "c", "", "Optional YAML config file; flags override it.")
		verbose    = pflag.BoolP("verbose", "v", false, "Enable debug logging.")
	)
	pflag.Parse()

	log.SetOutput(os.Stderr)
	if *verbose {
		log.SetLevel(log.DebugLevel)
	}

	var (
		cfg capture.Config
		err error
	)
	if *configPath != "" {
		cfg, err = capture.LoadConfig(*configPath)
		if err != nil {
			log.Error("loading config", "err", err)
			return 1
		}
	}

	set := func(name string) bool { return pflag.CommandLine.Changed(name) }
	if set("receiver") || cfg.Driver == "" {
		cfg.Driver = *driver
	}
	if set("frequency") || cfg.Frequency == 0 {
		cfg.Frequency = rf.Hz(*frequency)
	}
	if set("sample-rate") || cfg.SampleRate == 0 {
		cfg.SampleRate = *sampleRate
	}
	if set("bandwidth") || cfg.Bandwidth == 0 {
		cfg.Bandwidth = rf.Hz(*bandwidth)
	}
	if set("gain") || cfg.Gain == 0 {
		cfg.Gain = *gain
	}
	if set("duration") || cfg.Duration == 0 {
		cfg.Duration = *duration
	}
	if set("window-size") || cfg.WindowSize == 0 {
		cfg.WindowSize = *windowSize
	}
	if set("window-hop") || cfg.WindowHop == 0 {
		cfg.WindowHop = *windowHop
	}
	if set("buffer-size") || cfg.BufferSize == 0 {
		cfg.BufferSize = *bufferSize
	}
	if set("window-type") || cfg.WindowType == "" {
		cfg.WindowType = *windowType
	}

	if err := cfg.Validate(); err != nil {
		log.Error("invalid configuration", "err", err)
		pflag.Usage()
		return 1
	}

	if err := batch.EnsureDir(*dir); err != nil {
		log.Error("preparing output directory", "err", err)
		return 1
	}

	file, err := batch.Open(*dir, cfg.Driver, batch.FormatPGM)
	if err != nil {
		log.Error("opening batch file", "err", err)
		return 1
	}
	defer func() {
		if err := file.Close(); err != nil {
			log.Error("closing batch file", "err", err)
		}
	}()

	rx, err := soapy.New(cfg.Driver, cfg.Tune())
	if err != nil {
		log.Error("creating receiver", "err", err)
		return 1
	}
	defer func() {
		if err := rx.Close(); err != nil {
			log.Error("closing receiver", "err", err)
		}
	}()

	if err := rx.ActivateStream(); err != nil {
		log.Error("activating stream", "err", err)
		return 1
	}
	defer func() {
		if err := rx.DeactivateStream(); err != nil {
			log.Error("deactivating stream", "err", err)
		}
	}()

	log.Info("capturing",
		"driver", cfg.Driver,
		"frequency", cfg.Frequency.String(),
		"sampleRate", cfg.SampleRate,
		"duration", cfg.Duration,
		"file", file.Name())

	if err := capture.Run(rx, algofft.Planner, cfg, file); err != nil {
		log.Error("capture failed", "err", err)
		return 1
	}

	log.Info("capture complete", "file", file.Name())
	return 0
}

// vim: foldmethod=marker
