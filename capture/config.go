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

package capture

import (
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"
	"hz.tools/rf"

	spectrel "github.com/jcfitzpatrick12/spectre-lite"
)

// Default short-time transform and buffer geometry, used when the caller
// leaves the corresponding Config fields zero.
const (
	DefaultWindowSize = 1024
	DefaultWindowHop  = 512
	DefaultBufferSize = 16384
)

// Config is everything a capture run needs to know. It can be built from
// command line flags or loaded from a YAML file.
type Config struct {
	// Driver identifies the SDR driver the samples come from. It is
	// embedded in the batch file name.
	Driver string `yaml:"driver"`

	// Frequency is the center frequency to tune to, in Hz.
	Frequency rf.Hz `yaml:"frequency"`

	// SampleRate is the number of complex samples per second, in Hz.
	SampleRate float64 `yaml:"sample_rate"`

	// Bandwidth is the analog filter bandwidth, in Hz.
	Bandwidth rf.Hz `yaml:"bandwidth"`

	// Gain is the overall receive gain, in dB.
	Gain float64 `yaml:"gain"`

	// Duration is the total capture length, in seconds.
	Duration float64 `yaml:"duration"`

	// WindowSize is the short-time window length in samples.
	WindowSize int `yaml:"window_size"`

	// WindowHop is the number of samples the window advances between
	// successive frames.
	WindowHop int `yaml:"window_hop"`

	// BufferSize is the number of samples read from the receiver per
	// iteration of the capture loop.
	BufferSize int `yaml:"buffer_size"`

	// WindowType names the window taper; empty means boxcar.
	WindowType string `yaml:"window_type"`
}

// LoadConfig will read a Config from the YAML file at the provided path.
func LoadConfig(path string) (Config, error) {
	var cfg Config

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("%w: reading config %q: %v", spectrel.ErrIO, path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("%w: parsing config %q: %v", spectrel.ErrInvalidArgument, path, err)
	}
	return cfg, nil
}

// withDefaults returns the Config with unset geometry fields replaced by
// the package defaults.
func (c Config) withDefaults() Config {
	if c.WindowSize == 0 {
		c.WindowSize = DefaultWindowSize
	}
	if c.WindowHop == 0 {
		c.WindowHop = DefaultWindowHop
	}
	if c.BufferSize == 0 {
		c.BufferSize = DefaultBufferSize
	}
	if c.WindowType == "" {
		c.WindowType = "boxcar"
	}
	return c
}

// Validate will check the Config for values the pipeline cannot run with.
func (c Config) Validate() error {
	c = c.withDefaults()

	if c.Driver == "" {
		return fmt.Errorf("%w: no sdr driver given", spectrel.ErrInvalidArgument)
	}
	if c.Frequency <= 0 {
		return fmt.Errorf("%w: non-positive center frequency %s", spectrel.ErrInvalidArgument, c.Frequency)
	}
	if c.SampleRate <= 0 {
		return fmt.Errorf("%w: non-positive sample rate %f", spectrel.ErrInvalidArgument, c.SampleRate)
	}
	if c.Bandwidth <= 0 {
		return fmt.Errorf("%w: non-positive bandwidth %s", spectrel.ErrInvalidArgument, c.Bandwidth)
	}
	if c.Duration <= 0 {
		return fmt.Errorf("%w: non-positive duration %f", spectrel.ErrInvalidArgument, c.Duration)
	}
	if c.WindowSize < 1 {
		return fmt.Errorf("%w: window size %d", spectrel.ErrInvalidArgument, c.WindowSize)
	}
	if c.WindowHop < 1 {
		return fmt.Errorf("%w: window hop %d", spectrel.ErrInvalidArgument, c.WindowHop)
	}
	if c.BufferSize < c.WindowSize {
		return fmt.Errorf("%w: buffer size %d shorter than window size %d",
			spectrel.ErrInvalidArgument, c.BufferSize, c.WindowSize)
	}
	if _, err := spectrel.ParseWindowType(c.WindowType); err != nil {
		return err
	}
	return nil
}

// Tune will return the radio parameters of this Config.
func (c Config) Tune() spectrel.Tune {
	return spectrel.Tune{
		Frequency:  c.Frequency,
		SampleRate: c.SampleRate,
		Bandwidth:  c.Bandwidth,
		Gain:       c.Gain,
	}
}

// SamplesTarget will return the total number of samples the capture loop
// must consume before it exits.
func (c Config) SamplesTarget() int {
	return int(math.Ceil(c.Duration * c.SampleRate))
}

// vim: foldmethod=marker
