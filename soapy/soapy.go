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

// Package soapy implements the spectrel.Receiver interface on top of the
// SoapySDR C library, which in turn talks to whatever vendor module the
// requested driver names.
//
// Requested tuning values are checked against the hardware-reported ranges
// before being applied, so an out-of-range request fails up front with
// ErrInvalidArgument rather than being silently clamped by the vendor
// module. The device's last-error string is captured at each failing call
// site and folded into the returned error.
package soapy

// #cgo pkg-config: SoapySDR
//
// #include <stdlib.h>
//
// #include <SoapySDR/Constants.h>
// #include <SoapySDR/Device.h>
// #include <SoapySDR/Formats.h>
import "C"

import (
	"fmt"
	"unsafe"

	"hz.tools/rf"

	spectrel "github.com/jcfitzpatrick12/spectre-lite"
)

// Sdr is a handle to a SoapySDR device and its receive stream.
type Sdr struct {
	device *C.SoapySDRDevice
	stream *C.SoapySDRStream
	tune   spectrel.Tune
}

// lastError will capture the device-reported error text at the call site.
func lastError() string {
	return C.GoString(C.SoapySDRDevice_lastError())
}

// inRanges reports whether value falls inside any of the provided
// hardware-reported ranges.
func inRanges(value float64, ranges *C.SoapySDRRange, length C.size_t) bool {
	if ranges == nil || length == 0 {
		return false
	}
	for _, r := range unsafe.Slice(ranges, int(length)) {
		if value >= float64(r.minimum) && value <= float64(r.maximum) {
			return true
		}
	}
	return false
}

// New will create a Receiver for the named SoapySDR driver and apply the
// provided tuning. The returned Sdr owns the device and its stream; the
// stream must be activated before the first ReadStream.
func New(driver string, tune spectrel.Tune) (*Sdr, error) {
	var args C.SoapySDRKwargs

	cKey := C.CString("driver")
	defer C.free(unsafe.Pointer(cKey))
	cDriver := C.CString(driver)
	defer C.free(unsafe.Pointer(cDriver))

	if C.SoapySDRKwargs_set(&args, cKey, cDriver) != 0 {
		return nil, fmt.Errorf("%w: setting driver kwarg", spectrel.ErrSDR)
	}

	device := C.SoapySDRDevice_make(&args)
	C.SoapySDRKwargs_clear(&args)
	if device == nil {
		return nil, fmt.Errorf("%w: device creation failed: %s", spectrel.ErrSDR, lastError())
	}

	s := &Sdr{
		device: device,
		tune:   tune,
	}
	if err := s.apply(); err != nil {
		s.Close()
		return nil, err
	}

	cFormat := C.CString(C.SOAPY_SDR_CF64)
	defer C.free(unsafe.Pointer(cFormat))

	var channel C.size_t
	s.stream = C.SoapySDRDevice_setupStream(
		s.device,
		C.SOAPY_SDR_RX,
		cFormat,
		&channel, 1,
		nil,
	)
	if s.stream == nil {
		err := fmt.Errorf("%w: setupStream failed: %s", spectrel.ErrSDR, lastError())
		s.Close()
		return nil, err
	}

	return s, nil
}

// apply will check each tuning value against its hardware-reported range
// and set it on the device, one value at a time. Values set before a
// failing check stay applied.
func (s *Sdr) apply() error {
	var length C.size_t

	frequencyRanges := C.SoapySDRDevice_getFrequencyRange(s.device, C.SOAPY_SDR_RX, 0, &length)
	defer C.free(unsafe.Pointer(frequencyRanges))
	if !inRanges(float64(s.tune.Frequency), frequencyRanges, length) {
		return fmt.Errorf("%w: frequency %s outside hardware range",
			spectrel.ErrInvalidArgument, s.tune.Frequency)
	}
	if C.SoapySDRDevice_setFrequency(s.device, C.SOAPY_SDR_RX, 0,
		C.double(s.tune.Frequency), nil) != 0 {
		return fmt.Errorf("%w: setFrequency failed: %s", spectrel.ErrSDR, lastError())
	}

	sampleRateRanges := C.SoapySDRDevice_getSampleRateRange(s.device, C.SOAPY_SDR_RX, 0, &length)
	defer C.free(unsafe.Pointer(sampleRateRanges))
	if !inRanges(s.tune.SampleRate, sampleRateRanges, length) {
		return fmt.Errorf("%w: sample rate %f outside hardware range",
			spectrel.ErrInvalidArgument, s.tune.SampleRate)
	}
	if C.SoapySDRDevice_setSampleRate(s.device, C.SOAPY_SDR_RX, 0,
		C.double(s.tune.SampleRate)) != 0 {
		return fmt.Errorf("%w: setSampleRate failed: %s", spectrel.ErrSDR, lastError())
	}

	bandwidthRanges := C.SoapySDRDevice_getBandwidthRange(s.device, C.SOAPY_SDR_RX, 0, &length)
	defer C.free(unsafe.Pointer(bandwidthRanges))
	if !inRanges(float64(s.tune.Bandwidth), bandwidthRanges, length) {
		return fmt.Errorf("%w: bandwidth %s outside hardware range",
			spectrel.ErrInvalidArgument, s.tune.Bandwidth)
	}
	if C.SoapySDRDevice_setBandwidth(s.device, C.SOAPY_SDR_RX, 0,
		C.double(s.tune.Bandwidth)) != 0 {
		return fmt.Errorf("%w: setBandwidth failed: %s", spectrel.ErrSDR, lastError())
	}

	gainRange := C.SoapySDRDevice_getGainRange(s.device, C.SOAPY_SDR_RX, 0)
	if s.tune.Gain < float64(gainRange.minimum) || s.tune.Gain > float64(gainRange.maximum) {
		return fmt.Errorf("%w: gain %f dB outside hardware range [%f, %f]",
			spectrel.ErrInvalidArgument, s.tune.Gain,
			float64(gainRange.minimum), float64(gainRange.maximum))
	}
	if C.SoapySDRDevice_setGain(s.device, C.SOAPY_SDR_RX, 0, C.double(s.tune.Gain)) != 0 {
		return fmt.Errorf("%w: setGain failed: %s", spectrel.ErrSDR, lastError())
	}

	return nil
}

// Frequency will return the center frequency the device was tuned to.
func (s *Sdr) Frequency() rf.Hz {
	return s.tune.Frequency
}

// ActivateStream implements the spectrel.Receiver interface.
func (s *Sdr) ActivateStream() error {
	if rv := C.SoapySDRDevice_activateStream(s.device, s.stream, 0, 0, 0); rv != 0 {
		return fmt.Errorf("%w: activateStream failed: %s", spectrel.ErrSDR, lastError())
	}
	return nil
}

// DeactivateStream implements the spectrel.Receiver interface.
func (s *Sdr) DeactivateStream() error {
	if rv := C.SoapySDRDevice_deactivateStream(s.device, s.stream, 0, 0); rv != 0 {
		return fmt.Errorf("%w: deactivateStream failed: %s", spectrel.ErrSDR, lastError())
	}
	return nil
}

// ReadStream implements the spectrel.Receiver interface. It keeps issuing
// device reads until the buffer is full, failing if the device reports an
// error or delivers nothing within spectrel.ReadTimeout.
func (s *Sdr) ReadStream(buf spectrel.Signal) error {
	var (
		flags     C.int
		timeNs    C.longlong
		timeoutUs = C.long(spectrel.ReadTimeout.Microseconds())
	)

	for n := 0; n < buf.Length(); {
		buffs := [1]unsafe.Pointer{unsafe.Pointer(&buf[n])}
		rv := C.SoapySDRDevice_readStream(
			s.device,
			s.stream,
			&buffs[0],
			C.size_t(buf.Length()-n),
			&flags,
			&timeNs,
			timeoutUs,
		)
		if rv < 0 {
			return fmt.Errorf("%w: readStream failed: %s", spectrel.ErrSDR,
				C.GoString(C.SoapySDR_errToStr(rv)))
		}
		n += int(rv)
	}
	return nil
}

// Close implements the spectrel.Receiver interface. It tears the stream
// down before releasing the device.
func (s *Sdr) Close() error {
	if s.device != nil && s.stream != nil {
		if C.SoapySDRDevice_closeStream(s.device, s.stream) != 0 {
			return fmt.Errorf("%w: closeStream failed: %s", spectrel.ErrSDR, lastError())
		}
		s.stream = nil
	}
	if s.device != nil {
		if C.SoapySDRDevice_unmake(s.device) != 0 {
			return fmt.Errorf("%w: unmake failed: %s", spectrel.ErrSDR, lastError())
		}
		s.device = nil
	}
	return nil
}

// vim: foldmethod=marker
