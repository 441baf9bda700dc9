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

// Package pgm serializes spectrograms as binary (P5) portable graymaps.
//
// The image is laid out with time along the width and frequency along the
// height: width is the number of spectrums, height is the number of bins,
// and the byte at raster offset j*width + i encodes the magnitude of bin j
// in frame i. Magnitudes are normalized per spectrogram to the full 8-bit
// range, so the format is deliberately lossy; it exists to be looked at,
// not to round-trip numbers.
package pgm

import (
	"fmt"
	"io"
	"math"
	"math/cmplx"

	spectrel "github.com/jcfitzpatrick12/spectre-lite"
)

// MaxVal is the maximum gray value written to the PGM header, so that each
// pixel is a single byte.
const MaxVal = 255

// Write will serialize one Spectrogram to the provided Writer as a single
// P5 document: an ASCII header followed by width*height raw pixel bytes.
// Writing several spectrograms to the same Writer produces a stream of
// concatenated P5 documents.
func Write(w io.Writer, spectrogram *spectrel.Spectrogram) error {
	if spectrogram == nil {
		return fmt.Errorf("%w: nil spectrogram", spectrel.ErrInvalidArgument)
	}

	var (
		width  = spectrogram.NumSpectrums
		height = spectrogram.NumBins
	)

	raster := normalize(spectrogram)

	if _, err := fmt.Fprintf(w, "P5\n%d %d\n%d\n", width, height, MaxVal); err != nil {
		return fmt.Errorf("%w: writing pgm header: %v", spectrel.ErrIO, err)
	}
	if _, err := w.Write(raster); err != nil {
		return fmt.Errorf("%w: writing pgm raster: %v", spectrel.ErrIO, err)
	}
	return nil
}

// normalize maps every bin magnitude onto [0, MaxVal] using the
// spectrogram's own minimum and maximum. A flat spectrogram (all
// magnitudes equal) maps to all-zero pixels.
func normalize(spectrogram *spectrel.Spectrogram) []byte {
	var (
		width  = spectrogram.NumSpectrums
		height = spectrogram.NumBins
	)

	mag := make([]float64, len(spectrogram.Samples))
	min, max := math.Inf(1), math.Inf(-1)
	for i, sample := range spectrogram.Samples {
		mag[i] = cmplx.Abs(sample)
		if mag[i] < min {
			min = mag[i]
		}
		if mag[i] > max {
			max = mag[i]
		}
	}

	raster := make([]byte, width*height)
	if max == min {
		return raster
	}

	scale := max - min
	for j := 0; j < height; j++ {
		for i := 0; i < width; i++ {
			pixel := math.Floor((mag[i*height+j] - min) / scale * MaxVal)
			raster[j*width+i] = byte(pixel)
		}
	}
	return raster
}

// vim: foldmethod=marker
