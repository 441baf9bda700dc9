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
	"io"
)

// Spectrogram is a dense 2-D grid of complex DFT bins along with its
// physical axes. The grid is row-major: row index is the spectrum (frame)
// index, column index is the DFT bin index.
//
// Frequencies are in "FFT natural order": bin 0 is DC, bins [1, M/2) cover
// positive baseband frequencies ascending, and bins [M/2, M) cover negative
// frequencies ascending from -rate/2 back toward 0. The layout is exactly
// what the DFT produced; it is never reshuffled.
type Spectrogram struct {
	// NumSpectrums is the number of rows (time frames) in the grid.
	NumSpectrums int

	// NumBins is the number of DFT bins in each spectrum. It equals the
	// window length of the producing STFT call.
	NumBins int

	// Samples holds the NumSpectrums*NumBins complex bins, row-major.
	Samples []complex128

	// Times holds the time of each spectrum's window center, in seconds
	// from the start of the input signal.
	Times []float64

	// Frequencies holds the baseband frequency of each bin, in Hz, in FFT
	// natural order.
	Frequencies []float64
}

// MakeSpectrogram will allocate a Spectrogram with the provided geometry.
// Allocation is all or nothing; on failure nothing is retained.
func MakeSpectrogram(numSpectrums, numBins int) (*Spectrogram, error) {
	if numSpectrums < 0 || numBins < 0 {
		return nil, fmt.Errorf("%w: negative spectrogram geometry %dx%d",
			ErrInvalidArgument, numSpectrums, numBins)
	}
	return &Spectrogram{
		NumSpectrums: numSpectrums,
		NumBins:      numBins,
		Samples:      make([]complex128, numSpectrums*numBins),
		Times:        make([]float64, numSpectrums),
		Frequencies:  make([]float64, numBins),
	}, nil
}

// At will return the bin value of the provided spectrum row and bin column.
func (s *Spectrogram) At(spectrum, bin int) complex128 {
	return s.Samples[spectrum*s.NumBins+bin]
}

// Row will return the spectrum at the provided row index as a mutable
// subslice of the grid.
func (s *Spectrogram) Row(spectrum int) []complex128 {
	return s.Samples[spectrum*s.NumBins : (spectrum+1)*s.NumBins]
}

// Describe will write the spectrogram geometry, axes, and every bin value
// to the provided Writer.
func (s *Spectrogram) Describe(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "spectrums: %d\nbins: %d\n", s.NumSpectrums, s.NumBins); err != nil {
		return fmt.Errorf("%w: %v", ErrIO, err)
	}
	if _, err := fmt.Fprintf(w, "times: %v\nfrequencies: %v\n", s.Times, s.Frequencies); err != nil {
		return fmt.Errorf("%w: %v", ErrIO, err)
	}
	for n := 0; n < s.NumSpectrums; n++ {
		if err := Signal(s.Row(n)).Describe(w); err != nil {
			return err
		}
	}
	return nil
}

// vim: foldmethod=marker
