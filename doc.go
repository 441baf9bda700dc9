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

// Package spectrel contains the fundamental types used to turn a stream of
// complex baseband samples from a software defined radio into spectrogram
// files on disk.
//
// The types here are deliberately small: a Signal is a vector of complex
// samples, a window is a Signal holding a real-valued taper, and a
// Spectrogram is a dense grid of DFT bins along with its physical time and
// frequency axes. The heavy lifting lives in the subpackages -- stft walks a
// Signal with a sliding window and fills a Spectrogram, pgm serializes a
// Spectrogram as a portable graymap, and capture drives the whole pipeline
// against a Receiver.
//
// Samples are complex128 end to end. Both DFT backends operate natively on
// complex128 and the receiver delivers CF64 frames, so there is no second
// wire format to convert from, and unlike a general purpose SDR library
// there is no format-generic sample interface here.
package spectrel

// vim: foldmethod=marker
