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

// Package batch manages the on-disk side of a capture run: resolving the
// data directory, and opening the batch file that all of a run's
// spectrogram documents are appended to. One batch file is opened per run;
// its name embeds the moment the run started and the driver that produced
// the samples.
package batch

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/lestrrat-go/strftime"

	spectrel "github.com/jcfitzpatrick12/spectre-lite"
)

// DataDirEnvVar names the environment variable that overrides where batch
// files are written.
const DataDirEnvVar = "SPECTREL_DATA_DIR_PATH"

// timestampFormat is the ISO 8601 UTC layout embedded in batch file
// names, in strftime notation.
const timestampFormat = "%Y-%m-%dT%H:%M:%SZ"

// Format is an ID for a supported batch file serialization.
type Format uint8

const (
	// FormatPGM appends each spectrogram as a binary (P5) portable
	// graymap document.
	FormatPGM Format = 1
)

// Extension will return the file extension used for this Format, without
// the leading dot.
func (f Format) Extension() (string, error) {
	switch f {
	case FormatPGM:
		return "pgm", nil
	default:
		return "", fmt.Errorf("%w: format %d", spectrel.ErrUnsupportedFormat, f)
	}
}

// String returns the format name as a human readable string.
func (f Format) String() string {
	ext, err := f.Extension()
	if err != nil {
		return "unknown"
	}
	return ext
}

// DataDir will return the directory runtime data is written to: the value
// of DataDirEnvVar if it is set, otherwise the present working directory.
func DataDir() string {
	if dir := os.Getenv(DataDirEnvVar); dir != "" {
		return dir
	}
	return "."
}

// EnsureDir will create the provided directory if it does not already
// exist. A directory that is already present is not an error.
func EnsureDir(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("%w: creating directory %q: %v", spectrel.ErrIO, dir, err)
	}
	return nil
}

// File is an open batch file. It satisfies io.Writer, so serializers can
// append documents to it directly.
type File struct {
	*os.File

	name string
}

// Open will create a new batch file in the provided directory, named
//
//	<timestamp>_<driver>.<ext>
//
// where the timestamp is the current UTC time in ISO 8601 form and the
// extension is chosen by the Format.
func Open(dir, driver string, format Format) (*File, error) {
	ext, err := format.Extension()
	if err != nil {
		return nil, err
	}

	timestamp, err := strftime.Format(timestampFormat, time.Now().UTC())
	if err != nil {
		return nil, fmt.Errorf("%w: formatting timestamp: %v", spectrel.ErrIO, err)
	}

	name := filepath.Join(dir, fmt.Sprintf("%s_%s.%s", timestamp, driver, ext))
	f, err := os.Create(name)
	if err != nil {
		return nil, fmt.Errorf("%w: opening batch file %q: %v", spectrel.ErrIO, name, err)
	}

	return &File{
		File: f,
		name: name,
	}, nil
}

// Name will return the full path of the batch file.
func (f *File) Name() string {
	return f.name
}

// Close will flush and close the underlying file.
func (f *File) Close() error {
	if err := f.File.Close(); err != nil {
		return fmt.Errorf("%w: closing batch file %q: %v", spectrel.ErrIO, f.name, err)
	}
	return nil
}

// vim: foldmethod=marker
