// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package resultfmt

import (
	"bufio"
	"fmt"
	"io"
)

// A Reader reads records from a result file.
//
// Its API is modeled on bufio.Scanner. Unlike bufio.Scanner, every
// Record returned by a Reader is freshly allocated and may be
// retained by the caller.
type Reader struct {
	s        *bufio.Scanner
	fileName string
	line     int
	rec      *Record
	err      error
}

// NewReader constructs a reader of result lines from r.
// fileName is used in error messages; it is purely diagnostic.
func NewReader(r io.Reader, fileName string) *Reader {
	reader := new(Reader)
	reader.Reset(r, fileName)
	return reader
}

// Reset resets the reader to begin reading from a new input.
func (r *Reader) Reset(ior io.Reader, fileName string) {
	r.s = bufio.NewScanner(ior)
	if fileName == "" {
		fileName = "<unknown>"
	}
	r.fileName = fileName
	r.line = 0
	r.rec = nil
	r.err = nil
}

// Scan advances the reader to the next record and reports whether a
// record was read. The caller should use the Record method to get the
// record.
//
// Every line is a record, so a malformed line stops the scan. If Scan
// reaches EOF, hits a malformed line, or an I/O error occurs, it
// returns false, in which case the caller should use the Err method
// to check for errors.
func (r *Reader) Scan() bool {
	if r.err != nil {
		return false
	}
	if !r.s.Scan() {
		if err := r.s.Err(); err != nil {
			r.err = fmt.Errorf("%s:%d: %w", r.fileName, r.line, err)
		}
		r.rec = nil
		return false
	}
	r.line++
	rec := &Record{Line: r.line}
	if msg := parseRecord(r.s.Text(), rec); msg != "" {
		r.err = &SyntaxError{r.fileName, r.line, msg}
		r.rec = nil
		return false
	}
	r.rec = rec
	return true
}

// Record returns the record that was just read by Scan.
func (r *Reader) Record() *Record {
	return r.rec
}

// Err returns the first error encountered by the Reader. Malformed
// lines are reported as *SyntaxError. If Scan stopped at EOF, Err
// returns nil.
func (r *Reader) Err() error {
	return r.err
}
