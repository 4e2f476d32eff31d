// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package resultfmt reads the result files written by the hash join
// test suite.
//
// Each algorithm run writes one file, named resumen_<algorithm>.txt,
// with one line per test:
//
//	test_name,time,result_id
//
// Fields are separated by a single comma and there is no quoting or
// escaping. time is the elapsed time of the test in seconds, and
// result_id is an opaque identifier of the answer the algorithm
// produced, which must be the same for every algorithm.
package resultfmt

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// A Record is a single line of a result file.
type Record struct {
	// Name is the test name exactly as it appears in the file.
	// It usually includes the path of the query file.
	Name string

	// Time is the elapsed time of the test.
	Time float64

	// Result identifies the answer of the test.
	Result string

	// Line is the 1-based line number of this record in its file.
	Line int
}

// String returns r in result file syntax.
func (r *Record) String() string {
	return r.Name + "," + strconv.FormatFloat(r.Time, 'g', -1, 64) + "," + r.Result
}

// A SyntaxError represents a syntax error on a particular line of a
// result file.
type SyntaxError struct {
	FileName string
	Line     int
	Msg      string
}

func (e *SyntaxError) Pos() (fileName string, line int) {
	return e.FileName, e.Line
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s:%d: %s", e.FileName, e.Line, e.Msg)
}

// parseRecord parses line into rec. On failure it returns a
// description of the problem.
func parseRecord(line string, rec *Record) (msg string) {
	fields := strings.Split(strings.TrimSpace(line), ",")
	if len(fields) != 3 {
		return fmt.Sprintf("expected 3 comma-separated fields, found %d", len(fields))
	}
	field := strings.TrimSpace(fields[1])
	t, err := strconv.ParseFloat(field, 64)
	// Out of range times parse as ±Inf.
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return fmt.Sprintf("parsing time %q: %s", field, err.(*strconv.NumError).Err)
	}
	rec.Name, rec.Time, rec.Result = fields[0], t, fields[2]
	return ""
}
