// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package collate cross-references the result files of several hash
// join algorithms and builds a single comparison table.
//
// A Builder aligns the records of every algorithm with the records of
// the reference algorithm and produces a Table with one Row per
// reference record. Rows where an algorithm ran a different test, or
// produced a different result, are annotated rather than rejected.
// The Table can then be rendered as CSV, aligned text, HTML, or a bar
// chart.
package collate

import (
	"math"
	"strconv"
	"strings"
)

// A Table is the comparison of all algorithms' results.
type Table struct {
	// Algorithms gives the column order of the table. Algorithms[0]
	// is the reference algorithm.
	Algorithms []string

	// Rows has one row per record of the reference algorithm, in
	// file order.
	Rows []*Row

	// Summary is an optional final row summarizing each column.
	// Summary.Missing marks columns that could not be summarized.
	Summary *Row

	// SummaryLabel is the label for the summary row.
	SummaryLabel string

	// Warnings lists problems with the input that did not prevent
	// building the table.
	Warnings []error

	// TimeFormat controls how times are rendered.
	TimeFormat TimeFormat
}

// A Row compares one test across all algorithms.
type Row struct {
	// Name is the normalized test name, or a label naming the
	// algorithm that ran a different test.
	Name string

	// Times has one elapsed time per algorithm, in the Table's
	// column order.
	Times []float64

	// Missing reports, per algorithm, that it had no record for
	// this test. The corresponding Times entry is meaningless.
	Missing []bool

	// Result is the result identifier shared by all algorithms, or
	// a label naming the algorithm that produced a different one.
	Result string

	// Mismatch is set if Name or Result was replaced by a label.
	Mismatch bool
}

// Cell returns the formatted time of column i.
func (t *Table) Cell(row *Row, i int) string {
	if row.Missing[i] {
		return ""
	}
	return t.TimeFormat.Format(row.Times[i])
}

// cells returns the formatted times of row.
func (t *Table) cells(row *Row) []string {
	cells := make([]string, len(row.Times))
	for i := range row.Times {
		cells[i] = t.Cell(row, i)
	}
	return cells
}

// TimeFormat selects how elapsed times are printed.
type TimeFormat int

const (
	// ShortTime rounds to 6 decimal places, with ties broken by the
	// exact binary value, and prints the shortest representation that
	// keeps at least one fractional digit, e.g. "1.0" or "1.234568".
	// It never uses exponent notation: 0.00001 prints as "0.00001"
	// and 1e20 as "100000000000000000000.0".
	ShortTime TimeFormat = iota

	// FixedTime prints exactly 6 decimal places, e.g. "1.000000".
	FixedTime
)

// Format formats t according to f.
func (f TimeFormat) Format(t float64) string {
	switch {
	case math.IsNaN(t):
		return "nan"
	case math.IsInf(t, 1):
		return "inf"
	case math.IsInf(t, -1):
		return "-inf"
	}
	s := strconv.FormatFloat(t, 'f', 6, 64)
	if f == FixedTime {
		return s
	}
	s = strings.TrimRight(s, "0")
	if strings.HasSuffix(s, ".") {
		s += "0"
	}
	return s
}

// NormalizeName strips any directory prefix from a test name, using
// either '\' or '/' as the separator.
func NormalizeName(name string) string {
	if i := strings.LastIndexByte(name, '\\'); i >= 0 {
		name = name[i+1:]
	}
	if i := strings.LastIndexByte(name, '/'); i >= 0 {
		name = name[i+1:]
	}
	return name
}
