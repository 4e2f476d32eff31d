// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package collate

import (
	"fmt"

	"hjreport/resultfmt"
)

// A Builder builds a Table from the result files of several
// algorithms.
type Builder struct {
	// Keyed matches each reference record with the record of the
	// same test name in every other file. Otherwise, records are
	// matched by line position.
	Keyed bool

	// Chained compares each algorithm with the row as left by the
	// algorithms before it, including any label they wrote, instead
	// of with the reference record. Once one algorithm disagrees,
	// every later algorithm disagrees with its label, so the last
	// algorithm names the row.
	Chained bool

	// TimeFormat is copied to the built Table.
	TimeFormat TimeFormat
}

// Build aligns files against files[0], the reference, and returns the
// comparison table. The table has exactly one row per reference
// record.
//
// In positional mode it is an error for any other file to have fewer
// records than the reference; extra records are reported as a table
// warning. In keyed mode, missing tests are marked in their row and
// tests the reference did not run are reported as warnings.
func (b *Builder) Build(files []*resultfmt.File) (*Table, error) {
	if len(files) == 0 {
		return nil, fmt.Errorf("no result files")
	}
	t := &Table{TimeFormat: b.TimeFormat}
	for _, f := range files {
		t.Algorithms = append(t.Algorithms, f.Algorithm)
	}

	var lookup func(i, col int, ref *resultfmt.Record) *resultfmt.Record
	var idx *keyedIndex
	if b.Keyed {
		idx = newKeyedIndex(files)
		lookup = func(i, col int, ref *resultfmt.Record) *resultfmt.Record {
			return idx.take(col, ref.Name)
		}
	} else {
		ref := files[0]
		for _, f := range files[1:] {
			if len(f.Records) < len(ref.Records) {
				return nil, fmt.Errorf("%s: has %d results, reference %s has %d", f.Path, len(f.Records), ref.Algorithm, len(ref.Records))
			}
			if len(f.Records) > len(ref.Records) {
				t.Warnings = append(t.Warnings, fmt.Errorf("%s: has %d results, reference %s has %d; ignoring the extra results", f.Path, len(f.Records), ref.Algorithm, len(ref.Records)))
			}
		}
		lookup = func(i, col int, ref *resultfmt.Record) *resultfmt.Record {
			return files[col].Records[i]
		}
	}

	for i, ref := range files[0].Records {
		row := &Row{
			Name:    ref.Name,
			Times:   make([]float64, len(files)),
			Missing: make([]bool, len(files)),
			Result:  ref.Result,
		}
		row.Times[0] = ref.Time
		for col := 1; col < len(files); col++ {
			alg := files[col].Algorithm
			rec := lookup(i, col, ref)
			if rec == nil {
				row.Missing[col] = true
				row.Name = alg + " MISSING TEST"
				row.Mismatch = true
				continue
			}
			row.Times[col] = rec.Time
			wantName, wantResult := ref.Name, ref.Result
			if b.Chained {
				wantName, wantResult = row.Name, row.Result
			}
			// Later algorithms overwrite the labels of
			// earlier ones.
			if rec.Name != wantName {
				row.Name = alg + " MADE DIFFERENT TESTS"
				row.Mismatch = true
			}
			if rec.Result != wantResult {
				row.Result = alg + " HAVE DIFFERENT RESULTS"
				row.Mismatch = true
			}
		}
		row.Name = NormalizeName(row.Name)
		t.Rows = append(t.Rows, row)
	}
	if idx != nil {
		t.Warnings = append(t.Warnings, idx.unused()...)
	}
	return t, nil
}

// keyedIndex finds records by test name. Each record can be taken
// once, so a test that appears twice in a file matches two reference
// records in order.
type keyedIndex struct {
	files  []*resultfmt.File
	byName []map[string][]int
	taken  [][]bool
}

func newKeyedIndex(files []*resultfmt.File) *keyedIndex {
	idx := &keyedIndex{
		files:  files,
		byName: make([]map[string][]int, len(files)),
		taken:  make([][]bool, len(files)),
	}
	for col, f := range files {
		m := make(map[string][]int)
		for i, rec := range f.Records {
			m[rec.Name] = append(m[rec.Name], i)
		}
		idx.byName[col] = m
		idx.taken[col] = make([]bool, len(f.Records))
	}
	return idx
}

func (idx *keyedIndex) take(col int, name string) *resultfmt.Record {
	pos := idx.byName[col][name]
	if len(pos) == 0 {
		return nil
	}
	idx.byName[col][name] = pos[1:]
	idx.taken[col][pos[0]] = true
	return idx.files[col].Records[pos[0]]
}

// unused returns a warning for every record of a non-reference file
// that was never matched.
func (idx *keyedIndex) unused() []error {
	var warnings []error
	ref := idx.files[0].Algorithm
	for col := 1; col < len(idx.files); col++ {
		f := idx.files[col]
		for i, rec := range f.Records {
			if !idx.taken[col][i] {
				warnings = append(warnings, fmt.Errorf("%s: test %s not in %s", f.Algorithm, rec.Name, ref))
			}
		}
	}
	return warnings
}
