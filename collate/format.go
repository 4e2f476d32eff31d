// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package collate

import (
	"bufio"
	"io"

	"hjreport/internal/texttab"
)

// ToCSV writes t in comma-separated form: a header line
//
//	test_name,<alg1>,...,<algN>,results
//
// followed by one line per row. Fields are joined with commas and
// never quoted, matching the result file syntax.
func (t *Table) ToCSV(w io.Writer) error {
	bw := bufio.NewWriter(w)
	line := func(name string, cells []string, result string) {
		bw.WriteString(name)
		for _, c := range cells {
			bw.WriteByte(',')
			bw.WriteString(c)
		}
		bw.WriteByte(',')
		bw.WriteString(result)
		bw.WriteByte('\n')
	}

	line("test_name", t.Algorithms, "results")
	for _, row := range t.Rows {
		line(row.Name, t.cells(row), row.Result)
	}
	if t.Summary != nil {
		line(t.SummaryLabel, t.cells(t.Summary), "")
	}
	return bw.Flush()
}

// ToText writes t as a table of aligned columns.
func (t *Table) ToText(w io.Writer) error {
	var o texttab.Table
	o.Row().Cell("test_name")
	for _, alg := range t.Algorithms {
		o.Cell(alg, texttab.Right, texttab.LeftMargin("  "))
	}
	o.Cell("results", texttab.LeftMargin("  "))

	row := func(name string, cells []string, result string) {
		o.Row().Cell(name)
		for _, c := range cells {
			o.Cell(c, texttab.Right, texttab.LeftMargin("  "))
		}
		o.Cell(result, texttab.LeftMargin("  "))
	}
	for _, r := range t.Rows {
		row(r.Name, t.cells(r), r.Result)
	}
	if t.Summary != nil {
		row(t.SummaryLabel, t.cells(t.Summary), "")
	}
	return o.Format(w)
}
