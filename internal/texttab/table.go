// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package texttab lays out fixed-width text tables.
package texttab

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

// Table does layout of text-based tables.
//
// Many of its methods return the Table so callers can easily chain
// them to build up many cells at once.
type Table struct {
	rows [][]textCell
	cols int
}

type textCell struct {
	value      string
	leftMargin string
	alignment  align
}

// A CellOption adjusts the layout of a single cell.
type CellOption func(c *textCell)

// LeftMargin sets the text printed before a cell. The widest margin
// in a column is used for every cell of that column.
func LeftMargin(x string) CellOption {
	return func(c *textCell) {
		c.leftMargin = x
	}
}

var (
	Left   CellOption = func(c *textCell) { c.alignment = alignLeft }
	Center CellOption = func(c *textCell) { c.alignment = alignCenter }
	Right  CellOption = func(c *textCell) { c.alignment = alignRight }
)

type align int

const (
	alignLeft align = iota
	alignCenter
	alignRight
)

func (a align) lpad(s string, w int) string {
	switch a {
	default:
		return s
	case alignCenter:
		l := (w - utf8.RuneCountInString(s)) / 2
		return fmt.Sprintf("%*s%s", l, "", s)
	case alignRight:
		return fmt.Sprintf("%*s", w, s)
	}
}

// Row starts a new row in table t.
func (t *Table) Row() *Table {
	t.rows = append(t.rows, nil)
	return t
}

// Cell adds a cell at the end of the current row.
func (t *Table) Cell(value string, opts ...CellOption) *Table {
	if len(t.rows) == 0 {
		t.Row()
	}
	cur := &t.rows[len(t.rows)-1]
	lMargin := " "
	if len(*cur) == 0 || len(value) == 0 {
		// The left-most column and empty cells have no
		// margin by default.
		lMargin = ""
	}
	c := textCell{value, lMargin, alignLeft}
	for _, o := range opts {
		o(&c)
	}
	*cur = append(*cur, c)
	if len(*cur) > t.cols {
		t.cols = len(*cur)
	}
	return t
}

// Format lays out table t and writes it to w.
func (t *Table) Format(w io.Writer) error {
	lmargin := make([]int, t.cols)
	ws := make([]int, t.cols)
	for _, row := range t.rows {
		for col, cell := range row {
			if n := utf8.RuneCountInString(cell.leftMargin); n > lmargin[col] {
				lmargin[col] = n
			}
			if n := utf8.RuneCountInString(cell.value); n > ws[col] {
				ws[col] = n
			}
		}
	}

	var b strings.Builder
	for _, row := range t.rows {
		b.Reset()
		pad := 0
		for col, cell := range row {
			if cell.value == "" && strings.TrimSpace(cell.leftMargin) == "" {
				// Defer the space of empty cells so rows
				// don't end in spaces.
				pad += lmargin[col] + ws[col]
				continue
			}
			fmt.Fprintf(&b, "%*s%*s", pad, "", lmargin[col], cell.leftMargin)
			s := cell.alignment.lpad(cell.value, ws[col])
			b.WriteString(s)
			pad = ws[col] - utf8.RuneCountInString(s)
		}
		b.WriteByte('\n')
		if _, err := io.WriteString(w, b.String()); err != nil {
			return err
		}
	}
	return nil
}
