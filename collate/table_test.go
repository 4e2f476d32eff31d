// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package collate

import (
	"math"
	"testing"
)

func TestTimeFormat(t *testing.T) {
	type testCase struct {
		in          float64
		short, fixd string
	}
	for _, test := range []testCase{
		{1.23456789, "1.234568", "1.234568"},
		{1.000001, "1.000001", "1.000001"},
		{2.000002, "2.000002", "2.000002"},
		{1, "1.0", "1.000000"},
		{0.5, "0.5", "0.500000"},
		{0.1, "0.1", "0.100000"},
		{12, "12.0", "12.000000"},
		{0.0000004, "0.0", "0.000000"},
		{0.00001, "0.00001", "0.000010"},
		{123456.7, "123456.7", "123456.700000"},
		{-1.5, "-1.5", "-1.500000"},
		{-0.0000001, "-0.0", "-0.000000"},
		{1e20, "100000000000000000000.0", "100000000000000000000.000000"},
		// Seventh-digit ties round by the exact binary value.
		{0.4972605, "0.49726", "0.497260"},
		{4.8377905, "4.83779", "4.837790"},
		{5.9207315, "5.920731", "5.920731"},
		{math.Inf(1), "inf", "inf"},
		{math.NaN(), "nan", "nan"},
	} {
		if got := ShortTime.Format(test.in); got != test.short {
			t.Errorf("ShortTime.Format(%v) = %q, want %q", test.in, got, test.short)
		}
		if got := FixedTime.Format(test.in); got != test.fixd {
			t.Errorf("FixedTime.Format(%v) = %q, want %q", test.in, got, test.fixd)
		}
	}
}

func TestNormalizeName(t *testing.T) {
	for in, want := range map[string]string{
		`C:\dir\case1`:              "case1",
		"a/b/case2":                 "case2",
		`mixed\dir/sub\case3`:       "case3",
		`dir/sub\case4`:             "case4",
		"case5":                     "case5",
		"trailing/":                 "",
		"alg2 MADE DIFFERENT TESTS": "alg2 MADE DIFFERENT TESTS",
	} {
		if got := NormalizeName(in); got != want {
			t.Errorf("NormalizeName(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestCellMissing(t *testing.T) {
	tab := &Table{Algorithms: []string{"a", "b"}}
	row := &Row{Times: []float64{1, 0}, Missing: []bool{false, true}}
	if got := tab.Cell(row, 0); got != "1.0" {
		t.Errorf("got %q, want 1.0", got)
	}
	if got := tab.Cell(row, 1); got != "" {
		t.Errorf("got %q for missing cell, want empty", got)
	}
}
