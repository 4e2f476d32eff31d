// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Hjreport collates the result files of a hash join test run into a
// single comparison table.
//
// Usage:
//
//	hjreport [options] dir
//
// Each algorithm of the run writes its results to dir/resumen_<alg>.txt,
// one line per test:
//
//	test_name,time,result_id
//
// hjreport reads the file of every configured algorithm and prints one
// line per test with the test name, the time of each algorithm, and
// the result identifier:
//
//	test_name,quad,grace_murmur,...,results
//	q1.rq,1.234568,0.987654,...,1520
//
// The first algorithm is the reference. Files are matched line by
// line against the reference file. If an algorithm ran a different
// test on the same line, the test name is replaced by
// "<alg> MADE DIFFERENT TESTS"; if it produced a different result,
// the result is replaced by "<alg> HAVE DIFFERENT RESULTS". When
// several algorithms disagree with the reference, the last one is
// named. The -chained option instead compares each algorithm with the
// row as labeled by the algorithms before it, so once any algorithm
// disagrees the last algorithm names the row. Any directory prefix is stripped from test names, and times
// are rounded to 6 decimal places.
//
// The -algs option gives the comma-separated list of algorithms to
// read, in column order. The -config option reads the list from a YAML
// file instead:
//
//	algorithms:
//	  - quad
//	  - grace_murmur
//	  - grace_clhash
//	disabled:
//	  - grace_clhash
//
// Without either option, hjreport uses the standard list of the hash
// join test suite: quad, grace_murmur, new_buffer_farmhash,
// grace_farmhash, memory_murmur, memory_farmhash, buffer_murmur, and
// buffer_farmhash.
//
// The -keyed option matches tests by name instead of by line. Tests
// missing from an algorithm's file are reported as
// "<alg> MISSING TEST" and tests that only appear in other files are
// reported on standard error.
//
// The -format option selects the output format: csv (the default),
// text for aligned columns, or html. The -fixed option prints every
// time with exactly 6 decimal places. The -geomean option adds a final
// row with the geometric mean of each algorithm's times.
//
// The -png and -svg options also write a bar chart of the times to the
// named file.
package main

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"hjreport/collate"
	"hjreport/resultfmt"
)

// errUsage is returned when the command line is invalid. The usage
// message has already been printed.
var errUsage = errors.New("usage")

func main() {
	log.SetPrefix("hjreport: ")
	log.SetFlags(0)
	if err := hjreport(os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		if err == errUsage {
			os.Exit(2)
		}
		log.Fatal(err)
	}
}

func hjreport(w, wErr io.Writer, args []string) error {
	flags := flag.NewFlagSet("hjreport", flag.ContinueOnError)
	flags.SetOutput(wErr)
	flags.Usage = func() {
		fmt.Fprintf(wErr, "usage: hjreport [options] dir\n")
		fmt.Fprintf(wErr, "options:\n")
		flags.PrintDefaults()
	}
	var (
		flagAlgs    = flags.String("algs", "", "comma-separated `list` of algorithms; the first is the reference")
		flagConfig  = flags.String("config", "", "read the algorithm list from YAML `file`")
		flagFormat  = flags.String("format", "csv", "print results in `format`: csv, text, or html")
		flagFixed   = flags.Bool("fixed", false, "print times with exactly 6 decimal places")
		flagKeyed   = flags.Bool("keyed", false, "match tests by name instead of by line")
		flagChained = flags.Bool("chained", false, "compare each algorithm with the labels written by earlier algorithms")
		flagGeomean = flags.Bool("geomean", false, "print the geometric mean of each algorithm's times")
		flagPNG     = flags.String("png", "", "write a bar chart of the times to PNG `file`")
		flagSVG     = flags.String("svg", "", "write a bar chart of the times to SVG `file`")
	)
	if err := flags.Parse(args); err != nil {
		return errUsage
	}
	if flags.NArg() != 1 {
		flags.Usage()
		return errUsage
	}
	switch *flagFormat {
	case "csv", "text", "html":
	default:
		fmt.Fprintf(wErr, "unknown -format %q\n", *flagFormat)
		flags.Usage()
		return errUsage
	}
	if *flagAlgs != "" && *flagConfig != "" {
		fmt.Fprintf(wErr, "-algs and -config are mutually exclusive\n")
		flags.Usage()
		return errUsage
	}

	cfg := collate.DefaultConfig()
	switch {
	case *flagConfig != "":
		var err error
		if cfg, err = collate.LoadConfig(*flagConfig); err != nil {
			return err
		}
	case *flagAlgs != "":
		cfg = collate.ParseAlgorithms(*flagAlgs)
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("-algs: %w", err)
		}
	}

	files := resultfmt.Files{Dir: flags.Arg(0), Algorithms: cfg.Enabled()}
	results, err := files.Load()
	if err != nil {
		return err
	}

	b := collate.Builder{Keyed: *flagKeyed, Chained: *flagChained}
	if *flagFixed {
		b.TimeFormat = collate.FixedTime
	}
	table, err := b.Build(results)
	if err != nil {
		return err
	}
	if *flagGeomean {
		table.AddGeoMean()
	}

	var buf bytes.Buffer
	switch *flagFormat {
	case "csv":
		err = table.ToCSV(&buf)
	case "text":
		err = table.ToText(&buf)
	case "html":
		buf.WriteString(htmlHeader)
		err = table.ToHTML(&buf)
		buf.WriteString(htmlFooter)
	}
	if err != nil {
		return err
	}
	for _, warning := range table.Warnings {
		fmt.Fprintf(wErr, "%s\n", warning)
	}
	if _, err := w.Write(buf.Bytes()); err != nil {
		return err
	}

	if *flagPNG != "" {
		if err := writeChart(table, *flagPNG, "png"); err != nil {
			return err
		}
	}
	if *flagSVG != "" {
		if err := writeChart(table, *flagSVG, "svg"); err != nil {
			return err
		}
	}
	return nil
}

func writeChart(table *collate.Table, path, format string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := table.Chart(f, format); err != nil {
		f.Close()
		return fmt.Errorf("%s: %w", path, err)
	}
	return f.Close()
}

var htmlHeader = `<!doctype html>
<html>
<head>
<meta charset="utf-8">
<title>Hash Join Result Comparison</title>
<style>
.hjreport { border-collapse: collapse; }
.hjreport th { border-bottom: 1px solid #666; }
.hjreport th:nth-child(1) { text-align: left; }
.hjreport td:nth-child(1n+2) { text-align: right; padding: 0em 1em; }
.hjreport td:last-child { text-align: left; }
.hjreport .mismatch td { font-weight: bold; color: #c00; }
.hjreport tfoot td { border-top: 1px solid #ccc; }
</style>
</head>
<body>
`
var htmlFooter = `</body>
</html>
`
