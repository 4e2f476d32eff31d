// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package resultfmt

import (
	"fmt"
	"os"
	"path/filepath"
)

// FileName returns the base name of the result file written for
// algorithm alg.
func FileName(alg string) string {
	return "resumen_" + alg + ".txt"
}

// A File is the complete contents of one algorithm's result file.
type File struct {
	Algorithm string
	Path      string
	Records   []*Record
}

// ReadFile reads every record of the result file at path and
// attributes it to algorithm alg. The file is closed before ReadFile
// returns.
func ReadFile(path, alg string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	file := &File{Algorithm: alg, Path: path}
	r := NewReader(f, path)
	for r.Scan() {
		file.Records = append(file.Records, r.Record())
	}
	if err := r.Err(); err != nil {
		return nil, err
	}
	return file, nil
}

// Files reads the result files of a list of algorithms from a single
// directory.
type Files struct {
	// Dir is the directory containing the result files.
	Dir string

	// Algorithms is the list of algorithm names to read, in order.
	Algorithms []string
}

// Path returns the path of the result file of alg.
func (f *Files) Path(alg string) string {
	return filepath.Join(f.Dir, FileName(alg))
}

// Load reads the result file of each algorithm in f.Algorithms and
// returns them in the same order. It stops at the first file that
// cannot be read or parsed.
func (f *Files) Load() ([]*File, error) {
	if len(f.Algorithms) == 0 {
		return nil, fmt.Errorf("no algorithms to load")
	}
	files := make([]*File, 0, len(f.Algorithms))
	for _, alg := range f.Algorithms {
		file, err := ReadFile(f.Path(alg), alg)
		if err != nil {
			return nil, err
		}
		files = append(files, file)
	}
	return files, nil
}
