// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package collate

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	c := DefaultConfig()
	if err := c.Validate(); err != nil {
		t.Fatalf("default config invalid: %s", err)
	}
	want := []string{
		"quad",
		"grace_murmur",
		"new_buffer_farmhash",
		"grace_farmhash",
		"memory_murmur",
		"memory_farmhash",
		"buffer_murmur",
		"buffer_farmhash",
	}
	if got := c.Enabled(); !reflect.DeepEqual(got, want) {
		t.Errorf("got enabled %v, want %v", got, want)
	}
	if got := c.Reference(); got != "quad" {
		t.Errorf("got reference %q, want quad", got)
	}
}

func TestParseAlgorithms(t *testing.T) {
	c := ParseAlgorithms(" quad, grace_murmur,,memory_murmur ")
	if want := []string{"quad", "grace_murmur", "memory_murmur"}; !reflect.DeepEqual(c.Algorithms, want) {
		t.Errorf("got %v, want %v", c.Algorithms, want)
	}
	if err := c.Validate(); err != nil {
		t.Error(err)
	}
	if got := ParseAlgorithms("").Reference(); got != "" {
		t.Errorf("got reference %q for empty list", got)
	}
}

func TestValidate(t *testing.T) {
	type testCase struct {
		name    string
		cfg     Config
		wantErr string
	}
	for _, test := range []testCase{
		{"ok", Config{Algorithms: []string{"quad", "grace_murmur"}}, ""},
		{"empty", Config{}, "cannot be blank"},
		{"bad name", Config{Algorithms: []string{"quad", "../x"}}, "1: must be in a valid format"},
		{"duplicate", Config{Algorithms: []string{"quad", "grace_murmur", "quad"}}, "lists quad more than once"},
		{"all disabled", Config{Algorithms: []string{"quad"}, Disabled: []string{"quad"}}, "must enable at least one algorithm"},
		{"disable unknown", Config{Algorithms: []string{"quad"}, Disabled: []string{"grace_clhash"}}, ""},
	} {
		t.Run(test.name, func(t *testing.T) {
			err := test.cfg.Validate()
			if test.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error %s", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("got success, want error %s", test.wantErr)
			}
			if !strings.Contains(err.Error(), test.wantErr) {
				t.Errorf("got error %q, want %q", err, test.wantErr)
			}
		})
	}
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	write := func(name, data string) string {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte(data), 0666); err != nil {
			t.Fatal(err)
		}
		return path
	}

	path := write("ok.yaml", `
# The first enabled algorithm is the reference.
algorithms:
  - quad
  - grace_clhash
  - grace_murmur
disabled:
  - grace_clhash
`)
	c, err := LoadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if want := []string{"quad", "grace_murmur"}; !reflect.DeepEqual(c.Enabled(), want) {
		t.Errorf("got enabled %v, want %v", c.Enabled(), want)
	}

	for name, data := range map[string]string{
		"empty.yaml":   "",
		"unknown.yaml": "algorithms: [quad]\nreference: quad\n",
		"invalid.yaml": "algorithms: []\n",
		"syntax.yaml":  "algorithms: [quad\n",
	} {
		path := write(name, data)
		_, err := LoadConfig(path)
		if err == nil {
			t.Errorf("%s: got success, want error", name)
			continue
		}
		if !strings.HasPrefix(err.Error(), path+": ") {
			t.Errorf("%s: error %q does not name the file", name, err)
		}
	}

	if _, err := LoadConfig(filepath.Join(dir, "missing.yaml")); !os.IsNotExist(err) {
		t.Errorf("got error %v, want not exist", err)
	}
}
