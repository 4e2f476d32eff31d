// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package collate

import (
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"gopkg.in/yaml.v3"
)

// A Config is the ordered list of algorithms whose results are
// collated. The first enabled algorithm is the reference: its test
// order and count define the rows of the report.
type Config struct {
	// Algorithms lists algorithm names in report column order.
	Algorithms []string `yaml:"algorithms"`

	// Disabled lists algorithms that are skipped even though
	// they appear in Algorithms.
	Disabled []string `yaml:"disabled"`
}

// DefaultConfig returns the algorithm list of the standard hash join
// test run. The clhash and cityhash variants are disabled.
func DefaultConfig() *Config {
	return &Config{
		Algorithms: []string{
			"quad",
			"grace_murmur",
			"new_buffer_farmhash",
			"grace_clhash",
			"grace_cityhash",
			"grace_farmhash",
			"memory_murmur",
			"memory_clhash",
			"memory_cityhash",
			"memory_farmhash",
			"buffer_murmur",
			"buffer_clhash",
			"buffer_cityhash",
			"buffer_farmhash",
		},
		Disabled: []string{
			"grace_clhash",
			"grace_cityhash",
			"memory_clhash",
			"memory_cityhash",
			"buffer_clhash",
			"buffer_cityhash",
		},
	}
}

// ParseAlgorithms returns a Config enabling exactly the algorithms in
// the comma-separated list s.
func ParseAlgorithms(s string) *Config {
	var algs []string
	for _, alg := range strings.Split(s, ",") {
		if alg = strings.TrimSpace(alg); alg != "" {
			algs = append(algs, alg)
		}
	}
	return &Config{Algorithms: algs}
}

// LoadConfig reads a YAML Config from the file at path and validates
// it.
func LoadConfig(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var cfg Config
	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%s: empty configuration", path)
		}
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &cfg, nil
}

// Enabled returns the algorithms of c that are not disabled, in
// order.
func (c *Config) Enabled() []string {
	disabled := make(map[string]bool, len(c.Disabled))
	for _, alg := range c.Disabled {
		disabled[alg] = true
	}
	var algs []string
	for _, alg := range c.Algorithms {
		if !disabled[alg] {
			algs = append(algs, alg)
		}
	}
	return algs
}

// Reference returns the reference algorithm, or "" if no algorithm
// is enabled.
func (c *Config) Reference() string {
	if algs := c.Enabled(); len(algs) > 0 {
		return algs[0]
	}
	return ""
}

// algName matches names that are safe to embed in a file name.
var algName = regexp.MustCompile(`^[A-Za-z0-9_.+-]+$`)

// Validate checks that c names at least one enabled algorithm and
// that every name is usable in a result file name.
func (c *Config) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Algorithms,
			validation.Required,
			validation.Each(validation.Required, validation.Match(algName)),
			validation.By(unique),
			validation.By(func(interface{}) error {
				if len(c.Enabled()) == 0 {
					return validation.NewError("validation_all_disabled", "must enable at least one algorithm")
				}
				return nil
			}),
		),
		validation.Field(&c.Disabled,
			validation.Each(validation.Match(algName)),
		),
	)
}

func unique(value interface{}) error {
	algs, _ := value.([]string)
	seen := make(map[string]bool, len(algs))
	for _, alg := range algs {
		if seen[alg] {
			return validation.NewError("validation_duplicate", fmt.Sprintf("lists %s more than once", alg))
		}
		seen[alg] = true
	}
	return nil
}
