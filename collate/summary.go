// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package collate

import (
	"fmt"
	"math"

	"github.com/aclements/go-moremath/stats"
)

// AddGeoMean sets t's summary row to the geometric mean of each
// algorithm's times. Columns with missing tests or times that are not
// positive get no summary and a warning instead.
func (t *Table) AddGeoMean() {
	sum := &Row{
		Times:   make([]float64, len(t.Algorithms)),
		Missing: make([]bool, len(t.Algorithms)),
	}
	for col, alg := range t.Algorithms {
		times := make([]float64, 0, len(t.Rows))
		incomplete := false
		for _, row := range t.Rows {
			if row.Missing[col] {
				incomplete = true
				continue
			}
			times = append(times, row.Times[col])
		}
		if incomplete {
			t.Warnings = append(t.Warnings, fmt.Errorf("%s: test set differs from reference; geomean may not be comparable", alg))
		}

		gm := stats.GeoMean(times)
		if math.IsNaN(gm) {
			t.Warnings = append(t.Warnings, fmt.Errorf("%s: times must be >0 to compute geomean", alg))
			sum.Missing[col] = true
			continue
		}
		sum.Times[col] = gm
	}
	t.Summary = sum
	t.SummaryLabel = "geomean"
}
