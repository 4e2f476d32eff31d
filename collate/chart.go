// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package collate

import (
	"fmt"
	"io"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
	"gonum.org/v1/plot/vg/vgsvg"
)

// barWidth is the width of one algorithm's bar in a test group.
const barWidth = vg.Length(6)

// Chart draws t as a grouped bar chart, one group per test and one
// bar per algorithm, and writes it to w. format is "png" or "svg".
// Missing times are drawn as zero.
func (t *Table) Chart(w io.Writer, format string) error {
	if len(t.Rows) == 0 {
		return fmt.Errorf("no tests to chart")
	}

	pl := plot.New()
	pl.Title.Text = "hash join test times"
	pl.Y.Label.Text = "time (s)"
	pl.Y.Min = 0
	pl.Add(plotter.NewGrid())
	pl.Legend.Top = true

	names := make([]string, len(t.Rows))
	for i, row := range t.Rows {
		names[i] = row.Name
	}
	pl.NominalX(names...)
	pl.X.Tick.Label.Rotation = 0.8
	pl.X.Tick.Label.XAlign = draw.XRight
	pl.X.Tick.Label.YAlign = draw.YCenter

	n := len(t.Algorithms)
	for col, alg := range t.Algorithms {
		values := make(plotter.Values, len(t.Rows))
		for i, row := range t.Rows {
			if !row.Missing[col] {
				values[i] = row.Times[col]
			}
		}
		bars, err := plotter.NewBarChart(values, barWidth)
		if err != nil {
			return fmt.Errorf("charting %s: %w", alg, err)
		}
		bars.LineStyle.Width = vg.Length(0)
		bars.Color = plotutil.Color(col)
		// Center the group on the test's tick.
		bars.Offset = vg.Length(float64(col)-float64(n-1)/2) * barWidth
		pl.Add(bars)
		pl.Legend.Add(alg, bars)
	}

	width := vg.Length(len(t.Rows)*(n+2)) * barWidth
	if minWidth := 20 * vg.Centimeter; width < minWidth {
		width = minWidth
	}
	height := 12 * vg.Centimeter

	var can vg.CanvasWriterTo
	switch format {
	case "png":
		can = vgimg.PngCanvas{Canvas: vgimg.New(width, height)}
	case "svg":
		can = vgsvg.New(width, height)
	default:
		return fmt.Errorf("unknown chart format %q", format)
	}
	pl.Draw(draw.New(can))
	_, err := can.WriteTo(w)
	return err
}
