// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package bwchart draws grouped bar charts of benchmark bandwidth by
// object size and worker count.
//
// Render draws one panel: for every object size bucket it draws one
// bar per worker count, side by side. Single and Compare arrange
// panels into figures, and Figure.Save writes a figure as a PNG.
package bwchart

import (
	"fmt"
	"image/color"
	"sort"
	"strconv"

	"github.com/aclements/go-gg/generic/slice"
	"github.com/aclements/go-gg/table"
	"golang.org/x/bwgraph/bwcsv"
	"golang.org/x/bwgraph/sizemap"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
)

// DefaultGap is the fraction of each object size slot left empty
// between neighboring groups of bars.
const DefaultGap = 0.25

// RenderOptions configures Render.
type RenderOptions struct {
	// Gap is the fraction of a slot between groups, in (0, 1).
	// If zero, DefaultGap is used.
	Gap float64

	// Palette colors the worker counts. If nil, DefaultPalette is
	// used.
	Palette Palette
}

// A Panel is one rendered bar chart.
type Panel struct {
	Plot *plot.Plot

	// Workers holds the distinct worker counts, ascending.
	Workers []int

	// Colors[i] is the color of Workers[i].
	Colors []color.Color

	// Bars[i] draws the bars of Workers[i].
	Bars []*Bars

	// Legend holds the legend entries, one per worker count.
	Legend []string
}

// empty reports whether the panel has no bars.
func (p *Panel) empty() bool {
	for _, b := range p.Bars {
		if len(b.XYs) > 0 {
			return false
		}
	}
	return true
}

// Render draws the results in g onto p.
//
// g must hold the results of a single operation type with the
// columns bwcsv.ColBucket, bwcsv.ColWorkers and bwcsv.ColBandwidth,
// such as returned by bwcsv.Dataset.Op. Bucket i is drawn in the
// slot centered at X = i+1 and labeled sizes.Label(i).
//
// Render returns a *CapacityError if g has more distinct worker
// counts than the palette has colors.
func Render(p *plot.Plot, g table.Grouping, sizes *sizemap.Map, opts RenderOptions) (*Panel, error) {
	gap := opts.Gap
	if gap == 0 {
		gap = DefaultGap
	}
	if gap < 0 || gap >= 1 {
		return nil, fmt.Errorf("bar gap %v not in (0, 1)", gap)
	}
	pal := opts.Palette
	if pal == nil {
		pal = DefaultPalette
	}

	var buckets, workers []int
	var bandwidth []float64
	for _, gid := range g.Tables() {
		t := g.Table(gid)
		var b, w []int
		var bw []float64
		slice.Convert(&b, t.MustColumn(bwcsv.ColBucket))
		slice.Convert(&w, t.MustColumn(bwcsv.ColWorkers))
		slice.Convert(&bw, t.MustColumn(bwcsv.ColBandwidth))
		buckets = append(buckets, b...)
		workers = append(workers, w...)
		bandwidth = append(bandwidth, bw...)
	}
	for _, b := range buckets {
		if b < 0 || b >= sizes.Len() {
			return nil, fmt.Errorf("object size bucket %d out of range [0, %d)", b, sizes.Len())
		}
	}

	var distinct []int
	if len(workers) > 0 {
		distinct = slice.Nub(workers).([]int)
		sort.Ints(distinct)
	}
	colors, err := pal.Assign(len(distinct))
	if err != nil {
		return nil, err
	}

	panel := &Panel{Plot: p, Workers: distinct, Colors: colors}
	width := (1 - gap) / float64(len(distinct))
	slot := make(map[int]int) // worker count -> position within a slot
	for i, w := range distinct {
		slot[w] = i
		panel.Bars = append(panel.Bars, &Bars{Width: width, Color: colors[i]})
	}
	for i, b := range buckets {
		k := slot[workers[i]]
		x := float64(b+1) - (1-gap)/2 + (float64(k)+0.5)*width
		panel.Bars[k].XYs = append(panel.Bars[k].XYs, plotter.XY{X: x, Y: bandwidth[i]})
	}

	for i, bars := range panel.Bars {
		p.Add(bars)
		label := workersLabel(distinct[i])
		p.Legend.Add(label, bars)
		panel.Legend = append(panel.Legend, label)
	}
	p.Legend.Top = true
	p.Legend.Left = true

	ticks := make([]plot.Tick, sizes.Len())
	for i := range ticks {
		ticks[i] = plot.Tick{Value: float64(i + 1), Label: sizes.Label(i)}
	}
	p.X.Tick.Marker = plot.ConstantTicks(ticks)
	p.X.Min, p.X.Max = 0.5, float64(sizes.Len())+0.5
	p.X.Label.Text = "Object size"
	p.Y.Label.Text = "Bandwidth (MB/s)"
	if panel.empty() {
		p.Y.Min, p.Y.Max = 0, 1
	}
	return panel, nil
}

func workersLabel(n int) string {
	if n == 1 {
		return "1 worker"
	}
	return strconv.Itoa(n) + " workers"
}
