// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bwchart

import (
	"image/color"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Bars draws vertical bars rising from zero. Unlike
// plotter.BarChart, the width of a bar is given in data units, so
// bars scale with the X axis and never spill into the next slot.
type Bars struct {
	// XYs holds the center (X) and height (Y) of each bar.
	XYs plotter.XYs

	// Width is the width of every bar in X axis units.
	Width float64

	// Color fills the bars.
	Color color.Color

	// LineStyle outlines the bars. A zero width draws no outline.
	draw.LineStyle
}

var (
	_ plot.Plotter     = (*Bars)(nil)
	_ plot.DataRanger  = (*Bars)(nil)
	_ plot.Thumbnailer = (*Bars)(nil)
)

// Plot implements the plot.Plotter interface.
func (b *Bars) Plot(c draw.Canvas, plt *plot.Plot) {
	trX, trY := plt.Transforms(&c)
	for _, bar := range b.XYs {
		left, right := trX(bar.X-b.Width/2), trX(bar.X+b.Width/2)
		if !c.ContainsX(left) && !c.ContainsX(right) {
			continue
		}
		bottom, top := trY(0), trY(bar.Y)
		pts := []vg.Point{
			{X: left, Y: bottom},
			{X: left, Y: top},
			{X: right, Y: top},
			{X: right, Y: bottom},
		}
		c.FillPolygon(b.Color, c.ClipPolygonY(pts))
		if b.LineStyle.Width > 0 {
			pts = append(pts, pts[0])
			c.StrokeLines(b.LineStyle, c.ClipLinesY(pts)...)
		}
	}
}

// DataRange implements the plot.DataRanger interface. The Y range
// always includes zero.
func (b *Bars) DataRange() (xmin, xmax, ymin, ymax float64) {
	xmin, xmax = math.Inf(1), math.Inf(-1)
	ymin, ymax = 0, 0
	for _, bar := range b.XYs {
		xmin = math.Min(xmin, bar.X-b.Width/2)
		xmax = math.Max(xmax, bar.X+b.Width/2)
		ymin = math.Min(ymin, bar.Y)
		ymax = math.Max(ymax, bar.Y)
	}
	return xmin, xmax, ymin, ymax
}

// Thumbnail implements the plot.Thumbnailer interface.
func (b *Bars) Thumbnail(c *draw.Canvas) {
	pts := []vg.Point{
		{X: c.Min.X, Y: c.Min.Y},
		{X: c.Min.X, Y: c.Max.Y},
		{X: c.Max.X, Y: c.Max.Y},
		{X: c.Max.X, Y: c.Min.Y},
	}
	c.FillPolygon(b.Color, c.ClipPolygonY(pts))
	if b.LineStyle.Width > 0 {
		pts = append(pts, pts[0])
		c.StrokeLines(b.LineStyle, c.ClipLinesY(pts)...)
	}
}
