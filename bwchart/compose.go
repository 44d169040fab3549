// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bwchart

import (
	"path/filepath"
	"strings"

	"github.com/aclements/go-moremath/stats"
	"golang.org/x/bwgraph/bwcsv"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
)

// Output files written by Compare.
const (
	WriteCmpFile = "write-cmp.png"
	ReadCmpFile  = "read-cmp.png"
)

// Panel sizes.
const (
	panelWidth  = 8 * vg.Inch
	panelHeight = 6 * vg.Inch
)

// Options configures Single and Compare.
type Options struct {
	// Title, if not empty, is drawn as the heading of every
	// figure. It does not affect file names.
	Title string

	// Dir is the directory Compare writes its figures to. If
	// empty, figures are written to the current directory.
	Dir string

	// Gap and Palette are passed to Render.
	Gap     float64
	Palette Palette
}

func (o Options) render() RenderOptions {
	return RenderOptions{Gap: o.Gap, Palette: o.Palette}
}

// opPanel describes the panel or figure drawn for one operation type.
type opPanel struct {
	op    bwcsv.Op
	title string
	file  string
}

var opPanels = []opPanel{
	{bwcsv.OpPut, "Write bandwidth", WriteCmpFile},
	{bwcsv.OpGet, "Read bandwidth", ReadCmpFile},
}

// Single returns a figure with a write bandwidth panel and a read
// bandwidth panel for d. The figure is saved next to d's input file,
// with its extension replaced by ".png".
func Single(d *bwcsv.Dataset, opts Options) (*Figure, error) {
	f := &Figure{
		Path:   strings.TrimSuffix(d.Path, filepath.Ext(d.Path)) + ".png",
		Title:  opts.Title,
		Width:  2 * panelWidth,
		Height: panelHeight,
	}
	for _, op := range opPanels {
		p := plot.New()
		p.Title.Text = op.title
		panel, err := Render(p, d.Op(op.op), d.Sizes, opts.render())
		if err != nil {
			return nil, err
		}
		f.Panels = append(f.Panels, panel)
	}
	return f, nil
}

// Compare returns two figures comparing dss, one for writes and one
// for reads. Each figure has one panel per dataset, titled with the
// dataset's Name, and all panels of a figure share the same Y range.
//
// The datasets must be compatible (see bwcsv.Compatible).
func Compare(dss []*bwcsv.Dataset, opts Options) ([]*Figure, error) {
	if err := bwcsv.Compatible(dss); err != nil {
		return nil, err
	}
	var figs []*Figure
	for _, op := range opPanels {
		f := &Figure{
			Path:   filepath.Join(opts.Dir, op.file),
			Title:  opts.Title,
			Width:  vg.Length(len(dss)) * panelWidth,
			Height: panelHeight,
		}
		if f.Title == "" {
			f.Title = op.title
		}
		for _, d := range dss {
			p := plot.New()
			p.Title.Text = d.Name
			panel, err := Render(p, d.Op(op.op), d.Sizes, opts.render())
			if err != nil {
				return nil, err
			}
			f.Panels = append(f.Panels, panel)
		}
		shareY(f.Panels)
		figs = append(figs, f)
	}
	return figs, nil
}

// shareY sets the Y range of every panel to the union of the Y
// ranges of the panels that have bars.
func shareY(panels []*Panel) {
	var ends []float64
	for _, p := range panels {
		if p.empty() {
			continue
		}
		ends = append(ends, p.Plot.Y.Min, p.Plot.Y.Max)
	}
	if len(ends) == 0 {
		return
	}
	lo, hi := stats.Bounds(ends)
	for _, p := range panels {
		p.Plot.Y.Min, p.Plot.Y.Max = lo, hi
	}
}
