// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bwchart

import (
	"image/color"
	"os"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// dpi is the resolution of saved figures.
const dpi = 100

// A Figure is a row of panels saved together as one image.
type Figure struct {
	// Path is the PNG file Save writes.
	Path string

	// Title, if not empty, is drawn above the panels.
	Title string

	Panels []*Panel

	// Width and Height are the size of the whole image.
	Width, Height vg.Length
}

// Save draws f and writes it to f.Path as a PNG image.
func (f *Figure) Save() (err error) {
	img := vgimg.NewWith(
		vgimg.UseWH(f.Width, f.Height),
		vgimg.UseDPI(dpi),
		vgimg.UseBackgroundColor(color.White),
	)
	f.draw(draw.New(img))

	out, err := os.Create(f.Path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := out.Close(); err == nil {
			err = cerr
		}
	}()
	_, err = vgimg.PngCanvas{Canvas: img}.WriteTo(out)
	return err
}

// draw lays out the title and panels of f on dc.
func (f *Figure) draw(dc draw.Canvas) {
	if f.Title != "" {
		sty := plot.New().Title.TextStyle
		sty.Font.Size = vg.Points(16)
		sty.XAlign = draw.XCenter
		sty.YAlign = draw.YTop
		pad := vg.Points(6)
		pt := vg.Point{X: (dc.Min.X + dc.Max.X) / 2, Y: dc.Max.Y - pad}
		dc.FillText(sty, pt, f.Title)
		dc = draw.Crop(dc, 0, 0, 0, -(sty.Height(f.Title) + 2*pad))
	}
	if len(f.Panels) == 0 {
		return
	}

	plots := [][]*plot.Plot{make([]*plot.Plot, len(f.Panels))}
	for i, p := range f.Panels {
		plots[0][i] = p.Plot
	}
	tiles := draw.Tiles{
		Rows:      1,
		Cols:      len(f.Panels),
		PadX:      vg.Centimeter,
		PadTop:    vg.Points(4),
		PadBottom: vg.Points(4),
		PadLeft:   vg.Points(8),
		PadRight:  vg.Points(12),
	}
	canvases := plot.Align(plots, tiles, dc)
	for i, p := range plots[0] {
		p.Draw(canvases[0][i])
	}
}
