// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bwchart

import (
	"fmt"
	"image/color"
)

// A Palette is an ordered set of bar colors, one per worker count.
type Palette []color.Color

// DefaultPalette is red, blue, yellow, green, magenta, cyan and
// black.
var DefaultPalette = Palette{
	color.NRGBA{0xFF, 0x00, 0x00, 0xFF},
	color.NRGBA{0x00, 0x00, 0xFF, 0xFF},
	color.NRGBA{0xBF, 0xBF, 0x00, 0xFF},
	color.NRGBA{0x00, 0x80, 0x00, 0xFF},
	color.NRGBA{0xBF, 0x00, 0xBF, 0xFF},
	color.NRGBA{0x00, 0xBF, 0xBF, 0xFF},
	color.NRGBA{0x00, 0x00, 0x00, 0xFF},
}

// A CapacityError reports that a chart needs more colors than its
// Palette has.
type CapacityError struct {
	Workers int // distinct worker counts to draw
	Colors  int // colors in the palette
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("%d distinct worker counts, but only %d colors", e.Workers, e.Colors)
}

// Assign returns the first n colors of p, or a *CapacityError if p
// has fewer than n colors. Colors are never reused.
func (p Palette) Assign(n int) ([]color.Color, error) {
	if n > len(p) {
		return nil, &CapacityError{n, len(p)}
	}
	return append([]color.Color(nil), p[:n]...), nil
}
