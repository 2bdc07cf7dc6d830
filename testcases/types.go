// seehuhn.de/go/pixmap - arithmetic on floating-point RGB images
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package testcases provides a catalogue of named image arithmetic
// fixtures.  Each fixture consists of synthetic input images and an
// operation to apply to them.
//
// The fixtures are used by the tests of the pixmap packages, and by the
// commands in the subdirectories, which write the fixtures to disk as
// image files and PDF proof sheets.
package testcases

import (
	"seehuhn.de/go/geom/matrix"

	"seehuhn.de/go/pixmap"
	"seehuhn.de/go/pixmap/mask"
	"seehuhn.de/go/pixmap/recipe"
)

// TestCase defines a single image arithmetic test.
type TestCase struct {
	Name   string           // lowercase a-z, 0-9 and _ only
	Width  int              // image width in pixels
	Height int              // image height in pixels
	Inputs []Pattern        // one pattern per argument of Op
	Op     recipe.Operation // the operation under test
}

// Images renders the input images of the test case.
func (tc TestCase) Images() []*pixmap.Image {
	res := make([]*pixmap.Image, len(tc.Inputs))
	for i, p := range tc.Inputs {
		res[i] = p.Render(tc.Width, tc.Height)
	}
	return res
}

// Pattern generates a synthetic input image.
type Pattern interface {
	Render(width, height int) *pixmap.Image
}

// Solid fills the whole image with one color.
type Solid struct {
	Color pixmap.RGB
}

func (p Solid) Render(width, height int) *pixmap.Image {
	return pixmap.NewFilled(width, height, p.Color)
}

// HGradient interpolates linearly from From at the left edge to To at the
// right edge.  Channel values are rounded down to integers, so that the
// image survives a round trip through an 8-bit file.
type HGradient struct {
	From, To pixmap.RGB
}

func (p HGradient) Render(width, height int) *pixmap.Image {
	img := pixmap.New(width, height)
	for x := range width {
		c := lerp(p.From, p.To, fraction(x, width))
		for y := range height {
			*img.At(x, y) = c
		}
	}
	return img
}

// VGradient interpolates linearly from From at the top edge to To at the
// bottom edge.  Channel values are rounded down to integers.
type VGradient struct {
	From, To pixmap.RGB
}

func (p VGradient) Render(width, height int) *pixmap.Image {
	img := pixmap.New(width, height)
	for y := range height {
		c := lerp(p.From, p.To, fraction(y, height))
		for x := range width {
			*img.At(x, y) = c
		}
	}
	return img
}

// Checkers alternates between two colors in square cells.
type Checkers struct {
	Size int
	A, B pixmap.RGB
}

func (p Checkers) Render(width, height int) *pixmap.Image {
	size := max(p.Size, 1)
	img := pixmap.New(width, height)
	for y := range height {
		for x := range width {
			c := p.A
			if (x/size+y/size)%2 == 1 {
				c = p.B
			}
			*img.At(x, y) = c
		}
	}
	return img
}

// Disc draws an anti-aliased disc of color In on a background of color
// Out.  The center and radius are given as fractions of the image width.
// Channel values are rounded down to integers.
type Disc struct {
	CX, CY, R float64
	In, Out   pixmap.RGB
}

func (p Disc) Render(width, height int) *pixmap.Image {
	w := float64(width)
	r := p.R * w
	m := mask.Fill(width, height, mask.Ellipse(p.CX*w, p.CY*w, r, r), matrix.Identity)
	fg := pixmap.NewFilled(width, height, p.In)
	bg := pixmap.NewFilled(width, height, p.Out)
	img := mask.Composite(fg, bg, m)
	for i := range img.Pix() {
		c := img.Index(i)
		*c = pixmap.RGB{R: floor(c.R), G: floor(c.G), B: floor(c.B)}
	}
	return img
}

func fraction(i, n int) float32 {
	if n <= 1 {
		return 0
	}
	return float32(i) / float32(n-1)
}

func lerp(a, b pixmap.RGB, t float32) pixmap.RGB {
	c := a.Scale(1 - t).Add(b.Scale(t))
	return pixmap.RGB{R: floor(c.R), G: floor(c.G), B: floor(c.B)}
}

func floor(v float32) float32 {
	return float32(int(v))
}

// rgb is a helper to create a pixmap.RGB from channel values.
func rgb(r, g, b float32) pixmap.RGB {
	return pixmap.RGB{R: r, G: g, B: b}
}
