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

// Package mask implements per-pixel blend factors for compositing images.
//
// A mask can be rasterized from a vector path, in which case every mask
// value gives the fraction of the pixel covered by the path.
package mask

import (
	"fmt"

	"seehuhn.de/go/pixmap"
)

// Mask holds one blend factor per pixel, in row-major order.
// Values are nominally in the range [0, 1].
type Mask struct {
	width  int
	height int
	alpha  []float32
}

// New allocates a mask of the given size, with all values set to zero.
func New(width, height int) *Mask {
	return Uniform(width, height, 0)
}

// Uniform allocates a mask of the given size, with all values set to a.
func Uniform(width, height int, a float32) *Mask {
	if width <= 0 || height <= 0 {
		return &Mask{}
	}
	m := &Mask{
		width:  width,
		height: height,
		alpha:  make([]float32, width*height),
	}
	if a != 0 {
		for i := range m.alpha {
			m.alpha[i] = a
		}
	}
	return m
}

// Width returns the mask width in pixels.
func (m *Mask) Width() int {
	return m.width
}

// Height returns the mask height in pixels.
func (m *Mask) Height() int {
	return m.height
}

// At returns the mask value at (x, y).
// At panics if (x, y) lies outside the mask.
func (m *Mask) At(x, y int) float32 {
	return m.alpha[m.offset(x, y)]
}

// Set changes the mask value at (x, y).
// Set panics if (x, y) lies outside the mask.
func (m *Mask) Set(x, y int, a float32) {
	m.alpha[m.offset(x, y)] = a
}

func (m *Mask) offset(x, y int) int {
	if x < 0 || x >= m.width || y < 0 || y >= m.height {
		panic(fmt.Sprintf("mask: pixel (%d, %d) outside %dx%d mask",
			x, y, m.width, m.height))
	}
	return y*m.width + x
}

// Invert replaces every value a by 1-a.
func (m *Mask) Invert() {
	for i, a := range m.alpha {
		m.alpha[i] = 1 - a
	}
}

// Composite blends fg over bg, using the mask values as per-pixel blend
// factors: the result is fg*a + bg*(1-a).  With a uniform mask, this is
// the same as [pixmap.AlphaComposite].
//
// Composite panics if the images and the mask do not all have the same size.
func Composite(fg, bg *pixmap.Image, m *Mask) *pixmap.Image {
	if !pixmap.SameSize(fg, bg) || fg.Width() != m.width || fg.Height() != m.height {
		panic(fmt.Sprintf("mask: size mismatch %dx%d, %dx%d, mask %dx%d",
			fg.Width(), fg.Height(), bg.Width(), bg.Height(), m.width, m.height))
	}

	res := pixmap.New(fg.Width(), fg.Height())
	out, fp, bp := res.Pix(), fg.Pix(), bg.Pix()
	for i, a := range m.alpha {
		out[i] = fp[i].Scale(a).Add(bp[i].Scale(1 - a))
	}
	return res
}
