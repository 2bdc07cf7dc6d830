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

package pixmap

import (
	"fmt"
	"image"
	"image/color"
	"math"
)

// Quantizer selects how floating-point channel values are mapped to bytes.
type Quantizer int

const (
	// Wrap truncates the value to an integer and reduces it modulo 255.
	// Values of 255 and above wrap around instead of saturating, so that
	// for example 255 becomes 0 and 305 becomes 50.
	Wrap Quantizer = iota

	// Saturate clamps the value to [0, 255] and then truncates it.
	Saturate
)

func (q Quantizer) String() string {
	switch q {
	case Wrap:
		return "wrap"
	case Saturate:
		return "saturate"
	default:
		return fmt.Sprintf("Quantizer(%d)", int(q))
	}
}

// Byte maps a channel value to a byte.
// NaN maps to 0 for all quantizers.
func (q Quantizer) Byte(v float32) uint8 {
	x := float64(v)
	if math.IsNaN(x) {
		return 0
	}
	if q == Saturate {
		return uint8(max(0, min(255, x)))
	}

	m := math.Mod(math.Trunc(x), 255)
	if math.IsNaN(m) { // ±Inf
		return 0
	}
	if m < 0 {
		m += 255
	}
	return uint8(m)
}

// ToNRGBA converts img to an opaque 8-bit image, using q to map channel
// values to bytes.
func (img *Image) ToNRGBA(q Quantizer) *image.NRGBA {
	res := image.NewNRGBA(image.Rect(0, 0, img.width, img.height))
	for y := range img.height {
		row := res.Pix[y*res.Stride:]
		for x, c := range img.pix[y*img.width : (y+1)*img.width] {
			row[4*x] = q.Byte(c.R)
			row[4*x+1] = q.Byte(c.G)
			row[4*x+2] = q.Byte(c.B)
			row[4*x+3] = 255
		}
	}
	return res
}

// FromImage converts an arbitrary image to an Image.
// Channel values are the 8-bit non-premultiplied color components;
// the alpha channel is discarded.
func FromImage(src image.Image) *Image {
	b := src.Bounds()
	res := New(b.Dx(), b.Dy())
	for y := range res.height {
		for x := range res.width {
			c := color.NRGBAModel.Convert(src.At(b.Min.X+x, b.Min.Y+y)).(color.NRGBA)
			res.pix[y*res.width+x] = RGB{float32(c.R), float32(c.G), float32(c.B)}
		}
	}
	return res
}
