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

// Package pixmap implements dense RGB raster images with floating-point
// channels, together with a small set of arithmetic operators.
//
// Channel values are nominally in the range [0, 255], but no operation
// clamps them, except where explicitly documented.  Values outside the
// byte range are mapped to bytes only when an image is written out, see
// [Quantizer].
//
// Operators which combine two images require both images to have the same
// dimensions.  Violating this, or accessing a pixel outside the image,
// is a programming error and causes a panic.
package pixmap

//go:generate go run ./testcases/export

import "math"

// RGB is a single pixel value.
type RGB struct {
	R, G, B float32
}

// Commonly used colors.
var (
	Black = RGB{0, 0, 0}
	White = RGB{255, 255, 255}
	Red   = RGB{255, 0, 0}
	Green = RGB{0, 255, 0}
	Blue  = RGB{0, 0, 255}
)

// Gray returns the color with all three channels set to v.
func Gray(v float32) RGB {
	return RGB{v, v, v}
}

// Add returns the channel-wise sum of c and d.
// The result is not clamped.
func (c RGB) Add(d RGB) RGB {
	return RGB{c.R + d.R, c.G + d.G, c.B + d.B}
}

// Sub returns the channel-wise difference c-d, where channels which
// would become negative are set to zero.
func (c RGB) Sub(d RGB) RGB {
	return RGB{subClamped(c.R, d.R), subClamped(c.G, d.G), subClamped(c.B, d.B)}
}

func subClamped(a, b float32) float32 {
	if a > b {
		return a - b
	}
	return 0
}

// Scale multiplies all channels by s.
func (c RGB) Scale(s float32) RGB {
	return RGB{c.R * s, c.G * s, c.B * s}
}

// Mul returns the channel-wise product of c and d.
func (c RGB) Mul(d RGB) RGB {
	return RGB{c.R * d.R, c.G * d.G, c.B * d.B}
}

// Gamma applies the transfer function 255*(v/255)^gamma to every channel.
func (c RGB) Gamma(gamma float64) RGB {
	return RGB{gammaChannel(c.R, gamma), gammaChannel(c.G, gamma), gammaChannel(c.B, gamma)}
}

func gammaChannel(v float32, gamma float64) float32 {
	return float32(255 * math.Pow(float64(v)/255, gamma))
}
