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
	"slices"
)

// Image is a rectangular grid of RGB pixels, stored in row-major order.
//
// An image with zero width or height is empty and has no pixel buffer.
// The zero value is an empty image.
//
// An Image is not safe for concurrent mutation.
type Image struct {
	width  int
	height int
	pix    []RGB // len(pix) == width*height
}

// New allocates a black image of the given size.
// If either dimension is not positive, the result is the empty image.
func New(width, height int) *Image {
	return NewFilled(width, height, Black)
}

// NewFilled allocates an image of the given size, with every pixel set to c.
// If either dimension is not positive, the result is the empty image.
func NewFilled(width, height int, c RGB) *Image {
	if width <= 0 || height <= 0 {
		return &Image{}
	}
	img := &Image{
		width:  width,
		height: height,
		pix:    make([]RGB, width*height),
	}
	if c != Black {
		img.Fill(c)
	}
	return img
}

// Width returns the image width in pixels.
func (img *Image) Width() int {
	return img.width
}

// Height returns the image height in pixels.
func (img *Image) Height() int {
	return img.height
}

// IsEmpty reports whether the image has no pixels.
func (img *Image) IsEmpty() bool {
	return img.width == 0 || img.height == 0
}

// Pix returns the pixel buffer in row-major order.
// The slice shares storage with the image.
func (img *Image) Pix() []RGB {
	return img.pix
}

// At returns a reference to the pixel at (x, y), which can be used to read
// or modify the pixel.
//
// At panics if (x, y) lies outside the image.
func (img *Image) At(x, y int) *RGB {
	if x < 0 || x >= img.width || y < 0 || y >= img.height {
		panic(fmt.Sprintf("pixmap: pixel (%d, %d) outside %dx%d image",
			x, y, img.width, img.height))
	}
	return &img.pix[y*img.width+x]
}

// Index returns a reference to the i-th pixel in row-major order.
func (img *Image) Index(i int) *RGB {
	return &img.pix[i]
}

// Fill sets all pixels to c.
func (img *Image) Fill(c RGB) {
	for i := range img.pix {
		img.pix[i] = c
	}
}

// Clone returns a deep copy of the image.
func (img *Image) Clone() *Image {
	if img.IsEmpty() {
		return &Image{}
	}
	return &Image{
		width:  img.width,
		height: img.height,
		pix:    slices.Clone(img.pix),
	}
}

// Move transfers the pixel buffer of img to a new Image and leaves img
// empty.  No pixel data is copied.
func (img *Image) Move() *Image {
	res := &Image{
		width:  img.width,
		height: img.height,
		pix:    img.pix,
	}
	img.width = 0
	img.height = 0
	img.pix = nil
	return res
}

// SameSize reports whether a and b have the same dimensions.
func SameSize(a, b *Image) bool {
	return a.width == b.width && a.height == b.height
}

func (img *Image) String() string {
	return fmt.Sprintf("pixmap.Image(%dx%d)", img.width, img.height)
}

// mustMatch panics unless a and b have the same dimensions.
func mustMatch(op string, a, b *Image) {
	if !SameSize(a, b) {
		panic(fmt.Sprintf("pixmap: %s: size mismatch %dx%d vs %dx%d",
			op, a.width, a.height, b.width, b.height))
	}
}
