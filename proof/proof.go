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

// Package proof writes proof sheets: single-page PDF files which show a
// row of images side by side.
//
// Every pixel is painted as a filled rectangle in the DeviceRGB color
// space, so that the sheet reproduces the quantized pixel values exactly,
// independent of the image filters of the PDF viewer.
package proof

import (
	"errors"
	"io"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/pixmap"
)

// ErrNoTiles is returned if none of the tiles contains any pixels.
var ErrNoTiles = errors.New("proof: nothing to show")

// Tile is one image on a proof sheet.
type Tile struct {
	Name  string
	Image *pixmap.Image
}

// Options control the layout of a proof sheet.
// A nil *Options is equivalent to the zero value.
type Options struct {
	// Quantizer maps channel values to the colors shown on the sheet.
	Quantizer pixmap.Quantizer

	// Scale is the size of one pixel, in PDF points.
	// The default is 1.
	Scale float64

	// Gap is the space around and between tiles, in PDF points.
	// The default is 8.
	Gap float64

	// Frame, if set, draws a thin gray border around every tile.
	Frame bool
}

// WriteFile writes a proof sheet to the named file.
func WriteFile(name string, tiles []Tile, opt *Options) error {
	paper, err := pageSize(tiles, opt)
	if err != nil {
		return err
	}
	page, err := document.CreateSinglePage(name, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}
	return draw(page, paper, tiles, opt)
}

// Write writes a proof sheet to w.
// Empty tiles are skipped.  If no tile has any pixels, ErrNoTiles is
// returned and nothing is written.
func Write(w io.Writer, tiles []Tile, opt *Options) error {
	paper, err := pageSize(tiles, opt)
	if err != nil {
		return err
	}
	page, err := document.WriteSinglePage(w, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}
	return draw(page, paper, tiles, opt)
}

func withDefaults(opt *Options) Options {
	var res Options
	if opt != nil {
		res = *opt
	}
	if res.Scale <= 0 {
		res.Scale = 1
	}
	if res.Gap <= 0 {
		res.Gap = 8
	}
	return res
}

func pageSize(tiles []Tile, opt *Options) (*pdf.Rectangle, error) {
	o := withDefaults(opt)

	width := o.Gap
	height := 0.0
	n := 0
	for _, t := range tiles {
		if t.Image == nil || t.Image.IsEmpty() {
			continue
		}
		width += float64(t.Image.Width())*o.Scale + o.Gap
		height = max(height, float64(t.Image.Height())*o.Scale)
		n++
	}
	if n == 0 {
		return nil, ErrNoTiles
	}
	return &pdf.Rectangle{URx: width, URy: height + 2*o.Gap}, nil
}

func draw(page *document.Page, paper *pdf.Rectangle, tiles []Tile, opt *Options) error {
	o := withDefaults(opt)

	// PDF origin is bottom-left; images have the origin at the top-left.
	page.Transform(matrix.Matrix{1, 0, 0, -1, 0, paper.URy})

	x0 := o.Gap
	for _, t := range tiles {
		if t.Image == nil || t.Image.IsEmpty() {
			continue
		}
		img := t.Image

		page.PushGraphicsState()
		page.Transform(matrix.Matrix{o.Scale, 0, 0, o.Scale, x0, o.Gap})
		paintPixels(page, img, o.Quantizer)
		if o.Frame {
			page.SetStrokeColor(color.DeviceGray(0.5))
			page.SetLineWidth(0.5 / o.Scale)
			page.Rectangle(0, 0, float64(img.Width()), float64(img.Height()))
			page.Stroke()
		}
		page.PopGraphicsState()

		x0 += float64(img.Width())*o.Scale + o.Gap
	}

	return page.Close()
}

// paintPixels fills one unit square per pixel.  Horizontal runs of pixels
// with identical quantized colors are merged into a single rectangle.
func paintPixels(page *document.Page, img *pixmap.Image, q pixmap.Quantizer) {
	width := img.Width()
	pix := img.Pix()

	var current [3]uint8
	haveColor := false
	for y := range img.Height() {
		row := pix[y*width : (y+1)*width]
		x := 0
		for x < width {
			c := quantize(row[x], q)
			end := x + 1
			for end < width && quantize(row[end], q) == c {
				end++
			}

			if !haveColor || c != current {
				page.SetFillColor(color.DeviceRGB(
					float64(c[0])/255, float64(c[1])/255, float64(c[2])/255))
				current = c
				haveColor = true
			}
			page.Rectangle(float64(x), float64(y), float64(end-x), 1)
			page.Fill()

			x = end
		}
	}
}

func quantize(c pixmap.RGB, q pixmap.Quantizer) [3]uint8 {
	return [3]uint8{q.Byte(c.R), q.Byte(c.G), q.Byte(c.B)}
}
