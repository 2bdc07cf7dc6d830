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

package pnm

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"seehuhn.de/go/pixmap"
)

// EncodeOptions controls how images are written.
// A nil *EncodeOptions is equivalent to the zero value.
type EncodeOptions struct {
	// Quantizer maps channel values to bytes.  The default, [pixmap.Wrap],
	// reduces values modulo 255, so that bright values wrap around to dark
	// ones.  Use [pixmap.Saturate] to clamp instead.
	Quantizer pixmap.Quantizer
}

// WriteFile writes img to the named file, in P6 format.
// If the image is empty, ErrEmptyImage is returned and the file is not
// created.
func WriteFile(name string, img *pixmap.Image, opt *EncodeOptions) (err error) {
	if img.IsEmpty() {
		return ErrEmptyImage
	}

	fd, err := os.Create(name)
	if err != nil {
		return fmt.Errorf("pnm: %w", err)
	}
	defer func() {
		closeErr := fd.Close()
		if err == nil && closeErr != nil {
			err = fmt.Errorf("pnm: %w", closeErr)
		}
	}()

	return Encode(fd, img, opt)
}

// Encode writes img to w, in P6 format with maximum value 255.
// If the image is empty, ErrEmptyImage is returned and nothing is written.
func Encode(w io.Writer, img *pixmap.Image, opt *EncodeOptions) error {
	if img.IsEmpty() {
		return ErrEmptyImage
	}
	if opt == nil {
		opt = &EncodeOptions{}
	}
	q := opt.Quantizer

	width := img.Width()
	bw := bufio.NewWriter(w)
	_, err := fmt.Fprintf(bw, "P6\n%d %d\n255\n", width, img.Height())
	if err != nil {
		return err
	}

	row := make([]byte, 3*width)
	pix := img.Pix()
	for y := range img.Height() {
		for x, c := range pix[y*width : (y+1)*width] {
			row[3*x] = q.Byte(c.R)
			row[3*x+1] = q.Byte(c.G)
			row[3*x+2] = q.Byte(c.B)
		}
		if _, err := bw.Write(row); err != nil {
			return err
		}
	}
	return bw.Flush()
}
