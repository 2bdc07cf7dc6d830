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

// Package pnm reads and writes images in the portable pixel-map family of
// file formats.
//
// Four variants can be read: plain-text grayscale (P2), plain-text color
// (P3), binary grayscale (P5) and binary color (P6).  Only 8-bit samples
// are supported for the binary variants.  Images are always written as
// binary color (P6) files.
//
// Sample values are used as channel values without normalization, so that
// a byte value of 200 becomes the channel value 200, independent of the
// maximum value given in the file header.
package pnm

import "fmt"

// Format identifies one of the supported file variants.
type Format int

// These are the supported file variants.
const (
	P2 Format = iota + 2 // plain-text grayscale
	P3                   // plain-text color
	_                    // P4 (bitmaps) is not supported
	P5                   // binary grayscale
	P6                   // binary color
)

func (f Format) String() string {
	switch f {
	case P2, P3, P5, P6:
		return fmt.Sprintf("P%d", int(f))
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// Binary reports whether samples are stored as raw bytes.
func (f Format) Binary() bool {
	return f == P5 || f == P6
}

// Gray reports whether the format stores a single sample per pixel.
func (f Format) Gray() bool {
	return f == P2 || f == P5
}

// parseFormat maps a magic number from a file header to a Format.
func parseFormat(tag string) (Format, error) {
	switch tag {
	case "P2":
		return P2, nil
	case "P3":
		return P3, nil
	case "P5":
		return P5, nil
	case "P6":
		return P6, nil
	}
	return 0, ErrUnknownFormat
}
