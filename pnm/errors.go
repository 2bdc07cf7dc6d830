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

import "errors"

var (
	// ErrUnknownFormat is returned when a file does not start with one of
	// the magic numbers P2, P3, P5 or P6.
	ErrUnknownFormat = errors.New("pnm: unrecognized format")

	// ErrUnsupported is returned for binary files with more than 8 bits
	// per sample.
	ErrUnsupported = errors.New("pnm: only 8-bit samples are supported")

	// ErrEmptyImage is returned when trying to encode an image without
	// pixels.
	ErrEmptyImage = errors.New("pnm: cannot write an empty image")
)

// MalformedError indicates that the header or the pixel data of a file
// could not be parsed.
type MalformedError struct {
	Format Format
	Err    error
}

func (err *MalformedError) Error() string {
	msg := "pnm: malformed " + err.Format.String() + " data"
	if err.Err != nil {
		msg += ": " + err.Err.Error()
	}
	return msg
}

func (err *MalformedError) Unwrap() error {
	return err.Err
}
