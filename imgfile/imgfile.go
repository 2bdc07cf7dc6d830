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

// Package imgfile reads and writes images in any of the supported file
// formats.
//
// Files in PNM format are recognized by their magic number.  All other
// files are decoded using the standard library [image.Decode] mechanism,
// with PNG, BMP and TIFF support registered.  When writing, the format is
// chosen by the file name extension.
package imgfile

import (
	"bufio"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	"seehuhn.de/go/pixmap"
	"seehuhn.de/go/pixmap/pnm"
)

// ErrUnknownExtension is returned by [Write] if the output format cannot
// be deduced from the file name.
var ErrUnknownExtension = errors.New("imgfile: unknown file name extension")

// A Kind identifies a file format.
type Kind int

// These are the supported file formats.
const (
	PNM Kind = iota + 1
	PNG
	BMP
	TIFF
)

func (k Kind) String() string {
	switch k {
	case PNM:
		return "pnm"
	case PNG:
		return "png"
	case BMP:
		return "bmp"
	case TIFF:
		return "tiff"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// KindOf returns the output format for the given file name.
func KindOf(name string) (Kind, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".ppm", ".pnm":
		return PNM, nil
	case ".png":
		return PNG, nil
	case ".bmp":
		return BMP, nil
	case ".tif", ".tiff":
		return TIFF, nil
	}
	return 0, fmt.Errorf("%q: %w", name, ErrUnknownExtension)
}

// Read decodes the named image file.
// On error, the returned image is empty but not nil.
func Read(name string) (*pixmap.Image, error) {
	fd, err := os.Open(name)
	if err != nil {
		return &pixmap.Image{}, fmt.Errorf("imgfile: %w", err)
	}
	defer fd.Close()

	return Decode(fd)
}

// Decode reads an image in any of the supported formats from r.
// On error, the returned image is empty but not nil.
func Decode(r io.Reader) (*pixmap.Image, error) {
	br := bufio.NewReader(r)
	if isPNM(br) {
		return pnm.Decode(br)
	}

	src, _, err := image.Decode(br)
	if err != nil {
		return &pixmap.Image{}, fmt.Errorf("imgfile: %w", err)
	}
	return pixmap.FromImage(src), nil
}

// Info describes an image file without decoding the pixel data.
type Info struct {
	Format string // "P2", "P3", "P5", "P6", "png", "bmp" or "tiff"
	Width  int
	Height int
	MaxVal int // largest sample value
}

// DecodeConfig reads the header of an image in any of the supported
// formats from r.
func DecodeConfig(r io.Reader) (Info, error) {
	br := bufio.NewReader(r)
	if isPNM(br) {
		cfg, err := pnm.DecodeConfig(br)
		if err != nil {
			return Info{}, err
		}
		return Info{
			Format: cfg.Format.String(),
			Width:  cfg.Width,
			Height: cfg.Height,
			MaxVal: cfg.MaxVal,
		}, nil
	}

	cfg, format, err := image.DecodeConfig(br)
	if err != nil {
		return Info{}, fmt.Errorf("imgfile: %w", err)
	}
	maxVal := 255
	if cfg.ColorModel == color.RGBA64Model || cfg.ColorModel == color.NRGBA64Model ||
		cfg.ColorModel == color.Gray16Model {
		maxVal = 65535
	}
	return Info{
		Format: format,
		Width:  cfg.Width,
		Height: cfg.Height,
		MaxVal: maxVal,
	}, nil
}

func isPNM(br *bufio.Reader) bool {
	magic, err := br.Peek(2)
	if err != nil || magic[0] != 'P' {
		return false
	}
	switch magic[1] {
	case '2', '3', '5', '6':
		return true
	}
	return false
}

// Write stores img in the named file.  The file format is chosen by the
// extension of name.  Channel values are mapped to bytes using q.
//
// If the image is empty, [pnm.ErrEmptyImage] is returned and the file
// is not created.
func Write(name string, img *pixmap.Image, q pixmap.Quantizer) (err error) {
	kind, err := KindOf(name)
	if err != nil {
		return err
	}
	if img.IsEmpty() {
		return pnm.ErrEmptyImage
	}
	if kind == PNM {
		return pnm.WriteFile(name, img, &pnm.EncodeOptions{Quantizer: q})
	}

	fd, err := os.Create(name)
	if err != nil {
		return fmt.Errorf("imgfile: %w", err)
	}
	defer func() {
		closeErr := fd.Close()
		if err == nil && closeErr != nil {
			err = fmt.Errorf("imgfile: %w", closeErr)
		}
	}()

	w := bufio.NewWriter(fd)
	err = Encode(w, kind, img, q)
	if err != nil {
		return err
	}
	return w.Flush()
}

// Encode writes img to w, in the given format.
func Encode(w io.Writer, kind Kind, img *pixmap.Image, q pixmap.Quantizer) error {
	if img.IsEmpty() {
		return pnm.ErrEmptyImage
	}

	var err error
	switch kind {
	case PNM:
		return pnm.Encode(w, img, &pnm.EncodeOptions{Quantizer: q})
	case PNG:
		err = png.Encode(w, img.ToNRGBA(q))
	case BMP:
		err = bmp.Encode(w, img.ToNRGBA(q))
	case TIFF:
		err = tiff.Encode(w, img.ToNRGBA(q), &tiff.Options{Compression: tiff.Deflate})
	default:
		return fmt.Errorf("imgfile: cannot encode %s", kind)
	}
	if err != nil {
		return fmt.Errorf("imgfile: %s: %w", kind, err)
	}
	return nil
}
