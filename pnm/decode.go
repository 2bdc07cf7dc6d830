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
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"seehuhn.de/go/pixmap"
)

// MaxPixels is the largest number of pixels accepted by the decoder.
const MaxPixels = 1 << 28

// maxTokenLen limits the length of header and sample tokens.
// Conforming files use lines of at most 70 characters.
const maxTokenLen = 70

var errLongToken = errors.New("token too long")

// Config describes the header of a file.
type Config struct {
	Format Format
	Width  int
	Height int
	MaxVal int
}

// ReadFile decodes the named file.
//
// On error, the returned image is empty (but not nil), so that callers
// which choose to ignore the error can detect the failure with
// [pixmap.Image.IsEmpty].
func ReadFile(name string) (*pixmap.Image, error) {
	fd, err := os.Open(name)
	if err != nil {
		return &pixmap.Image{}, fmt.Errorf("pnm: %w", err)
	}
	defer fd.Close()

	return Decode(fd)
}

// Decode reads a P2, P3, P5 or P6 image from r.
//
// On error, the returned image is empty (but not nil).
func Decode(r io.Reader) (*pixmap.Image, error) {
	br := bufio.NewReader(r)
	cfg, err := readHeader(br)
	if err != nil {
		return &pixmap.Image{}, err
	}

	img := pixmap.New(cfg.Width, cfg.Height)
	switch cfg.Format {
	case P6:
		err = readBinary(br, img, 3)
	case P5:
		err = readBinary(br, img, 1)
	case P3:
		err = readText(br, img, 3)
	case P2:
		err = readText(br, img, 1)
	}
	if err != nil {
		if err == io.EOF {
			err = io.ErrUnexpectedEOF
		}
		return &pixmap.Image{}, &MalformedError{Format: cfg.Format, Err: err}
	}
	return img, nil
}

// DecodeConfig reads the file header from r, without decoding the pixel data.
func DecodeConfig(r io.Reader) (Config, error) {
	return readHeader(bufio.NewReader(r))
}

func readHeader(r *bufio.Reader) (Config, error) {
	tag, err := readToken(r, true)
	if err == io.EOF || err == errLongToken {
		return Config{}, ErrUnknownFormat
	} else if err != nil {
		return Config{}, err
	}
	format, err := parseFormat(tag)
	if err != nil {
		return Config{}, err
	}

	var vals [3]int
	for i := range vals {
		vals[i], err = readInt(r)
		if err == io.EOF {
			err = io.ErrUnexpectedEOF
		}
		if err != nil {
			return Config{}, &MalformedError{Format: format, Err: err}
		}
	}
	cfg := Config{
		Format: format,
		Width:  vals[0],
		Height: vals[1],
		MaxVal: vals[2],
	}

	if cfg.Width <= 0 || cfg.Height <= 0 {
		return Config{}, &MalformedError{
			Format: format,
			Err:    fmt.Errorf("invalid image size %dx%d", cfg.Width, cfg.Height),
		}
	}
	if cfg.Width > MaxPixels/cfg.Height {
		return Config{}, &MalformedError{
			Format: format,
			Err:    fmt.Errorf("image size %dx%d too large", cfg.Width, cfg.Height),
		}
	}
	if cfg.MaxVal < 1 || cfg.MaxVal > 65535 {
		return Config{}, &MalformedError{
			Format: format,
			Err:    fmt.Errorf("invalid maximum value %d", cfg.MaxVal),
		}
	}
	if format.Binary() && cfg.MaxVal > 255 {
		return Config{}, fmt.Errorf("%w (maximum value %d)", ErrUnsupported, cfg.MaxVal)
	}

	return cfg, nil
}

// readBinary reads one raw byte per sample.  For single-sample formats,
// the value is replicated into all three channels.
func readBinary(r *bufio.Reader, img *pixmap.Image, samples int) error {
	w := img.Width()
	row := make([]byte, samples*w)
	pix := img.Pix()
	for y := range img.Height() {
		if _, err := io.ReadFull(r, row); err != nil {
			return err
		}
		out := pix[y*w : (y+1)*w]
		if samples == 1 {
			for x, v := range row {
				out[x] = pixmap.Gray(float32(v))
			}
		} else {
			for x := range out {
				out[x] = pixmap.RGB{
					R: float32(row[3*x]),
					G: float32(row[3*x+1]),
					B: float32(row[3*x+2]),
				}
			}
		}
	}
	return nil
}

// readText reads whitespace-separated decimal samples.  For single-sample
// formats, the value is replicated into all three channels.
func readText(r *bufio.Reader, img *pixmap.Image, samples int) error {
	var v [3]float32
	pix := img.Pix()
	for i := range pix {
		for j := range samples {
			tok, err := readToken(r, false)
			if err != nil {
				return err
			}
			x, err := strconv.ParseUint(tok, 10, 16)
			if err != nil {
				return fmt.Errorf("invalid sample %q", tok)
			}
			v[j] = float32(x)
		}
		if samples == 1 {
			pix[i] = pixmap.Gray(v[0])
		} else {
			pix[i] = pixmap.RGB{R: v[0], G: v[1], B: v[2]}
		}
	}
	return nil
}

func readInt(r *bufio.Reader) (int, error) {
	tok, err := readToken(r, true)
	if err != nil {
		return 0, err
	}
	x, err := strconv.Atoi(tok)
	if err != nil {
		return 0, fmt.Errorf("invalid number %q", tok)
	}
	return x, nil
}

// readToken returns the next whitespace-delimited token.  The whitespace
// byte which terminates the token is consumed.  If comments is set,
// everything from a '#' before the token up to the end of the line is
// skipped.
func readToken(r *bufio.Reader, comments bool) (string, error) {
	var c byte
	var err error
	for {
		c, err = r.ReadByte()
		if err != nil {
			return "", err
		}
		if c == '#' && comments {
			if err := skipLine(r); err != nil {
				return "", err
			}
			continue
		}
		if !isSpace(c) {
			break
		}
	}

	buf := []byte{c}
	for {
		c, err = r.ReadByte()
		if err == io.EOF {
			break
		} else if err != nil {
			return "", err
		}
		if isSpace(c) {
			break
		}
		buf = append(buf, c)
		if len(buf) > maxTokenLen {
			return "", errLongToken
		}
	}
	return string(buf), nil
}

func skipLine(r *bufio.Reader) error {
	for {
		_, err := r.ReadSlice('\n')
		if err != bufio.ErrBufferFull {
			return err
		}
	}
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}
