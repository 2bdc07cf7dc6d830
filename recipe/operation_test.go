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

package recipe

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"seehuhn.de/go/pixmap"
)

func TestApply(t *testing.T) {
	a := pixmap.RGB{R: 100, G: 200, B: 50}
	b := pixmap.RGB{R: 60, G: 10, B: 250}

	cases := []struct {
		op   Operation
		want pixmap.RGB
	}{
		{Add{}, pixmap.RGB{R: 160, G: 210, B: 300}},
		{Subtract{}, pixmap.RGB{R: 40, G: 190, B: 0}},
		{Average{}, pixmap.RGB{R: 80, G: 105, B: 150}},
		{SubtractInPlace{}, pixmap.RGB{R: 40, G: 190, B: 0}},
		{Multiply{Factor: 2}, pixmap.RGB{R: 200, G: 400, B: 100}},
		{Modulate{}, pixmap.RGB{R: 6000, G: 2000, B: 12500}},
		{Gamma{Gamma: 1}, a},
		{Alpha{Alpha: 0.5}, pixmap.RGB{R: 80, G: 105, B: 150}},
		{Masked{Shape: Shape{Kind: ShapeRect, Width: 10, Height: 10}}, a},
	}

	for _, c := range cases {
		t.Run(Name(c.op), func(t *testing.T) {
			args := []*pixmap.Image{pixmap.NewFilled(3, 2, a), pixmap.NewFilled(3, 2, b)}
			args = args[:Arity(c.op)]

			res, err := Apply(c.op, args)
			if err != nil {
				t.Fatal(err)
			}
			want := pixmap.NewFilled(3, 2, c.want)
			if d := cmp.Diff(want.Pix(), res.Pix(), cmpopts.EquateApprox(0, 1e-3)); d != "" {
				t.Errorf("result (-want +got):\n%s", d)
			}
		})
	}
}

func TestApplyInPlace(t *testing.T) {
	for _, op := range []Operation{Average{}, SubtractInPlace{}} {
		a := pixmap.NewFilled(2, 2, pixmap.Gray(10))
		b := pixmap.NewFilled(2, 2, pixmap.Gray(4))
		res, err := Apply(op, []*pixmap.Image{a, b})
		if err != nil {
			t.Fatal(err)
		}
		if res != a {
			t.Errorf("%s: result is not the first argument", Name(op))
		}
	}

	a := pixmap.NewFilled(2, 2, pixmap.Gray(10))
	res, err := Apply(Add{}, []*pixmap.Image{a, a.Clone()})
	if err != nil {
		t.Fatal(err)
	}
	if res == a {
		t.Error("add modified its argument")
	}
}

func TestApplyMasked(t *testing.T) {
	fg := pixmap.NewFilled(8, 8, pixmap.White)
	bg := pixmap.New(8, 8)

	shape := Shape{Kind: ShapeRect, X: 2, Y: 2, Width: 4, Height: 4}
	res, err := Apply(Masked{Shape: shape}, []*pixmap.Image{fg, bg})
	if err != nil {
		t.Fatal(err)
	}
	if got := *res.At(3, 3); got != pixmap.White {
		t.Errorf("inside: got %v, want white", got)
	}
	if got := *res.At(0, 0); got != pixmap.Black {
		t.Errorf("outside: got %v, want black", got)
	}

	shape.Invert = true
	res, err = Apply(Masked{Shape: shape}, []*pixmap.Image{fg, bg})
	if err != nil {
		t.Fatal(err)
	}
	if got := *res.At(3, 3); got != pixmap.Black {
		t.Errorf("inverted inside: got %v, want black", got)
	}
	if got := *res.At(7, 7); got != pixmap.White {
		t.Errorf("inverted outside: got %v, want white", got)
	}

	ellipse := Shape{Kind: ShapeEllipse, X: 0, Y: 0, Width: 8, Height: 8}
	res, err = Apply(Masked{Shape: ellipse}, []*pixmap.Image{fg, bg})
	if err != nil {
		t.Fatal(err)
	}
	if got := *res.At(4, 4); got != pixmap.White {
		t.Errorf("ellipse center: got %v, want white", got)
	}
	if got := *res.At(0, 0); got != pixmap.Black {
		t.Errorf("ellipse corner: got %v, want black", got)
	}
}

func TestApplyErrors(t *testing.T) {
	img := pixmap.New(2, 2)

	_, err := Apply(Add{}, []*pixmap.Image{img, {}})
	if !errors.Is(err, ErrEmptyInput) {
		t.Errorf("empty: got %v, want ErrEmptyInput", err)
	}

	_, err = Apply(Alpha{Alpha: 0.5}, []*pixmap.Image{img, pixmap.New(3, 2)})
	if !errors.Is(err, ErrSizeMismatch) {
		t.Errorf("mismatch: got %v, want ErrSizeMismatch", err)
	}

	_, err = Apply(Gamma{Gamma: 2}, []*pixmap.Image{img, img})
	if err == nil {
		t.Error("wrong argument count: missing error")
	}

	_, err = Apply(Multiply{Factor: 2}, []*pixmap.Image{nil})
	if !errors.Is(err, ErrEmptyInput) {
		t.Errorf("nil: got %v, want ErrEmptyInput", err)
	}
}
