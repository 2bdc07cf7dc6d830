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
	"fmt"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/pixmap"
	"seehuhn.de/go/pixmap/mask"
)

var (
	// ErrEmptyInput is returned by [Apply] if one of the arguments has
	// no pixels, typically because it could not be read.
	ErrEmptyInput = errors.New("empty input image")

	// ErrSizeMismatch is returned by [Apply] if the arguments of a binary
	// operation have different dimensions.
	ErrSizeMismatch = errors.New("image sizes differ")
)

// Operation is one of the image operators which can be used in a recipe.
type Operation interface {
	isOperation()
}

// Add computes the channel-wise sum of two images.
type Add struct{}

// Subtract computes the channel-wise difference of two images,
// clamped below at zero.
type Subtract struct{}

// Average replaces the first argument by the average of both arguments.
// The first argument is modified in place.
type Average struct{}

// SubtractInPlace subtracts the second argument from the first one,
// clamping at zero.  The first argument is modified in place.
type SubtractInPlace struct{}

// Multiply scales all channel values of an image by a constant factor.
type Multiply struct {
	Factor float32
}

// Modulate computes the channel-wise product of two images.
type Modulate struct{}

// Gamma applies gamma correction to every channel value of an image.
type Gamma struct {
	Gamma float64
}

// Alpha blends the first argument over the second one, using a constant
// opacity.
type Alpha struct {
	Alpha float32
}

// Masked blends the first argument over the second one inside a shape.
// Pixels on the shape boundary are blended according to their coverage.
type Masked struct {
	Shape Shape
}

func (Add) isOperation()             {}
func (Subtract) isOperation()        {}
func (Average) isOperation()         {}
func (SubtractInPlace) isOperation() {}
func (Multiply) isOperation()        {}
func (Modulate) isOperation()        {}
func (Gamma) isOperation()           {}
func (Alpha) isOperation()           {}
func (Masked) isOperation()          {}

// ShapeKind selects the outline of a [Shape].
type ShapeKind string

// These are the supported shapes.
const (
	ShapeRect    ShapeKind = "rect"
	ShapeEllipse ShapeKind = "ellipse"
)

// Shape describes the region used by a [Masked] operation.  The shape is
// given by its bounding box, in pixel coordinates with the origin in the
// top-left corner of the image.
type Shape struct {
	Kind   ShapeKind `yaml:"kind"`
	X      float64   `yaml:"x"`
	Y      float64   `yaml:"y"`
	Width  float64   `yaml:"width"`
	Height float64   `yaml:"height"`

	// Invert, if set, blends outside the shape instead of inside.
	Invert bool `yaml:"invert,omitempty"`
}

// Path returns the outline of the shape.
func (s Shape) Path() *path.Data {
	switch s.Kind {
	case ShapeEllipse:
		rx, ry := s.Width/2, s.Height/2
		return mask.Ellipse(s.X+rx, s.Y+ry, rx, ry)
	default:
		return mask.Rect(rect.Rect{
			LLx: s.X,
			LLy: s.Y,
			URx: s.X + s.Width,
			URy: s.Y + s.Height,
		})
	}
}

// Name returns the name used for op in recipe files.
func Name(op Operation) string {
	switch op.(type) {
	case Add:
		return "add"
	case Subtract:
		return "subtract"
	case Average:
		return "average"
	case SubtractInPlace:
		return "subtract-in-place"
	case Multiply:
		return "multiply"
	case Modulate:
		return "modulate"
	case Gamma:
		return "gamma"
	case Alpha:
		return "alpha"
	case Masked:
		return "masked"
	default:
		return fmt.Sprintf("%T", op)
	}
}

// Arity returns the number of image arguments op takes.
func Arity(op Operation) int {
	switch op.(type) {
	case Multiply, Gamma:
		return 1
	default:
		return 2
	}
}

// Apply evaluates op on the given images.
//
// Unlike the methods of [pixmap.Image], Apply does not panic on invalid
// arguments.  Instead, ErrEmptyInput or ErrSizeMismatch is returned.
// The in-place operations [Average] and [SubtractInPlace] modify and
// return args[0].
func Apply(op Operation, args []*pixmap.Image) (*pixmap.Image, error) {
	if n := Arity(op); len(args) != n {
		return nil, fmt.Errorf("%s: got %d arguments, want %d", Name(op), len(args), n)
	}
	for _, img := range args {
		if img == nil || img.IsEmpty() {
			return nil, ErrEmptyInput
		}
	}
	if len(args) == 2 && !pixmap.SameSize(args[0], args[1]) {
		return nil, fmt.Errorf("%w: %s and %s", ErrSizeMismatch, args[0], args[1])
	}

	a := args[0]
	switch op := op.(type) {
	case Add:
		return a.Add(args[1]), nil
	case Subtract:
		return a.Sub(args[1]), nil
	case Average:
		return a.AddAssign(args[1]), nil
	case SubtractInPlace:
		return a.SubAssign(args[1]), nil
	case Multiply:
		return a.Scale(op.Factor), nil
	case Modulate:
		return a.Mul(args[1]), nil
	case Gamma:
		return pixmap.GammaCorrect(a, op.Gamma), nil
	case Alpha:
		return pixmap.AlphaComposite(a, args[1], op.Alpha), nil
	case Masked:
		m := mask.Fill(a.Width(), a.Height(), op.Shape.Path(), matrix.Identity)
		if op.Shape.Invert {
			m.Invert()
		}
		return mask.Composite(a, args[1], m), nil
	default:
		return nil, fmt.Errorf("unsupported operation %T", op)
	}
}
