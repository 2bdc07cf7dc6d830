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

package mask

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/pixmap"
)

const tolerance = 0.01

func near(a, b float32) bool {
	return math.Abs(float64(a-b)) <= tolerance
}

func TestFillRect(t *testing.T) {
	m := Fill(8, 8, Rect(rect.Rect{LLx: 2, LLy: 2, URx: 6, URy: 6}), matrix.Matrix{})

	for y := range 8 {
		for x := range 8 {
			want := float32(0)
			if x >= 2 && x < 6 && y >= 2 && y < 6 {
				want = 1
			}
			if got := m.At(x, y); !near(got, want) {
				t.Errorf("(%d, %d): got %v, want %v", x, y, got, want)
			}
		}
	}
}

func TestFillPartialCoverage(t *testing.T) {
	m := Fill(4, 1, Rect(rect.Rect{LLx: 0, LLy: 0, URx: 2.5, URy: 1}), matrix.Identity)
	want := []float32{1, 1, 0.5, 0}
	for x, w := range want {
		if got := m.At(x, 0); !near(got, w) {
			t.Errorf("pixel %d: got %v, want %v", x, got, w)
		}
	}
}

func TestFillEllipse(t *testing.T) {
	m := Fill(16, 16, Ellipse(8, 8, 6, 6), matrix.Matrix{})
	if got := m.At(8, 8); !near(got, 1) {
		t.Errorf("center: got %v, want 1", got)
	}
	if got := m.At(0, 0); got != 0 {
		t.Errorf("corner: got %v, want 0", got)
	}
	if got := m.At(15, 8); got != 0 {
		t.Errorf("outside right: got %v, want 0", got)
	}
}

func TestFillCTM(t *testing.T) {
	p := Rect(rect.Rect{LLx: 1, LLy: 1, URx: 2, URy: 2})
	m := Fill(6, 6, p, matrix.Scale(2, 2))

	if got := m.At(3, 3); !near(got, 1) {
		t.Errorf("(3, 3): got %v, want 1", got)
	}
	if got := m.At(1, 1); got != 0 {
		t.Errorf("(1, 1): got %v, want 0", got)
	}
	if got := m.At(4, 4); got != 0 {
		t.Errorf("(4, 4): got %v, want 0", got)
	}
}

func TestFillOpenSubpath(t *testing.T) {
	open := (&path.Data{}).
		MoveTo(vec.Vec2{X: 0, Y: 0}).
		LineTo(vec.Vec2{X: 8, Y: 0}).
		LineTo(vec.Vec2{X: 8, Y: 8})
	closed := (&path.Data{}).
		MoveTo(vec.Vec2{X: 0, Y: 0}).
		LineTo(vec.Vec2{X: 8, Y: 0}).
		LineTo(vec.Vec2{X: 8, Y: 8}).
		Close()

	a := Fill(8, 8, open, matrix.Identity)
	b := Fill(8, 8, closed, matrix.Identity)
	if d := cmp.Diff(b.alpha, a.alpha); d != "" {
		t.Errorf("open vs closed (-closed +open):\n%s", d)
	}
	if got := a.At(7, 1); !near(got, 1) {
		t.Errorf("inside triangle: got %v", got)
	}
}

func TestFillEmpty(t *testing.T) {
	m := Fill(0, 3, Rect(rect.Rect{URx: 1, URy: 1}), matrix.Identity)
	if m.Width() != 0 || m.Height() != 0 {
		t.Errorf("got %dx%d mask, want 0x0", m.Width(), m.Height())
	}

	m = Fill(3, 3, &path.Data{}, matrix.Identity)
	for i, a := range m.alpha {
		if a != 0 {
			t.Errorf("empty path, pixel %d: got %v", i, a)
		}
	}
}

func TestCompositeUniform(t *testing.T) {
	fg := pixmap.NewFilled(3, 2, pixmap.RGB{R: 200, G: 100, B: 50})
	bg := pixmap.NewFilled(3, 2, pixmap.RGB{R: 10, G: 20, B: 30})
	*bg.At(2, 1) = pixmap.White

	for _, alpha := range []float32{0, 0.25, 0.5, 0.85, 1} {
		got := Composite(fg, bg, Uniform(3, 2, alpha))
		want := pixmap.AlphaComposite(fg, bg, alpha)
		if d := cmp.Diff(want.Pix(), got.Pix()); d != "" {
			t.Errorf("alpha %v (-want +got):\n%s", alpha, d)
		}
	}
}

func TestCompositeMask(t *testing.T) {
	fg := pixmap.NewFilled(2, 1, pixmap.White)
	bg := pixmap.New(2, 1)
	m := New(2, 1)
	m.Set(1, 0, 1)

	res := Composite(fg, bg, m)
	if got := *res.At(0, 0); got != pixmap.Black {
		t.Errorf("pixel 0: got %v, want black", got)
	}
	if got := *res.At(1, 0); got != pixmap.White {
		t.Errorf("pixel 1: got %v, want white", got)
	}

	m.Invert()
	res = Composite(fg, bg, m)
	if got := *res.At(0, 0); got != pixmap.White {
		t.Errorf("inverted pixel 0: got %v, want white", got)
	}
}

func TestCompositeSizeMismatch(t *testing.T) {
	fg := pixmap.New(2, 2)
	bg := pixmap.New(2, 2)
	defer func() {
		if recover() == nil {
			t.Error("expected a panic")
		}
	}()
	Composite(fg, bg, New(3, 2))
}

// TestTriangleCoverage checks the coverage values along a diagonal edge.
// The triangle (0,0)-(10,0)-(10,1) has the edge y = x/10, so that pixel x
// is covered to the fraction (2x+1)/20.
func TestTriangleCoverage(t *testing.T) {
	triangle := (&path.Data{}).
		MoveTo(vec.Vec2{X: 0, Y: 0}).
		LineTo(vec.Vec2{X: 10, Y: 0}).
		LineTo(vec.Vec2{X: 10, Y: 1}).
		Close()

	m := Fill(10, 1, triangle, matrix.Identity)
	for x := range 10 {
		want := float32(2*x+1) / 20
		if got := m.At(x, 0); !near(got, want) {
			t.Errorf("pixel %d: got coverage %.4f, want %.4f", x, got, want)
		}
	}
}
