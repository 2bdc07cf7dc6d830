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
	"fmt"
	"image"
	"image/color"
	"testing"

	"golang.org/x/image/vector"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

var benchSizes = []int{20, 200, 2000}

// BenchmarkFillO measures Fill for an "O" shape.
func BenchmarkFillO(b *testing.B) {
	for _, size := range benchSizes {
		b.Run(fmt.Sprintf("%dx%d", size, size), func(b *testing.B) {
			center := float64(size) / 2
			p := makeO(center, center, float64(size)*0.45, float64(size)*0.30)

			b.ReportAllocs()
			for b.Loop() {
				Fill(size, size, p, matrix.Identity)
			}
		})
	}
}

// BenchmarkVectorO draws the same shape with x/image/vector directly,
// as a baseline for the conversion overhead of Fill.
func BenchmarkVectorO(b *testing.B) {
	for _, size := range benchSizes {
		b.Run(fmt.Sprintf("%dx%d", size, size), func(b *testing.B) {
			r := vector.NewRasterizer(size, size)
			dst := image.NewAlpha(image.Rect(0, 0, size, size))
			src := image.NewUniform(color.Alpha{255})

			center := float32(size) / 2
			outerR := float32(size) * 0.45
			innerR := float32(size) * 0.30

			b.ReportAllocs()
			for b.Loop() {
				r.Reset(size, size)
				addCircleToVector(r, center, center, outerR, false)
				addCircleToVector(r, center, center, innerR, true)
				r.Draw(dst, dst.Bounds(), src, image.Point{})
			}
		})
	}
}

// makeO returns an "O" shape: the outer circle counter-clockwise, the
// inner circle clockwise, so that the hole is left open under the
// non-zero winding rule.
func makeO(cx, cy, outerR, innerR float64) *path.Data {
	p := Ellipse(cx, cy, outerR, outerR)
	addCircleCW(p, cx, cy, innerR)
	return p
}

func addCircleCW(p *path.Data, cx, cy, r float64) {
	kr := kappa * r
	pt := func(x, y float64) vec.Vec2 {
		return vec.Vec2{X: cx + x, Y: cy + y}
	}
	p.MoveTo(pt(r, 0)).
		CubeTo(pt(r, -kr), pt(kr, -r), pt(0, -r)).
		CubeTo(pt(-kr, -r), pt(-r, -kr), pt(-r, 0)).
		CubeTo(pt(-r, kr), pt(-kr, r), pt(0, r)).
		CubeTo(pt(kr, r), pt(r, kr), pt(r, 0)).
		Close()
}

func addCircleToVector(r *vector.Rasterizer, cx, cy, radius float32, clockwise bool) {
	const k = float32(kappa)
	kr := k * radius

	r.MoveTo(cx, cy-radius)
	if clockwise {
		r.CubeTo(cx-kr, cy-radius, cx-radius, cy-kr, cx-radius, cy)
		r.CubeTo(cx-radius, cy+kr, cx-kr, cy+radius, cx, cy+radius)
		r.CubeTo(cx+kr, cy+radius, cx+radius, cy+kr, cx+radius, cy)
		r.CubeTo(cx+radius, cy-kr, cx+kr, cy-radius, cx, cy-radius)
	} else {
		r.CubeTo(cx+kr, cy-radius, cx+radius, cy-kr, cx+radius, cy)
		r.CubeTo(cx+radius, cy+kr, cx+kr, cy+radius, cx, cy+radius)
		r.CubeTo(cx-kr, cy+radius, cx-radius, cy+kr, cx-radius, cy)
		r.CubeTo(cx-radius, cy-kr, cx-kr, cy-radius, cx, cy-radius)
	}
	r.ClosePath()
}

func TestFillO(t *testing.T) {
	m := Fill(40, 40, makeO(20, 20, 18, 12), matrix.Identity)
	if got := m.At(20, 20); got != 0 {
		t.Errorf("hole: got %v, want 0", got)
	}
	if got := m.At(20, 4); !near(got, 1) {
		t.Errorf("ring: got %v, want 1", got)
	}
}
