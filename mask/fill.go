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
	"image"
	"image/draw"

	"golang.org/x/image/vector"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// kappa is the control point distance for approximating a quarter circle
// of radius 1 by a cubic Bézier curve.
const kappa = 0.5522847498

// Fill rasterizes the path p into a new mask of the given size, using the
// non-zero winding rule and anti-aliasing.  Path coordinates are mapped to
// pixel coordinates by ctm, with the origin in the top-left corner of the
// mask and y increasing downwards.  The zero matrix is treated as the
// identity.  Open subpaths are closed implicitly.
func Fill(width, height int, p *path.Data, ctm matrix.Matrix) *Mask {
	if width <= 0 || height <= 0 {
		return &Mask{}
	}
	if ctm == (matrix.Matrix{}) {
		ctm = matrix.Identity
	}

	z := vector.NewRasterizer(width, height)
	z.DrawOp = draw.Src

	dev := func(v vec.Vec2) (float32, float32) {
		return float32(ctm[0]*v.X + ctm[2]*v.Y + ctm[4]),
			float32(ctm[1]*v.X + ctm[3]*v.Y + ctm[5])
	}

	// start and current point of the subpath, in user space
	var start, current vec.Vec2
	open := false
	closeSubpath := func() {
		if open && current != start {
			z.ClosePath()
		}
		current = start
		open = false
	}

	// Walk the path using direct field access.
	k := 0
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			closeSubpath()
			start = p.Coords[k]
			current = start
			z.MoveTo(dev(start))
			k++

		case path.CmdLineTo:
			x, y := dev(p.Coords[k])
			z.LineTo(x, y)
			current = p.Coords[k]
			open = true
			k++

		case path.CmdQuadTo:
			bx, by := dev(p.Coords[k])
			cx, cy := dev(p.Coords[k+1])
			z.QuadTo(bx, by, cx, cy)
			current = p.Coords[k+1]
			open = true
			k += 2

		case path.CmdCubeTo:
			bx, by := dev(p.Coords[k])
			cx, cy := dev(p.Coords[k+1])
			dx, dy := dev(p.Coords[k+2])
			z.CubeTo(bx, by, cx, cy, dx, dy)
			current = p.Coords[k+2]
			open = true
			k += 3

		case path.CmdClose:
			closeSubpath()
		}
	}
	closeSubpath()

	dst := image.NewAlpha(image.Rect(0, 0, width, height))
	z.Draw(dst, dst.Bounds(), image.Opaque, image.Point{})

	m := New(width, height)
	for y := range height {
		row := dst.Pix[y*dst.Stride : y*dst.Stride+width]
		for x, a := range row {
			m.alpha[y*width+x] = float32(a) / 255
		}
	}
	return m
}

// Rect returns a closed path tracing the boundary of r.
func Rect(r rect.Rect) *path.Data {
	return (&path.Data{}).
		MoveTo(vec.Vec2{X: r.LLx, Y: r.LLy}).
		LineTo(vec.Vec2{X: r.URx, Y: r.LLy}).
		LineTo(vec.Vec2{X: r.URx, Y: r.URy}).
		LineTo(vec.Vec2{X: r.LLx, Y: r.URy}).
		Close()
}

// Ellipse returns a closed path approximating the axis-aligned ellipse
// with center (cx, cy) and radii rx and ry, using four cubic Bézier curves.
func Ellipse(cx, cy, rx, ry float64) *path.Data {
	kx, ky := kappa*rx, kappa*ry
	pt := func(x, y float64) vec.Vec2 {
		return vec.Vec2{X: cx + x, Y: cy + y}
	}
	return (&path.Data{}).
		MoveTo(pt(rx, 0)).
		CubeTo(pt(rx, ky), pt(kx, ry), pt(0, ry)).
		CubeTo(pt(-kx, ry), pt(-rx, ky), pt(-rx, 0)).
		CubeTo(pt(-rx, -ky), pt(-kx, -ry), pt(0, -ry)).
		CubeTo(pt(kx, -ry), pt(rx, -ky), pt(rx, 0)).
		Close()
}
