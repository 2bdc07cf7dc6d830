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

package testcases

import "seehuhn.de/go/pixmap/recipe"

var maskedCases = []TestCase{
	{
		Name:   "rect_aligned",
		Width:  32,
		Height: 32,
		Inputs: []Pattern{Solid{rgb(255, 0, 0)}, Solid{rgb(0, 0, 255)}},
		Op: recipe.Masked{Shape: recipe.Shape{
			Kind: recipe.ShapeRect, X: 8, Y: 8, Width: 16, Height: 16,
		}},
	},
	{
		Name:   "rect_subpixel",
		Width:  32,
		Height: 32,
		Inputs: []Pattern{Solid{rgb(255, 255, 255)}, Solid{rgb(0, 0, 0)}},
		Op: recipe.Masked{Shape: recipe.Shape{
			Kind: recipe.ShapeRect, X: 8.25, Y: 8.5, Width: 15.5, Height: 15.25,
		}},
	},
	{
		Name:   "rect_inverted",
		Width:  32,
		Height: 32,
		Inputs: []Pattern{
			Checkers{Size: 4, A: rgb(0, 0, 0), B: rgb(255, 255, 255)},
			Solid{rgb(0, 128, 0)},
		},
		Op: recipe.Masked{Shape: recipe.Shape{
			Kind: recipe.ShapeRect, X: 4, Y: 4, Width: 24, Height: 24, Invert: true,
		}},
	},
	{
		Name:   "ellipse_circle",
		Width:  64,
		Height: 64,
		Inputs: []Pattern{
			HGradient{From: rgb(255, 0, 0), To: rgb(255, 255, 0)},
			Solid{rgb(32, 32, 32)},
		},
		Op: recipe.Masked{Shape: recipe.Shape{
			Kind: recipe.ShapeEllipse, X: 8, Y: 8, Width: 48, Height: 48,
		}},
	},
	{
		Name:   "ellipse_wide",
		Width:  64,
		Height: 32,
		Inputs: []Pattern{
			Solid{rgb(0, 200, 255)},
			VGradient{From: rgb(255, 255, 255), To: rgb(0, 0, 0)},
		},
		Op: recipe.Masked{Shape: recipe.Shape{
			Kind: recipe.ShapeEllipse, X: 2, Y: 6, Width: 60, Height: 20,
		}},
	},
	{
		Name:   "disc_input",
		Width:  48,
		Height: 48,
		Inputs: []Pattern{
			Disc{CX: 0.5, CY: 0.5, R: 0.4, In: rgb(255, 255, 255), Out: rgb(0, 0, 0)},
			Solid{rgb(50, 100, 150)},
		},
		Op: recipe.Add{},
	},
	{
		Name:   "outside",
		Width:  16,
		Height: 16,
		Inputs: []Pattern{Solid{rgb(255, 0, 0)}, Solid{rgb(0, 255, 0)}},
		Op: recipe.Masked{Shape: recipe.Shape{
			Kind: recipe.ShapeRect, X: 20, Y: 20, Width: 10, Height: 10,
		}},
	},
}
