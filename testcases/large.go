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

// largeCases are used for benchmarks and for checking that the
// operations behave identically on big images.
var largeCases = []TestCase{
	{
		Name:   "add_1024",
		Width:  1024,
		Height: 1024,
		Inputs: []Pattern{
			HGradient{From: rgb(0, 0, 0), To: rgb(255, 255, 255)},
			VGradient{From: rgb(255, 0, 0), To: rgb(0, 0, 255)},
		},
		Op: recipe.Add{},
	},
	{
		Name:   "gamma_1024",
		Width:  1024,
		Height: 768,
		Inputs: []Pattern{Checkers{Size: 32, A: rgb(16, 64, 240), B: rgb(250, 180, 8)}},
		Op:     recipe.Gamma{Gamma: 0.5},
	},
	{
		Name:   "ellipse_2048",
		Width:  2048,
		Height: 1024,
		Inputs: []Pattern{
			Disc{CX: 0.25, CY: 0.25, R: 0.2, In: rgb(255, 255, 255), Out: rgb(0, 0, 64)},
			Solid{rgb(128, 128, 128)},
		},
		Op: recipe.Masked{Shape: recipe.Shape{
			Kind: recipe.ShapeEllipse, X: 24, Y: 24, Width: 2000, Height: 976,
		}},
	},
}
