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

// precisionCases exercise the values where the mapping from floating
// point channels to bytes is delicate.
var precisionCases = []TestCase{
	// sums which cross 255 by a small amount
	{
		Name:   "wrap_255",
		Width:  4,
		Height: 4,
		Inputs: []Pattern{Solid{rgb(128, 200, 255)}, Solid{rgb(127, 55, 0)}},
		Op:     recipe.Add{},
	},
	{
		Name:   "wrap_256",
		Width:  4,
		Height: 4,
		Inputs: []Pattern{Solid{rgb(128, 201, 255)}, Solid{rgb(128, 55, 1)}},
		Op:     recipe.Add{},
	},
	{
		Name:   "wrap_510",
		Width:  4,
		Height: 4,
		Inputs: []Pattern{Solid{rgb(255, 255, 255)}, Solid{rgb(255, 255, 255)}},
		Op:     recipe.Add{},
	},
	{
		Name:   "wrap_ramp",
		Width:  256,
		Height: 2,
		Inputs: []Pattern{
			HGradient{From: rgb(0, 0, 0), To: rgb(255, 255, 255)},
			HGradient{From: rgb(0, 0, 0), To: rgb(255, 128, 64)},
		},
		Op: recipe.Add{},
	},

	// fractional results which are truncated on output
	{
		Name:   "fraction_average",
		Width:  4,
		Height: 4,
		Inputs: []Pattern{Solid{rgb(1, 2, 3)}, Solid{rgb(0, 1, 2)}},
		Op:     recipe.Average{},
	},
	{
		Name:   "fraction_scale",
		Width:  4,
		Height: 4,
		Inputs: []Pattern{Solid{rgb(3, 5, 7)}},
		Op:     recipe.Multiply{Factor: 1.0 / 3},
	},

	// negative results
	{
		Name:   "negative_scale",
		Width:  4,
		Height: 4,
		Inputs: []Pattern{Solid{rgb(1, 100, 255)}},
		Op:     recipe.Multiply{Factor: -1},
	},
	{
		Name:   "negative_alpha",
		Width:  4,
		Height: 4,
		Inputs: []Pattern{Solid{rgb(0, 0, 0)}, Solid{rgb(100, 200, 255)}},
		Op:     recipe.Alpha{Alpha: 2},
	},
}
