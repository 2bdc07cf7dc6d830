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

var arithCases = []TestCase{
	{
		Name:   "add_solid",
		Width:  8,
		Height: 8,
		Inputs: []Pattern{Solid{rgb(100, 200, 50)}, Solid{rgb(60, 10, 250)}},
		Op:     recipe.Add{},
	},
	{
		Name:   "add_gradients",
		Width:  64,
		Height: 32,
		Inputs: []Pattern{
			HGradient{From: rgb(0, 0, 0), To: rgb(255, 128, 64)},
			VGradient{From: rgb(0, 255, 0), To: rgb(255, 0, 255)},
		},
		Op: recipe.Add{},
	},
	{
		Name:   "subtract_clamp",
		Width:  32,
		Height: 32,
		Inputs: []Pattern{
			HGradient{From: rgb(0, 0, 0), To: rgb(255, 255, 255)},
			Solid{rgb(128, 64, 200)},
		},
		Op: recipe.Subtract{},
	},
	{
		Name:   "subtract_self",
		Width:  16,
		Height: 16,
		Inputs: []Pattern{
			Checkers{Size: 4, A: rgb(10, 20, 30), B: rgb(240, 230, 220)},
			Checkers{Size: 4, A: rgb(10, 20, 30), B: rgb(240, 230, 220)},
		},
		Op: recipe.Subtract{},
	},
	{
		Name:   "subtract_in_place",
		Width:  32,
		Height: 16,
		Inputs: []Pattern{
			Solid{rgb(200, 100, 50)},
			Checkers{Size: 8, A: rgb(0, 0, 0), B: rgb(100, 200, 25)},
		},
		Op: recipe.SubtractInPlace{},
	},
	{
		Name:   "average",
		Width:  32,
		Height: 32,
		Inputs: []Pattern{
			HGradient{From: rgb(0, 0, 255), To: rgb(255, 0, 0)},
			Checkers{Size: 8, A: rgb(255, 255, 255), B: rgb(0, 0, 0)},
		},
		Op: recipe.Average{},
	},
	{
		Name:   "multiply_130",
		Width:  32,
		Height: 16,
		Inputs: []Pattern{HGradient{From: rgb(0, 50, 100), To: rgb(255, 205, 155)}},
		Op:     recipe.Multiply{Factor: 1.3},
	},
	{
		Name:   "multiply_half",
		Width:  16,
		Height: 16,
		Inputs: []Pattern{Checkers{Size: 2, A: rgb(255, 128, 1), B: rgb(3, 7, 11)}},
		Op:     recipe.Multiply{Factor: 0.5},
	},
	{
		Name:   "modulate",
		Width:  16,
		Height: 16,
		Inputs: []Pattern{
			Solid{rgb(2, 1, 0)},
			VGradient{From: rgb(0, 0, 0), To: rgb(255, 255, 255)},
		},
		Op: recipe.Modulate{},
	},
}
