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

var blendCases = []TestCase{
	{
		Name:   "gamma_half",
		Width:  64,
		Height: 8,
		Inputs: []Pattern{HGradient{From: rgb(0, 0, 0), To: rgb(255, 255, 255)}},
		Op:     recipe.Gamma{Gamma: 0.5},
	},
	{
		Name:   "gamma_2_2",
		Width:  64,
		Height: 8,
		Inputs: []Pattern{HGradient{From: rgb(0, 0, 0), To: rgb(255, 255, 255)}},
		Op:     recipe.Gamma{Gamma: 2.2},
	},
	{
		Name:   "alpha_85",
		Width:  32,
		Height: 32,
		Inputs: []Pattern{
			Solid{rgb(255, 0, 0)},
			Checkers{Size: 8, A: rgb(0, 0, 255), B: rgb(255, 255, 255)},
		},
		Op: recipe.Alpha{Alpha: 0.85},
	},
	{
		Name:   "alpha_50",
		Width:  32,
		Height: 32,
		Inputs: []Pattern{
			HGradient{From: rgb(0, 0, 0), To: rgb(255, 255, 255)},
			VGradient{From: rgb(255, 255, 0), To: rgb(0, 0, 255)},
		},
		Op: recipe.Alpha{Alpha: 0.5},
	},
	{
		Name:   "alpha_0",
		Width:  8,
		Height: 8,
		Inputs: []Pattern{Solid{rgb(10, 20, 30)}, Solid{rgb(40, 50, 60)}},
		Op:     recipe.Alpha{Alpha: 0},
	},
	{
		Name:   "alpha_1",
		Width:  8,
		Height: 8,
		Inputs: []Pattern{Solid{rgb(10, 20, 30)}, Solid{rgb(40, 50, 60)}},
		Op:     recipe.Alpha{Alpha: 1},
	},
	{
		Name:   "alpha_extrapolate",
		Width:  16,
		Height: 16,
		Inputs: []Pattern{Solid{rgb(200, 100, 0)}, Solid{rgb(100, 100, 100)}},
		Op:     recipe.Alpha{Alpha: 1.5},
	},
}
