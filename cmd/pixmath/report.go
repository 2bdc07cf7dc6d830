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

package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"seehuhn.de/go/pixmap/recipe"
)

var (
	okColor   = color.New(color.FgGreen, color.Bold)
	failColor = color.New(color.FgRed, color.Bold)
	dimColor  = color.New(color.FgHiBlack)
)

func printReport(w io.Writer, rep *recipe.Report) {
	if rep.OK() {
		okColor.Fprint(w, "done ")
	} else {
		failColor.Fprintf(w, "%d failures ", rep.Failures)
	}
	dimColor.Fprintf(w, "(%d inputs, %d steps, %d outputs)\n",
		rep.Inputs, rep.Steps, rep.Outputs)
}
