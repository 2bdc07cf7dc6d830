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

// Command export writes the test case catalogue to disk.
// Run from the pixmap module root directory.
//
// For every test case, a directory testdata/fixtures/<category>_<name>/ is
// created.  It contains the input images as binary PPM files, a
// recipe.yaml describing the operation, and the output of running this
// recipe as result.ppm.  Use "pixmath run" to execute the recipe again.
package main

import (
	"errors"
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"seehuhn.de/go/pixmap/pnm"
	"seehuhn.de/go/pixmap/recipe"
	"seehuhn.de/go/pixmap/testcases"
)

const fixtureDir = "testdata/fixtures"

func main() {
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			if err := export(filepath.Join(fixtureDir, name), tc); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
		}
	}
}

func export(dir string, tc testcases.TestCase) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	r := &recipe.Recipe{}
	images := tc.Images()
	args := make([]string, len(images))
	for i, img := range images {
		args[i] = fmt.Sprintf("in%d", i)
		file := args[i] + ".ppm"
		if err := pnm.WriteFile(filepath.Join(dir, file), img, nil); err != nil {
			return err
		}
		r.Inputs = append(r.Inputs, recipe.Input{Name: args[i], File: file})
	}
	r.Steps = []recipe.Step{{Name: "result", Op: tc.Op, Args: args}}
	r.Outputs = []recipe.Output{{Name: "result", File: "result.ppm"}}

	data, err := r.Marshal()
	if err != nil {
		return err
	}
	if err := os.WriteFile(filepath.Join(dir, "recipe.yaml"), data, 0644); err != nil {
		return err
	}

	// The result is computed from the files just written, since channel
	// values of 255 and above wrap around when stored.
	run := &recipe.Runner{Dir: dir}
	rep, _ := run.Run(r)
	if !rep.OK() {
		return errors.Join(rep.Errors...)
	}
	return nil
}
