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

package recipe

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParse(t *testing.T) {
	data := []byte(`
inputs:
  - {name: a, file: a.ppm}
  - {name: b, file: b.png}
steps:
  - {name: c, op: modulate, args: [a, b]}
  - name: d
    op: masked
    args: [c, a]
    shape: {kind: ellipse, x: 1, y: 2, width: 3, height: 4, invert: true}
  - {name: a, op: subtract-in-place, args: [a, d]}
outputs:
  - {name: d, file: out/d.tiff}
`)
	r, err := Parse(data)
	if err != nil {
		t.Fatal(err)
	}

	want := &Recipe{
		Inputs: []Input{{Name: "a", File: "a.ppm"}, {Name: "b", File: "b.png"}},
		Steps: []Step{
			{Name: "c", Op: Modulate{}, Args: []string{"a", "b"}},
			{Name: "d", Op: Masked{Shape: Shape{
				Kind: ShapeEllipse, X: 1, Y: 2, Width: 3, Height: 4, Invert: true,
			}}, Args: []string{"c", "a"}},
			{Name: "a", Op: SubtractInPlace{}, Args: []string{"a", "d"}},
		},
		Outputs: []Output{{Name: "d", File: "out/d.tiff"}},
	}
	if d := cmp.Diff(want, r); d != "" {
		t.Errorf("recipe (-want +got):\n%s", d)
	}
}

func TestParseErrors(t *testing.T) {
	cases := []struct {
		name string
		data string
		want error
	}{
		{"empty", "", ErrInvalidRecipe},
		{"unknown_op", "inputs: [{name: a, file: a.ppm}]\nsteps: [{name: b, op: divide, args: [a, a]}]", ErrUnknownOperation},
		{"undefined_arg", "inputs: [{name: a, file: a.ppm}]\nsteps: [{name: b, op: add, args: [a, c]}]", ErrUndefinedName},
		{"use_before_def", "inputs: [{name: a, file: a.ppm}]\nsteps: [{name: b, op: add, args: [a, c]}, {name: c, op: add, args: [a, a]}]", ErrUndefinedName},
		{"undefined_output", "inputs: [{name: a, file: a.ppm}]\noutputs: [{name: b, file: b.ppm}]", ErrUndefinedName},
		{"arity", "inputs: [{name: a, file: a.ppm}]\nsteps: [{name: b, op: gamma, args: [a, a], gamma: 2}]", ErrInvalidRecipe},
		{"missing_factor", "inputs: [{name: a, file: a.ppm}]\nsteps: [{name: b, op: multiply, args: [a]}]", ErrInvalidRecipe},
		{"missing_alpha", "inputs: [{name: a, file: a.ppm}]\nsteps: [{name: b, op: alpha, args: [a, a]}]", ErrInvalidRecipe},
		{"stray_parameter", "inputs: [{name: a, file: a.ppm}]\nsteps: [{name: b, op: add, args: [a, a], factor: 2}]", ErrInvalidRecipe},
		{"bad_shape", "inputs: [{name: a, file: a.ppm}]\nsteps: [{name: b, op: masked, args: [a, a], shape: {kind: star}}]", ErrInvalidRecipe},
		{"duplicate_input", "inputs: [{name: a, file: a.ppm}, {name: a, file: b.ppm}]", ErrInvalidRecipe},
		{"missing_file", "inputs: [{name: a}]", ErrInvalidRecipe},
		{"missing_step_name", "inputs: [{name: a, file: a.ppm}]\nsteps: [{op: add, args: [a, a]}]", ErrInvalidRecipe},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			r, err := Parse([]byte(c.data))
			if !errors.Is(err, c.want) {
				t.Errorf("got error %v, want %v", err, c.want)
			}
			if r != nil {
				t.Error("got a recipe despite the error")
			}
		})
	}
}

func TestParseSyntax(t *testing.T) {
	for _, data := range []string{
		"inputs: [",
		"inputs: [{name: a, file: a.ppm, colour: red}]",
		"steps: 7",
	} {
		if _, err := Parse([]byte(data)); err == nil {
			t.Errorf("%q: missing error", data)
		}
	}
}

func TestDefault(t *testing.T) {
	r := Default()

	if len(r.Inputs) != 2 {
		t.Fatalf("got %d inputs, want 2", len(r.Inputs))
	}
	if r.Inputs[0].File != "./images/Mandrill.ppm" ||
		r.Inputs[1].File != "./images/tandon_stacked_color.ppm" {
		t.Errorf("unexpected inputs %v", r.Inputs)
	}

	var ops []string
	for _, s := range r.Steps {
		ops = append(ops, Name(s.Op))
	}
	wantOps := []string{"add", "subtract", "multiply", "gamma", "alpha", "alpha", "average"}
	if d := cmp.Diff(wantOps, ops); d != "" {
		t.Errorf("operations (-want +got):\n%s", d)
	}
	if got := r.Steps[2].Op.(Multiply).Factor; got != 1.3 {
		t.Errorf("factor: got %v, want 1.3", got)
	}

	var files []string
	for _, out := range r.Outputs {
		files = append(files, out.File)
	}
	wantFiles := []string{
		"Add.ppm", "AddAssign.ppm", "subtract.ppm", "times130.ppm",
		"gamma.ppm", "alpha85.ppm", "alpha50.ppm", "images/out.ppm",
	}
	if d := cmp.Diff(wantFiles, files); d != "" {
		t.Errorf("output files (-want +got):\n%s", d)
	}
}

func TestLoad(t *testing.T) {
	name := filepath.Join(t.TempDir(), "r.yaml")
	err := os.WriteFile(name, []byte("inputs: [{name: x, file: x.ppm}]\n"), 0o644)
	if err != nil {
		t.Fatal(err)
	}
	r, err := Load(name)
	if err != nil {
		t.Fatal(err)
	}
	if len(r.Inputs) != 1 || r.Inputs[0].Name != "x" {
		t.Errorf("unexpected recipe %+v", r)
	}

	_, err = Load(name + ".missing")
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("got error %v, want fs.ErrNotExist", err)
	}
}

func TestMarshal(t *testing.T) {
	recipes := []*Recipe{
		Default(),
		{
			Inputs: []Input{{Name: "a", File: "a.ppm"}, {Name: "b", File: "b.ppm"}},
			Steps: []Step{
				{Name: "m", Op: Masked{Shape: Shape{
					Kind: ShapeRect, X: 0.5, Y: 1, Width: 7.25, Height: 3,
				}}, Args: []string{"a", "b"}},
				{Name: "s", Op: Multiply{Factor: 1.0 / 3}, Args: []string{"m"}},
				{Name: "g", Op: Gamma{Gamma: 2.2}, Args: []string{"s"}},
			},
			Outputs: []Output{{Name: "g", File: "g.png"}},
		},
	}
	for i, r := range recipes {
		data, err := r.Marshal()
		if err != nil {
			t.Fatal(err)
		}
		back, err := Parse(data)
		if err != nil {
			t.Fatalf("recipe %d: %v\n%s", i, err, data)
		}
		if d := cmp.Diff(r, back); d != "" {
			t.Errorf("recipe %d (-want +got):\n%s", i, d)
		}
	}
}
