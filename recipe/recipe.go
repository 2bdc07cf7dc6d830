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

// Package recipe describes and executes sequences of image operations.
//
// A recipe names a set of input files, a list of steps which combine
// named images into new named images, and a list of output files.
// Recipes are stored as YAML documents:
//
//	inputs:
//	  - {name: I, file: a.ppm}
//	  - {name: J, file: b.ppm}
//	steps:
//	  - {name: K, op: add, args: [I, J]}
//	  - {name: G, op: gamma, args: [K], gamma: 0.5}
//	outputs:
//	  - {name: G, file: gamma.ppm}
package recipe

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

var (
	// ErrUnknownOperation indicates a step with an unrecognized "op" field.
	ErrUnknownOperation = errors.New("unknown operation")

	// ErrUndefinedName indicates a reference to an image name which has
	// not been bound by an earlier input or step.
	ErrUndefinedName = errors.New("undefined image name")

	// ErrInvalidRecipe indicates any other structural problem.
	ErrInvalidRecipe = errors.New("invalid recipe")
)

// Recipe is a validated sequence of image operations.
type Recipe struct {
	Inputs  []Input
	Steps   []Step
	Outputs []Output
}

// Input binds a name to the contents of an image file.
type Input struct {
	Name string
	File string
}

// Step binds a name to the result of an operation.
// Args are image names, bound by earlier inputs or steps.
type Step struct {
	Name string
	Op   Operation
	Args []string
}

// Output writes a named image to a file.
type Output struct {
	Name string
	File string
}

//go:embed default.yaml
var defaultRecipe []byte

// Default returns the built-in demonstration recipe.  It reads the two
// images ./images/Mandrill.ppm and ./images/tandon_stacked_color.ppm and
// writes one output file for every operator.
func Default() *Recipe {
	r, err := Parse(defaultRecipe)
	if err != nil {
		panic(err)
	}
	return r
}

// Load reads a recipe from the named YAML file.
func Load(name string) (*Recipe, error) {
	data, err := os.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("recipe: %w", err)
	}
	return Parse(data)
}

type rawRecipe struct {
	Inputs  []rawFile `yaml:"inputs,omitempty"`
	Steps   []rawStep `yaml:"steps,omitempty"`
	Outputs []rawFile `yaml:"outputs,omitempty"`
}

type rawFile struct {
	Name string `yaml:"name"`
	File string `yaml:"file"`
}

type rawStep struct {
	Name   string   `yaml:"name"`
	Op     string   `yaml:"op"`
	Args   []string `yaml:"args,flow"`
	Factor *float32 `yaml:"factor,omitempty"`
	Gamma  *float64 `yaml:"gamma,omitempty"`
	Alpha  *float32 `yaml:"alpha,omitempty"`
	Shape  *Shape   `yaml:"shape,omitempty"`
}

// Parse decodes and validates a YAML recipe.
func Parse(data []byte) (*Recipe, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var raw rawRecipe
	err := dec.Decode(&raw)
	if err == io.EOF {
		return nil, fmt.Errorf("recipe: %w: empty document", ErrInvalidRecipe)
	} else if err != nil {
		return nil, fmt.Errorf("recipe: %w", err)
	}

	r := &Recipe{}
	defined := make(map[string]bool)

	for i, in := range raw.Inputs {
		if in.Name == "" || in.File == "" {
			return nil, fmt.Errorf("recipe: input %d: %w: name and file are required",
				i+1, ErrInvalidRecipe)
		}
		if defined[in.Name] {
			return nil, fmt.Errorf("recipe: input %d: %w: duplicate name %q",
				i+1, ErrInvalidRecipe, in.Name)
		}
		defined[in.Name] = true
		r.Inputs = append(r.Inputs, Input(in))
	}

	for i, s := range raw.Steps {
		if s.Name == "" {
			return nil, fmt.Errorf("recipe: step %d: %w: missing name",
				i+1, ErrInvalidRecipe)
		}
		op, err := s.operation()
		if err != nil {
			return nil, fmt.Errorf("recipe: step %d (%s): %w", i+1, s.Name, err)
		}
		if n := Arity(op); len(s.Args) != n {
			return nil, fmt.Errorf("recipe: step %d (%s): %w: %s takes %d arguments, got %d",
				i+1, s.Name, ErrInvalidRecipe, s.Op, n, len(s.Args))
		}
		for _, arg := range s.Args {
			if !defined[arg] {
				return nil, fmt.Errorf("recipe: step %d (%s): %w %q",
					i+1, s.Name, ErrUndefinedName, arg)
			}
		}
		defined[s.Name] = true
		r.Steps = append(r.Steps, Step{Name: s.Name, Op: op, Args: s.Args})
	}

	for i, out := range raw.Outputs {
		if out.Name == "" || out.File == "" {
			return nil, fmt.Errorf("recipe: output %d: %w: name and file are required",
				i+1, ErrInvalidRecipe)
		}
		if !defined[out.Name] {
			return nil, fmt.Errorf("recipe: output %d: %w %q",
				i+1, ErrUndefinedName, out.Name)
		}
		r.Outputs = append(r.Outputs, Output(out))
	}

	return r, nil
}

// Marshal encodes the recipe as a YAML document which can be read back
// using [Parse].
func (r *Recipe) Marshal() ([]byte, error) {
	var raw rawRecipe
	for _, in := range r.Inputs {
		raw.Inputs = append(raw.Inputs, rawFile(in))
	}
	for _, s := range r.Steps {
		rs := rawStep{Name: s.Name, Op: Name(s.Op), Args: s.Args}
		switch op := s.Op.(type) {
		case Multiply:
			rs.Factor = &op.Factor
		case Gamma:
			rs.Gamma = &op.Gamma
		case Alpha:
			rs.Alpha = &op.Alpha
		case Masked:
			rs.Shape = &op.Shape
		}
		raw.Steps = append(raw.Steps, rs)
	}
	for _, out := range r.Outputs {
		raw.Outputs = append(raw.Outputs, rawFile(out))
	}

	buf := &bytes.Buffer{}
	enc := yaml.NewEncoder(buf)
	enc.SetIndent(2)
	if err := enc.Encode(&raw); err != nil {
		return nil, fmt.Errorf("recipe: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("recipe: %w", err)
	}
	return buf.Bytes(), nil
}

func (s *rawStep) operation() (Operation, error) {
	var op Operation
	switch s.Op {
	case "add":
		op = Add{}
	case "subtract":
		op = Subtract{}
	case "average":
		op = Average{}
	case "subtract-in-place":
		op = SubtractInPlace{}
	case "modulate":
		op = Modulate{}
	case "multiply":
		if s.Factor == nil {
			return nil, missingParameter(s.Op, "factor")
		}
		op = Multiply{Factor: *s.Factor}
	case "gamma":
		if s.Gamma == nil {
			return nil, missingParameter(s.Op, "gamma")
		}
		op = Gamma{Gamma: *s.Gamma}
	case "alpha":
		if s.Alpha == nil {
			return nil, missingParameter(s.Op, "alpha")
		}
		op = Alpha{Alpha: *s.Alpha}
	case "masked":
		if s.Shape == nil {
			return nil, missingParameter(s.Op, "shape")
		}
		switch s.Shape.Kind {
		case ShapeRect, ShapeEllipse:
		default:
			return nil, fmt.Errorf("%w: unknown shape %q", ErrInvalidRecipe, s.Shape.Kind)
		}
		op = Masked{Shape: *s.Shape}
	default:
		return nil, fmt.Errorf("%w %q", ErrUnknownOperation, s.Op)
	}

	if s.Factor != nil && s.Op != "multiply" ||
		s.Gamma != nil && s.Op != "gamma" ||
		s.Alpha != nil && s.Op != "alpha" ||
		s.Shape != nil && s.Op != "masked" {
		return nil, fmt.Errorf("%w: unexpected parameter for %s", ErrInvalidRecipe, s.Op)
	}
	return op, nil
}

func missingParameter(op, param string) error {
	return fmt.Errorf("%w: %s requires %q", ErrInvalidRecipe, op, param)
}
