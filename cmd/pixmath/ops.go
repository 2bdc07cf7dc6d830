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

	"github.com/spf13/cobra"

	"seehuhn.de/go/pixmap/recipe"
)

// opCommand describes a command which applies a single operator.
type opCommand struct {
	name  string
	short string
	arity int
	op    func(cmd *cobra.Command) (recipe.Operation, error)
	flags func(cmd *cobra.Command)
}

var opCommands = []opCommand{
	{
		name:  "add",
		arity: 2,
		short: "Add two images",
		op:    constOp(recipe.Add{}),
	},
	{
		name:  "subtract",
		arity: 2,
		short: "Subtract the second image from the first, clamping at zero",
		op:    constOp(recipe.Subtract{}),
	},
	{
		name:  "average",
		arity: 2,
		short: "Average two images",
		op:    constOp(recipe.Average{}),
	},
	{
		name:  "modulate",
		arity: 2,
		short: "Multiply two images channel by channel",
		op:    constOp(recipe.Modulate{}),
	},
	{
		name:  "multiply",
		arity: 1,
		short: "Multiply all channel values by a constant",
		flags: func(cmd *cobra.Command) {
			cmd.Flags().Float32("factor", 1.3, "Scale factor")
		},
		op: func(cmd *cobra.Command) (recipe.Operation, error) {
			f, _ := cmd.Flags().GetFloat32("factor")
			return recipe.Multiply{Factor: f}, nil
		},
	},
	{
		name:  "gamma",
		arity: 1,
		short: "Apply gamma correction",
		flags: func(cmd *cobra.Command) {
			cmd.Flags().Float64("gamma", 0.5, "Gamma exponent")
		},
		op: func(cmd *cobra.Command) (recipe.Operation, error) {
			g, _ := cmd.Flags().GetFloat64("gamma")
			return recipe.Gamma{Gamma: g}, nil
		},
	},
	{
		name:  "alpha",
		arity: 2,
		short: "Blend the first image over the second",
		flags: func(cmd *cobra.Command) {
			cmd.Flags().Float32("alpha", 0.5, "Opacity of the first image")
		},
		op: func(cmd *cobra.Command) (recipe.Operation, error) {
			a, _ := cmd.Flags().GetFloat32("alpha")
			return recipe.Alpha{Alpha: a}, nil
		},
	},
	{
		name:  "masked",
		arity: 2,
		short: "Blend the first image over the second inside a shape",
		flags: func(cmd *cobra.Command) {
			cmd.Flags().String("shape", "ellipse", "Shape kind (rect or ellipse)")
			cmd.Flags().Float64("x", 0, "Left edge of the bounding box")
			cmd.Flags().Float64("y", 0, "Top edge of the bounding box")
			cmd.Flags().Float64("width", 0, "Width of the bounding box")
			cmd.Flags().Float64("height", 0, "Height of the bounding box")
			cmd.Flags().Bool("invert", false, "Blend outside the shape instead")
			cmd.MarkFlagRequired("width")
			cmd.MarkFlagRequired("height")
		},
		op: func(cmd *cobra.Command) (recipe.Operation, error) {
			kind, _ := cmd.Flags().GetString("shape")
			s := recipe.Shape{Kind: recipe.ShapeKind(kind)}
			s.X, _ = cmd.Flags().GetFloat64("x")
			s.Y, _ = cmd.Flags().GetFloat64("y")
			s.Width, _ = cmd.Flags().GetFloat64("width")
			s.Height, _ = cmd.Flags().GetFloat64("height")
			s.Invert, _ = cmd.Flags().GetBool("invert")
			switch s.Kind {
			case recipe.ShapeRect, recipe.ShapeEllipse:
			default:
				return nil, fmt.Errorf("unknown shape %q", kind)
			}
			return recipe.Masked{Shape: s}, nil
		},
	},
}

func constOp(op recipe.Operation) func(*cobra.Command) (recipe.Operation, error) {
	return func(*cobra.Command) (recipe.Operation, error) {
		return op, nil
	}
}

func init() {
	for _, oc := range opCommands {
		rootCmd.AddCommand(oc.command())
	}
}

func (oc opCommand) command() *cobra.Command {
	usage := oc.name + " A B"
	if oc.arity == 1 {
		usage = oc.name + " A"
	}

	cmd := &cobra.Command{
		Use:   usage,
		Short: oc.short,
		Args:  cobra.ExactArgs(oc.arity),
		RunE: func(cmd *cobra.Command, args []string) error {
			op, err := oc.op(cmd)
			if err != nil {
				return err
			}
			out, _ := cmd.Flags().GetString("output")
			return applySingle(cmd, op, args, out)
		},
	}
	cmd.Flags().StringP("output", "o", "", "Output file")
	cmd.MarkFlagRequired("output")
	if oc.flags != nil {
		oc.flags(cmd)
	}
	return cmd
}

// applySingle runs a recipe consisting of a single step.
func applySingle(cmd *cobra.Command, op recipe.Operation, inputs []string, out string) error {
	r := &recipe.Recipe{}
	names := make([]string, len(inputs))
	for i, file := range inputs {
		names[i] = string(rune('A' + i))
		r.Inputs = append(r.Inputs, recipe.Input{Name: names[i], File: file})
	}
	r.Steps = []recipe.Step{{Name: "result", Op: op, Args: names}}
	r.Outputs = []recipe.Output{{Name: "result", File: out}}

	_, err := runRecipe(cmd, r, "", true)
	return err
}
