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
	"path/filepath"

	"github.com/spf13/cobra"

	"seehuhn.de/go/pixmap/recipe"
)

var runCmd = &cobra.Command{
	Use:   "run recipe.yaml",
	Short: "Execute a YAML recipe",
	Long: `Execute a YAML recipe.

Relative file names in the recipe are resolved against the directory
containing the recipe, unless -C is given.`,
	Args: cobra.ExactArgs(1),
	RunE: runRun,
}

func init() {
	runCmd.Flags().StringP("directory", "C", "", "Resolve file names relative to this directory")
	runCmd.Flags().String("proof", "", "Also write a PDF proof sheet of all outputs")
	addProofFlags(runCmd)
	runCmd.Flags().Bool("check", false, "Only validate the recipe")
	rootCmd.AddCommand(runCmd)
}

func runRun(cmd *cobra.Command, args []string) error {
	dir, _ := cmd.Flags().GetString("directory")
	proofFile, _ := cmd.Flags().GetString("proof")
	check, _ := cmd.Flags().GetBool("check")

	r, err := recipe.Load(args[0])
	if err != nil {
		return err
	}
	if check {
		fmt.Fprintf(cmd.OutOrStdout(), "%s: %d inputs, %d steps, %d outputs\n",
			args[0], len(r.Inputs), len(r.Steps), len(r.Outputs))
		return nil
	}
	if !cmd.Flags().Changed("directory") {
		dir = filepath.Dir(args[0])
	}

	strict, _ := cmd.Flags().GetBool("strict")
	vars, err := runRecipe(cmd, r, dir, strict)
	if err != nil {
		return err
	}
	if proofFile != "" {
		return writeRecipeProof(cmd, proofFile, r, vars)
	}
	return nil
}
