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
	"github.com/spf13/cobra"

	"seehuhn.de/go/pixmap/recipe"
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run the operator demonstration",
	Long: `Run the operator demonstration.

Reads ./images/Mandrill.ppm and ./images/tandon_stacked_color.ppm and writes
Add.ppm, AddAssign.ppm, subtract.ppm, times130.ppm, gamma.ppm, alpha85.ppm,
alpha50.ppm and images/out.ppm.  Missing or unreadable inputs are reported
and produce no output.`,
	Args: cobra.NoArgs,
	RunE: runDemo,
}

func init() {
	demoCmd.Flags().StringP("directory", "C", "", "Run in this directory")
	demoCmd.Flags().String("proof", "", "Also write a PDF proof sheet of all outputs")
	addProofFlags(demoCmd)
	rootCmd.AddCommand(demoCmd)
}

func runDemo(cmd *cobra.Command, args []string) error {
	dir, _ := cmd.Flags().GetString("directory")
	proofFile, _ := cmd.Flags().GetString("proof")

	r := recipe.Default()
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
