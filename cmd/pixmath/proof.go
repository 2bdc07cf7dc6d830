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
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"seehuhn.de/go/pixmap"
	"seehuhn.de/go/pixmap/imgfile"
	"seehuhn.de/go/pixmap/proof"
	"seehuhn.de/go/pixmap/recipe"
)

var proofCmd = &cobra.Command{
	Use:   "proof -o out.pdf file...",
	Short: "Write a PDF proof sheet showing images side by side",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runProof,
}

func init() {
	addProofFlags(proofCmd)
	proofCmd.Flags().StringP("output", "o", "", "Output PDF file")
	proofCmd.MarkFlagRequired("output")
	rootCmd.AddCommand(proofCmd)
}

func addProofFlags(cmd *cobra.Command) {
	cmd.Flags().Float64("scale", 1, "Size of one pixel in PDF points")
	cmd.Flags().Bool("frame", false, "Draw a border around every image")
}

func proofOptions(cmd *cobra.Command) *proof.Options {
	opt := &proof.Options{Quantizer: quantizer(cmd)}
	opt.Scale, _ = cmd.Flags().GetFloat64("scale")
	opt.Frame, _ = cmd.Flags().GetBool("frame")
	return opt
}

func runProof(cmd *cobra.Command, args []string) error {
	out, _ := cmd.Flags().GetString("output")

	var tiles []proof.Tile
	var errs []error
	for _, name := range args {
		img, err := imgfile.Read(name)
		if err != nil {
			logger.Error("cannot read image", zap.String("path", name), zap.Error(err))
			errs = append(errs, err)
			continue
		}
		tiles = append(tiles, proof.Tile{Name: tileName(name), Image: img})
	}

	err := proof.WriteFile(out, tiles, proofOptions(cmd))
	if err != nil {
		return err
	}
	logger.Info("proof sheet written",
		zap.String("path", out),
		zap.Int("images", len(tiles)))

	if strict, _ := cmd.Flags().GetBool("strict"); strict && len(errs) > 0 {
		return errors.Join(errs...)
	}
	return nil
}

// writeRecipeProof shows the outputs of a recipe run on a proof sheet.
func writeRecipeProof(cmd *cobra.Command, name string, r *recipe.Recipe, vars map[string]*pixmap.Image) error {
	var tiles []proof.Tile
	for _, out := range r.Outputs {
		tiles = append(tiles, proof.Tile{Name: tileName(out.File), Image: vars[out.Name]})
	}
	err := proof.WriteFile(name, tiles, proofOptions(cmd))
	if err != nil {
		return fmt.Errorf("proof sheet: %w", err)
	}
	logger.Info("proof sheet written", zap.String("path", name))
	return nil
}

func tileName(file string) string {
	base := filepath.Base(file)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
