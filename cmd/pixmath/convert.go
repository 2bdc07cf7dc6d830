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
	"go.uber.org/zap"

	"seehuhn.de/go/pixmap/imgfile"
)

var convertCmd = &cobra.Command{
	Use:   "convert input output",
	Short: "Convert between image file formats",
	Long: `Convert between image file formats.

The input can be in PNM, PNG, BMP or TIFF format.  The output format is
chosen by the extension of the output file name: .ppm, .pnm, .png, .bmp,
.tif or .tiff.`,
	Args: cobra.ExactArgs(2),
	RunE: runConvert,
}

func init() {
	rootCmd.AddCommand(convertCmd)
}

func runConvert(cmd *cobra.Command, args []string) error {
	in, out := args[0], args[1]

	// Check the extension before decoding the input.
	if _, err := imgfile.KindOf(out); err != nil {
		return err
	}

	img, err := imgfile.Read(in)
	if err != nil {
		return err
	}
	logger.Debug("input read",
		zap.String("path", in),
		zap.Int("width", img.Width()),
		zap.Int("height", img.Height()))

	err = imgfile.Write(out, img, quantizer(cmd))
	if err != nil {
		return err
	}
	logger.Info("output written", zap.String("path", out))
	return nil
}
