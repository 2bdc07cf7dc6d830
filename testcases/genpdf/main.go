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

// Command genpdf generates proof sheets for the test case catalogue.
// For every test case, it writes a PDF showing the input images next to
// the result.  If Ghostscript is installed, the sheets are also rendered
// to PNG files for quick inspection.
package main

import (
	"fmt"
	"maps"
	"os"
	"os/exec"
	"path/filepath"
	"slices"

	"seehuhn.de/go/pixmap/proof"
	"seehuhn.de/go/pixmap/recipe"
	"seehuhn.de/go/pixmap/testcases"
)

const proofDir = "testdata/proof"

// maxPixels limits the size of the images on a sheet, since every pixel
// becomes a separate rectangle in the PDF.
const maxPixels = 256 * 256

func main() {
	if err := os.MkdirAll(proofDir, 0755); err != nil {
		panic(err)
	}
	_, err := exec.LookPath("gs")
	haveGS := err == nil

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			if tc.Width*tc.Height > maxPixels {
				continue
			}

			name := category + "_" + tc.Name
			pdfPath := filepath.Join(proofDir, name+".pdf")
			pngPath := filepath.Join(proofDir, name+".png")

			if err := generatePDF(tc, pdfPath); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
			if !haveGS {
				continue
			}
			if err := renderPNG(pdfPath, pngPath); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
		}
	}
}

func generatePDF(tc testcases.TestCase, pdfPath string) error {
	images := tc.Images()
	var tiles []proof.Tile
	for i, img := range images {
		tiles = append(tiles, proof.Tile{Name: fmt.Sprintf("in%d", i), Image: img.Clone()})
	}
	res, err := recipe.Apply(tc.Op, images)
	if err != nil {
		return err
	}
	tiles = append(tiles, proof.Tile{Name: recipe.Name(tc.Op), Image: res})

	scale := 4.0
	if tc.Width > 64 || tc.Height > 64 {
		scale = 1
	}
	return proof.WriteFile(pdfPath, tiles, &proof.Options{Scale: scale, Frame: true})
}

func renderPNG(pdfPath, pngPath string) error {
	// -r72 maps one PDF point to one output pixel
	cmd := exec.Command(
		"gs", "-q",
		"-sDEVICE=png16m",
		"-r72",
		"-o", pngPath,
		pdfPath,
	)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}
