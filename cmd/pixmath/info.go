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
	"os"

	"github.com/spf13/cobra"

	"seehuhn.de/go/pixmap/imgfile"
)

var infoCmd = &cobra.Command{
	Use:   "info file...",
	Short: "Show format and size of image files",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)
}

func runInfo(cmd *cobra.Command, args []string) error {
	w := cmd.OutOrStdout()
	failed := 0
	for _, name := range args {
		info, err := fileInfo(name)
		if err != nil {
			failColor.Fprintf(w, "%s: %v\n", name, err)
			failed++
			continue
		}
		okColor.Fprintf(w, "%s", name)
		fmt.Fprintf(w, ": %s, %d x %d, max value %d\n",
			info.Format, info.Width, info.Height, info.MaxVal)
	}

	if strict, _ := cmd.Flags().GetBool("strict"); strict && failed > 0 {
		return errFailed(failed)
	}
	return nil
}

func fileInfo(name string) (imgfile.Info, error) {
	fd, err := os.Open(name)
	if err != nil {
		return imgfile.Info{}, err
	}
	defer fd.Close()
	return imgfile.DecodeConfig(fd)
}
