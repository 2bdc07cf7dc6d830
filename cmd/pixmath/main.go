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

// Command pixmath applies arithmetic operators to RGB images.
//
// The demo command reproduces the classic operator demonstration on two
// sample images.  Other commands apply single operators, run YAML recipes,
// inspect and convert image files, and write PDF proof sheets.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"seehuhn.de/go/pixmap"
	"seehuhn.de/go/pixmap/internal/logging"
	"seehuhn.de/go/pixmap/pnm"
	"seehuhn.de/go/pixmap/recipe"
)

var logger = zap.NewNop()

var rootCmd = &cobra.Command{
	Use:           "pixmath",
	Short:         "Arithmetic on floating-point RGB images",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		verbose, _ := cmd.Flags().GetBool("verbose")
		jsonLog, _ := cmd.Flags().GetBool("json-log")
		logFile, _ := cmd.Flags().GetString("log-file")
		logger = logging.New(cmd.ErrOrStderr(), &logging.Options{
			Verbose: verbose,
			JSON:    jsonLog,
			File:    logFile,
		})
		return nil
	},
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.BoolP("verbose", "v", false, "Show debug messages")
	flags.Bool("json-log", false, "Write log messages as JSON")
	flags.String("log-file", "", "Also write all log messages to this file")
	flags.Bool("saturate", false, "Clamp channel values to [0, 255] instead of wrapping around")
	flags.Bool("strict", false, "Exit with an error status if any step fails")
}

func main() {
	err := rootCmd.Execute()
	_ = logger.Sync()
	if err != nil {
		fmt.Fprintln(os.Stderr, "pixmath:", err)
		os.Exit(1)
	}
}

func errFailed(n int) error {
	return fmt.Errorf("%d failures", n)
}

// quantizer returns the byte mapping selected on the command line.
func quantizer(cmd *cobra.Command) pixmap.Quantizer {
	if saturate, _ := cmd.Flags().GetBool("saturate"); saturate {
		return pixmap.Saturate
	}
	return pixmap.Wrap
}

// runRecipe executes r and reports the outcome.  Failures are only
// turned into an error if strict is set.
func runRecipe(cmd *cobra.Command, r *recipe.Recipe, dir string, strict bool) (map[string]*pixmap.Image, error) {
	run := &recipe.Runner{
		Log:    logger,
		Dir:    dir,
		Encode: &pnm.EncodeOptions{Quantizer: quantizer(cmd)},
	}
	rep, vars := run.Run(r)
	printReport(cmd.OutOrStdout(), &rep)

	if strict && !rep.OK() {
		return vars, errFailed(rep.Failures)
	}
	return vars, nil
}
