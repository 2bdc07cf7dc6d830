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
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"seehuhn.de/go/pixmap"
	"seehuhn.de/go/pixmap/imgfile"
	"seehuhn.de/go/pixmap/pnm"
)

// Runner executes recipes.
//
// Failures never stop a run: an input which cannot be read and a step
// which cannot be evaluated both bind their name to an empty image, and
// an output which cannot be written is skipped.  Every failure is logged
// and counted in the returned [Report].
type Runner struct {
	// Log receives progress and error messages.  If nil, nothing is logged.
	Log *zap.Logger

	// Dir is the directory relative file names are resolved against.
	// If empty, the current working directory is used.
	Dir string

	// Encode controls how output images are written.
	Encode *pnm.EncodeOptions
}

// Report summarizes a recipe run.
type Report struct {
	Inputs  int // number of inputs read successfully
	Steps   int // number of steps evaluated successfully
	Outputs int // number of files written

	Failures int
	Errors   []error
}

// OK reports whether the run completed without failures.
func (rep *Report) OK() bool {
	return rep.Failures == 0
}

func (rep *Report) fail(err error) {
	rep.Failures++
	rep.Errors = append(rep.Errors, err)
}

// Run executes all steps of r in order.
// The returned map holds the final binding of every image name.
func (run *Runner) Run(r *Recipe) (Report, map[string]*pixmap.Image) {
	log := run.Log
	if log == nil {
		log = zap.NewNop()
	}
	var q pixmap.Quantizer
	if run.Encode != nil {
		q = run.Encode.Quantizer
	}

	var rep Report
	vars := make(map[string]*pixmap.Image)

	for _, in := range r.Inputs {
		name := run.path(in.File)
		img, err := imgfile.Read(name)
		vars[in.Name] = img
		if err != nil {
			log.Error("cannot read input",
				zap.String("name", in.Name),
				zap.String("path", name),
				zap.Error(err))
			rep.fail(err)
			continue
		}
		log.Debug("input read",
			zap.String("name", in.Name),
			zap.String("path", name),
			zap.Int("width", img.Width()),
			zap.Int("height", img.Height()))
		rep.Inputs++
	}

	for _, s := range r.Steps {
		args := make([]*pixmap.Image, len(s.Args))
		for i, a := range s.Args {
			args[i] = vars[a]
		}

		start := time.Now()
		res, err := Apply(s.Op, args)
		if err != nil {
			log.Error("step failed",
				zap.String("name", s.Name),
				zap.String("op", Name(s.Op)),
				zap.Strings("args", s.Args),
				zap.Error(err))
			rep.fail(err)
			vars[s.Name] = &pixmap.Image{}
			continue
		}
		vars[s.Name] = res
		log.Debug("step done",
			zap.String("name", s.Name),
			zap.String("op", Name(s.Op)),
			zap.Duration("elapsed", time.Since(start)))
		rep.Steps++
	}

	for _, out := range r.Outputs {
		name := run.path(out.File)
		img := vars[out.Name]
		if img == nil {
			img = &pixmap.Image{}
		}
		err := imgfile.Write(name, img, q)
		if err != nil {
			log.Error("cannot write output",
				zap.String("name", out.Name),
				zap.String("path", name),
				zap.Error(err))
			rep.fail(err)
			continue
		}
		log.Info("output written",
			zap.String("name", out.Name),
			zap.String("path", name))
		rep.Outputs++
	}

	return rep, vars
}

func (run *Runner) path(name string) string {
	if run.Dir == "" || filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(run.Dir, name)
}
