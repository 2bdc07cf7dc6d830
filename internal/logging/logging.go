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

// Package logging constructs the zap loggers used by the command line
// tools.
package logging

import (
	"io"
	"os"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/term"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Options select the log format and destinations.
type Options struct {
	// Verbose enables debug messages.
	Verbose bool

	// JSON selects JSON output instead of the human-readable console format.
	JSON bool

	// File, if non-empty, names a file which receives a JSON copy of all
	// messages, including debug messages.  The file is rotated when it
	// grows beyond MaxSizeMB.
	File string

	// MaxSizeMB is the rotation threshold for File.  The default is 10.
	MaxSizeMB int
}

// New returns a logger which writes to w.
// A nil opt is equivalent to the zero value.
func New(w io.Writer, opt *Options) *zap.Logger {
	if opt == nil {
		opt = &Options{}
	}

	level := zapcore.InfoLevel
	if opt.Verbose {
		level = zapcore.DebugLevel
	}

	var enc zapcore.Encoder
	if opt.JSON {
		enc = zapcore.NewJSONEncoder(jsonConfig())
	} else {
		enc = zapcore.NewConsoleEncoder(consoleConfig(isTerminal(w)))
	}
	core := zapcore.NewCore(enc, zapcore.AddSync(w), level)

	if opt.File != "" {
		maxSize := opt.MaxSizeMB
		if maxSize <= 0 {
			maxSize = 10
		}
		file := &lumberjack.Logger{
			Filename:   opt.File,
			MaxSize:    maxSize,
			MaxBackups: 3,
		}
		fileCore := zapcore.NewCore(
			zapcore.NewJSONEncoder(jsonConfig()),
			zapcore.AddSync(file),
			zapcore.DebugLevel,
		)
		core = zapcore.NewTee(core, fileCore)
	}

	return zap.New(core)
}

func jsonConfig() zapcore.EncoderConfig {
	cfg := zap.NewProductionEncoderConfig()
	cfg.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.EncodeDuration = zapcore.StringDurationEncoder
	return cfg
}

func consoleConfig(color bool) zapcore.EncoderConfig {
	cfg := zap.NewDevelopmentEncoderConfig()
	cfg.CallerKey = zapcore.OmitKey
	cfg.EncodeTime = shortTimeEncoder
	cfg.EncodeDuration = zapcore.StringDurationEncoder
	if color {
		cfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
	} else {
		cfg.EncodeLevel = zapcore.CapitalLevelEncoder
	}
	return cfg
}

func shortTimeEncoder(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
	enc.AppendString(t.Format("15:04:05.000"))
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
