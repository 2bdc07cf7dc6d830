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

package logging

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"
)

func TestConsole(t *testing.T) {
	buf := &bytes.Buffer{}
	log := New(buf, nil)
	log.Debug("hidden")
	log.Info("output written", zap.String("path", "a.ppm"))

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Error("debug message shown without Verbose")
	}
	if !strings.Contains(out, "INFO") || !strings.Contains(out, "output written") {
		t.Errorf("unexpected output %q", out)
	}
	if !strings.Contains(out, `"path": "a.ppm"`) {
		t.Errorf("missing field in %q", out)
	}
	if strings.Contains(out, "\x1b[") {
		t.Error("color escape codes written to a buffer")
	}
}

func TestVerbose(t *testing.T) {
	buf := &bytes.Buffer{}
	log := New(buf, &Options{Verbose: true})
	log.Debug("step done")
	if !strings.Contains(buf.String(), "DEBUG") {
		t.Errorf("debug message missing in %q", buf.String())
	}
}

func TestJSON(t *testing.T) {
	buf := &bytes.Buffer{}
	log := New(buf, &Options{JSON: true})
	log.Warn("careful", zap.Int("n", 3))

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatal(err)
	}
	if entry["msg"] != "careful" || entry["level"] != "warn" || entry["n"] != 3.0 {
		t.Errorf("unexpected entry %v", entry)
	}
	if _, ok := entry["ts"].(string); !ok {
		t.Errorf("timestamp is not a string: %v", entry["ts"])
	}
}

func TestFile(t *testing.T) {
	name := filepath.Join(t.TempDir(), "pixmath.log")
	buf := &bytes.Buffer{}
	log := New(buf, &Options{File: name})
	log.Debug("only in the file")
	log.Info("everywhere")
	_ = log.Sync()

	if strings.Contains(buf.String(), "only in the file") {
		t.Error("debug message written to console")
	}

	data, err := os.ReadFile(name)
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines in log file, want 2", len(lines))
	}
	var entry map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &entry); err != nil {
		t.Fatal(err)
	}
	if entry["msg"] != "only in the file" {
		t.Errorf("unexpected entry %v", entry)
	}
}
