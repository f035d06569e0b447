// Copyright 2026 The juliascale Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/hpclab/juliascale/chart"
	"github.com/hpclab/juliascale/scaling"
)

func TestDefault(t *testing.T) {
	c := Default()
	if err := c.Validate(); err != nil {
		t.Fatal(err)
	}
	if got, want := c.ExecutionTime(), scaling.DefaultExecutionTimeConfig(); !reflect.DeepEqual(got, want) {
		t.Errorf("got %+v, want %+v", got, want)
	}
	if got := c.ProcessScaling().Resolution; got != 4000 {
		t.Errorf("got resolution %d, want 4000", got)
	}
	if got := c.Speedup().ZeroTime; got != scaling.SkipZeroTime {
		t.Errorf("got zero-time policy %v, want skip", got)
	}
	if c.ImageFormat() != chart.PNG {
		t.Errorf("got format %v, want png", c.ImageFormat())
	}
}

func writeFile(t *testing.T, data string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "juliaplot.yaml")
	if err := os.WriteFile(path, []byte(data), 0666); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeFile(t, `
parallel: par.csv
out_dir: graphs
format: svg
resolutions: [1000, 500, 1000]
zero_time: fail
aggregate: true
`)
	c, err := Load(path, Default())
	if err != nil {
		t.Fatal(err)
	}
	if err := c.Validate(); err != nil {
		t.Fatal(err)
	}
	if c.Parallel != "par.csv" || c.OutDir != "graphs" {
		t.Errorf("got paths %q, %q", c.Parallel, c.OutDir)
	}
	// Unset keys keep their defaults.
	if c.Sequential != Default().Sequential {
		t.Errorf("got sequential %q, want default", c.Sequential)
	}
	if want := []int{1000, 500}; !reflect.DeepEqual(c.Resolutions, want) {
		t.Errorf("got resolutions %v, want %v", c.Resolutions, want)
	}
	if want := []int{2, 4, 8, 16}; !reflect.DeepEqual(c.Processes, want) {
		t.Errorf("got processes %v, want %v", c.Processes, want)
	}
	if c.ImageFormat() != chart.SVG {
		t.Errorf("got format %v, want svg", c.ImageFormat())
	}
	if s := c.Speedup(); s.ZeroTime != scaling.FailZeroTime || !s.Aggregate {
		t.Errorf("got speedup config %+v", s)
	}
}

func TestLoadEmpty(t *testing.T) {
	c, err := Load(writeFile(t, ""), Default())
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(c, Default()) {
		t.Errorf("empty file changed the configuration: %+v", c)
	}
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"), Default())
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("got %v, want not-exist error", err)
	}

	_, err = Load(writeFile(t, "resolutionz: [1]\n"), Default())
	if err == nil || !strings.Contains(err.Error(), "resolutionz") {
		t.Errorf("got %v, want unknown field error", err)
	}

	_, err = Load(writeFile(t, "resolutions: big\n"), Default())
	if err == nil {
		t.Errorf("want error for malformed list")
	}
}

func TestValidate(t *testing.T) {
	for _, test := range []struct {
		name string
		edit func(c *Config)
		want string
	}{
		{"format", func(c *Config) { c.Format = "pdf" }, `unknown image format "pdf"`},
		{"policy", func(c *Config) { c.ZeroTime = "ignore" }, `unknown zero-time policy "ignore"`},
		{"summary", func(c *Config) { c.Summary = "json" }, `unknown summary format "json"`},
		{"dpi", func(c *Config) { c.DPI = 0 }, "dpi must be positive"},
		{"no resolutions", func(c *Config) { c.Resolutions = nil }, "resolutions must not be empty"},
		{"bad process", func(c *Config) { c.Processes = []int{2, -4} }, "processes must be positive, got -4"},
		{"resolution", func(c *Config) { c.Resolution = 0 }, "resolution must be positive"},
		{"paths", func(c *Config) { c.Parallel = "" }, "must be set"},
	} {
		t.Run(test.name, func(t *testing.T) {
			c := Default()
			test.edit(&c)
			err := c.Validate()
			if err == nil || !strings.Contains(err.Error(), test.want) {
				t.Errorf("got %v, want error containing %q", err, test.want)
			}
		})
	}
}

func TestParseInts(t *testing.T) {
	got, err := ParseInts("500, 1000,,5000")
	if err != nil {
		t.Fatal(err)
	}
	if want := []int{500, 1000, 5000}; !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
	if _, err := ParseInts("500,1k"); err == nil {
		t.Errorf("want error for 1k")
	}
}
