// Copyright 2026 The juliascale Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config holds the settings of the juliaplot command.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/hpclab/juliascale/chart"
	"github.com/hpclab/juliascale/scaling"
	"github.com/samber/lo"
	"gopkg.in/yaml.v3"
)

// Config is the complete configuration of a juliaplot run.
type Config struct {
	Parallel   string `yaml:"parallel"`
	Sequential string `yaml:"sequential"`
	OutDir     string `yaml:"out_dir"`

	Format string `yaml:"format"`
	DPI    int    `yaml:"dpi"`

	Resolutions []int  `yaml:"resolutions"`
	Processes   []int  `yaml:"processes"`
	Resolution  int    `yaml:"resolution"`
	ZeroTime    string `yaml:"zero_time"`
	Aggregate   bool   `yaml:"aggregate"`

	// Summary is "text" or "csv" to print a summary of each chart,
	// or "" for none.
	Summary string `yaml:"summary"`

	// HTML and XLSX, if set, name additional files holding all
	// charts.
	HTML string `yaml:"html"`
	XLSX string `yaml:"xlsx"`

	// Set by Validate.
	zeroTime scaling.ZeroTimePolicy
	format   chart.Format
}

// Default returns the configuration of the standard benchmark layout.
func Default() Config {
	exec := scaling.DefaultExecutionTimeConfig()
	return Config{
		Parallel:    "../parallel/report/parallel_execution_report.csv",
		Sequential:  "../sequential/report/sequential_execution_report.csv",
		OutDir:      "../analysis/graphs",
		Format:      "png",
		DPI:         chart.DefaultOptions().DPI,
		Resolutions: exec.Resolutions,
		Processes:   exec.Processes,
		Resolution:  scaling.DefaultResolution,
		ZeroTime:    scaling.SkipZeroTime.String(),
	}
}

// Load returns base overlaid with the settings in the YAML file path.
// Lists in the file replace those in base. Unknown keys are an error.
func Load(path string, base Config) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return base, err
	}
	defer f.Close()

	c := base
	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil && !errors.Is(err, io.EOF) {
		return base, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// Validate checks c and normalizes it. Duplicate resolutions and
// process counts are removed, keeping the first.
func (c *Config) Validate() error {
	if c.Parallel == "" || c.Sequential == "" {
		return fmt.Errorf("parallel and sequential reports must be set")
	}
	if c.OutDir == "" {
		return fmt.Errorf("output directory must be set")
	}
	var err error
	if c.format, err = chart.ParseFormat(c.Format); err != nil {
		return err
	}
	if c.DPI <= 0 {
		return fmt.Errorf("dpi must be positive, got %d", c.DPI)
	}
	if c.zeroTime, err = scaling.ParseZeroTimePolicy(c.ZeroTime); err != nil {
		return err
	}
	if !lo.Contains([]string{"", "text", "csv"}, c.Summary) {
		return fmt.Errorf("unknown summary format %q (want text or csv)", c.Summary)
	}

	c.Resolutions = lo.Uniq(c.Resolutions)
	c.Processes = lo.Uniq(c.Processes)
	if err := checkPositive("resolutions", c.Resolutions); err != nil {
		return err
	}
	if err := checkPositive("processes", c.Processes); err != nil {
		return err
	}
	if c.Resolution <= 0 {
		return fmt.Errorf("resolution must be positive, got %d", c.Resolution)
	}
	return nil
}

func checkPositive(name string, xs []int) error {
	if len(xs) == 0 {
		return fmt.Errorf("%s must not be empty", name)
	}
	if bad, ok := lo.Find(xs, func(x int) bool { return x <= 0 }); ok {
		return fmt.Errorf("%s must be positive, got %d", name, bad)
	}
	return nil
}

// ExecutionTime returns the settings of the execution time report.
func (c *Config) ExecutionTime() scaling.ExecutionTimeConfig {
	return scaling.ExecutionTimeConfig{
		Resolutions: c.Resolutions,
		Processes:   c.Processes,
		Aggregate:   c.Aggregate,
	}
}

// Speedup returns the settings of the speedup report. c must have
// been validated.
func (c *Config) Speedup() scaling.SpeedupConfig {
	return scaling.SpeedupConfig{ZeroTime: c.zeroTime, Aggregate: c.Aggregate}
}

// ProcessScaling returns the settings of the process scaling report.
func (c *Config) ProcessScaling() scaling.ProcessScalingConfig {
	return scaling.ProcessScalingConfig{Resolution: c.Resolution, Aggregate: c.Aggregate}
}

// ImageFormat returns the image format. c must have been validated.
func (c *Config) ImageFormat() chart.Format {
	return c.format
}

// ImageOptions returns the image rendering options.
func (c *Config) ImageOptions() chart.Options {
	o := chart.DefaultOptions()
	o.DPI = c.DPI
	return o
}

// ParseInts parses a comma-separated list of integers, such as
// "500,1000,5000".
func ParseInts(s string) ([]int, error) {
	var xs []int
	for _, f := range strings.Split(s, ",") {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		x, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("invalid integer %q in list %q", f, s)
		}
		xs = append(xs, x)
	}
	return xs, nil
}
