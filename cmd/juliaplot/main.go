// Copyright 2026 The juliascale Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Juliaplot draws scaling charts from the execution time reports of
// the Julia set benchmark.
//
// Usage:
//
//	juliaplot [flags]
//
// Juliaplot reads the parallel and sequential reports and writes three
// charts to the output directory:
//
//   - execution_time_vs_resolution_filtered: execution time against
//     resolution, one line per process count;
//   - speedup_vs_processes: sequential time divided by parallel time
//     against process count, one line per resolution;
//   - execution_time_vs_processes_for_resolution_R: execution time
//     against process count at a single resolution R.
//
// The reports run in that order. If one fails, juliaplot stops and
// the charts already written are kept.
//
// Settings are read from the YAML file named by -config, if any, and
// then overridden by flags. The -summary flag also prints each chart
// as a table, and -html and -xlsx write all charts to a single HTML
// page or spreadsheet.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/hpclab/juliascale/chart"
	"github.com/hpclab/juliascale/internal/config"
	"github.com/hpclab/juliascale/measure"
	"github.com/hpclab/juliascale/scaling"
)

func main() {
	log.SetPrefix("juliaplot: ")
	log.SetFlags(0)
	if err := juliaplot(os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(2)
		}
		log.Fatal(err)
	}
}

func juliaplot(w, wErr io.Writer, args []string) error {
	def := config.Default()

	flags := flag.NewFlagSet("juliaplot", flag.ContinueOnError)
	flags.SetOutput(wErr)
	flags.Usage = func() {
		fmt.Fprintf(flags.Output(), "Usage: juliaplot [flags]\n\n")
		flags.PrintDefaults()
	}
	flagConfig := flags.String("config", "", "read settings from YAML `file`")
	flagParallel := flags.String("parallel", def.Parallel, "parallel execution report `file`")
	flagSequential := flags.String("sequential", def.Sequential, "sequential execution report `file`")
	flagOut := flags.String("out", def.OutDir, "write charts to `dir`")
	flagFormat := flags.String("format", def.Format, "image `format`: png, jpeg, tiff or svg")
	flagDPI := flags.Int("dpi", def.DPI, "image resolution in dots per inch")
	flagResolutions := flags.String("resolutions", joinInts(def.Resolutions), "comma-separated `list` of resolutions for the execution time chart")
	flagProcesses := flags.String("processes", joinInts(def.Processes), "comma-separated `list` of process counts for the execution time chart")
	flagResolution := flags.Int("resolution", def.Resolution, "resolution for the process scaling chart")
	flagZeroTime := flags.String("zero-time", def.ZeroTime, "on a zero parallel time, skip the point or fail (`policy`: skip, fail)")
	flagAggregate := flags.Bool("aggregate", def.Aggregate, "collapse repeated trials into their median and range")
	flagSummary := flags.String("summary", def.Summary, "print each chart as a table in `format` text or csv")
	flagHTML := flags.String("html", def.HTML, "also write all charts to HTML `file`")
	flagXLSX := flags.String("xlsx", def.XLSX, "also write all charts to spreadsheet `file`")
	if err := flags.Parse(args); err != nil {
		return err
	}
	if flags.NArg() > 0 {
		flags.Usage()
		return fmt.Errorf("unexpected arguments: %s", strings.Join(flags.Args(), " "))
	}

	cfg := def
	if *flagConfig != "" {
		var err error
		if cfg, err = config.Load(*flagConfig, def); err != nil {
			return err
		}
	}

	// Flags given explicitly override the configuration file.
	var err error
	flags.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "parallel":
			cfg.Parallel = *flagParallel
		case "sequential":
			cfg.Sequential = *flagSequential
		case "out":
			cfg.OutDir = *flagOut
		case "format":
			cfg.Format = *flagFormat
		case "dpi":
			cfg.DPI = *flagDPI
		case "resolutions":
			cfg.Resolutions, err = parseList(f.Name, *flagResolutions, err)
		case "processes":
			cfg.Processes, err = parseList(f.Name, *flagProcesses, err)
		case "resolution":
			cfg.Resolution = *flagResolution
		case "zero-time":
			cfg.ZeroTime = *flagZeroTime
		case "aggregate":
			cfg.Aggregate = *flagAggregate
		case "summary":
			cfg.Summary = *flagSummary
		case "html":
			cfg.HTML = *flagHTML
		case "xlsx":
			cfg.XLSX = *flagXLSX
		}
	})
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	return run(w, log.New(wErr, "juliaplot: ", 0), &cfg)
}

// parseList parses a -resolutions or -processes flag value. If prev
// is non-nil, it is returned unchanged.
func parseList(name, s string, prev error) ([]int, error) {
	if prev != nil {
		return nil, prev
	}
	xs, err := config.ParseInts(s)
	if err != nil {
		return nil, fmt.Errorf("-%s: %w", name, err)
	}
	return xs, nil
}

func joinInts(xs []int) string {
	ss := make([]string, len(xs))
	for i, x := range xs {
		ss[i] = strconv.Itoa(x)
	}
	return strings.Join(ss, ",")
}

// A report produces one chart from freshly loaded measurements.
type report struct {
	name string
	run  func(cfg *config.Config) (*scaling.Chart, error)
}

var reports = []report{
	{"execution time", func(cfg *config.Config) (*scaling.Chart, error) {
		par, err := measure.Load(cfg.Parallel)
		if err != nil {
			return nil, err
		}
		return scaling.ExecutionTime(par, cfg.ExecutionTime())
	}},
	{"speedup", func(cfg *config.Config) (*scaling.Chart, error) {
		par, err := measure.Load(cfg.Parallel)
		if err != nil {
			return nil, err
		}
		seq, err := measure.Load(cfg.Sequential)
		if err != nil {
			return nil, err
		}
		return scaling.Speedup(par, seq, cfg.Speedup())
	}},
	{"process scaling", func(cfg *config.Config) (*scaling.Chart, error) {
		par, err := measure.Load(cfg.Parallel)
		if err != nil {
			return nil, err
		}
		return scaling.ProcessScaling(par, cfg.ProcessScaling())
	}},
}

func run(w io.Writer, logger *log.Logger, cfg *config.Config) error {
	if err := os.MkdirAll(cfg.OutDir, 0777); err != nil {
		return err
	}

	var charts []*scaling.Chart
	for i, r := range reports {
		c, err := r.run(cfg)
		if err != nil {
			return fmt.Errorf("%s report: %w", r.name, err)
		}
		for _, warn := range c.Warnings {
			logger.Printf("%s: %v", c.Name, warn)
		}

		path := filepath.Join(cfg.OutDir, c.Name+cfg.ImageFormat().Ext())
		if err := chart.Save(path, c, cfg.ImageOptions()); err != nil {
			return fmt.Errorf("%s report: %w", r.name, err)
		}
		logger.Printf("wrote %s", path)

		if err := summarize(w, cfg.Summary, c, i > 0); err != nil {
			return err
		}
		charts = append(charts, c)
	}

	if cfg.HTML != "" {
		if err := chart.WriteHTMLFile(cfg.HTML, charts...); err != nil {
			return err
		}
		logger.Printf("wrote %s", cfg.HTML)
	}
	if cfg.XLSX != "" {
		if err := chart.WriteWorkbookFile(cfg.XLSX, charts...); err != nil {
			return err
		}
		logger.Printf("wrote %s", cfg.XLSX)
	}
	return nil
}

// summarize prints c to w in the given summary format, preceded by a
// blank line if sep is set.
func summarize(w io.Writer, format string, c *scaling.Chart, sep bool) error {
	if format == "" {
		return nil
	}
	if sep {
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}
	if format == "csv" {
		return scaling.FormatCSV(w, c)
	}
	return scaling.FormatText(w, c)
}
