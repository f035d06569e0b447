// Copyright 2026 The juliascale Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Juliarecord appends one Julia set benchmark measurement to an
// execution time report.
//
// Usage:
//
//	juliarecord -processes n -resolution r -time seconds report.csv
//
// The report is created if it does not exist. A header row is written
// when the report is empty.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/hpclab/juliascale/measure"
)

func main() {
	log.SetPrefix("juliarecord: ")
	log.SetFlags(0)
	if err := juliarecord(os.Stderr, os.Args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(2)
		}
		log.Fatal(err)
	}
}

func juliarecord(wErr io.Writer, args []string) error {
	flags := flag.NewFlagSet("juliarecord", flag.ContinueOnError)
	flags.SetOutput(wErr)
	flags.Usage = func() {
		fmt.Fprintf(flags.Output(), "Usage: juliarecord [flags] report.csv\n\n")
		flags.PrintDefaults()
	}
	processes := flags.Int("processes", 1, "number of processes `n`")
	resolution := flags.Int("resolution", 0, "image resolution in pixels")
	seconds := flags.Float64("time", -1, "execution time in `seconds`")
	if err := flags.Parse(args); err != nil {
		return err
	}
	if flags.NArg() != 1 {
		flags.Usage()
		return fmt.Errorf("expected one report file")
	}

	switch {
	case *processes <= 0:
		return fmt.Errorf("-processes must be positive")
	case *resolution <= 0:
		return fmt.Errorf("-resolution must be positive")
	case *seconds < 0:
		return fmt.Errorf("-time must be given and not negative")
	}
	row := measure.Row{Resolution: *resolution, Processes: *processes, ExecutionTime: *seconds}
	return measure.Append(flags.Arg(0), row)
}
