// Copyright 2026 The juliascale Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scaling derives scaling charts from measurement tables.
//
// Each report takes one or two measurement tables (see package
// measure) and a configuration and returns a Chart: an ordered set of
// labeled line series. Reports never read files or render anything.
// Rendering a Chart is the job of package chart.
//
// Points within a series are always sorted by X. Points that share an
// X value keep their input order, unless the report aggregates
// repeated trials, in which case they are collapsed into one point
// whose Y is the median trial and whose Lo and Hi give the range.
//
// Like package benchmath, reports attach non-fatal problems with the
// input to their result as warnings rather than failing.
package scaling

import (
	"fmt"
	"math"
	"sort"
)

// A Chart is the result of a report.
type Chart struct {
	// Name is the base name of the chart's artifacts, such as
	// "speedup_vs_processes".
	Name string

	// ID is a short identifier for the chart, usable where Name
	// is too long, such as a workbook sheet name.
	ID string

	Title          string
	XLabel, YLabel string

	Series []Series

	// Warnings lists problems with the input that did not stop
	// the report, such as points dropped because their value was
	// undefined.
	Warnings []error
}

// A Series is one labeled line in a Chart.
type Series struct {
	Label  string
	Points []Point
}

// A Point is a single (X, Y) value of a Series.
//
// For a single trial, Lo and Hi equal Y and N is 1. For an aggregated
// point, Y is the median of N trials and [Lo, Hi] is their range.
type Point struct {
	X, Y   float64
	Lo, Hi float64
	N      int
}

// Aggregated reports whether any point of s summarizes more than one
// trial.
func (s *Series) Aggregated() bool {
	for _, p := range s.Points {
		if p.N > 1 {
			return true
		}
	}
	return false
}

// Xs returns the distinct X values of all series in c in ascending
// order.
func (c *Chart) Xs() []float64 {
	seen := make(map[float64]bool)
	var xs []float64
	for _, s := range c.Series {
		for _, p := range s.Points {
			if !seen[p.X] {
				seen[p.X] = true
				xs = append(xs, p.X)
			}
		}
	}
	sort.Float64s(xs)
	return xs
}

// Len returns the total number of points in c.
func (c *Chart) Len() int {
	n := 0
	for _, s := range c.Series {
		n += len(s.Points)
	}
	return n
}

// A ZeroTimeError reports a joined measurement whose parallel
// execution time makes its speedup undefined.
type ZeroTimeError struct {
	Resolution, Processes int
	Sequential, Parallel  float64
}

func (e *ZeroTimeError) Error() string {
	s := e.Sequential / e.Parallel
	what := "undefined"
	if math.IsInf(s, 0) {
		what = "infinite"
	}
	return fmt.Sprintf("resolution %d, %d processes: %s speedup (sequential %gs, parallel %gs)", e.Resolution, e.Processes, what, e.Sequential, e.Parallel)
}
