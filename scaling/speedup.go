// Copyright 2026 The juliascale Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scaling

import (
	"fmt"
	"math"
	"strings"

	"github.com/aclements/go-gg/table"
	"github.com/hpclab/juliascale/measure"
	"github.com/samber/lo"
)

// Suffixes Join appends to columns present in both joined tables.
const (
	ParallelSuffix   = "_parallel"
	SequentialSuffix = "_sequential"
)

// Columns of the table returned by Join, and of the Speedup column
// derived from it.
const (
	ColProcessesParallel   = measure.ColProcesses + ParallelSuffix
	ColProcessesSequential = measure.ColProcesses + SequentialSuffix
	ColTimeParallel        = measure.ColExecutionTime + ParallelSuffix
	ColTimeSequential      = measure.ColExecutionTime + SequentialSuffix
	ColSpeedup             = "Speedup"
)

// A ZeroTimePolicy says what Speedup does with a point whose speedup
// is undefined, typically because its parallel execution time is 0.
type ZeroTimePolicy int

const (
	// SkipZeroTime drops the point and records a warning.
	SkipZeroTime ZeroTimePolicy = iota
	// FailZeroTime fails the report with a *ZeroTimeError.
	FailZeroTime
)

var zeroTimeNames = map[string]ZeroTimePolicy{
	"skip": SkipZeroTime,
	"fail": FailZeroTime,
}

func (p ZeroTimePolicy) String() string {
	for name, v := range zeroTimeNames {
		if v == p {
			return name
		}
	}
	return fmt.Sprintf("ZeroTimePolicy(%d)", int(p))
}

// ParseZeroTimePolicy returns the policy named s: "skip" or "fail".
func ParseZeroTimePolicy(s string) (ZeroTimePolicy, error) {
	if p, ok := zeroTimeNames[strings.ToLower(s)]; ok {
		return p, nil
	}
	return 0, fmt.Errorf("unknown zero-time policy %q (want skip or fail)", s)
}

// SpeedupConfig configures Speedup.
type SpeedupConfig struct {
	ZeroTime ZeroTimePolicy

	// Aggregate collapses repeated trials into one point.
	Aggregate bool
}

// Join returns the inner join of the parallel and sequential
// measurement tables on Resolution.
//
// Columns other than Resolution that appear in both tables are
// renamed with ParallelSuffix and SequentialSuffix. Resolutions that
// appear in only one table are dropped. If a resolution has several
// rows in either table, the result has a row for every pairing of
// them. Rows are in parallel table order.
func Join(parallel, sequential *table.Table) (*table.Table, error) {
	if err := measure.Check(parallel, "parallel"); err != nil {
		return nil, err
	}
	if err := measure.Check(sequential, "sequential"); err != nil {
		return nil, err
	}
	var pg, sg table.Grouping = parallel, sequential
	for _, col := range lo.Intersect(parallel.Columns(), sequential.Columns()) {
		if col == measure.ColResolution {
			continue
		}
		pg = table.Rename(pg, col, col+ParallelSuffix)
		sg = table.Rename(sg, col, col+SequentialSuffix)
	}
	return table.Flatten(table.Join(pg, measure.ColResolution, sg, measure.ColResolution)), nil
}

// Speedup charts the speedup of parallel runs over sequential runs
// against the number of processes, with one series per resolution.
//
// The speedup of a joined row (see Join) is its sequential execution
// time divided by its parallel execution time. Series appear in the
// order their resolution first appears in the joined table.
//
// A point whose speedup is not finite is handled according to
// cfg.ZeroTime.
func Speedup(parallel, sequential *table.Table, cfg SpeedupConfig) (*Chart, error) {
	joined, err := Join(parallel, sequential)
	if err != nil {
		return nil, err
	}
	c := &Chart{
		Name:   "speedup_vs_processes",
		ID:     "speedup",
		Title:  "Speedup vs Number of Processes for Different Resolutions",
		XLabel: "Number of Processes",
		YLabel: "Speedup",
	}

	t := table.Flatten(table.MapCols(joined, func(seq, par, speedup []float64) {
		for i := range speedup {
			speedup[i] = seq[i] / par[i]
		}
	}, ColTimeSequential, ColTimeParallel)(ColSpeedup))

	if t.Len() > 0 {
		res := t.MustColumn(measure.ColResolution).([]int)
		procs := t.MustColumn(ColProcessesParallel).([]int)
		seq := t.MustColumn(ColTimeSequential).([]float64)
		par := t.MustColumn(ColTimeParallel).([]float64)
		for i, s := range t.MustColumn(ColSpeedup).([]float64) {
			if finite(s) {
				continue
			}
			err := &ZeroTimeError{res[i], procs[i], seq[i], par[i]}
			if cfg.ZeroTime == FailZeroTime {
				return nil, err
			}
			c.Warnings = append(c.Warnings, err)
		}
		if len(c.Warnings) > 0 {
			t = table.Flatten(table.Filter(t, finite, ColSpeedup))
		}
	}

	byRes := table.GroupBy(t, measure.ColResolution)
	for _, gid := range byRes.Tables() {
		label := fmt.Sprintf("Resolution %v", gid.Label())
		c.Series = append(c.Series, newSeries(label, byRes.Table(gid), ColProcessesParallel, ColSpeedup, cfg.Aggregate))
	}
	return c, nil
}

func finite(x float64) bool {
	return !math.IsInf(x, 0) && !math.IsNaN(x)
}
