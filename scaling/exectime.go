// Copyright 2026 The juliascale Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scaling

import (
	"fmt"

	"github.com/aclements/go-gg/table"
	"github.com/hpclab/juliascale/measure"
	"github.com/samber/lo"
)

// ExecutionTimeConfig configures ExecutionTime.
type ExecutionTimeConfig struct {
	// Resolutions is the allow-list of resolutions to chart.
	Resolutions []int

	// Processes lists the process counts to chart, one series
	// each, in this order.
	Processes []int

	// Aggregate collapses repeated trials into one point.
	Aggregate bool
}

// DefaultExecutionTimeConfig returns the configuration used by the
// harness's standard report.
func DefaultExecutionTimeConfig() ExecutionTimeConfig {
	return ExecutionTimeConfig{
		Resolutions: []int{500, 1000, 5000},
		Processes:   []int{2, 4, 8, 16},
	}
}

// ExecutionTime charts execution time against resolution, with one
// series per process count in cfg.Processes.
//
// Only rows whose resolution is in cfg.Resolutions are considered. A
// process count with no such rows yields an empty series.
func ExecutionTime(t *table.Table, cfg ExecutionTimeConfig) (*Chart, error) {
	if err := measure.Check(t, ""); err != nil {
		return nil, err
	}
	c := &Chart{
		Name:   "execution_time_vs_resolution_filtered",
		ID:     "execution-time",
		Title:  "Execution Time vs Resolution for Different Process Counts",
		XLabel: "Resolution (Number of Pixels)",
		YLabel: "Execution Time (Seconds)",
	}

	kept := table.Filter(t, func(res int) bool {
		return lo.Contains(cfg.Resolutions, res)
	}, measure.ColResolution)
	for _, procs := range cfg.Processes {
		rows := table.FilterEq(kept, measure.ColProcesses, procs)
		label := fmt.Sprintf("%d Processes", procs)
		c.Series = append(c.Series, newSeries(label, rows, measure.ColResolution, measure.ColExecutionTime, cfg.Aggregate))
	}
	return c, nil
}
