// Copyright 2026 The juliascale Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scaling

import (
	"fmt"

	"github.com/aclements/go-gg/table"
	"github.com/hpclab/juliascale/measure"
)

// DefaultResolution is the resolution charted by ProcessScaling when
// none is configured.
const DefaultResolution = 4000

// ProcessScalingConfig configures ProcessScaling.
type ProcessScalingConfig struct {
	Resolution int

	// Aggregate collapses repeated trials into one point.
	Aggregate bool
}

// ProcessScaling charts execution time against the number of
// processes for the single resolution cfg.Resolution.
//
// The chart always has exactly one series. It is empty if no row has
// that resolution.
func ProcessScaling(t *table.Table, cfg ProcessScalingConfig) (*Chart, error) {
	if err := measure.Check(t, ""); err != nil {
		return nil, err
	}
	res := cfg.Resolution
	c := &Chart{
		Name:   fmt.Sprintf("execution_time_vs_processes_for_resolution_%d", res),
		ID:     fmt.Sprintf("process-scaling-%d", res),
		Title:  fmt.Sprintf("Execution Time vs Number of Processes for Resolution = %d", res),
		XLabel: "Number of Processes",
		YLabel: "Execution Time (Seconds)",
	}
	rows := table.FilterEq(t, measure.ColResolution, res)
	label := fmt.Sprintf("Resolution = %d", res)
	c.Series = []Series{newSeries(label, rows, measure.ColProcesses, measure.ColExecutionTime, cfg.Aggregate)}
	return c, nil
}
