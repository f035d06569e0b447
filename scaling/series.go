// Copyright 2026 The juliascale Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scaling

import (
	"github.com/aclements/go-gg/generic/slice"
	"github.com/aclements/go-gg/ggstat"
	"github.com/aclements/go-gg/table"
)

// Columns added by aggregateTrials. ggstat prefixes the aggregated
// column name.
const (
	medianPrefix = "median "
	minPrefix    = "min "
	maxPrefix    = "max "
	trialsCol    = "trials"
)

// newSeries returns the series labeled label whose points are the
// (x, y) columns of all rows in g, sorted by x. If aggregate is set,
// rows with equal x are collapsed into a single point.
func newSeries(label string, g table.Grouping, x, y string, aggregate bool) Series {
	s := Series{Label: label}
	t := table.Flatten(g)
	if t.Len() == 0 {
		return s
	}

	var xs, ys, los, his []float64
	var ns []int
	if aggregate {
		t = table.Flatten(table.SortBy(aggregateTrials(t, x, y), x))
		slice.Convert(&xs, t.MustColumn(x))
		slice.Convert(&ys, t.MustColumn(medianPrefix+y))
		slice.Convert(&los, t.MustColumn(minPrefix+y))
		slice.Convert(&his, t.MustColumn(maxPrefix+y))
		slice.Convert(&ns, t.MustColumn(trialsCol))
	} else {
		// SortBy is stable, so equal x values keep their
		// input order.
		t = table.Flatten(table.SortBy(t, x))
		slice.Convert(&xs, t.MustColumn(x))
		slice.Convert(&ys, t.MustColumn(y))
		los, his = ys, ys
	}

	s.Points = make([]Point, len(xs))
	for i := range xs {
		n := 1
		if ns != nil {
			n = ns[i]
		}
		s.Points[i] = Point{X: xs[i], Y: ys[i], Lo: los[i], Hi: his[i], N: n}
	}
	return s
}

// aggregateTrials groups the rows of t by column x and summarizes
// column y of each group by its median, minimum, maximum and trial
// count.
func aggregateTrials(t *table.Table, x, y string) table.Grouping {
	return ggstat.Agg(x)(
		ggstat.AggQuantile("median", 0.5, y),
		ggstat.AggMin(y),
		ggstat.AggMax(y),
		ggstat.AggCount(trialsCol),
	).F(t)
}
