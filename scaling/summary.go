// Copyright 2026 The juliascale Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scaling

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/aclements/go-moremath/mathx"
	"github.com/aclements/go-moremath/stats"
	"github.com/hpclab/juliascale/internal/texttab"
)

// FormatText writes a text table summarizing c to w.
//
// The table has one row per series and one column per distinct X
// value, followed by the geometric mean of the series' positive Y
// values. A cell with several points lists them all. An aggregated
// point is followed by the spread of its trials as a percentage of
// its median.
func FormatText(w io.Writer, c *Chart) error {
	if _, err := fmt.Fprintf(w, "%s\n", c.Title); err != nil {
		return err
	}

	var tab texttab.Table
	xs := c.Xs()
	tab.Row().Cell(c.XLabel + ":")
	for _, x := range xs {
		tab.Cell(formatX(x), texttab.Right)
	}
	tab.Cell("geomean", texttab.Right)

	for _, s := range c.Series {
		tab.Row().Cell(s.Label)
		for _, x := range xs {
			var cell []string
			for _, p := range s.Points {
				if p.X == x {
					cell = append(cell, formatY(p))
				}
			}
			if cell == nil {
				tab.Cell("-", texttab.Right)
				continue
			}
			tab.Cell(strings.Join(cell, ","), texttab.Right)
		}
		tab.Cell(geomean(s), texttab.Right)
	}
	if err := tab.Format(w); err != nil {
		return err
	}
	for _, warn := range c.Warnings {
		if _, err := fmt.Fprintf(w, "warning: %v\n", warn); err != nil {
			return err
		}
	}
	return nil
}

// FormatCSV writes the points of c to w as CSV, one row per point,
// with columns series, x, y, lo, hi and n.
func FormatCSV(w io.Writer, c *Chart) error {
	cw := csv.NewWriter(w)
	cw.Write([]string{"series", "x", "y", "lo", "hi", "n"})
	for _, s := range c.Series {
		for _, p := range s.Points {
			cw.Write([]string{
				s.Label,
				formatX(p.X),
				strconv.FormatFloat(p.Y, 'g', -1, 64),
				strconv.FormatFloat(p.Lo, 'g', -1, 64),
				strconv.FormatFloat(p.Hi, 'g', -1, 64),
				strconv.Itoa(p.N),
			})
		}
	}
	cw.Flush()
	return cw.Error()
}

func formatX(x float64) string {
	return strconv.FormatFloat(x, 'f', -1, 64)
}

func formatY(p Point) string {
	if p.N <= 1 {
		return fmt.Sprintf("%.3f", p.Y)
	}
	return fmt.Sprintf("%.3f ±%s", p.Y, pctRange(p))
}

// pctRange returns the range [p.Lo, p.Hi] as a percentage of p.Y.
func pctRange(p Point) string {
	if math.IsInf(p.Lo, 0) || math.IsInf(p.Hi, 0) {
		return "∞"
	}
	// The range can only be shown relative to the median if all
	// three have the same sign.
	sign := mathx.Sign(p.Y)
	if sign != mathx.Sign(p.Lo) || sign != mathx.Sign(p.Hi) {
		return "?"
	}
	if p.Y == 0 {
		return "0%"
	}
	v := math.Max(p.Hi/p.Y-1, 1-p.Lo/p.Y)
	return fmt.Sprintf("%.0f%%", 100*v)
}

func geomean(s Series) string {
	var ys []float64
	for _, p := range s.Points {
		if p.Y > 0 {
			ys = append(ys, p.Y)
		}
	}
	if len(ys) == 0 {
		return "-"
	}
	return fmt.Sprintf("%.3f", stats.GeoMean(ys))
}
