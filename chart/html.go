// Copyright 2026 The juliascale Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/hpclab/juliascale/scaling"
)

// PageTitle is the title of pages written by WriteHTML.
const PageTitle = "Julia set scaling"

// WriteHTML writes an interactive HTML page with one line chart per
// chart in cs, in order.
func WriteHTML(w io.Writer, cs ...*scaling.Chart) error {
	page := components.NewPage()
	page.SetPageTitle(PageTitle)
	page.SetLayout("flex")
	for _, c := range cs {
		page.AddCharts(lineChart(c))
	}
	return page.Render(w)
}

// WriteHTMLFile writes the page produced by WriteHTML to path
// atomically.
func WriteHTMLFile(path string, cs ...*scaling.Chart) error {
	return writeAtomic(path, func(w io.Writer) error {
		return WriteHTML(w, cs...)
	})
}

func lineChart(c *scaling.Chart) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		// A fixed chart ID keeps the page reproducible.
		charts.WithInitializationOpts(opts.Initialization{ChartID: c.Name}),
		charts.WithTitleOpts(opts.Title{Title: c.Title}),
		charts.WithXAxisOpts(opts.XAxis{Name: c.XLabel, Type: "value"}),
		charts.WithYAxisOpts(opts.YAxis{Name: c.YLabel, Type: "value"}),
		charts.WithAnimation(false))

	for _, s := range c.Series {
		data := make([]opts.LineData, len(s.Points))
		for i, p := range s.Points {
			data[i] = opts.LineData{Value: []float64{p.X, p.Y}}
		}
		line.AddSeries(s.Label, data)
	}
	return line
}
