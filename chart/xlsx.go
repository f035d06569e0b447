// Copyright 2026 The juliascale Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"fmt"
	"io"

	"github.com/hpclab/juliascale/scaling"
	"github.com/xuri/excelize/v2"
)

// WorkbookHeader is the header row of every sheet written by
// WriteWorkbook.
var WorkbookHeader = []interface{}{"Series", "X", "Y", "Lo", "Hi", "N"}

// WriteWorkbook writes a spreadsheet with one sheet per chart in cs,
// named by the chart's ID. Each sheet lists the chart's points in
// series order below WorkbookHeader, and holds a native scatter chart
// of them.
func WriteWorkbook(w io.Writer, cs ...*scaling.Chart) error {
	f := excelize.NewFile()
	defer f.Close()

	const defaultSheet = "Sheet1"
	for i, c := range cs {
		if i == 0 {
			if err := f.SetSheetName(defaultSheet, c.ID); err != nil {
				return err
			}
		} else if _, err := f.NewSheet(c.ID); err != nil {
			return err
		}
		if err := writeSheet(f, c); err != nil {
			return fmt.Errorf("sheet %s: %w", c.ID, err)
		}
	}
	_, err := f.WriteTo(w)
	return err
}

// WriteWorkbookFile writes the workbook produced by WriteWorkbook to
// path atomically.
func WriteWorkbookFile(path string, cs ...*scaling.Chart) error {
	return writeAtomic(path, func(w io.Writer) error {
		return WriteWorkbook(w, cs...)
	})
}

func writeSheet(f *excelize.File, c *scaling.Chart) error {
	sheet := c.ID
	if err := f.SetSheetRow(sheet, "A1", &WorkbookHeader); err != nil {
		return err
	}

	xc := &excelize.Chart{
		Type:  excelize.Scatter,
		Title: []excelize.RichTextRun{{Text: c.Title}},
		XAxis: excelize.ChartAxis{Title: []excelize.RichTextRun{{Text: c.XLabel}}},
		YAxis: excelize.ChartAxis{Title: []excelize.RichTextRun{{Text: c.YLabel}}},
	}
	row := 2
	for _, s := range c.Series {
		first := row
		for _, p := range s.Points {
			cell, err := excelize.CoordinatesToCellName(1, row)
			if err != nil {
				return err
			}
			vals := []interface{}{s.Label, p.X, p.Y, p.Lo, p.Hi, p.N}
			if err := f.SetSheetRow(sheet, cell, &vals); err != nil {
				return err
			}
			row++
		}
		if row == first {
			continue
		}
		xc.Series = append(xc.Series, excelize.ChartSeries{
			Name:       s.Label,
			Categories: fmt.Sprintf("'%s'!$B$%d:$B$%d", sheet, first, row-1),
			Values:     fmt.Sprintf("'%s'!$C$%d:$C$%d", sheet, first, row-1),
		})
	}
	if len(xc.Series) == 0 {
		return nil
	}
	return f.AddChart(sheet, "H2", xc)
}
