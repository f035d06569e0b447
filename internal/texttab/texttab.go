// Copyright 2026 The juliascale Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package texttab lays out plain-text tables with aligned columns.
package texttab

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

// Table accumulates cells row by row and lays them out in Format.
//
// Methods that add to the table return the table so calls can be
// chained.
type Table struct {
	rows [][]cell
	cols int
}

type cell struct {
	value      string
	leftMargin string
	alignment  align
}

// A CellOption changes how a single cell is laid out.
type CellOption func(c *cell)

// LeftMargin sets the string printed before a cell. The left-most
// column has no margin by default; other columns have a single space.
func LeftMargin(x string) CellOption {
	return func(c *cell) {
		c.leftMargin = x
	}
}

// Right aligns a cell to the right of its column. Cells are
// left-aligned by default.
var Right CellOption = func(c *cell) { c.alignment = alignRight }

type align int

const (
	alignLeft align = iota
	alignRight
)

// pad pads s to width w according to a.
func (a align) pad(s string, w int) string {
	n := w - utf8.RuneCountInString(s)
	if n <= 0 {
		return s
	}
	if a == alignRight {
		return strings.Repeat(" ", n) + s
	}
	return s + strings.Repeat(" ", n)
}

// Row starts a new row.
func (t *Table) Row() *Table {
	t.rows = append(t.rows, nil)
	return t
}

// Cell adds a cell to the end of the current row.
func (t *Table) Cell(value string, opts ...CellOption) *Table {
	if len(t.rows) == 0 {
		t.Row()
	}
	r := &t.rows[len(t.rows)-1]
	c := cell{value: value, alignment: alignLeft}
	if len(*r) > 0 && value != "" {
		c.leftMargin = " "
	}
	for _, o := range opts {
		o(&c)
	}
	*r = append(*r, c)
	if len(*r) > t.cols {
		t.cols = len(*r)
	}
	return t
}

// Format lays out t and writes it to w. Trailing spaces are never
// printed.
func (t *Table) Format(w io.Writer) error {
	margins := make([]int, t.cols)
	widths := make([]int, t.cols)
	for _, r := range t.rows {
		for col, c := range r {
			margins[col] = max(margins[col], utf8.RuneCountInString(c.leftMargin))
			widths[col] = max(widths[col], utf8.RuneCountInString(c.value))
		}
	}

	var buf strings.Builder
	for _, r := range t.rows {
		line := ""
		for col, c := range r {
			m := strings.Repeat(" ", margins[col]-utf8.RuneCountInString(c.leftMargin)) + c.leftMargin
			line += m + c.alignment.pad(c.value, widths[col])
		}
		buf.WriteString(strings.TrimRight(line, " "))
		buf.WriteByte('\n')
	}
	_, err := io.WriteString(w, buf.String())
	if err != nil {
		return fmt.Errorf("writing table: %w", err)
	}
	return nil
}
