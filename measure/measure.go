// Copyright 2026 The juliascale Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package measure reads and writes the execution time reports
// produced by the Julia set benchmark harness.
//
// A report is a CSV file with a header row naming its columns. Every
// report has at least the columns Resolution (the image side length
// in pixels), Processes (the number of workers) and ExecutionTime
// (wall-clock seconds). Each data row records one benchmark trial.
//
// Reports are loaded into a go-gg table.Table so they can be
// filtered, joined and grouped by column name. The required columns
// are always typed: Resolution and Processes are []int and
// ExecutionTime is []float64.
package measure

import (
	"fmt"

	"github.com/aclements/go-gg/table"
)

// Column names of a measurement report.
const (
	ColResolution    = "Resolution"
	ColProcesses     = "Processes"
	ColExecutionTime = "ExecutionTime"
)

// Columns lists the required columns of a measurement table.
var Columns = []string{ColResolution, ColProcesses, ColExecutionTime}

// A Row is a single benchmark trial.
type Row struct {
	Resolution    int
	Processes     int
	ExecutionTime float64 // seconds
}

func (r Row) String() string {
	return fmt.Sprintf("Resolution=%d Processes=%d ExecutionTime=%g", r.Resolution, r.Processes, r.ExecutionTime)
}

// FromRows returns a measurement table holding rows in order.
func FromRows(rows []Row) *table.Table {
	res := make([]int, len(rows))
	procs := make([]int, len(rows))
	times := make([]float64, len(rows))
	for i, r := range rows {
		res[i], procs[i], times[i] = r.Resolution, r.Processes, r.ExecutionTime
	}
	return new(table.Builder).
		Add(ColResolution, res).
		Add(ColProcesses, procs).
		Add(ColExecutionTime, times).
		Done()
}

// Rows returns the rows of measurement table t in order. It panics
// if t lacks one of the required columns or if they are not typed as
// described in the package documentation.
func Rows(t *table.Table) []Row {
	if t.Len() == 0 {
		return nil
	}
	res := t.MustColumn(ColResolution).([]int)
	procs := t.MustColumn(ColProcesses).([]int)
	times := t.MustColumn(ColExecutionTime).([]float64)
	rows := make([]Row, t.Len())
	for i := range rows {
		rows[i] = Row{res[i], procs[i], times[i]}
	}
	return rows
}

// CheckColumns returns a *SchemaError naming the first of cols that
// is missing from t. name is used in the error and is purely
// diagnostic.
func CheckColumns(t *table.Table, name string, cols ...string) error {
	have := make(map[string]bool)
	if t != nil {
		for _, c := range t.Columns() {
			have[c] = true
		}
	}
	for _, c := range cols {
		if !have[c] {
			return &SchemaError{File: name, Column: c}
		}
	}
	return nil
}

// Check verifies that t has the required measurement columns with
// their expected types.
func Check(t *table.Table, name string) error {
	if err := CheckColumns(t, name, Columns...); err != nil {
		return err
	}
	for _, col := range Columns {
		var ok bool
		switch c := t.Column(col); col {
		case ColExecutionTime:
			_, ok = c.([]float64)
		default:
			_, ok = c.([]int)
		}
		if !ok {
			return &SchemaError{File: name, Column: col, Type: fmt.Sprintf("%T", t.Column(col))}
		}
	}
	return nil
}

// A SchemaError reports that a measurement table lacks a required
// column or that the column has the wrong type.
type SchemaError struct {
	File   string
	Column string
	Type   string // Type of the column, if it exists
}

func (e *SchemaError) Error() string {
	msg := fmt.Sprintf("missing column %q", e.Column)
	if e.Type != "" {
		msg = fmt.Sprintf("column %q has type %s", e.Column, e.Type)
	}
	if e.File == "" {
		return msg
	}
	return e.File + ": " + msg
}
