// Copyright 2026 The juliascale Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package measure

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/aclements/go-gg/table"
)

// A SyntaxError represents a syntax error on a particular line of a
// measurement report.
type SyntaxError struct {
	FileName string
	Line     int
	Msg      string
}

func (e *SyntaxError) Pos() (fileName string, line int) {
	return e.FileName, e.Line
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s:%d: %s", e.FileName, e.Line, e.Msg)
}

// Load reads the measurement report at path. Errors opening path are
// returned as is, so callers can test them with errors.Is against
// fs.ErrNotExist.
func Load(path string) (*table.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Read(f, path)
}

// Read parses a measurement report from r. fileName is used in error
// messages; it is purely diagnostic.
//
// The first record names the columns. Every later record is a row,
// and rows keep their input order. Columns other than the required
// ones are kept, converted to []int or []float64 when every value in
// the column parses as one.
func Read(r io.Reader, fileName string) (*table.Table, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, &SyntaxError{fileName, 1, "missing header"}
	} else if err != nil {
		return nil, csvError(fileName, err)
	}
	seen := make(map[string]bool)
	for i, name := range header {
		name = strings.TrimSpace(name)
		if i == 0 {
			name = strings.TrimPrefix(name, "\ufeff")
		}
		if seen[name] {
			return nil, &SyntaxError{fileName, 1, fmt.Sprintf("duplicate column %q", name)}
		}
		seen[name] = true
		header[i] = name
	}

	var rows [][]string
	var lines []int
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		} else if err != nil {
			return nil, csvError(fileName, err)
		}
		line, _ := cr.FieldPos(0)
		rows = append(rows, rec)
		lines = append(lines, line)
	}

	// Let go-gg type the optional columns, then replace the
	// required ones with strictly parsed columns so type errors
	// point at the offending line.
	t := table.TableFromStrings(header, rows, true)
	if err := CheckColumns(t, fileName, Columns...); err != nil {
		return nil, err
	}
	b := table.NewBuilder(t)
	for i, name := range header {
		switch name {
		case ColResolution, ColProcesses:
			col := make([]int, len(rows))
			for j, row := range rows {
				v, err := strconv.Atoi(strings.TrimSpace(row[i]))
				if err != nil {
					return nil, &SyntaxError{fileName, lines[j], fmt.Sprintf("column %s: invalid integer %q", name, row[i])}
				}
				col[j] = v
			}
			b.Add(name, col)
		case ColExecutionTime:
			col := make([]float64, len(rows))
			for j, row := range rows {
				v, err := strconv.ParseFloat(strings.TrimSpace(row[i]), 64)
				if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
					return nil, &SyntaxError{fileName, lines[j], fmt.Sprintf("column %s: invalid number %q", name, row[i])}
				}
				col[j] = v
			}
			b.Add(name, col)
		}
	}
	return b.Done(), nil
}

// csvError converts a *csv.ParseError into a *SyntaxError.
func csvError(fileName string, err error) error {
	var pe *csv.ParseError
	if errors.As(err, &pe) {
		return &SyntaxError{fileName, pe.Line, pe.Err.Error()}
	}
	return fmt.Errorf("%s: %w", fileName, err)
}
