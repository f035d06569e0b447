// Copyright 2026 The juliascale Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package measure

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
)

// header is the column order written by the benchmark harness.
var header = []string{ColProcesses, ColResolution, ColExecutionTime}

func record(r Row) []string {
	return []string{
		strconv.Itoa(r.Processes),
		strconv.Itoa(r.Resolution),
		strconv.FormatFloat(r.ExecutionTime, 'f', 6, 64),
	}
}

// Write writes a header followed by rows to w. Execution times are
// written with six digits after the decimal point.
func Write(w io.Writer, rows []Row) error {
	cw := csv.NewWriter(w)
	cw.Write(header)
	for _, r := range rows {
		cw.Write(record(r))
	}
	cw.Flush()
	return cw.Error()
}

// Append appends r to the report at path, creating the file if
// necessary. The header is written only if the file is empty.
func Append(path string, r Row) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_APPEND|os.O_CREATE, 0666)
	if err != nil {
		return err
	}
	fi, err := f.Stat()
	if err != nil {
		f.Close()
		return err
	}
	cw := csv.NewWriter(f)
	if fi.Size() == 0 {
		cw.Write(header)
	}
	cw.Write(record(r))
	cw.Flush()
	if err := cw.Error(); err != nil {
		f.Close()
		return fmt.Errorf("appending to %s: %w", path, err)
	}
	return f.Close()
}
