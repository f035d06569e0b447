// Copyright 2026 The juliascale Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package diff reports line differences between expected and actual
// test output.
package diff

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
)

// Diff returns a unified diff from want to got, or "" if they are
// equal. If the "diff" command is unavailable or fails without output,
// it describes both strings instead.
func Diff(want, got string) string {
	if want == got {
		return ""
	}
	cmd := "diff"
	if runtime.GOOS == "plan9" {
		cmd = "/bin/ape/diff"
	}
	if _, err := exec.LookPath(cmd); err != nil {
		return fmt.Sprintf("diff command unavailable\nwant: %q\ngot:  %q", want, got)
	}

	dir, err := os.MkdirTemp("", "juliascale-diff")
	if err != nil {
		return err.Error()
	}
	defer os.RemoveAll(dir)
	wantFile, gotFile := filepath.Join(dir, "want"), filepath.Join(dir, "got")
	if err := os.WriteFile(wantFile, []byte(want), 0666); err != nil {
		return err.Error()
	}
	if err := os.WriteFile(gotFile, []byte(got), 0666); err != nil {
		return err.Error()
	}

	data, err := exec.Command(cmd, "-u", wantFile, gotFile).CombinedOutput()
	if len(data) > 0 {
		// diff exits non-zero when the files differ.
		return string(data)
	}
	if err == nil {
		err = fmt.Errorf("%s reported no differences", cmd)
	}
	return fmt.Sprintf("%v\nwant: %q\ngot:  %q", err, want, got)
}
