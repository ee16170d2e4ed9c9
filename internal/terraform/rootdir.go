// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package terraform

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ParseRootDir splits a "dir[::workspace]" arg into an absolute root module
// directory and an optional workspace override. The directory must exist.
func ParseRootDir(arg string) (string, string, error) {
	if arg == "" {
		return "", "", os.ErrInvalid
	}

	dir, workspace, _ := strings.Cut(arg, "::")
	if dir == "" {
		dir = "."
	}

	dir, err := filepath.Abs(dir)
	if err != nil {
		return "", "", err
	}

	fi, err := os.Stat(dir)
	if err != nil {
		return "", "", err
	}
	if !fi.IsDir() {
		return "", "", fmt.Errorf("%s is not a directory", dir)
	}

	return dir, workspace, nil
}
