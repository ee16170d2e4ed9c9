// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package differ

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/yudai/gojsondiff"
	"github.com/yudai/gojsondiff/formatter"

	"github.com/tfctl/awsops/internal/log"
)

// Options tune a Diff.
type Options struct {
	// Ignore lists top level keys dropped from both documents before
	// comparing.
	Ignore []string
	Color  bool
}

// Diff writes the difference between left and right to w and reports whether
// they differ. Both documents must be JSON objects.
func Diff(w io.Writer, left, right []byte, opts Options) (bool, error) {
	if len(left) == 0 || len(right) == 0 {
		return false, fmt.Errorf("nothing to compare")
	}
	log.Debugf("diff: left=%d right=%d", len(left), len(right))

	var ldoc, rdoc map[string]interface{}
	if err := json.Unmarshal(left, &ldoc); err != nil {
		return false, fmt.Errorf("failed to unmarshal left document: %w", err)
	}
	if err := json.Unmarshal(right, &rdoc); err != nil {
		return false, fmt.Errorf("failed to unmarshal right document: %w", err)
	}

	for _, key := range opts.Ignore {
		if key = strings.TrimSpace(key); key != "" {
			delete(ldoc, key)
			delete(rdoc, key)
		}
	}

	delta := gojsondiff.New().CompareObjects(ldoc, rdoc)
	if !delta.Modified() {
		fmt.Fprintln(w, "The versions are identical.")
		return false, nil
	}

	config := formatter.AsciiFormatterConfig{
		ShowArrayIndex: false,
		Coloring:       opts.Color,
	}

	diffString, err := formatter.NewAsciiFormatter(ldoc, config).Format(delta)
	if err != nil {
		return true, fmt.Errorf("failed to format diff: %w", err)
	}

	fmt.Fprintln(w, strings.TrimRight(diffString, "\n"))
	return true, nil
}
