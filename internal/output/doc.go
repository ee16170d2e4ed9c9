// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package output renders selected response values. An Emitter receives the
// projection of each page as it arrives and writes it as raw JSON lines, a
// JSON array, a YAML list or a text table. Only the table, and any output
// that has to be sorted, waits for the last page.
package output
