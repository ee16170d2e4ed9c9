// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package differ renders a structural diff between two JSON documents, such
// as two Resilience Hub app version templates, and offers a terminal picker
// for choosing the two versions to compare.
package differ
