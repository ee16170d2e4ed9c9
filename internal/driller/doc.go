// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package driller walks a JSON document along a loose dot path. Keys match
// case-insensitively so that SDK field names (ProfilingGroupName) can be
// written however the user likes (profilinggroupname). Array segments accept
// an index (Items[2]), a wildcard (Items[*]) or nothing, in which case a
// single element array is unwrapped.
package driller
