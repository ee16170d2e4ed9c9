// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package console is the --interactive prompt. After an operation finishes,
// its response pages are merged and the user types selector expressions
// (ProfilingGroups.#.Name, *, ^ProfilingGroupName) or, after a leading /,
// HCL expressions over the same data (/length(ProfilingGroups)).
package console
