// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package command defines the CLI command set for awsops. Each API operation
// of CodeGuru Profiler and Resilience Hub is an Operation value: its params
// become flags, bound values are copied into the SDK request, pages are
// fetched with internal/paginate and the selected part of every response is
// emitted as it arrives.
package command
