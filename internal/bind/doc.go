// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package bind maps command-line flags onto AWS SDK request fields.
//
// Every request field is described by a Param. Params become flags named in
// kebab case after the field (ProfilingGroupName -> --profiling-group-name).
// A Binder reads the parsed flags back and only yields a value for flags the
// caller actually set, so unset fields stay nil and are omitted from the
// request while an explicitly empty value is sent as given.
package bind
