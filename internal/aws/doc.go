// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package aws loads AWS SDK configuration and constructs the service clients
// used by commands: CodeGuru Profiler, Resilience Hub and S3. Commands depend
// on the narrow client interfaces declared here so tests can substitute
// fakes.
package aws
