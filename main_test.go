// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tfctl/awsops/internal/command"
	"github.com/tfctl/awsops/internal/config"
	"github.com/tfctl/awsops/internal/meta"
)

func TestDeduplicateFlags(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		kinds    map[string]flagKind
		expected []string
	}{
		{
			name:     "empty args",
			args:     []string{},
			expected: []string{},
		},
		{
			name:     "only program and command",
			args:     []string{"awsops", "rh"},
			expected: []string{"awsops", "rh"},
		},
		{
			name:     "no duplicates",
			args:     []string{"awsops", "rh", "list-apps", "--output", "text", "--titles"},
			expected: []string{"awsops", "rh", "list-apps", "--output", "text", "--titles"},
		},
		{
			name:     "duplicate flag with value - last wins",
			args:     []string{"awsops", "rh", "list-apps", "--output", "json", "--titles", "--output", "text"},
			expected: []string{"awsops", "rh", "list-apps", "--titles", "--output", "text"},
		},
		{
			name:     "duplicate boolean flag",
			args:     []string{"awsops", "rh", "--titles", "--local", "--titles"},
			expected: []string{"awsops", "rh", "--local", "--titles"},
		},
		{
			name:     "duplicate flag with equals syntax",
			args:     []string{"awsops", "rh", "--output=json", "--titles", "--output=text"},
			expected: []string{"awsops", "rh", "--titles", "--output=text"},
		},
		{
			name:     "mixed equals and space syntax - same flag",
			args:     []string{"awsops", "rh", "--output=json", "--output", "text"},
			expected: []string{"awsops", "rh", "--output", "text"},
		},
		{
			name:     "multiple different flags with duplicates",
			args:     []string{"awsops", "cgp", "--region", "us-east-1", "--profile", "a", "--region", "eu-west-1", "--profile", "b"},
			expected: []string{"awsops", "cgp", "--region", "eu-west-1", "--profile", "b"},
		},
		{
			name:     "positional after flags",
			args:     []string{"awsops", "rh", "--output", "json", "list-apps", "--output", "text"},
			expected: []string{"awsops", "rh", "list-apps", "--output", "text"},
		},
		{
			name:     "short flags deduplicated",
			args:     []string{"awsops", "rh", "-o", "json", "-o", "text"},
			expected: []string{"awsops", "rh", "-o", "text"},
		},
		{
			name:     "different flags not affected",
			args:     []string{"awsops", "rh", "--color", "--no-color"},
			expected: []string{"awsops", "rh", "--color", "--no-color"},
		},
		{
			name:     "triple duplicate",
			args:     []string{"awsops", "rh", "--output", "a", "--output", "b", "--output", "c"},
			expected: []string{"awsops", "rh", "--output", "c"},
		},
		{
			name:     "repeatable kept",
			args:     []string{"awsops", "rh", "tag-resource", "--tags", "a=1", "--tags", "b=2", "-o", "raw", "-o", "json"},
			kinds:    map[string]flagKind{"--tags": kindRepeatable},
			expected: []string{"awsops", "rh", "tag-resource", "--tags", "a=1", "--tags", "b=2", "-o", "json"},
		},
		{
			name:     "signed offsets stay with value flags",
			args:     []string{"awsops", "cgp", "list-profile-times", "--start-time", "-24h", "--end-time", "-1h", "--start-time", "-48h"},
			kinds:    map[string]flagKind{"--start-time": kindValue, "--end-time": kindValue},
			expected: []string{"awsops", "cgp", "list-profile-times", "--end-time", "-1h", "--start-time", "-48h"},
		},
		{
			name:     "bool flag does not own the next word",
			args:     []string{"awsops", "rh", "--titles", "list-apps", "--titles"},
			kinds:    map[string]flagKind{"--titles": kindBool},
			expected: []string{"awsops", "rh", "list-apps", "--titles"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, deduplicateFlags(tt.args, tt.kinds))
		})
	}
}

// withConfig points the config loader at a temp file holding body.
func withConfig(t *testing.T, body string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "awsops.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	t.Setenv("AWSOPS_CFG_FILE", path)

	saved := config.Config
	config.Config = config.Type{}
	t.Cleanup(func() { config.Config = saved })
}

const setsConfig = `
resiliencehub:
  defaults:
    - --output json
    - --titles
  wide:
    - --attrs Name,AppArn
profiler:
  quiet:
    - -o raw
`

func TestProcessSetOnly(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		expected []string
	}{
		{
			name:     "defaults after operation",
			args:     []string{"awsops", "rh", "list-apps", "-o", "text"},
			expected: []string{"awsops", "rh", "list-apps", "--output", "json", "--titles", "-o", "text"},
		},
		{
			name:     "explicit set in place",
			args:     []string{"awsops", "resiliencehub", "list-apps", "@wide", "--sort", "Name"},
			expected: []string{"awsops", "resiliencehub", "list-apps", "--attrs", "Name,AppArn", "--sort", "Name"},
		},
		{
			name:     "service alias namespace",
			args:     []string{"awsops", "cgp", "list-profiling-groups", "@quiet"},
			expected: []string{"awsops", "cgp", "list-profiling-groups", "-o", "raw"},
		},
		{
			name:     "unknown set removes the marker",
			args:     []string{"awsops", "cgp", "list-profiling-groups", "@nope"},
			expected: []string{"awsops", "cgp", "list-profiling-groups"},
		},
		{
			name:     "no defaults for service",
			args:     []string{"awsops", "cgp", "list-profiling-groups"},
			expected: []string{"awsops", "cgp", "list-profiling-groups"},
		},
		{
			name:     "flag in operation position",
			args:     []string{"awsops", "rh", "--help"},
			expected: []string{"awsops", "rh", "--help"},
		},
		{
			name:     "no service",
			args:     []string{"awsops", "--version"},
			expected: []string{"awsops", "--version"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			withConfig(t, setsConfig)
			assert.Equal(t, tt.expected, processSetOnly(tt.args))
		})
	}
}

func TestProcessCommandArgs(t *testing.T) {
	withConfig(t, `
resiliencehub:
  defaults:
    - --tags owner=platform
    - -o json
`)
	app := command.NewApp(meta.Meta{})

	got := processCommandArgs(app, []string{"awsops", "rh", "tag-resource", "--resource-arn", "arn:x", "--tags", "env=prod", "-o", "raw"})
	assert.Equal(t, []string{
		"awsops", "rh", "tag-resource",
		"--tags", "owner=platform",
		"--resource-arn", "arn:x",
		"--tags", "env=prod",
		"-o", "raw",
	}, got)

	completion := []string{"awsops", "completion", "bash"}
	assert.Equal(t, completion, processCommandArgs(app, completion))
}

func TestOperationFlags(t *testing.T) {
	withConfig(t, "{}\n")
	app := command.NewApp(meta.Meta{})

	got := operationFlags(app, []string{"awsops", "cgp", "create-profiling-group", "--tags", "a=b"})
	assert.Equal(t, kindRepeatable, got["--tags"])
	assert.Equal(t, kindValue, got["--profiling-group-name"])
	assert.Equal(t, kindBool, got["-t"], "global bool flag alias")

	got = operationFlags(app, []string{"awsops", "rh", "untag-resource"})
	assert.Equal(t, kindRepeatable, got["--tag-keys"])

	got = operationFlags(app, []string{"awsops", "cgp", "list-profile-times"})
	assert.Equal(t, kindValue, got["--start-time"])

	assert.Empty(t, operationFlags(app, []string{"awsops", "nope"}))
}

func TestProcessCommandArgs_RelativeTimes(t *testing.T) {
	withConfig(t, `
profiler:
  defaults:
    - --start-time -24h
    - --period PT5M
`)
	app := command.NewApp(meta.Meta{})

	got := processCommandArgs(app, []string{"awsops", "profiler", "list-profile-times",
		"--profiling-group-name", "pg", "--start-time", "-2h", "--end-time", "-1h"})
	assert.Equal(t, []string{
		"awsops", "profiler", "list-profile-times",
		"--period", "PT5M",
		"--profiling-group-name", "pg",
		"--start-time", "-2h",
		"--end-time", "-1h",
	}, got)
}

func TestHandleNakedCommand(t *testing.T) {
	assert.Equal(t, []string{"awsops", "--help"}, handleNakedCommand([]string{"awsops"}))
	assert.Equal(t, []string{"awsops", "rh"}, handleNakedCommand([]string{"awsops", "rh"}))
}
