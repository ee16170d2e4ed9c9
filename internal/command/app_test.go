// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package command

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"

	"github.com/tfctl/awsops/internal/meta"
)

func TestNamespace(t *testing.T) {
	tests := []struct {
		args []string
		want string
	}{
		{args: []string{"awsops"}, want: ""},
		{args: []string{"awsops", "--version"}, want: ""},
		{args: []string{"awsops", "profiler", "list-profiling-groups"}, want: "profiler"},
		{args: []string{"awsops", "cgp"}, want: "profiler"},
		{args: []string{"awsops", "rh", "list-apps"}, want: "resiliencehub"},
		{args: []string{"awsops", "resiliencehub"}, want: "resiliencehub"},
		{args: []string{"awsops", "completion", "bash"}, want: "completion"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Namespace(tt.args), "%v", tt.args)
	}
}

func findCommand(cmds []*cli.Command, name string) *cli.Command {
	for _, c := range cmds {
		if c.Name == name {
			return c
		}
	}
	return nil
}

func TestNewApp_Tree(t *testing.T) {
	isolate(t)
	app := NewApp(meta.Meta{})

	profiler := findCommand(app.Commands, "profiler")
	require.NotNil(t, profiler)
	assert.Equal(t, []string{"cgp"}, profiler.Aliases)
	assert.Len(t, profiler.Commands, 23)

	rh := findCommand(app.Commands, "resiliencehub")
	require.NotNil(t, rh)
	assert.Equal(t, []string{"rh"}, rh.Aliases)
	assert.Len(t, rh.Commands, 43+2)

	for _, name := range []string{
		"list-apps",
		"import-resources-to-draft-app-version",
		"list-sop-recommendations",
		"get-recommendation-template-artifacts",
		"diff-app-versions",
	} {
		assert.NotNil(t, findCommand(rh.Commands, name), name)
	}

	list := findCommand(profiler.Commands, "list-profiling-groups")
	require.NotNil(t, list)
	var names []string
	for _, f := range list.Flags {
		names = append(names, f.Names()[0])
	}
	assert.Contains(t, names, "next-token")
	assert.Contains(t, names, "no-auto-iteration")
	assert.Contains(t, names, "include-description")
	assert.NotContains(t, names, "force")
	assert.IsIncreasing(t, names)

	del := findCommand(profiler.Commands, "delete-profiling-group")
	require.NotNil(t, del)
	var delNames []string
	for _, f := range del.Flags {
		delNames = append(delNames, f.Names()[0])
	}
	assert.Contains(t, delNames, "force")
}

func TestCompletion(t *testing.T) {
	tests := []struct {
		shell string
		want  []string
	}{
		{shell: "bash", want: []string{
			"complete -F _awsops awsops",
			"profiler|cgp)",
			"list-profiling-groups) opts=",
			"--no-auto-iteration",
		}},
		{shell: "zsh", want: []string{
			"#compdef awsops",
			"resiliencehub|rh)",
			"diff-app-versions) compadd --",
		}},
	}

	for _, tt := range tests {
		t.Run(tt.shell, func(t *testing.T) {
			isolate(t)
			h := newHarness()
			stdout, stderr, err := h.run(t, "completion", tt.shell)
			requireNoErr(t, err, stderr)
			for _, w := range tt.want {
				assert.Contains(t, stdout, w)
			}
		})
	}

	t.Run("unknown shell", func(t *testing.T) {
		isolate(t)
		t.Setenv("SHELL", "/bin/fish")
		h := newHarness()
		stdout, stderr, err := h.run(t, "completion")
		require.NoError(t, err)
		assert.Empty(t, stdout)
		assert.Contains(t, stderr, "usage: awsops completion")
	})
}

func TestValidators(t *testing.T) {
	assert.NoError(t, FlagValidators("json", OutputValidator))
	assert.NoError(t, FlagValidators("raw", OutputValidator))
	assert.Error(t, FlagValidators("xml", OutputValidator))
	assert.Error(t, OutputValidator(3))

	dir := t.TempDir()
	assert.NoError(t, RootDirValidator(""))
	assert.NoError(t, RootDirValidator(dir))
	assert.NoError(t, RootDirValidator(dir+"::prod"))
	assert.Error(t, RootDirValidator(dir+"/missing"))
}

func TestOutputFlag_Environment(t *testing.T) {
	isolate(t)
	t.Setenv("AWSOPS_OUTPUT", "raw")

	h := newHarness()
	h.clients.Profiler = &fakeProfiler{listPages: twoGroupPages()[1:]}

	stdout, stderr, err := h.run(t, "profiler", "list-profiling-groups")
	requireNoErr(t, err, stderr)
	assert.Equal(t, "[\"charlie\"]\n", stdout)
}
