// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"os"
	"sort"
	"strings"

	"github.com/urfave/cli/v3"

	awsx "github.com/tfctl/awsops/internal/aws"
	"github.com/tfctl/awsops/internal/config"
	"github.com/tfctl/awsops/internal/meta"
)

// serviceCommands maps every service command name and alias to its SDK
// service id.
var serviceCommands = map[string]string{
	"profiler":      profilerService,
	"cgp":           profilerService,
	"resiliencehub": resilienceHubService,
	"rh":            resilienceHubService,
}

// Namespace returns the config namespace of an invocation: the canonical
// service command name for args[1], args[1] itself for other commands, or ""
// when it is a flag.
func Namespace(args []string) string {
	if len(args) < 2 || strings.HasPrefix(args[1], "-") {
		return ""
	}
	if svc, ok := serviceCommands[args[1]]; ok {
		return serviceCommandName(svc)
	}
	return args[1]
}

func serviceCommandName(service string) string {
	switch service {
	case profilerService:
		return "profiler"
	case resilienceHubService:
		return "resiliencehub"
	}
	return service
}

func InitApp(ctx context.Context, args []string) (*cli.Command, error) {
	// The arg[1] immediately following the binary is the service command and
	// also the namespace key used when retrieving config values.
	ns := Namespace(args)
	config.Config.Namespace = ns

	cfg, _ := config.Load() //nolint:errcheck
	m := meta.Meta{
		Args:    args,
		Config:  cfg,
		Context: ctx,
		Service: serviceCommands[ns],
		Clients: awsx.Connect,
		Stdin:   os.Stdin,
		Stdout:  os.Stdout,
		Stderr:  os.Stderr,
	}

	return NewApp(m), nil
}

// NewApp builds the command tree over m.
func NewApp(m meta.Meta) *cli.Command {
	app := &cli.Command{
		Name:      "awsops",
		Usage:     "AWS CodeGuru Profiler and Resilience Hub operations",
		Writer:    m.Stdout,
		ErrWriter: m.Stderr,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "version",
				Aliases:     []string{"v"},
				Usage:       "awsops version info",
				HideDefault: true,
			},
		},
	}

	app.Commands = append(app.Commands,
		profilerCommandBuilder(m),
		resilienceHubCommandBuilder(m),
		completionCommandBuilder(m),
	)

	sortCommands(app.Commands)

	return app
}

func profilerCommandBuilder(m meta.Meta) *cli.Command {
	m.Service = profilerService
	return serviceCommandBuilder(m, "profiler", "cgp", "Amazon CodeGuru Profiler operations", profilerOperations(), nil)
}

func resilienceHubCommandBuilder(m meta.Meta) *cli.Command {
	m.Service = resilienceHubService
	extras := []*cli.Command{
		artifactsCommandBuilder(m),
		diffCommandBuilder(m),
	}
	return serviceCommandBuilder(m, "resiliencehub", "rh", "AWS Resilience Hub operations", resilienceHubOperations(), extras)
}

func serviceCommandBuilder(m meta.Meta, name, alias, usage string, ops []commander, extras []*cli.Command) *cli.Command {
	cmd := &cli.Command{
		Name:      name,
		Aliases:   []string{alias},
		Usage:     usage,
		UsageText: "awsops " + name + " <operation> [options]",
		Metadata: map[string]any{
			"meta": m,
		},
	}
	for _, op := range ops {
		cmd.Commands = append(cmd.Commands, op.command(m))
	}
	cmd.Commands = append(cmd.Commands, extras...)
	return cmd
}

// sortCommands orders commands and their flags by name for the --help text.
func sortCommands(cmds []*cli.Command) {
	sort.Slice(cmds, func(i, j int) bool {
		return cmds[i].Name < cmds[j].Name
	})
	for _, cmd := range cmds {
		sort.Slice(cmd.Flags, func(i, j int) bool {
			return cmd.Flags[i].Names()[0] < cmd.Flags[j].Names()[0]
		})
		sortCommands(cmd.Commands)
	}
}
