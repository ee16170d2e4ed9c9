// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/tfctl/awsops/internal/command"
	"github.com/tfctl/awsops/internal/config"
	"github.com/tfctl/awsops/internal/log"
	"github.com/tfctl/awsops/internal/version"
)

// defaultSet is expanded when no @set argument is given.
const defaultSet = "defaults"

func main() {
	os.Exit(realMain())
}

// handleVersion checks for --version/-v and returns whether it was handled.
func handleVersion(args []string) bool {
	for _, a := range args {
		if a == "--version" || a == "-v" {
			fmt.Println(version.Version)
			return true
		}
	}
	return false
}

// handleNakedCommand appends --help if no command is provided.
func handleNakedCommand(args []string) []string {
	if len(args) <= 1 {
		return append(args, "--help")
	}
	return args
}

// processCommandArgs expands config sets and drops flags repeated by them.
func processCommandArgs(app *cli.Command, args []string) []string {
	if len(args) > 1 && args[1] == "completion" {
		return args
	}

	n := len(args)
	args = processSetOnly(args)
	log.Debugf("args after set processing: args=%v", args)

	if len(args) != n {
		args = deduplicateFlags(args, operationFlags(app, args))
		log.Debugf("args after dedupe: args=%v", args)
	}
	return args
}

// processSetOnly expands an @set argument in place with the <service>.<set>
// config list. Without one, <service>.defaults is injected right after the
// operation so that flags given on the command line come later and win.
func processSetOnly(args []string) []string {
	ns := command.Namespace(args)
	if ns == "" {
		return args
	}

	for i := 2; i < len(args); i++ {
		if strings.HasPrefix(args[i], "@") {
			set := args[i][1:]
			args = append(args[:i:i], args[i+1:]...)
			return injectConfigSet(args, ns+"."+set, i)
		}
	}

	idx := 3
	if len(args) < idx || strings.HasPrefix(args[2], "-") {
		return args
	}
	return injectConfigSet(args, ns+"."+defaultSet, idx)
}

// injectConfigSet splits each entry of the config list at key into fields
// and inserts them at insertIdx.
func injectConfigSet(args []string, key string, insertIdx int) []string {
	entries, _ := config.GetStringSlice(key, []string{})
	if len(entries) == 0 {
		return args
	}

	var expanded []string
	for _, entry := range entries {
		expanded = append(expanded, strings.Fields(entry)...)
	}
	log.Debugf("config set expanded: key=%s args=%v", key, expanded)

	out := make([]string, 0, len(args)+len(expanded))
	out = append(out, args[:insertIdx]...)
	out = append(out, expanded...)
	return append(out, args[insertIdx:]...)
}

// flagKind says how a flag spelling consumes the tokens after it.
type flagKind int

const (
	// kindUnknown flags own the next token when it does not start with "-".
	kindUnknown flagKind = iota
	kindBool
	kindValue
	kindRepeatable
)

// deduplicateFlags keeps the last occurrence of every flag after the
// command words. A value flag owns the next token even when it starts with
// "-", so that offsets like -24h stay attached. Repeatable flags are never
// dropped.
func deduplicateFlags(args []string, kinds map[string]flagKind) []string {
	if len(args) <= 2 {
		return args
	}

	type group struct {
		key    string
		tokens []string
	}

	var groups []group
	for i := 2; i < len(args); i++ {
		a := args[i]
		if !strings.HasPrefix(a, "-") || a == "-" {
			groups = append(groups, group{tokens: []string{a}})
			continue
		}

		key, _, inline := strings.Cut(a, "=")
		g := group{key: key, tokens: []string{a}}
		if !inline && i+1 < len(args) {
			switch kinds[key] {
			case kindValue, kindRepeatable:
				i++
				g.tokens = append(g.tokens, args[i])
			case kindUnknown:
				if !strings.HasPrefix(args[i+1], "-") {
					i++
					g.tokens = append(g.tokens, args[i])
				}
			}
		}
		groups = append(groups, g)
	}

	last := map[string]int{}
	for i, g := range groups {
		if g.key != "" {
			last[g.key] = i
		}
	}

	out := append([]string{}, args[:2]...)
	for i, g := range groups {
		if g.key != "" && kinds[g.key] != kindRepeatable && last[g.key] != i {
			continue
		}
		out = append(out, g.tokens...)
	}
	return out
}

// operationFlags returns the kind of every spelling of the flags of the
// operation named by args.
func operationFlags(app *cli.Command, args []string) map[string]flagKind {
	cmd := app
	for _, name := range args[1:] {
		if strings.HasPrefix(name, "-") {
			break
		}
		sub := cmd.Command(name)
		if sub == nil {
			break
		}
		cmd = sub
	}

	kinds := map[string]flagKind{}
	for _, f := range cmd.Flags {
		kind := kindValue
		switch f.(type) {
		case *cli.BoolFlag:
			kind = kindBool
		case *cli.StringSliceFlag, *cli.StringMapFlag:
			kind = kindRepeatable
		}
		for _, n := range f.Names() {
			if len(n) == 1 {
				kinds["-"+n] = kind
			} else {
				kinds["--"+n] = kind
			}
		}
	}
	return kinds
}

// initAndRunApp runs the app, returning the exit code.
func initAndRunApp(ctx context.Context, app *cli.Command, args []string) int {
	if err := app.Run(ctx, args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		log.Debugf("app run err: err=%v", err)
		return 2
	}
	return 0
}

func realMain() int {
	log.InitLogger()

	args := os.Args
	log.Debugf("args captured: args=%v", args)

	if handleVersion(args) {
		return 0
	}

	args = handleNakedCommand(args)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	app, err := command.InitApp(ctx, args)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		log.Debugf("app init err: err=%v", err)
		return 1
	}

	// If --help appears anywhere, skip argument processing and let the CLI
	// handle it.
	helpFound := false
	for _, a := range args {
		if a == "--help" || a == "-h" {
			helpFound = true
			break
		}
	}

	if !helpFound {
		args = processCommandArgs(app, args)
	}

	return initAndRunApp(ctx, app, args)
}
