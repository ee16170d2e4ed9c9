// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"
	"reflect"
	"strings"

	"github.com/tidwall/gjson"
	"github.com/urfave/cli/v3"

	awsx "github.com/tfctl/awsops/internal/aws"
	"github.com/tfctl/awsops/internal/awserr"
	"github.com/tfctl/awsops/internal/bind"
	"github.com/tfctl/awsops/internal/console"
	"github.com/tfctl/awsops/internal/log"
	"github.com/tfctl/awsops/internal/meta"
	"github.com/tfctl/awsops/internal/output"
	"github.com/tfctl/awsops/internal/paginate"
	"github.com/tfctl/awsops/internal/selector"
)

// Operation binds one SDK API operation to a command. In and Out are the
// SDK's request and response structs.
type Operation[In, Out any] struct {
	// Name is the API operation name, e.g. "ListProfilingGroups". The command
	// name is its kebab-case form.
	Name   string
	Usage  string
	Params []bind.Param
	// DefaultSelect is used when --select is not given. Empty means the
	// operation emits nothing unless asked to.
	DefaultSelect string
	// DefaultAttrs seeds --attrs.
	DefaultAttrs string
	Destructive  bool

	// Build copies bound values into a new request.
	Build func(b *bind.Binder) *In
	// Call sends one request.
	Call func(ctx context.Context, c *awsx.Clients, in *In) (*Out, error)
	// Cursor is set for paginated operations.
	Cursor *paginate.Cursor[In, Out]
	// Extra holds operation specific flags that are not request fields.
	Extra []cli.Flag
	// Prepare runs after Build and may adjust the request from Extra flags.
	Prepare func(cmd *cli.Command, b *bind.Binder, in *In)
}

// commander is implemented by every Operation instantiation.
type commander interface {
	command(m meta.Meta) *cli.Command
}

func (op *Operation[In, Out]) command(m meta.Meta) *cli.Command {
	flags := bind.Flags(op.Params)
	if op.Cursor != nil {
		flags = append(flags, newPagingFlags()...)
	}
	if op.Destructive {
		flags = append(flags, forceFlag())
	}
	flags = append(flags, op.Extra...)
	flags = append(flags, NewGlobalFlags(op.DefaultSelect)...)
	flags = append(flags, NewAWSFlags(m.Service, configFile())...)

	return &cli.Command{
		Name:      bind.FlagName(op.Name),
		Usage:     op.Usage,
		UsageText: fmt.Sprintf("awsops %s %s [options]", serviceCommandName(m.Service), bind.FlagName(op.Name)),
		Metadata: map[string]any{
			"meta":      m,
			"operation": op.Name,
		},
		Flags: flags,
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return op.run(ctx, cmd, m)
		},
	}
}

// selectable lists the parameter names ^Param selectors may echo.
func (op *Operation[In, Out]) selectable() []string {
	names := bind.Names(op.Params)
	if op.Cursor != nil {
		names = append(names, "NextToken")
	}
	return names
}

func (op *Operation[In, Out]) run(ctx context.Context, cmd *cli.Command, m meta.Meta) error {
	log.Debugf("Executing action for %s %s", m.Service, op.Name)

	if cmd.Bool("schema") {
		output.DumpSchema(reflect.TypeOf((*Out)(nil)), m.Stdout)
		return nil
	}

	b := bind.NewBinder(cmd, op.Params)
	in := op.Build(b)
	if in == nil {
		in = new(In)
	}
	if op.Prepare != nil {
		op.Prepare(cmd, b, in)
	}

	if op.Cursor != nil && cmd.IsSet("next-token") {
		tok := cmd.String("next-token")
		op.Cursor.Set(in, &tok)
		b.Set("NextToken", tok)
	}

	sel, hasSel, err := op.selector(cmd)
	if err != nil {
		b.Fail("--select: %v", err)
	}

	// Default attrs describe the items of the default selection only.
	defaultAttrs := op.DefaultAttrs
	if cmd.IsSet("select") {
		defaultAttrs = ""
	}
	opts, err := outputOptions(cmd, defaultAttrs)
	if err != nil {
		b.Fail("%v", err)
	}

	if err := b.Err(); err != nil {
		return err
	}
	log.Debugf("request built: op=%s bound=%v", op.Name, b.Bound())

	if op.Destructive && !cmd.Bool("force") {
		if err := confirm(m, op.Name); err != nil {
			return err
		}
	}

	clients, err := connect(ctx, cmd, m)
	if err != nil {
		return err
	}

	return op.emit(ctx, cmd, m, clients, in, sel, hasSel, b.Bound(), opts)
}

// selector resolves --select, falling back to the default. hasSel is false
// when the resolved expression is empty.
func (op *Operation[In, Out]) selector(cmd *cli.Command) (selector.Selector, bool, error) {
	expr := op.DefaultSelect
	if cmd.IsSet("select") {
		expr = cmd.String("select")
	}
	if strings.TrimSpace(expr) == "" {
		return selector.Selector{}, false, nil
	}
	sel, err := selector.Parse(expr, op.selectable())
	return sel, err == nil, err
}

func (op *Operation[In, Out]) emit(
	ctx context.Context,
	cmd *cli.Command,
	m meta.Meta,
	clients *awsx.Clients,
	in *In,
	sel selector.Selector,
	hasSel bool,
	bound map[string]any,
	opts output.Options,
) error {
	interactive := cmd.Bool("interactive")
	manual := cmd.Bool("no-auto-iteration")

	call := func(ctx context.Context, req *In) (*Out, error) {
		return op.Call(ctx, clients, req)
	}

	emitter := output.NewEmitter(m.Stdout, opts)
	var (
		pages [][]byte
		last  *Out
		count int
	)

	for out, err := range paginate.Pages(ctx, in, call, op.Cursor, paginate.Options{Manual: manual}) {
		if err != nil {
			if hasSel {
				_ = emitter.Close()
			}
			return awserr.Friendly(err, awserr.ErrorContext{
				Service:   m.Service,
				Operation: op.Name,
				Region:    clients.Region,
			})
		}
		last = out
		count++

		raw, err := selector.ToJSON(out)
		if err != nil {
			return err
		}
		if interactive {
			pages = append(pages, raw)
		}
		if !hasSel {
			continue
		}

		var selected gjson.Result
		switch {
		case sel.Kind != selector.Param:
			selected = sel.ApplyJSON(raw)
		case count == 1:
			if selected, err = sel.Apply(nil, bound); err != nil {
				return err
			}
		}
		if err := emitter.Write(selected); err != nil {
			return err
		}
	}
	log.Debugf("pages done: op=%s pages=%d", op.Name, count)

	if hasSel {
		if err := emitter.Close(); err != nil {
			return err
		}
	}

	if manual {
		if tok := op.Cursor.Token(last); tok != "" {
			fmt.Fprintf(m.Stderr, "more results available; continue with --next-token %s\n", tok)
		}
	}

	if interactive {
		return runConsole(&console.Session{
			Pages:  pages,
			Params: op.selectable(),
			Bound:  bound,
		})
	}

	return nil
}

// runConsole is swapped in tests.
var runConsole = func(s *console.Session) error {
	return console.Run(s)
}

func connect(ctx context.Context, cmd *cli.Command, m meta.Meta) (*awsx.Clients, error) {
	factory := m.Clients
	if factory == nil {
		factory = awsx.Connect
	}

	var opts []awsx.Option
	if v := cmd.String("region"); v != "" {
		opts = append(opts, awsx.WithRegion(v))
	}
	if v := cmd.String("profile"); v != "" {
		opts = append(opts, awsx.WithProfile(v))
	}
	if v := cmd.String("endpoint-url"); v != "" {
		opts = append(opts, awsx.WithEndpointURL(v))
	}
	if n := cmd.Int("max-attempts"); n > 0 {
		opts = append(opts, awsx.WithMaxAttempts(n))
	}

	clients, err := factory(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to configure AWS client: %w", err)
	}
	return clients, nil
}

// pager builds the cursor of a paginated operation from its token fields.
func pager[In, Out any](req func(*In) **string, resp func(*Out) *string) *paginate.Cursor[In, Out] {
	return &paginate.Cursor[In, Out]{
		Get: resp,
		Set: func(in *In, tok *string) { *req(in) = tok },
	}
}
