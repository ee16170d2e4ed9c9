// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package meta

import (
	"context"
	"io"

	awsx "github.com/tfctl/awsops/internal/aws"
	"github.com/tfctl/awsops/internal/config"
)

// ClientFactory builds the service clients a command talks to.
type ClientFactory func(ctx context.Context, opts ...awsx.Option) (*awsx.Clients, error)

// Meta contains runtime metadata shared by commands. It carries CLI arguments,
// loaded configuration, context and the streams commands write to.
type Meta struct {
	Args    []string
	Config  config.Type
	Context context.Context
	// Service is the SDK service id the invocation targets
	// ("codeguruprofiler" or "resiliencehub"). Empty for top-level
	// invocations.
	Service string
	Clients ClientFactory
	Stdin   io.Reader
	Stdout  io.Writer
	Stderr  io.Writer
}
