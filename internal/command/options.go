// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/tfctl/awsops/internal/attrs"
	"github.com/tfctl/awsops/internal/output"
)

// outputOptions reads the rendering flags. defaultAttrs is applied before
// --attrs so the user can override or extend it.
func outputOptions(cmd *cli.Command, defaultAttrs string) (output.Options, error) {
	format, err := output.ParseFormat(cmd.String("output"))
	if err != nil {
		return output.Options{}, err
	}

	var list attrs.AttrList
	if err := list.Set(defaultAttrs); err != nil {
		return output.Options{}, fmt.Errorf("default attrs: %w", err)
	}
	if err := list.Set(cmd.String("attrs")); err != nil {
		return output.Options{}, fmt.Errorf("--attrs: %w", err)
	}

	return output.Options{
		Format:  format,
		Attrs:   list,
		Filter:  cmd.String("filter"),
		Sort:    cmd.String("sort"),
		Titles:  cmd.Bool("titles"),
		Color:   cmd.Bool("color"),
		Local:   cmd.Bool("local"),
		Padding: cmd.Int("padding"),
	}, nil
}
