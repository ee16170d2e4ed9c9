// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package bind

import (
	"fmt"
	"strings"

	"github.com/iancoleman/strcase"
	"github.com/urfave/cli/v3"
)

// Kind is the shape of a request field as seen on the command line.
type Kind int

const (
	String Kind = iota
	Int
	Bool
	Time
	Enum
	StringList
	StringMap
	JSON
	Blob
)

func (k Kind) String() string {
	return [...]string{"string", "int", "bool", "time", "enum", "list", "map", "json", "blob"}[k]
}

// Param describes one request field.
type Param struct {
	// Name is the request field name, e.g. "ProfilingGroupName". Flattened
	// members of nested structures use an underscore, e.g.
	// "AgentOrchestrationConfig_ProfilingEnabled".
	Name     string
	Kind     Kind
	Usage    string
	Required bool
	// Values lists the accepted literals of an Enum param. It is shown in
	// help and used for validation.
	Values []string
	// Aliases are extra flag names.
	Aliases []string
}

// FlagName returns the kebab-case flag name for the field.
func (p Param) FlagName() string {
	return FlagName(p.Name)
}

// FlagName converts a request field name into its flag name.
func FlagName(field string) string {
	return strcase.ToKebab(field)
}

// Flag builds the cli flag for the param.
func (p Param) Flag() cli.Flag {
	usage := p.Usage
	if usage == "" {
		usage = strcase.ToDelimited(p.Name, ' ')
	}
	switch p.Kind {
	case Enum:
		usage = fmt.Sprintf("%s (%s)", usage, strings.Join(p.Values, "|"))
	case Time:
		usage += " (RFC3339, YYYY-MM-DD or offset like -24h)"
	case JSON, Blob:
		usage += " (literal or @file)"
	case StringMap:
		usage += " (key=value)"
	}
	if p.Required {
		usage += " [required]"
	}

	name := p.FlagName()
	switch p.Kind {
	case Int:
		return &cli.IntFlag{Name: name, Aliases: p.Aliases, Usage: usage, HideDefault: true}
	case Bool:
		return &cli.BoolFlag{Name: name, Aliases: p.Aliases, Usage: usage, HideDefault: true}
	case StringList:
		return &cli.StringSliceFlag{Name: name, Aliases: p.Aliases, Usage: usage}
	case StringMap:
		return &cli.StringMapFlag{Name: name, Aliases: p.Aliases, Usage: usage}
	default:
		return &cli.StringFlag{Name: name, Aliases: p.Aliases, Usage: usage}
	}
}

// Flags builds the flags for a param list.
func Flags(params []Param) []cli.Flag {
	flags := make([]cli.Flag, 0, len(params))
	for _, p := range params {
		flags = append(flags, p.Flag())
	}
	return flags
}

// Names returns the field names of a param list.
func Names(params []Param) []string {
	names := make([]string, 0, len(params))
	for _, p := range params {
		names = append(names, p.Name)
	}
	return names
}
