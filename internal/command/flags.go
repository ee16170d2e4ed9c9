// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	altsrc "github.com/urfave/cli-altsrc/v3"
	yaml "github.com/urfave/cli-altsrc/v3/yaml"
	"github.com/urfave/cli/v3"

	"github.com/tfctl/awsops/internal/config"
)

// NewGlobalFlags returns the selection and rendering flags every operation
// carries. defaultSelect is shown as the --select default.
func NewGlobalFlags(defaultSelect string) (flags []cli.Flag) {
	path := configFile()

	flags = []cli.Flag{
		&cli.StringFlag{
			Name:    "attrs",
			Aliases: []string{"a"},
			Usage:   "comma-separated list of attributes to include in results",
		},
		withConfigSources("", path, &cli.BoolFlag{
			Name:    "color",
			Aliases: []string{"c"},
			Usage:   "enable colored text output",
			Value:   false,
		}),
		&cli.StringFlag{
			Name:    "filter",
			Aliases: []string{"f"},
			Usage:   "comma-separated list of filters to apply to results",
		},
		&cli.BoolFlag{
			Name:        "interactive",
			Aliases:     []string{"i"},
			Usage:       "open a query console over the response",
			HideDefault: true,
		},
		&cli.BoolFlag{
			Name:    "local",
			Aliases: []string{"l"},
			Usage:   "show local timestamps",
			Value:   false,
		},
		withConfigSources("", path, &cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "output format (text|json|yaml|raw)",
			Value:   "text",
			Sources: cli.EnvVars("AWSOPS_OUTPUT"),
			Validator: func(value string) error {
				return FlagValidators(value, OutputValidator)
			},
		}),
		withConfigSources("", path, &cli.IntFlag{
			Name:        "padding",
			Usage:       "column padding for text output",
			Value:       2,
			HideDefault: true,
		}),
		schemaFlag(),
		&cli.StringFlag{
			Name:    "select",
			Aliases: []string{"S"},
			Usage:   "response projection: *, a field path, or ^Param",
			Value:   defaultSelect,
		},
		&cli.StringFlag{
			Name:    "sort",
			Aliases: []string{"s"},
			Usage:   "comma-separated list of attributes to sort the results by",
		},
		withConfigSources("", path, &cli.BoolFlag{
			Name:    "titles",
			Aliases: []string{"t"},
			Usage:   "show titles with text output",
			Value:   false,
		}),
	}

	return
}

// NewAWSFlags returns the client configuration flags. Region and profile are
// also sourced from the config file, namespaced values first.
func NewAWSFlags(ns, path string) []cli.Flag {
	region := &cli.StringFlag{
		Name:  "region",
		Usage: "AWS region",
		Sources: cli.NewValueSourceChain(
			cli.EnvVar("AWSOPS_REGION"),
			cli.EnvVar("AWS_REGION"),
			cli.EnvVar("AWS_DEFAULT_REGION"),
		),
	}
	profile := &cli.StringFlag{
		Name:  "profile",
		Usage: "shared config profile",
		Sources: cli.NewValueSourceChain(
			cli.EnvVar("AWSOPS_PROFILE"),
			cli.EnvVar("AWS_PROFILE"),
		),
	}
	if path != "" {
		region = NameSpacedValueChainFlagFromConfigFile(ns, path, region)
		profile = NameSpacedValueChainFlagFromConfigFile(ns, path, profile)
	}

	return []cli.Flag{
		region,
		profile,
		&cli.StringFlag{
			Name:    "endpoint-url",
			Usage:   "override the service endpoint",
			Sources: cli.EnvVars("AWSOPS_ENDPOINT_URL"),
		},
		&cli.IntFlag{
			Name:        "max-attempts",
			Usage:       "maximum attempts made by the SDK retryer",
			Sources:     cli.EnvVars("AWSOPS_MAX_ATTEMPTS"),
			HideDefault: true,
		},
	}
}

func newPagingFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:  "next-token",
			Usage: "continuation token to start from",
		},
		&cli.BoolFlag{
			Name:        "no-auto-iteration",
			Usage:       "make a single call and report the continuation token",
			HideDefault: true,
		},
	}
}

func forceFlag() *cli.BoolFlag {
	return &cli.BoolFlag{
		Name:        "force",
		Usage:       "do not ask for confirmation",
		HideDefault: true,
	}
}

func schemaFlag() *cli.BoolFlag {
	return &cli.BoolFlag{
		Name:        "schema",
		Usage:       "dump the response schema",
		HideDefault: true,
	}
}

// NameSpacedValueChainFlagFromConfigFile adds namespaced and global config file
// sources to the given flag's Sources chain.
func NameSpacedValueChainFlagFromConfigFile(ns string, path string, flag *cli.StringFlag) *cli.StringFlag {
	if ns != "" {
		src := yaml.YAML(ns+"."+flag.Name, altsrc.StringSourcer(path))
		flag.Sources.Chain = append(flag.Sources.Chain, src)
	}

	src := yaml.YAML(flag.Name, altsrc.StringSourcer(path))
	flag.Sources.Chain = append(flag.Sources.Chain, src)

	return flag
}

// sourced is a flag whose value may come from a config file.
type sourced interface {
	*cli.StringFlag | *cli.BoolFlag | *cli.IntFlag
}

// withConfigSources is NameSpacedValueChainFlagFromConfigFile for any flag
// type. Nothing is added when there is no config file.
func withConfigSources[F sourced](ns, path string, flag F) F {
	if path == "" {
		return flag
	}

	var (
		name  string
		chain *cli.ValueSourceChain
	)
	switch f := any(flag).(type) {
	case *cli.StringFlag:
		name, chain = f.Name, &f.Sources
	case *cli.BoolFlag:
		name, chain = f.Name, &f.Sources
	case *cli.IntFlag:
		name, chain = f.Name, &f.Sources
	}

	if ns != "" {
		chain.Chain = append(chain.Chain, yaml.YAML(ns+"."+name, altsrc.StringSourcer(path)))
	}
	chain.Chain = append(chain.Chain, yaml.YAML(name, altsrc.StringSourcer(path)))

	return flag
}

// configFile is the config file path, or "" when there is none.
func configFile() string {
	path, err := config.File()
	if err != nil {
		return ""
	}
	return path
}
