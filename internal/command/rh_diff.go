// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"

	awsv2 "github.com/aws/aws-sdk-go-v2/aws"
	rh "github.com/aws/aws-sdk-go-v2/service/resiliencehub"
	"github.com/urfave/cli/v3"

	awsx "github.com/tfctl/awsops/internal/aws"
	"github.com/tfctl/awsops/internal/awserr"
	"github.com/tfctl/awsops/internal/differ"
	"github.com/tfctl/awsops/internal/log"
	"github.com/tfctl/awsops/internal/meta"
	"github.com/tfctl/awsops/internal/paginate"
)

// pickVersions is swapped in tests.
var pickVersions = func(items []differ.Version) ([]differ.Version, error) {
	return differ.SelectVersions(items)
}

func diffCommandBuilder(m meta.Meta) *cli.Command {
	flags := []cli.Flag{
		&cli.StringFlag{
			Name:     "app-arn",
			Usage:    "application whose versions are compared",
			Required: true,
		},
		&cli.StringFlag{
			Name:  "left",
			Usage: "older app version, e.g. release or 3",
		},
		&cli.StringFlag{
			Name:  "right",
			Usage: "newer app version, defaults to draft when --left is given",
		},
		&cli.StringSliceFlag{
			Name:  "ignore",
			Usage: "top level template keys left out of the comparison",
		},
		withConfigSources("", configFile(), &cli.BoolFlag{
			Name:    "color",
			Aliases: []string{"c"},
			Usage:   "enable colored diff output",
		}),
	}
	flags = append(flags, NewAWSFlags(m.Service, configFile())...)

	return &cli.Command{
		Name:      "diff-app-versions",
		Usage:     "compare the templates of two app versions",
		UsageText: "awsops resiliencehub diff-app-versions --app-arn ARN [--left V --right V] [options]",
		Metadata: map[string]any{
			"meta": m,
		},
		Flags: flags,
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return diffCommandAction(ctx, cmd, m)
		},
	}
}

func diffCommandAction(ctx context.Context, cmd *cli.Command, m meta.Meta) error {
	log.Debugf("Executing action for %v", m.Args[1:])

	appArn := cmd.String("app-arn")
	left, right := cmd.String("left"), cmd.String("right")
	if left == "" && right != "" {
		return fmt.Errorf("--right requires --left")
	}

	clients, err := connect(ctx, cmd, m)
	if err != nil {
		return err
	}

	if left == "" {
		if left, right, err = chooseVersions(ctx, clients, appArn); err != nil {
			return err
		}
		if left == "" {
			return nil
		}
	}
	if right == "" {
		right = "draft"
	}
	log.Debugf("diffing versions: left=%s right=%s", left, right)

	lbody, err := templateBody(ctx, clients, appArn, left)
	if err != nil {
		return err
	}
	rbody, err := templateBody(ctx, clients, appArn, right)
	if err != nil {
		return err
	}

	fmt.Fprintf(m.Stdout, "--- %s\n+++ %s\n", left, right)
	_, err = differ.Diff(m.Stdout, lbody, rbody, differ.Options{
		Ignore: cmd.StringSlice("ignore"),
		Color:  cmd.Bool("color"),
	})
	return err
}

// chooseVersions lists the app's versions and lets the user pick two. Empty
// results mean the picker was abandoned.
func chooseVersions(ctx context.Context, clients *awsx.Clients, appArn string) (string, string, error) {
	call := func(ctx context.Context, in *rh.ListAppVersionsInput) (*rh.ListAppVersionsOutput, error) {
		return clients.ResilienceHub.ListAppVersions(ctx, in)
	}
	cursor := pager(
		func(in *rh.ListAppVersionsInput) **string { return &in.NextToken },
		func(out *rh.ListAppVersionsOutput) *string { return out.NextToken },
	)

	pages, err := paginate.Collect(ctx, &rh.ListAppVersionsInput{AppArn: &appArn}, call, cursor, paginate.Options{})
	if err != nil {
		return "", "", awserr.Friendly(err, awserr.ErrorContext{
			Service:   resilienceHubService,
			Operation: "ListAppVersions",
			Region:    clients.Region,
		})
	}

	var items []differ.Version
	for _, page := range pages {
		for _, v := range page.AppVersions {
			items = append(items, differ.Version{
				Name:         awsv2.ToString(v.AppVersion),
				Identifier:   awsv2.ToInt64(v.Identifier),
				CreationTime: awsv2.ToTime(v.CreationTime),
			})
		}
	}
	if len(items) < 2 {
		return "", "", fmt.Errorf("app %s has %d version(s), need at least two to compare", appArn, len(items))
	}

	picked, err := pickVersions(items)
	if err != nil {
		return "", "", err
	}
	if len(picked) != 2 {
		return "", "", nil
	}
	return picked[0].Name, picked[1].Name, nil
}

func templateBody(ctx context.Context, clients *awsx.Clients, appArn, version string) ([]byte, error) {
	out, err := clients.ResilienceHub.DescribeAppVersionTemplate(ctx, &rh.DescribeAppVersionTemplateInput{
		AppArn:     &appArn,
		AppVersion: &version,
	})
	if err != nil {
		return nil, awserr.Friendly(err, awserr.ErrorContext{
			Service:   resilienceHubService,
			Operation: "DescribeAppVersionTemplate",
			Region:    clients.Region,
		})
	}
	return []byte(awsv2.ToString(out.AppTemplateBody)), nil
}
