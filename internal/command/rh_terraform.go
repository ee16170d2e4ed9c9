// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	rh "github.com/aws/aws-sdk-go-v2/service/resiliencehub"
	rhtypes "github.com/aws/aws-sdk-go-v2/service/resiliencehub/types"
	"github.com/urfave/cli/v3"

	"github.com/tfctl/awsops/internal/bind"
	"github.com/tfctl/awsops/internal/log"
	"github.com/tfctl/awsops/internal/terraform"
)

func terraformFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:  "terraform-dir",
			Usage: "Terraform root module whose s3 backend state is imported, as dir[::workspace]",
			Validator: func(value string) error {
				return FlagValidators(value, RootDirValidator)
			},
		},
		&cli.StringFlag{
			Name:    "workspace",
			Aliases: []string{"w"},
			Usage:   "Terraform workspace of --terraform-dir. Overrides ::workspace and TF_WORKSPACE",
		},
	}
}

// addTerraformSource appends the state file of --terraform-dir to the
// request's TerraformSources.
func addTerraformSource(cmd *cli.Command, b *bind.Binder, in *rh.ImportResourcesToDraftAppVersionInput) {
	spec := cmd.String("terraform-dir")
	if spec == "" {
		return
	}

	dir, ws, err := terraform.ParseRootDir(spec)
	if err != nil {
		b.Fail("--terraform-dir: %v", err)
		return
	}

	be, err := terraform.Discover(dir)
	if err != nil {
		b.Fail("--terraform-dir: %v", err)
		return
	}

	if cmd.IsSet("workspace") {
		ws = cmd.String("workspace")
	}
	if ws == "" {
		ws = terraform.Workspace(dir)
	}

	url := be.StateURL(ws)
	log.Debugf("terraform state discovered: dir=%s workspace=%s url=%s", dir, ws, url)

	in.TerraformSources = append(in.TerraformSources, rhtypes.TerraformSource{S3StateFileUrl: &url})
	b.Set("TerraformSources", in.TerraformSources)
}
