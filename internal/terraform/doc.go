// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package terraform locates the S3 state file of a Terraform root module so
// it can be imported into a Resilience Hub app. The backend settings are read
// from .terraform/terraform.tfstate when the module has been initialized, or
// from the backend "s3" block of its *.tf files otherwise.
package terraform
