// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package config provides loading and typed accessors for awsops's user
// configuration. The configuration is a YAML document located through
// AWSOPS_CFG_FILE or in the user's configuration directory, typically:
//   - Linux: $XDG_CONFIG_HOME/awsops.yaml or $HOME/.config/awsops.yaml
//   - macOS: $HOME/Library/Application Support/awsops.yaml
//   - Windows: %AppData%/awsops.yaml
//
// Keys are dotted paths. A Namespace (the service command, e.g. "profiler")
// is tried before the bare key so that per-service values win:
//
//	region: us-east-1
//	profiler:
//	  region: eu-west-1
//	  defaults:
//	    - --output json
package config
