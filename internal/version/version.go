// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

// Do not import any other awsops packages to avoid import cycles.

package version

import "runtime/debug"

// Name is the binary name. It doubles as the prefix for environment variables
// and the AWS SDK application id.
const Name = "awsops"

var Version = func() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "(devel)" && info.Main.Version != "" {
		return info.Main.Version
	}
	return "dev"
}()

// AppID returns the value sent in the SDK user agent, e.g. "awsops/v1.2.0".
func AppID() string {
	return Name + "/" + Version
}
