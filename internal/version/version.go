// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package version provides build-time version information.
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

// Name is the program name reported by the CLI and the MCP server.
const Name = "jsoncodegen"

// Set at build time with -ldflags "-X".
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

func init() {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return
	}
	fromBuildInfo(info)
}

// fromBuildInfo fills unset values from module and VCS metadata, which is
// present for "go install module@version" and VCS-stamped builds.
func fromBuildInfo(info *debug.BuildInfo) {
	if Version == "dev" && info.Main.Version != "" && info.Main.Version != "(devel)" {
		Version = info.Main.Version
	}
	for _, setting := range info.Settings {
		switch setting.Key {
		case "vcs.revision":
			if Commit == "none" && len(setting.Value) >= 7 {
				Commit = setting.Value[:7]
			}
		case "vcs.time":
			if Date == "unknown" {
				Date = setting.Value
			}
		}
	}
}

// Info returns formatted version information.
func Info() string {
	return fmt.Sprintf("%s version %s (commit: %s, built: %s, go: %s)",
		Name, Version, Commit, Date, runtime.Version())
}

// Short returns just the version string.
func Short() string {
	return Version
}
