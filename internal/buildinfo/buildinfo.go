// Package buildinfo carries the build stamp, set with
// -ldflags "-X skillhud/internal/buildinfo.Version=v1.2.3".
package buildinfo

import (
	"fmt"
	"runtime/debug"
)

var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)

// Short returns the version, or the commit when no version was stamped.
func Short() string {
	if Version != "" && Version != "dev" {
		return Version
	}
	if c := Revision(); c != "unknown" {
		return c
	}
	return "dev"
}

// Revision returns the stamped commit, falling back to the VCS revision the
// Go toolchain embeds.
func Revision() string {
	if Commit != "" && Commit != "unknown" {
		return Commit
	}
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return "unknown"
	}
	for _, s := range bi.Settings {
		if s.Key == "vcs.revision" && s.Value != "" {
			if len(s.Value) > 12 {
				return s.Value[:12]
			}
			return s.Value
		}
	}
	return "unknown"
}

// String describes the build for version output.
func String() string {
	return fmt.Sprintf("%s (commit %s, built %s)", Short(), Revision(), Date)
}
