// Package version provides application version information.
// The version can be set at build time using ldflags:
//
//	go build -ldflags "-X github.com/ramonehamilton/swipedeck/internal/version.Version=v1.2.3"
package version

import "runtime/debug"

// Version is the application version. It defaults to "dev" and can be
// overridden at build time using ldflags.
var Version = "dev"

// Commit is the VCS revision, set with ldflags or read from build info.
var Commit = ""

// GetVersion returns the current application version.
func GetVersion() string {
	return Version
}

// GetCommit returns the short VCS revision the binary was built from, or
// "unknown".
func GetCommit() string {
	if Commit != "" {
		return short(Commit)
	}
	if info, ok := debug.ReadBuildInfo(); ok {
		for _, s := range info.Settings {
			if s.Key == "vcs.revision" && s.Value != "" {
				return short(s.Value)
			}
		}
	}
	return "unknown"
}

// String returns "version (commit)".
func String() string {
	return GetVersion() + " (" + GetCommit() + ")"
}

func short(rev string) string {
	if len(rev) > 7 {
		return rev[:7]
	}
	return rev
}
