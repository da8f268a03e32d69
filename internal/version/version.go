// Package version reports build information for the server binary.
//
// The variables are set with -ldflags at release time; a plain `go build`
// falls back to the VCS stamp the toolchain embeds.
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

var (
	// Version is the release version, e.g. "1.2.0".
	Version = "dev"

	// GitCommit is the short commit hash.
	GitCommit = ""

	// BuildTime is the build timestamp (RFC3339).
	BuildTime = ""
)

// VersionInfo is the build information served by /api/info.
type VersionInfo struct {
	Version   string `json:"version"`
	GitCommit string `json:"git_commit"`
	BuildTime string `json:"build_time"`
	GoVersion string `json:"go_version"`
	Modified  bool   `json:"modified,omitempty"`
}

// Info returns the build information for the running binary.
func Info() VersionInfo {
	info := VersionInfo{
		Version:   Version,
		GitCommit: GitCommit,
		BuildTime: BuildTime,
		GoVersion: runtime.Version(),
	}
	if bi, ok := debug.ReadBuildInfo(); ok {
		fillFromBuildInfo(&info, bi.Settings)
	}
	if info.GitCommit == "" {
		info.GitCommit = "unknown"
	}
	if info.BuildTime == "" {
		info.BuildTime = "unknown"
	}
	return info
}

func fillFromBuildInfo(info *VersionInfo, settings []debug.BuildSetting) {
	for _, s := range settings {
		switch s.Key {
		case "vcs.revision":
			if info.GitCommit == "" {
				info.GitCommit = shortCommit(s.Value)
			}
		case "vcs.time":
			if info.BuildTime == "" {
				info.BuildTime = s.Value
			}
		case "vcs.modified":
			info.Modified = s.Value == "true"
		}
	}
}

func shortCommit(rev string) string {
	if len(rev) > 7 {
		return rev[:7]
	}
	return rev
}

// String is a one-line summary, e.g. "1.2.0 (abc1234, go1.24.12)".
func (v VersionInfo) String() string {
	commit := v.GitCommit
	if v.Modified {
		commit += "-dirty"
	}
	return fmt.Sprintf("%s (%s, %s)", v.Version, commit, v.GoVersion)
}
