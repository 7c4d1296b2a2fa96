package metadata

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

// Placeholders used by builds that were not stamped via ldflags.
const (
	DevelopmentVersion = "development"
	UnknownCommit      = "unknown"
)

// Version represents the metadata identifying the running version of the CLI.
type Version struct {
	Commit    string
	Number    string
	GoOS      string
	GoVersion string
}

// NewVersion returns the Version of the running binary. Values stamped at
// build time win; otherwise the module version and VCS revision recorded by
// `go install` are used when available.
func NewVersion(number, commit string) *Version {
	v := &Version{
		Commit:    commit,
		Number:    number,
		GoOS:      runtime.GOOS,
		GoVersion: runtime.Version(),
	}

	if info, ok := debug.ReadBuildInfo(); ok {
		v.fillFromBuildInfo(info)
	}

	return v
}

func (v *Version) fillFromBuildInfo(info *debug.BuildInfo) {
	if v.Number == DevelopmentVersion && info.Main.Version != "" && info.Main.Version != "(devel)" {
		v.Number = info.Main.Version
	}

	if v.Commit != UnknownCommit {
		return
	}
	for _, s := range info.Settings {
		if s.Key == "vcs.revision" && len(s.Value) >= 7 {
			v.Commit = s.Value[:7]
		}
	}
}

// String returns a formatted description of the CLI version, suitable for use
// in response to the `--version` flag.
func (v *Version) String() string {
	return fmt.Sprintf("php-segment %s (%s %s %s)\n", v.Number, v.GoOS, v.Commit, v.GoVersion)
}
