// Package version reports the signboard build version.
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
	"strings"
	"time"
)

// Set at build time via ldflags:
//
//	go build -ldflags="-X github.com/muurk/signboard/internal/version.Version=v0.3.0 \
//	                   -X github.com/muurk/signboard/internal/version.Commit=abc123"
//
// Otherwise they are filled in from the embedded build info at startup.
var (
	// Version is the semantic version of the application
	Version = ""
	// Commit is the git commit hash
	Commit = ""
)

// Build describes the running binary.
type Build struct {
	Version  string
	Commit   string
	Dirty    bool
	Built    time.Time // VCS commit time, zero when unknown
	Go       string
	Platform string
}

var current Build

func init() {
	info, _ := debug.ReadBuildInfo()
	current = resolve(Version, Commit, info, time.Now())
	Version, Commit = current.Version, current.Commit
}

// resolve merges ldflags values with build info. ldflags always win, then
// the module version from `go install module@version`, then a dev version
// stamped with the commit time or now.
func resolve(ldVersion, ldCommit string, info *debug.BuildInfo, now time.Time) Build {
	b := Build{
		Version:  ldVersion,
		Commit:   ldCommit,
		Go:       runtime.Version(),
		Platform: runtime.GOOS + "/" + runtime.GOARCH,
	}

	var settings map[string]string
	if info != nil {
		if info.GoVersion != "" {
			b.Go = info.GoVersion
		}
		if v := info.Main.Version; b.Version == "" && v != "" && v != "(devel)" {
			b.Version = v
		}
		settings = make(map[string]string, len(info.Settings))
		for _, s := range info.Settings {
			settings[s.Key] = s.Value
		}
	}

	if t, err := time.Parse(time.RFC3339, settings["vcs.time"]); err == nil {
		b.Built = t
	}
	b.Dirty = settings["vcs.modified"] == "true"

	if rev := settings["vcs.revision"]; b.Commit == "" && rev != "" {
		if len(rev) > 7 {
			rev = rev[:7]
		}
		if b.Dirty {
			rev += "-dirty"
		}
		b.Commit = rev
	}

	if b.Version == "" {
		if !b.Built.IsZero() {
			b.Version = "dev-" + b.Built.Format("20060102")
		} else {
			b.Version = "dev-" + now.Format("20060102-150405")
		}
	}
	if b.Commit == "" {
		b.Commit = "unknown"
	}
	return b
}

// Current returns the resolved build of the running binary.
func Current() Build { return current }

// IsDev reports whether this is an untagged build.
func (b Build) IsDev() bool { return strings.HasPrefix(b.Version, "dev-") }

// Short is the version for the application header: the release tag, or
// "dev" plus the commit for untagged builds.
func (b Build) Short() string {
	if b.IsDev() && b.Commit != "unknown" {
		return "dev+" + b.Commit
	}
	if b.IsDev() {
		return "dev"
	}
	return b.Version
}

// String returns the version with its commit.
func (b Build) String() string {
	return fmt.Sprintf("%s (commit: %s)", b.Version, b.Commit)
}

// Full returns the version with its commit.
func Full() string { return current.String() }

// Details returns key/value pairs for the version command.
func Details() map[string]string {
	d := map[string]string{
		"Version":  current.Version,
		"Commit":   current.Commit,
		"Go":       current.Go,
		"Platform": current.Platform,
	}
	if !current.Built.IsZero() {
		d["Built"] = current.Built.UTC().Format(time.RFC3339)
	}
	return d
}
