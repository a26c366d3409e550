package version

import (
	"runtime/debug"
	"strings"
	"testing"
	"time"
)

func buildInfo(mainVersion string, settings ...string) *debug.BuildInfo {
	info := &debug.BuildInfo{GoVersion: "go1.24.10"}
	info.Main.Version = mainVersion
	for i := 0; i+1 < len(settings); i += 2 {
		info.Settings = append(info.Settings, debug.BuildSetting{Key: settings[i], Value: settings[i+1]})
	}
	return info
}

func TestResolve(t *testing.T) {
	now := time.Date(2026, 3, 4, 5, 6, 7, 0, time.UTC)

	tests := []struct {
		name        string
		ldVersion   string
		ldCommit    string
		info        *debug.BuildInfo
		wantVersion string
		wantCommit  string
		wantDirty   bool
	}{
		{
			name:        "ldflags win",
			ldVersion:   "v0.3.0",
			ldCommit:    "abc123",
			info:        buildInfo("v9.9.9", "vcs.revision", "ffffffffffff"),
			wantVersion: "v0.3.0",
			wantCommit:  "abc123",
		},
		{
			name:        "go install version",
			info:        buildInfo("v0.2.1"),
			wantVersion: "v0.2.1",
			wantCommit:  "unknown",
		},
		{
			name:        "vcs revision is shortened",
			info:        buildInfo("(devel)", "vcs.revision", "0123456789abcdef", "vcs.time", "2026-01-02T03:04:05Z"),
			wantVersion: "dev-20260102",
			wantCommit:  "0123456",
		},
		{
			name:        "modified tree is dirty",
			info:        buildInfo("(devel)", "vcs.revision", "0123456789", "vcs.modified", "true"),
			wantVersion: "dev-20260304-050607",
			wantCommit:  "0123456-dirty",
			wantDirty:   true,
		},
		{
			name:        "no build info",
			wantVersion: "dev-20260304-050607",
			wantCommit:  "unknown",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := resolve(tt.ldVersion, tt.ldCommit, tt.info, now)
			if b.Version != tt.wantVersion {
				t.Errorf("Version = %q, want %q", b.Version, tt.wantVersion)
			}
			if b.Commit != tt.wantCommit {
				t.Errorf("Commit = %q, want %q", b.Commit, tt.wantCommit)
			}
			if b.Dirty != tt.wantDirty {
				t.Errorf("Dirty = %v, want %v", b.Dirty, tt.wantDirty)
			}
			if b.Platform == "" || b.Go == "" {
				t.Error("Go and Platform should always be set")
			}
		})
	}
}

func TestResolveBuildTime(t *testing.T) {
	b := resolve("", "", buildInfo("", "vcs.time", "2026-01-02T03:04:05Z"), time.Now())
	want := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	if !b.Built.Equal(want) {
		t.Errorf("Built = %v, want %v", b.Built, want)
	}
	if b.Go != "go1.24.10" {
		t.Errorf("Go = %q, want the build info toolchain", b.Go)
	}
}

func TestShort(t *testing.T) {
	tests := []struct {
		build Build
		want  string
	}{
		{Build{Version: "v0.3.0", Commit: "abc1234"}, "v0.3.0"},
		{Build{Version: "dev-20260102", Commit: "abc1234"}, "dev+abc1234"},
		{Build{Version: "dev-20260102-150405", Commit: "unknown"}, "dev"},
	}
	for _, tt := range tests {
		if got := tt.build.Short(); got != tt.want {
			t.Errorf("%+v.Short() = %q, want %q", tt.build, got, tt.want)
		}
	}
}

func TestFull(t *testing.T) {
	if Version == "" || Commit == "" {
		t.Fatal("init should always populate Version and Commit")
	}
	full := Full()
	if !strings.HasPrefix(full, Version) || !strings.Contains(full, Commit) {
		t.Errorf("Full() = %q", full)
	}
}

func TestDetails(t *testing.T) {
	d := Details()
	for _, key := range []string{"Version", "Commit", "Go", "Platform"} {
		if d[key] == "" {
			t.Errorf("Details()[%q] is empty", key)
		}
	}
}
