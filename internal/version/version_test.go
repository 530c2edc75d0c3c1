package version

import (
	"strings"
	"testing"
)

func withBuildInfo(t *testing.T, version, commit, date string) {
	t.Helper()
	origVersion, origCommit, origDate := Version, GitCommit, BuildDate
	SetBuildInfo(version, commit, date)
	t.Cleanup(func() { SetBuildInfo(origVersion, origCommit, origDate) })
}

func TestValidateVersion(t *testing.T) {
	tests := []struct {
		name    string
		version string
		wantErr bool
	}{
		{"release", "1.2.3", false},
		{"prerelease", "1.0.0-beta.1", false},
		{"metadata", "0.3.0+42.abc1234", false},
		{"garbage", "not-a-version", true},
		{"empty", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			withBuildInfo(t, tt.version, "unknown", "unknown")
			err := ValidateVersion()
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateVersion() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestIsPrerelease(t *testing.T) {
	withBuildInfo(t, "1.0.0-rc.1", "unknown", "unknown")
	if !IsPrerelease() {
		t.Error("expected 1.0.0-rc.1 to be a prerelease")
	}

	SetBuildInfo("1.0.0", "unknown", "unknown")
	if IsPrerelease() {
		t.Error("expected 1.0.0 not to be a prerelease")
	}
}

func TestIsDevelopment(t *testing.T) {
	withBuildInfo(t, "1.0.0", "abcdef1234567", "2026-01-02")
	if IsDevelopment() {
		t.Error("expected release build")
	}

	SetBuildInfo("1.0.0", "unknown", "2026-01-02")
	if !IsDevelopment() {
		t.Error("expected development build when commit is unknown")
	}
}

func TestCompareVersions(t *testing.T) {
	tests := []struct {
		v1, v2  string
		want    int
		wantErr bool
	}{
		{"1.0.0", "1.0.0", 0, false},
		{"1.0.0", "1.0.1", -1, false},
		{"1.1.0", "1.0.9", 1, false},
		{"1.0.0-beta", "1.0.0", -1, false},
		{"bogus", "1.0.0", 0, true},
		{"1.0.0", "bogus", 0, true},
	}

	for _, tt := range tests {
		got, err := CompareVersions(tt.v1, tt.v2)
		if (err != nil) != tt.wantErr {
			t.Errorf("CompareVersions(%q, %q) error = %v, wantErr %v", tt.v1, tt.v2, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("CompareVersions(%q, %q) = %d, want %d", tt.v1, tt.v2, got, tt.want)
		}
	}
}

func TestGetFormattedVersion(t *testing.T) {
	withBuildInfo(t, "0.3.0", "abcdef1234567", "2026-01-02")

	got := GetFormattedVersion()
	want := "rpnxdoc v0.3.0, commit abcdef1, built 2026-01-02"
	if got != want {
		t.Errorf("GetFormattedVersion() = %q, want %q", got, want)
	}

	SetBuildInfo("0.3.0", "unknown", "unknown")
	if got := GetFormattedVersion(); got != "rpnxdoc v0.3.0" {
		t.Errorf("GetFormattedVersion() = %q", got)
	}

	SetBuildInfo("broken", "unknown", "unknown")
	if got := GetFormattedVersion(); !strings.Contains(got, "invalid version") {
		t.Errorf("GetFormattedVersion() = %q, want invalid marker", got)
	}
}

func TestGetDetailedVersion(t *testing.T) {
	withBuildInfo(t, "0.3.0+7.abc1234", "abc1234", "2026-01-02")

	got := GetDetailedVersion()
	for _, want := range []string{"rpnxdoc v0.3.0+7.abc1234", "Git Commit: abc1234", "Build Metadata: 7.abc1234", "Go Version:", "Platform:"} {
		if !strings.Contains(got, want) {
			t.Errorf("GetDetailedVersion() missing %q:\n%s", want, got)
		}
	}
}

func TestGetBaseVersion(t *testing.T) {
	withBuildInfo(t, "1.2.3-beta+meta", "unknown", "unknown")
	if got := GetBaseVersion(); got != "1.2.3" {
		t.Errorf("GetBaseVersion() = %q, want 1.2.3", got)
	}

	SetBuildInfo("junk", "unknown", "unknown")
	if got := GetBaseVersion(); got != "junk" {
		t.Errorf("GetBaseVersion() = %q, want junk", got)
	}
}

func TestGetBuildTime(t *testing.T) {
	tests := []struct {
		date    string
		wantErr bool
	}{
		{"2026-01-02T15:04:05Z", false},
		{"2026-01-02 15:04:05", false},
		{"2026-01-02", false},
		{"unknown", true},
		{"yesterday", true},
	}

	for _, tt := range tests {
		withBuildInfo(t, "1.0.0", "unknown", tt.date)
		_, err := GetBuildTime()
		if (err != nil) != tt.wantErr {
			t.Errorf("GetBuildTime(%q) error = %v, wantErr %v", tt.date, err, tt.wantErr)
		}
	}
}
