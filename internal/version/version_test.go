package version

import "testing"

func TestVersionDefault(t *testing.T) {
	if Version == "" {
		t.Error("Version should have a default value")
	}
	// GitCommit, GitMessage and BuildDate are optional and may be empty.
	_ = GitCommit
	_ = GitMessage
	_ = BuildDate
}

func TestVersionOverride(t *testing.T) {
	origVersion := Version
	origCommit := GitCommit
	defer func() {
		Version = origVersion
		GitCommit = origCommit
	}()

	// Simulates build-time -ldflags injection.
	Version = "1.2.3"
	GitCommit = "abc123def456"
	if Version != "1.2.3" {
		t.Errorf("Version = %q, want %q", Version, "1.2.3")
	}
	if GitCommit != "abc123def456" {
		t.Errorf("GitCommit = %q, want %q", GitCommit, "abc123def456")
	}
}
