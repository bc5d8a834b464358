package version

import "testing"

func TestInfo(t *testing.T) {
	saved := [3]string{Version, Commit, Date}
	t.Cleanup(func() { Version, Commit, Date = saved[0], saved[1], saved[2] })

	tests := []struct {
		name                  string
		version, commit, date string
		want                  string
	}{
		{name: "unstamped", version: "dev", commit: "none", date: "unknown", want: "dev"},
		{name: "commit only", version: "v0.3.0", commit: "abc123", date: "", want: "v0.3.0 (commit abc123)"},
		{name: "full", version: "v0.3.0", commit: "abc123", date: "2026-10-01", want: "v0.3.0 (commit abc123, built 2026-10-01)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			Version, Commit, Date = tt.version, tt.commit, tt.date
			if got := Info(); got != tt.want {
				t.Fatalf("Info() = %q, want %q", got, tt.want)
			}
		})
	}
}
