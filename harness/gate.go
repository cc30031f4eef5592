package harness

import (
	"slices"
	"testing"
)

const (
	OSMac     = "darwin"
	OSWindows = "windows"
	OSLinux   = "linux"

	EnvDev = "DEV"
)

// EnabledOnOS skips the test unless cfg.OS is one of oses.
func EnabledOnOS(t testing.TB, cfg Config, oses ...string) {
	t.Helper()
	if !slices.Contains(oses, cfg.OS) {
		t.Skipf("enabled only on %v, running on %s", oses, cfg.OS)
	}
}

// DisabledOnOS skips the test when cfg.OS is one of oses.
func DisabledOnOS(t testing.TB, cfg Config, oses ...string) {
	t.Helper()
	if slices.Contains(oses, cfg.OS) {
		t.Skipf("disabled on %s", cfg.OS)
	}
}

// AssumeEnv skips the test unless ENV equals want.
func AssumeEnv(t testing.TB, cfg Config, want string) {
	t.Helper()
	if cfg.Env != want {
		t.Skipf("assumption failed: ENV=%q, want %q", cfg.Env, want)
	}
}
