package harness

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/require"
)

// ran reports whether body went past the gate.
func ran(t *testing.T, gate func(t *testing.T)) bool {
	reached := false
	t.Run("gated", func(t *testing.T) {
		gate(t)
		reached = true
	})
	return reached
}

func TestEnabledOnOS(t *testing.T) {
	mac := Config{OS: OSMac}
	linux := Config{OS: OSLinux}

	require.True(t, ran(t, func(t *testing.T) { EnabledOnOS(t, mac, OSMac) }))
	require.False(t, ran(t, func(t *testing.T) { EnabledOnOS(t, linux, OSMac) }))
	require.True(t, ran(t, func(t *testing.T) { EnabledOnOS(t, linux, OSMac, OSLinux) }))
}

func TestDisabledOnOS(t *testing.T) {
	windows := Config{OS: OSWindows}
	mac := Config{OS: OSMac}

	require.False(t, ran(t, func(t *testing.T) { DisabledOnOS(t, windows, OSWindows) }))
	require.True(t, ran(t, func(t *testing.T) { DisabledOnOS(t, mac, OSWindows) }))
}

func TestAssumeEnv(t *testing.T) {
	require.True(t, ran(t, func(t *testing.T) { AssumeEnv(t, Config{Env: EnvDev}, EnvDev) }))
	require.False(t, ran(t, func(t *testing.T) { AssumeEnv(t, Config{Env: "TEST"}, EnvDev) }))
	require.False(t, ran(t, func(t *testing.T) { AssumeEnv(t, Config{}, EnvDev) }))
}

func TestLoadConfig(t *testing.T) {
	req := require.New(t)

	t.Setenv("ENV", "DEV")
	t.Setenv("TARGET_OS", "")
	cfg, err := LoadConfig()
	req.NoError(err)
	req.Equal(EnvDev, cfg.Env)
	req.Equal(runtime.GOOS, cfg.OS)
	req.False(cfg.Colours)

	t.Setenv("TARGET_OS", OSWindows)
	t.Setenv("HARNESS_COLOURS", "true")
	cfg, err = LoadConfig()
	req.NoError(err)
	req.Equal(OSWindows, cfg.OS)
	req.True(cfg.Colours)
}

func TestLoadConfig_InvalidBool(t *testing.T) {
	t.Setenv("HARNESS_COLOURS", "maybe")
	_, err := LoadConfig()
	require.Error(t, err)
}
