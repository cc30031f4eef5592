package harness

import (
	"runtime"

	"github.com/kelseyhightower/envconfig"
)

// Config carries the test-environment parameters that gate some scenarios.
type Config struct {
	// ENV names the environment the suite runs in, e.g. DEV
	Env string `envconfig:"ENV"`
	// TARGET_OS overrides the detected operating system (a GOOS value)
	OS string `envconfig:"TARGET_OS"`
	// HARNESS_COLOURS enables colorized lifecycle headers
	Colours bool `envconfig:"HARNESS_COLOURS" default:"false"`
}

func LoadConfig() (Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, err
	}
	if cfg.OS == "" {
		cfg.OS = runtime.GOOS
	}
	return cfg, nil
}
