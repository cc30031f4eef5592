package internal

import (
	"contact-lab/errors"
	"fmt"
	"strings"
)

const (
	StorageMemory = "memory"
	StorageBadger = "badger"
)

type Config struct {
	LogLevel         string `env:"LOG_LEVEL,default=INFO"`
	Storage          string `env:"STORAGE,default=memory"`
	StrictPhone      bool   `env:"STRICT_PHONE,default=false"`
	DefaultFirstName string `env:"DEFAULT_FIRST_NAME,default=John"`
	DefaultLastName  string `env:"DEFAULT_LAST_NAME,default=Doe"`
}

// StorageBackend normalizes STORAGE and rejects unknown values.
func (c Config) StorageBackend() (string, error) {
	backend := strings.ToLower(strings.TrimSpace(c.Storage))
	switch backend {
	case StorageMemory, StorageBadger:
		return backend, nil
	default:
		return "", fmt.Errorf("%w: STORAGE must be %q or %q, got %q",
			errors.ErrUnknownStorage, StorageMemory, StorageBadger, c.Storage)
	}
}
