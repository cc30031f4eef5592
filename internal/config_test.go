package internal

import (
	"contact-lab/errors"
	"testing"

	"github.com/Netflix/go-env"
	"github.com/stretchr/testify/require"
)

func TestConfig_Defaults(t *testing.T) {
	req := require.New(t)
	var config Config

	err := env.Unmarshal(env.EnvSet{}, &config)
	req.NoError(err)
	req.Equal("INFO", config.LogLevel)
	req.Equal(StorageMemory, config.Storage)
	req.False(config.StrictPhone)
	req.Equal("John", config.DefaultFirstName)
	req.Equal("Doe", config.DefaultLastName)
}

func TestConfig_FromEnviron(t *testing.T) {
	req := require.New(t)
	t.Setenv("LOG_LEVEL", "DEBUG")
	t.Setenv("STORAGE", "badger")
	t.Setenv("STRICT_PHONE", "true")
	var config Config

	_, err := env.UnmarshalFromEnviron(&config)
	req.NoError(err)
	req.Equal("DEBUG", config.LogLevel)
	req.True(config.StrictPhone)

	backend, err := config.StorageBackend()
	req.NoError(err)
	req.Equal(StorageBadger, backend)
}

func TestConfig_StorageBackend(t *testing.T) {
	backend, err := Config{Storage: " Memory "}.StorageBackend()
	require.NoError(t, err)
	require.Equal(t, StorageMemory, backend)

	_, err = Config{Storage: "postgres"}.StorageBackend()
	require.ErrorIs(t, err, errors.ErrUnknownStorage)
}
