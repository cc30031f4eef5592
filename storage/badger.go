package storage

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/dgraph-io/badger/v4"
)

// OpenInMemory opens a Badger instance that never touches the disk.
// Its content is gone once Close is called.
func OpenInMemory(ctx context.Context, logger *slog.Logger) (*badger.DB, error) {
	db, err := badger.Open(buildBadgerOpts(ctx, logger))
	if err != nil {
		return nil, fmt.Errorf("database opening failed: %w", err)
	}
	return db, nil
}

func buildBadgerOpts(ctx context.Context, logger *slog.Logger) badger.Options {
	options := badger.DefaultOptions("").WithInMemory(true)

	if logger.Enabled(ctx, slog.LevelDebug) {
		options = options.WithLoggingLevel(badger.DEBUG)
	} else {
		options = options.WithLoggingLevel(badger.WARNING)
	}
	return options
}
