// Package open builds the store selected by configuration.
package open

import (
	"context"
	"fmt"

	"github.com/hic-health/hic-be/internal/config"
	"github.com/hic-health/hic-be/internal/storage"
	"github.com/hic-health/hic-be/internal/storage/postgres"
	"github.com/hic-health/hic-be/internal/storage/sqlite"
)

// Store opens the database named by cfg.DBDriver.
func Store(ctx context.Context, cfg config.Config) (storage.Store, error) {
	switch cfg.DBDriver {
	case config.DriverPostgres:
		st, err := postgres.NewStore(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, err
		}
		return st, nil
	case config.DriverSQLite:
		st, err := sqlite.Open(cfg.SQLitePath)
		if err != nil {
			return nil, err
		}
		return st, nil
	}
	return nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.DBDriver)
}
