package database

import (
	"context"
	"fmt"

	"bullprompt-backend/config"
)

// Backend is an asynchronous key-value store addressed by string keys. Get
// omits keys that hold no value; Set writes every entry or none.
type Backend interface {
	Get(ctx context.Context, keys ...string) (map[string][]byte, error)
	Set(ctx context.Context, items map[string][]byte) error
	Close() error
}

// Open connects the backend selected by cfg.StorageDriver.
func Open(ctx context.Context, cfg *config.Config) (Backend, error) {
	switch cfg.StorageDriver {
	case config.DriverMemory:
		return NewMemoryBackend(), nil
	case config.DriverSQLite:
		backend, err := OpenSQLite(cfg.DBPath)
		if err != nil {
			return nil, err
		}
		return backend, nil
	case config.DriverRedis:
		backend, err := ConnectRedis(ctx, cfg)
		if err != nil {
			return nil, err
		}
		return backend, nil
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.StorageDriver)
	}
}
