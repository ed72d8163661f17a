// Package storage provides the string-keyed, string-valued store the widgets
// persist into. Keys are scoped per origin, the way browser storage is.
package storage

import (
	"errors"
	"fmt"

	"todobox/internal/config"
)

// ErrUnknownDriver is returned by Open for an unrecognised storage driver.
var ErrUnknownDriver = errors.New("unknown storage driver")

// Store is a key-value store scoped to a single origin.
type Store interface {
	// Get returns the value stored under key. ok is false when the key is
	// absent.
	Get(key string) (value string, ok bool, err error)

	// Set stores value under key, replacing any previous value.
	Set(key, value string) error

	// Clear removes every key for the origin.
	Clear() error
}

// Closer is implemented by stores holding resources that must be released.
type Closer interface {
	Close() error
}

// Open returns the store selected by cfg.Storage.Driver for cfg.Origin.
func Open(cfg *config.Config) (Store, error) {
	switch cfg.Storage.Driver {
	case "", "file":
		return OpenFile(cfg.StoragePath(), cfg.Origin)
	case "sqlite":
		return OpenSQLite(cfg.StoragePath(), cfg.Origin)
	case "memory":
		return NewMemory(nil), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownDriver, cfg.Storage.Driver)
	}
}

// Close releases s if it holds resources.
func Close(s Store) error {
	if c, ok := s.(Closer); ok {
		return c.Close()
	}
	return nil
}
