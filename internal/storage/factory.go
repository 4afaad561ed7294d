// internal/storage/factory.go
package storage

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/stepshot/stepshot/internal/config"
)

// NewBackend creates a storage backend based on configuration.
func NewBackend(cfg config.StorageConfig, log zerolog.Logger) (Backend, error) {
	switch cfg.Type {
	case "memory":
		return NewMemoryBackend(cfg.Memory, log), nil
	case "database":
		return NewDatabaseBackend(log), nil
	default:
		return nil, fmt.Errorf("unknown storage type: %s", cfg.Type)
	}
}
