// Package dsn provides Data Source Name construction utilities for database connections.
package dsn

import (
	"fmt"

	"github.com/amigovet/amigovet-server/internal/config"
)

// Create builds the postgres Data Source Name from the configuration.
func Create(cfg *config.Config) string {
	out := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s %s",
		cfg.DB.Host,
		cfg.DB.Port,
		cfg.DB.User,
		cfg.DB.Password,
		cfg.DB.Name,
		cfg.DB.Extras,
	)

	return out
}

// CreateURI builds the postgres connection URI used by the session storage.
func CreateURI(cfg *config.Config) string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s",
		cfg.DB.User,
		cfg.DB.Password,
		cfg.DB.Host,
		cfg.DB.Port,
		cfg.DB.Name,
	)
}
