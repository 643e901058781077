// Package daemon bootstraps the process: database, migrations, seed data,
// session storage and the web service.
package daemon

import (
	"fmt"

	sessionpostgres "github.com/gofiber/storage/postgres/v3"
	"github.com/rs/zerolog/log"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/amigovet/amigovet-server/internal/config"
	"github.com/amigovet/amigovet-server/internal/db/dsn"
	"github.com/amigovet/amigovet-server/internal/logger"
	"github.com/amigovet/amigovet-server/internal/db/models"
	"github.com/amigovet/amigovet-server/internal/web"
	"github.com/amigovet/amigovet-server/internal/web/session"
)

// Daemon represents the main application daemon.
type Daemon struct {
	cfg        *config.Config
	webService *web.Service
}

// Start starts the Daemon's web service and blocks until shutdown.
func (d *Daemon) Start() error {
	addr := fmt.Sprintf(":%d", d.cfg.Webserver.Port)

	go func() {
		if err := d.webService.Start(addr); err != nil {
			log.Error().Err(err).Msg("web service stopped")
		}
	}()

	d.webService.WaitShutdown()

	return nil
}

// New creates a new Daemon instance with the provided configuration.
func New(cfg *config.Config) *Daemon {
	if cfg == nil {
		log.Fatal().Msg("config is nil")
		return nil
	}

	if err := logger.Init(cfg.Log); err != nil {
		log.Fatal().Err(err).Msg("failed to initialize logger")
	}

	dbDriver := gormpostgres.Open(dsn.Create(cfg))

	db, err := gorm.Open(dbDriver, &gorm.Config{})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect database")
	}

	if err = db.AutoMigrate(
		&models.User{},
		&models.Profile{},
		&models.UserRole{},
		&models.Setting{},
		&models.ContactMessage{},
		&models.LostPet{},
		&models.GalleryImage{},
	); err != nil {
		log.Fatal().Err(err).Msg("failed to migrate database")
	}

	seed(cfg, db)

	// Initialize fiber session store
	sessionStorage := sessionpostgres.New(sessionpostgres.Config{
		ConnectionURI: dsn.CreateURI(cfg),
		Table:         "sessions",
	})

	session.Init(sessionStorage)

	return &Daemon{
		cfg:        cfg,
		webService: web.New(cfg, db),
	}
}
