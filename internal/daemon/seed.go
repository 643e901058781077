package daemon

import (
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/amigovet/amigovet-server/internal/config"
	"github.com/amigovet/amigovet-server/internal/db/models"
)

// seed creates the bootstrap admin account on an empty users table. The
// credentials come from the config; without them an empty database stays
// without accounts and the admin surface is unreachable until seeded by
// hand.
func seed(cfg *config.Config, db *gorm.DB) {
	var count int64

	db.Model(&models.User{}).Count(&count)
	if count > 0 {
		return
	}

	if cfg.Seed.AdminEmail == "" || cfg.Seed.AdminPassword == "" {
		log.Warn().Msg("users table is empty and no seed admin is configured")
		return
	}

	user := models.User{
		Active:   true,
		Email:    cfg.Seed.AdminEmail,
		Password: models.HashPassword(cfg.Seed.AdminPassword),
	}

	if err := db.Create(&user).Error; err != nil {
		log.Error().Err(err).Msg("failed to seed admin user")
		return
	}

	if err := db.Create(&models.UserRole{UserID: user.ID, Role: models.RoleAdmin}).Error; err != nil {
		log.Error().Err(err).Msg("failed to seed admin role grant")
		return
	}

	log.Info().Str("email", user.Email).Msg("seeded admin account")
}
