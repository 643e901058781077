// Package dashboard serves the admin landing data: inbox and board counts
// plus the signed-in principal.
package dashboard

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/amigovet/amigovet-server/internal/config"
	contactctl "github.com/amigovet/amigovet-server/internal/db/controller/contact"
	galleryctl "github.com/amigovet/amigovet-server/internal/db/controller/gallery"
	lostpetctl "github.com/amigovet/amigovet-server/internal/db/controller/lostpet"
	"github.com/amigovet/amigovet-server/internal/settings"
	"github.com/amigovet/amigovet-server/internal/web/handler"
	authmw "github.com/amigovet/amigovet-server/internal/web/middleware/auth"
)

// recentMessages is how many of the latest contact messages the
// dashboard shows.
const recentMessages = 5

// Service is the dashboard handler service.
type Service struct {
	cfg *config.Config
	db  *gorm.DB
}

// Handler is the dashboard handler.
var Handler = Service{}

// Init initializes the dashboard handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, db *gorm.DB) error {
	if app == nil || cfg == nil || db == nil {
		return errors.New("app, cfg or db is nil")
	}

	s.db = db
	s.cfg = cfg

	return nil
}

// Register mounts the dashboard route on the given (guarded) router.
func (s *Service) Register(router fiber.Router) {
	router.Get("/dashboard", s.Get)
}

// Get returns the dashboard data. Count failures degrade to zero so the
// dashboard always renders.
func (s *Service) Get(c *fiber.Ctx) error {
	unread, err := contactctl.CountUnread(s.db)
	if err != nil {
		log.Error().Err(err).Msg("failed to count unread messages")
	}

	recent, _, err := contactctl.List(s.db, false, recentMessages, 0)
	if err != nil {
		log.Error().Err(err).Msg("failed to list recent messages")
	}

	pets, err := lostpetctl.List(s.db, false)
	if err != nil {
		log.Error().Err(err).Msg("failed to list open lost pet listings")
	}

	images, err := galleryctl.List(s.db, "")
	if err != nil {
		log.Error().Err(err).Msg("failed to list gallery images")
	}

	return handler.OK(c, fiber.Map{
		"principal":      authmw.Principal(c),
		"unreadMessages": unread,
		"recentMessages": recent,
		"openLostPets":   len(pets),
		"galleryImages":  len(images),
		"sections":       settings.Sections(),
	})
}
