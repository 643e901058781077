package logout

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/amigovet/amigovet-server/internal/config"
	"github.com/amigovet/amigovet-server/internal/web/handler"
	"github.com/amigovet/amigovet-server/internal/web/session"
)

const (
	// Path is the path of the logout endpoint.
	Path = "/api/admin/logout"
)

// Service is the logout handler service.
type Service struct {
	cfg *config.Config
	db  *gorm.DB
}

// Handler is the logout handler.
var Handler = Service{}

// Init initializes the logout handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, db *gorm.DB) error {
	if app == nil || cfg == nil || db == nil {
		return errors.New("app, cfg or db is nil")
	}

	s.db = db
	s.cfg = cfg

	app.Post(Path, s.Post)

	return nil
}

// Post destroys the current session, if any, and clears the cookie.
// Logging out without a session is not an error.
func (s *Service) Post(c *fiber.Ctx) error {
	if sessionID := c.Cookies(session.CookieName); sessionID != "" {
		if err := session.Destroy(sessionID); err != nil {
			log.Error().Err(err).Msg("failed to destroy session")
		}
	}

	c.ClearCookie(session.CookieName)

	return handler.OK(c, nil)
}
