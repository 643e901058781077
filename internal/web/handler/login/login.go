package login

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/amigovet/amigovet-server/internal/auth"
	"github.com/amigovet/amigovet-server/internal/config"
	"github.com/amigovet/amigovet-server/internal/media"
	"github.com/amigovet/amigovet-server/internal/web/handler"
	"github.com/amigovet/amigovet-server/internal/web/session"
)

const (
	// Path is the path of the login endpoint.
	Path = "/api/admin/login"
)

// Request is the login request body.
type Request struct {
	Email             string `json:"email"`
	Password          string `json:"password"`
	VerificationToken string `json:"verificationToken"`
}

// Service is the login handler service.
type Service struct {
	cfg      *config.Config
	db       *gorm.DB
	resolver *auth.Resolver
}

// Handler is the login handler.
var Handler = Service{}

// Init initializes the login handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, db *gorm.DB) error {
	if app == nil || cfg == nil || db == nil {
		return errors.New("app, cfg or db is nil")
	}

	s.db = db
	s.cfg = cfg
	s.resolver = auth.NewResolver(db)

	app.Post(Path, s.Post)

	return nil
}

// Post handles the login request. On success a session is written and the
// session cookie is set; the resolved principal is returned to the client.
func (s *Service) Post(c *fiber.Ctx) error {
	req := new(Request)

	if err := c.BodyParser(req); err != nil {
		return handler.Fail(c, fiber.StatusBadRequest, "malformed request body")
	}

	principal, err := s.resolver.SignIn(req.Email, req.Password, req.VerificationToken)
	if err != nil {
		return s.failSignIn(c, req.Email, err)
	}

	sessionID, err := session.GenerateSessionID()
	if err != nil {
		log.Error().Err(err).Msg("failed to generate session ID")

		return handler.Fail(c, fiber.StatusInternalServerError, "internal server error")
	}

	userSession := &session.Data{
		Principal: *principal,
	}

	if err = userSession.Write(sessionID, s.cfg.Webserver.Session.ExpiryTime); err != nil {
		log.Error().Err(err).Msg("failed to write session")

		return handler.Fail(c, fiber.StatusInternalServerError, "internal server error")
	}

	c.Cookie(&fiber.Cookie{
		Name:     session.CookieName,
		Value:    sessionID,
		Expires:  time.Now().Add(s.cfg.Webserver.Session.ExpiryTime),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})

	uploadToken, err := media.IssueToken(s.cfg.Media.TokenSecret, principal.Email, s.cfg.Webserver.Session.ExpiryTime)
	if err != nil {
		log.Error().Err(err).Msg("failed to issue upload token")

		return handler.Fail(c, fiber.StatusInternalServerError, "internal server error")
	}

	return handler.OK(c, fiber.Map{
		"principal":   principal,
		"uploadToken": uploadToken,
	})
}

func (s *Service) failSignIn(c *fiber.Ctx, email string, err error) error {
	switch {
	case errors.Is(err, auth.ErrVerificationRequired):
		return handler.Fail(c, fiber.StatusBadRequest, "verification required")
	case errors.Is(err, auth.ErrInvalidCredentials):
		return handler.Fail(c, fiber.StatusUnauthorized, "invalid email or password")
	case errors.Is(err, auth.ErrUserAccountDisabled):
		return handler.Fail(c, fiber.StatusForbidden, "account disabled")
	case errors.Is(err, auth.ErrAccessDenied):
		return handler.Fail(c, fiber.StatusForbidden, "access denied")
	default:
		log.Error().Err(err).Str("email", email).Msg("sign-in failed")

		return handler.Fail(c, fiber.StatusInternalServerError, "internal server error")
	}
}
