// Package upload handles admin image uploads. The endpoint is guarded by
// a bearer token issued at login instead of the session cookie, so scripted
// bulk uploads work with a plain Authorization header.
package upload

import (
	"errors"
	"io"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/amigovet/amigovet-server/internal/config"
	"github.com/amigovet/amigovet-server/internal/media"
)

const (
	// Path is the path of the upload endpoint.
	Path = "/api/admin/upload"

	bearerPrefix = "Bearer "
)

// Service is the upload handler service.
type Service struct {
	cfg   *config.Config
	db    *gorm.DB
	store *media.Store
}

// Handler is the upload handler.
var Handler = Service{}

// Init initializes the upload handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, db *gorm.DB) error {
	if app == nil || cfg == nil || db == nil {
		return errors.New("app, cfg or db is nil")
	}

	s.db = db
	s.cfg = cfg
	s.store = media.NewStore(&cfg.Media)

	app.Post(Path, s.Post)

	return nil
}

// Post stores one uploaded image. The response shape matches what the
// admin upload widget expects: imageUrl on success, error otherwise.
func (s *Service) Post(c *fiber.Ctx) error {
	authHeader := c.Get(fiber.HeaderAuthorization)
	if !strings.HasPrefix(authHeader, bearerPrefix) {
		return c.Status(fiber.StatusUnauthorized).JSON(media.Result{
			Error: "missing bearer token",
		})
	}

	subject, err := media.VerifyToken(s.cfg.Media.TokenSecret, strings.TrimPrefix(authHeader, bearerPrefix))
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(media.Result{
			Error: "invalid upload token",
		})
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(media.Result{
			Error: "missing image file",
		})
	}

	file, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(media.Result{
			Error: "unreadable image file",
		})
	}
	defer file.Close() //nolint:errcheck

	data, err := io.ReadAll(file)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(media.Result{
			Error: "unreadable image file",
		})
	}

	url, err := s.store.Save(data)
	if err != nil {
		if errors.Is(err, media.ErrNotAnImage) {
			return c.Status(fiber.StatusUnprocessableEntity).JSON(media.Result{
				Error: "file is not a decodable image",
			})
		}

		log.Error().Err(err).Str("subject", subject).Msg("failed to store upload")

		return c.Status(fiber.StatusInternalServerError).JSON(media.Result{
			Error: "failed to store image",
		})
	}

	log.Info().Str("subject", subject).Str("url", url).Msg("image uploaded")

	return c.JSON(media.Result{
		ImageURL: url,
		Success:  true,
	})
}
