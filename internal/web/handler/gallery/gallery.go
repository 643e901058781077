// Package gallery handles the public photo gallery and its admin CRUD.
package gallery

import (
	"errors"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/amigovet/amigovet-server/internal/config"
	galleryctl "github.com/amigovet/amigovet-server/internal/db/controller/gallery"
	"github.com/amigovet/amigovet-server/internal/db/models"
	"github.com/amigovet/amigovet-server/internal/web/handler"
)

const (
	// Path is the path of the public gallery endpoint.
	Path = "/api/gallery"
)

// Request is the create/update body of a gallery image.
type Request struct {
	Category  string `json:"category" validate:"omitempty,max=100"`
	Title     string `json:"title" validate:"omitempty,max=255"`
	ImageURL  string `json:"image_url" validate:"required,max=512"`
	SortOrder int    `json:"sort_order"`
}

// Service is the gallery handler service.
type Service struct {
	cfg      *config.Config
	db       *gorm.DB
	validate *validator.Validate
}

// Handler is the gallery handler.
var Handler = Service{}

// Init initializes the gallery handler and registers the public route.
func (s *Service) Init(app *fiber.App, cfg *config.Config, db *gorm.DB) error {
	if app == nil || cfg == nil || db == nil {
		return errors.New("app, cfg or db is nil")
	}

	s.db = db
	s.cfg = cfg
	s.validate = validator.New()

	app.Get(Path, s.List)

	return nil
}

// Register mounts the admin routes on the given (guarded) router.
func (s *Service) Register(router fiber.Router) {
	router.Post("/gallery", s.Create)
	router.Put("/gallery/:id", s.Update)
	router.Delete("/gallery/:id", s.Delete)
}

// List serves the gallery, optionally filtered by category.
func (s *Service) List(c *fiber.Ctx) error {
	images, err := galleryctl.List(s.db, c.Query("category"))
	if err != nil {
		log.Error().Err(err).Msg("failed to list gallery images")

		return handler.Fail(c, fiber.StatusInternalServerError, "failed to list gallery")
	}

	return handler.OK(c, images)
}

// Create adds an image to the gallery.
func (s *Service) Create(c *fiber.Ctx) error {
	req := new(Request)

	if err := c.BodyParser(req); err != nil {
		return handler.Fail(c, fiber.StatusBadRequest, "malformed request body")
	}

	if err := s.validate.Struct(req); err != nil {
		return handler.Fail(c, fiber.StatusBadRequest, "image url is required")
	}

	img := &models.GalleryImage{
		Category:  req.Category,
		Title:     req.Title,
		ImageURL:  req.ImageURL,
		SortOrder: req.SortOrder,
	}

	if err := galleryctl.Create(s.db, img); err != nil {
		log.Error().Err(err).Msg("failed to create gallery image")

		return handler.Fail(c, fiber.StatusInternalServerError, "failed to create image")
	}

	return handler.OK(c, img)
}

// Update replaces the editable fields of an image.
func (s *Service) Update(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil {
		return handler.Fail(c, fiber.StatusBadRequest, "invalid image id")
	}

	req := new(Request)
	if err = c.BodyParser(req); err != nil {
		return handler.Fail(c, fiber.StatusBadRequest, "malformed request body")
	}

	if err = s.validate.Struct(req); err != nil {
		return handler.Fail(c, fiber.StatusBadRequest, "image url is required")
	}

	img := &models.GalleryImage{
		ID:        id,
		Category:  req.Category,
		Title:     req.Title,
		ImageURL:  req.ImageURL,
		SortOrder: req.SortOrder,
	}

	if err = galleryctl.Update(s.db, img); err != nil {
		if errors.Is(err, galleryctl.ErrImageNotFound) {
			return handler.Fail(c, fiber.StatusNotFound, "image not found")
		}

		log.Error().Err(err).Uint64("id", id).Msg("failed to update gallery image")

		return handler.Fail(c, fiber.StatusInternalServerError, "failed to update image")
	}

	return handler.OK(c, img)
}

// Delete removes an image from the gallery.
func (s *Service) Delete(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil {
		return handler.Fail(c, fiber.StatusBadRequest, "invalid image id")
	}

	if err = galleryctl.Delete(s.db, id); err != nil {
		if errors.Is(err, galleryctl.ErrImageNotFound) {
			return handler.Fail(c, fiber.StatusNotFound, "image not found")
		}

		log.Error().Err(err).Uint64("id", id).Msg("failed to delete gallery image")

		return handler.Fail(c, fiber.StatusInternalServerError, "failed to delete image")
	}

	return handler.OK(c, nil)
}
