// Package lostpet handles the public lost pet board and its admin CRUD.
package lostpet

import (
	"errors"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/amigovet/amigovet-server/internal/config"
	lostpetctl "github.com/amigovet/amigovet-server/internal/db/controller/lostpet"
	"github.com/amigovet/amigovet-server/internal/db/models"
	"github.com/amigovet/amigovet-server/internal/web/handler"
)

const (
	// Path is the path of the public lost pet board.
	Path = "/api/lost-pets"
)

// Request is the create/update body of a lost pet listing.
type Request struct {
	PetName      string `json:"pet_name" validate:"required,max=255"`
	Species      string `json:"species" validate:"omitempty,max=100"`
	Breed        string `json:"breed" validate:"omitempty,max=100"`
	Description  string `json:"description" validate:"omitempty,max=5000"`
	PhotoURL     string `json:"photo_url" validate:"omitempty,max=512"`
	ContactName  string `json:"contact_name" validate:"omitempty,max=255"`
	ContactPhone string `json:"contact_phone" validate:"required,max=50"`
	LastSeen     string `json:"last_seen" validate:"omitempty,max=512"`
}

// Service is the lost pet handler service.
type Service struct {
	cfg      *config.Config
	db       *gorm.DB
	validate *validator.Validate
}

// Handler is the lost pet handler.
var Handler = Service{}

// Init initializes the lost pet handler and registers the public route.
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
	router.Get("/lost-pets", s.ListAll)
	router.Post("/lost-pets", s.Create)
	router.Put("/lost-pets/:id", s.Update)
	router.Put("/lost-pets/:id/found", s.MarkFound)
	router.Delete("/lost-pets/:id", s.Delete)
}

// List serves the public board: open listings only unless ?all=true,
// newest first.
func (s *Service) List(c *fiber.Ctx) error {
	pets, err := lostpetctl.List(s.db, c.QueryBool("all"))
	if err != nil {
		log.Error().Err(err).Msg("failed to list lost pets")

		return handler.Fail(c, fiber.StatusInternalServerError, "failed to list lost pets")
	}

	return handler.OK(c, pets)
}

// ListAll serves the admin view including listings already marked found.
func (s *Service) ListAll(c *fiber.Ctx) error {
	pets, err := lostpetctl.List(s.db, true)
	if err != nil {
		log.Error().Err(err).Msg("failed to list lost pets")

		return handler.Fail(c, fiber.StatusInternalServerError, "failed to list lost pets")
	}

	return handler.OK(c, pets)
}

// Create adds a new listing to the board.
func (s *Service) Create(c *fiber.Ctx) error {
	req := new(Request)

	if err := c.BodyParser(req); err != nil {
		return handler.Fail(c, fiber.StatusBadRequest, "malformed request body")
	}

	if err := s.validate.Struct(req); err != nil {
		return handler.Fail(c, fiber.StatusBadRequest, "pet name and contact phone are required")
	}

	pet := s.apply(&models.LostPet{}, req)

	if err := lostpetctl.Create(s.db, pet); err != nil {
		log.Error().Err(err).Msg("failed to create lost pet listing")

		return handler.Fail(c, fiber.StatusInternalServerError, "failed to create listing")
	}

	return handler.OK(c, pet)
}

// Update replaces the editable fields of a listing.
func (s *Service) Update(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil {
		return handler.Fail(c, fiber.StatusBadRequest, "invalid listing id")
	}

	req := new(Request)
	if err = c.BodyParser(req); err != nil {
		return handler.Fail(c, fiber.StatusBadRequest, "malformed request body")
	}

	if err = s.validate.Struct(req); err != nil {
		return handler.Fail(c, fiber.StatusBadRequest, "pet name and contact phone are required")
	}

	pet, err := lostpetctl.Get(s.db, id)
	if err != nil {
		if errors.Is(err, lostpetctl.ErrListingNotFound) {
			return handler.Fail(c, fiber.StatusNotFound, "listing not found")
		}

		log.Error().Err(err).Uint64("id", id).Msg("failed to load lost pet listing")

		return handler.Fail(c, fiber.StatusInternalServerError, "failed to update listing")
	}

	s.apply(pet, req)

	if err = lostpetctl.Update(s.db, pet); err != nil {
		log.Error().Err(err).Uint64("id", id).Msg("failed to update lost pet listing")

		return handler.Fail(c, fiber.StatusInternalServerError, "failed to update listing")
	}

	return handler.OK(c, pet)
}

// MarkFound closes a listing; it drops off the public board but is kept.
func (s *Service) MarkFound(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil {
		return handler.Fail(c, fiber.StatusBadRequest, "invalid listing id")
	}

	if err = lostpetctl.MarkFound(s.db, id); err != nil {
		if errors.Is(err, lostpetctl.ErrListingNotFound) {
			return handler.Fail(c, fiber.StatusNotFound, "listing not found")
		}

		log.Error().Err(err).Uint64("id", id).Msg("failed to mark lost pet found")

		return handler.Fail(c, fiber.StatusInternalServerError, "failed to update listing")
	}

	return handler.OK(c, nil)
}

// Delete removes a listing entirely.
func (s *Service) Delete(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil {
		return handler.Fail(c, fiber.StatusBadRequest, "invalid listing id")
	}

	if err = lostpetctl.Delete(s.db, id); err != nil {
		if errors.Is(err, lostpetctl.ErrListingNotFound) {
			return handler.Fail(c, fiber.StatusNotFound, "listing not found")
		}

		log.Error().Err(err).Uint64("id", id).Msg("failed to delete lost pet listing")

		return handler.Fail(c, fiber.StatusInternalServerError, "failed to delete listing")
	}

	return handler.OK(c, nil)
}

func (s *Service) apply(pet *models.LostPet, req *Request) *models.LostPet {
	pet.PetName = req.PetName
	pet.Species = req.Species
	pet.Breed = req.Breed
	pet.Description = req.Description
	pet.PhotoURL = req.PhotoURL
	pet.ContactName = req.ContactName
	pet.ContactPhone = req.ContactPhone
	pet.LastSeen = req.LastSeen

	return pet
}
