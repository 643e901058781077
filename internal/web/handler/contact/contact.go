// Package contact handles the public contact form and its admin inbox.
package contact

import (
	"errors"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/amigovet/amigovet-server/internal/config"
	contactctl "github.com/amigovet/amigovet-server/internal/db/controller/contact"
	"github.com/amigovet/amigovet-server/internal/db/models"
	"github.com/amigovet/amigovet-server/internal/web/handler"
)

const (
	// Path is the path of the public contact form endpoint.
	Path = "/api/contacts"

	defaultPageSize = 50
)

// Request is the public contact form body.
type Request struct {
	Name    string `json:"name" validate:"required,max=255"`
	Email   string `json:"email" validate:"omitempty,email,max=255"`
	Phone   string `json:"phone" validate:"omitempty,max=50"`
	Subject string `json:"subject" validate:"omitempty,max=255"`
	Message string `json:"message" validate:"required,max=5000"`
}

// Service is the contact handler service.
type Service struct {
	cfg      *config.Config
	db       *gorm.DB
	validate *validator.Validate
}

// Handler is the contact handler.
var Handler = Service{}

// Init initializes the contact handler and registers the public route.
func (s *Service) Init(app *fiber.App, cfg *config.Config, db *gorm.DB) error {
	if app == nil || cfg == nil || db == nil {
		return errors.New("app, cfg or db is nil")
	}

	s.db = db
	s.cfg = cfg
	s.validate = validator.New()

	app.Post(Path, s.Post)

	return nil
}

// Register mounts the admin inbox routes on the given (guarded) router.
func (s *Service) Register(router fiber.Router) {
	router.Get("/contacts", s.List)
	router.Put("/contacts/:id/read", s.MarkRead)
	router.Delete("/contacts/:id", s.Delete)
}

// Post stores a submitted contact form message.
func (s *Service) Post(c *fiber.Ctx) error {
	req := new(Request)

	if err := c.BodyParser(req); err != nil {
		return handler.Fail(c, fiber.StatusBadRequest, "malformed request body")
	}

	if err := s.validate.Struct(req); err != nil {
		return handler.Fail(c, fiber.StatusBadRequest, "name and message are required")
	}

	msg := &models.ContactMessage{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Subject: req.Subject,
		Message: req.Message,
	}

	if err := contactctl.Create(s.db, msg); err != nil {
		log.Error().Err(err).Msg("failed to store contact message")

		return handler.Fail(c, fiber.StatusInternalServerError, "failed to store message")
	}

	return handler.OK(c, msg)
}

// List returns the inbox newest first, optionally only unread messages.
func (s *Service) List(c *fiber.Ctx) error {
	unreadOnly := c.QueryBool("unread")
	limit := c.QueryInt("limit", defaultPageSize)
	offset := c.QueryInt("offset", 0)

	messages, total, err := contactctl.List(s.db, unreadOnly, limit, offset)
	if err != nil {
		log.Error().Err(err).Msg("failed to list contact messages")

		return handler.Fail(c, fiber.StatusInternalServerError, "failed to list messages")
	}

	return handler.OK(c, fiber.Map{
		"messages": messages,
		"total":    total,
	})
}

// MarkRead marks one message as handled.
func (s *Service) MarkRead(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil {
		return handler.Fail(c, fiber.StatusBadRequest, "invalid message id")
	}

	if err = contactctl.MarkRead(s.db, id); err != nil {
		if errors.Is(err, contactctl.ErrMessageNotFound) {
			return handler.Fail(c, fiber.StatusNotFound, "message not found")
		}

		log.Error().Err(err).Uint64("id", id).Msg("failed to mark message read")

		return handler.Fail(c, fiber.StatusInternalServerError, "failed to update message")
	}

	return handler.OK(c, nil)
}

// Delete removes one message from the inbox.
func (s *Service) Delete(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil {
		return handler.Fail(c, fiber.StatusBadRequest, "invalid message id")
	}

	if err = contactctl.Delete(s.db, id); err != nil {
		if errors.Is(err, contactctl.ErrMessageNotFound) {
			return handler.Fail(c, fiber.StatusNotFound, "message not found")
		}

		log.Error().Err(err).Uint64("id", id).Msg("failed to delete message")

		return handler.Fail(c, fiber.StatusInternalServerError, "failed to delete message")
	}

	return handler.OK(c, nil)
}
