// Package sitesettings exposes the admin read/write surface of the
// section settings.
package sitesettings

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/amigovet/amigovet-server/internal/config"
	settingctl "github.com/amigovet/amigovet-server/internal/db/controller/setting"
	"github.com/amigovet/amigovet-server/internal/settings"
	"github.com/amigovet/amigovet-server/internal/web/handler"
)

const (
	// Path is the path of the admin settings endpoint.
	Path = "/api/admin/settings/:section"

	// ListPath is the path listing the editable sections.
	ListPath = "/api/admin/settings"
)

// Service is the admin settings handler service.
type Service struct {
	cfg *config.Config
	db  *gorm.DB
	bus *settings.Bus
}

// Handler is the admin settings handler.
var Handler = Service{}

// Init initializes the settings handler. The routes are expected to be
// registered behind the admin middleware.
func (s *Service) Init(app *fiber.App, cfg *config.Config, db *gorm.DB) error {
	if app == nil || cfg == nil || db == nil {
		return errors.New("app, cfg or db is nil")
	}

	s.db = db
	s.cfg = cfg
	s.bus = settings.Default

	return nil
}

// Register mounts the settings routes on the given (guarded) router.
func (s *Service) Register(router fiber.Router) {
	router.Get("/settings", s.List)
	router.Get("/settings/:section", s.Get)
	router.Put("/settings/:section", s.Put)
}

// List returns the editable section names.
func (s *Service) List(c *fiber.Ctx) error {
	return handler.OK(c, settings.Sections())
}

// Get returns the effective values of one section: stored values merged
// over the compiled defaults, keyed the way the admin form fields are.
func (s *Service) Get(c *fiber.Ctx) error {
	section := c.Params("section")

	schema, ok := settings.Lookup(section)
	if !ok {
		return handler.Fail(c, fiber.StatusNotFound, "unknown section")
	}

	rows, err := settingctl.ListSection(s.db, section)
	if err != nil {
		log.Error().Err(err).Str("section", section).Msg("settings fetch failed")

		return handler.Fail(c, fiber.StatusInternalServerError, "failed to load settings")
	}

	return handler.OK(c, fiber.Map{
		"values": settings.Project(rows, schema),
		"schema": schemaEcho(schema),
	})
}

// schemaEcho renders the section schema for the admin form: field keys,
// wire kinds and defaults, plus composite part layout.
func schemaEcho(schema settings.Schema) fiber.Map {
	fields := make([]fiber.Map, 0, len(schema.Fields))
	for _, f := range schema.Fields {
		fields = append(fields, fiber.Map{
			"key":     f.Key,
			"kind":    f.Kind.String(),
			"default": f.Default,
		})
	}

	composites := make([]fiber.Map, 0, len(schema.Composites))

	for _, comp := range schema.Composites {
		parts := make([]fiber.Map, 0, len(comp.Parts))
		for _, p := range comp.Parts {
			parts = append(parts, fiber.Map{
				"key":    p.Key,
				"prefix": p.Prefix,
			})
		}

		composites = append(composites, fiber.Map{
			"key":     comp.Key,
			"parts":   parts,
			"default": comp.Default,
		})
	}

	return fiber.Map{
		"section":    schema.Section,
		"fields":     fields,
		"composites": composites,
	}
}

// Put persists the submitted fields of one section. The save is fail-fast
// and never rolls back: on a partial failure the client is told which key
// failed and re-submits.
func (s *Service) Put(c *fiber.Ctx) error {
	section := c.Params("section")

	if _, ok := settings.Lookup(section); !ok {
		return handler.Fail(c, fiber.StatusNotFound, "unknown section")
	}

	fields := make(map[string]any)
	if err := c.BodyParser(&fields); err != nil {
		return handler.Fail(c, fiber.StatusBadRequest, "malformed request body")
	}

	if len(fields) == 0 {
		return handler.Fail(c, fiber.StatusBadRequest, "no fields submitted")
	}

	if err := settings.Save(s.db, s.bus, section, fields); err != nil {
		var writeErr *settings.WriteError
		if errors.As(err, &writeErr) {
			log.Error().Err(writeErr).Msg("settings save failed")

			return handler.Fail(c, fiber.StatusInternalServerError,
				"failed to save field "+writeErr.Key+", please try again")
		}

		log.Error().Err(err).Str("section", section).Msg("settings save failed")

		return handler.Fail(c, fiber.StatusInternalServerError, "failed to save settings")
	}

	return handler.OK(c, nil)
}
