// Package content serves the public, read-only site content: each section
// is projected from stored settings with compiled defaults filling every
// missing or falsy field, so the endpoint always answers with a complete
// section even on a fresh or unreachable database.
package content

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/amigovet/amigovet-server/internal/config"
	settingctl "github.com/amigovet/amigovet-server/internal/db/controller/setting"
	"github.com/amigovet/amigovet-server/internal/db/models"
	"github.com/amigovet/amigovet-server/internal/settings"
	"github.com/amigovet/amigovet-server/internal/web/handler"
)

const (
	// Path is the path of the public content endpoint.
	Path = "/api/content/:section"
)

// Service is the public content handler service.
type Service struct {
	cfg *config.Config
	db  *gorm.DB
}

// Handler is the public content handler.
var Handler = Service{}

// Init initializes the content handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, db *gorm.DB) error {
	if app == nil || cfg == nil || db == nil {
		return errors.New("app, cfg or db is nil")
	}

	s.db = db
	s.cfg = cfg

	app.Get(Path, s.Get)

	return nil
}

// Get serves one projected section. A database failure degrades to the
// compiled defaults instead of an error: the public site must render.
func (s *Service) Get(c *fiber.Ctx) error {
	section := c.Params("section")

	if _, ok := settings.Lookup(section); !ok {
		return handler.Fail(c, fiber.StatusNotFound, "unknown section")
	}

	rows, err := settingctl.ListSection(s.db, section)
	if err != nil {
		log.Error().Err(err).Str("section", section).Msg("settings fetch failed, serving defaults")

		rows = nil
	}

	return handler.OK(c, Project(section, rows))
}

// Project builds the typed view model of a section from its stored rows.
func Project(section string, rows []models.Setting) any {
	switch section {
	case settings.SectionGeneral:
		return settings.ProjectGeneral(rows)
	case settings.SectionHero:
		return settings.ProjectHero(rows)
	case settings.SectionAbout:
		return settings.ProjectAbout(rows)
	case settings.SectionContact:
		return settings.ProjectContact(rows)
	case settings.SectionFooter:
		return settings.ProjectFooter(rows)
	case settings.SectionVeterinarian:
		return settings.ProjectVeterinarian(rows)
	default:
		return nil
	}
}
