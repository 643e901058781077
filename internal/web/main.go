// Package web wires the fiber application: public content API, admin API
// behind the session middleware, and the liveness endpoint used by load
// balancers during graceful shutdown.
package web

import (
	"errors"
	"net/http"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/amigovet/amigovet-server/internal/config"
	loggeradapter "github.com/amigovet/amigovet-server/internal/logger/adapter/fiber"
	"github.com/amigovet/amigovet-server/internal/web/handler"
	"github.com/amigovet/amigovet-server/internal/web/handler/contact"
	"github.com/amigovet/amigovet-server/internal/web/handler/content"
	"github.com/amigovet/amigovet-server/internal/web/handler/dashboard"
	"github.com/amigovet/amigovet-server/internal/web/handler/gallery"
	"github.com/amigovet/amigovet-server/internal/web/handler/login"
	"github.com/amigovet/amigovet-server/internal/web/handler/logout"
	"github.com/amigovet/amigovet-server/internal/web/handler/lostpet"
	"github.com/amigovet/amigovet-server/internal/web/handler/sitesettings"
	"github.com/amigovet/amigovet-server/internal/web/handler/upload"
	authmw "github.com/amigovet/amigovet-server/internal/web/middleware/auth"
)

// CheckAlivePath is the liveness endpoint path.
const CheckAlivePath = "/checkalive"

// Service represents the web service.
type Service struct {
	App          *fiber.App
	cfg          *config.Config
	fastShutDown bool
	alive        atomic.Bool
	db           *gorm.DB
}

// Start starts the web service on the given address.
func (s *Service) Start(addr string) error {
	var doneFiber = make(chan bool)

	go func() {
		if err := s.App.Listen(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Msgf("fiber listen error: %v", err)
		}

		doneFiber <- true
	}()

	<-doneFiber // wait for fiber to stop

	return nil
}

// WaitShutdown waits for a termination signal and drains before stopping.
func (s *Service) WaitShutdown() {
	irqSig := make(chan os.Signal, 1)
	signal.Notify(irqSig, syscall.SIGINT, syscall.SIGTERM)

	sig := <-irqSig
	log.Info().Msgf("shutdown request (signal: %v)", sig)

	// Graceful shutdown for reverse proxies: set status to fail, so checkalive returns fail.
	if !s.fastShutDown {
		log.Info().Msgf(
			"graceful shutdown: return 503 while %d seconds to let LB to remove this pod from active targets",
			s.cfg.Webserver.ShutDownTime,
		)

		s.alive.Store(false)
		time.Sleep(time.Duration(s.cfg.Webserver.ShutDownTime) * time.Second)
	}

	// stop fiber http server
	serverShutdown := make(chan struct{})

	go func() {
		log.Info().Msg("stopping http server ...")

		err := s.App.Shutdown()
		if err != nil {
			log.Error().Err(err).Msg("")
		}

		serverShutdown <- struct{}{}
	}()

	<-serverShutdown
	log.Info().Msg("http server was stopped ... good bye...")
}

// New creates a new web service with the given configuration.
func New(cfg *config.Config, db *gorm.DB) *Service {
	if cfg == nil {
		panic("config cannot be nil")
	}

	if db == nil {
		panic("db cannot be nil")
	}

	// create fiber app
	app := fiber.New(
		fiber.Config{
			ReadBufferSize: 8192, //nolint:mnd
			AppName:        cfg.Title,
			CaseSensitive:  true,
			Prefork:        false,
			Immutable:      true,
		},
	)

	// access logging
	app.Use(loggeradapter.New(loggeradapter.Config{
		Config:        cfg.Log,
		CheckAliveURI: CheckAlivePath,
	}))

	// init web service
	service := &Service{
		cfg: cfg,
		App: app,
		db:  db,
	}

	service.alive.Store(true)

	app.Get(CheckAlivePath, func(c *fiber.Ctx) error {
		if !service.alive.Load() {
			return c.SendStatus(fiber.StatusServiceUnavailable)
		}

		return c.SendString("OK")
	})

	// serve processed uploads
	app.Static(cfg.Media.PublicPath, cfg.Media.Path)

	// public + token-guarded handlers register their own routes
	for name, h := range map[string]handler.Service{
		"content": &content.Handler,
		"contact": &contact.Handler,
		"lostpet": &lostpet.Handler,
		"gallery": &gallery.Handler,
		"login":   &login.Handler,
		"logout":  &logout.Handler,
		"upload":  &upload.Handler,
	} {
		if err := h.Init(app, cfg, db); err != nil {
			log.Fatal().Err(err).Str("handler", name).Msg(handler.ErrNilACDFatalLogMsg)
		}
	}

	// admin handlers mount behind the session middleware
	for name, h := range map[string]handler.Service{
		"dashboard":    &dashboard.Handler,
		"sitesettings": &sitesettings.Handler,
	} {
		if err := h.Init(app, cfg, db); err != nil {
			log.Fatal().Err(err).Str("handler", name).Msg(handler.ErrNilACDFatalLogMsg)
		}
	}

	admin := app.Group("/api/admin", authmw.RequireAdmin(db))

	dashboard.Handler.Register(admin)
	sitesettings.Handler.Register(admin)
	contact.Handler.Register(admin)
	lostpet.Handler.Register(admin)
	gallery.Handler.Register(admin)

	return service
}
