package config

import (
	"time"

	"github.com/amigovet/amigovet-server/internal/logger"
)

// Session settings.
type Session struct {
	ExpiryTime time.Duration
}

// Config overall data structure.
type Config struct {
	DevMode   bool // enable dev mode for development
	DB        DB
	Log       logger.Log
	Title     string
	Webserver Webserver
	Media     Media
	Seed      Seed
}

// Webserver implement webserver settings.
type Webserver struct {
	Domain       string  // domain name for the webserver
	Port         int     // listening port for the webserver
	ShutDownTime int     // wait time for shutdown
	URL          string  // base url for the webserver
	Session      Session // session settings
}

// Media holds the settings of the image upload pipeline.
type Media struct {
	Path        string // directory where processed uploads are stored
	PublicPath  string // public URL prefix under which uploads are served
	MaxWidth    int    // maximum width of a stored image
	MaxHeight   int    // maximum height of a stored image
	Quality     int    // jpeg quality for re-encoded images
	TokenSecret string // hmac secret for upload bearer tokens
}

// Seed holds the bootstrap admin account created on an empty database.
type Seed struct {
	AdminEmail    string
	AdminPassword string
}
