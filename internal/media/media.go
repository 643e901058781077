// Package media stores uploaded images. Every upload is decoded, downscaled
// to the configured bounds and re-encoded as JPEG, so the public site never
// serves oversized originals.
package media

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path"
	"path/filepath"

	"github.com/disintegration/imaging"
	"github.com/rs/zerolog/log"

	"github.com/amigovet/amigovet-server/internal/config"
	"github.com/amigovet/amigovet-server/internal/uniuri"
)

// ErrNotAnImage is returned when the uploaded bytes do not decode as an image.
var ErrNotAnImage = errors.New("uploaded file is not a decodable image")

// Result is the outcome of one upload, shaped for the admin client.
type Result struct {
	ImageURL string `json:"imageUrl"`
	Success  bool   `json:"success"`
	Error    string `json:"error,omitempty"`
}

// Store transforms and persists images under the configured media path.
type Store struct {
	cfg *config.Media
}

// NewStore creates a media store from the media configuration.
func NewStore(cfg *config.Media) *Store {
	return &Store{cfg: cfg}
}

// Save decodes the uploaded bytes, fits them inside the configured
// max bounds (never upscaling) and writes the JPEG re-encode under a
// random filename. It returns the public URL of the stored image.
func (s *Store) Save(data []byte) (string, error) {
	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		log.Debug().Err(err).Msg("upload rejected: decode failed")

		return "", ErrNotAnImage
	}

	// Fit keeps the aspect ratio and never upscales
	img = imaging.Fit(img, s.cfg.MaxWidth, s.cfg.MaxHeight, imaging.Lanczos)

	if err = os.MkdirAll(s.cfg.Path, 0o750); err != nil {
		return "", fmt.Errorf("failed to create media directory: %w", err)
	}

	name := uniuri.NewLen(uniuri.FileLen) + ".jpg"
	dst := filepath.Join(s.cfg.Path, name)

	if err = imaging.Save(img, dst, imaging.JPEGQuality(s.cfg.Quality)); err != nil {
		return "", fmt.Errorf("failed to save image: %w", err)
	}

	return path.Join(s.cfg.PublicPath, name), nil
}
