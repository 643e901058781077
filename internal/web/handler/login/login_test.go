package login

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/amigovet/amigovet-server/internal/config"
	"github.com/amigovet/amigovet-server/internal/db/models"
	websess "github.com/amigovet/amigovet-server/internal/web/session"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err, "failed to open sqlite in-memory db")

	err = db.AutoMigrate(&models.User{}, &models.Profile{}, &models.UserRole{})
	require.NoError(t, err, "failed to migrate models")

	return db
}

func newTestConfig() *config.Config {
	return &config.Config{
		Webserver: config.Webserver{
			URL:     "http://localhost",
			Port:    3000,
			Session: config.Session{ExpiryTime: time.Minute},
		},
		Media: config.Media{
			TokenSecret: "test-secret",
		},
	}
}

// testStorage is a minimal in-memory implementation of storage.Storage for tests.
type testStorage struct {
	mu   sync.RWMutex
	data map[string][]byte
}

var _ storage.Storage = (*testStorage)(nil)

func (s *testStorage) Get(key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v := s.data[key]
	out := make([]byte, len(v))
	copy(out, v)

	return out, nil
}

func (s *testStorage) Set(key string, val []byte, _ time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.data == nil {
		s.data = make(map[string][]byte)
	}

	buf := make([]byte, len(val))
	copy(buf, val)
	s.data[key] = buf

	return nil
}

func (s *testStorage) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.data, key)

	return nil
}

func (s *testStorage) Reset() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.data = make(map[string][]byte)

	return nil
}

func (s *testStorage) Close() error { return nil }

func initSessionStore() {
	// Initialize a fresh in-memory session store for each test.
	websess.Init(&testStorage{data: make(map[string][]byte)})
}

func createAdmin(t *testing.T, db *gorm.DB, email, password string) {
	t.Helper()

	user := models.User{
		Active:   true,
		Email:    email,
		Password: models.HashPassword(password),
	}
	require.NoError(t, db.Create(&user).Error)
	require.NoError(t, db.Create(&models.UserRole{UserID: user.ID, Role: models.RoleAdmin}).Error)
}

func performLogin(t *testing.T, app *fiber.App, body Request) *http.Response {
	t.Helper()

	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, Path, bytes.NewReader(payload))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)

	resp, err := app.Test(req, -1)
	require.NoError(t, err, "app.Test failed")

	return resp
}

func TestPostSuccess(t *testing.T) {
	db := newTestDB(t)
	cfg := newTestConfig()
	app := fiber.New()

	initSessionStore()
	createAdmin(t, db, "ana@amigovet.com.br", "s3cret")

	var s Service
	require.NoError(t, s.Init(app, cfg, db))

	resp := performLogin(t, app, Request{
		Email:             "ana@amigovet.com.br",
		Password:          "s3cret",
		VerificationToken: "widget-token",
	})
	defer resp.Body.Close() //nolint:errcheck

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var sessionCookie string

	for _, c := range resp.Cookies() {
		if c.Name == websess.CookieName {
			sessionCookie = c.Value
		}
	}

	require.NotEmpty(t, sessionCookie, "session cookie must be set")

	// the written session carries the resolved principal
	sessData := new(websess.Data)
	require.NoError(t, sessData.Read(sessionCookie))
	assert.Equal(t, "ana@amigovet.com.br", sessData.Principal.Email)
	assert.True(t, sessData.Principal.IsAdmin)

	var envelope struct {
		Success bool `json:"success"`
		Data    struct {
			UploadToken string `json:"uploadToken"`
		} `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))
	assert.True(t, envelope.Success)
	assert.NotEmpty(t, envelope.Data.UploadToken)
}

func TestPostFailures(t *testing.T) {
	db := newTestDB(t)
	cfg := newTestConfig()
	app := fiber.New()

	initSessionStore()
	createAdmin(t, db, "ana@amigovet.com.br", "s3cret")

	staff := models.User{Active: true, Email: "staff@amigovet.com.br", Password: models.HashPassword("s3cret")}
	require.NoError(t, db.Create(&staff).Error)

	var s Service
	require.NoError(t, s.Init(app, cfg, db))

	testCases := []struct {
		name     string
		body     Request
		expected int
	}{
		{
			name:     "missing verification token",
			body:     Request{Email: "ana@amigovet.com.br", Password: "s3cret"},
			expected: fiber.StatusBadRequest,
		},
		{
			name:     "wrong password",
			body:     Request{Email: "ana@amigovet.com.br", Password: "wrong", VerificationToken: "tok"},
			expected: fiber.StatusUnauthorized,
		},
		{
			name:     "unknown email",
			body:     Request{Email: "nobody@amigovet.com.br", Password: "s3cret", VerificationToken: "tok"},
			expected: fiber.StatusUnauthorized,
		},
		{
			name:     "valid credentials without admin grant",
			body:     Request{Email: "staff@amigovet.com.br", Password: "s3cret", VerificationToken: "tok"},
			expected: fiber.StatusForbidden,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			resp := performLogin(t, app, tc.body)
			defer resp.Body.Close() //nolint:errcheck

			assert.Equal(t, tc.expected, resp.StatusCode)

			for _, c := range resp.Cookies() {
				if c.Name == websess.CookieName && c.Value != "" {
					t.Error("failed login must not set a session cookie")
				}
			}
		})
	}
}
