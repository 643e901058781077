package sitesettings

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

	"github.com/amigovet/amigovet-server/internal/auth"
	"github.com/amigovet/amigovet-server/internal/config"
	settingctl "github.com/amigovet/amigovet-server/internal/db/controller/setting"
	"github.com/amigovet/amigovet-server/internal/db/models"
	"github.com/amigovet/amigovet-server/internal/settings"
	authmw "github.com/amigovet/amigovet-server/internal/web/middleware/auth"
	websess "github.com/amigovet/amigovet-server/internal/web/session"
)

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

func newTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err, "failed to open sqlite in-memory db")

	err = db.AutoMigrate(&models.User{}, &models.UserRole{}, &models.Setting{})
	require.NoError(t, err, "failed to migrate models")

	websess.Init(&testStorage{data: make(map[string][]byte)})

	app := fiber.New()

	var s Service
	require.NoError(t, s.Init(app, &config.Config{}, db))

	// mount behind the real admin middleware, like in production
	s.Register(app.Group("/api/admin", authmw.RequireAdmin(db)))

	return app, db
}

// adminSession creates an admin account and a session cookie value for it.
func adminSession(t *testing.T, db *gorm.DB, grantAdmin bool) string {
	t.Helper()

	user := models.User{
		Active:   true,
		Email:    "ana@amigovet.com.br",
		Password: models.HashPassword("s3cret"),
	}
	require.NoError(t, db.Create(&user).Error)

	roles := []string{}
	if grantAdmin {
		require.NoError(t, db.Create(&models.UserRole{UserID: user.ID, Role: models.RoleAdmin}).Error)

		roles = append(roles, models.RoleAdmin)
	}

	sessionID, err := websess.GenerateSessionID()
	require.NoError(t, err)

	sessData := &websess.Data{
		Principal: auth.Principal{
			UserID:  user.ID,
			Email:   user.Email,
			Name:    "Dra. Ana Martins",
			Roles:   roles,
			IsAdmin: grantAdmin,
		},
	}
	require.NoError(t, sessData.Write(sessionID, time.Minute))

	return sessionID
}

func request(t *testing.T, app *fiber.App, method, target, sessionID string, body any) *http.Response {
	t.Helper()

	var reader *bytes.Reader

	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)

		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, target, reader)
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)

	if sessionID != "" {
		req.AddCookie(&http.Cookie{Name: websess.CookieName, Value: sessionID})
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err, "app.Test failed")

	return resp
}

func TestGetRequiresSession(t *testing.T) {
	app, _ := newTestApp(t)

	resp := request(t, app, http.MethodGet, "/api/admin/settings/general", "", nil)
	defer resp.Body.Close() //nolint:errcheck

	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestNonAdminSessionIsDestroyed(t *testing.T) {
	app, db := newTestApp(t)
	sessionID := adminSession(t, db, false)

	resp := request(t, app, http.MethodGet, "/api/admin/settings/general", sessionID, nil)
	defer resp.Body.Close() //nolint:errcheck

	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)

	// the session must be gone afterwards
	sessData := new(websess.Data)
	err := sessData.Read(sessionID)
	assert.True(t, err != nil || sessData.Principal.UserID == 0, "session must be destroyed")
}

func TestGetEffectiveValues(t *testing.T) {
	app, db := newTestApp(t)
	sessionID := adminSession(t, db, true)

	require.NoError(t, settings.Save(db, nil, settings.SectionGeneral, map[string]any{
		"site_name": "Clínica Nova",
	}))

	resp := request(t, app, http.MethodGet, "/api/admin/settings/general", sessionID, nil)
	defer resp.Body.Close() //nolint:errcheck

	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var envelope struct {
		Success bool `json:"success"`
		Data    struct {
			Values map[string]any `json:"values"`
			Schema struct {
				Section string `json:"section"`
				Fields  []struct {
					Key  string `json:"key"`
					Kind string `json:"kind"`
				} `json:"fields"`
			} `json:"schema"`
		} `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))
	require.True(t, envelope.Success)

	assert.Equal(t, "Clínica Nova", envelope.Data.Values["site_name"])
	// untouched field shows its default
	assert.Equal(t, "Cuidando de quem cuida de você", envelope.Data.Values["tagline"])

	// the schema echo drives the admin form
	assert.Equal(t, settings.SectionGeneral, envelope.Data.Schema.Section)
	require.NotEmpty(t, envelope.Data.Schema.Fields)
	assert.Equal(t, "site_name", envelope.Data.Schema.Fields[0].Key)
	assert.Equal(t, "text", envelope.Data.Schema.Fields[0].Kind)
}

func TestPutPersistsFields(t *testing.T) {
	app, db := newTestApp(t)
	sessionID := adminSession(t, db, true)

	resp := request(t, app, http.MethodPut, "/api/admin/settings/veterinarian", sessionID, map[string]any{
		"name":        "Dr. Bruno Costa",
		"specialties": []string{"Ortopedia"},
	})
	defer resp.Body.Close() //nolint:errcheck

	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	rows, err := settingctl.ListSection(db, settings.SectionVeterinarian)
	require.NoError(t, err)

	data := settings.ProjectVeterinarian(rows)
	assert.Equal(t, "Dr. Bruno Costa", data.Name)
	assert.Equal(t, []string{"Ortopedia"}, data.Specialties)
}

func TestPutUnknownSection(t *testing.T) {
	app, db := newTestApp(t)
	sessionID := adminSession(t, db, true)

	resp := request(t, app, http.MethodPut, "/api/admin/settings/bogus", sessionID, map[string]any{"x": "y"})
	defer resp.Body.Close() //nolint:errcheck

	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestPutEmptyBody(t *testing.T) {
	app, db := newTestApp(t)
	sessionID := adminSession(t, db, true)

	resp := request(t, app, http.MethodPut, "/api/admin/settings/general", sessionID, map[string]any{})
	defer resp.Body.Close() //nolint:errcheck

	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestListSections(t *testing.T) {
	app, db := newTestApp(t)
	sessionID := adminSession(t, db, true)

	resp := request(t, app, http.MethodGet, "/api/admin/settings", sessionID, nil)
	defer resp.Body.Close() //nolint:errcheck

	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var envelope struct {
		Data []string `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))
	assert.Contains(t, envelope.Data, settings.SectionHero)
}
