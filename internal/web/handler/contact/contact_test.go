package contact

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/amigovet/amigovet-server/internal/config"
	contactctl "github.com/amigovet/amigovet-server/internal/db/controller/contact"
	"github.com/amigovet/amigovet-server/internal/db/models"
)

func newTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err, "failed to open sqlite in-memory db")

	err = db.AutoMigrate(&models.ContactMessage{})
	require.NoError(t, err, "failed to migrate contact model")

	app := fiber.New()

	var s Service
	require.NoError(t, s.Init(app, &config.Config{}, db))

	// admin routes mounted without the session middleware for the test
	s.Register(app.Group("/api/admin"))

	return app, db
}

func postJSON(t *testing.T, app *fiber.App, target string, body any) *http.Response {
	t.Helper()

	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, target, bytes.NewReader(payload))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)

	resp, err := app.Test(req, -1)
	require.NoError(t, err, "app.Test failed")

	return resp
}

func TestPostStoresMessage(t *testing.T) {
	app, db := newTestApp(t)

	resp := postJSON(t, app, Path, Request{
		Name:    "Maria Souza",
		Email:   "maria@example.com",
		Message: "Meu gato está espirrando muito.",
	})
	defer resp.Body.Close() //nolint:errcheck

	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	messages, total, err := contactctl.List(db, false, 0, 0)
	require.NoError(t, err)
	require.EqualValues(t, 1, total)
	assert.Equal(t, "Maria Souza", messages[0].Name)
	assert.False(t, messages[0].Read)
}

func TestPostValidation(t *testing.T) {
	app, _ := newTestApp(t)

	testCases := []struct {
		name string
		body Request
	}{
		{name: "missing name", body: Request{Message: "olá"}},
		{name: "missing message", body: Request{Name: "Maria"}},
		{name: "bad email", body: Request{Name: "Maria", Email: "not-an-email", Message: "olá"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			resp := postJSON(t, app, Path, tc.body)
			defer resp.Body.Close() //nolint:errcheck

			assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
		})
	}
}

func TestAdminInboxFlow(t *testing.T) {
	app, db := newTestApp(t)

	msg := &models.ContactMessage{Name: "Maria", Message: "olá"}
	require.NoError(t, contactctl.Create(db, msg))

	// mark read
	req := httptest.NewRequest(http.MethodPut, fmt.Sprintf("/api/admin/contacts/%d/read", msg.ID), nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	resp.Body.Close() //nolint:errcheck
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	unread, err := contactctl.CountUnread(db)
	require.NoError(t, err)
	assert.EqualValues(t, 0, unread)

	// delete
	req = httptest.NewRequest(http.MethodDelete, fmt.Sprintf("/api/admin/contacts/%d", msg.ID), nil)
	resp, err = app.Test(req, -1)
	require.NoError(t, err)
	resp.Body.Close() //nolint:errcheck
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	_, total, err := contactctl.List(db, false, 0, 0)
	require.NoError(t, err)
	assert.EqualValues(t, 0, total)
}

func TestAdminInboxNotFound(t *testing.T) {
	app, _ := newTestApp(t)

	req := httptest.NewRequest(http.MethodPut, "/api/admin/contacts/9999/read", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	resp.Body.Close() //nolint:errcheck

	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}
