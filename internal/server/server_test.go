package server

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gofiber/fiber/v2"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"portfolio/internal/config"
	"portfolio/internal/middleware"
	"portfolio/internal/models"
)

const testAdminToken = "test-admin-token"

func newTestServer(t *testing.T) (*Server, *fiber.App, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	if err := db.AutoMigrate(
		&models.Profile{},
		&models.Project{},
		&models.Experience{},
		&models.Skill{},
		&models.Testimonial{},
		&models.ContactMessage{},
	); err != nil {
		t.Fatalf("migrate sqlite: %v", err)
	}

	cfg := &config.Config{
		Port:           "0",
		AdminToken:     testAdminToken,
		DBDriver:       "sqlite",
		AllowedOrigins: "*",
		FrontendDist:   filepath.Join(t.TempDir(), "dist"),
		ResumePath:     filepath.Join(t.TempDir(), "resume.pdf"),
	}

	s := NewServerWithDB(cfg, db)
	app := fiber.New()
	s.SetupRoutes(app)
	return s, app, db
}

// doJSON issues a request with an optional JSON body and admin token.
func doJSON(t *testing.T, app *fiber.App, method, path string, body any, token string) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(payload)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set(middleware.AdminTokenHeader, token)
	}

	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	t.Cleanup(func() { _ = resp.Body.Close() })
	return resp
}

func decodeBody(t *testing.T, resp *http.Response, out any) {
	t.Helper()
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		t.Fatalf("decode response: %v", err)
	}
}

func TestHealthCheck(t *testing.T) {
	t.Parallel()

	_, app, _ := newTestServer(t)
	resp := doJSON(t, app, http.MethodGet, "/api/health", nil, "")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var body struct {
		Status string `json:"status"`
		Checks struct {
			Database string `json:"database"`
		} `json:"checks"`
	}
	decodeBody(t, resp, &body)
	if body.Status != "ok" {
		t.Fatalf("expected ok status, got %q", body.Status)
	}
	if body.Checks.Database != "healthy" {
		t.Fatalf("expected healthy database, got %q", body.Checks.Database)
	}
}

func TestGetProfile_EmptyDatabaseIs404(t *testing.T) {
	t.Parallel()

	_, app, _ := newTestServer(t)
	resp := doJSON(t, app, http.MethodGet, "/api/profile", nil, "")
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.StatusCode)
	}

	var body models.ErrorResponse
	decodeBody(t, resp, &body)
	if body.Code != "NOT_FOUND" {
		t.Fatalf("expected NOT_FOUND code, got %q", body.Code)
	}
}

func TestPublicLists_EmptyDatabaseIsEmptyArrayNot404(t *testing.T) {
	t.Parallel()

	_, app, _ := newTestServer(t)

	for _, path := range []string{"/api/projects", "/api/experiences", "/api/skills", "/api/testimonials"} {
		resp := doJSON(t, app, http.MethodGet, path, nil, "")
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("%s: expected 200, got %d", path, resp.StatusCode)
		}

		var body []json.RawMessage
		decodeBody(t, resp, &body)
		if len(body) != 0 {
			t.Fatalf("%s: expected empty list, got %d items", path, len(body))
		}
	}
}
