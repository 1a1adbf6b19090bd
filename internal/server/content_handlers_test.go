package server

import (
	"net/http"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio/internal/models"
)

func TestSubmitContact_Success(t *testing.T) {
	t.Parallel()

	_, app, db := newTestServer(t)

	resp := doJSON(t, app, http.MethodPost, "/api/contact", map[string]any{
		"name":    "Visitor",
		"email":   "visitor@example.com",
		"subject": "Hello",
		"message": "I would like to work with you.",
	}, "")
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var body struct {
		Message string `json:"message"`
	}
	decodeBody(t, resp, &body)
	assert.Equal(t, "Thanks for reaching out!", body.Message)

	var stored models.ContactMessage
	require.NoError(t, db.First(&stored).Error)
	assert.Equal(t, "Hello", stored.Subject)
	assert.False(t, stored.CreatedAt.IsZero())
}

func TestSubmitContact_MissingFields(t *testing.T) {
	t.Parallel()

	_, app, db := newTestServer(t)

	resp := doJSON(t, app, http.MethodPost, "/api/contact", map[string]any{
		"name":  "Visitor",
		"email": "visitor@example.com",
	}, "")
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var body models.ErrorResponse
	decodeBody(t, resp, &body)
	assert.Equal(t, "VALIDATION_ERROR", body.Code)
	assert.Equal(t, []string{"subject", "message"}, body.Fields)

	// Nothing was persisted.
	var count int64
	require.NoError(t, db.Model(&models.ContactMessage{}).Count(&count).Error)
	assert.Equal(t, int64(0), count)
}

func TestSubmitContact_RateLimited(t *testing.T) {
	t.Parallel()

	_, app, _ := newTestServer(t)

	payload := map[string]any{
		"name":    "Visitor",
		"email":   "visitor@example.com",
		"subject": "Hello",
		"message": "Hi.",
	}

	for i := 0; i < 5; i++ {
		resp := doJSON(t, app, http.MethodPost, "/api/contact", payload, "")
		require.Equal(t, http.StatusCreated, resp.StatusCode, "request %d should pass", i+1)
	}

	resp := doJSON(t, app, http.MethodPost, "/api/contact", payload, "")
	assert.Equal(t, http.StatusTooManyRequests, resp.StatusCode)
}

func TestDownloadResume(t *testing.T) {
	t.Parallel()

	s, app, _ := newTestServer(t)
	require.NoError(t, os.WriteFile(s.config.ResumePath, []byte("%PDF-1.4 test"), 0o644))

	resp := doJSON(t, app, http.MethodGet, "/api/resume", nil, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "Resume.pdf")
}
