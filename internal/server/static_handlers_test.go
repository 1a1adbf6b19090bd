package server

import (
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStaticFallback_NoBundle(t *testing.T) {
	t.Parallel()

	_, app, _ := newTestServer(t)

	t.Run("root gets the API hint", func(t *testing.T) {
		resp, body := getHTML(t, app, "/")
		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Contains(t, body, "Portfolio API is running")
	})

	t.Run("other paths are 404", func(t *testing.T) {
		resp, body := getHTML(t, app, "/some/client/route")
		require.Equal(t, http.StatusNotFound, resp.StatusCode)
		assert.Contains(t, body, "Frontend not built yet")
	})
}

func TestStaticFallback_WithBundle(t *testing.T) {
	t.Parallel()

	s, app, _ := newTestServer(t)
	require.NoError(t, os.MkdirAll(s.config.FrontendDist, 0o755))
	index := filepath.Join(s.config.FrontendDist, "index.html")
	require.NoError(t, os.WriteFile(index, []byte("<html><body>spa shell</body></html>"), 0o644))

	t.Run("root serves index", func(t *testing.T) {
		resp, body := getHTML(t, app, "/")
		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Contains(t, body, "spa shell")
	})

	t.Run("unknown path falls back to index for client routing", func(t *testing.T) {
		resp, body := getHTML(t, app, "/projects/3")
		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Contains(t, body, "spa shell")
	})

	t.Run("api routes still win over the fallback", func(t *testing.T) {
		resp, _ := getHTML(t, app, "/api/health")
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})
}
