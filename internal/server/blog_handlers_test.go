package server

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func getHTML(t *testing.T, app *fiber.App, path string) (*http.Response, string) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, string(body)
}

func TestBlogIndex_RendersLatestPosts(t *testing.T) {
	t.Parallel()

	_, app, _ := newTestServer(t)
	resp, body := getHTML(t, app, "/blog/")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, strings.HasPrefix(resp.Header.Get("Content-Type"), "text/html"))

	assert.Contains(t, body, "Coding in Python")
	assert.Contains(t, body, "Backend Development using Django")
	assert.Contains(t, body, "Cloud Computing Using AWS")
}

func TestBlogAllPosts_ListsEveryPost(t *testing.T) {
	t.Parallel()

	_, app, _ := newTestServer(t)
	resp, body := getHTML(t, app, "/blog/posts")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "code-in-python")
	assert.Contains(t, body, "cloud-computing-using-aws")
}

func TestBlogPostDetail(t *testing.T) {
	t.Parallel()

	_, app, _ := newTestServer(t)

	t.Run("known slug", func(t *testing.T) {
		resp, body := getHTML(t, app, "/blog/posts/code-in-python")
		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Contains(t, body, "Coding in Python")
		assert.Contains(t, body, "Zafar Aftab")
	})

	t.Run("unknown slug", func(t *testing.T) {
		resp, body := getHTML(t, app, "/blog/posts/no-such-post")
		require.Equal(t, http.StatusNotFound, resp.StatusCode)
		assert.Contains(t, body, "Post not found")
	})
}
