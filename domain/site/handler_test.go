package site

import (
	"log/slog"
	"math/rand/v2"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Pritam6569/portfr/domain/site/components"
	"github.com/Pritam6569/portfr/domain/site/content"
	"github.com/Pritam6569/portfr/domain/visitors"
	"github.com/Pritam6569/portfr/internal/config"
)

func testConfig() *config.Config {
	return &config.Config{
		Environment: config.EnvProduction,
		Assets: config.AssetsConfig{
			ParticleCount: 12,
		},
	}
}

func newTestHandler(t *testing.T, cfg *config.Config, store *content.Store, n *visitors.Notifier) *Handler {
	t.Helper()
	if store == nil {
		var err error
		store, err = content.NewStore("", slog.Default())
		require.NoError(t, err)
	}
	h := NewHandler(HandlerParams{Store: store, Config: cfg, Log: slog.Default(), Visitors: n})
	h.now = func() time.Time { return time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC) }
	h.rng = func() *rand.Rand { return rand.New(rand.NewPCG(1, 2)) }
	return h
}

func get(t *testing.T, h http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestLandingPage(t *testing.T) {
	h := newTestHandler(t, testConfig(), nil, nil)

	rec := get(t, h.Router(), "/")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))

	body := rec.Body.String()
	assert.True(t, strings.HasPrefix(body, "<!DOCTYPE html>"))
	assert.Contains(t, body, "<title>Pritam - Portfolio</title>")
	assert.Contains(t, body, `id="hero-phrase"`)
	assert.Contains(t, body, "love coding")
	assert.Contains(t, body, components.ComingSoonText)
	assert.Contains(t, body, `id="contact-form"`)
	assert.Contains(t, body, "discord.gg/zAtZEhhKnn")
	assert.Contains(t, body, "© 2025 Pritam. All rights reserved.")
	assert.Equal(t, 12, strings.Count(body, `class="particle"`))

	// The runtime binary is not bundled in the test tree.
	assert.NotContains(t, body, "/static/js/boot.js")
}

func TestLandingPage_WithProjects(t *testing.T) {
	path := filepath.Join(t.TempDir(), "content.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
profile: { name: Tester, title: Tester's Site }
hero: { phrases: [testing] }
about:
  skills: [{ name: Go, color: accent }]
projects:
  items:
    - { id: 1, title: Gopher Board, tech: [Go], github_url: "https://github.com/example/board" }
`), 0o644))
	store, err := content.NewStore(path, slog.Default())
	require.NoError(t, err)

	body := get(t, newTestHandler(t, testConfig(), store, nil).Router(), "/").Body.String()
	assert.Contains(t, body, "Gopher Board")
	assert.Contains(t, body, `class="tech-tag bg-accent"`)
	assert.NotContains(t, body, components.ComingSoonText)
}

func TestMotionCSS(t *testing.T) {
	h := newTestHandler(t, testConfig(), nil, nil)

	rec := get(t, h.Router(), "/static/motion.css")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/css; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Equal(t, "public, max-age=3600", rec.Header().Get("Cache-Control"))
	assert.Contains(t, rec.Body.String(), `[data-motion="fade-up"]`)
	assert.Contains(t, rec.Body.String(), "prefers-reduced-motion")
}

func TestStaticAssets(t *testing.T) {
	h := newTestHandler(t, testConfig(), nil, nil)
	r := h.Router()

	rec := get(t, r, "/static/css/site.css")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/css")

	assert.Equal(t, http.StatusOK, get(t, r, "/static/js/boot.js").Code)
	assert.Equal(t, http.StatusNotFound, get(t, r, "/static/css").Code)
	assert.Equal(t, http.StatusNotFound, get(t, r, "/static/missing.png").Code)
	assert.Equal(t, http.StatusNotFound, get(t, r, "/static/../go.mod").Code)

	rec = get(t, r, "/static/missing.png")
	assert.JSONEq(t, `{"message":"Resource not found","status":404,"code":"not_found"}`, rec.Body.String())
	assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
}

func TestStaticAssets_DevelopmentFromDisk(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "js"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "cursor.wasm"), []byte("\x00asm"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "js", "wasm_exec.js"), []byte("// go"), 0o644))

	cfg := testConfig()
	cfg.Environment = config.EnvDevelopment
	cfg.Assets.Dir = dir
	h := newTestHandler(t, cfg, nil, nil)

	assert.True(t, h.RuntimeAvailable())

	rec := get(t, h.Router(), "/static/js/wasm_exec.js")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "no-cache", rec.Header().Get("Cache-Control"))

	body := get(t, h.Router(), "/").Body.String()
	assert.Contains(t, body, `src="/static/js/boot.js"`)
}

func TestLandingPage_RecordsVisit(t *testing.T) {
	n := visitors.NewNotifier(config.VisitorsConfig{WebhookURL: "http://127.0.0.1:1/hook", QueueSize: 4}, nil, slog.Default())
	h := newTestHandler(t, testConfig(), nil, n)
	r := h.Router()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Forwarded-For", "203.0.113.9")
	r.ServeHTTP(httptest.NewRecorder(), req)

	get(t, r, "/static/css/site.css")
	get(t, r, "/static/motion.css")

	// Only the page view is queued; the queue is full after three more.
	assert.True(t, n.Enqueue(visitors.Visit{}))
	assert.True(t, n.Enqueue(visitors.Visit{}))
	assert.True(t, n.Enqueue(visitors.Visit{}))
	assert.False(t, n.Enqueue(visitors.Visit{}))
}

func TestRegisterRoutes(t *testing.T) {
	e := echo.New()
	RegisterRoutes(e, newTestHandler(t, testConfig(), nil, nil))

	for _, path := range []string{"/", "/static/motion.css", "/static/css/site.css"} {
		t.Run(path, func(t *testing.T) {
			assert.Equal(t, http.StatusOK, get(t, e, path).Code)
		})
	}

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodHead, "/", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}
