package access

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Pritam6569/portfr/internal/config"
)

func setup(t *testing.T) (*echo.Echo, *Handler) {
	t.Helper()
	h := NewHandler(&config.Config{Environment: config.EnvDevelopment}, slog.Default())
	h.now = func() time.Time { return time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC) }
	e := echo.New()
	RegisterRoutes(e, h)
	return e, h
}

func get(e *echo.Echo, target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	req.Header.Set("User-Agent", "checker/<1>")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestPages_ServeHTML(t *testing.T) {
	e, _ := setup(t)

	tests := []struct {
		path string
		want []string
	}{
		{"/direct", []string{
			"<title>Pritam - Portfolio Direct Access</title>",
			`href="/api/health"`,
			`href="/api/test-html"`,
		}},
		{"/vite-test", []string{
			`<script type="module">`,
			`id="module-test-result"`,
			`href="/direct"`,
		}},
		{"/api/test-html", []string{
			"The server is working correctly!",
		}},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			rec := get(e, tt.path)
			require.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, echo.MIMETextHTMLCharsetUTF8, rec.Header().Get(echo.HeaderContentType))

			body := rec.Body.String()
			assert.True(t, strings.HasPrefix(body, "<!DOCTYPE html>"))
			for _, want := range tt.want {
				assert.Contains(t, body, want)
			}
		})
	}
}

func TestDebug_ShowsRequestFactsEscaped(t *testing.T) {
	e, _ := setup(t)

	rec := get(e, "/debug?x=1")
	require.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	assert.Contains(t, body, `<span class="key">nodeEnv</span>: <span class="value">development</span>`)
	assert.Contains(t, body, `<span class="value">/debug?x=1</span>`)
	assert.Contains(t, body, `<span class="value">2026-03-01T12:00:00Z</span>`)
	assert.Contains(t, body, "checker/&lt;1&gt;")
	assert.NotContains(t, body, "checker/<1>")
	for _, r := range KnownRoutes {
		assert.Contains(t, body, `href="`+r.Path+`"`)
	}
}

func TestPages_AnswerHead(t *testing.T) {
	e, _ := setup(t)

	for _, path := range []string{"/direct", "/debug", "/vite-test", "/api/test-html"} {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodHead, path, nil))
		assert.Equal(t, http.StatusOK, rec.Code, path)
		assert.Empty(t, rec.Header().Get(echo.HeaderLocation), path)
	}
}
