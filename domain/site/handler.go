// Package site serves the portfolio landing page and its assets.
package site

import (
	"bytes"
	"io/fs"
	"log/slog"
	"math/rand/v2"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/fx"

	"github.com/Pritam6569/portfr/domain/site/components"
	"github.com/Pritam6569/portfr/domain/site/content"
	"github.com/Pritam6569/portfr/domain/visitors"
	"github.com/Pritam6569/portfr/internal/config"
	"github.com/Pritam6569/portfr/internal/motion"
	"github.com/Pritam6569/portfr/pkg/apperror"
	"github.com/Pritam6569/portfr/pkg/logger"
	"github.com/Pritam6569/portfr/web"
)

// Files that must be present for the browser runtime to load.
const (
	runtimeWasm = "cursor.wasm"
	runtimeJS   = "js/wasm_exec.js"
)

// Handler renders the landing page and serves static assets.
type Handler struct {
	store     *content.Store
	cfg       *config.Config
	log       *slog.Logger
	assets    fs.FS
	motionCSS []byte
	visitors  *visitors.Notifier
	now       func() time.Time
	rng       func() *rand.Rand
}

// HandlerParams are the dependencies of Handler.
type HandlerParams struct {
	fx.In

	Store    *content.Store
	Config   *config.Config
	Log      *slog.Logger
	Visitors *visitors.Notifier `optional:"true"`
}

// NewHandler creates the site handler. Production always serves the
// embedded assets; development serves Assets.Dir from disk when present so
// edits show up without a rebuild.
func NewHandler(p HandlerParams) *Handler {
	log := p.Log.With(logger.Scope("site"))

	assets := web.Static()
	if !p.Config.IsProduction() && p.Config.Assets.Dir != "" {
		if info, err := os.Stat(p.Config.Assets.Dir); err == nil && info.IsDir() {
			assets = os.DirFS(p.Config.Assets.Dir)
			log.Info("serving assets from disk", slog.String("dir", p.Config.Assets.Dir))
		}
	}

	return &Handler{
		store:     p.Store,
		cfg:       p.Config,
		log:       log,
		assets:    assets,
		motionCSS: []byte(motion.Stylesheet()),
		visitors:  p.Visitors,
		now:       time.Now,
		rng: func() *rand.Rand {
			return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
		},
	}
}

// Router builds the chi router for the page and its assets.
func (h *Handler) Router() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RealIP)
	r.Use(middleware.GetHead)
	r.Use(middleware.Compress(5, "text/html", "text/css", "application/javascript", "text/javascript", "application/wasm"))

	r.With(h.visitors.Middleware).Get("/", h.LandingPage)
	r.Get("/static/motion.css", h.MotionCSS)
	r.Handle("/static/*", h.staticHandler())

	return r
}

// RuntimeAvailable reports whether the browser runtime is bundled.
func (h *Handler) RuntimeAvailable() bool {
	for _, name := range []string{runtimeWasm, runtimeJS} {
		if _, err := fs.Stat(h.assets, name); err != nil {
			return false
		}
	}
	return true
}

// LandingPage renders the portfolio page.
func (h *Handler) LandingPage(w http.ResponseWriter, r *http.Request) {
	page := components.Page(h.store.Get(), components.PageOptions{
		Particles: components.NewParticles(h.cfg.Assets.ParticleCount, h.rng()),
		Year:      h.now().Year(),
		Runtime:   h.RuntimeAvailable(),
	})

	var buf bytes.Buffer
	if err := page.Render(&buf); err != nil {
		apperror.Respond(w, r, h.log, apperror.ErrPageRender.WithInternal(err))
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-cache")
	_, _ = w.Write(buf.Bytes())
}

// MotionCSS serves the stylesheet generated from the motion presets.
func (h *Handler) MotionCSS(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/css; charset=utf-8")
	h.setCache(w)
	_, _ = w.Write(h.motionCSS)
}

func (h *Handler) staticHandler() http.Handler {
	files := http.StripPrefix("/static/", http.FileServer(http.FS(h.assets)))
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// No directory listings.
		name := strings.Trim(strings.TrimPrefix(r.URL.Path, "/static"), "/")
		if info, err := fs.Stat(h.assets, name); err != nil || info.IsDir() {
			apperror.Respond(w, r, h.log, apperror.ErrNotFound)
			return
		}
		h.setCache(w)
		files.ServeHTTP(w, r)
	})
}

func (h *Handler) setCache(w http.ResponseWriter) {
	if h.cfg.IsProduction() {
		w.Header().Set("Cache-Control", "public, max-age=3600")
	} else {
		w.Header().Set("Cache-Control", "no-cache")
	}
}
