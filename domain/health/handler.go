package health

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"runtime"
	"sort"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"

	"github.com/Pritam6569/portfr/domain/scheduler"
	"github.com/Pritam6569/portfr/domain/site/content"
	"github.com/Pritam6569/portfr/internal/config"
	"github.com/Pritam6569/portfr/internal/version"
	"github.com/Pritam6569/portfr/pkg/logger"
	"github.com/Pritam6569/portfr/pkg/syshealth"
)

const serviceName = "Pritam's Portfolio API"

// maxListedFiles caps directory listings in debug output.
const maxListedFiles = 50

// Handler answers the diagnostic JSON endpoints.
type Handler struct {
	cfg     *config.Config
	monitor syshealth.Monitor
	content *content.Store
	tasks   *scheduler.Scheduler
	log     *slog.Logger
	startAt time.Time
	now     func() time.Time
}

// HandlerParams are the handler's dependencies. Everything past Log is optional.
type HandlerParams struct {
	fx.In
	Cfg       *config.Config
	Log       *slog.Logger
	Monitor   syshealth.Monitor    `optional:"true"`
	Content   *content.Store       `optional:"true"`
	Scheduler *scheduler.Scheduler `optional:"true"`
}

// NewHandler creates a new health handler
func NewHandler(p HandlerParams) *Handler {
	return &Handler{
		cfg:     p.Cfg,
		monitor: p.Monitor,
		content: p.Content,
		tasks:   p.Scheduler,
		log:     p.Log.With(logger.Scope("health")),
		startAt: time.Now(),
		now:     time.Now,
	}
}

// HealthResponse is the liveness payload.
type HealthResponse struct {
	Status    string  `json:"status"`
	Timestamp string  `json:"timestamp"`
	Uptime    float64 `json:"uptime"`
	// ContentVersion counts content loads; 0 when no store is wired.
	ContentVersion int `json:"contentVersion,omitempty"`
}

// Health reports liveness. Uptime is in seconds.
func (h *Handler) Health(c echo.Context) error {
	now := h.now()
	resp := HealthResponse{
		Status:    "ok",
		Timestamp: now.UTC().Format(time.RFC3339),
		Uptime:    now.Sub(h.startAt).Seconds(),
	}
	if h.content != nil {
		resp.ContentVersion = h.content.Version()
	}
	return c.JSON(http.StatusOK, resp)
}

// Ping returns the plain-text liveness token.
func (h *Handler) Ping(c echo.Context) error {
	return c.String(http.StatusOK, "pong")
}

// InfoResponse describes the service build and runtime.
type InfoResponse struct {
	Name        string `json:"name"`
	Version     string `json:"version"`
	Environment string `json:"environment"`
	Timestamp   string `json:"timestamp"`
	GitCommit   string `json:"gitCommit"`
	BuildTime   string `json:"buildTime"`
	GoVersion   string `json:"goVersion"`
}

// Info returns service metadata.
func (h *Handler) Info(c echo.Context) error {
	v := version.Info()
	return c.JSON(http.StatusOK, InfoResponse{
		Name:        serviceName,
		Version:     v.Version,
		Environment: h.cfg.Environment,
		Timestamp:   h.now().UTC().Format(time.RFC3339),
		GitCommit:   v.GitCommit,
		BuildTime:   v.BuildTime,
		GoVersion:   v.GoVersion,
	})
}

// EnvResponse echoes the serving environment and the caller's headers.
type EnvResponse struct {
	NodeEnv   string            `json:"nodeEnv"`
	Port      string            `json:"port"`
	Host      string            `json:"host"`
	UserAgent string            `json:"userAgent"`
	Headers   map[string]string `json:"headers"`
}

// Env returns environment and request header information.
func (h *Handler) Env(c echo.Context) error {
	req := c.Request()
	headers := make(map[string]string, len(req.Header))
	for name, values := range req.Header {
		if len(values) > 0 {
			headers[name] = values[0]
		}
	}
	return c.JSON(http.StatusOK, EnvResponse{
		NodeEnv:   h.cfg.Environment,
		Port:      strconv.Itoa(h.cfg.ServerPort),
		Host:      req.Host,
		UserAgent: req.UserAgent(),
		Headers:   headers,
	})
}

// DirInfo describes one served directory.
type DirInfo struct {
	Path   string   `json:"path"`
	Exists bool     `json:"exists"`
	Files  []string `json:"files,omitempty"`
	Error  string   `json:"error,omitempty"`
}

// RuntimeInfo holds Go runtime counters.
type RuntimeInfo struct {
	Goroutines int    `json:"goroutines"`
	NumCPU     int    `json:"numCPU"`
	HeapAlloc  uint64 `json:"heapAlloc"`
	HeapSys    uint64 `json:"heapSys"`
	NumGC      uint32 `json:"numGC"`
}

// DebugResponse is the filesystem and process diagnostics payload.
type DebugResponse struct {
	Environment string                   `json:"environment"`
	WorkingDir  string                   `json:"workingDir"`
	Uptime      float64                  `json:"uptime"`
	StaticDir   DirInfo                  `json:"staticDir"`
	AssetsDir   DirInfo                  `json:"assetsDir"`
	Runtime     RuntimeInfo              `json:"runtime"`
	Process     *syshealth.ProcessInfo   `json:"process,omitempty"`
	Host        *syshealth.HostInfo      `json:"host,omitempty"`
	Health      *syshealth.HealthMetrics `json:"health,omitempty"`
	Tasks       []scheduler.TaskInfo     `json:"tasks,omitempty"`
	Errors      []string                 `json:"errors,omitempty"`
}

// Debug returns filesystem and process diagnostics. Partial failures are
// reported in the payload rather than failing the request.
func (h *Handler) Debug(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	resp := DebugResponse{
		Environment: h.cfg.Environment,
		Uptime:      h.now().Sub(h.startAt).Seconds(),
		StaticDir:   describeDir(h.cfg.Assets.StaticDir),
		AssetsDir:   describeDir(h.cfg.Assets.Dir),
		Runtime:     readRuntime(),
	}
	if wd, err := os.Getwd(); err == nil {
		resp.WorkingDir = wd
	} else {
		resp.Errors = append(resp.Errors, "working dir: "+err.Error())
	}

	if h.monitor != nil {
		if p, err := h.monitor.Process(ctx); err == nil {
			resp.Process = p
		} else {
			h.log.Warn("process diagnostics unavailable", logger.Error(err))
			resp.Errors = append(resp.Errors, err.Error())
		}
		if host, err := h.monitor.Host(ctx); err == nil {
			resp.Host = host
		} else {
			h.log.Warn("host diagnostics unavailable", logger.Error(err))
			resp.Errors = append(resp.Errors, err.Error())
		}
		resp.Health = h.monitor.GetHealth()
	}
	if h.tasks != nil {
		resp.Tasks = h.tasks.GetTaskInfo()
	}

	return c.JSON(http.StatusOK, resp)
}

func describeDir(path string) DirInfo {
	info := DirInfo{Path: path}
	if path == "" {
		return info
	}
	entries, err := os.ReadDir(path)
	if err != nil {
		if !os.IsNotExist(err) {
			info.Error = err.Error()
		}
		return info
	}
	info.Exists = true
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() {
			name += "/"
		}
		info.Files = append(info.Files, name)
	}
	sort.Strings(info.Files)
	if len(info.Files) > maxListedFiles {
		info.Files = info.Files[:maxListedFiles]
	}
	return info
}

func readRuntime() RuntimeInfo {
	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)
	return RuntimeInfo{
		Goroutines: runtime.NumGoroutine(),
		NumCPU:     runtime.NumCPU(),
		HeapAlloc:  mem.HeapAlloc,
		HeapSys:    mem.HeapSys,
		NumGC:      mem.NumGC,
	}
}
