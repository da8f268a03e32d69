package content

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"sync"

	"go.opentelemetry.io/otel/attribute"

	"github.com/Pritam6569/portfr/pkg/logger"
	"github.com/Pritam6569/portfr/pkg/tracing"
)

// Store serves the current Content and swaps it on reload.
type Store struct {
	path string
	log  *slog.Logger

	mu      sync.RWMutex
	current *Content
	version int

	onChange []func(*Content)
}

// NewStore loads content from path, or the embedded copy when path is empty.
func NewStore(path string, log *slog.Logger) (*Store, error) {
	s := &Store{
		path: path,
		log:  log.With(logger.Scope("content")),
	}

	c, err := s.load()
	if err != nil {
		return nil, err
	}
	s.current = c
	s.version = 1

	s.log.Info("content loaded",
		slog.String("source", s.source()),
		slog.Int("projects", len(c.Projects.Items)),
		slog.Int("skills", len(c.About.Skills)),
	)
	return s, nil
}

// Path is the content file on disk, or "" for embedded content.
func (s *Store) Path() string {
	return s.path
}

// Get returns the current content. Callers must not modify it.
func (s *Store) Get() *Content {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// Version increases on every successful reload.
func (s *Store) Version() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.version
}

// OnChange registers fn to run after each successful reload.
func (s *Store) OnChange(fn func(*Content)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onChange = append(s.onChange, fn)
}

// Reload re-reads the content file. On failure the previous content stays
// in place and the error is returned.
func (s *Store) Reload(ctx context.Context) error {
	ctx, span := tracing.Start(ctx, "content.reload",
		attribute.String("portfr.content.source", s.source()),
	)
	defer span.End()

	if err := ctx.Err(); err != nil {
		return err
	}

	c, err := s.load()
	if err != nil {
		s.log.Warn("content reload failed, keeping previous content", logger.Error(err))
		return tracing.Fail(span, err, "reload failed")
	}

	s.mu.Lock()
	s.current = c
	s.version++
	version := s.version
	hooks := append([]func(*Content){}, s.onChange...)
	s.mu.Unlock()

	span.SetAttributes(attribute.Int("portfr.content.version", version))
	s.log.Info("content reloaded", slog.Int("version", version))

	for _, fn := range hooks {
		fn(c)
	}
	return nil
}

func (s *Store) load() (*Content, error) {
	if s.path == "" {
		return Default()
	}
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("read content file: %w", err)
	}
	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", s.path, err)
	}
	return c, nil
}

func (s *Store) source() string {
	if s.path == "" {
		return "embedded"
	}
	return s.path
}
