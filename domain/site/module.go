package site

import (
	"context"
	"log/slog"

	"go.uber.org/fx"

	"github.com/Pritam6569/portfr/domain/site/content"
	"github.com/Pritam6569/portfr/internal/config"
)

var Module = fx.Module("site",
	fx.Provide(
		NewContentStore,
		NewHandler,
	),
	fx.Invoke(
		RegisterRoutes,
		RegisterContentWatcher,
	),
)

// NewContentStore loads the site content from CONTENT_FILE, or the embedded
// copy when unset.
func NewContentStore(cfg *config.Config, log *slog.Logger) (*content.Store, error) {
	return content.NewStore(cfg.Assets.ContentFile, log)
}

// RegisterContentWatcher reloads file-backed content on change in
// development. Production reloads on the scheduler instead.
func RegisterContentWatcher(lc fx.Lifecycle, store *content.Store, cfg *config.Config, log *slog.Logger) error {
	if cfg.IsProduction() || store.Path() == "" {
		return nil
	}

	w, err := content.NewWatcher(store, content.DefaultDebounce, log)
	if err != nil {
		return err
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return w.Start(ctx)
		},
		OnStop: func(ctx context.Context) error {
			return w.Stop()
		},
	})
	return nil
}
