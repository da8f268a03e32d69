package visitors

import (
	"context"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"

	"github.com/Pritam6569/portfr/internal/config"
)

var Module = fx.Module("visitors",
	fx.Provide(ProvideNotifier),
	fx.Invoke(RegisterLifecycle),
)

// NotifierParams are the dependencies of the notifier.
type NotifierParams struct {
	fx.In

	Config     *config.Config
	Log        *slog.Logger
	Registerer prometheus.Registerer `optional:"true"`
}

func ProvideNotifier(p NotifierParams) *Notifier {
	return NewNotifier(p.Config.Visitors, p.Registerer, p.Log)
}

// RegisterLifecycle runs the delivery worker for the life of the app.
func RegisterLifecycle(lc fx.Lifecycle, n *Notifier) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return n.Start(ctx)
		},
		OnStop: func(ctx context.Context) error {
			return n.Stop(ctx)
		},
	})
}
