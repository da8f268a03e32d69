// Package visitors posts a Discord notification for each landing page view.
//
// Notifications are queued and sent by a single background worker. A full
// queue, the rate limit or a failing webhook drop the notification; page
// responses never wait on Discord.
package visitors

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/time/rate"

	"github.com/Pritam6569/portfr/internal/config"
	"github.com/Pritam6569/portfr/pkg/logger"
	"github.com/Pritam6569/portfr/pkg/tracing"
)

// Notification results, used as the metric label.
const (
	resultSent    = "sent"
	resultFailed  = "failed"
	resultDropped = "dropped"
	resultLimited = "rate_limited"
)

// Notifier queues visits and posts them to a Discord webhook.
type Notifier struct {
	url     string
	client  *resty.Client
	limiter *rate.Limiter
	queue   chan Visit
	log     *slog.Logger
	results *prometheus.CounterVec
	now     func() time.Time

	mu        sync.Mutex
	running   bool
	stopCh    chan struct{}
	stoppedCh chan struct{}
}

// NewNotifier creates a notifier for cfg. reg may be nil.
func NewNotifier(cfg config.VisitorsConfig, reg prometheus.Registerer, log *slog.Logger) *Notifier {
	queueSize := cfg.QueueSize
	if queueSize <= 0 {
		queueSize = 32
	}
	perMinute := cfg.PerMinute
	if perMinute <= 0 {
		perMinute = 10
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}

	client := resty.New().
		SetTimeout(timeout).
		SetHeader("Content-Type", "application/json").
		SetHeader("User-Agent", "portfr-visitors")

	return &Notifier{
		url:     cfg.WebhookURL,
		client:  client,
		limiter: rate.NewLimiter(rate.Every(time.Minute/time.Duration(perMinute)), perMinute),
		queue:   make(chan Visit, queueSize),
		log:     log.With(logger.Scope("visitors")),
		results: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "visitor_notifications_total",
			Help: "Visitor notifications by result",
		}, []string{"result"}),
		now: time.Now,
	}
}

// Enabled reports whether a webhook is configured.
func (n *Notifier) Enabled() bool {
	return n != nil && n.url != ""
}

// Enqueue queues a visit without blocking. It reports false when the
// notifier is disabled or the queue is full.
func (n *Notifier) Enqueue(v Visit) bool {
	if !n.Enabled() {
		return false
	}
	select {
	case n.queue <- v:
		return true
	default:
		n.results.WithLabelValues(resultDropped).Inc()
		n.log.Debug("visitor queue full, dropping notification", slog.String("ip", v.IP))
		return false
	}
}

// Middleware enqueues a visit for every request that reaches next. A nil or
// disabled notifier passes requests straight through.
func (n *Notifier) Middleware(next http.Handler) http.Handler {
	if !n.Enabled() {
		return next
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		n.Enqueue(Visit{
			IP:        clientIP(r),
			Path:      r.URL.Path,
			UserAgent: r.UserAgent(),
			At:        n.now(),
		})
		next.ServeHTTP(w, r)
	})
}

// clientIP expects RemoteAddr to already reflect proxy headers.
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

// Start launches the delivery worker. It is a no-op when disabled or running.
func (n *Notifier) Start(ctx context.Context) error {
	if !n.Enabled() {
		n.log.Info("visitor notifications disabled (no webhook configured)")
		return nil
	}

	n.mu.Lock()
	defer n.mu.Unlock()
	if n.running {
		return nil
	}
	n.running = true
	n.stopCh = make(chan struct{})
	n.stoppedCh = make(chan struct{})

	go n.run(context.WithoutCancel(ctx), n.stopCh, n.stoppedCh)

	n.log.Info("visitor notifier started",
		slog.Int("queue_size", cap(n.queue)),
		slog.Float64("per_minute", float64(n.limiter.Limit())*60),
	)
	return nil
}

// Stop signals the worker and waits for it, bounded by ctx. Queued visits
// not yet delivered are discarded.
func (n *Notifier) Stop(ctx context.Context) error {
	if n == nil {
		return nil
	}
	n.mu.Lock()
	if !n.running {
		n.mu.Unlock()
		return nil
	}
	n.running = false
	close(n.stopCh)
	stopped := n.stoppedCh
	n.mu.Unlock()

	select {
	case <-stopped:
		n.log.Info("visitor notifier stopped")
	case <-ctx.Done():
		n.log.Warn("visitor notifier stop timeout")
	}
	n.client.GetClient().CloseIdleConnections()
	return nil
}

func (n *Notifier) run(ctx context.Context, stopCh, stoppedCh chan struct{}) {
	defer close(stoppedCh)

	// Cancelled on stop so an in-flight request is abandoned.
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	go func() {
		select {
		case <-stopCh:
			cancel()
		case <-ctx.Done():
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return
		case v := <-n.queue:
			n.deliver(ctx, v)
		}
	}
}

func (n *Notifier) deliver(ctx context.Context, v Visit) {
	if !n.limiter.Allow() {
		n.results.WithLabelValues(resultLimited).Inc()
		n.log.Debug("visitor notification rate limited", slog.String("ip", v.IP))
		return
	}

	if err := n.Send(ctx, v); err != nil {
		n.results.WithLabelValues(resultFailed).Inc()
		n.log.Warn("error sending to Discord webhook", logger.Error(err))
		return
	}
	n.results.WithLabelValues(resultSent).Inc()
	n.log.Info("sent visitor info to Discord webhook", slog.String("ip", v.IP))
}

// Send posts one visit synchronously.
func (n *Notifier) Send(ctx context.Context, v Visit) error {
	ctx, span := tracing.Start(ctx, "visitors.notify",
		attribute.String("portfr.visitor.path", v.Path),
	)
	defer span.End()

	resp, err := n.client.R().
		SetContext(ctx).
		SetBody(NewPayload(v)).
		Post(n.url)
	if err != nil {
		return tracing.Fail(span, fmt.Errorf("post webhook: %w", err), "webhook request failed")
	}

	span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode()))
	if resp.IsError() {
		return tracing.Fail(span, fmt.Errorf("webhook returned %s", resp.Status()), "webhook rejected")
	}
	return nil
}
