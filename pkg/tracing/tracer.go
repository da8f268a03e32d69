// Package tracing holds the span helpers used by domain code.
//
// Spans go to whatever TracerProvider is global; with none installed they
// are dropped.
package tracing

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/Pritam6569/portfr"

// Start opens a span under the one in ctx. End it when done:
//
//	ctx, span := tracing.Start(ctx, "content.reload",
//	    attribute.String("portfr.content.source", path),
//	)
//	defer span.End()
func Start(ctx context.Context, spanName string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	return otel.Tracer(tracerName).Start(ctx, spanName, trace.WithAttributes(attrs...))
}

// Fail records err on span and marks it failed with a short description.
// It returns err so call sites can `return tracing.Fail(span, err, "...")`.
func Fail(span trace.Span, err error, description string) error {
	span.RecordError(err)
	span.SetStatus(codes.Error, description)
	return err
}
