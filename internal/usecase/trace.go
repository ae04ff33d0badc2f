package usecase

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

var usecaseTracer = otel.Tracer("copa-admin/internal/usecase")

// startUsecaseSpan only opens a span inside an existing trace, so startup
// work and tests stay span-free.
func startUsecaseSpan(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	if !trace.SpanContextFromContext(ctx).IsValid() {
		return ctx, trace.SpanFromContext(ctx)
	}
	return usecaseTracer.Start(ctx, name, trace.WithAttributes(attrs...))
}

func teamIDAttr(id int64) attribute.KeyValue {
	return attribute.Int64("copa.team_id", id)
}

func matchIDAttr(id int64) attribute.KeyValue {
	return attribute.Int64("copa.match_id", id)
}
