package microhttp

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/devlulcas/micro-http-client"

// tracer returns the library tracer from the global provider. With no
// provider installed this is a no-op.
func tracer() trace.Tracer {
	return otel.Tracer(tracerName)
}

// startSpan opens the per-request span.
func startSpan(ctx context.Context, req Request, requestID string) (context.Context, trace.Span) {
	return tracer().Start(ctx, "http.request", trace.WithAttributes(
		attribute.String("http.method", req.Method),
		attribute.String("http.url", req.URL),
		attribute.String("request.id", requestID),
	))
}

// spanStatus records the response status on the span.
func spanStatus(span trace.Span, statusCode int) {
	span.SetAttributes(attribute.Int("http.status_code", statusCode))
}

// spanError marks the span failed with the normalized error.
func spanError(span trace.Span, err *Error) {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Message)
}
