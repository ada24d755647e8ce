package app

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	dErrors "kiosk/pkg/domain-errors"
	"kiosk/pkg/requestcontext"
)

// Invoke runs one use case on behalf of a controller.
//
// It stamps the context with a request id (unless the caller already set one)
// and the operation clock, opens a span, and records latency by outcome code.
// Errors leave Invoke classified: expected failures keep their code and
// message, anything else is logged with its cause and replaced by a bare
// CodeInternal error so internals never reach the caller.
func Invoke[T any](ctx context.Context, a *App, operation string, fn func(context.Context) (T, error)) (T, error) {
	start := time.Now()

	requestID := requestcontext.RequestID(ctx)
	if requestID == "" {
		requestID = uuid.NewString()
		ctx = requestcontext.WithRequestID(ctx, requestID)
	}
	ctx = requestcontext.WithTime(ctx, a.clock())

	ctx, span := a.tracer.Start(ctx, operation, trace.WithAttributes(
		attribute.String("kiosk.request_id", requestID),
	))
	defer span.End()

	out, err := fn(ctx)
	classified := dErrors.Classify(err)

	var code string
	if classified != nil {
		code = string(classified.Code)
	}
	a.metrics.ObserveOperation(operation, code, start)

	if classified == nil {
		a.log.Debug().
			Str("operation", operation).
			Str("request_id", requestID).
			Dur("duration", time.Since(start)).
			Msg("operation completed")
		return out, nil
	}

	span.SetAttributes(attribute.String("kiosk.error_code", code))
	span.SetStatus(codes.Error, classified.Message)

	var zero T
	if classified.Code == dErrors.CodeInternal {
		span.RecordError(err)
		a.log.Error().
			Err(err).
			Str("operation", operation).
			Str("request_id", requestID).
			Msg("operation failed unexpectedly")
		return zero, dErrors.New(dErrors.CodeInternal, "unexpected error")
	}

	a.log.Info().
		Str("operation", operation).
		Str("request_id", requestID).
		Str("code", code).
		Str("reason", classified.Message).
		Msg("operation rejected")
	return zero, classified
}

// Describe maps an error returned by Invoke onto the kind and message a
// controller shows its client. Internal errors never carry a description.
func Describe(err error) (kind, message string) {
	classified := dErrors.Classify(err)
	if classified == nil {
		return "", ""
	}
	if classified.Code == dErrors.CodeInternal {
		return classified.Code.Kind(), ""
	}
	return classified.Code.Kind(), classified.Message
}
