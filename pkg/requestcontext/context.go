// Package requestcontext provides context accessors for operation-scoped values.
//
// The application boundary stamps every operation with a request id and a
// clock reading; use cases read the clock through Now so that every timestamp
// written during one operation is identical.
//
//	now := requestcontext.Now(ctx)
//	requestID := requestcontext.RequestID(ctx)
//
// Tests pin the clock with WithTime.
package requestcontext

import (
	"context"
	"time"

	id "kiosk/pkg/domain"
)

type (
	requestIDKey   struct{}
	requestTimeKey struct{}
	totemIDKey     struct{}
)

// RequestID retrieves the request ID from the context.
func RequestID(ctx context.Context) string {
	if reqID, ok := ctx.Value(requestIDKey{}).(string); ok {
		return reqID
	}
	return ""
}

// WithRequestID injects a request ID into the context.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, requestID)
}

// TotemID returns the totem the operation originates from, or the nil ID for
// operations started by store staff.
func TotemID(ctx context.Context) id.TotemID {
	if totemID, ok := ctx.Value(totemIDKey{}).(id.TotemID); ok {
		return totemID
	}
	return id.TotemID{}
}

// WithTotemID records the originating totem.
func WithTotemID(ctx context.Context, totemID id.TotemID) context.Context {
	return context.WithValue(ctx, totemIDKey{}, totemID)
}

// Now retrieves the operation-scoped time from context.
// Falls back to time.Now() if not set.
func Now(ctx context.Context) time.Time {
	if t, ok := ctx.Value(requestTimeKey{}).(time.Time); ok {
		return t
	}
	return time.Now()
}

// WithTime injects a specific time into a context.
func WithTime(ctx context.Context, t time.Time) context.Context {
	return context.WithValue(ctx, requestTimeKey{}, t)
}
