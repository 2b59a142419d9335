package utils

import (
	"context"

	"github.com/google/uuid"
)

type contextKey string

const RequestIDKey contextKey = "request_id"

func SetRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, RequestIDKey, id)
}

// GetRequestID returns the id set by the logger middleware, if any.
func GetRequestID(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(RequestIDKey).(string)
	return id, ok && id != ""
}

func GenerateRequestID() string {
	return uuid.New().String()
}

// ParseUUID parses a path parameter such as a hall id.
func ParseUUID(s string) (uuid.UUID, error) {
	return uuid.Parse(s)
}
