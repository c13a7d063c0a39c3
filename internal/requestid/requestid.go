package requestid

import (
	"context"

	"github.com/google/uuid"
)

// MaxLen bounds a client-supplied request id.
const MaxLen = 128

type ctxKey struct{}

// New generates a random UUID v4 request ID.
func New() string {
	return uuid.NewString()
}

// Accept returns id if it is usable as a caller-supplied request id,
// otherwise a freshly generated one.
func Accept(id string) string {
	if id == "" || len(id) > MaxLen {
		return New()
	}
	for i := 0; i < len(id); i++ {
		if c := id[i]; c < 0x21 || c > 0x7e {
			return New()
		}
	}
	return id
}

func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ctxKey{}, id)
}

// FromContext extracts the request ID from ctx. Returns "" if absent.
func FromContext(ctx context.Context) string {
	id, _ := ctx.Value(ctxKey{}).(string)
	return id
}
