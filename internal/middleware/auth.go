package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

type ctxKey int

const userIDKey ctxKey = iota

// UserIdentity extracts the authenticated user's id from the X-User-ID header
// set by the auth gateway in front of this service. Auth itself (sign-up,
// login, token verification) is the gateway's job; this service only consumes
// the resulting identity.
func UserIdentity(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw := r.Header.Get("X-User-ID")
		if raw == "" {
			next.ServeHTTP(w, r)
			return
		}
		id, err := uuid.Parse(raw)
		if err != nil {
			http.Error(w, "invalid user id", http.StatusBadRequest)
			return
		}
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), userIDKey, id)))
	})
}

func UserIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(userIDKey).(uuid.UUID)
	return id, ok
}

// ContextSession adapts the request context to the service.Session contract.
type ContextSession struct{}

func (ContextSession) CurrentUserID(ctx context.Context) (uuid.UUID, bool) {
	return UserIDFromContext(ctx)
}
