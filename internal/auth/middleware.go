package auth

import (
	"context"
	"net/http"
	"strings"

	"taskflow-backend/internal/users"
)

type ctxKey string

const userKey ctxKey = "user"

type Middleware struct {
	secret []byte
	roster *users.Roster
}

func New(secret []byte, roster *users.Roster) Middleware {
	return Middleware{secret: secret, roster: roster}
}

// Wrap rejects requests without a valid bearer token for a roster user and
// puts that user into the request context.
func (m Middleware) Wrap(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h := r.Header.Get("Authorization")
		if !strings.HasPrefix(h, "Bearer ") {
			http.Error(w, "missing token", http.StatusUnauthorized)
			return
		}

		tokenString := strings.TrimPrefix(h, "Bearer ")
		userID, err := ParseToken(m.secret, tokenString)
		if err != nil {
			http.Error(w, "invalid token", http.StatusUnauthorized)
			return
		}

		u, ok := m.roster.Find(userID)
		if !ok {
			http.Error(w, "unknown user", http.StatusUnauthorized)
			return
		}

		next(w, r.WithContext(WithUser(r.Context(), u)))
	}
}

// WrapScrumMaster is Wrap plus a role check.
func (m Middleware) WrapScrumMaster(next http.HandlerFunc) http.HandlerFunc {
	return m.Wrap(func(w http.ResponseWriter, r *http.Request) {
		u, _ := UserFromContext(r.Context())
		if !u.IsScrumMaster() {
			http.Error(w, "forbidden", http.StatusForbidden)
			return
		}
		next(w, r)
	})
}

func WithUser(ctx context.Context, u users.User) context.Context {
	return context.WithValue(ctx, userKey, u)
}

func UserFromContext(ctx context.Context) (users.User, bool) {
	u, ok := ctx.Value(userKey).(users.User)
	return u, ok
}
