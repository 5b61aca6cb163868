// Package identity resolves an authenticated principal for each request.
//
// Credential validation happens upstream; this package only turns the
// already-established identity (cookie or header) into a principal with an
// id and a role that the rest of the service trusts.
package identity

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/rescuelink/rescuelink/internal/domain"
	"github.com/rescuelink/rescuelink/internal/store"
)

const (
	// UserCookieName carries the authenticated user id between requests.
	UserCookieName = "rescuelink_uid"
	// UserHeaderName is the header alternative for non-browser clients.
	UserHeaderName = "X-User-ID"

	cookieMaxAge = 30 * 24 * time.Hour
)

type contextKey int

const principalKey contextKey = iota

// Principal is the resolved caller of a request.
type Principal struct {
	UserID   int64
	Username string
	Role     domain.Role
}

// FromContext extracts the principal from the request context. Returns nil
// when the request carried no valid identity.
func FromContext(ctx context.Context) *Principal {
	if p, ok := ctx.Value(principalKey).(*Principal); ok {
		return p
	}
	return nil
}

// WithPrincipal returns a context carrying the given principal. Used by the
// middleware and by tests.
func WithPrincipal(ctx context.Context, p *Principal) context.Context {
	return context.WithValue(ctx, principalKey, p)
}

// SetCookie marks the response with the user's identity cookie. Called after
// registration so subsequent requests resolve to the new user.
func SetCookie(w http.ResponseWriter, userID int64, isDev bool) {
	http.SetCookie(w, &http.Cookie{
		Name:     UserCookieName,
		Value:    strconv.FormatInt(userID, 10),
		Path:     "/",
		MaxAge:   int(cookieMaxAge.Seconds()),
		Expires:  time.Now().Add(cookieMaxAge),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   !isDev,
	})
}

func userIDFromRequest(r *http.Request) int64 {
	raw := r.Header.Get(UserHeaderName)
	if raw == "" {
		if c, err := r.Cookie(UserCookieName); err == nil {
			raw = c.Value
		}
	}
	if raw == "" {
		return 0
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0
	}
	return id
}

// Middleware resolves the request's identity against the repository and
// stores the principal in the context. Requests without a (valid) identity
// pass through with no principal; handlers that need one reject them.
func Middleware(repo store.Repository) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID := userIDFromRequest(r)
			if userID == 0 {
				next.ServeHTTP(w, r)
				return
			}

			user, err := repo.GetUser(r.Context(), userID)
			if err != nil || user == nil {
				next.ServeHTTP(w, r)
				return
			}

			principal := &Principal{
				UserID:   user.ID,
				Username: user.Username,
				Role:     user.Role,
			}
			next.ServeHTTP(w, r.WithContext(WithPrincipal(r.Context(), principal)))
		})
	}
}
