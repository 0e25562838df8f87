package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/shivanisurendran/hostelparcel-management/internal/apperr"
	"github.com/shivanisurendran/hostelparcel-management/internal/domain"
	"github.com/shivanisurendran/hostelparcel-management/internal/logx"
)

// Authenticator resolves a bearer token into the user it was issued to.
type Authenticator interface {
	Authenticate(token string) (domain.User, error)
}

type userCtxKey struct{}

// WithUser stores the authenticated user on the context.
func WithUser(ctx context.Context, u domain.User) context.Context {
	return context.WithValue(ctx, userCtxKey{}, u)
}

// UserFrom returns the user placed on the context by RequireRole.
func UserFrom(ctx context.Context) (domain.User, bool) {
	u, ok := ctx.Value(userCtxKey{}).(domain.User)
	return u, ok
}

// RequireRole rejects requests without a valid bearer token (401)
// or whose token carries a role not in roles (403).
func RequireRole(logger logx.Logger, authn Authenticator, roles ...domain.Role) func(http.Handler) http.Handler {
	if logger == nil {
		logger = logx.Nop()
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := bearerToken(r)
			if !ok {
				deny(logger, w, r, http.StatusUnauthorized, "missing bearer token")
				return
			}

			u, err := authn.Authenticate(token)
			if err != nil {
				if !errors.Is(err, apperr.ErrUnauthorized) {
					logger.Error("authenticate", logx.Err(err))
				}
				deny(logger, w, r, http.StatusUnauthorized, "invalid token")
				return
			}

			if !hasRole(u.Role, roles) {
				deny(logger, w, r, http.StatusForbidden, "forbidden")
				return
			}

			next.ServeHTTP(w, r.WithContext(WithUser(r.Context(), u)))
		})
	}
}

func bearerToken(r *http.Request) (string, bool) {
	h := r.Header.Get("Authorization")
	scheme, token, ok := strings.Cut(h, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

func hasRole(role domain.Role, roles []domain.Role) bool {
	for _, want := range roles {
		if role == want {
			return true
		}
	}
	return false
}

func deny(logger logx.Logger, w http.ResponseWriter, r *http.Request, status int, msg string) {
	logger.Warn("request denied",
		logx.String("req_id", chimw.GetReqID(r.Context())),
		logx.String("path", r.URL.Path),
		logx.Int("status", status),
	)
	w.Header().Set("Content-Type", "application/json")
	if status == http.StatusUnauthorized {
		w.Header().Set("WWW-Authenticate", `Bearer realm="hostel-parcels"`)
	}
	w.WriteHeader(status)
	_, _ = w.Write([]byte(`{"error":"` + msg + `"}` + "\n"))
}
