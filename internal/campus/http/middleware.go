package http

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/campusconnect/campuscore/internal/campus/domain"
	"github.com/campusconnect/campuscore/internal/campus/service"
	"github.com/campusconnect/campuscore/pkg/campussdk"
	"github.com/campusconnect/campuscore/pkg/httpx"
)

// AuthnMiddleware resolves the bearer token to a full identity and stores it
// in the request context. Expired tokens get a distinct error code so clients
// know to hit the refresh endpoint instead of re-prompting for credentials.
func AuthnMiddleware(tokens *service.TokenService) httpx.Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw := bearerToken(r)
			if raw == "" {
				campussdk.ErrInvalidToken.WriteError(w)
				return
			}

			u, err := tokens.Authenticate(r.Context(), raw)
			if err != nil {
				switch {
				case errors.Is(err, service.ErrExpiredToken):
					campussdk.ErrExpiredToken.WriteError(w)
				case errors.Is(err, service.ErrInvalidToken),
					errors.Is(err, service.ErrUnknownIdentity):
					campussdk.ErrInvalidToken.WriteError(w)
				default:
					campussdk.ErrServerError.WriteError(w)
				}
				return
			}

			ctx := context.WithValue(r.Context(), httpx.CtxKeyIdentity, u)
			ctx = context.WithValue(ctx, httpx.CtxKeyUserID, u.ID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireAction gates a route on the authorization gate. Must sit after
// AuthnMiddleware. Ownership-scoped actions cannot use this; handlers check
// those themselves once they know the owner.
func RequireAction(action service.Action) httpx.Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			u, ok := identityFromContext(r.Context())
			if !ok {
				campussdk.ErrInvalidToken.WriteError(w)
				return
			}
			if !service.CanPerform(u, action, "") {
				campussdk.ErrForbidden.WriteError(w)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func identityFromContext(ctx context.Context) (domain.User, bool) {
	u, ok := ctx.Value(httpx.CtxKeyIdentity).(domain.User)
	return u, ok
}

func bearerToken(r *http.Request) string {
	h := r.Header.Get("Authorization")
	if h == "" {
		return ""
	}
	scheme, token, found := strings.Cut(h, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}
