package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/foundit/foundit-api/internal/pkg/identity"
	"github.com/foundit/foundit-api/internal/pkg/jwt"
	"github.com/foundit/foundit-api/internal/pkg/response"
)

type contextKey string

const actorKey contextKey = "actor"

// Auth returns middleware that validates the access token and stores the
// resolved actor in the request context. Requests without a valid token
// are rejected.
func Auth(jwtService *jwt.Service) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			actor, ok := actorFromHeader(w, r, jwtService)
			if !ok {
				return
			}
			if actor.IsGuest() {
				response.Unauthorized(w, "Missing authorization header")
				return
			}

			ctx := context.WithValue(r.Context(), actorKey, actor)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// OptionalAuth resolves the actor when an access token is present and
// falls back to a guest actor when it is not. Invalid tokens are still
// rejected rather than silently downgraded to guest.
func OptionalAuth(jwtService *jwt.Service) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			actor, ok := actorFromHeader(w, r, jwtService)
			if !ok {
				return
			}

			ctx := context.WithValue(r.Context(), actorKey, actor)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// actorFromHeader resolves the actor from the Authorization header. It
// writes an error response and returns false when the header is present
// but the token is invalid.
func actorFromHeader(w http.ResponseWriter, r *http.Request, jwtService *jwt.Service) (identity.Actor, bool) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return identity.Guest(), true
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
		response.Unauthorized(w, "Invalid authorization header format")
		return identity.Actor{}, false
	}

	claims, err := jwtService.ValidateAccessToken(parts[1])
	if err != nil {
		if err == jwt.ErrExpiredToken {
			response.Unauthorized(w, "Token expired")
		} else {
			response.Unauthorized(w, "Invalid token")
		}
		return identity.Actor{}, false
	}

	return identity.Actor{
		UserID:   claims.UserID,
		Username: claims.Username,
		Role:     identity.Role(claims.Role),
	}, true
}

// GetActor extracts the actor from context. Requests that never passed
// through Auth or OptionalAuth resolve to a guest.
func GetActor(ctx context.Context) identity.Actor {
	if actor, ok := ctx.Value(actorKey).(identity.Actor); ok {
		return actor
	}
	return identity.Guest()
}

// RequireAdmin returns middleware that rejects non-admin actors
func RequireAdmin() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !GetActor(r.Context()).IsAdmin() {
				response.Forbidden(w, "Insufficient permissions")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
