package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/learnhub-ng/backend/internal/auth/service"
	"github.com/learnhub-ng/backend/internal/models"
)

type contextKey string

const viewerKey contextKey = "viewer"

// AuthMiddleware validates the JWT access token and puts the viewer identity
// into the request context. Requests without a valid token are rejected.
func AuthMiddleware(tokenGenerator *service.TokenGenerator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := extractToken(r)

			// If no token found, return 401
			if token == "" {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnauthorized)
				w.Write([]byte(`{"error":"authentication required"}`))
				return
			}

			// Validate token and extract viewer identity
			userID, role, err := tokenGenerator.ValidateAccessToken(token)
			if err != nil {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnauthorized)
				w.Write([]byte(`{"error":"invalid or expired token"}`))
				return
			}

			viewer := models.Viewer{ID: userID, Role: models.Role(role)}
			ctx := context.WithValue(r.Context(), viewerKey, viewer)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// OptionalAuthMiddleware resolves the viewer identity when a valid token is
// present but lets anonymous requests through with a zero viewer. Used on
// public endpoints whose response depends on who is asking.
func OptionalAuthMiddleware(tokenGenerator *service.TokenGenerator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := extractToken(r)
			if token == "" {
				next.ServeHTTP(w, r)
				return
			}

			userID, role, err := tokenGenerator.ValidateAccessToken(token)
			if err != nil {
				// Invalid token on a public endpoint: treat as anonymous
				next.ServeHTTP(w, r)
				return
			}

			viewer := models.Viewer{ID: userID, Role: models.Role(role)}
			ctx := context.WithValue(r.Context(), viewerKey, viewer)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// extractToken pulls the access token from the Authorization header or cookie
func extractToken(r *http.Request) string {
	// Try Authorization header first
	authHeader := r.Header.Get("Authorization")
	if authHeader != "" {
		// Expected format: "Bearer <token>"
		parts := strings.Split(authHeader, " ")
		if len(parts) == 2 && strings.ToLower(parts[0]) == "bearer" {
			return parts[1]
		}
	}

	// If not in header, try cookie
	cookie, err := r.Cookie("access_token")
	if err == nil {
		return cookie.Value
	}

	return ""
}

// GetViewer retrieves the viewer identity from context
// Returns a zero viewer when the request is anonymous
func GetViewer(ctx context.Context) models.Viewer {
	if viewer, ok := ctx.Value(viewerKey).(models.Viewer); ok {
		return viewer
	}
	return models.Viewer{}
}
