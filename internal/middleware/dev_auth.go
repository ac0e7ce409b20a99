// internal/middleware/dev_auth.go
package middleware

import (
	"context"
	"log"
	"net/http"

	"wordvault/internal/model"
	"wordvault/internal/webutil"
)

// DevUserContextMiddleware is the development-time replacement for JWT
// auth. It takes the user id from the X-User-ID header, falling back to
// fallbackUserID, and performs no validation.
func DevUserContextMiddleware(fallbackUserID string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID := r.Header.Get("X-User-ID")
			if userID == "" {
				userID = fallbackUserID
			}
			if userID == "" {
				log.Println("[DEV AUTH] Failed: X-User-ID header missing and no fallback configured")
				webutil.HandleError(w, GetLogger(r.Context()),
					model.NewAppError("UNAUTHORIZED", "[DEV] Missing X-User-ID header.", "", model.ErrUnauthorized))
				return
			}

			ctx := context.WithValue(r.Context(), model.UserIDKey, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
