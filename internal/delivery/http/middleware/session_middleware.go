package middleware

import (
	"net/http"
	"time"

	"shopfront/internal/domain"
	"shopfront/pkg/logger"
	"shopfront/pkg/utils"

	"github.com/google/uuid"
)

// SessionMiddleware attaches a session id to every request. A missing or
// invalid session cookie gets a fresh id and a new signed cookie.
func SessionMiddleware(ttl time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sessionID, err := utils.ExtractSessionID(r)
			if err != nil {
				sessionID = uuid.New().String()
				token, err := utils.GenerateSessionToken(sessionID, ttl)
				if err != nil {
					logger.WithContext(r.Context()).Error().Err(err).Msg("Failed to issue session token")
					http.Error(w, "Internal Server Error", http.StatusInternalServerError)
					return
				}
				http.SetCookie(w, &http.Cookie{
					Name:     utils.SessionCookieName(),
					Value:    token,
					Path:     "/",
					MaxAge:   int(ttl.Seconds()),
					HttpOnly: true,
					SameSite: http.SameSiteLaxMode,
				})
			}

			ctx := domain.WithSessionID(r.Context(), sessionID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
