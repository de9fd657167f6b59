package middleware

import (
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/iudanet/wordcards/internal/server/handlers"
	"github.com/iudanet/wordcards/pkg/api"
)

// AuthMiddleware создает middleware для проверки JWT токена.
// Subject токена кладется в контекст как user id.
func AuthMiddleware(logger *zap.Logger, jwtConfig handlers.JWTConfig) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				logger.Warn("Missing Authorization header", zap.String("path", r.URL.Path))
				handlers.SendError(logger, w, http.StatusUnauthorized, api.CodeUnauthorized, "missing token")
				return
			}

			// Ожидаем формат: "Bearer <token>"
			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
				logger.Warn("Invalid Authorization header format")
				handlers.SendError(logger, w, http.StatusUnauthorized, api.CodeUnauthorized, "invalid token format")
				return
			}

			userID, err := handlers.ValidateAccessToken(jwtConfig, parts[1])
			if err != nil {
				logger.Warn("Invalid access token", zap.Error(err))
				handlers.SendError(logger, w, http.StatusUnauthorized, api.CodeUnauthorized, "invalid token")
				return
			}

			logger.Debug("User authenticated", zap.String("user_id", userID))

			next.ServeHTTP(w, r.WithContext(handlers.WithUserID(r.Context(), userID)))
		})
	}
}
