package middleware

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/iudanet/wordcards/internal/server/handlers"
	"github.com/iudanet/wordcards/pkg/api"
)

// RecoveryMiddleware перехватывает panic, логирует стек и отвечает 500.
// Детали паники клиенту не отдаются.
func RecoveryMiddleware(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					if rec == http.ErrAbortHandler {
						panic(rec)
					}

					logger.Error("Panic recovered",
						zap.Any("panic", rec),
						zap.String("method", r.Method),
						zap.String("path", r.URL.Path),
						zap.String("remote_addr", r.RemoteAddr),
						zap.Stack("stack"),
					)

					handlers.SendError(logger, w, http.StatusInternalServerError, api.CodeInternal, "internal error")
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}
