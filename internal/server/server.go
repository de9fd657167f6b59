package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/rs/cors"
	"go.uber.org/zap"

	"github.com/iudanet/wordcards/internal/server/handlers"
	"github.com/iudanet/wordcards/internal/server/middleware"
	"github.com/iudanet/wordcards/internal/server/storage"
)

// HealthPath не логируется и не требует токена
const HealthPath = "/api/v1/health"

// Options настройки HTTP слоя
type Options struct {
	JWT             handlers.JWTConfig
	Version         string
	AllowedOrigins  []string
	RPS             float64
	Burst           int
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
}

// Server HTTP сервер карточек
type Server struct {
	logger  *zap.Logger
	limiter *middleware.RateLimiter
	handler http.Handler
	opts    Options
}

// New собирает маршруты и цепочку middleware.
// Снаружи внутрь: recovery, logging, CORS, rate limit, auth (только /api/v1/users/).
func New(logger *zap.Logger, store storage.FlashcardStorage, opts Options) *Server {
	flashcards := http.NewServeMux()
	handlers.NewFlashcardHandler(logger, store).Register(flashcards)

	mux := http.NewServeMux()
	mux.HandleFunc("GET "+HealthPath, handlers.NewHealthHandler(logger, store, opts.Version).Health)
	mux.Handle("/api/v1/users/", middleware.AuthMiddleware(logger, opts.JWT)(flashcards))

	limiter := middleware.NewRateLimiter(opts.RPS, opts.Burst, time.Minute, logger)

	corsHandler := cors.New(cors.Options{
		AllowedOrigins: opts.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", "Authorization", "Accept", "Origin"},
		MaxAge:         86400,
	})

	var h http.Handler = mux
	h = limiter.Middleware(h)
	h = corsHandler.Handler(h)
	h = middleware.LoggingWithSkip(logger, []string{HealthPath})(h)
	h = middleware.RecoveryMiddleware(logger)(h)

	return &Server{
		logger:  logger,
		limiter: limiter,
		handler: h,
		opts:    opts,
	}
}

// Handler возвращает корневой http.Handler (для httptest)
func (s *Server) Handler() http.Handler {
	return s.handler
}

// Close останавливает фоновые горутины
func (s *Server) Close() {
	s.limiter.Stop()
}

// Run слушает addr до отмены ctx, затем выполняет graceful shutdown
func (s *Server) Run(ctx context.Context, addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve обслуживает уже открытый listener
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	defer s.Close()

	srv := &http.Server{
		Handler:           s.handler,
		ReadTimeout:       s.opts.ReadTimeout,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      s.opts.WriteTimeout,
		ErrorLog:          zap.NewStdLog(s.logger),
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("Server listening", zap.String("address", ln.Addr().String()))
		errCh <- srv.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve: %w", err)
	case <-ctx.Done():
	}

	s.logger.Info("Shutting down server")
	timeout := s.opts.ShutdownTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
