package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"

	"github.com/iudanet/wordcards/internal/client/storage"
)

var (
	// ErrInvalidToken токен не разбирается или в нем нет subject
	ErrInvalidToken = errors.New("invalid token")
	// ErrTokenExpired срок действия токена истек
	ErrTokenExpired = errors.New("token expired")
)

// TokenIdentity реализует Identity поверх сохраненного JWT.
// Подпись клиент не проверяет: это делает сервер при каждом запросе.
type TokenIdentity struct {
	storage storage.AuthStorage
	logger  *zap.Logger
	now     func() time.Time
}

// Compile-time check that TokenIdentity implements Identity
var _ Identity = (*TokenIdentity)(nil)

// Option настраивает TokenIdentity
type Option func(*TokenIdentity)

// WithClock подменяет источник времени (для тестов)
func WithClock(now func() time.Time) Option {
	return func(t *TokenIdentity) {
		t.now = now
	}
}

// NewTokenIdentity creates identity backed by the auth bucket
func NewTokenIdentity(storage storage.AuthStorage, logger *zap.Logger, opts ...Option) *TokenIdentity {
	t := &TokenIdentity{
		storage: storage,
		logger:  logger,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Status читает сохраненный токен и проверяет срок действия
func (t *TokenIdentity) Status(ctx context.Context) Status {
	auth, err := t.current(ctx)
	if err != nil {
		if !errors.Is(err, storage.ErrAuthNotFound) {
			t.logger.Warn("Failed to read stored credential", zap.Error(err))
		}
		return Status{IsLoaded: true}
	}

	if t.expired(auth.ExpiresAt) {
		return Status{IsLoaded: true}
	}

	return Status{UserID: auth.UserID, IsSignedIn: true, IsLoaded: true}
}

// Credential возвращает токен или "" если пользователь не вошел
func (t *TokenIdentity) Credential(ctx context.Context) (string, error) {
	auth, err := t.current(ctx)
	if errors.Is(err, storage.ErrAuthNotFound) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to get credential: %w", err)
	}

	if t.expired(auth.ExpiresAt) {
		return "", nil
	}
	return auth.AccessToken, nil
}

// Login разбирает токен, сохраняет его и возвращает новый статус
func (t *TokenIdentity) Login(ctx context.Context, token string) (Status, error) {
	claims, err := ParseToken(token)
	if err != nil {
		return Status{IsLoaded: true}, err
	}

	var expiresAt int64
	if claims.ExpiresAt != nil {
		expiresAt = claims.ExpiresAt.Unix()
		if t.expired(expiresAt) {
			return Status{IsLoaded: true}, ErrTokenExpired
		}
	}

	auth := &storage.AuthData{
		UserID:      claims.Subject,
		AccessToken: token,
		ExpiresAt:   expiresAt,
	}
	if err := t.storage.SaveAuth(ctx, auth); err != nil {
		return Status{IsLoaded: true}, fmt.Errorf("failed to save credential: %w", err)
	}

	t.logger.Info("Signed in", zap.String("user_id", claims.Subject))
	return Status{UserID: claims.Subject, IsSignedIn: true, IsLoaded: true}, nil
}

// Logout удаляет сохраненный токен. Повторный выход не ошибка.
func (t *TokenIdentity) Logout(ctx context.Context) error {
	if err := t.storage.DeleteAuth(ctx); err != nil && !errors.Is(err, storage.ErrAuthNotFound) {
		return fmt.Errorf("failed to delete credential: %w", err)
	}
	return nil
}

// ParseToken разбирает JWT без проверки подписи и требует subject
func ParseToken(token string) (*jwt.RegisteredClaims, error) {
	claims := &jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}
	if claims.Subject == "" {
		return nil, fmt.Errorf("%w: missing subject", ErrInvalidToken)
	}
	return claims, nil
}

func (t *TokenIdentity) current(ctx context.Context) (*storage.AuthData, error) {
	auth, err := t.storage.GetAuth(ctx)
	if err != nil {
		return nil, err
	}
	if auth.AccessToken == "" || auth.UserID == "" {
		return nil, storage.ErrAuthNotFound
	}
	return auth, nil
}

func (t *TokenIdentity) expired(expiresAt int64) bool {
	return expiresAt != 0 && !t.now().Before(time.Unix(expiresAt, 0))
}
