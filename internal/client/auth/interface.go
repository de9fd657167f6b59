package auth

import (
	"context"
)

//go:generate moq -out identity_mock.go . Identity

// Status описывает текущее состояние идентификации на устройстве
type Status struct {
	UserID     string
	IsSignedIn bool
	// IsLoaded false пока состояние еще не определено
	IsLoaded bool
}

// Identity defines the identity provider used to pick a backend
type Identity interface {
	// Status returns the current sign-in status
	Status(ctx context.Context) Status

	// Credential returns the bearer token for remote calls.
	// Пустая строка, если пользователь не вошел или токен истек.
	Credential(ctx context.Context) (string, error)
}
