package models

import (
	"errors"
	"fmt"
	"strings"
)

// Ошибки доменного слоя, общие для локального и удаленного хранилищ.
var (
	// ErrValidation черновик или патч не прошел проверку полей
	ErrValidation = errors.New("validation failed")

	// ErrRemoteUnavailable сетевая или транспортная ошибка при обращении к серверу
	ErrRemoteUnavailable = errors.New("remote store unavailable")

	// ErrSchemaMissing таблица flashcards на сервере отсутствует
	ErrSchemaMissing = errors.New("remote schema missing")

	// ErrNotFound карточка не найдена (или принадлежит другому пользователю)
	ErrNotFound = errors.New("flashcard not found")

	// ErrUnauthorized bearer токен отсутствует, истек или отклонен сервером
	ErrUnauthorized = errors.New("unauthorized")

	// ErrInvalidUser пустой идентификатор пользователя
	ErrInvalidUser = errors.New("user id is required")

	// ErrMigrationPartial часть карточек не удалось перенести на сервер
	ErrMigrationPartial = errors.New("migration partially failed")

	// ErrStorageWrite запись в device slot не удалась
	ErrStorageWrite = errors.New("storage write failed")
)

// ValidationError содержит человекочитаемые ошибки по полям.
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	if len(e.Problems) == 0 {
		return ErrValidation.Error()
	}
	return fmt.Sprintf("%s: %s", ErrValidation.Error(), strings.Join(e.Problems, "; "))
}

// Is allows errors.Is(err, ErrValidation).
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// MigrationError описывает частичный сбой миграции.
// Flag не выставлен, локальные данные не очищены.
type MigrationError struct {
	Errs     []error
	Migrated int
	Failed   int
}

func (e *MigrationError) Error() string {
	return fmt.Sprintf("%s: %d migrated, %d failed: %v",
		ErrMigrationPartial.Error(), e.Migrated, e.Failed, errors.Join(e.Errs...))
}

func (e *MigrationError) Is(target error) bool {
	return target == ErrMigrationPartial
}

func (e *MigrationError) Unwrap() []error {
	return e.Errs
}
