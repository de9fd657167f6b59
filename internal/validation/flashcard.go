package validation

import (
	"errors"
	"fmt"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"

	"github.com/iudanet/wordcards/internal/models"
)

const (
	// MaxWordLen максимальная длина слова
	MaxWordLen = 100
	// MaxMeaningLen максимальная длина значения
	MaxMeaningLen = 500
)

var (
	once     sync.Once
	validate *validator.Validate
)

// Validator returns the shared validator with the custom tags registered.
func Validator() *validator.Validate {
	once.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		// notblank: строка не пустая и не состоит из одних пробелов
		if err := validate.RegisterValidation("notblank", validators.NotBlank); err != nil {
			panic(fmt.Sprintf("register notblank: %v", err))
		}
		// url_or_empty: пустая строка очищает поле, иначе нужен URL
		if err := validate.RegisterValidation("url_or_empty", urlOrEmpty); err != nil {
			panic(fmt.Sprintf("register url_or_empty: %v", err))
		}
	})
	return validate
}

func urlOrEmpty(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	return value == "" || validate.Var(value, "url") == nil
}

// ValidateDraft проверяет черновик карточки до любых обращений к хранилищу.
// Возвращает *models.ValidationError.
func ValidateDraft(d models.Draft) error {
	return toValidationError(Validator().Struct(d))
}

// ValidatePatch проверяет только переданные поля патча.
func ValidatePatch(p models.Patch) error {
	return toValidationError(Validator().Struct(p))
}

// Struct validates an arbitrary tagged struct (config and request bodies).
func Struct(v any) error {
	return toValidationError(Validator().Struct(v))
}

func toValidationError(err error) error {
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("validate: %w", err)
	}

	problems := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		problems = append(problems, message(fe))
	}
	return &models.ValidationError{Problems: problems}
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "notblank", "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "max":
		return fmt.Sprintf("%s is too long (max %s characters)", fe.Field(), fe.Param())
	case "min":
		return fmt.Sprintf("%s is too short (min %s)", fe.Field(), fe.Param())
	case "url", "http_url", "url_or_empty":
		return fmt.Sprintf("%s must be a valid URL", fe.Field())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("%s is invalid (%s)", fe.Field(), fe.Tag())
	}
}
