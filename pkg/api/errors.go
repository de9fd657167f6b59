package api

// ErrorResponse представляет ответ с ошибкой
type ErrorResponse struct {
	Error   string `json:"error"`             // описание ошибки
	Message string `json:"message,omitempty"` // дополнительное сообщение
	Code    string `json:"code,omitempty"`    // машиночитаемый код, см. Code*
}

// Коды ошибок API
const (
	CodeValidationFailed = "validation_failed"
	CodeUnauthorized     = "unauthorized"
	CodeForbidden        = "forbidden"
	CodeNotFound         = "not_found"
	CodeSchemaMissing    = "schema_missing"
	CodeRateLimited      = "rate_limited"
	CodeInternal         = "internal"
)
