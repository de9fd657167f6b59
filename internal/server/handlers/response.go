package handlers

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/iudanet/wordcards/pkg/api"
)

// sendJSON отправляет JSON ответ
func sendJSON(logger *zap.Logger, w http.ResponseWriter, data interface{}, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if data == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.Error("failed to encode JSON response", zap.Error(err))
	}
}

// SendError отправляет JSON ответ с ошибкой
func SendError(logger *zap.Logger, w http.ResponseWriter, statusCode int, code, message string) {
	resp := api.ErrorResponse{
		Error:   http.StatusText(statusCode),
		Message: message,
		Code:    code,
	}
	sendJSON(logger, w, resp, statusCode)
}
