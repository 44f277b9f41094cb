package utils

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"
)

type Response struct {
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

func RespondWithJSON(w http.ResponseWriter, statusCode int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if payload == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		zap.L().Error("can't encode response payload", zap.Error(err))
	}
}

func RespondWithError(w http.ResponseWriter, statusCode int, message string) {
	RespondWithJSON(w, statusCode, Response{Message: message})
}

// RespondWithErrorCode additionally carries a machine-readable code so
// clients can branch on specific failures (e.g. DUPLICATE_TRANS_REF).
func RespondWithErrorCode(w http.ResponseWriter, statusCode int, code, message string) {
	RespondWithJSON(w, statusCode, Response{Message: message, Code: code})
}
