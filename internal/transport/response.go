// Package transport holds the JSON response helpers shared by handlers and
// middleware.
package transport

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/kryva/kryva/internal/observability"
)

func WriteJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		if observability.Log != nil {
			observability.Log.Error("failed to encode response", zap.Error(err))
		}
	}
}

func WriteError(w http.ResponseWriter, status int, code, message string) {
	WriteJSON(w, status, map[string]string{
		"error":   code,
		"message": message,
	})
}
