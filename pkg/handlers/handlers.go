// Package handlers provides JSON response helpers shared by HTTP handlers.
package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// RespondJSON writes data as a JSON body with the given status code.
func RespondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// RespondMessage logs err and writes {"error": message}, keeping err out of the response.
func RespondMessage(w http.ResponseWriter, logger *slog.Logger, status int, message string, err error) {
	logger.Error("handler error", "status", status, "error", err)
	RespondJSON(w, status, map[string]string{"error": message})
}
