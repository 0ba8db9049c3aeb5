package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/chronos-agency/timetravel-api/internal/relay"
)

// writeJSON writes a JSON response.
func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeError writes a JSON error response.
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{
		"error": message,
	})
}

// writeRelayError maps a relay failure to its HTTP status and user-safe
// message. Causes stay in the logs.
func writeRelayError(w http.ResponseWriter, err error) {
	var relayErr *relay.Error
	if errors.As(err, &relayErr) {
		status := http.StatusInternalServerError
		if relayErr.Kind == relay.KindInvalidInput {
			status = http.StatusBadRequest
		}
		writeError(w, status, relayErr.UserMessage())
		return
	}

	writeError(w, http.StatusInternalServerError, "Erreur interne.")
}
