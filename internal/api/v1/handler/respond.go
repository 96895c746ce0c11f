package handler

import (
	"encoding/json"
	"net/http"
)

// respondJSON serializes v with the given status. Encoding failures are
// ignored; headers are already written by then.
func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// respondError sends the error taxonomy's generic JSON message. No
// field-level detail leaves the server.
func respondError(w http.ResponseWriter, status int, msg string) {
	respondJSON(w, status, map[string]string{"error": msg})
}
