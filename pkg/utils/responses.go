package utils

import (
	"encoding/json"
	"net/http"
)

// ResponseJSON writes v as-is with the given status code. The booking
// endpoints return plain records and arrays, no envelope.
func ResponseJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(v)
}

// ResponseText writes a fixed plain-text body.
func ResponseText(w http.ResponseWriter, code int, message string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(code)
	w.Write([]byte(message))
}
