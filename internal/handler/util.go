package handler

import (
	"encoding/json"
	"net/http"
	"time"
)

// ResponseFormatHeader marks the payload shape on every outbound reply.
const ResponseFormatHeader = "assistant-structured/v1"

// writeJSON writes a JSON response with the response-format marker.
func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Response-Format", ResponseFormatHeader)
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// timestamp returns the ISO-8601 timestamp stamped on every envelope.
func timestamp() string {
	return time.Now().UTC().Format(time.RFC3339)
}
