package handlers

import (
	"encoding/json"
	"net/http"
	"strings"
)

type captureResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
	Message string `json:"message,omitempty"`
}

type quoteResponse struct {
	Success  bool   `json:"success"`
	QuoteID  string `json:"quoteId,omitempty"`
	DeepLink string `json:"deepLink,omitempty"`
	Error    string `json:"error,omitempty"`
	Message  string `json:"message,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

// getClientIP trusts the proxy chain headers first, matching how the
// service is deployed behind a reverse proxy.
func getClientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		return strings.TrimSpace(strings.Split(xff, ",")[0])
	}
	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return xri
	}
	return r.RemoteAddr
}
