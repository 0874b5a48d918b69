package handlers

import (
	"net/http"
)

// Health is the liveness endpoint. It does not probe the upstream providers:
// the service is up whenever it can answer, and provider outages degrade to
// fallbacks rather than unhealthiness.
func Health(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	writeJSON(w, r, http.StatusOK, map[string]string{
		"status":  "ok",
		"service": "drivecalc",
	})
}
