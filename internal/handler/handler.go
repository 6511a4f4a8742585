// Package handler implements the JSON resource handlers for the mood API.
// Every response uses the same envelope: {"success": true, ...} on success
// and {"success": false, "error": ...} on failure. The only non-200
// statuses in the contract are 401 for a failed login and 500 for
// everything else.
package handler

import (
	"encoding/json"
	"net/http"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]any{"success": false, "error": msg})
}
