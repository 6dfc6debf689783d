package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/benecare/member-portal/internal/usecase"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeError maps the usecase error taxonomy onto the status codes the
// original clients expect: business rejections are 4xx, infrastructure
// failures are a generic 500.
func writeError(w http.ResponseWriter, err error) {
	if usecase.IsDomainError(err) {
		writeJSON(w, http.StatusBadRequest, map[string]any{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusInternalServerError, map[string]any{"error": err.Error()})
}
