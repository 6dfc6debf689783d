package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/benecare/member-portal/internal/usecase"
)

type AuthHandler struct {
	AuthenticateUC *usecase.AuthenticateUseCase
}

func NewAuthHandler(uc *usecase.AuthenticateUseCase) *AuthHandler {
	return &AuthHandler{AuthenticateUC: uc}
}

// HandleLogin verifies PIN + password. All three rejection causes return
// 401 with their own message, matching what the portal UI has always shown.
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var input usecase.AuthenticateInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{"error": "Invalid JSON: " + err.Error()})
		return
	}

	output, err := h.AuthenticateUC.Execute(r.Context(), input)
	if err != nil {
		var domainErr *usecase.DomainError
		if errors.As(err, &domainErr) {
			status := http.StatusUnauthorized
			if domainErr.Code == "MISSING_CREDENTIALS" {
				status = http.StatusBadRequest
			}
			writeJSON(w, status, map[string]any{"error": domainErr.Message})
			return
		}
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, output)
}
