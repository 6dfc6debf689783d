package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/benecare/member-portal/internal/entity"
	"github.com/benecare/member-portal/internal/infra/database"
	"github.com/benecare/member-portal/internal/infra/http/middleware"
	"github.com/benecare/member-portal/internal/usecase"
)

type AccountHandler struct {
	CreateAccountUC  *usecase.CreateAccountUseCase
	ChangePasswordUC *usecase.ChangePasswordUseCase
	DeleteAccountUC  *usecase.DeleteAccountUseCase
	AccountRepo      *database.AccountRepository
}

func NewAccountHandler(
	createUC *usecase.CreateAccountUseCase,
	changePasswordUC *usecase.ChangePasswordUseCase,
	deleteUC *usecase.DeleteAccountUseCase,
	accountRepo *database.AccountRepository,
) *AccountHandler {
	return &AccountHandler{
		CreateAccountUC:  createUC,
		ChangePasswordUC: changePasswordUC,
		DeleteAccountUC:  deleteUC,
		AccountRepo:      accountRepo,
	}
}

// HandleCheck (GET /api/check-account?pin=) reports whether a login account
// already exists for the PIN.
func (h *AccountHandler) HandleCheck(w http.ResponseWriter, r *http.Request) {
	pin := r.URL.Query().Get("pin")
	if pin == "" {
		writeJSON(w, http.StatusBadRequest, map[string]any{"exists": false, "error": "No PIN provided"})
		return
	}

	exists, err := h.AccountRepo.ExistsByPIN(r.Context(), pin)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]any{"exists": false, "error": "Database error"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"exists": exists})
}

func (h *AccountHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var input usecase.CreateAccountInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{"success": false, "error": "Invalid JSON: " + err.Error()})
		return
	}

	output, err := h.CreateAccountUC.Execute(r.Context(), input)
	if err != nil {
		status := http.StatusInternalServerError
		if usecase.IsDomainError(err) {
			status = http.StatusBadRequest
		}
		writeJSON(w, status, map[string]any{"success": false, "error": err.Error()})
		return
	}

	middleware.RecordAccountCreation()
	writeJSON(w, http.StatusOK, output)
}

func (h *AccountHandler) HandleChangePassword(w http.ResponseWriter, r *http.Request) {
	var input usecase.ChangePasswordInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{"error": "Invalid JSON: " + err.Error()})
		return
	}

	if err := h.ChangePasswordUC.Execute(r.Context(), input); err != nil {
		var domainErr *usecase.DomainError
		if errors.As(err, &domainErr) {
			status := http.StatusBadRequest
			switch domainErr.Code {
			case "ACCOUNT_NOT_FOUND":
				status = http.StatusNotFound
			case "INVALID_PASSWORD":
				status = http.StatusUnauthorized
			}
			writeJSON(w, status, map[string]any{"error": domainErr.Message})
			return
		}
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"success": true, "message": "Password updated successfully"})
}

// HandleDelete removes the member, its dependents and its account in one
// cascade.
func (h *AccountHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	var body struct {
		PIN string `json:"pin"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{"success": false, "error": "Invalid JSON: " + err.Error()})
		return
	}

	if err := h.DeleteAccountUC.Execute(r.Context(), body.PIN); err != nil {
		status := http.StatusInternalServerError
		if usecase.IsDomainError(err) {
			status = http.StatusBadRequest
		}
		writeJSON(w, status, map[string]any{"success": false, "error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true})
}

// HandleProfile (GET /api/user-profile?pin=) returns the account's email
// plus the mobile number on the member record.
func (h *AccountHandler) HandleProfile(w http.ResponseWriter, r *http.Request) {
	pin := r.URL.Query().Get("pin")
	if pin == "" {
		writeJSON(w, http.StatusBadRequest, map[string]any{"error": "PIN is required"})
		return
	}

	profile, err := h.AccountRepo.ProfileByPIN(r.Context(), pin)
	if err != nil {
		if errors.Is(err, entity.ErrAccountNotFound) {
			writeJSON(w, http.StatusNotFound, map[string]any{"error": "Account not found"})
			return
		}
		writeJSON(w, http.StatusInternalServerError, map[string]any{"error": "Database error"})
		return
	}
	writeJSON(w, http.StatusOK, profile)
}
