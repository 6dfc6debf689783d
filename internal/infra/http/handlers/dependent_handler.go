package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/benecare/member-portal/internal/entity"
	"github.com/benecare/member-portal/internal/infra/database"
	"github.com/benecare/member-portal/internal/usecase"
)

type DependentHandler struct {
	ReplaceUC     *usecase.ReplaceDependentsUseCase
	DependentRepo *database.DependentRepository
	MemberRepo    *database.MemberRepository
}

func NewDependentHandler(
	replaceUC *usecase.ReplaceDependentsUseCase,
	dependentRepo *database.DependentRepository,
	memberRepo *database.MemberRepository,
) *DependentHandler {
	return &DependentHandler{
		ReplaceUC:     replaceUC,
		DependentRepo: dependentRepo,
		MemberRepo:    memberRepo,
	}
}

// HandleReplace (POST /api/update-dependents) swaps the member's full
// dependent set for the submitted one and echoes back the stored rows.
func (h *DependentHandler) HandleReplace(w http.ResponseWriter, r *http.Request) {
	var input usecase.ReplaceDependentsInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{"success": false, "error": "Invalid JSON: " + err.Error()})
		return
	}

	stored, err := h.ReplaceUC.Execute(r.Context(), input)
	if err != nil {
		status := http.StatusInternalServerError
		if usecase.IsDomainError(err) {
			status = http.StatusBadRequest
		}
		writeJSON(w, status, map[string]any{"success": false, "error": err.Error()})
		return
	}
	if stored == nil {
		stored = []*entity.Dependent{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "dependents": stored})
}

func (h *DependentHandler) HandleSearch(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := database.DependentSearchFilter{
		Term:         q.Get("searchTerm"),
		Relationship: q.Get("relationship"),
		Citizenship:  q.Get("citizenship"),
		PWD:          q.Get("pwd"),
		Page:         queryInt(q.Get("page"), 1),
		Limit:        queryInt(q.Get("limit"), 10),
	}

	dependents, pagination, err := h.DependentRepo.Search(r.Context(), filter)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]any{"error": "Failed to search dependents"})
		return
	}
	if dependents == nil {
		dependents = []*database.DependentSearchRow{}
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"dependents": dependents,
		"pagination": pagination,
	})
}

// HandleGet (GET /api/admin/dependents/{id}) returns one dependent with the
// member's name for the admin edit modal.
func (h *DependentHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	dep, err := h.DependentRepo.FindByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, entity.ErrDependentNotFound) {
			writeJSON(w, http.StatusNotFound, map[string]any{"error": "Dependent not found"})
			return
		}
		writeJSON(w, http.StatusInternalServerError, map[string]any{"error": "Database error"})
		return
	}

	memberName := ""
	if member, err := h.MemberRepo.FindByPIN(r.Context(), dep.PIN); err == nil {
		memberName = member.FullName
	}

	writeJSON(w, http.StatusOK, database.DependentSearchRow{
		Dependent:      *dep,
		MemberFullName: memberName,
	})
}

// HandleUpdate (PUT /api/admin/dependents/{id}) rewrites one dependent's
// editable fields.
func (h *DependentHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var input usecase.DependentInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{"error": "Invalid JSON: " + err.Error()})
		return
	}
	if validationErrors := usecase.ValidateDependentInput(input); len(validationErrors) > 0 {
		writeJSON(w, http.StatusBadRequest, map[string]any{"error": validationErrors[0].Error()})
		return
	}

	dep, err := h.DependentRepo.FindByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, entity.ErrDependentNotFound) {
			writeJSON(w, http.StatusNotFound, map[string]any{"error": "Dependent not found"})
			return
		}
		writeJSON(w, http.StatusInternalServerError, map[string]any{"error": "Database error"})
		return
	}

	dep.FullName = input.FullName
	dep.Relationship = input.Relationship
	dep.DateOfBirth = input.DateOfBirth
	dep.Citizenship = input.Citizenship
	dep.PWD = input.PWD
	dep.UpdatedAt = time.Now()

	if err := h.DependentRepo.Update(r.Context(), dep); err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]any{"error": "Database error"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true})
}
