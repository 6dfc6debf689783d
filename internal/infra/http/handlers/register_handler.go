package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/benecare/member-portal/internal/infra/http/middleware"
	"github.com/benecare/member-portal/internal/usecase"
)

type RegisterHandler struct {
	RegisterUC *usecase.RegisterMemberUseCase
}

func NewRegisterHandler(uc *usecase.RegisterMemberUseCase) *RegisterHandler {
	return &RegisterHandler{RegisterUC: uc}
}

func (h *RegisterHandler) Handle(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Member     *usecase.MemberInput     `json:"member"`
		Dependents []usecase.DependentInput `json:"dependents"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{"error": "Invalid JSON: " + err.Error()})
		return
	}
	if body.Member == nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{"error": "Invalid member data"})
		return
	}

	input := usecase.RegisterMemberInput{
		Member:     *body.Member,
		Dependents: body.Dependents,
	}

	output, err := h.RegisterUC.Execute(r.Context(), input)
	if err != nil {
		writeError(w, err)
		return
	}

	middleware.RecordRegistration()
	writeJSON(w, http.StatusOK, output)
}
