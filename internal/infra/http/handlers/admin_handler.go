package handlers

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/benecare/member-portal/internal/entity"
	"github.com/benecare/member-portal/internal/infra/database"
	"github.com/benecare/member-portal/internal/usecase"
)

type AdminHandler struct {
	DB            *sql.DB
	MemberRepo    *database.MemberRepository
	DependentRepo *database.DependentRepository
	AccountRepo   *database.AccountRepository
	StatsRepo     *database.StatsRepository
}

func NewAdminHandler(
	db *sql.DB,
	memberRepo *database.MemberRepository,
	dependentRepo *database.DependentRepository,
	accountRepo *database.AccountRepository,
	statsRepo *database.StatsRepository,
) *AdminHandler {
	return &AdminHandler{
		DB:            db,
		MemberRepo:    memberRepo,
		DependentRepo: dependentRepo,
		AccountRepo:   accountRepo,
		StatsRepo:     statsRepo,
	}
}

func (h *AdminHandler) HandleDashboardStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.StatsRepo.Counts(r.Context())
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]any{"error": "Internal server error"})
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

// HandleActivities returns the five most recent dependent additions, the
// only activity stream the dashboard shows.
func (h *AdminHandler) HandleActivities(w http.ResponseWriter, r *http.Request) {
	recent, err := h.DependentRepo.RecentlyAdded(r.Context(), 5)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]any{"error": "Internal server error"})
		return
	}

	type activity struct {
		Type        string `json:"type"`
		Description string `json:"description"`
	}
	activities := make([]activity, 0, len(recent))
	for _, dep := range recent {
		activities = append(activities, activity{
			Type:        "dependent_add",
			Description: "New dependent added: " + dep.FullName,
		})
	}
	writeJSON(w, http.StatusOK, activities)
}

func (h *AdminHandler) HandleSystemStatus(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	dbUp := h.DB.PingContext(ctx) == nil
	writeJSON(w, http.StatusOK, map[string]any{
		"database":    dbUp,
		"apiServices": true,
	})
}

func (h *AdminHandler) HandleSearchMembers(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := database.MemberSearchFilter{
		Term:        q.Get("searchTerm"),
		MemberType:  q.Get("memberType"),
		CivilStatus: q.Get("civilStatus"),
		Citizenship: q.Get("citizenship"),
		Page:        queryInt(q.Get("page"), 1),
		Limit:       queryInt(q.Get("limit"), 10),
	}

	members, pagination, err := h.MemberRepo.Search(r.Context(), filter)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]any{"error": "Failed to search members"})
		return
	}
	if members == nil {
		members = []*database.MemberSearchRow{}
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"members":    members,
		"pagination": pagination,
	})
}

func (h *AdminHandler) HandleGetMember(w http.ResponseWriter, r *http.Request) {
	pin := chi.URLParam(r, "pin")

	member, err := h.MemberRepo.FindByPIN(r.Context(), pin)
	if err != nil {
		if errors.Is(err, entity.ErrMemberNotFound) {
			writeJSON(w, http.StatusNotFound, map[string]any{"error": "Member not found"})
			return
		}
		writeJSON(w, http.StatusInternalServerError, map[string]any{"error": "Internal server error"})
		return
	}

	dependents, err := h.DependentRepo.FindByPIN(r.Context(), pin)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]any{"error": "Internal server error"})
		return
	}
	if dependents == nil {
		dependents = []*entity.Dependent{}
	}

	// Account presence is optional detail on the admin view.
	var account any
	if acc, err := h.AccountRepo.FindByPIN(r.Context(), pin); err == nil {
		account = map[string]any{"email": acc.Email, "created_at": acc.CreatedAt}
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"member":     member,
		"dependents": dependents,
		"account":    account,
	})
}

// HandleUpdateMember (PUT /api/admin/members/{pin}) rewrites the editable
// member fields. PIN and created_at are immutable.
func (h *AdminHandler) HandleUpdateMember(w http.ResponseWriter, r *http.Request) {
	pin := chi.URLParam(r, "pin")

	var input usecase.MemberInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{"error": "Invalid JSON: " + err.Error()})
		return
	}
	if input.DateOfBirth != "" {
		if !usecase.IsValidDate(input.DateOfBirth) {
			writeJSON(w, http.StatusBadRequest, map[string]any{"error": "Date of Birth must be a valid date."})
			return
		}
		if usecase.IsFutureDate(input.DateOfBirth) {
			writeJSON(w, http.StatusBadRequest, map[string]any{"error": "Date of Birth cannot be in the future."})
			return
		}
	}

	member, err := h.MemberRepo.FindByPIN(r.Context(), pin)
	if err != nil {
		if errors.Is(err, entity.ErrMemberNotFound) {
			writeJSON(w, http.StatusNotFound, map[string]any{"error": "Member not found"})
			return
		}
		writeJSON(w, http.StatusInternalServerError, map[string]any{"error": "Internal server error"})
		return
	}

	applyMemberInput(member, input)
	member.UpdatedAt = time.Now()

	if err := h.MemberRepo.Update(r.Context(), member); err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]any{"error": "Internal server error"})
		return
	}

	updated, err := h.MemberRepo.FindByPIN(r.Context(), pin)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]any{"error": "Internal server error"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "member": updated})
}

// applyMemberInput replaces the editable fields wholesale. The admin form
// always submits the full record, so empty strings mean "cleared".
func applyMemberInput(m *entity.Member, in usecase.MemberInput) {
	m.MemberType = in.MemberType
	m.FullName = in.FullName
	m.Sex = in.Sex
	m.DateOfBirth = in.DateOfBirth
	m.Citizenship = in.Citizenship
	m.CivilStatus = in.CivilStatus
	m.NationalID = in.NationalID
	m.TIN = in.TIN
	m.MotherFullName = in.MotherFullName
	m.SpouseFullName = in.SpouseFullName
	m.HomeNumber = in.HomeNumber
	m.MobileNumber = in.MobileNumber
	m.Email = in.Email
	m.PermanentAddress = in.PermanentAddress
	m.BusinessDL = in.BusinessDL
	m.MailingAddress = in.MailingAddress
}

func queryInt(s string, fallback int) int {
	if s == "" {
		return fallback
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return fallback
	}
	return n
}
