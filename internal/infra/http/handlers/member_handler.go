package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/benecare/member-portal/internal/entity"
	"github.com/benecare/member-portal/internal/infra/database"
)

type MemberHandler struct {
	MemberRepo    *database.MemberRepository
	DependentRepo *database.DependentRepository
}

func NewMemberHandler(memberRepo *database.MemberRepository, dependentRepo *database.DependentRepository) *MemberHandler {
	return &MemberHandler{MemberRepo: memberRepo, DependentRepo: dependentRepo}
}

// HandleCheckPIN (GET /api/check-pin?pin=) reports whether the PIN belongs
// to a registered member.
func (h *MemberHandler) HandleCheckPIN(w http.ResponseWriter, r *http.Request) {
	pin := r.URL.Query().Get("pin")
	if pin == "" {
		writeJSON(w, http.StatusBadRequest, map[string]any{"exists": false, "error": "No PIN provided"})
		return
	}

	exists, err := h.MemberRepo.ExistsByPIN(r.Context(), pin)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]any{"exists": false, "error": "Database error"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"exists": exists})
}

// memberInfoView is the self-service profile shape the member dashboard
// caches per session.
type memberInfoView struct {
	PIN              string `json:"pin"`
	FullName         string `json:"fullName"`
	Sex              string `json:"sex"`
	DateOfBirth      string `json:"dateOfBirth"`
	Citizenship      string `json:"citizenship"`
	CivilStatus      string `json:"civilStatus"`
	NationalID       string `json:"nationalId"`
	TIN              string `json:"tin"`
	MotherFullName   string `json:"motherFullName"`
	SpouseFullName   string `json:"spouseFullName"`
	HomeNumber       string `json:"homeNumber"`
	MobileNumber     string `json:"mobileNumber"`
	Email            string `json:"email"`
	PermanentAddress string `json:"permanentAddress"`
	BusinessDL       string `json:"businessDl"`
	MailingAddress   string `json:"mailingAddress"`
}

type dependentInfoView struct {
	FullName     string `json:"fullName"`
	DateOfBirth  string `json:"dateOfBirth"`
	Relationship string `json:"relationship"`
	Citizenship  string `json:"citizenship"`
	PWD          string `json:"pwd"`
}

// HandleInfo (GET /api/member-info?pin=) returns the member with its
// dependents, dates formatted for display.
func (h *MemberHandler) HandleInfo(w http.ResponseWriter, r *http.Request) {
	pin := r.URL.Query().Get("pin")
	if pin == "" {
		writeJSON(w, http.StatusBadRequest, map[string]any{"error": "PIN is required"})
		return
	}

	member, err := h.MemberRepo.FindByPIN(r.Context(), pin)
	if err != nil {
		if errors.Is(err, entity.ErrMemberNotFound) {
			writeJSON(w, http.StatusNotFound, map[string]any{"error": "Member not found"})
			return
		}
		writeJSON(w, http.StatusInternalServerError, map[string]any{"error": "Database error"})
		return
	}

	dependents, err := h.DependentRepo.FindByPIN(r.Context(), pin)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]any{"error": "Database error"})
		return
	}

	depViews := make([]dependentInfoView, 0, len(dependents))
	for _, dep := range dependents {
		depViews = append(depViews, dependentInfoView{
			FullName:     dep.FullName,
			DateOfBirth:  entity.DisplayDate(dep.DateOfBirth),
			Relationship: dep.Relationship,
			Citizenship:  dep.Citizenship,
			PWD:          dep.PWD,
		})
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"member": memberInfoView{
			PIN:              member.PIN,
			FullName:         member.FullName,
			Sex:              member.Sex,
			DateOfBirth:      entity.DisplayDate(member.DateOfBirth),
			Citizenship:      member.Citizenship,
			CivilStatus:      member.CivilStatus,
			NationalID:       member.NationalID,
			TIN:              member.TIN,
			MotherFullName:   member.MotherFullName,
			SpouseFullName:   member.SpouseFullName,
			HomeNumber:       member.HomeNumber,
			MobileNumber:     member.MobileNumber,
			Email:            member.Email,
			PermanentAddress: member.PermanentAddress,
			BusinessDL:       member.BusinessDL,
			MailingAddress:   member.MailingAddress,
		},
		"dependents": depViews,
	})
}

// HandleUpdateContact (POST /api/update-member-contact) rewrites the
// self-service contact fields and returns the refreshed record.
func (h *MemberHandler) HandleUpdateContact(w http.ResponseWriter, r *http.Request) {
	var body struct {
		PIN string `json:"pin"`
		entity.ContactUpdate
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{"success": false, "error": "Invalid JSON: " + err.Error()})
		return
	}
	if body.PIN == "" {
		writeJSON(w, http.StatusBadRequest, map[string]any{"success": false, "error": "PIN is required"})
		return
	}

	if err := h.MemberRepo.UpdateContact(r.Context(), body.PIN, body.ContactUpdate); err != nil {
		if errors.Is(err, entity.ErrMemberNotFound) {
			writeJSON(w, http.StatusNotFound, map[string]any{"success": false, "error": "Member not found"})
			return
		}
		writeJSON(w, http.StatusInternalServerError, map[string]any{"success": false, "error": err.Error()})
		return
	}

	member, err := h.MemberRepo.FindByPIN(r.Context(), body.PIN)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]any{"success": false, "error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "member": member})
}
