package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/benecare/member-portal/internal/entity"
	"github.com/benecare/member-portal/internal/infra/database"
	"github.com/benecare/member-portal/internal/infra/http/middleware"
	"github.com/benecare/member-portal/internal/infra/report"
)

type ReportHandler struct {
	Exporter      *report.Exporter
	MemberRepo    *database.MemberRepository
	DependentRepo *database.DependentRepository
	StatsRepo     *database.StatsRepository
}

func NewReportHandler(
	exporter *report.Exporter,
	memberRepo *database.MemberRepository,
	dependentRepo *database.DependentRepository,
	statsRepo *database.StatsRepository,
) *ReportHandler {
	return &ReportHandler{
		Exporter:      exporter,
		MemberRepo:    memberRepo,
		DependentRepo: dependentRepo,
		StatsRepo:     statsRepo,
	}
}

// HandleMemberReport (GET /api/admin/members/{pin}/report) streams a PDF
// for one member and its dependents.
func (h *ReportHandler) HandleMemberReport(w http.ResponseWriter, r *http.Request) {
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

	pdf, err := h.Exporter.MemberReport(member, dependents)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]any{"error": "Error generating report"})
		return
	}

	middleware.RecordReport("member")
	servePDF(w, fmt.Sprintf("member-%s-report.pdf", pin), pdf)
}

// HandleDependentReport (GET /api/admin/dependents/{id}/report) streams a
// PDF for a single dependent.
func (h *ReportHandler) HandleDependentReport(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	dep, err := h.DependentRepo.FindByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, entity.ErrDependentNotFound) {
			writeJSON(w, http.StatusNotFound, map[string]any{"error": "Dependent not found"})
			return
		}
		writeJSON(w, http.StatusInternalServerError, map[string]any{"error": "Internal server error"})
		return
	}

	pdf, err := h.Exporter.DependentReport(dep)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]any{"error": "Error generating report"})
		return
	}

	middleware.RecordReport("dependent")
	servePDF(w, fmt.Sprintf("dependent-%s-report.pdf", id), pdf)
}

// HandleProgramReport (POST /api/admin/generate-report) streams the
// aggregate program PDF: totals plus recent dependent registrations.
func (h *ReportHandler) HandleProgramReport(w http.ResponseWriter, r *http.Request) {
	stats, err := h.StatsRepo.Counts(r.Context())
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]any{"error": "Error generating report"})
		return
	}

	recent, err := h.DependentRepo.RecentlyAdded(r.Context(), 10)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]any{"error": "Error generating report"})
		return
	}

	pdf, err := h.Exporter.ProgramReport(stats.TotalMembers, stats.TotalDependents, stats.ActiveAccounts, recent)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]any{"error": "Error generating report"})
		return
	}

	middleware.RecordReport("program")
	servePDF(w, "program-report.pdf", pdf)
}

func servePDF(w http.ResponseWriter, filename string, pdf []byte) {
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	w.Write(pdf)
}
