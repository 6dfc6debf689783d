// Package report renders fixed-layout PDF documents from already-fetched
// rows. It is a pure function of its inputs: no queries, no business logic.
package report

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"

	"github.com/benecare/member-portal/internal/entity"
)

type Exporter struct{}

func NewExporter() *Exporter {
	return &Exporter{}
}

// MemberReport lays out one member with contact details and dependents.
func (e *Exporter) MemberReport(m *entity.Member, dependents []*entity.Dependent) ([]byte, error) {
	pdf := newDoc("Member Report")

	section(pdf, "Member Information")
	line(pdf, "PIN", m.PIN)
	line(pdf, "Name", m.FullName)
	line(pdf, "Member Type", m.MemberType)
	line(pdf, "Civil Status", m.CivilStatus)
	line(pdf, "Citizenship", m.Citizenship)
	pdf.Ln(4)

	section(pdf, "Contact Information")
	line(pdf, "Email", orNA(m.Email))
	line(pdf, "Mobile", orNA(m.MobileNumber))
	line(pdf, "Home", orNA(m.HomeNumber))
	pdf.Ln(4)

	section(pdf, "Dependents")
	if len(dependents) == 0 {
		body(pdf, "No dependents registered")
	}
	for _, dep := range dependents {
		line(pdf, "Name", dep.FullName)
		line(pdf, "Relationship", dep.Relationship)
		line(pdf, "Date of Birth", entity.DisplayDate(dep.DateOfBirth))
		line(pdf, "Citizenship", dep.Citizenship)
		line(pdf, "PWD", dep.PWD)
		pdf.Ln(4)
	}

	return output(pdf)
}

// DependentReport lays out a single dependent record.
func (e *Exporter) DependentReport(dep *entity.Dependent) ([]byte, error) {
	pdf := newDoc("Dependent Report")

	section(pdf, "Dependent Information")
	line(pdf, "PIN", dep.PIN)
	line(pdf, "Name", dep.FullName)
	line(pdf, "Relationship", dep.Relationship)
	line(pdf, "Date of Birth", entity.DisplayDate(dep.DateOfBirth))
	line(pdf, "Citizenship", dep.Citizenship)
	line(pdf, "PWD", dep.PWD)

	return output(pdf)
}

// ProgramReport lays out the aggregate counts plus the most recent
// dependent registrations.
func (e *Exporter) ProgramReport(totalMembers, totalDependents, activeAccounts int, recent []*entity.Dependent) ([]byte, error) {
	pdf := newDoc("Program Report")

	section(pdf, "Statistics")
	body(pdf, fmt.Sprintf("Total Members: %d", totalMembers))
	body(pdf, fmt.Sprintf("Total Dependents: %d", totalDependents))
	body(pdf, fmt.Sprintf("Active Accounts: %d", activeAccounts))
	pdf.Ln(4)

	section(pdf, "Recent Dependents")
	if len(recent) == 0 {
		body(pdf, "No recent activity")
	}
	for _, dep := range recent {
		body(pdf, "Dependent: "+dep.FullName)
	}

	return output(pdf)
}

func newDoc(title string) *fpdf.Fpdf {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(title, false)
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 25)
	pdf.CellFormat(0, 14, title, "", 1, "C", false, 0, "")
	pdf.Ln(6)
	return pdf
}

func section(pdf *fpdf.Fpdf, heading string) {
	pdf.SetFont("Helvetica", "BU", 14)
	pdf.CellFormat(0, 8, heading, "", 1, "L", false, 0, "")
	pdf.Ln(2)
}

func line(pdf *fpdf.Fpdf, label, value string) {
	body(pdf, fmt.Sprintf("%s: %s", label, value))
}

func body(pdf *fpdf.Fpdf, text string) {
	pdf.SetFont("Helvetica", "", 12)
	pdf.CellFormat(0, 6, text, "", 1, "L", false, 0, "")
}

func output(pdf *fpdf.Fpdf) ([]byte, error) {
	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("rendering pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
