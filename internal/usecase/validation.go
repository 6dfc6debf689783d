package usecase

import (
	"fmt"
	"net/mail"
	"regexp"
	"strings"
	"time"

	"github.com/benecare/member-portal/internal/entity"
)

// MaxDependents caps a single registration or replacement submission.
const MaxDependents = 10

type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func joinValidationErrors(errs []ValidationError) string {
	msg := "validation failed: "
	for _, e := range errs {
		msg += e.Field + " (" + e.Message + "), "
	}
	return strings.TrimSuffix(msg, ", ")
}

func ValidateRegisterMemberInput(input RegisterMemberInput) []ValidationError {
	var errors []ValidationError

	m := input.Member
	if strings.TrimSpace(m.FullName) == "" {
		errors = append(errors, ValidationError{"member_full_name", "is required"})
	} else if len(m.FullName) > 200 {
		errors = append(errors, ValidationError{"member_full_name", "must not exceed 200 characters"})
	}

	if strings.TrimSpace(m.DateOfBirth) == "" {
		errors = append(errors, ValidationError{"date_of_birth", "is required"})
	} else if !IsValidDate(m.DateOfBirth) {
		errors = append(errors, ValidationError{"date_of_birth", "must be a valid date (YYYY-MM-DD)"})
	} else if IsFutureDate(m.DateOfBirth) {
		errors = append(errors, ValidationError{"date_of_birth", "cannot be in the future"})
	}

	if m.Email != "" {
		if _, err := mail.ParseAddress(m.Email); err != nil {
			errors = append(errors, ValidationError{"email_address", "is invalid"})
		}
	}
	if m.MobileNumber != "" && !IsValidMobile(m.MobileNumber) {
		errors = append(errors, ValidationError{"mobile_no", "must be 10 or 11 digits"})
	}

	if len(input.Dependents) > MaxDependents {
		errors = append(errors, ValidationError{"dependents",
			fmt.Sprintf("must not exceed %d entries", MaxDependents)})
	}
	for i, dep := range input.Dependents {
		for _, e := range ValidateDependentInput(dep) {
			e.Field = fmt.Sprintf("dependents[%d].%s", i, e.Field)
			errors = append(errors, e)
		}
	}

	return errors
}

// ValidateDependentInput is shared by registration, dependent replacement
// and the admin edit modal, so the date rules cannot drift between entry
// points.
func ValidateDependentInput(dep DependentInput) []ValidationError {
	var errors []ValidationError

	if strings.TrimSpace(dep.FullName) == "" {
		errors = append(errors, ValidationError{"fullName", "is required"})
	}
	if strings.TrimSpace(dep.Relationship) == "" {
		errors = append(errors, ValidationError{"relationship", "is required"})
	}
	if dep.DateOfBirth != "" {
		if !IsValidDate(dep.DateOfBirth) {
			errors = append(errors, ValidationError{"dob", "must be a valid date (YYYY-MM-DD)"})
		} else if IsFutureDate(dep.DateOfBirth) {
			errors = append(errors, ValidationError{"dob", "cannot be in the future"})
		}
	}

	return errors
}

func IsValidDate(dateStr string) bool {
	if _, err := time.Parse("2006-01-02", dateStr); err == nil {
		return true
	}
	if _, err := time.Parse(time.RFC3339, dateStr); err == nil {
		return true
	}
	return false
}

// IsFutureDate compares calendar dates in the server's zone, so a birth
// date of today is still accepted.
func IsFutureDate(dateStr string) bool {
	t, err := time.ParseInLocation("2006-01-02", dateStr, time.Local)
	if err != nil {
		if t, err = time.Parse(time.RFC3339, dateStr); err != nil {
			return false
		}
		t = t.In(time.Local)
	}
	return t.Format("2006-01-02") > time.Now().Format("2006-01-02")
}

func IsValidMobile(number string) bool {
	cleaned := regexp.MustCompile(`\D`).ReplaceAllString(number, "")
	return len(cleaned) >= 10 && len(cleaned) <= 11
}

// ValidatePIN wraps the entity check so every handler rejects malformed
// identifiers with the same message.
func ValidatePIN(pin string) error {
	if strings.TrimSpace(pin) == "" {
		return &DomainError{Code: "PIN_REQUIRED", Message: "PIN is required"}
	}
	if !entity.ValidPIN(pin) {
		return &DomainError{Code: "PIN_MALFORMED", Message: "PIN must match NN-NNNNNNNNN-N"}
	}
	return nil
}
