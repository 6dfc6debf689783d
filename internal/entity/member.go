package entity

import (
	"errors"
	"regexp"
	"time"
)

var (
	ErrMemberNotFound = errors.New("member not found")
	ErrPINConflict    = errors.New("pin already registered")
)

// PIN format: two digits, nine digits, one digit, hyphen-separated.
var pinPattern = regexp.MustCompile(`^\d{2}-\d{9}-\d$`)

func ValidPIN(pin string) bool {
	return pinPattern.MatchString(pin)
}

// Member is the primary record of a registered individual. The PIN is
// allocated once at registration and never changes.
type Member struct {
	PIN              string    `json:"pin"`
	MemberType       string    `json:"member_type"`
	FullName         string    `json:"member_full_name"`
	Sex              string    `json:"sex"`
	DateOfBirth      string    `json:"date_of_birth"` // YYYY-MM-DD
	Citizenship      string    `json:"citizenship"`
	CivilStatus      string    `json:"civil_status"`
	NationalID       string    `json:"national_id"`
	TIN              string    `json:"tin"`
	MotherFullName   string    `json:"mother_full_name"`
	SpouseFullName   string    `json:"spouse_full_name"`
	HomeNumber       string    `json:"home_no"`
	MobileNumber     string    `json:"mobile_no"`
	Email            string    `json:"email_address"`
	PermanentAddress string    `json:"permanent_address"`
	BusinessDL       string    `json:"business_dl"`
	MailingAddress   string    `json:"mailing_address"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

func (m *Member) Validate() error {
	if m.PIN == "" || !ValidPIN(m.PIN) {
		return errors.New("pin is invalid")
	}
	if m.FullName == "" {
		return errors.New("member full name is required")
	}
	if m.DateOfBirth == "" {
		return errors.New("date of birth is required")
	}
	return nil
}

// ContactUpdate carries the self-service editable contact fields.
type ContactUpdate struct {
	HomeNumber       string `json:"homeNumber"`
	MobileNumber     string `json:"mobileNumber"`
	Email            string `json:"email"`
	PermanentAddress string `json:"permanentAddress"`
	BusinessDL       string `json:"businessDl"`
	MailingAddress   string `json:"mailingAddress"`
}
