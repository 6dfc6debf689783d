package usecase

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestIsValidDate(t *testing.T) {
	assert.True(t, IsValidDate("1990-01-01"))
	assert.True(t, IsValidDate("1990-01-01T00:00:00Z"))

	assert.False(t, IsValidDate(""))
	assert.False(t, IsValidDate("01/01/1990"))
	assert.False(t, IsValidDate("1990-13-40"))
	assert.False(t, IsValidDate("not a date"))
}

func TestIsFutureDate(t *testing.T) {
	tomorrow := time.Now().AddDate(0, 0, 1).Format("2006-01-02")
	today := time.Now().Format("2006-01-02")
	yesterday := time.Now().AddDate(0, 0, -1).Format("2006-01-02")

	assert.True(t, IsFutureDate(tomorrow))
	assert.False(t, IsFutureDate(today))
	assert.False(t, IsFutureDate(yesterday))
	assert.False(t, IsFutureDate("garbage"))
}

// Parsing and the now comparison must use the same zone, or on hosts west
// of UTC the next calendar day slips under the cutoff.
func TestIsFutureDateWestOfUTC(t *testing.T) {
	loc, err := time.LoadLocation("America/Los_Angeles")
	assert.NoError(t, err)

	orig := time.Local
	time.Local = loc
	defer func() { time.Local = orig }()

	tomorrow := time.Now().In(loc).AddDate(0, 0, 1).Format("2006-01-02")
	today := time.Now().In(loc).Format("2006-01-02")

	assert.True(t, IsFutureDate(tomorrow))
	assert.False(t, IsFutureDate(today))
}

func TestIsValidMobile(t *testing.T) {
	assert.True(t, IsValidMobile("09171234567"))
	assert.True(t, IsValidMobile("9171234567"))
	assert.True(t, IsValidMobile("0917-123-4567"))

	assert.False(t, IsValidMobile("12345"))
	assert.False(t, IsValidMobile("091712345678"))
	assert.False(t, IsValidMobile(""))
}

func TestValidatePIN(t *testing.T) {
	assert.NoError(t, ValidatePIN("12-345678901-2"))

	err := ValidatePIN("")
	assert.Error(t, err)
	assert.Equal(t, "PIN_REQUIRED", err.(*DomainError).Code)

	err = ValidatePIN("12345678901")
	assert.Error(t, err)
	assert.Equal(t, "PIN_MALFORMED", err.(*DomainError).Code)

	assert.Error(t, ValidatePIN("1-234567890-1"))
	assert.Error(t, ValidatePIN("12-34567890-12"))
}

func TestValidateDependentInputDateRules(t *testing.T) {
	errs := ValidateDependentInput(DependentInput{
		FullName: "Maria Dela Cruz", Relationship: "Spouse", DateOfBirth: "1992-05-10",
	})
	assert.Empty(t, errs)

	errs = ValidateDependentInput(DependentInput{
		FullName: "Maria Dela Cruz", Relationship: "Spouse", DateOfBirth: "05/10/1992",
	})
	assert.Len(t, errs, 1)
	assert.Equal(t, "dob", errs[0].Field)

	errs = ValidateDependentInput(DependentInput{FullName: "", Relationship: ""})
	assert.Len(t, errs, 2)
}

func TestValidateRegisterMemberInputCollectsFieldErrors(t *testing.T) {
	errs := ValidateRegisterMemberInput(RegisterMemberInput{
		Member: MemberInput{
			FullName:     "",
			DateOfBirth:  "not-a-date",
			Email:        "not-an-email",
			MobileNumber: "123",
		},
	})

	fields := make(map[string]bool)
	for _, e := range errs {
		fields[e.Field] = true
	}
	assert.True(t, fields["member_full_name"])
	assert.True(t, fields["date_of_birth"])
	assert.True(t, fields["email_address"])
	assert.True(t, fields["mobile_no"])
}
