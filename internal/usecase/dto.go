package usecase

// MemberInput mirrors the registration form's member section.
type MemberInput struct {
	MemberType       string `json:"member_type"`
	FullName         string `json:"member_full_name"`
	Sex              string `json:"sex"`
	DateOfBirth      string `json:"date_of_birth"`
	Citizenship      string `json:"citizenship"`
	CivilStatus      string `json:"civil_status"`
	NationalID       string `json:"national_id"`
	TIN              string `json:"tin"`
	MotherFullName   string `json:"mother_full_name"`
	SpouseFullName   string `json:"spouse_full_name"`
	HomeNumber       string `json:"home_no"`
	MobileNumber     string `json:"mobile_no"`
	Email            string `json:"email_address"`
	PermanentAddress string `json:"permanent_address"`
	BusinessDL       string `json:"business_dl"`
	MailingAddress   string `json:"mailing_address"`
}

// DependentInput mirrors one dependent row of the registration form.
type DependentInput struct {
	FullName     string `json:"fullName"`
	Relationship string `json:"relationship"`
	DateOfBirth  string `json:"dob"`
	Citizenship  string `json:"citizenship"`
	PWD          string `json:"pwd"`
}

type RegisterMemberInput struct {
	Member     MemberInput      `json:"member"`
	Dependents []DependentInput `json:"dependents"`
}

type RegisterMemberOutput struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	PIN     string `json:"pin"`
}

type CreateAccountInput struct {
	PIN      string `json:"pin"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type CreateAccountOutput struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	PIN     string `json:"pin"`
}

type AuthenticateInput struct {
	PIN      string `json:"pin"`
	Password string `json:"password"`
}

type AuthenticateOutput struct {
	Success bool   `json:"success"`
	PIN     string `json:"pin"`
}

type ChangePasswordInput struct {
	PIN         string `json:"pin"`
	OldPassword string `json:"oldPassword"`
	NewPassword string `json:"newPassword"`
}

type ReplaceDependentsInput struct {
	PIN        string           `json:"pin"`
	Dependents []DependentInput `json:"dependents"`
}
