package usecase

import (
	"context"
	"net/mail"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/benecare/member-portal/internal/entity"
)

// bcryptCost matches what the portal has always used; raising it would
// invalidate no stored hashes but slow every login.
const bcryptCost = 10

type CreateAccountUseCase struct {
	Members  MemberRepositoryInterface
	Accounts AccountRepositoryInterface
}

func NewCreateAccountUseCase(members MemberRepositoryInterface, accounts AccountRepositoryInterface) *CreateAccountUseCase {
	return &CreateAccountUseCase{Members: members, Accounts: accounts}
}

// Execute links a login credential to an existing member PIN. Preconditions
// are checked in order: the PIN must reference a member, and no account may
// already exist for it.
func (uc *CreateAccountUseCase) Execute(ctx context.Context, input CreateAccountInput) (*CreateAccountOutput, error) {
	if strings.TrimSpace(input.PIN) == "" || strings.TrimSpace(input.Email) == "" || input.Password == "" {
		return nil, &DomainError{
			Code:    "MISSING_FIELDS",
			Message: "PIN, email, and password are required",
		}
	}
	if _, err := mail.ParseAddress(input.Email); err != nil {
		return nil, &DomainError{Code: "INVALID_EMAIL", Message: "email is invalid"}
	}

	memberExists, err := uc.Members.ExistsByPIN(ctx, input.PIN)
	if err != nil {
		return nil, &TechnicalError{Code: "DATABASE_ERROR", Message: err.Error()}
	}
	if !memberExists {
		return nil, &DomainError{
			Code:    "UNKNOWN_PIN",
			Message: "PIN does not exist. Please register as a member first.",
		}
	}

	accountExists, err := uc.Accounts.ExistsByPIN(ctx, input.PIN)
	if err != nil {
		return nil, &TechnicalError{Code: "DATABASE_ERROR", Message: err.Error()}
	}
	if accountExists {
		return nil, &DomainError{
			Code:    "ACCOUNT_EXISTS",
			Message: "An account for this PIN already exists.",
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcryptCost)
	if err != nil {
		return nil, &TechnicalError{Code: "HASH_ERROR", Message: "failed to hash password"}
	}

	account := &entity.Account{
		PIN:          input.PIN,
		Email:        input.Email,
		PasswordHash: string(hash),
		CreatedAt:    time.Now(),
	}
	if err := uc.Accounts.Create(ctx, account); err != nil {
		if err == entity.ErrAccountExists {
			return nil, &DomainError{
				Code:    "ACCOUNT_EXISTS",
				Message: "An account for this PIN already exists.",
			}
		}
		return nil, &TechnicalError{Code: "DATABASE_ERROR", Message: err.Error()}
	}

	return &CreateAccountOutput{
		Success: true,
		Message: "Account created successfully",
		PIN:     input.PIN,
	}, nil
}
