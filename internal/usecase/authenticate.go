package usecase

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/benecare/member-portal/internal/entity"
)

// The three rejection causes stay distinct server-side; the UI collapses
// them into one alert, which is an accepted information-leakage trade-off.
var (
	ErrInvalidPIN      = &DomainError{Code: "INVALID_PIN", Message: "Invalid PIN"}
	ErrNoAccount       = &DomainError{Code: "NO_ACCOUNT", Message: "No account found for this PIN"}
	ErrInvalidPassword = &DomainError{Code: "INVALID_PASSWORD", Message: "Invalid password"}
)

type AuthenticateUseCase struct {
	Members  MemberRepositoryInterface
	Accounts AccountRepositoryInterface
}

func NewAuthenticateUseCase(members MemberRepositoryInterface, accounts AccountRepositoryInterface) *AuthenticateUseCase {
	return &AuthenticateUseCase{Members: members, Accounts: accounts}
}

func (uc *AuthenticateUseCase) Execute(ctx context.Context, input AuthenticateInput) (*AuthenticateOutput, error) {
	if input.PIN == "" || input.Password == "" {
		return nil, &DomainError{Code: "MISSING_CREDENTIALS", Message: "Missing credentials"}
	}

	memberExists, err := uc.Members.ExistsByPIN(ctx, input.PIN)
	if err != nil {
		return nil, &TechnicalError{Code: "DATABASE_ERROR", Message: err.Error()}
	}
	if !memberExists {
		return nil, ErrInvalidPIN
	}

	account, err := uc.Accounts.FindByPIN(ctx, input.PIN)
	if err != nil {
		if errors.Is(err, entity.ErrAccountNotFound) {
			return nil, ErrNoAccount
		}
		return nil, &TechnicalError{Code: "DATABASE_ERROR", Message: err.Error()}
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(input.Password)); err != nil {
		return nil, ErrInvalidPassword
	}

	return &AuthenticateOutput{Success: true, PIN: account.PIN}, nil
}
