package usecase

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/benecare/member-portal/internal/entity"
)

type ChangePasswordUseCase struct {
	Accounts AccountRepositoryInterface
}

func NewChangePasswordUseCase(accounts AccountRepositoryInterface) *ChangePasswordUseCase {
	return &ChangePasswordUseCase{Accounts: accounts}
}

func (uc *ChangePasswordUseCase) Execute(ctx context.Context, input ChangePasswordInput) error {
	if input.PIN == "" || input.OldPassword == "" || input.NewPassword == "" {
		return &DomainError{Code: "MISSING_FIELDS", Message: "All fields are required"}
	}

	account, err := uc.Accounts.FindByPIN(ctx, input.PIN)
	if err != nil {
		if errors.Is(err, entity.ErrAccountNotFound) {
			return &DomainError{Code: "ACCOUNT_NOT_FOUND", Message: "Account not found"}
		}
		return &TechnicalError{Code: "DATABASE_ERROR", Message: err.Error()}
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(input.OldPassword)); err != nil {
		return &DomainError{Code: "INVALID_PASSWORD", Message: "Current password is incorrect"}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.NewPassword), bcryptCost)
	if err != nil {
		return &TechnicalError{Code: "HASH_ERROR", Message: "failed to hash password"}
	}

	if err := uc.Accounts.UpdatePasswordHash(ctx, input.PIN, string(hash)); err != nil {
		return &TechnicalError{Code: "DATABASE_ERROR", Message: err.Error()}
	}
	return nil
}
