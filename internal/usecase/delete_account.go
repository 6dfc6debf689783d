package usecase

import (
	"context"
	"strings"
)

type DeleteAccountUseCase struct {
	Members MemberRepositoryInterface
}

func NewDeleteAccountUseCase(members MemberRepositoryInterface) *DeleteAccountUseCase {
	return &DeleteAccountUseCase{Members: members}
}

// Execute removes everything registered under the PIN: dependents first,
// then the account, then the member itself.
func (uc *DeleteAccountUseCase) Execute(ctx context.Context, pin string) error {
	if strings.TrimSpace(pin) == "" {
		return &DomainError{Code: "PIN_REQUIRED", Message: "PIN is required"}
	}

	if err := uc.Members.DeleteCascade(ctx, pin); err != nil {
		return &TechnicalError{Code: "DATABASE_ERROR", Message: err.Error()}
	}
	return nil
}
