package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/benecare/member-portal/internal/entity"
)

type ReplaceDependentsUseCase struct {
	Dependents entity.DependentRepositoryInterface
}

func NewReplaceDependentsUseCase(dependents entity.DependentRepositoryInterface) *ReplaceDependentsUseCase {
	return &ReplaceDependentsUseCase{Dependents: dependents}
}

// Execute replaces the member's whole dependent set with the submitted one
// (full replace, not a merge). Entries with a blank name are dropped, so an
// all-blank or empty submission clears the set. Returns the rows as stored.
func (uc *ReplaceDependentsUseCase) Execute(ctx context.Context, input ReplaceDependentsInput) ([]*entity.Dependent, error) {
	if strings.TrimSpace(input.PIN) == "" {
		return nil, &DomainError{Code: "PIN_REQUIRED", Message: "PIN is required"}
	}
	if len(input.Dependents) > MaxDependents {
		return nil, &DomainError{
			Code:    "VALIDATION_ERROR",
			Message: fmt.Sprintf("dependents must not exceed %d entries", MaxDependents),
		}
	}

	var dependents []*entity.Dependent
	for i, depInput := range input.Dependents {
		if strings.TrimSpace(depInput.FullName) == "" {
			continue
		}
		if validationErrors := ValidateDependentInput(depInput); len(validationErrors) > 0 {
			return nil, &DomainError{
				Code:    "VALIDATION_ERROR",
				Message: fmt.Sprintf("dependents[%d]: %s", i, joinValidationErrors(validationErrors)),
			}
		}
		dep, err := entity.NewDependent(input.PIN, depInput.FullName, depInput.Relationship,
			depInput.DateOfBirth, depInput.Citizenship, depInput.PWD)
		if err != nil {
			return nil, &DomainError{Code: "VALIDATION_ERROR", Message: err.Error()}
		}
		dependents = append(dependents, dep)
	}

	if err := uc.Dependents.ReplaceForPIN(ctx, input.PIN, dependents); err != nil {
		return nil, &TechnicalError{Code: "DATABASE_ERROR", Message: err.Error()}
	}

	stored, err := uc.Dependents.FindByPIN(ctx, input.PIN)
	if err != nil {
		return nil, &TechnicalError{Code: "DATABASE_ERROR", Message: err.Error()}
	}
	return stored, nil
}
