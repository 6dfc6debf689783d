package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/benecare/member-portal/internal/entity"
)

func TestReplaceDependentsSuccess(t *testing.T) {
	ctx := context.Background()

	stored := []*entity.Dependent{
		{ID: "dep-1", PIN: "12-345678901-2", FullName: "Maria Dela Cruz", Relationship: "Spouse"},
	}

	mockDeps := new(MockDependentRepository)
	mockDeps.On("ReplaceForPIN", ctx, "12-345678901-2", mock.Anything).Return(nil)
	mockDeps.On("FindByPIN", ctx, "12-345678901-2").Return(stored, nil)

	uc := NewReplaceDependentsUseCase(mockDeps)

	result, err := uc.Execute(ctx, ReplaceDependentsInput{
		PIN: "12-345678901-2",
		Dependents: []DependentInput{
			{FullName: "Maria Dela Cruz", Relationship: "Spouse", DateOfBirth: "1992-05-10", Citizenship: "Filipino"},
		},
	})

	assert.NoError(t, err)
	assert.Equal(t, stored, result)

	replaced := mockDeps.Calls[0].Arguments.Get(2).([]*entity.Dependent)
	assert.Len(t, replaced, 1)
	assert.Equal(t, "Maria Dela Cruz", replaced[0].FullName)
	assert.Equal(t, "12-345678901-2", replaced[0].PIN)
	assert.NotEmpty(t, replaced[0].ID)
}

func TestReplaceDependentsBlankNamesSkipped(t *testing.T) {
	ctx := context.Background()

	mockDeps := new(MockDependentRepository)
	mockDeps.On("ReplaceForPIN", ctx, "12-345678901-2", mock.Anything).Return(nil)
	mockDeps.On("FindByPIN", ctx, "12-345678901-2").Return([]*entity.Dependent{}, nil)

	uc := NewReplaceDependentsUseCase(mockDeps)

	_, err := uc.Execute(ctx, ReplaceDependentsInput{
		PIN: "12-345678901-2",
		Dependents: []DependentInput{
			{FullName: "   "},
			{FullName: ""},
		},
	})

	assert.NoError(t, err)

	replaced, _ := mockDeps.Calls[0].Arguments.Get(2).([]*entity.Dependent)
	assert.Empty(t, replaced)
}

func TestReplaceDependentsEmptySubmissionClearsSet(t *testing.T) {
	ctx := context.Background()

	mockDeps := new(MockDependentRepository)
	mockDeps.On("ReplaceForPIN", ctx, "12-345678901-2", mock.Anything).Return(nil)
	mockDeps.On("FindByPIN", ctx, "12-345678901-2").Return([]*entity.Dependent{}, nil)

	uc := NewReplaceDependentsUseCase(mockDeps)

	result, err := uc.Execute(ctx, ReplaceDependentsInput{PIN: "12-345678901-2"})

	assert.NoError(t, err)
	assert.Empty(t, result)
	mockDeps.AssertCalled(t, "ReplaceForPIN", ctx, "12-345678901-2", mock.Anything)
}

func TestReplaceDependentsFutureDateOfBirthRejected(t *testing.T) {
	mockDeps := new(MockDependentRepository)

	uc := NewReplaceDependentsUseCase(mockDeps)

	_, err := uc.Execute(context.Background(), ReplaceDependentsInput{
		PIN: "12-345678901-2",
		Dependents: []DependentInput{
			{FullName: "Maria Dela Cruz", Relationship: "Spouse", DateOfBirth: "2999-01-01", Citizenship: "Filipino"},
		},
	})

	assert.Error(t, err)
	assert.True(t, IsDomainError(err))
	mockDeps.AssertNotCalled(t, "ReplaceForPIN", mock.Anything, mock.Anything, mock.Anything)
}

func TestReplaceDependentsTooManyEntries(t *testing.T) {
	mockDeps := new(MockDependentRepository)

	uc := NewReplaceDependentsUseCase(mockDeps)

	input := ReplaceDependentsInput{PIN: "12-345678901-2"}
	for i := 0; i <= MaxDependents; i++ {
		input.Dependents = append(input.Dependents, DependentInput{
			FullName: "Dependent", Relationship: "Child", DateOfBirth: "2010-01-01", Citizenship: "Filipino",
		})
	}

	_, err := uc.Execute(context.Background(), input)

	assert.Error(t, err)
	assert.True(t, IsDomainError(err))
	mockDeps.AssertNotCalled(t, "ReplaceForPIN", mock.Anything, mock.Anything, mock.Anything)
}

func TestReplaceDependentsMissingPIN(t *testing.T) {
	uc := NewReplaceDependentsUseCase(new(MockDependentRepository))

	_, err := uc.Execute(context.Background(), ReplaceDependentsInput{PIN: "  "})

	assert.Error(t, err)
	assert.True(t, IsDomainError(err))
}
