package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"

	"github.com/benecare/member-portal/internal/entity"
)

func TestAuthenticateSuccess(t *testing.T) {
	ctx := context.Background()

	hash, _ := bcrypt.GenerateFromPassword([]byte("s3cret-pass"), bcrypt.MinCost)
	account := &entity.Account{PIN: "12-345678901-2", PasswordHash: string(hash)}

	mockMembers := new(MockMemberRepository)
	mockAccounts := new(MockAccountRepository)
	mockMembers.On("ExistsByPIN", ctx, "12-345678901-2").Return(true, nil)
	mockAccounts.On("FindByPIN", ctx, "12-345678901-2").Return(account, nil)

	uc := NewAuthenticateUseCase(mockMembers, mockAccounts)

	output, err := uc.Execute(ctx, AuthenticateInput{PIN: "12-345678901-2", Password: "s3cret-pass"})

	assert.NoError(t, err)
	assert.True(t, output.Success)
	assert.Equal(t, "12-345678901-2", output.PIN)
}

func TestAuthenticateUnknownPIN(t *testing.T) {
	ctx := context.Background()

	mockMembers := new(MockMemberRepository)
	mockAccounts := new(MockAccountRepository)
	mockMembers.On("ExistsByPIN", ctx, "99-999999999-9").Return(false, nil)

	uc := NewAuthenticateUseCase(mockMembers, mockAccounts)

	_, err := uc.Execute(ctx, AuthenticateInput{PIN: "99-999999999-9", Password: "whatever"})

	assert.Equal(t, ErrInvalidPIN, err)
	mockAccounts.AssertNotCalled(t, "FindByPIN", ctx, "99-999999999-9")
}

func TestAuthenticateMemberWithoutAccount(t *testing.T) {
	ctx := context.Background()

	mockMembers := new(MockMemberRepository)
	mockAccounts := new(MockAccountRepository)
	mockMembers.On("ExistsByPIN", ctx, "12-345678901-2").Return(true, nil)
	mockAccounts.On("FindByPIN", ctx, "12-345678901-2").Return(nil, entity.ErrAccountNotFound)

	uc := NewAuthenticateUseCase(mockMembers, mockAccounts)

	_, err := uc.Execute(ctx, AuthenticateInput{PIN: "12-345678901-2", Password: "whatever"})

	assert.Equal(t, ErrNoAccount, err)
}

func TestAuthenticateWrongPassword(t *testing.T) {
	ctx := context.Background()

	hash, _ := bcrypt.GenerateFromPassword([]byte("s3cret-pass"), bcrypt.MinCost)
	account := &entity.Account{PIN: "12-345678901-2", PasswordHash: string(hash)}

	mockMembers := new(MockMemberRepository)
	mockAccounts := new(MockAccountRepository)
	mockMembers.On("ExistsByPIN", ctx, "12-345678901-2").Return(true, nil)
	mockAccounts.On("FindByPIN", ctx, "12-345678901-2").Return(account, nil)

	uc := NewAuthenticateUseCase(mockMembers, mockAccounts)

	_, err := uc.Execute(ctx, AuthenticateInput{PIN: "12-345678901-2", Password: "not-the-password"})

	assert.Equal(t, ErrInvalidPassword, err)
}

func TestAuthenticateMissingCredentials(t *testing.T) {
	uc := NewAuthenticateUseCase(new(MockMemberRepository), new(MockAccountRepository))

	for _, input := range []AuthenticateInput{
		{},
		{PIN: "12-345678901-2"},
		{Password: "s3cret-pass"},
	} {
		_, err := uc.Execute(context.Background(), input)
		assert.Error(t, err)
		assert.True(t, IsDomainError(err))
	}
}
