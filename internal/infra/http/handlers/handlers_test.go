package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"

	"github.com/benecare/member-portal/internal/entity"
	"github.com/benecare/member-portal/internal/usecase"
)

type stubMemberRepo struct {
	exists      bool
	created     *entity.Member
	createdDeps []*entity.Dependent
}

func (s *stubMemberRepo) ExistsByPIN(ctx context.Context, pin string) (bool, error) {
	return s.exists, nil
}

func (s *stubMemberRepo) FindByPIN(ctx context.Context, pin string) (*entity.Member, error) {
	return nil, entity.ErrMemberNotFound
}

func (s *stubMemberRepo) CreateWithDependents(ctx context.Context, m *entity.Member, dependents []*entity.Dependent) error {
	s.created = m
	s.createdDeps = dependents
	return nil
}

func (s *stubMemberRepo) DeleteCascade(ctx context.Context, pin string) error {
	return nil
}

type stubAccountRepo struct {
	account *entity.Account
}

func (s *stubAccountRepo) ExistsByPIN(ctx context.Context, pin string) (bool, error) {
	return s.account != nil, nil
}

func (s *stubAccountRepo) FindByPIN(ctx context.Context, pin string) (*entity.Account, error) {
	if s.account == nil {
		return nil, entity.ErrAccountNotFound
	}
	return s.account, nil
}

func (s *stubAccountRepo) Create(ctx context.Context, a *entity.Account) error {
	s.account = a
	return nil
}

func (s *stubAccountRepo) UpdatePasswordHash(ctx context.Context, pin, passwordHash string) error {
	if s.account == nil {
		return entity.ErrAccountNotFound
	}
	s.account.PasswordHash = passwordHash
	return nil
}

type stubAllocator struct {
	pin string
}

func (s stubAllocator) Allocate(ctx context.Context) (string, error) {
	return s.pin, nil
}

func newRegisterHandler(members *stubMemberRepo) *RegisterHandler {
	uc := usecase.NewRegisterMemberUseCase(members, stubAllocator{pin: "12-345678901-2"}, nil, nil)
	return NewRegisterHandler(uc)
}

func TestRegisterHandlerSuccess(t *testing.T) {
	members := &stubMemberRepo{}
	handler := newRegisterHandler(members)

	body := `{
		"member": {"member_full_name": "Juan Dela Cruz", "date_of_birth": "1990-01-01"},
		"dependents": [{"fullName": "Maria Dela Cruz", "relationship": "Spouse", "dob": "1992-05-10"}]
	}`
	req := httptest.NewRequest(http.MethodPost, "/register", strings.NewReader(body))
	rec := httptest.NewRecorder()

	handler.Handle(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var output usecase.RegisterMemberOutput
	assert.NoError(t, json.NewDecoder(rec.Body).Decode(&output))
	assert.True(t, output.Success)
	assert.Equal(t, "12-345678901-2", output.PIN)
	assert.Len(t, members.createdDeps, 1)
}

func TestRegisterHandlerMissingMember(t *testing.T) {
	handler := newRegisterHandler(&stubMemberRepo{})

	req := httptest.NewRequest(http.MethodPost, "/register", strings.NewReader(`{"dependents": []}`))
	rec := httptest.NewRecorder()

	handler.Handle(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid member data")
}

func TestRegisterHandlerValidationFailure(t *testing.T) {
	members := &stubMemberRepo{}
	handler := newRegisterHandler(members)

	body := `{"member": {"member_full_name": "", "date_of_birth": "1990-01-01"}}`
	req := httptest.NewRequest(http.MethodPost, "/register", strings.NewReader(body))
	rec := httptest.NewRecorder()

	handler.Handle(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Nil(t, members.created)
}

func newAuthHandler(members *stubMemberRepo, accounts *stubAccountRepo) *AuthHandler {
	return NewAuthHandler(usecase.NewAuthenticateUseCase(members, accounts))
}

func TestLoginHandlerSuccess(t *testing.T) {
	hash, _ := bcrypt.GenerateFromPassword([]byte("s3cret-pass"), bcrypt.MinCost)
	accounts := &stubAccountRepo{account: &entity.Account{PIN: "12-345678901-2", PasswordHash: string(hash)}}
	handler := newAuthHandler(&stubMemberRepo{exists: true}, accounts)

	body := `{"pin": "12-345678901-2", "password": "s3cret-pass"}`
	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(body))
	rec := httptest.NewRecorder()

	handler.HandleLogin(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"success":true`)
}

func TestLoginHandlerWrongPassword(t *testing.T) {
	hash, _ := bcrypt.GenerateFromPassword([]byte("s3cret-pass"), bcrypt.MinCost)
	accounts := &stubAccountRepo{account: &entity.Account{PIN: "12-345678901-2", PasswordHash: string(hash)}}
	handler := newAuthHandler(&stubMemberRepo{exists: true}, accounts)

	body := `{"pin": "12-345678901-2", "password": "wrong"}`
	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(body))
	rec := httptest.NewRecorder()

	handler.HandleLogin(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid password")
}

func TestLoginHandlerNoAccount(t *testing.T) {
	handler := newAuthHandler(&stubMemberRepo{exists: true}, &stubAccountRepo{})

	body := `{"pin": "12-345678901-2", "password": "whatever"}`
	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(body))
	rec := httptest.NewRecorder()

	handler.HandleLogin(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "No account found")
}

func TestLoginHandlerMissingCredentials(t *testing.T) {
	handler := newAuthHandler(&stubMemberRepo{}, &stubAccountRepo{})

	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(`{}`))
	rec := httptest.NewRecorder()

	handler.HandleLogin(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
