package usecase

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/benecare/member-portal/internal/entity"
	"github.com/benecare/member-portal/internal/infra/queue"
)

type MockMemberRepository struct {
	mock.Mock
}

func (m *MockMemberRepository) ExistsByPIN(ctx context.Context, pin string) (bool, error) {
	args := m.Called(ctx, pin)
	return args.Bool(0), args.Error(1)
}

func (m *MockMemberRepository) FindByPIN(ctx context.Context, pin string) (*entity.Member, error) {
	args := m.Called(ctx, pin)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Member), args.Error(1)
}

func (m *MockMemberRepository) CreateWithDependents(ctx context.Context, member *entity.Member, dependents []*entity.Dependent) error {
	args := m.Called(ctx, member, dependents)
	return args.Error(0)
}

func (m *MockMemberRepository) DeleteCascade(ctx context.Context, pin string) error {
	args := m.Called(ctx, pin)
	return args.Error(0)
}

type MockAccountRepository struct {
	mock.Mock
}

func (m *MockAccountRepository) ExistsByPIN(ctx context.Context, pin string) (bool, error) {
	args := m.Called(ctx, pin)
	return args.Bool(0), args.Error(1)
}

func (m *MockAccountRepository) FindByPIN(ctx context.Context, pin string) (*entity.Account, error) {
	args := m.Called(ctx, pin)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Account), args.Error(1)
}

func (m *MockAccountRepository) Create(ctx context.Context, a *entity.Account) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *MockAccountRepository) UpdatePasswordHash(ctx context.Context, pin, passwordHash string) error {
	args := m.Called(ctx, pin, passwordHash)
	return args.Error(0)
}

type MockDependentRepository struct {
	mock.Mock
}

func (m *MockDependentRepository) FindByPIN(ctx context.Context, pin string) ([]*entity.Dependent, error) {
	args := m.Called(ctx, pin)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Dependent), args.Error(1)
}

func (m *MockDependentRepository) FindByID(ctx context.Context, id string) (*entity.Dependent, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Dependent), args.Error(1)
}

func (m *MockDependentRepository) Update(ctx context.Context, dep *entity.Dependent) error {
	args := m.Called(ctx, dep)
	return args.Error(0)
}

func (m *MockDependentRepository) ReplaceForPIN(ctx context.Context, pin string, dependents []*entity.Dependent) error {
	args := m.Called(ctx, pin, dependents)
	return args.Error(0)
}

type MockAllocator struct {
	mock.Mock
}

func (m *MockAllocator) Allocate(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

type MockQueueProducer struct {
	mock.Mock
}

func (m *MockQueueProducer) PublishRegistration(ctx context.Context, payload queue.RegistrationPayload) error {
	args := m.Called(ctx, payload)
	return args.Error(0)
}
