package usecase

import (
	"context"

	"github.com/benecare/member-portal/internal/entity"
	"github.com/benecare/member-portal/internal/infra/queue"
)

type MemberRepositoryInterface interface {
	ExistsByPIN(ctx context.Context, pin string) (bool, error)
	FindByPIN(ctx context.Context, pin string) (*entity.Member, error)
	CreateWithDependents(ctx context.Context, m *entity.Member, dependents []*entity.Dependent) error
	DeleteCascade(ctx context.Context, pin string) error
}

type AccountRepositoryInterface interface {
	ExistsByPIN(ctx context.Context, pin string) (bool, error)
	FindByPIN(ctx context.Context, pin string) (*entity.Account, error)
	Create(ctx context.Context, a *entity.Account) error
	UpdatePasswordHash(ctx context.Context, pin, passwordHash string) error
}

type PINAllocator interface {
	Allocate(ctx context.Context) (string, error)
}

type QueueProducerInterface interface {
	PublishRegistration(ctx context.Context, payload queue.RegistrationPayload) error
}
