package usecase

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/benecare/member-portal/internal/entity"
	"github.com/benecare/member-portal/internal/infra/queue"
	"github.com/benecare/member-portal/internal/pin"
)

type RegisterMemberUseCase struct {
	Members   MemberRepositoryInterface
	Allocator PINAllocator
	Queue     QueueProducerInterface
	Logger    *zap.Logger
}

func NewRegisterMemberUseCase(
	members MemberRepositoryInterface,
	allocator PINAllocator,
	producer QueueProducerInterface,
	logger *zap.Logger,
) *RegisterMemberUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RegisterMemberUseCase{
		Members:   members,
		Allocator: allocator,
		Queue:     producer,
		Logger:    logger,
	}
}

// Execute validates the submission, allocates a fresh PIN and lands the
// member plus all dependents atomically. Nothing is written when any part
// of the submission is invalid.
func (uc *RegisterMemberUseCase) Execute(ctx context.Context, input RegisterMemberInput) (*RegisterMemberOutput, error) {
	if validationErrors := ValidateRegisterMemberInput(input); len(validationErrors) > 0 {
		return nil, &DomainError{
			Code:    "VALIDATION_ERROR",
			Message: joinValidationErrors(validationErrors),
		}
	}

	allocated, err := uc.Allocator.Allocate(ctx)
	if err != nil {
		if errors.Is(err, pin.ErrExhausted) {
			return nil, &TechnicalError{
				Code:    "ALLOCATOR_EXHAUSTED",
				Message: "could not allocate a unique PIN: " + err.Error(),
			}
		}
		return nil, &TechnicalError{
			Code:    "ALLOCATOR_FAILED",
			Message: "failed to generate unique PIN: " + err.Error(),
		}
	}

	now := time.Now()
	member := &entity.Member{
		PIN:              allocated,
		MemberType:       input.Member.MemberType,
		FullName:         input.Member.FullName,
		Sex:              input.Member.Sex,
		DateOfBirth:      input.Member.DateOfBirth,
		Citizenship:      input.Member.Citizenship,
		CivilStatus:      input.Member.CivilStatus,
		NationalID:       input.Member.NationalID,
		TIN:              input.Member.TIN,
		MotherFullName:   input.Member.MotherFullName,
		SpouseFullName:   input.Member.SpouseFullName,
		HomeNumber:       input.Member.HomeNumber,
		MobileNumber:     input.Member.MobileNumber,
		Email:            input.Member.Email,
		PermanentAddress: input.Member.PermanentAddress,
		BusinessDL:       input.Member.BusinessDL,
		MailingAddress:   input.Member.MailingAddress,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if err := member.Validate(); err != nil {
		return nil, &DomainError{Code: "VALIDATION_ERROR", Message: err.Error()}
	}

	dependents := make([]*entity.Dependent, 0, len(input.Dependents))
	for _, depInput := range input.Dependents {
		dep, err := entity.NewDependent(allocated, depInput.FullName, depInput.Relationship,
			depInput.DateOfBirth, depInput.Citizenship, depInput.PWD)
		if err != nil {
			return nil, &DomainError{Code: "VALIDATION_ERROR", Message: err.Error()}
		}
		dependents = append(dependents, dep)
	}

	if err := uc.Members.CreateWithDependents(ctx, member, dependents); err != nil {
		if errors.Is(err, entity.ErrPINConflict) {
			return nil, &TechnicalError{
				Code:    "PIN_CONFLICT",
				Message: "allocated PIN collided with a concurrent registration, please resubmit",
			}
		}
		return nil, &TechnicalError{
			Code:    "DATABASE_ERROR",
			Message: "failed to persist registration: " + err.Error(),
		}
	}

	// Best effort: the registration is already durable, a dead broker must
	// not fail the request.
	if uc.Queue != nil {
		payload := queue.RegistrationPayload{
			PIN:      member.PIN,
			FullName: member.FullName,
			Email:    member.Email,
		}
		if err := uc.Queue.PublishRegistration(ctx, payload); err != nil {
			uc.Logger.Warn("registration event not published",
				zap.String("pin", member.PIN), zap.Error(err))
		}
	}

	uc.Logger.Info("member registered",
		zap.String("pin", member.PIN),
		zap.Int("dependents", len(dependents)))

	return &RegisterMemberOutput{
		Success: true,
		Message: "Registration successful",
		PIN:     member.PIN,
	}, nil
}
