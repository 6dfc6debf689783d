package pin

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/benecare/member-portal/internal/entity"
)

type checkerFunc func(ctx context.Context, pin string) (bool, error)

func (f checkerFunc) ExistsByPIN(ctx context.Context, pin string) (bool, error) {
	return f(ctx, pin)
}

func TestAllocateReturnsWellFormedPIN(t *testing.T) {
	alloc := NewAllocator(checkerFunc(func(ctx context.Context, pin string) (bool, error) {
		return false, nil
	}))

	for i := 0; i < 50; i++ {
		got, err := alloc.Allocate(context.Background())
		assert.NoError(t, err)
		assert.True(t, entity.ValidPIN(got), "allocated pin %q does not match NN-NNNNNNNNN-N", got)
	}
}

func TestAllocateRetriesOnCollision(t *testing.T) {
	calls := 0
	alloc := NewAllocator(checkerFunc(func(ctx context.Context, pin string) (bool, error) {
		calls++
		// first two draws collide, third is free
		return calls < 3, nil
	}))

	got, err := alloc.Allocate(context.Background())
	assert.NoError(t, err)
	assert.True(t, entity.ValidPIN(got))
	assert.Equal(t, 3, calls)
}

func TestAllocateExhaustsRetryBudget(t *testing.T) {
	calls := 0
	alloc := NewAllocator(checkerFunc(func(ctx context.Context, pin string) (bool, error) {
		calls++
		return true, nil
	}))

	_, err := alloc.Allocate(context.Background())
	assert.ErrorIs(t, err, ErrExhausted)
	assert.Equal(t, MaxAttempts, calls)
}

func TestAllocatePropagatesProbeError(t *testing.T) {
	probeErr := errors.New("connection lost")
	alloc := NewAllocator(checkerFunc(func(ctx context.Context, pin string) (bool, error) {
		return false, probeErr
	}))

	_, err := alloc.Allocate(context.Background())
	assert.ErrorIs(t, err, probeErr)
}
