// Package pin allocates unique member identifiers in the program format
// NN-NNNNNNNNN-N: digits drawn uniformly at random per segment, probed
// against the member store, redrawn on collision.
package pin

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
)

// MaxAttempts bounds the collision retry loop. At expected table sizes a
// collision is a one-in-billions event, so hitting the bound means the
// store is effectively full or the probe is lying.
const MaxAttempts = 10

var ErrExhausted = errors.New("pin allocator: retry budget exhausted")

type ExistenceChecker interface {
	ExistsByPIN(ctx context.Context, pin string) (bool, error)
}

type Allocator struct {
	Members ExistenceChecker
}

func NewAllocator(members ExistenceChecker) *Allocator {
	return &Allocator{Members: members}
}

// Allocate draws candidate PINs until one is absent from the member store.
// The check-then-insert window is closed downstream: members.pin is the
// primary key, so a lost race fails the insert instead of duplicating.
func (a *Allocator) Allocate(ctx context.Context) (string, error) {
	for attempt := 0; attempt < MaxAttempts; attempt++ {
		candidate := fmt.Sprintf("%s-%s-%s", randDigits(2), randDigits(9), randDigits(1))

		exists, err := a.Members.ExistsByPIN(ctx, candidate)
		if err != nil {
			return "", fmt.Errorf("pin allocator: existence probe failed: %w", err)
		}
		if !exists {
			return candidate, nil
		}
	}
	return "", ErrExhausted
}

func randDigits(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = byte('0' + rand.Intn(10))
	}
	return string(b)
}
