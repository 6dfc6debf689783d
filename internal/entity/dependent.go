package entity

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrDependentNotFound = errors.New("dependent not found")

// Dependent is a person covered under a member. It always references an
// existing member by PIN; rows are written inside the same transaction as
// the member (registration) or against an already persisted PIN (replace).
type Dependent struct {
	ID           string    `json:"id"`
	PIN          string    `json:"pin"`
	FullName     string    `json:"dependent_full_name"`
	Relationship string    `json:"dependent_relationship"`
	DateOfBirth  string    `json:"dependent_date_of_birth"` // YYYY-MM-DD
	Citizenship  string    `json:"dependent_citizenship"`
	PWD          string    `json:"dependent_pwd"` // person-with-disability flag, "Yes"/"No"
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func NewDependent(pin, fullName, relationship, dateOfBirth, citizenship, pwd string) (*Dependent, error) {
	if pin == "" {
		return nil, errors.New("pin is required")
	}
	if fullName == "" {
		return nil, errors.New("dependent full name is required")
	}
	if relationship == "" {
		return nil, errors.New("dependent relationship is required")
	}

	return &Dependent{
		ID:           uuid.New().String(),
		PIN:          pin,
		FullName:     fullName,
		Relationship: relationship,
		DateOfBirth:  dateOfBirth,
		Citizenship:  citizenship,
		PWD:          pwd,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}, nil
}

// DependentRepositoryInterface defines the dependent persistence contract.
type DependentRepositoryInterface interface {
	FindByPIN(ctx context.Context, pin string) ([]*Dependent, error)
	FindByID(ctx context.Context, id string) (*Dependent, error)
	Update(ctx context.Context, dependent *Dependent) error
	ReplaceForPIN(ctx context.Context, pin string, dependents []*Dependent) error
}
