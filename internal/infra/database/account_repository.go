package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"github.com/benecare/member-portal/internal/entity"
)

type AccountRepository struct {
	DB *sql.DB
}

func NewAccountRepository(db *sql.DB) *AccountRepository {
	return &AccountRepository{DB: db}
}

func (r *AccountRepository) ExistsByPIN(ctx context.Context, pin string) (bool, error) {
	var exists bool
	err := r.DB.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM accounts WHERE pin = $1)`, pin).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("checking account existence: %w", err)
	}
	return exists, nil
}

func (r *AccountRepository) Create(ctx context.Context, a *entity.Account) error {
	_, err := r.DB.ExecContext(ctx,
		`INSERT INTO accounts (pin, email, password_hash, created_at) VALUES ($1, $2, $3, $4)`,
		a.PIN, a.Email, a.PasswordHash, a.CreatedAt,
	)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return entity.ErrAccountExists
		}
		return fmt.Errorf("inserting account: %w", err)
	}
	return nil
}

func (r *AccountRepository) FindByPIN(ctx context.Context, pin string) (*entity.Account, error) {
	a := &entity.Account{}
	err := r.DB.QueryRowContext(ctx,
		`SELECT pin, email, password_hash, created_at FROM accounts WHERE pin = $1`, pin).Scan(
		&a.PIN, &a.Email, &a.PasswordHash, &a.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, entity.ErrAccountNotFound
		}
		return nil, fmt.Errorf("fetching account: %w", err)
	}
	return a, nil
}

func (r *AccountRepository) UpdatePasswordHash(ctx context.Context, pin, passwordHash string) error {
	res, err := r.DB.ExecContext(ctx,
		`UPDATE accounts SET password_hash = $2 WHERE pin = $1`, pin, passwordHash)
	if err != nil {
		return fmt.Errorf("updating password hash: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return entity.ErrAccountNotFound
	}
	return nil
}

// Profile is the self-service profile view: account email plus the mobile
// number kept on the member record.
type Profile struct {
	PIN          string `json:"pin"`
	Email        string `json:"email"`
	MobileNumber string `json:"mobileNumber"`
}

func (r *AccountRepository) ProfileByPIN(ctx context.Context, pin string) (*Profile, error) {
	p := &Profile{}
	err := r.DB.QueryRowContext(ctx,
		`SELECT a.pin, a.email, m.mobile_no
		 FROM accounts a
		 JOIN members m ON a.pin = m.pin
		 WHERE a.pin = $1`, pin).Scan(&p.PIN, &p.Email, &p.MobileNumber)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, entity.ErrAccountNotFound
		}
		return nil, fmt.Errorf("fetching profile: %w", err)
	}
	return p, nil
}
