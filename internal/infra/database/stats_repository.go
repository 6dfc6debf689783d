package database

import (
	"context"
	"database/sql"
	"fmt"
)

// Stats backs the admin dashboard and the aggregate program report.
type Stats struct {
	TotalMembers    int `json:"totalMembers"`
	TotalDependents int `json:"totalDependents"`
	ActiveAccounts  int `json:"activeAccounts"`
}

type StatsRepository struct {
	DB *sql.DB
}

func NewStatsRepository(db *sql.DB) *StatsRepository {
	return &StatsRepository{DB: db}
}

func (r *StatsRepository) Counts(ctx context.Context) (*Stats, error) {
	s := &Stats{}
	err := r.DB.QueryRowContext(ctx, `
		SELECT
			(SELECT COUNT(*) FROM members),
			(SELECT COUNT(*) FROM dependents),
			(SELECT COUNT(*) FROM accounts)`,
	).Scan(&s.TotalMembers, &s.TotalDependents, &s.ActiveAccounts)
	if err != nil {
		return nil, fmt.Errorf("counting program totals: %w", err)
	}
	return s, nil
}
