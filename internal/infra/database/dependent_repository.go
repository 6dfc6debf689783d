package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/benecare/member-portal/internal/entity"
)

const dependentColumns = `id, pin, dependent_full_name, dependent_relationship,
	dependent_date_of_birth, dependent_citizenship, dependent_pwd, created_at, updated_at`

const insertDependentQuery = `INSERT INTO dependents (id, pin, dependent_full_name,
	dependent_relationship, dependent_date_of_birth, dependent_citizenship, dependent_pwd,
	created_at, updated_at) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

type DependentRepository struct {
	DB *sql.DB
}

func NewDependentRepository(db *sql.DB) *DependentRepository {
	return &DependentRepository{DB: db}
}

func (r *DependentRepository) FindByPIN(ctx context.Context, pin string) ([]*entity.Dependent, error) {
	rows, err := r.DB.QueryContext(ctx,
		`SELECT `+dependentColumns+` FROM dependents WHERE pin = $1 ORDER BY created_at ASC`, pin)
	if err != nil {
		return nil, fmt.Errorf("fetching dependents: %w", err)
	}
	defer rows.Close()
	return scanDependents(rows)
}

func (r *DependentRepository) FindByID(ctx context.Context, id string) (*entity.Dependent, error) {
	dep := &entity.Dependent{}
	err := r.DB.QueryRowContext(ctx,
		`SELECT `+dependentColumns+` FROM dependents WHERE id = $1`, id).Scan(
		&dep.ID, &dep.PIN, &dep.FullName, &dep.Relationship, &dep.DateOfBirth,
		&dep.Citizenship, &dep.PWD, &dep.CreatedAt, &dep.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, entity.ErrDependentNotFound
		}
		return nil, fmt.Errorf("fetching dependent: %w", err)
	}
	return dep, nil
}

func (r *DependentRepository) Update(ctx context.Context, dep *entity.Dependent) error {
	res, err := r.DB.ExecContext(ctx,
		`UPDATE dependents SET dependent_full_name = $2, dependent_relationship = $3,
			dependent_date_of_birth = $4, dependent_citizenship = $5, dependent_pwd = $6,
			updated_at = $7
		 WHERE id = $1`,
		dep.ID, dep.FullName, dep.Relationship, dep.DateOfBirth, dep.Citizenship,
		dep.PWD, dep.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("updating dependent: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return entity.ErrDependentNotFound
	}
	return nil
}

// ReplaceForPIN swaps the full dependent set for a member: delete-all then
// reinsert, inside one transaction. An empty incoming set leaves zero rows.
func (r *DependentRepository) ReplaceForPIN(ctx context.Context, pin string, dependents []*entity.Dependent) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("starting replace transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM dependents WHERE pin = $1`, pin); err != nil {
		return fmt.Errorf("clearing dependents: %w", err)
	}

	for _, dep := range dependents {
		if _, err := tx.ExecContext(ctx, insertDependentQuery,
			dep.ID, dep.PIN, dep.FullName, dep.Relationship, dep.DateOfBirth,
			dep.Citizenship, dep.PWD, dep.CreatedAt, dep.UpdatedAt,
		); err != nil {
			return fmt.Errorf("inserting dependent %q: %w", dep.FullName, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing replace: %w", err)
	}
	return nil
}

// RecentlyAdded feeds the admin activity panel.
func (r *DependentRepository) RecentlyAdded(ctx context.Context, limit int) ([]*entity.Dependent, error) {
	rows, err := r.DB.QueryContext(ctx,
		`SELECT `+dependentColumns+` FROM dependents ORDER BY created_at DESC LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("fetching recent dependents: %w", err)
	}
	defer rows.Close()
	return scanDependents(rows)
}

type DependentSearchFilter struct {
	Term         string
	Relationship string
	Citizenship  string
	PWD          string
	Page         int
	Limit        int
}

type DependentSearchRow struct {
	entity.Dependent
	MemberFullName string `json:"member_full_name"`
}

func (r *DependentRepository) Search(ctx context.Context, f DependentSearchFilter) ([]*DependentSearchRow, *Pagination, error) {
	page, limit := normalizePage(f.Page, f.Limit)

	var conds []string
	var args []any

	if f.Term != "" {
		args = append(args, "%"+f.Term+"%")
		n := len(args)
		conds = append(conds, fmt.Sprintf("(d.dependent_full_name ILIKE $%d OR d.pin ILIKE $%d)", n, n))
	}
	for _, exact := range []struct {
		column string
		value  string
	}{
		{"d.dependent_relationship", f.Relationship},
		{"d.dependent_citizenship", f.Citizenship},
		{"d.dependent_pwd", f.PWD},
	} {
		if exact.value != "" {
			args = append(args, exact.value)
			conds = append(conds, fmt.Sprintf("%s = $%d", exact.column, len(args)))
		}
	}

	where := ""
	if len(conds) > 0 {
		where = "WHERE " + strings.Join(conds, " AND ")
	}

	var total int
	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM dependents d %s`, where)
	if err := r.DB.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, nil, fmt.Errorf("counting dependents: %w", err)
	}

	args = append(args, limit, (page-1)*limit)
	rowsQuery := fmt.Sprintf(`
		SELECT d.id, d.pin, d.dependent_full_name, d.dependent_relationship,
			d.dependent_date_of_birth, d.dependent_citizenship, d.dependent_pwd,
			d.created_at, d.updated_at, m.member_full_name
		FROM dependents d
		JOIN members m ON d.pin = m.pin
		%s
		ORDER BY m.member_full_name
		LIMIT $%d OFFSET $%d`, where, len(args)-1, len(args))

	rows, err := r.DB.QueryContext(ctx, rowsQuery, args...)
	if err != nil {
		return nil, nil, fmt.Errorf("searching dependents: %w", err)
	}
	defer rows.Close()

	var results []*DependentSearchRow
	for rows.Next() {
		row := &DependentSearchRow{}
		if err := rows.Scan(
			&row.ID, &row.PIN, &row.FullName, &row.Relationship, &row.DateOfBirth,
			&row.Citizenship, &row.PWD, &row.CreatedAt, &row.UpdatedAt, &row.MemberFullName,
		); err != nil {
			return nil, nil, fmt.Errorf("scanning dependent row: %w", err)
		}
		results = append(results, row)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("iterating dependent rows: %w", err)
	}

	return results, newPagination(total, page, limit), nil
}

func scanDependents(rows *sql.Rows) ([]*entity.Dependent, error) {
	var dependents []*entity.Dependent
	for rows.Next() {
		dep := &entity.Dependent{}
		if err := rows.Scan(
			&dep.ID, &dep.PIN, &dep.FullName, &dep.Relationship, &dep.DateOfBirth,
			&dep.Citizenship, &dep.PWD, &dep.CreatedAt, &dep.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scanning dependent: %w", err)
		}
		dependents = append(dependents, dep)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating dependents: %w", err)
	}
	return dependents, nil
}
