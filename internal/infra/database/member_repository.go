package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/lib/pq"

	"github.com/benecare/member-portal/internal/entity"
)

const memberColumns = `pin, member_type, member_full_name, sex, date_of_birth, citizenship,
	civil_status, national_id, tin, mother_full_name, spouse_full_name, home_no, mobile_no,
	email_address, permanent_address, business_dl, mailing_address, created_at, updated_at`

type MemberRepository struct {
	DB *sql.DB
}

func NewMemberRepository(db *sql.DB) *MemberRepository {
	return &MemberRepository{DB: db}
}

func (r *MemberRepository) ExistsByPIN(ctx context.Context, pin string) (bool, error) {
	var exists bool
	err := r.DB.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM members WHERE pin = $1)`, pin).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("checking pin existence: %w", err)
	}
	return exists, nil
}

func (r *MemberRepository) FindByPIN(ctx context.Context, pin string) (*entity.Member, error) {
	m := &entity.Member{}
	err := r.DB.QueryRowContext(ctx,
		`SELECT `+memberColumns+` FROM members WHERE pin = $1`, pin).Scan(
		&m.PIN, &m.MemberType, &m.FullName, &m.Sex, &m.DateOfBirth, &m.Citizenship,
		&m.CivilStatus, &m.NationalID, &m.TIN, &m.MotherFullName, &m.SpouseFullName,
		&m.HomeNumber, &m.MobileNumber, &m.Email, &m.PermanentAddress, &m.BusinessDL,
		&m.MailingAddress, &m.CreatedAt, &m.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, entity.ErrMemberNotFound
		}
		return nil, fmt.Errorf("fetching member: %w", err)
	}
	return m, nil
}

// CreateWithDependents persists the member row and every dependent row in a
// single transaction. Either the whole registration lands or none of it does.
func (r *MemberRepository) CreateWithDependents(ctx context.Context, m *entity.Member, dependents []*entity.Dependent) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("starting registration transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO members (`+memberColumns+`)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)`,
		m.PIN, m.MemberType, m.FullName, m.Sex, m.DateOfBirth, m.Citizenship,
		m.CivilStatus, m.NationalID, m.TIN, m.MotherFullName, m.SpouseFullName,
		m.HomeNumber, m.MobileNumber, m.Email, m.PermanentAddress, m.BusinessDL,
		m.MailingAddress, m.CreatedAt, m.UpdatedAt,
	)
	if err != nil {
		// members.pin is the primary key: a lost allocator race lands here
		// instead of producing a duplicate identifier.
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return entity.ErrPINConflict
		}
		return fmt.Errorf("inserting member: %w", err)
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
		return fmt.Errorf("committing registration: %w", err)
	}
	return nil
}

// Update rewrites the admin-editable member fields. The PIN and created_at
// are immutable and never touched.
func (r *MemberRepository) Update(ctx context.Context, m *entity.Member) error {
	res, err := r.DB.ExecContext(ctx,
		`UPDATE members SET member_type = $2, member_full_name = $3, sex = $4,
			date_of_birth = $5, citizenship = $6, civil_status = $7, national_id = $8,
			tin = $9, mother_full_name = $10, spouse_full_name = $11, home_no = $12,
			mobile_no = $13, email_address = $14, permanent_address = $15,
			business_dl = $16, mailing_address = $17, updated_at = $18
		 WHERE pin = $1`,
		m.PIN, m.MemberType, m.FullName, m.Sex, m.DateOfBirth, m.Citizenship,
		m.CivilStatus, m.NationalID, m.TIN, m.MotherFullName, m.SpouseFullName,
		m.HomeNumber, m.MobileNumber, m.Email, m.PermanentAddress, m.BusinessDL,
		m.MailingAddress, m.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("updating member: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return entity.ErrMemberNotFound
	}
	return nil
}

func (r *MemberRepository) UpdateContact(ctx context.Context, pin string, c entity.ContactUpdate) error {
	res, err := r.DB.ExecContext(ctx,
		`UPDATE members SET home_no = $2, mobile_no = $3, email_address = $4,
			permanent_address = $5, business_dl = $6, mailing_address = $7, updated_at = NOW()
		 WHERE pin = $1`,
		pin, c.HomeNumber, c.MobileNumber, c.Email, c.PermanentAddress, c.BusinessDL, c.MailingAddress,
	)
	if err != nil {
		return fmt.Errorf("updating member contact: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return entity.ErrMemberNotFound
	}
	return nil
}

// DeleteCascade removes everything registered under a PIN. Deletion order
// keeps the store free of orphaned dependents at every point.
func (r *MemberRepository) DeleteCascade(ctx context.Context, pin string) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("starting delete transaction: %w", err)
	}
	defer tx.Rollback()

	for _, q := range []string{
		`DELETE FROM dependents WHERE pin = $1`,
		`DELETE FROM accounts WHERE pin = $1`,
		`DELETE FROM members WHERE pin = $1`,
	} {
		if _, err := tx.ExecContext(ctx, q, pin); err != nil {
			return fmt.Errorf("cascade delete: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing delete: %w", err)
	}
	return nil
}

// MemberSearchFilter is the admin search form: one free-text term OR-matched
// across identifying columns, AND-combined with the exact filters.
type MemberSearchFilter struct {
	Term        string
	MemberType  string
	CivilStatus string
	Citizenship string
	Page        int
	Limit       int
}

type MemberSearchRow struct {
	entity.Member
	DependentCount int `json:"dependentCount"`
}

func (r *MemberRepository) Search(ctx context.Context, f MemberSearchFilter) ([]*MemberSearchRow, *Pagination, error) {
	page, limit := normalizePage(f.Page, f.Limit)

	var conds []string
	var args []any

	if f.Term != "" {
		args = append(args, "%"+f.Term+"%")
		n := len(args)
		conds = append(conds, fmt.Sprintf(
			"(m.pin ILIKE $%d OR m.member_full_name ILIKE $%d OR m.email_address ILIKE $%d OR m.mobile_no ILIKE $%d)",
			n, n, n, n))
	}
	for _, exact := range []struct {
		column string
		value  string
	}{
		{"m.member_type", f.MemberType},
		{"m.civil_status", f.CivilStatus},
		{"m.citizenship", f.Citizenship},
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
	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM members m %s`, where)
	if err := r.DB.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, nil, fmt.Errorf("counting members: %w", err)
	}

	args = append(args, limit, (page-1)*limit)
	rowsQuery := fmt.Sprintf(`
		SELECT m.pin, m.member_type, m.member_full_name, m.sex, m.date_of_birth,
			m.citizenship, m.civil_status, m.national_id, m.tin, m.mother_full_name,
			m.spouse_full_name, m.home_no, m.mobile_no, m.email_address,
			m.permanent_address, m.business_dl, m.mailing_address, m.created_at,
			m.updated_at, COUNT(d.pin) AS dependent_count
		FROM members m
		LEFT JOIN dependents d ON d.pin = m.pin
		%s
		GROUP BY m.pin
		ORDER BY m.member_full_name
		LIMIT $%d OFFSET $%d`, where, len(args)-1, len(args))

	rows, err := r.DB.QueryContext(ctx, rowsQuery, args...)
	if err != nil {
		return nil, nil, fmt.Errorf("searching members: %w", err)
	}
	defer rows.Close()

	var results []*MemberSearchRow
	for rows.Next() {
		row := &MemberSearchRow{}
		if err := rows.Scan(
			&row.PIN, &row.MemberType, &row.FullName, &row.Sex, &row.DateOfBirth,
			&row.Citizenship, &row.CivilStatus, &row.NationalID, &row.TIN,
			&row.MotherFullName, &row.SpouseFullName, &row.HomeNumber, &row.MobileNumber,
			&row.Email, &row.PermanentAddress, &row.BusinessDL, &row.MailingAddress,
			&row.CreatedAt, &row.UpdatedAt, &row.DependentCount,
		); err != nil {
			return nil, nil, fmt.Errorf("scanning member row: %w", err)
		}
		results = append(results, row)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("iterating member rows: %w", err)
	}

	return results, newPagination(total, page, limit), nil
}
