package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"eventdesk-backend/internal/domain"
	"eventdesk-backend/internal/repository"
)

type memberRepository struct {
	db *sql.DB
}

func NewMemberRepository(db *sql.DB) repository.MemberRepository {
	return &memberRepository{db: db}
}

const memberColumns = `id, COALESCE(email, ''), first_name, last_name, COALESCE(phone, ''), COALESCE(company, ''), COALESCE(tags, ''), COALESCE(notes, ''), created_on, updated_on`

func scanMember(row interface{ Scan(...any) error }) (*domain.Member, error) {
	m := &domain.Member{}
	var createdOn, updatedOn time.Time
	err := row.Scan(&m.ID, &m.Email, &m.FirstName, &m.LastName, &m.Phone, &m.Company, &m.Tags, &m.Notes, &createdOn, &updatedOn)
	if err != nil {
		return nil, err
	}
	m.CreatedOn = createdOn.Format(time.RFC3339)
	m.UpdatedOn = updatedOn.Format(time.RFC3339)
	return m, nil
}

func (r *memberRepository) Create(ctx context.Context, m *domain.Member) error {
	query := `INSERT INTO members (id, email, first_name, last_name, phone, company, tags, notes, created_on, updated_on)
	          VALUES ($1, NULLIF($2, ''), $3, $4, $5, $6, $7, $8, $9, $9)`
	now := time.Now().UTC()
	m.CreatedOn = now.Format(time.RFC3339)
	m.UpdatedOn = m.CreatedOn
	_, err := r.db.ExecContext(ctx, query, m.ID, domain.NormalizeEmail(m.Email), m.FirstName, m.LastName, m.Phone, m.Company, m.Tags, m.Notes, now)
	return err
}

func (r *memberRepository) GetByID(ctx context.Context, id string) (*domain.Member, error) {
	query := `SELECT ` + memberColumns + ` FROM members WHERE id = $1`
	m, err := scanMember(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: member %s", domain.ErrNotFound, id)
	}
	return m, err
}

func (r *memberRepository) FindByEmail(ctx context.Context, email string) (*domain.Member, error) {
	query := `SELECT ` + memberColumns + ` FROM members WHERE LOWER(email) = $1`
	m, err := scanMember(r.db.QueryRowContext(ctx, query, domain.NormalizeEmail(email)))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: member email %s", domain.ErrNotFound, email)
	}
	return m, err
}

func (r *memberRepository) FindByNameAndPhone(ctx context.Context, name, phone string) (*domain.Member, error) {
	query := `SELECT ` + memberColumns + ` FROM members
	          WHERE LOWER(TRIM(first_name || ' ' || last_name)) = $1
	            AND regexp_replace(COALESCE(phone, ''), '[^0-9]', '', 'g') = $2
	          LIMIT 1`
	m, err := scanMember(r.db.QueryRowContext(ctx, query, domain.NormalizeName(name), domain.NormalizePhone(phone)))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: member %q/%q", domain.ErrNotFound, name, phone)
	}
	return m, err
}

func (r *memberRepository) Update(ctx context.Context, m *domain.Member) error {
	query := `UPDATE members SET email=NULLIF($2, ''), first_name=$3, last_name=$4, phone=$5, company=$6, tags=$7, notes=$8, updated_on=$9 WHERE id=$1`
	now := time.Now().UTC()
	m.UpdatedOn = now.Format(time.RFC3339)
	res, err := r.db.ExecContext(ctx, query, m.ID, domain.NormalizeEmail(m.Email), m.FirstName, m.LastName, m.Phone, m.Company, m.Tags, m.Notes, now)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("%w: member %s", domain.ErrNotFound, m.ID)
	}
	return nil
}

func (r *memberRepository) Search(ctx context.Context, query string, limit int32) ([]domain.Member, error) {
	like := "%" + domain.NormalizeName(query) + "%"
	q := `SELECT ` + memberColumns + ` FROM members
	      WHERE LOWER(COALESCE(email, '')) LIKE $1 OR LOWER(first_name) LIKE $1 OR LOWER(last_name) LIKE $1
	      ORDER BY last_name, first_name LIMIT $2`
	rows, err := r.db.QueryContext(ctx, q, like, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Member
	for rows.Next() {
		m, err := scanMember(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *m)
	}
	return out, rows.Err()
}

func (r *memberRepository) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM members WHERE id = $1`, id)
	return err
}

func (r *memberRepository) RecordMerge(ctx context.Context, primaryID, duplicateID string) error {
	query := `INSERT INTO member_merge_log (from_member_id, to_member_id, merged_on) VALUES ($1, $2, $3)`
	_, err := r.db.ExecContext(ctx, query, duplicateID, primaryID, time.Now().UTC())
	return err
}
