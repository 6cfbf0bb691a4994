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

type attendanceRepository struct {
	db *sql.DB
}

func NewAttendanceRepository(db *sql.DB) repository.AttendanceRepository {
	return &attendanceRepository{db: db}
}

const attendanceColumns = `id, event_id, member_id, status, COALESCE(reason, ''), COALESCE(changed_by, ''), COALESCE(source, ''), checked_in_at, created_on, updated_on`

func scanAttendance(row interface{ Scan(...any) error }) (*domain.AttendanceRecord, error) {
	rec := &domain.AttendanceRecord{}
	var statusCode, source string
	var checkedInAt sql.NullTime
	var createdOn, updatedOn time.Time
	err := row.Scan(&rec.ID, &rec.EventID, &rec.MemberID, &statusCode, &rec.Reason, &rec.ChangedBy, &source, &checkedInAt, &createdOn, &updatedOn)
	if err != nil {
		return nil, err
	}
	st, ok := domain.StatusFromCode(statusCode)
	if !ok {
		return nil, fmt.Errorf("%w: stored status %q", domain.ErrInvalidStatus, statusCode)
	}
	rec.Status = st
	rec.Source = domain.AttendanceSource(source)
	if checkedInAt.Valid {
		t := checkedInAt.Time
		rec.CheckedInAt = &t
	}
	rec.CreatedOn = createdOn.Format(time.RFC3339)
	rec.UpdatedOn = updatedOn.Format(time.RFC3339)
	return rec, nil
}

func (r *attendanceRepository) Create(ctx context.Context, rec *domain.AttendanceRecord) error {
	query := `INSERT INTO event_attendance (id, event_id, member_id, status, reason, changed_by, source, checked_in_at, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $9)`
	now := time.Now().UTC()
	rec.CreatedOn = now.Format(time.RFC3339)
	rec.UpdatedOn = rec.CreatedOn
	_, err := r.db.ExecContext(ctx, query, rec.ID, rec.EventID, rec.MemberID, rec.Status.Code(), rec.Reason, rec.ChangedBy, string(rec.Source), rec.CheckedInAt, now)
	return err
}

func (r *attendanceRepository) GetByID(ctx context.Context, id string) (*domain.AttendanceRecord, error) {
	query := `SELECT ` + attendanceColumns + ` FROM event_attendance WHERE id = $1`
	rec, err := scanAttendance(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: attendance %s", domain.ErrNotFound, id)
	}
	return rec, err
}

func (r *attendanceRepository) GetByEventAndMember(ctx context.Context, eventID, memberID string) (*domain.AttendanceRecord, error) {
	query := `SELECT ` + attendanceColumns + ` FROM event_attendance WHERE event_id = $1 AND member_id = $2`
	rec, err := scanAttendance(r.db.QueryRowContext(ctx, query, eventID, memberID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: attendance for event %s member %s", domain.ErrNotFound, eventID, memberID)
	}
	return rec, err
}

func (r *attendanceRepository) Update(ctx context.Context, rec *domain.AttendanceRecord) error {
	query := `UPDATE event_attendance SET status=$2, reason=$3, changed_by=$4, checked_in_at=$5, updated_on=$6 WHERE id=$1`
	now := time.Now().UTC()
	rec.UpdatedOn = now.Format(time.RFC3339)
	res, err := r.db.ExecContext(ctx, query, rec.ID, rec.Status.Code(), rec.Reason, rec.ChangedBy, rec.CheckedInAt, now)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("%w: attendance %s", domain.ErrNotFound, rec.ID)
	}
	return nil
}

func (r *attendanceRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM event_attendance WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("%w: attendance %s", domain.ErrNotFound, id)
	}
	return nil
}

func (r *attendanceRepository) ListByEvent(ctx context.Context, eventID string) ([]domain.AttendeeRow, error) {
	query := `SELECT ea.id, ea.member_id, ea.event_id,
	                 TRIM(m.first_name || ' ' || m.last_name),
	                 COALESCE(m.email, ''), COALESCE(m.company, ''),
	                 ea.status, ea.checked_in_at
	          FROM event_attendance ea
	          JOIN members m ON m.id = ea.member_id
	          WHERE ea.event_id = $1
	          ORDER BY m.last_name, m.first_name`
	rows, err := r.db.QueryContext(ctx, query, eventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.AttendeeRow
	for rows.Next() {
		var row domain.AttendeeRow
		var statusCode string
		var checkedInAt sql.NullTime
		if err := rows.Scan(&row.AttendanceID, &row.MemberID, &row.EventID, &row.Name, &row.Email, &row.Company, &statusCode, &checkedInAt); err != nil {
			return nil, err
		}
		st, ok := domain.StatusFromCode(statusCode)
		if !ok {
			return nil, fmt.Errorf("%w: stored status %q", domain.ErrInvalidStatus, statusCode)
		}
		row.Status = st
		if checkedInAt.Valid {
			t := checkedInAt.Time
			row.CheckedInAt = &t
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

func (r *attendanceRepository) ListByMember(ctx context.Context, memberID string) ([]domain.AttendanceRecord, error) {
	query := `SELECT ` + attendanceColumns + ` FROM event_attendance WHERE member_id = $1 ORDER BY created_on DESC`
	return r.listRecords(ctx, query, memberID)
}

func (r *attendanceRepository) ListByEventAndStatus(ctx context.Context, eventID string, status domain.AttendanceStatus) ([]domain.AttendanceRecord, error) {
	query := `SELECT ` + attendanceColumns + ` FROM event_attendance WHERE event_id = $1 AND status = $2`
	return r.listRecords(ctx, query, eventID, status.Code())
}

func (r *attendanceRepository) listRecords(ctx context.Context, query string, args ...any) ([]domain.AttendanceRecord, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.AttendanceRecord
	for rows.Next() {
		rec, err := scanAttendance(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *rec)
	}
	return out, rows.Err()
}

func (r *attendanceRepository) CountsByStatus(ctx context.Context, eventID string) (*domain.StatusCounts, error) {
	query := `SELECT status, COUNT(*) FROM event_attendance WHERE event_id = $1 GROUP BY status`
	rows, err := r.db.QueryContext(ctx, query, eventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := &domain.StatusCounts{}
	for rows.Next() {
		var code string
		var n int64
		if err := rows.Scan(&code, &n); err != nil {
			return nil, err
		}
		if st, ok := domain.StatusFromCode(code); ok {
			counts.Add(st, n)
		}
	}
	return counts, rows.Err()
}

func (r *attendanceRepository) MarkDNAForPreregistered(ctx context.Context, eventID, reason, changedBy string) (int64, error) {
	query := `UPDATE event_attendance SET status=$2, reason=$3, changed_by=$4, updated_on=$5
	          WHERE event_id = $1 AND status = $6`
	res, err := r.db.ExecContext(ctx, query, eventID, domain.StatusDidNotAttend.Code(), reason, changedBy, time.Now().UTC(), domain.StatusPreregistered.Code())
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (r *attendanceRepository) ReassignMember(ctx context.Context, fromMemberID, toMemberID string) (int64, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	// Drop rows that would collide on (event, member) before moving.
	_, err = tx.ExecContext(ctx, `DELETE FROM event_attendance dup
	          WHERE dup.member_id = $1
	            AND EXISTS (SELECT 1 FROM event_attendance p WHERE p.member_id = $2 AND p.event_id = dup.event_id)`,
		fromMemberID, toMemberID)
	if err != nil {
		return 0, err
	}

	res, err := tx.ExecContext(ctx, `UPDATE event_attendance SET member_id = $2, updated_on = $3 WHERE member_id = $1`,
		fromMemberID, toMemberID, time.Now().UTC())
	if err != nil {
		return 0, err
	}
	moved, err := res.RowsAffected()
	if err != nil {
		return 0, err
	}
	return moved, tx.Commit()
}
