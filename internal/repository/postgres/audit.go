package postgres

import (
	"context"
	"database/sql"
	"time"

	"eventdesk-backend/internal/domain"
	"eventdesk-backend/internal/repository"
)

type auditRepository struct {
	db *sql.DB
}

func NewAuditRepository(db *sql.DB) repository.AuditRepository {
	return &auditRepository{db: db}
}

func (r *auditRepository) Append(ctx context.Context, entry *domain.StatusAudit) error {
	query := `INSERT INTO status_audit_log (id, attendance_id, prior_status, new_status, reason, changed_by, changed_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7)`
	if entry.ChangedAt.IsZero() {
		entry.ChangedAt = time.Now().UTC()
	}
	_, err := r.db.ExecContext(ctx, query, entry.ID, entry.AttendanceID, entry.PriorStatus, entry.NewStatus, entry.Reason, entry.ChangedBy, entry.ChangedAt)
	return err
}

const auditColumns = `id, attendance_id, prior_status, new_status, COALESCE(reason, ''), COALESCE(changed_by, ''), changed_at`

func (r *auditRepository) ListByEvent(ctx context.Context, eventID string, limit int32) ([]domain.StatusAudit, error) {
	query := `SELECT ` + auditColumns + ` FROM status_audit_log
	          WHERE attendance_id IN (SELECT id FROM event_attendance WHERE event_id = $1)
	          ORDER BY changed_at DESC LIMIT $2`
	return r.list(ctx, query, eventID, limit)
}

func (r *auditRepository) ListByAttendance(ctx context.Context, attendanceID string, limit int32) ([]domain.StatusAudit, error) {
	query := `SELECT ` + auditColumns + ` FROM status_audit_log WHERE attendance_id = $1 ORDER BY changed_at DESC LIMIT $2`
	return r.list(ctx, query, attendanceID, limit)
}

func (r *auditRepository) list(ctx context.Context, query string, args ...any) ([]domain.StatusAudit, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.StatusAudit
	for rows.Next() {
		var e domain.StatusAudit
		var prior sql.NullString
		if err := rows.Scan(&e.ID, &e.AttendanceID, &prior, &e.NewStatus, &e.Reason, &e.ChangedBy, &e.ChangedAt); err != nil {
			return nil, err
		}
		if prior.Valid {
			p := prior.String
			e.PriorStatus = &p
		}
		out = append(out, e)
	}
	return out, rows.Err()
}
