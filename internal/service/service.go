package service

import (
	"context"
	"time"

	"eventdesk-backend/internal/csvimport"
	"eventdesk-backend/internal/domain"
)

type AttendanceService interface {
	// UpdateStatus validates and applies one status change. The record
	// is mutated only on an Allow decision (or a satisfied NeedsReason);
	// otherwise ErrInvalidTransition is returned and nothing changes.
	UpdateStatus(ctx context.Context, attendanceID, newStatus string, eventInProgress, hasManagerOverride bool, reason, changedBy string) (*domain.AttendanceRecord, error)
	BulkUpdateStatus(ctx context.Context, eventID string, attendanceIDs []string, newStatus string, eventInProgress, hasManagerOverride bool, reason, changedBy string) (int, error)
	CreateWalkIn(ctx context.Context, eventID, name, email, phone, company string, immediateCheckIn bool, changedBy string) (*domain.AttendanceRecord, error)
	ListAttendance(ctx context.Context, eventID string) ([]domain.AttendeeRow, error)
	RemoveAttendance(ctx context.Context, attendanceID, reason, changedBy string) error
	CountsByStatus(ctx context.Context, eventID string) (*domain.StatusCounts, error)
}

type MemberService interface {
	CreateMember(ctx context.Context, m *domain.Member) (*domain.Member, error)
	UpdateMember(ctx context.Context, m *domain.Member) error
	GetMember(ctx context.Context, id string) (*domain.Member, []domain.AttendanceRecord, error)
	SearchMembers(ctx context.Context, query string, limit int32) ([]domain.Member, error)
	// MergeMembers folds duplicate into primary, preserving the
	// duplicate's attendance under the primary's id. Returns the number
	// of attendance rows moved.
	MergeMembers(ctx context.Context, primaryID, duplicateID string) (int64, error)
}

type EventService interface {
	CreateEvent(ctx context.Context, e *domain.Event) (*domain.Event, error)
	GetEvent(ctx context.Context, id string) (*domain.Event, error)
	UpdateEvent(ctx context.Context, e *domain.Event) error
	ListEvents(ctx context.Context, limit, offset int32) ([]domain.Event, error)
	DeleteEvent(ctx context.Context, id string) error
}

type ImportService interface {
	// Preview is pure parsing/validation; no persistence.
	Preview(csvText string) ([]csvimport.PreviewRow, error)
	// Commit applies a previously produced preview against the event.
	Commit(ctx context.Context, eventID string, rows []csvimport.PreviewRow) (*domain.ImportResult, error)
}

type ExportService interface {
	ExportCSV(ctx context.Context, eventID string) (string, error)
	ExportJSON(ctx context.Context, eventID string) ([]byte, error)
}

type RolloverService interface {
	// ProcessAutoRollover transitions the event's stale preregistered
	// records to did-not-attend once the grace period has elapsed.
	// Returns the count of records changed; zero when not yet due or
	// when a previous run already rolled the event over.
	ProcessAutoRollover(ctx context.Context, eventID string, graceSeconds int64, now time.Time) (int64, error)
	// ProcessDueEvents runs rollover across all active events.
	ProcessDueEvents(ctx context.Context, graceSeconds int64, now time.Time) (int64, error)
}

type AuditService interface {
	ListByEvent(ctx context.Context, eventID string, limit int32) ([]domain.StatusAudit, error)
	ListByAttendance(ctx context.Context, attendanceID string, limit int32) ([]domain.StatusAudit, error)
}
