package repository

import (
	"context"

	"eventdesk-backend/internal/domain"
)

type MemberRepository interface {
	Create(ctx context.Context, m *domain.Member) error
	GetByID(ctx context.Context, id string) (*domain.Member, error)
	// FindByEmail matches on the normalized (lowercased) email.
	FindByEmail(ctx context.Context, email string) (*domain.Member, error)
	// FindByNameAndPhone matches on normalized full name and digit-only
	// phone; the fallback identity for members without an email.
	FindByNameAndPhone(ctx context.Context, name, phone string) (*domain.Member, error)
	Update(ctx context.Context, m *domain.Member) error
	Search(ctx context.Context, query string, limit int32) ([]domain.Member, error)
	Delete(ctx context.Context, id string) error
	// RecordMerge logs that duplicate's records were folded into primary.
	RecordMerge(ctx context.Context, primaryID, duplicateID string) error
}

type EventRepository interface {
	Create(ctx context.Context, e *domain.Event) error
	GetByID(ctx context.Context, id string) (*domain.Event, error)
	Update(ctx context.Context, e *domain.Event) error
	List(ctx context.Context, limit, offset int32) ([]domain.Event, error)
	// Delete removes the event and its attendance rows.
	Delete(ctx context.Context, id string) error
}

type AttendanceRepository interface {
	Create(ctx context.Context, rec *domain.AttendanceRecord) error
	GetByID(ctx context.Context, id string) (*domain.AttendanceRecord, error)
	GetByEventAndMember(ctx context.Context, eventID, memberID string) (*domain.AttendanceRecord, error)
	Update(ctx context.Context, rec *domain.AttendanceRecord) error
	Delete(ctx context.Context, id string) error
	// ListByEvent returns joined attendee rows ordered by member name.
	ListByEvent(ctx context.Context, eventID string) ([]domain.AttendeeRow, error)
	ListByMember(ctx context.Context, memberID string) ([]domain.AttendanceRecord, error)
	ListByEventAndStatus(ctx context.Context, eventID string, status domain.AttendanceStatus) ([]domain.AttendanceRecord, error)
	CountsByStatus(ctx context.Context, eventID string) (*domain.StatusCounts, error)
	// MarkDNAForPreregistered flips every preregistered record of the
	// event to did-not-attend in one statement; returns rows changed.
	MarkDNAForPreregistered(ctx context.Context, eventID, reason, changedBy string) (int64, error)
	// ReassignMember moves fromMemberID's attendance to toMemberID,
	// dropping rows that would collide on (event, member). Returns the
	// number of rows moved.
	ReassignMember(ctx context.Context, fromMemberID, toMemberID string) (int64, error)
}

type AuditRepository interface {
	Append(ctx context.Context, entry *domain.StatusAudit) error
	ListByEvent(ctx context.Context, eventID string, limit int32) ([]domain.StatusAudit, error)
	ListByAttendance(ctx context.Context, attendanceID string, limit int32) ([]domain.StatusAudit, error)
}
