package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"eventdesk-backend/internal/domain"
	"eventdesk-backend/internal/logger"
	"eventdesk-backend/internal/repository"
)

type attendanceService struct {
	attRepo    repository.AttendanceRepository
	memberRepo repository.MemberRepository
	eventRepo  repository.EventRepository
	auditRepo  repository.AuditRepository
}

func NewAttendanceService(
	attRepo repository.AttendanceRepository,
	memberRepo repository.MemberRepository,
	eventRepo repository.EventRepository,
	auditRepo repository.AuditRepository,
) AttendanceService {
	return &attendanceService{
		attRepo:    attRepo,
		memberRepo: memberRepo,
		eventRepo:  eventRepo,
		auditRepo:  auditRepo,
	}
}

// appendAudit records a status change. Audit failures are logged, not
// surfaced; the status change itself has already been applied.
func appendAudit(ctx context.Context, auditRepo repository.AuditRepository, attendanceID string, prior *domain.AttendanceStatus, newStatus domain.AttendanceStatus, reason, changedBy string) {
	entry := &domain.StatusAudit{
		ID:           uuid.New().String(),
		AttendanceID: attendanceID,
		NewStatus:    newStatus.Code(),
		Reason:       reason,
		ChangedBy:    changedBy,
		ChangedAt:    time.Now().UTC(),
	}
	if prior != nil {
		p := prior.Code()
		entry.PriorStatus = &p
	}
	if err := auditRepo.Append(ctx, entry); err != nil {
		logger.Error("Failed to append status audit entry", "attendance_id", attendanceID, "error", err)
	}
}

func (s *attendanceService) UpdateStatus(ctx context.Context, attendanceID, newStatus string, eventInProgress, hasManagerOverride bool, reason, changedBy string) (*domain.AttendanceRecord, error) {
	rec, err := s.attRepo.GetByID(ctx, attendanceID)
	if err != nil {
		return nil, err
	}

	requested, ok := domain.NormalizeStatus(newStatus)
	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidStatus, newStatus)
	}

	decision := domain.ValidateTransition(rec.Status, requested, eventInProgress, hasManagerOverride)
	switch decision {
	case domain.DecisionNeedsReason:
		if reason == "" {
			return nil, fmt.Errorf("%w: reason required for %s -> %s", domain.ErrInvalidTransition, rec.Status.Code(), requested.Code())
		}
	case domain.DecisionNeedsManagerOverride:
		return nil, fmt.Errorf("%w: manager override required for %s -> %s", domain.ErrInvalidTransition, rec.Status.Code(), requested.Code())
	}

	prior := rec.Status
	rec.Status = requested
	rec.Reason = reason
	rec.ChangedBy = changedBy
	if requested == domain.StatusCheckedIn && rec.CheckedInAt == nil {
		now := time.Now().UTC()
		rec.CheckedInAt = &now
	}

	if err := s.attRepo.Update(ctx, rec); err != nil {
		return nil, err
	}
	appendAudit(ctx, s.auditRepo, rec.ID, &prior, requested, reason, changedBy)
	return rec, nil
}

func (s *attendanceService) BulkUpdateStatus(ctx context.Context, eventID string, attendanceIDs []string, newStatus string, eventInProgress, hasManagerOverride bool, reason, changedBy string) (int, error) {
	if _, ok := domain.NormalizeStatus(newStatus); !ok {
		return 0, fmt.Errorf("%w: %q", domain.ErrInvalidStatus, newStatus)
	}

	updated := 0
	for _, id := range attendanceIDs {
		rec, err := s.attRepo.GetByID(ctx, id)
		if err != nil || rec.EventID != eventID {
			continue
		}
		if _, err := s.UpdateStatus(ctx, id, newStatus, eventInProgress, hasManagerOverride, reason, changedBy); err != nil {
			// Rows failing validation are skipped, not fatal.
			if errors.Is(err, domain.ErrInvalidTransition) {
				continue
			}
			return updated, err
		}
		updated++
	}
	return updated, nil
}

func (s *attendanceService) CreateWalkIn(ctx context.Context, eventID, name, email, phone, company string, immediateCheckIn bool, changedBy string) (*domain.AttendanceRecord, error) {
	if name == "" && email == "" {
		return nil, fmt.Errorf("%w: name or email required", domain.ErrValidation)
	}
	if _, err := s.eventRepo.GetByID(ctx, eventID); err != nil {
		return nil, err
	}

	var member *domain.Member
	if email != "" {
		m, err := s.memberRepo.FindByEmail(ctx, email)
		if err != nil && !errors.Is(err, domain.ErrNotFound) {
			return nil, err
		}
		member = m
	}
	if member == nil {
		first, last := domain.SplitName(name)
		member = &domain.Member{
			ID:        uuid.New().String(),
			Email:     domain.NormalizeEmail(email),
			FirstName: first,
			LastName:  last,
			Phone:     phone,
			Company:   company,
		}
		if err := s.memberRepo.Create(ctx, member); err != nil {
			return nil, err
		}
	}

	status := domain.StatusWalkIn
	var checkedInAt *time.Time
	if immediateCheckIn {
		status = domain.StatusCheckedIn
		now := time.Now().UTC()
		checkedInAt = &now
	}

	rec := &domain.AttendanceRecord{
		ID:          uuid.New().String(),
		EventID:     eventID,
		MemberID:    member.ID,
		Status:      status,
		ChangedBy:   changedBy,
		Source:      domain.SourceWalkIn,
		CheckedInAt: checkedInAt,
	}
	if err := s.attRepo.Create(ctx, rec); err != nil {
		return nil, err
	}
	appendAudit(ctx, s.auditRepo, rec.ID, nil, status, "walkin", changedBy)
	return rec, nil
}

func (s *attendanceService) ListAttendance(ctx context.Context, eventID string) ([]domain.AttendeeRow, error) {
	return s.attRepo.ListByEvent(ctx, eventID)
}

func (s *attendanceService) RemoveAttendance(ctx context.Context, attendanceID, reason, changedBy string) error {
	rec, err := s.attRepo.GetByID(ctx, attendanceID)
	if err != nil {
		return err
	}
	if err := s.attRepo.Delete(ctx, attendanceID); err != nil {
		return err
	}
	if reason == "" {
		reason = "removed"
	}
	prior := rec.Status.Code()
	entry := &domain.StatusAudit{
		ID:           uuid.New().String(),
		AttendanceID: attendanceID,
		PriorStatus:  &prior,
		NewStatus:    "removed",
		Reason:       reason,
		ChangedBy:    changedBy,
		ChangedAt:    time.Now().UTC(),
	}
	if err := s.auditRepo.Append(ctx, entry); err != nil {
		logger.Error("Failed to audit attendance removal", "attendance_id", attendanceID, "error", err)
	}
	return nil
}

func (s *attendanceService) CountsByStatus(ctx context.Context, eventID string) (*domain.StatusCounts, error) {
	if _, err := s.eventRepo.GetByID(ctx, eventID); err != nil {
		return nil, err
	}
	return s.attRepo.CountsByStatus(ctx, eventID)
}
