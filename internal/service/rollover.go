package service

import (
	"context"
	"time"

	"eventdesk-backend/internal/domain"
	"eventdesk-backend/internal/logger"
	"eventdesk-backend/internal/repository"
)

type rolloverService struct {
	eventRepo repository.EventRepository
	attRepo   repository.AttendanceRepository
	auditRepo repository.AuditRepository
}

func NewRolloverService(
	eventRepo repository.EventRepository,
	attRepo repository.AttendanceRepository,
	auditRepo repository.AuditRepository,
) RolloverService {
	return &rolloverService{eventRepo: eventRepo, attRepo: attRepo, auditRepo: auditRepo}
}

func (s *rolloverService) ProcessAutoRollover(ctx context.Context, eventID string, graceSeconds int64, now time.Time) (int64, error) {
	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return 0, err
	}
	if !domain.RolloverDue(event.EndsAt.Unix(), graceSeconds, now.Unix()) {
		return 0, nil
	}

	// Snapshot the eligible records before the bulk update so each
	// changed row gets an audit entry.
	eligible, err := s.attRepo.ListByEventAndStatus(ctx, eventID, domain.StatusPreregistered)
	if err != nil {
		return 0, err
	}
	if len(eligible) == 0 {
		return 0, nil
	}

	changed, err := s.attRepo.MarkDNAForPreregistered(ctx, eventID, domain.RolloverReason, domain.RolloverReason)
	if err != nil {
		return 0, err
	}

	prior := domain.StatusPreregistered
	for _, rec := range eligible {
		appendAudit(ctx, s.auditRepo, rec.ID, &prior, domain.StatusDidNotAttend, domain.RolloverReason, domain.RolloverReason)
	}
	logger.Info("Auto-rollover applied", "event_id", eventID, "records_changed", changed)
	return changed, nil
}

func (s *rolloverService) ProcessDueEvents(ctx context.Context, graceSeconds int64, now time.Time) (int64, error) {
	events, err := s.eventRepo.List(ctx, 1000, 0)
	if err != nil {
		return 0, err
	}

	var total int64
	for _, e := range events {
		if e.Status != domain.EventStatusActive {
			continue
		}
		if !domain.RolloverDue(e.EndsAt.Unix(), graceSeconds, now.Unix()) {
			continue
		}
		n, err := s.ProcessAutoRollover(ctx, e.ID, graceSeconds, now)
		if err != nil {
			logger.Error("Auto-rollover failed for event", "event_id", e.ID, "error", err)
			continue
		}
		total += n
	}
	return total, nil
}
