package service

import (
	"context"

	"eventdesk-backend/internal/domain"
	"eventdesk-backend/internal/repository"
)

type auditService struct {
	auditRepo repository.AuditRepository
}

func NewAuditService(auditRepo repository.AuditRepository) AuditService {
	return &auditService{auditRepo: auditRepo}
}

func (s *auditService) ListByEvent(ctx context.Context, eventID string, limit int32) ([]domain.StatusAudit, error) {
	if limit <= 0 {
		limit = 100
	}
	return s.auditRepo.ListByEvent(ctx, eventID, limit)
}

func (s *auditService) ListByAttendance(ctx context.Context, attendanceID string, limit int32) ([]domain.StatusAudit, error) {
	if limit <= 0 {
		limit = 100
	}
	return s.auditRepo.ListByAttendance(ctx, attendanceID, limit)
}
