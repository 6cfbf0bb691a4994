package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"eventdesk-backend/internal/domain"
	"eventdesk-backend/internal/logger"
	"eventdesk-backend/internal/repository"
)

type memberService struct {
	memberRepo repository.MemberRepository
	attRepo    repository.AttendanceRepository
}

func NewMemberService(memberRepo repository.MemberRepository, attRepo repository.AttendanceRepository) MemberService {
	return &memberService{memberRepo: memberRepo, attRepo: attRepo}
}

func (s *memberService) CreateMember(ctx context.Context, m *domain.Member) (*domain.Member, error) {
	if m.FirstName == "" && m.Email == "" {
		return nil, fmt.Errorf("%w: first name or email required", domain.ErrValidation)
	}

	// Email is the global identity; an existing member wins over a new row.
	if m.Email != "" {
		existing, err := s.memberRepo.FindByEmail(ctx, m.Email)
		if err == nil {
			return existing, nil
		}
		if !errors.Is(err, domain.ErrNotFound) {
			return nil, err
		}
	}

	m.ID = uuid.New().String()
	m.Email = domain.NormalizeEmail(m.Email)
	if err := s.memberRepo.Create(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *memberService) UpdateMember(ctx context.Context, m *domain.Member) error {
	if m.ID == "" {
		return fmt.Errorf("%w: member id required", domain.ErrValidation)
	}
	return s.memberRepo.Update(ctx, m)
}

func (s *memberService) GetMember(ctx context.Context, id string) (*domain.Member, []domain.AttendanceRecord, error) {
	m, err := s.memberRepo.GetByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	history, err := s.attRepo.ListByMember(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	return m, history, nil
}

func (s *memberService) SearchMembers(ctx context.Context, query string, limit int32) ([]domain.Member, error) {
	if limit <= 0 {
		limit = 50
	}
	return s.memberRepo.Search(ctx, query, limit)
}

func (s *memberService) MergeMembers(ctx context.Context, primaryID, duplicateID string) (int64, error) {
	if primaryID == duplicateID {
		return 0, nil
	}
	if _, err := s.memberRepo.GetByID(ctx, primaryID); err != nil {
		return 0, err
	}
	if _, err := s.memberRepo.GetByID(ctx, duplicateID); err != nil {
		return 0, err
	}

	moved, err := s.attRepo.ReassignMember(ctx, duplicateID, primaryID)
	if err != nil {
		return 0, err
	}
	if err := s.memberRepo.Delete(ctx, duplicateID); err != nil {
		return moved, err
	}
	if err := s.memberRepo.RecordMerge(ctx, primaryID, duplicateID); err != nil {
		logger.Error("Failed to record member merge", "primary", primaryID, "duplicate", duplicateID, "error", err)
	}
	logger.Info("Merged member", "primary", primaryID, "duplicate", duplicateID, "attendance_moved", moved)
	return moved, nil
}
