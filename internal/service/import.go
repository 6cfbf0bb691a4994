package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"eventdesk-backend/internal/csvimport"
	"eventdesk-backend/internal/domain"
	"eventdesk-backend/internal/logger"
	"eventdesk-backend/internal/repository"
)

// csvImportReason is the fixed audit reason for all import-driven
// transitions; it satisfies a NeedsReason decision so a bulk import is
// never blocked waiting on per-row operator input.
const csvImportReason = "csv-import"

type importService struct {
	memberRepo repository.MemberRepository
	eventRepo  repository.EventRepository
	attRepo    repository.AttendanceRepository
	auditRepo  repository.AuditRepository
}

func NewImportService(
	memberRepo repository.MemberRepository,
	eventRepo repository.EventRepository,
	attRepo repository.AttendanceRepository,
	auditRepo repository.AuditRepository,
) ImportService {
	return &importService{
		memberRepo: memberRepo,
		eventRepo:  eventRepo,
		attRepo:    attRepo,
		auditRepo:  auditRepo,
	}
}

func (s *importService) Preview(csvText string) ([]csvimport.PreviewRow, error) {
	return csvimport.Preview(csvText)
}

// Commit applies an accepted preview to the event. Each accepted row
// resolves or creates a member, then creates or transitions that
// member's attendance record. Duplicate and errored preview rows pass
// straight through to the counters. The caller must serialize commits
// per event; two interleaved commits could create duplicate members
// for the same person.
func (s *importService) Commit(ctx context.Context, eventID string, rows []csvimport.PreviewRow) (*domain.ImportResult, error) {
	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		// Structural failure: nothing is written.
		return nil, err
	}
	inProgress := event.InProgress(time.Now().UTC())

	res := &domain.ImportResult{}
	for _, row := range rows {
		switch row.Outcome {
		case csvimport.RowDuplicate:
			res.Duplicates++
		case csvimport.RowErrored:
			res.RowsErrored++
		case csvimport.RowAccepted:
			if err := s.commitRow(ctx, eventID, inProgress, row); err != nil {
				logger.Warn("Import row failed", "event_id", eventID, "line", row.Line, "error", err)
				res.RowsErrored++
			} else {
				res.RowsImported++
			}
		default:
			res.RowsErrored++
		}
	}
	return res, nil
}

func (s *importService) commitRow(ctx context.Context, eventID string, inProgress bool, row csvimport.PreviewRow) error {
	member, err := s.resolveMember(ctx, row)
	if err != nil {
		return err
	}

	existing, err := s.attRepo.GetByEventAndMember(ctx, eventID, member.ID)
	if errors.Is(err, domain.ErrNotFound) {
		rec := &domain.AttendanceRecord{
			ID:       uuid.New().String(),
			EventID:  eventID,
			MemberID: member.ID,
			Status:   row.Status,
			Reason:   csvImportReason,
			Source:   domain.SourceCSVImport,
		}
		if row.Status == domain.StatusCheckedIn {
			now := time.Now().UTC()
			rec.CheckedInAt = &now
		}
		if err := s.attRepo.Create(ctx, rec); err != nil {
			return err
		}
		appendAudit(ctx, s.auditRepo, rec.ID, nil, row.Status, csvImportReason, csvImportReason)
		return nil
	}
	if err != nil {
		return err
	}

	// Member already has a record for this event: treat the import as
	// a transition from the existing status. The fixed reason satisfies
	// NeedsReason; an override requirement cannot be met by an import.
	decision := domain.ValidateTransition(existing.Status, row.Status, inProgress, false)
	if decision == domain.DecisionNeedsManagerOverride {
		return domain.ErrInvalidTransition
	}

	if existing.Status == row.Status {
		return nil // no-op transition, still counted imported
	}

	prior := existing.Status
	existing.Status = row.Status
	existing.Reason = csvImportReason
	existing.ChangedBy = csvImportReason
	if row.Status == domain.StatusCheckedIn && existing.CheckedInAt == nil {
		now := time.Now().UTC()
		existing.CheckedInAt = &now
	}
	if err := s.attRepo.Update(ctx, existing); err != nil {
		return err
	}
	appendAudit(ctx, s.auditRepo, existing.ID, &prior, row.Status, csvImportReason, csvImportReason)
	return nil
}

// resolveMember matches the row against the directory by normalized
// email, then by normalized name+phone, creating a member only when
// nothing matches.
func (s *importService) resolveMember(ctx context.Context, row csvimport.PreviewRow) (*domain.Member, error) {
	if row.Email != "" {
		m, err := s.memberRepo.FindByEmail(ctx, row.Email)
		if err == nil {
			return m, nil
		}
		if !errors.Is(err, domain.ErrNotFound) {
			return nil, err
		}
	} else {
		m, err := s.memberRepo.FindByNameAndPhone(ctx, row.Name, row.Phone)
		if err == nil {
			return m, nil
		}
		if !errors.Is(err, domain.ErrNotFound) {
			return nil, err
		}
	}

	first, last := domain.SplitName(row.Name)
	m := &domain.Member{
		ID:        uuid.New().String(),
		Email:     domain.NormalizeEmail(row.Email),
		FirstName: first,
		LastName:  last,
		Phone:     row.Phone,
		Company:   row.Company,
	}
	if err := s.memberRepo.Create(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}
