package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"time"

	"eventdesk-backend/internal/domain"
	"eventdesk-backend/internal/repository"
)

type exportService struct {
	attRepo   repository.AttendanceRepository
	eventRepo repository.EventRepository
}

func NewExportService(attRepo repository.AttendanceRepository, eventRepo repository.EventRepository) ExportService {
	return &exportService{attRepo: attRepo, eventRepo: eventRepo}
}

// ExportCSV renders an event's attendance as CSV text, one row per
// record, ordered by member name.
func (s *exportService) ExportCSV(ctx context.Context, eventID string) (string, error) {
	if _, err := s.eventRepo.GetByID(ctx, eventID); err != nil {
		return "", err
	}
	rows, err := s.attRepo.ListByEvent(ctx, eventID)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write([]string{"attendeeId", "memberId", "eventId", "name", "email", "company", "status", "checkedInAt"}); err != nil {
		return "", err
	}
	for _, r := range rows {
		checkedInAt := ""
		if r.CheckedInAt != nil {
			checkedInAt = r.CheckedInAt.UTC().Format(time.RFC3339)
		}
		rec := []string{r.AttendanceID, r.MemberID, r.EventID, r.Name, r.Email, r.Company, r.Status.Code(), checkedInAt}
		if err := w.Write(rec); err != nil {
			return "", err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// ExportJSON renders the same attendee rows as a JSON array.
func (s *exportService) ExportJSON(ctx context.Context, eventID string) ([]byte, error) {
	if _, err := s.eventRepo.GetByID(ctx, eventID); err != nil {
		return nil, err
	}
	rows, err := s.attRepo.ListByEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if rows == nil {
		rows = []domain.AttendeeRow{}
	}
	return json.Marshal(rows)
}
