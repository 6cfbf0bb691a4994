package service_test

import (
	"context"
	"testing"
	"time"

	"eventdesk-backend/internal/csvimport"
	"eventdesk-backend/internal/domain"
	"eventdesk-backend/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newImportService() (service.ImportService, *MockMemberRepo, *MockEventRepo, *MockAttendanceRepo, *MockAuditRepo) {
	memberRepo := new(MockMemberRepo)
	eventRepo := new(MockEventRepo)
	attRepo := new(MockAttendanceRepo)
	auditRepo := new(MockAuditRepo)
	svc := service.NewImportService(memberRepo, eventRepo, attRepo, auditRepo)
	return svc, memberRepo, eventRepo, attRepo, auditRepo
}

// pastEvent is an event that already finished, so commits run outside
// the live-event window.
func pastEvent(id string) *domain.Event {
	return &domain.Event{
		ID:       id,
		Name:     "Launch Party",
		StartsAt: time.Now().UTC().Add(-48 * time.Hour),
		EndsAt:   time.Now().UTC().Add(-24 * time.Hour),
		Status:   domain.EventStatusActive,
	}
}

func liveEvent(id string) *domain.Event {
	return &domain.Event{
		ID:       id,
		Name:     "Launch Party",
		StartsAt: time.Now().UTC().Add(-1 * time.Hour),
		EndsAt:   time.Now().UTC().Add(1 * time.Hour),
		Status:   domain.EventStatusActive,
	}
}

func TestImportService_Commit_DuplicateAccounting(t *testing.T) {
	ctx := context.Background()
	svc, memberRepo, eventRepo, attRepo, auditRepo := newImportService()

	csvText := "name,email\n" +
		"Ada Lovelace,ada@example.com\n" +
		"A. Lovelace,ada@example.com\n"
	rows, err := svc.Preview(csvText)
	assert.NoError(t, err)

	eventRepo.On("GetByID", ctx, "ev-1").Return(pastEvent("ev-1"), nil)
	memberRepo.On("FindByEmail", ctx, "ada@example.com").Return(nil, domain.ErrNotFound)
	memberRepo.On("Create", ctx, mock.AnythingOfType("*domain.Member")).Return(nil)
	attRepo.On("GetByEventAndMember", ctx, "ev-1", mock.Anything).Return(nil, domain.ErrNotFound)
	attRepo.On("Create", ctx, mock.AnythingOfType("*domain.AttendanceRecord")).Return(nil)
	auditRepo.On("Append", ctx, mock.AnythingOfType("*domain.StatusAudit")).Return(nil)

	res, err := svc.Commit(ctx, "ev-1", rows)
	assert.NoError(t, err)
	assert.Equal(t, 1, res.RowsImported)
	assert.Equal(t, 1, res.Duplicates)
	assert.Equal(t, 0, res.RowsErrored)
	memberRepo.AssertNumberOfCalls(t, "Create", 1)
}

func TestImportService_Commit_PartialFailure(t *testing.T) {
	ctx := context.Background()
	svc, memberRepo, eventRepo, attRepo, auditRepo := newImportService()

	csvText := "name,email\n" +
		"Ada Lovelace,ada@example.com\n" +
		",noname@example.com\n" +
		"Grace Hopper,grace@example.com\n" +
		"Katherine Johnson,kj@example.com\n" +
		"Dorothy Vaughan,dv@example.com\n"
	rows, err := svc.Preview(csvText)
	assert.NoError(t, err)
	assert.Len(t, rows, 5)

	eventRepo.On("GetByID", ctx, "ev-1").Return(pastEvent("ev-1"), nil)
	memberRepo.On("FindByEmail", ctx, mock.Anything).Return(nil, domain.ErrNotFound)
	memberRepo.On("Create", ctx, mock.AnythingOfType("*domain.Member")).Return(nil)
	attRepo.On("GetByEventAndMember", ctx, "ev-1", mock.Anything).Return(nil, domain.ErrNotFound)
	attRepo.On("Create", ctx, mock.AnythingOfType("*domain.AttendanceRecord")).Return(nil)
	auditRepo.On("Append", ctx, mock.AnythingOfType("*domain.StatusAudit")).Return(nil)

	res, err := svc.Commit(ctx, "ev-1", rows)
	assert.NoError(t, err)
	assert.Equal(t, 4, res.RowsImported)
	assert.Equal(t, 1, res.RowsErrored)
	assert.Equal(t, 0, res.Duplicates)
	// The three counters always sum to the data-row count.
	assert.Equal(t, len(rows), res.RowsImported+res.RowsErrored+res.Duplicates)
}

func TestImportService_Commit_ExistingRecordTransition(t *testing.T) {
	ctx := context.Background()

	t.Run("DNA import satisfied by fixed reason", func(t *testing.T) {
		svc, memberRepo, eventRepo, attRepo, auditRepo := newImportService()
		rows := []csvimport.PreviewRow{{
			Line: 2, Outcome: csvimport.RowAccepted,
			Name: "Ada Lovelace", Email: "ada@example.com", Status: domain.StatusDidNotAttend,
		}}

		eventRepo.On("GetByID", ctx, "ev-1").Return(pastEvent("ev-1"), nil)
		memberRepo.On("FindByEmail", ctx, "ada@example.com").Return(&domain.Member{ID: "mem-1"}, nil)
		attRepo.On("GetByEventAndMember", ctx, "ev-1", "mem-1").Return(&domain.AttendanceRecord{
			ID: "att-1", EventID: "ev-1", MemberID: "mem-1", Status: domain.StatusPreregistered,
		}, nil)
		attRepo.On("Update", ctx, mock.AnythingOfType("*domain.AttendanceRecord")).Return(nil)
		auditRepo.On("Append", ctx, mock.AnythingOfType("*domain.StatusAudit")).Return(nil)

		res, err := svc.Commit(ctx, "ev-1", rows)
		assert.NoError(t, err)
		assert.Equal(t, 1, res.RowsImported)
		attRepo.AssertCalled(t, "Update", ctx, mock.MatchedBy(func(rec *domain.AttendanceRecord) bool {
			return rec.Status == domain.StatusDidNotAttend && rec.Reason == "csv-import"
		}))
	})

	t.Run("Override requirement counts the row errored", func(t *testing.T) {
		svc, memberRepo, eventRepo, attRepo, _ := newImportService()
		rows := []csvimport.PreviewRow{{
			Line: 2, Outcome: csvimport.RowAccepted,
			Name: "Ada Lovelace", Email: "ada@example.com", Status: domain.StatusPreregistered,
		}}

		// Live event: downgrading a checked-in attendee needs a manager,
		// which a CSV import can never supply.
		eventRepo.On("GetByID", ctx, "ev-1").Return(liveEvent("ev-1"), nil)
		memberRepo.On("FindByEmail", ctx, "ada@example.com").Return(&domain.Member{ID: "mem-1"}, nil)
		attRepo.On("GetByEventAndMember", ctx, "ev-1", "mem-1").Return(&domain.AttendanceRecord{
			ID: "att-1", EventID: "ev-1", MemberID: "mem-1", Status: domain.StatusCheckedIn,
		}, nil)

		res, err := svc.Commit(ctx, "ev-1", rows)
		assert.NoError(t, err)
		assert.Equal(t, 0, res.RowsImported)
		assert.Equal(t, 1, res.RowsErrored)
		attRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})
}

func TestImportService_Commit_Recommit(t *testing.T) {
	ctx := context.Background()
	svc, memberRepo, eventRepo, attRepo, _ := newImportService()

	csvText := "name,email,status\nAda Lovelace,ada@example.com,checkedin\n"
	rows, err := svc.Preview(csvText)
	assert.NoError(t, err)

	// Second commit against an unchanged repository: the member now
	// matches and the record already carries the imported status, so the
	// transition is a no-op Allow and nothing is written.
	eventRepo.On("GetByID", ctx, "ev-1").Return(pastEvent("ev-1"), nil)
	memberRepo.On("FindByEmail", ctx, "ada@example.com").Return(&domain.Member{ID: "mem-1"}, nil)
	attRepo.On("GetByEventAndMember", ctx, "ev-1", "mem-1").Return(&domain.AttendanceRecord{
		ID: "att-1", EventID: "ev-1", MemberID: "mem-1", Status: domain.StatusCheckedIn,
	}, nil)

	res, err := svc.Commit(ctx, "ev-1", rows)
	assert.NoError(t, err)
	assert.Equal(t, 1, res.RowsImported)
	memberRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	attRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	attRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestImportService_Commit_MissingEventAborts(t *testing.T) {
	ctx := context.Background()
	svc, memberRepo, eventRepo, attRepo, _ := newImportService()

	rows := []csvimport.PreviewRow{{
		Line: 2, Outcome: csvimport.RowAccepted, Name: "Ada Lovelace", Email: "ada@example.com",
	}}
	eventRepo.On("GetByID", ctx, "missing").Return(nil, domain.ErrNotFound)

	res, err := svc.Commit(ctx, "missing", rows)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Nil(t, res)
	memberRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	attRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestImportService_Commit_NameAndPhoneResolution(t *testing.T) {
	ctx := context.Background()
	svc, memberRepo, eventRepo, attRepo, auditRepo := newImportService()

	rows := []csvimport.PreviewRow{{
		Line: 2, Outcome: csvimport.RowAccepted, Name: "Ada Lovelace", Phone: "(555) 010-0",
	}}

	eventRepo.On("GetByID", ctx, "ev-1").Return(pastEvent("ev-1"), nil)
	memberRepo.On("FindByNameAndPhone", ctx, "Ada Lovelace", "(555) 010-0").Return(&domain.Member{ID: "mem-7"}, nil)
	attRepo.On("GetByEventAndMember", ctx, "ev-1", "mem-7").Return(nil, domain.ErrNotFound)
	attRepo.On("Create", ctx, mock.AnythingOfType("*domain.AttendanceRecord")).Return(nil)
	auditRepo.On("Append", ctx, mock.AnythingOfType("*domain.StatusAudit")).Return(nil)

	res, err := svc.Commit(ctx, "ev-1", rows)
	assert.NoError(t, err)
	assert.Equal(t, 1, res.RowsImported)
	memberRepo.AssertNotCalled(t, "FindByEmail", mock.Anything, mock.Anything)
	memberRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}
