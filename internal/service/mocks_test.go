package service_test

import (
	"context"

	"eventdesk-backend/internal/domain"

	"github.com/stretchr/testify/mock"
)

// MockMemberRepo
type MockMemberRepo struct {
	mock.Mock
}

func (m *MockMemberRepo) Create(ctx context.Context, mem *domain.Member) error {
	args := m.Called(ctx, mem)
	return args.Error(0)
}
func (m *MockMemberRepo) GetByID(ctx context.Context, id string) (*domain.Member, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Member), args.Error(1)
}
func (m *MockMemberRepo) FindByEmail(ctx context.Context, email string) (*domain.Member, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Member), args.Error(1)
}
func (m *MockMemberRepo) FindByNameAndPhone(ctx context.Context, name, phone string) (*domain.Member, error) {
	args := m.Called(ctx, name, phone)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Member), args.Error(1)
}
func (m *MockMemberRepo) Update(ctx context.Context, mem *domain.Member) error {
	args := m.Called(ctx, mem)
	return args.Error(0)
}
func (m *MockMemberRepo) Search(ctx context.Context, query string, limit int32) ([]domain.Member, error) {
	args := m.Called(ctx, query, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Member), args.Error(1)
}
func (m *MockMemberRepo) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockMemberRepo) RecordMerge(ctx context.Context, primaryID, duplicateID string) error {
	args := m.Called(ctx, primaryID, duplicateID)
	return args.Error(0)
}

// MockEventRepo
type MockEventRepo struct {
	mock.Mock
}

func (m *MockEventRepo) Create(ctx context.Context, e *domain.Event) error {
	args := m.Called(ctx, e)
	return args.Error(0)
}
func (m *MockEventRepo) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Event), args.Error(1)
}
func (m *MockEventRepo) Update(ctx context.Context, e *domain.Event) error {
	args := m.Called(ctx, e)
	return args.Error(0)
}
func (m *MockEventRepo) List(ctx context.Context, limit, offset int32) ([]domain.Event, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Event), args.Error(1)
}
func (m *MockEventRepo) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockAttendanceRepo
type MockAttendanceRepo struct {
	mock.Mock
}

func (m *MockAttendanceRepo) Create(ctx context.Context, rec *domain.AttendanceRecord) error {
	args := m.Called(ctx, rec)
	return args.Error(0)
}
func (m *MockAttendanceRepo) GetByID(ctx context.Context, id string) (*domain.AttendanceRecord, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AttendanceRecord), args.Error(1)
}
func (m *MockAttendanceRepo) GetByEventAndMember(ctx context.Context, eventID, memberID string) (*domain.AttendanceRecord, error) {
	args := m.Called(ctx, eventID, memberID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AttendanceRecord), args.Error(1)
}
func (m *MockAttendanceRepo) Update(ctx context.Context, rec *domain.AttendanceRecord) error {
	args := m.Called(ctx, rec)
	return args.Error(0)
}
func (m *MockAttendanceRepo) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockAttendanceRepo) ListByEvent(ctx context.Context, eventID string) ([]domain.AttendeeRow, error) {
	args := m.Called(ctx, eventID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AttendeeRow), args.Error(1)
}
func (m *MockAttendanceRepo) ListByMember(ctx context.Context, memberID string) ([]domain.AttendanceRecord, error) {
	args := m.Called(ctx, memberID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AttendanceRecord), args.Error(1)
}
func (m *MockAttendanceRepo) ListByEventAndStatus(ctx context.Context, eventID string, status domain.AttendanceStatus) ([]domain.AttendanceRecord, error) {
	args := m.Called(ctx, eventID, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AttendanceRecord), args.Error(1)
}
func (m *MockAttendanceRepo) CountsByStatus(ctx context.Context, eventID string) (*domain.StatusCounts, error) {
	args := m.Called(ctx, eventID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.StatusCounts), args.Error(1)
}
func (m *MockAttendanceRepo) MarkDNAForPreregistered(ctx context.Context, eventID, reason, changedBy string) (int64, error) {
	args := m.Called(ctx, eventID, reason, changedBy)
	return args.Get(0).(int64), args.Error(1)
}
func (m *MockAttendanceRepo) ReassignMember(ctx context.Context, fromMemberID, toMemberID string) (int64, error) {
	args := m.Called(ctx, fromMemberID, toMemberID)
	return args.Get(0).(int64), args.Error(1)
}

// MockAuditRepo
type MockAuditRepo struct {
	mock.Mock
}

func (m *MockAuditRepo) Append(ctx context.Context, entry *domain.StatusAudit) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}
func (m *MockAuditRepo) ListByEvent(ctx context.Context, eventID string, limit int32) ([]domain.StatusAudit, error) {
	args := m.Called(ctx, eventID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.StatusAudit), args.Error(1)
}
func (m *MockAuditRepo) ListByAttendance(ctx context.Context, attendanceID string, limit int32) ([]domain.StatusAudit, error) {
	args := m.Called(ctx, attendanceID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.StatusAudit), args.Error(1)
}
