package postgres

import (
	"database/sql"

	"eventdesk-backend/internal/repository"

	_ "github.com/lib/pq"
)

type Store struct {
	db *sql.DB
	repository.MemberRepository
	repository.EventRepository
	repository.AttendanceRepository
	repository.AuditRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                   db,
		MemberRepository:     NewMemberRepository(db),
		EventRepository:      NewEventRepository(db),
		AttendanceRepository: NewAttendanceRepository(db),
		AuditRepository:      NewAuditRepository(db),
	}
}
