package postgres_test

import (
	"context"
	"testing"
	"time"

	"eventdesk-backend/internal/domain"
	"eventdesk-backend/internal/repository/postgres"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func memberRow(id, email, first, last, phone string) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "email", "first_name", "last_name", "phone", "company", "tags", "notes", "created_on", "updated_on"}).
		AddRow(id, email, first, last, phone, "", "", "", time.Now(), time.Now())
}

func TestMemberRepository_FindByEmail(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := postgres.NewMemberRepository(db)
	ctx := context.Background()

	t.Run("Lookup is case-insensitive", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM members WHERE LOWER\\(email\\) = \\$1").
			WithArgs("ada@example.com").
			WillReturnRows(memberRow("mem-1", "ada@example.com", "Ada", "Lovelace", ""))

		m, err := repo.FindByEmail(ctx, "  Ada@Example.COM ")
		assert.NoError(t, err)
		assert.Equal(t, "mem-1", m.ID)
	})

	t.Run("Not found", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM members WHERE LOWER\\(email\\) = \\$1").
			WithArgs("nobody@example.com").
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		_, err := repo.FindByEmail(ctx, "nobody@example.com")
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestMemberRepository_FindByNameAndPhone(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := postgres.NewMemberRepository(db)
	ctx := context.Background()

	// Name is lowercased with collapsed spaces; phone keeps digits only.
	mock.ExpectQuery("SELECT (.+) FROM members").
		WithArgs("ada lovelace", "5550100").
		WillReturnRows(memberRow("mem-1", "", "Ada", "Lovelace", "(555) 010-0"))

	m, err := repo.FindByNameAndPhone(ctx, "Ada   Lovelace", "(555) 010-0")
	assert.NoError(t, err)
	assert.Equal(t, "mem-1", m.ID)
}

func TestMemberRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := postgres.NewMemberRepository(db)
	ctx := context.Background()

	m := &domain.Member{ID: "mem-1", Email: "Ada@Example.com", FirstName: "Ada", LastName: "Lovelace"}
	mock.ExpectExec("INSERT INTO members").
		WithArgs("mem-1", "ada@example.com", "Ada", "Lovelace", "", "", "", "", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err = repo.Create(ctx, m)
	assert.NoError(t, err)
	assert.NotEmpty(t, m.CreatedOn)
}

func TestMemberRepository_RecordMerge(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := postgres.NewMemberRepository(db)
	ctx := context.Background()

	mock.ExpectExec("INSERT INTO member_merge_log").
		WithArgs("mem-dup", "mem-primary", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err = repo.RecordMerge(ctx, "mem-primary", "mem-dup")
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
