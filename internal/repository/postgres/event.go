package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"eventdesk-backend/internal/domain"
	"eventdesk-backend/internal/repository"
)

type eventRepository struct {
	db *sql.DB
}

func NewEventRepository(db *sql.DB) repository.EventRepository {
	return &eventRepository{db: db}
}

const eventColumns = `id, name, starts_at, ends_at, COALESCE(location, ''), COALESCE(capacity, 0), status, COALESCE(timezone, 'UTC'), COALESCE(description, ''), created_on, updated_on`

func scanEvent(row interface{ Scan(...any) error }) (*domain.Event, error) {
	e := &domain.Event{}
	var createdOn, updatedOn time.Time
	var status string
	err := row.Scan(&e.ID, &e.Name, &e.StartsAt, &e.EndsAt, &e.Location, &e.Capacity, &status, &e.Timezone, &e.Description, &createdOn, &updatedOn)
	if err != nil {
		return nil, err
	}
	e.Status = domain.EventStatus(status)
	e.CreatedOn = createdOn.Format(time.RFC3339)
	e.UpdatedOn = updatedOn.Format(time.RFC3339)
	return e, nil
}

func (r *eventRepository) Create(ctx context.Context, e *domain.Event) error {
	query := `INSERT INTO events (id, name, starts_at, ends_at, location, capacity, status, timezone, description, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $10)`
	now := time.Now().UTC()
	e.CreatedOn = now.Format(time.RFC3339)
	e.UpdatedOn = e.CreatedOn
	_, err := r.db.ExecContext(ctx, query, e.ID, e.Name, e.StartsAt, e.EndsAt, e.Location, e.Capacity, string(e.Status), e.Timezone, e.Description, now)
	return err
}

func (r *eventRepository) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events WHERE id = $1`
	e, err := scanEvent(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: event %s", domain.ErrNotFound, id)
	}
	return e, err
}

func (r *eventRepository) Update(ctx context.Context, e *domain.Event) error {
	query := `UPDATE events SET name=$2, starts_at=$3, ends_at=$4, location=$5, capacity=$6, status=$7, timezone=$8, description=$9, updated_on=$10 WHERE id=$1`
	now := time.Now().UTC()
	e.UpdatedOn = now.Format(time.RFC3339)
	res, err := r.db.ExecContext(ctx, query, e.ID, e.Name, e.StartsAt, e.EndsAt, e.Location, e.Capacity, string(e.Status), e.Timezone, e.Description, now)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("%w: event %s", domain.ErrNotFound, e.ID)
	}
	return nil
}

func (r *eventRepository) List(ctx context.Context, limit, offset int32) ([]domain.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events ORDER BY starts_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.db.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Event
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *e)
	}
	return out, rows.Err()
}

func (r *eventRepository) Delete(ctx context.Context, id string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM event_attendance WHERE event_id = $1`, id); err != nil {
		return err
	}
	res, err := tx.ExecContext(ctx, `DELETE FROM events WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("%w: event %s", domain.ErrNotFound, id)
	}
	return tx.Commit()
}
