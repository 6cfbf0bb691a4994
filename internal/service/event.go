package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"eventdesk-backend/internal/domain"
	"eventdesk-backend/internal/repository"
)

type eventService struct {
	eventRepo repository.EventRepository
}

func NewEventService(eventRepo repository.EventRepository) EventService {
	return &eventService{eventRepo: eventRepo}
}

func (s *eventService) CreateEvent(ctx context.Context, e *domain.Event) (*domain.Event, error) {
	if e.Name == "" {
		return nil, fmt.Errorf("%w: event name required", domain.ErrValidation)
	}
	if e.EndsAt.Before(e.StartsAt) {
		return nil, fmt.Errorf("%w: event ends before it starts", domain.ErrValidation)
	}
	if e.ID == "" {
		e.ID = uuid.New().String()
	}
	if e.Status == "" {
		e.Status = domain.EventStatusActive
	}
	if e.Timezone == "" {
		e.Timezone = "UTC"
	}
	if err := s.eventRepo.Create(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

func (s *eventService) GetEvent(ctx context.Context, id string) (*domain.Event, error) {
	return s.eventRepo.GetByID(ctx, id)
}

func (s *eventService) UpdateEvent(ctx context.Context, e *domain.Event) error {
	if e.ID == "" {
		return fmt.Errorf("%w: event id required", domain.ErrValidation)
	}
	if e.Name == "" {
		return fmt.Errorf("%w: event name required", domain.ErrValidation)
	}
	return s.eventRepo.Update(ctx, e)
}

func (s *eventService) ListEvents(ctx context.Context, limit, offset int32) ([]domain.Event, error) {
	if limit <= 0 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}
	return s.eventRepo.List(ctx, limit, offset)
}

func (s *eventService) DeleteEvent(ctx context.Context, id string) error {
	return s.eventRepo.Delete(ctx, id)
}
