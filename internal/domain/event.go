package domain

import "time"

type EventStatus string

const (
	EventStatusActive   EventStatus = "active"
	EventStatusClosed   EventStatus = "closed"
	EventStatusArchived EventStatus = "archived"
)

// Event owns zero or more attendance records. Rolling an event over
// never deletes attendance; it only updates statuses.
type Event struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	StartsAt    time.Time   `json:"starts_at"`
	EndsAt      time.Time   `json:"ends_at"`
	Location    string      `json:"location,omitempty"`
	Capacity    int32       `json:"capacity,omitempty"`
	Status      EventStatus `json:"status"`
	Timezone    string      `json:"timezone,omitempty"`
	Description string      `json:"description,omitempty"`
	CreatedOn   string      `json:"created_on,omitempty"`
	UpdatedOn   string      `json:"updated_on,omitempty"`
}

// InProgress reports whether the event is live at the given instant.
func (e *Event) InProgress(now time.Time) bool {
	return !now.Before(e.StartsAt) && !now.After(e.EndsAt)
}
