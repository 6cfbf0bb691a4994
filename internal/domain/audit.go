package domain

import "time"

// StatusAudit is one entry in the status change trail. PriorStatus is
// nil for newly created attendance rows.
type StatusAudit struct {
	ID           string    `json:"id"`
	AttendanceID string    `json:"attendance_id"`
	PriorStatus  *string   `json:"prior_status,omitempty"`
	NewStatus    string    `json:"new_status"`
	Reason       string    `json:"reason,omitempty"`
	ChangedBy    string    `json:"changed_by,omitempty"`
	ChangedAt    time.Time `json:"changed_at"`
}
