package domain

import "time"

// AttendanceSource records how an attendance row came to exist.
type AttendanceSource string

const (
	SourcePrereg    AttendanceSource = "prereg"
	SourceWalkIn    AttendanceSource = "walkin"
	SourceCSVImport AttendanceSource = "csv-import"
)

// AttendanceRecord is one member's participation in one event. Status
// is always one of the four canonical values; a transition that fails
// validation is rejected before any mutation.
type AttendanceRecord struct {
	ID          string           `json:"id"`
	EventID     string           `json:"event_id"`
	MemberID    string           `json:"member_id"`
	Status      AttendanceStatus `json:"status"`
	Reason      string           `json:"reason,omitempty"`
	ChangedBy   string           `json:"changed_by,omitempty"`
	Source      AttendanceSource `json:"source,omitempty"`
	CheckedInAt *time.Time       `json:"checked_in_at,omitempty"`
	CreatedOn   string           `json:"created_on,omitempty"`
	UpdatedOn   string           `json:"updated_on,omitempty"`
}

// AttendeeRow is the joined attendance + member view used for listing
// and export.
type AttendeeRow struct {
	AttendanceID string           `json:"attendeeId"`
	MemberID     string           `json:"memberId"`
	EventID      string           `json:"eventId"`
	Name         string           `json:"name"`
	Email        string           `json:"email,omitempty"`
	Company      string           `json:"company,omitempty"`
	Status       AttendanceStatus `json:"status"`
	CheckedInAt  *time.Time       `json:"checkedInAt,omitempty"`
}

// StatusCounts carries per-status record counts for one event. All
// four keys are always present on the wire, zero-filled.
type StatusCounts struct {
	Preregistered int64 `json:"preregistered"`
	WalkIn        int64 `json:"walkin"`
	CheckedIn     int64 `json:"checkedin"`
	DidNotAttend  int64 `json:"dna"`
}

// Total sums the four buckets; equals the number of attendance records
// for the event.
func (c StatusCounts) Total() int64 {
	return c.Preregistered + c.WalkIn + c.CheckedIn + c.DidNotAttend
}

// Add increments the bucket for the given status. Out-of-range values
// are ignored.
func (c *StatusCounts) Add(s AttendanceStatus, n int64) {
	switch s {
	case StatusPreregistered:
		c.Preregistered += n
	case StatusWalkIn:
		c.WalkIn += n
	case StatusCheckedIn:
		c.CheckedIn += n
	case StatusDidNotAttend:
		c.DidNotAttend += n
	}
}

// ImportResult is the outcome of committing a CSV preview. The three
// counters sum to the number of data rows in the original file.
type ImportResult struct {
	RowsImported int `json:"rowsImported"`
	RowsErrored  int `json:"rowsErrored"`
	Duplicates   int `json:"duplicates"`
}
