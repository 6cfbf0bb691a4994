package domain

import (
	"encoding/json"
	"fmt"
	"strings"
)

// AttendanceStatus is the closed set of attendee participation states.
// The numeric ordering is fixed and shared with external consumers;
// never reorder or extend at runtime.
type AttendanceStatus int

const (
	StatusPreregistered AttendanceStatus = iota
	StatusWalkIn
	StatusCheckedIn
	StatusDidNotAttend
)

// AllStatuses lists the four canonical statuses in ordinal order.
func AllStatuses() [4]AttendanceStatus {
	return [4]AttendanceStatus{StatusPreregistered, StatusWalkIn, StatusCheckedIn, StatusDidNotAttend}
}

// Valid reports whether s is one of the four canonical statuses.
func (s AttendanceStatus) Valid() bool {
	return s >= StatusPreregistered && s <= StatusDidNotAttend
}

// Code returns the canonical lowercase wire code, or "" for an
// out-of-range value.
func (s AttendanceStatus) Code() string {
	switch s {
	case StatusPreregistered:
		return "preregistered"
	case StatusWalkIn:
		return "walkin"
	case StatusCheckedIn:
		return "checkedin"
	case StatusDidNotAttend:
		return "dna"
	}
	return ""
}

// Label returns the human-readable display label, or "" for an
// out-of-range value.
func (s AttendanceStatus) Label() string {
	switch s {
	case StatusPreregistered:
		return "Pre-Registered"
	case StatusWalkIn:
		return "Walk-in"
	case StatusCheckedIn:
		return "Checked-In"
	case StatusDidNotAttend:
		return "Did Not Attend"
	}
	return ""
}

// StatusFromCode matches s against the four canonical codes exactly.
// Anything else, including case variants and synonyms, is rejected.
func StatusFromCode(s string) (AttendanceStatus, bool) {
	switch s {
	case "preregistered":
		return StatusPreregistered, true
	case "walkin":
		return StatusWalkIn, true
	case "checkedin":
		return StatusCheckedIn, true
	case "dna":
		return StatusDidNotAttend, true
	}
	return AttendanceStatus(-1), false
}

// NormalizeStatus maps free-form status strings, including common
// legacy terms, to a canonical status.
func NormalizeStatus(s string) (AttendanceStatus, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "preregistered", "pre-registered", "pre_registered", "pre reg", "pre-reg", "registered", "reg":
		return StatusPreregistered, true
	case "walkin", "walk-in", "walk_in", "walk in":
		return StatusWalkIn, true
	case "checkedin", "checked-in", "checked_in", "checked in", "present", "attended":
		return StatusCheckedIn, true
	case "dna", "did not attend", "did_not_attend", "no show", "no_show", "noshow", "absent":
		return StatusDidNotAttend, true
	}
	return AttendanceStatus(-1), false
}

// MarshalJSON encodes the status as its canonical code string.
func (s AttendanceStatus) MarshalJSON() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("%w: status ordinal %d", ErrInvalidStatus, int(s))
	}
	return json.Marshal(s.Code())
}

// UnmarshalJSON accepts only canonical code strings.
func (s *AttendanceStatus) UnmarshalJSON(data []byte) error {
	var code string
	if err := json.Unmarshal(data, &code); err != nil {
		return err
	}
	st, ok := StatusFromCode(code)
	if !ok {
		return fmt.Errorf("%w: %q", ErrInvalidStatus, code)
	}
	*s = st
	return nil
}
