package csvimport

import (
	"testing"

	"eventdesk-backend/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestPreview_Basic(t *testing.T) {
	csv := "name,email,status\n" +
		"Ada Lovelace,ada@example.com,checked in\n" +
		"Grace Hopper,grace@example.com,\n"

	rows, err := Preview(csv)
	assert.NoError(t, err)
	assert.Len(t, rows, 2)

	assert.Equal(t, RowAccepted, rows[0].Outcome)
	assert.Equal(t, "Ada Lovelace", rows[0].Name)
	assert.Equal(t, domain.StatusCheckedIn, rows[0].Status)

	// Blank status defaults to preregistered.
	assert.Equal(t, RowAccepted, rows[1].Outcome)
	assert.Equal(t, domain.StatusPreregistered, rows[1].Status)
}

func TestPreview_DuplicateEmail(t *testing.T) {
	csv := "name,email\n" +
		"Ada Lovelace,ada@example.com\n" +
		"A. Lovelace,ADA@example.com\n"

	rows, err := Preview(csv)
	assert.NoError(t, err)
	assert.Len(t, rows, 2)
	assert.Equal(t, RowAccepted, rows[0].Outcome)
	assert.Equal(t, RowDuplicate, rows[1].Outcome)

	m := Summarize(rows)
	assert.Equal(t, Metrics{Total: 2, Accepted: 1, Duplicates: 1}, m)
}

func TestPreview_DuplicateNameAndPhone(t *testing.T) {
	csv := "name,phone\n" +
		"Ada Lovelace,(555) 010-0\n" +
		"ada  lovelace,5550100\n" +
		"Ada Lovelace,5550199\n"

	rows, err := Preview(csv)
	assert.NoError(t, err)
	assert.Equal(t, RowAccepted, rows[0].Outcome)
	assert.Equal(t, RowDuplicate, rows[1].Outcome)
	// Different phone means a different identity.
	assert.Equal(t, RowAccepted, rows[2].Outcome)
}

func TestPreview_PartialFailure(t *testing.T) {
	csv := "name,email\n" +
		"Ada Lovelace,ada@example.com\n" +
		",missing@example.com\n" + // no name column value, has email only — errored per required name
		"Grace Hopper,grace@example.com\n" +
		"Katherine Johnson,kj@example.com\n" +
		"Ada Lovelace,ada@example.com\n" // duplicate of row 1

	rows, err := Preview(csv)
	assert.NoError(t, err)
	assert.Len(t, rows, 5)

	m := Summarize(rows)
	assert.Equal(t, 5, m.Total)
	assert.Equal(t, 3, m.Accepted)
	assert.Equal(t, 1, m.Duplicates)
	assert.Equal(t, 1, m.Errors)
	assert.Contains(t, rows[1].Error, "missing required field")
}

func TestPreview_MalformedRowDoesNotAbort(t *testing.T) {
	csv := "name,email\n" +
		"Ada Lovelace,ada@example.com\n" +
		"\"unterminated,broken@example.com\n" +
		"Grace Hopper,grace@example.com\n"

	rows, err := Preview(csv)
	assert.NoError(t, err)

	m := Summarize(rows)
	assert.Equal(t, 1, m.Errors)
	assert.GreaterOrEqual(t, m.Accepted, 1)
	assert.Equal(t, RowAccepted, rows[0].Outcome)
}

func TestPreview_FirstLastNameFallback(t *testing.T) {
	csv := "first_name,last_name,email\n" +
		"Ada,Lovelace,ada@example.com\n"

	rows, err := Preview(csv)
	assert.NoError(t, err)
	assert.Equal(t, RowAccepted, rows[0].Outcome)
	assert.Equal(t, "Ada Lovelace", rows[0].Name)
}

func TestPreview_UnknownColumnsIgnored(t *testing.T) {
	csv := "name,email,badge_color\n" +
		"Ada Lovelace,ada@example.com,teal\n"

	rows, err := Preview(csv)
	assert.NoError(t, err)
	assert.Equal(t, RowAccepted, rows[0].Outcome)
}

func TestPreview_UnrecognizedStatus(t *testing.T) {
	csv := "name,status\n" +
		"Ada Lovelace,teleported\n"

	rows, err := Preview(csv)
	assert.NoError(t, err)
	assert.Equal(t, RowErrored, rows[0].Outcome)
	assert.Contains(t, rows[0].Error, "unrecognized status")
}

func TestPreview_UnreadableHeader(t *testing.T) {
	_, err := Preview("")
	assert.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestPreview_RaggedRows(t *testing.T) {
	csv := "name,email,phone\n" +
		"Ada Lovelace,ada@example.com\n" + // one field short
		"Grace Hopper,grace@example.com,5550100,extra\n" + // one field over
		"Mary Jackson,mj@example.com,5550199\n"

	rows, err := Preview(csv)
	assert.NoError(t, err)
	assert.Len(t, rows, 3)

	// Ragged rows are errored, not silently padded or truncated, and
	// never abort the rest of the file.
	assert.Equal(t, RowErrored, rows[0].Outcome)
	assert.Contains(t, rows[0].Error, "malformed row")
	assert.Equal(t, RowErrored, rows[1].Outcome)
	assert.Equal(t, RowAccepted, rows[2].Outcome)

	m := Summarize(rows)
	assert.Equal(t, Metrics{Total: 3, Accepted: 1, Errors: 2}, m)
}
