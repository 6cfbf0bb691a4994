// Package csvimport parses attendee CSV files into per-row outcomes.
// Preview is pure: it reads text and returns an ordered row list with
// no persistence, so the caller can hand the result back verbatim to
// the commit phase.
package csvimport

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"eventdesk-backend/internal/domain"
)

// RowOutcome tags each parsed row.
type RowOutcome string

const (
	RowAccepted  RowOutcome = "accepted"
	RowErrored   RowOutcome = "errored"
	RowDuplicate RowOutcome = "duplicate"
)

// PreviewRow is one parsed candidate row. Transient: produced by
// Preview, consumed once by commit, never persisted.
type PreviewRow struct {
	Line    int                     `json:"line"` // 1-based, header is line 1
	Outcome RowOutcome              `json:"outcome"`
	Name    string                  `json:"name,omitempty"`
	Email   string                  `json:"email,omitempty"`
	Phone   string                  `json:"phone,omitempty"`
	Company string                  `json:"company,omitempty"`
	Status  domain.AttendanceStatus `json:"status"`
	Error   string                  `json:"error,omitempty"`
}

// Metrics summarizes a preview.
type Metrics struct {
	Total      int `json:"total"`
	Accepted   int `json:"accepted"`
	Duplicates int `json:"duplicates"`
	Errors     int `json:"errors"`
}

// Summarize tallies row outcomes.
func Summarize(rows []PreviewRow) Metrics {
	m := Metrics{Total: len(rows)}
	for _, r := range rows {
		switch r.Outcome {
		case RowAccepted:
			m.Accepted++
		case RowDuplicate:
			m.Duplicates++
		case RowErrored:
			m.Errors++
		}
	}
	return m
}

type columnMap struct {
	name, email, phone, company, status int
	first, last                         int
}

func mapColumns(header []string) columnMap {
	cols := columnMap{name: -1, email: -1, phone: -1, company: -1, status: -1, first: -1, last: -1}
	for i, h := range header {
		switch strings.ToLower(strings.TrimSpace(h)) {
		case "name":
			cols.name = i
		case "email":
			cols.email = i
		case "phone":
			cols.phone = i
		case "company":
			cols.company = i
		case "status":
			cols.status = i
		case "firstname", "first_name", "first name", "first":
			cols.first = i
		case "lastname", "last_name", "last name", "last":
			cols.last = i
		}
	}
	return cols
}

func field(rec []string, idx int) string {
	if idx < 0 || idx >= len(rec) {
		return ""
	}
	return strings.TrimSpace(rec[idx])
}

// Preview parses CSV text with a header row into an ordered sequence
// of row outcomes. A malformed row, including one whose field count
// differs from the header's, marks only that row errored; rows
// whose identity matches an earlier accepted row are marked duplicate
// (first occurrence wins). The returned error is structural only
// (unreadable or empty header), in which case no rows are returned.
func Preview(csvText string) ([]PreviewRow, error) {
	rdr := csv.NewReader(strings.NewReader(csvText))
	rdr.TrimLeadingSpace = true

	header, err := rdr.Read()
	if err != nil {
		return nil, fmt.Errorf("%w: unreadable CSV header: %v", domain.ErrValidation, err)
	}
	cols := mapColumns(header)

	var rows []PreviewRow
	seen := make(map[string]bool)
	line := 1
	for {
		line++
		rec, err := rdr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			// Row-local parse failure; keep going.
			rows = append(rows, PreviewRow{
				Line:    line,
				Outcome: RowErrored,
				Status:  domain.StatusPreregistered,
				Error:   fmt.Sprintf("malformed row: %v", err),
			})
			continue
		}

		row := PreviewRow{
			Line:    line,
			Email:   field(rec, cols.email),
			Phone:   field(rec, cols.phone),
			Company: field(rec, cols.company),
			Status:  domain.StatusPreregistered,
		}

		row.Name = field(rec, cols.name)
		if row.Name == "" {
			first := field(rec, cols.first)
			last := field(rec, cols.last)
			row.Name = strings.TrimSpace(first + " " + last)
		}
		if row.Name == "" {
			row.Outcome = RowErrored
			row.Error = "missing required field: name"
			rows = append(rows, row)
			continue
		}

		if raw := field(rec, cols.status); raw != "" {
			st, ok := domain.NormalizeStatus(raw)
			if !ok {
				row.Outcome = RowErrored
				row.Error = fmt.Sprintf("unrecognized status %q", raw)
				rows = append(rows, row)
				continue
			}
			row.Status = st
		}

		key := domain.IdentityKey(row.Email, row.Name, row.Phone)
		if key != "" && seen[key] {
			row.Outcome = RowDuplicate
			rows = append(rows, row)
			continue
		}
		if key != "" {
			seen[key] = true
		}

		row.Outcome = RowAccepted
		rows = append(rows, row)
	}
	return rows, nil
}
