package export

import (
	"os"
	"path/filepath"
	"testing"

	"roster-manager/core/reconcile"
	"roster-manager/core/roster"

	"github.com/stretchr/testify/assert"
)

func testRosterResult() *reconcile.RosterResult {
	header := []string{roster.ColumnID, roster.ColumnFirstName, roster.ColumnLastName, roster.ColumnEmail, roster.ColumnStatus}
	row := func(id, first, last, email, status string) roster.Record {
		return roster.Record{
			ID: id, FirstName: first, LastName: last, Email: email, Status: status,
			Fields: map[string]string{
				roster.ColumnID:        id,
				roster.ColumnFirstName: first,
				roster.ColumnLastName:  last,
				roster.ColumnEmail:     email,
				roster.ColumnStatus:    status,
			},
		}
	}

	return &reconcile.RosterResult{
		Section: "MATH-UA_122_001_1264",
		Header:  header,
		Rows: []reconcile.Row{
			{
				Record:    row("S1", "Ada", "Lovelace", "ada@example.edu", "Enrolled"),
				Lifecycle: reconcile.Lifecycle{EnrolledDate: "2026-01-13"},
			},
			{
				Record:      row("S2", "Alan", "Turing", "alan@example.edu", "Dropped"),
				Lifecycle:   reconcile.Lifecycle{EnrolledDate: "2026-01-13", DroppedDate: "2026-01-14"},
				Synthesized: true,
			},
		},
	}
}

func TestWriteRoster(t *testing.T) {
	dir := t.TempDir()

	path, err := WriteRoster(testRosterResult(), dir, "2026-01-15")
	assert.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "2026-01-15", "MATH-UA_122_001_1264_enrollment.csv"), path)

	contents, err := os.ReadFile(path)
	assert.NoError(t, err)

	expected := "Campus ID,First Name,Last Name,Email Address,Status,Enrollment Date,Dropped Date\n" +
		"S1,Ada,Lovelace,ada@example.edu,Enrolled,2026-01-13,\n" +
		"S2,Alan,Turing,alan@example.edu,Dropped,2026-01-13,2026-01-14\n"
	assert.Equal(t, expected, string(contents))
}

func TestRenderReport(t *testing.T) {
	events := []reconcile.DateEvent{
		{
			Date: "2026-01-13",
			New:  []roster.Identity{{FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.edu"}},
		},
		{
			Date: "2026-01-14",
		},
		{
			Date:      "2026-01-15",
			Dropped:   []roster.Identity{{FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.edu"}},
			Withdrawn: []roster.Identity{{FirstName: "Alan", LastName: "Turing", Email: "alan@example.edu"}},
		},
	}

	body := RenderReport("MATH-UA_122_001_1264", events)

	assert.Contains(t, body, "# Enrollment Report: MATH-UA 122 001 1264")
	assert.Contains(t, body, "## January 13, 2026")
	assert.Contains(t, body, "**New Students:**\n\n- Ada Lovelace <ada@example.edu>")
	assert.Contains(t, body, "## January 14, 2026\n\nNo changes")
	assert.Contains(t, body, "**Dropped Students:**\n\n- Ada Lovelace <ada@example.edu>")
	assert.Contains(t, body, "**Withdrawn Students:**\n\n- Alan Turing <alan@example.edu>")
}

func TestWriteReport(t *testing.T) {
	dir := t.TempDir()
	events := []reconcile.DateEvent{{Date: "2026-01-13"}}

	path, err := WriteReport("MATH-101", events, dir)
	assert.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "MATH-101_enrollment.md"), path)

	contents, err := os.ReadFile(path)
	assert.NoError(t, err)
	assert.Contains(t, string(contents), "No changes")
}

func TestFormatDateFriendly(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"2026-01-13", "January 13, 2026"},
		{"2026-09-01", "September 01, 2026"},
		{"not-a-date", "not-a-date"},
		{"", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, FormatDateFriendly(tt.input))
	}
}
