package reconcile

import (
	"testing"

	"roster-manager/core/roster"

	"github.com/stretchr/testify/assert"
)

var testHeader = []string{
	roster.ColumnID, roster.ColumnFirstName, roster.ColumnLastName,
	roster.ColumnEmail, roster.ColumnStatus, roster.ColumnStatusNote,
}

// rec builds a student row with a populated carry-through field map.
func rec(id, first, last, email, status, note string) roster.Record {
	return roster.Record{
		ID:         id,
		FirstName:  first,
		LastName:   last,
		Email:      email,
		Status:     status,
		StatusNote: note,
		Fields: map[string]string{
			roster.ColumnID:         id,
			roster.ColumnFirstName:  first,
			roster.ColumnLastName:   last,
			roster.ColumnEmail:      email,
			roster.ColumnStatus:     status,
			roster.ColumnStatusNote: note,
		},
	}
}

func snap(date string, rows ...roster.Record) roster.Snapshot {
	return roster.Snapshot{Date: date, Header: testHeader, Rows: rows}
}

func enrolled(id, first, last, email string) roster.Record {
	return rec(id, first, last, email, "Enrolled", "")
}

func rowByID(t *testing.T, result *RosterResult, id string) Row {
	t.Helper()
	for _, row := range result.Rows {
		if row.ID == id {
			return row
		}
	}
	t.Fatalf("student %s not found in result", id)
	return Row{}
}

func TestBuildRoster_EnrollmentDates(t *testing.T) {
	timeline := []roster.Snapshot{
		snap("2026-01-13", enrolled("S1", "Ada", "Lovelace", "ada@example.edu")),
		snap("2026-01-14",
			enrolled("S1", "Ada", "Lovelace", "ada@example.edu"),
			enrolled("S2", "Alan", "Turing", "alan@example.edu"),
		),
	}

	result := BuildRoster("MATH-101", timeline, DefaultSentinels())
	assert.NotNil(t, result)
	assert.Equal(t, "MATH-101", result.Section)
	assert.Len(t, result.Rows, 2)

	assert.Equal(t, "2026-01-13", rowByID(t, result, "S1").EnrolledDate)
	assert.Equal(t, "2026-01-14", rowByID(t, result, "S2").EnrolledDate)
	assert.Empty(t, rowByID(t, result, "S1").DroppedDate)
}

func TestBuildRoster_DropDetection(t *testing.T) {
	timeline := []roster.Snapshot{
		snap("2026-01-13", enrolled("S1", "Ada", "Lovelace", "ada@example.edu")),
		snap("2026-01-14"),
	}

	result := BuildRoster("MATH-101", timeline, DefaultSentinels())
	assert.NotNil(t, result)
	assert.Len(t, result.Rows, 1)

	row := rowByID(t, result, "S1")
	assert.Equal(t, "2026-01-13", row.EnrolledDate)
	assert.Equal(t, "2026-01-14", row.DroppedDate)
	assert.True(t, row.Synthesized)
	assert.Equal(t, "Dropped", row.Status)
	// The carry-through fields must reflect the forced status too.
	assert.Equal(t, "Dropped", row.Fields[roster.ColumnStatus])
}

func TestBuildRoster_FirstOccurrenceSurvivesReenrollment(t *testing.T) {
	timeline := []roster.Snapshot{
		snap("2026-01-13", enrolled("S1", "Ada", "Lovelace", "ada@example.edu")),
		snap("2026-01-14"),
		snap("2026-01-15", enrolled("S1", "Ada", "Lovelace", "ada@example.edu")),
	}

	result := BuildRoster("MATH-101", timeline, DefaultSentinels())
	row := rowByID(t, result, "S1")

	// Both dates keep their first observation despite the round trip.
	assert.Equal(t, "2026-01-13", row.EnrolledDate)
	assert.Equal(t, "2026-01-14", row.DroppedDate)
	assert.False(t, row.Synthesized)
	assert.Equal(t, "Enrolled", row.Status)
}

func TestBuildRoster_MostRecentRowWins(t *testing.T) {
	timeline := []roster.Snapshot{
		snap("2026-01-13", enrolled("S1", "Ada", "Lovelace", "ada@old.example.edu")),
		snap("2026-01-14", enrolled("S1", "Ada", "Lovelace", "ada@new.example.edu")),
		snap("2026-01-15"),
	}

	result := BuildRoster("MATH-101", timeline, DefaultSentinels())
	row := rowByID(t, result, "S1")

	// Synthesized content comes from the latest capture the student
	// appeared in, not the first.
	assert.True(t, row.Synthesized)
	assert.Equal(t, "ada@new.example.edu", row.Email)
	assert.Equal(t, "ada@new.example.edu", row.Fields[roster.ColumnEmail])
}

func TestBuildRoster_CoversEveryObservedStudent(t *testing.T) {
	timeline := []roster.Snapshot{
		snap("2026-01-13",
			enrolled("S1", "Ada", "Lovelace", "ada@example.edu"),
			enrolled("S2", "Alan", "Turing", "alan@example.edu"),
		),
		snap("2026-01-14",
			enrolled("S2", "Alan", "Turing", "alan@example.edu"),
			enrolled("S3", "Grace", "Hopper", "grace@example.edu"),
		),
	}

	result := BuildRoster("MATH-101", timeline, DefaultSentinels())

	ids := make([]string, 0, len(result.Rows))
	for _, row := range result.Rows {
		ids = append(ids, row.ID)
	}
	// Final capture order first, then synthesized rows.
	assert.Equal(t, []string{"S2", "S3", "S1"}, ids)
}

func TestBuildRoster_SynthesizedRowsSortedByID(t *testing.T) {
	timeline := []roster.Snapshot{
		snap("2026-01-13",
			enrolled("S9", "Ada", "Lovelace", "ada@example.edu"),
			enrolled("S2", "Alan", "Turing", "alan@example.edu"),
			enrolled("S5", "Grace", "Hopper", "grace@example.edu"),
		),
		snap("2026-01-14"),
	}

	result := BuildRoster("MATH-101", timeline, DefaultSentinels())

	ids := make([]string, 0, len(result.Rows))
	for _, row := range result.Rows {
		assert.True(t, row.Synthesized)
		ids = append(ids, row.ID)
	}
	assert.Equal(t, []string{"S2", "S5", "S9"}, ids)
}

func TestBuildRoster_NonEnrolledStatusGetsNoDate(t *testing.T) {
	timeline := []roster.Snapshot{
		snap("2026-01-13", rec("S1", "Ada", "Lovelace", "ada@example.edu", "Waitlisted", "")),
		snap("2026-01-14", enrolled("S1", "Ada", "Lovelace", "ada@example.edu")),
	}

	result := BuildRoster("MATH-101", timeline, DefaultSentinels())
	// The enrolled date is the first capture with the enrolled status,
	// not the first appearance.
	assert.Equal(t, "2026-01-14", rowByID(t, result, "S1").EnrolledDate)
}

func TestBuildRoster_EmptyTimeline(t *testing.T) {
	assert.Nil(t, BuildRoster("MATH-101", nil, DefaultSentinels()))
	assert.Nil(t, BuildRoster("MATH-101", []roster.Snapshot{}, DefaultSentinels()))
}

func TestBuildRoster_Idempotent(t *testing.T) {
	timeline := []roster.Snapshot{
		snap("2026-01-13",
			enrolled("S1", "Ada", "Lovelace", "ada@example.edu"),
			enrolled("S2", "Alan", "Turing", "alan@example.edu"),
		),
		snap("2026-01-14", enrolled("S2", "Alan", "Turing", "alan@example.edu")),
	}

	first := BuildRoster("MATH-101", timeline, DefaultSentinels())
	second := BuildRoster("MATH-101", timeline, DefaultSentinels())
	assert.Equal(t, first, second)
}

func TestBuildRoster_CustomSentinels(t *testing.T) {
	s := Sentinels{Enrolled: "Active", Dropped: "Inactive", Withdrawn: "Left"}
	timeline := []roster.Snapshot{
		snap("2026-01-13", rec("S1", "Ada", "Lovelace", "ada@example.edu", "Active", "")),
		snap("2026-01-14"),
	}

	result := BuildRoster("MATH-101", timeline, s)
	row := rowByID(t, result, "S1")
	assert.Equal(t, "2026-01-13", row.EnrolledDate)
	assert.Equal(t, "Inactive", row.Status)
}
