package reconcile

import "roster-manager/core/roster"

// Sentinels is the status vocabulary the engine recognizes.
// The defaults match the source system's wording; they are configurable
// because registrar exports are not consistent across institutions.
type Sentinels struct {
	// Enrolled is the status value that marks a student as enrolled.
	Enrolled string `mapstructure:"enrolled" default:"Enrolled"`
	// Dropped is the status written on synthesized rows for students
	// absent from the most recent capture.
	Dropped string `mapstructure:"dropped" default:"Dropped"`
	// Withdrawn is the status-note value that marks an explicit
	// withdrawal. Notes are whitespace-trimmed before comparison.
	Withdrawn string `mapstructure:"withdrawn" default:"Withdrawn"`
}

// DefaultSentinels returns the standard status vocabulary.
func DefaultSentinels() Sentinels {
	return Sentinels{Enrolled: "Enrolled", Dropped: "Dropped", Withdrawn: "Withdrawn"}
}

// Lifecycle holds the computed enrollment dates for one student.
// An empty date means the fact was never observed. Once set, a date is
// never moved by later snapshots (first-occurrence policy).
type Lifecycle struct {
	// EnrolledDate is the date of the first capture in which the student
	// appeared with the enrolled status.
	EnrolledDate string

	// DroppedDate is the date of the first capture from which the student
	// disappeared after being present in the immediately preceding one.
	DroppedDate string
}

// Row is one row of the cumulative enrollment roster.
type Row struct {
	roster.Record
	Lifecycle

	// Synthesized is true when the row was carried forward from an earlier
	// capture because the student is absent from the most recent one.
	// Synthesized rows have their status forced to the dropped sentinel.
	Synthesized bool
}

// RosterResult is the cumulative roster for one section: every student ever
// observed in the timeline, enriched with lifecycle dates.
//
// Row order is the most recent capture's order followed by synthesized
// rows sorted by student id.
type RosterResult struct {
	Section string

	// Header is the most recent capture's column order, used when
	// rendering the roster back to a tabular file.
	Header []string

	Rows []Row
}

// DateEvent is the set of membership changes observed on one capture date.
// All three lists may be empty; a date with no changes still yields an
// event so renderers can decide how to present quiet days.
type DateEvent struct {
	Date string

	// New lists students enrolled in this capture who were not present in
	// the immediately preceding readable capture. A student who drops and
	// returns is reported as new again.
	New []roster.Identity

	// Dropped lists students present in the preceding readable capture
	// but absent from this one.
	Dropped []roster.Identity

	// Withdrawn lists students whose status note matched the withdrawn
	// sentinel for the first time. Each student is reported at most once
	// per timeline even if the note persists.
	Withdrawn []roster.Identity
}

// HasChanges reports whether any membership change occurred on this date.
func (e DateEvent) HasChanges() bool {
	return len(e.New) > 0 || len(e.Dropped) > 0 || len(e.Withdrawn) > 0
}
