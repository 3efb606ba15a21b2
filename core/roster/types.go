package roster

import "fmt"

// Column names the reader requires in every roster capture.
// Any additional columns are carried through untouched.
const (
	ColumnID         = "Campus ID"
	ColumnFirstName  = "First Name"
	ColumnLastName   = "Last Name"
	ColumnEmail      = "Email Address"
	ColumnStatus     = "Status"
	ColumnStatusNote = "Status Notes"
)

// Record is one student row of a roster capture.
// The typed fields are the columns the engine interprets; Fields holds the
// complete original row keyed by column name so unknown columns round-trip
// into the generated outputs.
type Record struct {
	ID         string
	FirstName  string
	LastName   string
	Email      string
	Status     string
	StatusNote string
	Fields     map[string]string
}

// Identity returns the display identity used in enrollment reports.
func (r Record) Identity() Identity {
	return Identity{FirstName: r.FirstName, LastName: r.LastName, Email: r.Email}
}

// Identity is the (first name, last name, email) tuple reported for a
// student in the event log. It carries no key; use Record.ID for keying.
type Identity struct {
	FirstName string
	LastName  string
	Email     string
}

func (i Identity) String() string {
	return fmt.Sprintf("%s %s <%s>", i.FirstName, i.LastName, i.Email)
}

// Snapshot is one dated capture of a section's full roster.
type Snapshot struct {
	// Date is the capture date in ISO-8601 (YYYY-MM-DD) form.
	// It is the ordering key for a section timeline.
	Date string

	// Header preserves the capture's column order for output rendering.
	Header []string

	// Rows holds the students present in this capture, in file order.
	// Student IDs are unique within a snapshot; the reader enforces this.
	Rows []Record
}
