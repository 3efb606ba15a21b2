package reconcile

import (
	"maps"
	"sort"

	"roster-manager/core/roster"
)

// BuildRoster walks a section's ordered snapshots once and produces the
// cumulative enrollment roster: every student ever observed, with
// first-enrolled and first-dropped dates attached.
//
// Row content comes from the most recent capture a student appeared in;
// students absent from the final capture are synthesized with the dropped
// status sentinel. Returns nil when the timeline holds no snapshots, which
// callers must treat as a valid no-result condition.
//
// The walk is a pure function of its input: no state survives between
// invocations and the same timeline always yields the same result.
func BuildRoster(section string, snapshots []roster.Snapshot, s Sentinels) *RosterResult {
	if len(snapshots) == 0 {
		return nil
	}

	enrolledOn := make(map[string]string)
	droppedOn := make(map[string]string)
	latest := make(map[string]roster.Record)
	previous := make(map[string]struct{})

	for _, snap := range snapshots {
		current := make(map[string]struct{}, len(snap.Rows))

		for _, rec := range snap.Rows {
			// Most recent row wins for carry-through content.
			latest[rec.ID] = rec
			current[rec.ID] = struct{}{}

			if rec.Status == s.Enrolled {
				if _, recorded := enrolledOn[rec.ID]; !recorded {
					enrolledOn[rec.ID] = snap.Date
				}
			}
		}

		// Only the first disappearance is recorded; a student who drops,
		// reappears and drops again keeps the original date.
		for id := range previous {
			if _, present := current[id]; !present {
				if _, recorded := droppedOn[id]; !recorded {
					droppedOn[id] = snap.Date
				}
			}
		}

		previous = current
	}

	final := snapshots[len(snapshots)-1]
	rows := make([]Row, 0, len(latest))
	inFinal := make(map[string]struct{}, len(final.Rows))

	for _, rec := range final.Rows {
		inFinal[rec.ID] = struct{}{}
		rows = append(rows, Row{
			Record:    rec,
			Lifecycle: Lifecycle{EnrolledDate: enrolledOn[rec.ID], DroppedDate: droppedOn[rec.ID]},
		})
	}

	missing := make([]string, 0)
	for id := range latest {
		if _, present := inFinal[id]; !present {
			missing = append(missing, id)
		}
	}
	sort.Strings(missing)

	for _, id := range missing {
		rec := latest[id]
		rec.Status = s.Dropped
		// Clone before mutating: the fields map is shared with the
		// snapshot the record was read from.
		rec.Fields = maps.Clone(rec.Fields)
		if rec.Fields != nil {
			rec.Fields[roster.ColumnStatus] = s.Dropped
		}
		rows = append(rows, Row{
			Record:      rec,
			Lifecycle:   Lifecycle{EnrolledDate: enrolledOn[id], DroppedDate: droppedOn[id]},
			Synthesized: true,
		})
	}

	return &RosterResult{Section: section, Header: final.Header, Rows: rows}
}
