package reconcile

import "roster-manager/core/roster"

// membership is one student of a previous capture, kept in roster order so
// dropped-student lists render deterministically.
type membership struct {
	id       string
	identity roster.Identity
}

// BuildEventLog walks a section's ordered snapshots once and produces one
// DateEvent per snapshot, in order, including dates with no changes.
//
// The comparison baseline is always the previous snapshot in the slice.
// Callers pass only the successfully read captures, so a skipped date
// neither emits an event nor participates in the new/dropped comparison.
//
// Like BuildRoster, this is a pure function over the same input; the two
// walks keep independent running state and may run concurrently.
func BuildEventLog(snapshots []roster.Snapshot, s Sentinels) []DateEvent {
	events := make([]DateEvent, 0, len(snapshots))

	var previous []membership
	previousIDs := make(map[string]struct{})
	everWithdrawn := make(map[string]struct{})

	for _, snap := range snapshots {
		event := DateEvent{Date: snap.Date}

		current := make([]membership, 0, len(snap.Rows))
		currentIDs := make(map[string]struct{}, len(snap.Rows))

		for _, rec := range snap.Rows {
			current = append(current, membership{id: rec.ID, identity: rec.Identity()})
			currentIDs[rec.ID] = struct{}{}

			// New relative to the immediately preceding capture, not
			// "ever seen": a returning student is reported again.
			if rec.Status == s.Enrolled {
				if _, present := previousIDs[rec.ID]; !present {
					event.New = append(event.New, rec.Identity())
				}
			}

			if rec.StatusNote == s.Withdrawn {
				if _, reported := everWithdrawn[rec.ID]; !reported {
					everWithdrawn[rec.ID] = struct{}{}
					event.Withdrawn = append(event.Withdrawn, rec.Identity())
				}
			}
		}

		for _, m := range previous {
			if _, present := currentIDs[m.id]; !present {
				event.Dropped = append(event.Dropped, m.identity)
			}
		}

		events = append(events, event)
		previous = current
		previousIDs = currentIDs
	}

	return events
}
