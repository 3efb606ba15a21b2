// Package reconcile reconstructs student enrollment lifecycles from an
// ordered sequence of roster snapshots for one section.
//
// Two independent walks consume the same immutable timeline:
//
//  1. BuildRoster computes per-student lifecycle dates (first enrolled,
//     first dropped) and emits a cumulative roster covering every student
//     ever observed, carrying each student's most recent row content.
//
//  2. BuildEventLog computes per-date membership changes (newly enrolled,
//     dropped, newly withdrawn) relative to the immediately preceding
//     readable snapshot.
//
// Both are pure functions: they hold no state between invocations, perform
// no I/O, and rerunning them on the same input yields identical output.
// Sections never interact, so one pair of walks per section can run
// concurrently without coordination.
//
// # First-occurrence policy
//
// Dated facts are recorded once. A student's enrolled date is the first
// capture with the enrolled status, the dropped date is the first observed
// disappearance, and a withdrawal note is reported in at most one event
// even when it persists across captures.
//
// # Error policy
//
// The engine never sees unreadable captures; the loader filters them out
// and logs the skips. An empty timeline produces a nil roster result and
// an empty event log rather than an error, so one bad section can never
// abort a multi-section batch.
package reconcile
