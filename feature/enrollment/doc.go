// Package enrollment orchestrates the per-section enrollment pipeline:
// discover capture files, read them with skip-and-continue semantics, run
// the lifecycle and event-log walks, and hand the results to the exporters
// or the archive store.
//
// The package contains no reconciliation logic of its own; it owns the
// batch policy instead. Sections are processed independently and a failure
// in one section is logged and contained, never propagated to the batch.
package enrollment
