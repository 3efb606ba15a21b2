// Package export renders reconciliation results to files: the cumulative
// enrollment roster as CSV and the chronological enrollment report as
// Markdown. It owns all serialization concerns (destination paths, date
// display formatting, the "No changes" fallback); the reconcile engine
// never touches the filesystem.
package export
