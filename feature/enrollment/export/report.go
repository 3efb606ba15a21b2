package export

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"roster-manager/core/reconcile"
	"roster-manager/core/roster"
)

// WriteReport typesets a section's event log to
// <outDir>/<section>_enrollment.md: one heading per capture date with the
// new, dropped and withdrawn students of that date, or a "No changes"
// marker for quiet dates.
func WriteReport(section string, events []reconcile.DateEvent, outDir string) (string, error) {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	path := filepath.Join(outDir, section+"_enrollment.md")
	if err := os.WriteFile(path, []byte(RenderReport(section, events)), 0o644); err != nil {
		return "", fmt.Errorf("failed to write report: %w", err)
	}
	return path, nil
}

// RenderReport builds the Markdown report body.
func RenderReport(section string, events []reconcile.DateEvent) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Enrollment Report: %s\n", strings.ReplaceAll(section, "_", " "))

	for _, event := range events {
		fmt.Fprintf(&b, "\n## %s\n", FormatDateFriendly(event.Date))

		if !event.HasChanges() {
			b.WriteString("\nNo changes\n")
			continue
		}

		writeGroup(&b, "New Students", event.New)
		writeGroup(&b, "Dropped Students", event.Dropped)
		writeGroup(&b, "Withdrawn Students", event.Withdrawn)
	}

	return b.String()
}

func writeGroup(b *strings.Builder, title string, students []roster.Identity) {
	if len(students) == 0 {
		return
	}
	fmt.Fprintf(b, "\n**%s:**\n\n", title)
	for _, s := range students {
		fmt.Fprintf(b, "- %s\n", s)
	}
}

// FormatDateFriendly converts an ISO date string to a human-friendly form
// like "January 13, 2026". Unparseable dates pass through unchanged.
func FormatDateFriendly(date string) string {
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return date
	}
	return t.Format("January 02, 2006")
}
