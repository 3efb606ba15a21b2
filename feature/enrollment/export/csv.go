package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"roster-manager/core/reconcile"
)

// Columns appended to the cumulative roster output.
const (
	ColumnEnrollmentDate = "Enrollment Date"
	ColumnDroppedDate    = "Dropped Date"
)

// WriteRoster serializes a cumulative roster to
// <outDir>/<runDate>/<section>_enrollment.csv, appending the enrollment and
// dropped date columns to the capture's original header. Empty dates mean
// the fact was never observed.
func WriteRoster(result *reconcile.RosterResult, outDir, runDate string) (string, error) {
	dir := filepath.Join(outDir, runDate)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	path := filepath.Join(dir, result.Section+"_enrollment.csv")
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create roster file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)

	header := append(slices.Clone(result.Header), ColumnEnrollmentDate, ColumnDroppedDate)
	if err := w.Write(header); err != nil {
		return "", fmt.Errorf("failed to write header: %w", err)
	}

	for _, row := range result.Rows {
		out := make([]string, 0, len(header))
		for _, col := range result.Header {
			// Field keys are trimmed column names; headers may carry
			// stray whitespace from the source export.
			out = append(out, row.Fields[strings.TrimSpace(col)])
		}
		out = append(out, row.EnrolledDate, row.DroppedDate)
		if err := w.Write(out); err != nil {
			return "", fmt.Errorf("failed to write row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return "", fmt.Errorf("failed to flush roster file: %w", err)
	}

	return path, nil
}
