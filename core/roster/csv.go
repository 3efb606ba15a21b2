package roster

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"
)

// ReadSnapshotFile reads a single roster capture from a CSV file.
// The date is supplied by the caller (the loader derives it from the
// directory layout), not parsed from the file contents.
//
// The whole snapshot fails on any malformed row or missing required column;
// partial-row recovery is not attempted.
func ReadSnapshotFile(path, date string) (*Snapshot, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	snap, err := ReadSnapshot(f, date)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return snap, nil
}

// ReadSnapshot reads a roster capture from r. See ReadSnapshotFile.
func ReadSnapshot(r io.Reader, date string) (*Snapshot, error) {
	cr := csv.NewReader(r)

	header, err := cr.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("empty roster file")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}
	if len(header) > 0 {
		// Exports from spreadsheet tools often carry a UTF-8 BOM.
		header[0] = strings.TrimPrefix(header[0], "\ufeff")
	}

	index := make(map[string]int, len(header))
	for i, name := range header {
		index[strings.TrimSpace(name)] = i
	}

	required := []string{ColumnID, ColumnStatus, ColumnFirstName, ColumnLastName, ColumnEmail}
	for _, name := range required {
		if _, ok := index[name]; !ok {
			return nil, fmt.Errorf("missing required column %q", name)
		}
	}

	snap := &Snapshot{Date: date, Header: header}
	seen := make(map[string]struct{})
	line := 1

	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read row: %w", err)
		}
		line++

		fields := make(map[string]string, len(header))
		for i, name := range header {
			fields[strings.TrimSpace(name)] = row[i]
		}

		rec := Record{
			ID:         strings.TrimSpace(fields[ColumnID]),
			FirstName:  fields[ColumnFirstName],
			LastName:   fields[ColumnLastName],
			Email:      fields[ColumnEmail],
			Status:     fields[ColumnStatus],
			StatusNote: strings.TrimSpace(fields[ColumnStatusNote]),
			Fields:     fields,
		}

		if rec.ID == "" {
			return nil, fmt.Errorf("row %d: empty %s", line, ColumnID)
		}
		if _, dup := seen[rec.ID]; dup {
			return nil, fmt.Errorf("row %d: duplicate %s %q", line, ColumnID, rec.ID)
		}
		seen[rec.ID] = struct{}{}

		snap.Rows = append(snap.Rows, rec)
	}

	return snap, nil
}
