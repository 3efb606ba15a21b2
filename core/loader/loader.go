package loader

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"roster-manager/core/roster"

	"go.uber.org/zap"
)

// DatedFile is one roster capture file discovered on disk.
type DatedFile struct {
	// Date is the name of the dated subdirectory containing the file
	// (ISO-8601, which makes lexical order chronological order).
	Date string
	Path string
}

// FindRosterFiles walks a rosters directory laid out as
// <dir>/<YYYY-MM-DD>/<SECTION>.csv and groups the capture files by section.
// Each section's list is sorted ascending by date, ties broken by path.
func FindRosterFiles(dir string) (map[string][]DatedFile, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read rosters directory: %w", err)
	}

	sections := make(map[string][]DatedFile)

	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		date := entry.Name()

		files, err := os.ReadDir(filepath.Join(dir, date))
		if err != nil {
			return nil, fmt.Errorf("failed to read date directory %s: %w", date, err)
		}

		for _, file := range files {
			if file.IsDir() || !strings.EqualFold(filepath.Ext(file.Name()), ".csv") {
				continue
			}
			section := strings.TrimSuffix(file.Name(), filepath.Ext(file.Name()))
			sections[section] = append(sections[section], DatedFile{
				Date: date,
				Path: filepath.Join(dir, date, file.Name()),
			})
		}
	}

	for _, files := range sections {
		sort.Slice(files, func(i, j int) bool {
			if files[i].Date != files[j].Date {
				return files[i].Date < files[j].Date
			}
			return files[i].Path < files[j].Path
		})
	}

	return sections, nil
}

// Sections returns the section names of a discovery result in sorted order,
// for deterministic batch processing.
func Sections(found map[string][]DatedFile) []string {
	names := make([]string, 0, len(found))
	for name := range found {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Result is the outcome of reading one capture file: either a snapshot or
// the reason it could not be read. Making the per-file outcome explicit is
// what keeps the skip policy visible to callers instead of buried in
// control flow.
type Result struct {
	Date     string
	Path     string
	Snapshot *roster.Snapshot
	Err      error
}

// LoadSection reads every capture file of one section, in order, and
// returns one Result per file. Read failures never abort the section.
func LoadSection(files []DatedFile) []Result {
	results := make([]Result, 0, len(files))
	for _, f := range files {
		snap, err := roster.ReadSnapshotFile(f.Path, f.Date)
		results = append(results, Result{Date: f.Date, Path: f.Path, Snapshot: snap, Err: err})
	}
	return results
}

// Readable logs failed results and forwards the successfully read snapshots
// in order. Skipped captures are invisible to the downstream walks: the
// drop comparison baseline stays the last readable snapshot.
func Readable(results []Result, log *zap.Logger) []roster.Snapshot {
	snapshots := make([]roster.Snapshot, 0, len(results))
	for _, res := range results {
		if res.Err != nil {
			log.Error("Skipping unreadable roster capture",
				zap.String("date", res.Date),
				zap.String("path", res.Path),
				zap.Error(res.Err),
			)
			continue
		}
		snapshots = append(snapshots, *res.Snapshot)
	}
	return snapshots
}
