// Package loader discovers roster capture files on disk and turns them into
// ordered section timelines.
//
// The expected layout is one dated subdirectory per capture day, each
// holding one CSV per section:
//
//	rosters/
//	  2026-01-13/
//	    MATH-UA_122_001_1264.csv
//	  2026-01-14/
//	    MATH-UA_122_001_1264.csv
//
// FindRosterFiles groups files by section and sorts them by date.
// LoadSection reads each file into a per-file Result (snapshot or error),
// and Readable applies the skip-and-continue policy: failures are logged
// and excluded, successes flow to the reconciliation walks.
package loader
