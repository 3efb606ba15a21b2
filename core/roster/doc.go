// Package roster defines the snapshot data model and CSV reading for
// class roster captures.
//
// A Snapshot is one dated capture of a section's roster; a Record is one
// student row. Records keep a small set of typed fields the reconciliation
// engine interprets (id, status, status note, name, email) plus the full
// original row for round-tripping into generated outputs, since source
// systems attach arbitrary extra columns.
//
// Reading is all-or-nothing per capture: a missing required column or a
// malformed row fails the whole snapshot, and the loader's skip policy
// decides what happens next.
package roster
