// Package archive persists computed enrollment lifecycles to MySQL so the
// history survives roster directory cleanups. The archive is strictly an
// output sink: reconciliation always recomputes from the snapshot files and
// never reads this table.
package archive
