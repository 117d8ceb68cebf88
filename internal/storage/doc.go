// Package storage provides JSON-based persistence for record snapshots.
//
// Each source page gets its own snapshot file (snapshot_<source>.json) holding the
// records extracted on the previous run, so later runs can report which records are
// new. The default storage location is ~/.local/share/weekender-events/.
package storage
