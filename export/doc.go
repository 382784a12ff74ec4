// Package export publishes what a generation session produced: the data
// package the host serialises (name to id tables and item groups) and a
// per-session summary. Both can be written as JSON or kept in a SQLite
// file.
package export
