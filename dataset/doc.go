// Package dataset loads the static per-level table that every catalog in
// summit is built from.
//
// A dataset is a list of rows {name, id, type, level, side} plus a level
// topology telling how many sides (A, B, C) each level has. Rows can be
// read from CSV or from a JSON records array; the topology is YAML.
//
// Loading is all-or-nothing: a missing column, an unknown type, a bad
// number or a duplicate name/id aborts the whole load and no rows are
// returned.
//
// Errors:
//
//	ErrMissingColumn - a required column is absent from the header or record.
//	ErrMalformedRow  - a value cannot be parsed or is out of range.
//	ErrUnknownType   - the type column is not CASSETTE|COMPLETION|GEMHEART|STRAWBERRY.
//	ErrDuplicate     - two rows share a name or an id.
//	ErrBadTopology   - the level table is empty, unordered or out of range.
//
// The canonical Celeste data is embedded and available through Default.
package dataset
