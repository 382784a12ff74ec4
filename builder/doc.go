// Package builder assembles the region graph of one player from a level
// topology and a location catalog.
//
// The graph has a fixed skeleton, Menu → Map, and one region per level
// side named "Level {level} {A|B|C}-Side", each entered from Map through
// a gated entrance:
//
//   - A-side: open on the first level; otherwise any side of the previous
//     level must be complete.
//   - B-side: the level's A-side cassette.
//   - C-side: both the A-side and the B-side crystal hearts of the level.
//
// Every location is then attached to the region of its (level, side).
//
// The package offers the following key components:
//
//   - Orchestration:
//     – BuildGraph:       the canonical Skeleton, LevelRegions, AttachLocations run.
//     – Assemble:         runs any sequence of Constructor closures in order.
//   - Constructors:
//     – Skeleton, LevelRegions, AttachLocations.
//   - Configuration primitives:
//     – BuilderOption:    WithRegionNamer, WithValidation, WithPlayer.
//   - Structural validation:
//     – Validate:         every region reachable from Menu, no cycles.
//
// Guarantees:
//
//   - Determinism: the same topology, locations and options yield the same
//     region order, entrance order and entrance rules.
//   - Fast-fail on invalid option parameters via panics in option constructors.
//   - Sentinel errors for construction failures, wrapped with %w.
package builder
