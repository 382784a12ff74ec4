// Package region provides the region graph: the directed level-progression
// graph whose nodes own locations and whose edges (entrances) are gated by
// rules.Predicate values.
//
// The graph G = (R, E) keeps:
//
//   - Regions in insertion order (Regions() enumerates them exactly as added).
//   - Entrances in insertion order, with per-region outgoing and incoming
//     index lists for O(deg) neighbour queries.
//   - An absent gate stored as rules.Always(), so every entrance can be
//     evaluated independently against any collection state.
//   - Separate sync.RWMutex locks for regions (muRegion) and entrances
//     (muEntrance), acquired in that order when both are needed.
//
// Construction is append-only: regions and entrances are never removed,
// and a location is attached to exactly one region for its lifetime.
//
// Errors:
//
//	ErrEmptyRegionName - region name is "".
//	ErrRegionExists    - a region with that name was already added.
//	ErrRegionNotFound  - an operation referenced an unknown region.
//	ErrSelfEntrance    - an entrance from a region to itself.
//	ErrEntranceExists  - an entrance with that name was already added.
//	ErrNilLocation     - Attach was given a nil location.
package region
