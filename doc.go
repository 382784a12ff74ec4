// Package summit is the logic layer of the Celeste world for a multiworld
// item randomizer: it turns a per-level dataset into item and location
// catalogs and a region graph whose entrances are gated by predicates
// over a player's collected items.
//
// What is inside
//
//	• Dataset: level rows (CSV or JSON) and the level topology (YAML)
//	• Options: four requirements and a goal, from YAML player files
//	• Rules: HasItem, HasAny, HasAll, HasGroup and And predicates
//	• Catalogs: items with classifications, locations with access rules
//	• Region graph: Menu → Map → one region per level side
//	• Policy: pool pruning, victory item locking, completion condition
//	• Sessions: a one-way state machine running all of the above
//
// Packages:
//
//	dataset/ - rows, categories, topology, embedded canonical data
//	options/ - option ranges, goals, player files
//	rules/   - predicates, evaluation, in-memory inventory
//	catalog/ - item and location tables, name tables, session cache
//	region/  - thread-safe region graph
//	builder/ - constructors assembling the region graph
//	bfs/     - breadth-first walks over regions
//	dfs/     - depth-first walks and topological order
//	policy/  - victory arrangement
//	world/   - generation sessions
//	export/  - data package and SQLite session store
//
// The canonical graph, abridged:
//
//	Menu ── Map ──┬── Level 1 A-Side
//	              ├── Level 1 B-Side   has("Level 1 A-Side Cassette")
//	              ├── Level 1 C-Side   has_all(A and B crystal hearts)
//	              ├── Level 2 A-Side   has_any(any level 1 completion)
//	              └── …
//
//	go run ./cmd/summit player.yaml
package summit
