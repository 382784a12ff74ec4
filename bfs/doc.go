// Package bfs provides breadth-first search over a region.Graph,
// returning entrance-count distances, parent entrances, and visit order.
//
// What
//
//   - Explore regions in non-decreasing distance from a start region.
//   - Returns a BFSResult containing:
//   - Order: visit sequence
//   - Depth: map from region → distance (entrances) from start
//   - Parent: map from region → the entrance that first reached it
//   - Supports hooks at two stages:
//   - OnEnqueue (before a region is enqueued)
//   - OnVisit   (when visiting; may abort with an error)
//   - Allows skipping individual entrances via WithFilterEntrance, for
//     example to follow only entrances whose rule is open for an inventory.
//   - Honors MaxDepth limit (d>0) or explicit "no limit" (d==0).
//
// Determinism
//
//	region.Graph returns outgoing entrances in insertion order and BFS
//	enqueues them in that order, so the visit sequence is reproducible.
//
// Complexity (V = regions, E = entrances)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
package bfs
