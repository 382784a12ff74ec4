// Package dfs implements depth-first traversal and topological sort on a
// region.Graph.
//
//   - DFS explores as far as possible along each entrance chain before
//     backtracking, with pre- and post-order hooks, cancellation, depth
//     limiting and target filtering.
//   - TopologicalSort computes a linear ordering of regions such that every
//     entrance leads forward, returning ErrCycleDetected if a cycle exists.
//
// Neither walk evaluates entrance rules; they check the shape of the
// graph, not what an inventory can reach.
//
// Complexity:
//
//   - Time:   O(V + E)
//   - Memory: O(V) for the recursion stack and state maps.
package dfs
