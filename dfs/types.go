// Package dfs defines types and options for depth-first search traversal,
// including cancellation, pre-/post-order hooks, depth limiting, and
// entrance filtering.
package dfs

import (
	"context"
	"errors"
)

// Visitation states of a region.
const (
	White = iota // White: the region has not been visited yet.
	Gray         // Gray: the region is on the recursion stack.
	Black        // Black: the region and all its descendants are done.
)

var (
	// ErrGraphNil is returned when a nil *region.Graph is passed to DFS
	// or TopologicalSort.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrStartRegionNotFound indicates that the start region does not
	// exist in the graph.
	ErrStartRegionNotFound = errors.New("dfs: start region not found")

	// ErrCycleDetected indicates that a cycle was encountered during
	// TopologicalSort.
	ErrCycleDetected = errors.New("dfs: cycle detected")

	// ErrNeighborFetch indicates a failure to retrieve entrances from the graph.
	ErrNeighborFetch = errors.New("dfs: failed to fetch entrances")
)

// Option configures optional behavior of DFS traversal.
type Option func(*DFSOptions)

// DFSOptions holds configurable parameters for DFS traversal.
type DFSOptions struct {
	// Ctx allows cancellation or timeouts; defaults to context.Background().
	Ctx context.Context

	// OnVisit, if non-nil, is invoked on discovering a region (pre-order).
	// Returning an error aborts traversal with that error.
	OnVisit func(name string) error

	// OnExit, if non-nil, is invoked after all descendants of a region
	// have been explored (post-order), before appending to result.Order.
	OnExit func(name string) error

	// MaxDepth, if non-negative, limits recursion to the given depth.
	// A depth of 0 visits only the start region. Default is -1 (no limit).
	MaxDepth int

	// FilterTarget, if non-nil, is called for each entrance target before
	// recursing. Return false to skip it.
	FilterTarget func(name string) bool

	// SkippedTargets counts targets skipped by FilterTarget.
	SkippedTargets int
}

// DefaultOptions returns a DFSOptions struct with a Background context,
// no hooks, no depth limit and no filtering.
func DefaultOptions() DFSOptions {
	return DFSOptions{
		Ctx:      context.Background(),
		MaxDepth: -1,
	}
}

// WithContext returns an Option that sets the Context for DFS traversal.
// Passing a nil context has no effect.
func WithContext(ctx context.Context) Option {
	return func(o *DFSOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit installs fn as a pre-order hook.
func WithOnVisit(fn func(name string) error) Option {
	return func(o *DFSOptions) {
		o.OnVisit = fn
	}
}

// WithOnExit installs fn as a post-order hook.
func WithOnExit(fn func(name string) error) Option {
	return func(o *DFSOptions) {
		o.OnExit = fn
	}
}

// WithMaxDepth limits traversal depth to limit.
func WithMaxDepth(limit int) Option {
	return func(o *DFSOptions) {
		o.MaxDepth = limit
	}
}

// WithFilterTarget skips entrance targets for which fn returns false.
func WithFilterTarget(fn func(name string) bool) Option {
	return func(o *DFSOptions) {
		o.FilterTarget = fn
	}
}

// DFSResult captures the outcome of a depth-first traversal.
type DFSResult struct {
	// Order records regions in the sequence they finished (post-order).
	Order []string

	// Depth maps each region to its tree depth from the start.
	Depth map[string]int

	// Parent maps each region to the region it was first discovered from.
	Parent map[string]string

	// SkippedTargets reports how many targets FilterTarget rejected.
	SkippedTargets int
}

// Visited reports whether name was reached.
func (r *DFSResult) Visited(name string) bool {
	_, ok := r.Depth[name]
	return ok
}
