// Package bfs provides tunable options and error definitions
// for breadth-first search over a region.Graph.
package bfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/summit/region"
)

// Sentinel errors for BFS execution.
var (
	// ErrStartRegionNotFound is returned when the start region is absent.
	ErrStartRegionNotFound = errors.New("bfs: start region not found")

	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")
)

// Option configures BFS behavior via functional arguments.
// If an Option is invalid (e.g. negative depth), it will be recorded
// internally and surfaced as ErrOptionViolation when BFS is invoked.
type Option func(*BFSOptions)

// BFSOptions holds parameters and callbacks to customize BFS execution.
type BFSOptions struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnEnqueue is called when a region is enqueued, before visiting.
	// Receives region name and its depth from the start.
	OnEnqueue func(name string, depth int)

	// OnVisit is called when visiting a region. If it returns an error,
	// BFS aborts and propagates that error.
	OnVisit func(name string, depth int) error

	// MaxDepth, if > 0, stops exploring beyond this depth.
	// A value of 0 explicitly disables any depth limit.
	MaxDepth int

	// FilterEntrance can skip entrances by returning false.
	FilterEntrance func(e region.Entrance) bool

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns a BFSOptions with sane defaults:
//   - Context.Background()
//   - no depth limit (MaxDepth == 0)
//   - no filtering (every entrance is followed)
//   - no-op hooks (OnEnqueue, OnVisit)
func DefaultOptions() BFSOptions {
	return BFSOptions{
		Ctx:            context.Background(),
		OnEnqueue:      func(string, int) {},
		OnVisit:        func(string, int) error { return nil },
		MaxDepth:       0,
		FilterEntrance: func(region.Entrance) bool { return true },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *BFSOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnEnqueue registers a callback to run on enqueue.
func WithOnEnqueue(fn func(name string, depth int)) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnVisit registers a callback to run on visit; returning an error
// from this callback stops the BFS.
func WithOnVisit(fn func(name string, depth int) error) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth stops the search at the given depth.
//
//	d > 0: limit to depth d
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *BFSOptions) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithFilterEntrance skips entrances when fn returns false.
func WithFilterEntrance(fn func(e region.Entrance) bool) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.FilterEntrance = fn
		}
	}
}

// BFSResult holds the outcome of a BFS traversal:
//   - Order: regions visited, in visit sequence.
//   - Depth: map from region name to its distance (in entrances) from the start.
//   - Parent: map from region name to the entrance it was first reached by.
type BFSResult struct {
	Order  []string
	Depth  map[string]int
	Parent map[string]region.Entrance
}

// Reached reports whether name was visited.
func (r *BFSResult) Reached(name string) bool {
	_, ok := r.Depth[name]
	return ok
}

// PathTo reconstructs the entrance chain from the start region to dest.
// Returns an error if dest was not reached.
func (r *BFSResult) PathTo(dest string) ([]region.Entrance, error) {
	if !r.Reached(dest) {
		return nil, fmt.Errorf("bfs: no path to %q", dest)
	}
	var path []region.Entrance
	for cur := dest; ; {
		e, ok := r.Parent[cur]
		if !ok {
			break
		}
		path = append(path, e)
		cur = e.From
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
