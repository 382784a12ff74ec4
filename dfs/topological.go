package dfs

import (
	"context"
	"fmt"
	"strings"

	"github.com/katalvlaran/summit/region"
)

// TopoOption configures optional behavior for TopologicalSort.
type TopoOption func(*topoOptions)

type topoOptions struct {
	ctx context.Context
}

func defaultTopoOptions() topoOptions {
	return topoOptions{ctx: context.Background()}
}

// WithCancelContext returns a TopoOption that sets the cancellation context.
// Passing a nil context has no effect.
func WithCancelContext(ctx context.Context) TopoOption {
	return func(o *topoOptions) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

// topoSorter encapsulates state for a topological sort traversal.
type topoSorter struct {
	graph *region.Graph
	opts  topoOptions
	state map[string]int
	stack []string // gray path, used to name a cycle
	order []string // post-order
}

// TopologicalSort orders every region of g so that each entrance leads
// from an earlier region to a later one. Roots are taken in insertion
// order, so the result is deterministic for a deterministically built graph.
//
// A cycle yields an error wrapping ErrCycleDetected that names the
// regions on it.
func TopologicalSort(g *region.Graph, options ...TopoOption) ([]string, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	opts := defaultTopoOptions()
	for _, opt := range options {
		opt(&opts)
	}

	regions := g.Regions()
	sorter := &topoSorter{
		graph: g,
		opts:  opts,
		state: make(map[string]int, len(regions)),
		order: make([]string, 0, len(regions)),
	}
	for _, r := range regions {
		if sorter.state[r] == White {
			if err := sorter.visit(r); err != nil {
				return nil, err
			}
		}
	}
	for i, j := 0, len(sorter.order)-1; i < j; i, j = i+1, j-1 {
		sorter.order[i], sorter.order[j] = sorter.order[j], sorter.order[i]
	}

	return sorter.order, nil
}

func (t *topoSorter) visit(name string) error {
	select {
	case <-t.opts.ctx.Done():
		return t.opts.ctx.Err()
	default:
	}
	switch t.state[name] {
	case Gray:
		return fmt.Errorf("%w: %s", ErrCycleDetected, t.cycleFrom(name))
	case Black:
		return nil
	}
	t.state[name] = Gray
	t.stack = append(t.stack, name)

	targets, err := t.graph.NeighborIDs(name)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrNeighborFetch, err)
	}
	for _, to := range targets {
		if err = t.visit(to); err != nil {
			return err
		}
	}

	t.stack = t.stack[:len(t.stack)-1]
	t.state[name] = Black
	t.order = append(t.order, name)

	return nil
}

// cycleFrom renders the gray path from name back to itself.
func (t *topoSorter) cycleFrom(name string) string {
	for i := len(t.stack) - 1; i >= 0; i-- {
		if t.stack[i] == name {
			path := append(append([]string(nil), t.stack[i:]...), name)
			return strings.Join(path, " → ")
		}
	}

	return name
}
