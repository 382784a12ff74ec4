package dfs

import (
	"fmt"

	"github.com/katalvlaran/summit/region"
)

// dfsWalker encapsulates state during DFS.
type dfsWalker struct {
	graph *region.Graph
	opts  DFSOptions
	res   *DFSResult
}

// DFS performs depth-first search on g from start, following outgoing
// entrances in insertion order. Entrance rules are not evaluated.
//
// Errors:
//
//   - ErrGraphNil               if g is nil.
//   - ErrStartRegionNotFound    if start is missing.
//   - context.Canceled          if ctx is done.
//   - any error returned by OnVisit or OnExit.
func DFS(g *region.Graph, start string, opts ...Option) (*DFSResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	dopts := DefaultOptions()
	for _, fn := range opts {
		fn(&dopts)
	}
	if !g.HasRegion(start) {
		return nil, fmt.Errorf("%w: %q", ErrStartRegionNotFound, start)
	}

	n := g.Stats().RegionCount
	w := &dfsWalker{graph: g, opts: dopts, res: &DFSResult{
		Order:  make([]string, 0, n),
		Depth:  make(map[string]int, n),
		Parent: make(map[string]string, n),
	}}
	if err := w.traverse(start, 0); err != nil {
		return w.res, err
	}
	w.res.SkippedTargets = w.opts.SkippedTargets

	return w.res, nil
}

// traverse visits name at depth, recursing to entrance targets.
func (w *dfsWalker) traverse(name string, depth int) error {
	select {
	case <-w.opts.Ctx.Done():
		return w.opts.Ctx.Err()
	default:
	}
	if w.opts.MaxDepth >= 0 && depth > w.opts.MaxDepth {
		return nil
	}

	w.res.Depth[name] = depth
	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(name); err != nil {
			w.res.Order = nil
			return fmt.Errorf("dfs: OnVisit hook for %q: %w", name, err)
		}
	}

	targets, err := w.graph.NeighborIDs(name)
	if err != nil {
		w.res.Order = nil
		return fmt.Errorf("%w: %v", ErrNeighborFetch, err)
	}
	for _, to := range targets {
		if w.opts.FilterTarget != nil && !w.opts.FilterTarget(to) {
			w.opts.SkippedTargets++
			continue
		}
		if w.res.Visited(to) {
			continue
		}
		w.res.Parent[to] = name
		if err = w.traverse(to, depth+1); err != nil {
			return err
		}
	}

	if w.opts.OnExit != nil {
		if err = w.opts.OnExit(name); err != nil {
			w.res.Order = nil
			return fmt.Errorf("dfs: OnExit hook for %q: %w", name, err)
		}
	}
	w.res.Order = append(w.res.Order, name)

	return nil
}
