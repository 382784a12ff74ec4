package bfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/summit/region"
)

// ErrNeighbors is returned when fetching entrances from the graph fails.
var ErrNeighbors = errors.New("bfs: entrance iteration error")

// queueItem pairs a region name with its BFS depth.
type queueItem struct {
	name  string
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	graph *region.Graph
	opts  BFSOptions
	ctx   context.Context
	queue []queueItem
	res   *BFSResult
}

// BFS runs breadth-first search on g starting from start,
// applying any number of functional Options.
// Returns ErrGraphNil or ErrStartRegionNotFound for invalid input,
// ErrOptionViolation for bad options, ErrNeighbors for graph failures,
// or any user-supplied hook error.
func BFS(g *region.Graph, start string, opts ...Option) (*BFSResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.HasRegion(start) {
		return nil, fmt.Errorf("%w: %q", ErrStartRegionNotFound, start)
	}

	n := g.Stats().RegionCount
	w := &walker{
		graph: g,
		opts:  o,
		ctx:   o.Ctx,
		queue: make([]queueItem, 0, n),
		res: &BFSResult{
			Order:  make([]string, 0, n),
			Depth:  make(map[string]int, n),
			Parent: make(map[string]region.Entrance, n),
		},
	}

	w.enqueue(start, 0)
	return w.res, w.loop()
}

// enqueue marks name seen at depth d and adds it to the queue.
func (w *walker) enqueue(name string, d int) {
	w.res.Depth[name] = d
	w.opts.OnEnqueue(name, d)
	w.queue = append(w.queue, queueItem{name: name, depth: d})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]
		w.res.Order = append(w.res.Order, item.name)
		if err := w.opts.OnVisit(item.name, item.depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %q: %w", item.name, err)
		}
		if err := w.enqueueNeighbors(item); err != nil {
			return err
		}
	}

	return nil
}

// enqueueNeighbors follows the outgoing entrances of item in insertion
// order, applying the filter and MaxDepth.
func (w *walker) enqueueNeighbors(item queueItem) error {
	next := item.depth + 1
	if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
		return nil
	}
	out, err := w.graph.Outgoing(item.name)
	if err != nil {
		return fmt.Errorf("%w: entrances of %q: %v", ErrNeighbors, item.name, err)
	}
	for _, e := range out {
		if !w.opts.FilterEntrance(e) {
			continue
		}
		if _, seen := w.res.Depth[e.To]; seen {
			continue
		}
		w.res.Parent[e.To] = e
		w.enqueue(e.To, next)
	}

	return nil
}
