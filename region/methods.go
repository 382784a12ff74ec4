// SPDX-License-Identifier: MIT

package region

import (
	"fmt"

	"github.com/katalvlaran/summit/catalog"
	"github.com/katalvlaran/summit/rules"
)

// Player returns the owning player id.
func (g *Graph) Player() int { return g.player }

// AddRegion appends a new region. Names are unique.
func (g *Graph) AddRegion(name string) (*Region, error) {
	if name == "" {
		return nil, ErrEmptyRegionName
	}

	g.muRegion.Lock()
	defer g.muRegion.Unlock()

	if _, exists := g.regions[name]; exists {
		return nil, fmt.Errorf("%w: %q", ErrRegionExists, name)
	}
	r := &Region{Name: name}
	g.regions[name] = r
	g.order = append(g.order, name)

	return r, nil
}

// HasRegion reports whether name is a region of g.
func (g *Graph) HasRegion(name string) bool {
	g.muRegion.RLock()
	defer g.muRegion.RUnlock()
	_, ok := g.regions[name]

	return ok
}

// Region returns the region called name.
func (g *Graph) Region(name string) (*Region, error) {
	g.muRegion.RLock()
	defer g.muRegion.RUnlock()

	r, ok := g.regions[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrRegionNotFound, name)
	}

	return r, nil
}

// Regions returns region names in insertion order.
func (g *Graph) Regions() []string {
	g.muRegion.RLock()
	defer g.muRegion.RUnlock()

	return append([]string(nil), g.order...)
}

// Connect adds an entrance from → to gated by rule. An empty name
// defaults to the target region's name.
func (g *Graph) Connect(from, to, name string, rule rules.Predicate) (Entrance, error) {
	if from == to {
		return Entrance{}, fmt.Errorf("%w: %q", ErrSelfEntrance, from)
	}
	if name == "" {
		name = to
	}

	g.muRegion.RLock()
	_, okFrom := g.regions[from]
	_, okTo := g.regions[to]
	g.muRegion.RUnlock()
	if !okFrom {
		return Entrance{}, fmt.Errorf("%w: %q", ErrRegionNotFound, from)
	}
	if !okTo {
		return Entrance{}, fmt.Errorf("%w: %q", ErrRegionNotFound, to)
	}

	g.muEntrance.Lock()
	defer g.muEntrance.Unlock()

	if _, exists := g.byName[name]; exists {
		return Entrance{}, fmt.Errorf("%w: %q", ErrEntranceExists, name)
	}
	e := Entrance{Name: name, From: from, To: to, Rule: rule}
	idx := len(g.entrances)
	g.entrances = append(g.entrances, e)
	g.byName[name] = idx
	g.out[from] = append(g.out[from], idx)
	g.in[to] = append(g.in[to], idx)

	return e, nil
}

// Entrance returns the entrance called name.
func (g *Graph) Entrance(name string) (Entrance, bool) {
	g.muEntrance.RLock()
	defer g.muEntrance.RUnlock()

	i, ok := g.byName[name]
	if !ok {
		return Entrance{}, false
	}

	return g.entrances[i], true
}

// Entrances returns every entrance in insertion order.
func (g *Graph) Entrances() []Entrance {
	g.muEntrance.RLock()
	defer g.muEntrance.RUnlock()

	return append([]Entrance(nil), g.entrances...)
}

// Outgoing returns the entrances leaving region name, in insertion order.
func (g *Graph) Outgoing(name string) ([]Entrance, error) {
	return g.adjacent(name, g.out)
}

// Incoming returns the entrances reaching region name, in insertion order.
func (g *Graph) Incoming(name string) ([]Entrance, error) {
	return g.adjacent(name, g.in)
}

func (g *Graph) adjacent(name string, index map[string][]int) ([]Entrance, error) {
	if !g.HasRegion(name) {
		return nil, fmt.Errorf("%w: %q", ErrRegionNotFound, name)
	}

	g.muEntrance.RLock()
	defer g.muEntrance.RUnlock()

	idx := index[name]
	out := make([]Entrance, len(idx))
	for i, j := range idx {
		out[i] = g.entrances[j]
	}

	return out, nil
}

// NeighborIDs returns the targets of the entrances leaving name, in
// insertion order. Parallel entrances yield repeated targets.
func (g *Graph) NeighborIDs(name string) ([]string, error) {
	es, err := g.Outgoing(name)
	if err != nil {
		return nil, err
	}
	out := make([]string, len(es))
	for i, e := range es {
		out[i] = e.To
	}

	return out, nil
}

// Attach appends loc to region name and records the region as its parent.
// A location already owned by any region is rejected.
func (g *Graph) Attach(name string, loc *catalog.Location) error {
	if loc == nil {
		return ErrNilLocation
	}
	r, err := g.Region(name)
	if err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if err = loc.SetParent(name); err != nil {
		return fmt.Errorf("region: Attach(%q): %w", name, err)
	}
	r.locations = append(r.locations, loc)

	return nil
}

// Locations returns every attached location, region by region in
// insertion order.
func (g *Graph) Locations() []*catalog.Location {
	var out []*catalog.Location
	for _, name := range g.Regions() {
		r, err := g.Region(name)
		if err != nil {
			continue
		}
		out = append(out, r.Locations()...)
	}

	return out
}

// Stats returns a snapshot of the graph sizes.
func (g *Graph) Stats() Stats {
	s := Stats{Player: g.player}

	g.muRegion.RLock()
	s.RegionCount = len(g.order)
	for _, r := range g.regions {
		r.mu.RLock()
		s.LocationCount += len(r.locations)
		r.mu.RUnlock()
	}
	g.muRegion.RUnlock()

	g.muEntrance.RLock()
	s.EntranceCount = len(g.entrances)
	g.muEntrance.RUnlock()

	return s
}
