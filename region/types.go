// SPDX-License-Identifier: MIT

package region

import (
	"errors"
	"sync"

	"github.com/katalvlaran/summit/catalog"
	"github.com/katalvlaran/summit/rules"
)

// Sentinel errors for region graph operations.
var (
	// ErrEmptyRegionName indicates an empty region name.
	ErrEmptyRegionName = errors.New("region: name is empty")

	// ErrRegionExists indicates a duplicate region name.
	ErrRegionExists = errors.New("region: region already exists")

	// ErrRegionNotFound indicates an operation referenced a non-existent region.
	ErrRegionNotFound = errors.New("region: region not found")

	// ErrSelfEntrance indicates an entrance whose endpoints coincide.
	ErrSelfEntrance = errors.New("region: entrance to itself")

	// ErrEntranceExists indicates a duplicate entrance name.
	ErrEntranceExists = errors.New("region: entrance already exists")

	// ErrNilLocation indicates a nil location passed to Attach.
	ErrNilLocation = errors.New("region: location is nil")
)

// Region is a node of the graph. Its location list only grows.
type Region struct {
	// Name uniquely identifies the region within its Graph.
	Name string

	mu        sync.RWMutex
	locations []*catalog.Location
}

// Locations returns the region's locations in attachment order. The slice
// is a copy; the locations are shared.
func (r *Region) Locations() []*catalog.Location {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return append([]*catalog.Location(nil), r.locations...)
}

// Entrance is a directed, gated connection between two regions.
// Entrances are values: once added they cannot be changed.
type Entrance struct {
	// Name identifies the entrance; by convention the target region name.
	Name string

	// From and To are the source and target region names.
	From string
	To   string

	// Rule gates passage; rules.Always() when ungated.
	Rule rules.Predicate
}

// Open reports whether the entrance can be passed with state s.
func (e Entrance) Open(s rules.State, player int) bool {
	return rules.Evaluate(e.Rule, s, player)
}

// GraphOption configures a Graph before first use.
type GraphOption func(g *Graph)

// WithPlayer records the player id owning the graph.
func WithPlayer(player int) GraphOption {
	return func(g *Graph) { g.player = player }
}

// WithCapacity pre-sizes the region and entrance catalogs.
func WithCapacity(regions, entrances int) GraphOption {
	return func(g *Graph) {
		if regions > 0 {
			g.regions = make(map[string]*Region, regions)
			g.order = make([]string, 0, regions)
		}
		if entrances > 0 {
			g.entrances = make([]Entrance, 0, entrances)
		}
	}
}

// Graph is the region graph of one player.
type Graph struct {
	player int

	muRegion sync.RWMutex
	regions  map[string]*Region
	order    []string

	muEntrance sync.RWMutex
	entrances  []Entrance
	byName     map[string]int
	out        map[string][]int
	in         map[string][]int
}

// NewGraph returns an empty graph with opts applied in order.
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		regions: make(map[string]*Region),
		byName:  make(map[string]int),
		out:     make(map[string][]int),
		in:      make(map[string][]int),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Stats is a snapshot of graph sizes.
type Stats struct {
	Player        int
	RegionCount   int
	EntranceCount int
	LocationCount int
}
