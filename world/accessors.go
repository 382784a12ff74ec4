package world

import (
	"github.com/katalvlaran/summit/catalog"
	"github.com/katalvlaran/summit/options"
	"github.com/katalvlaran/summit/policy"
	"github.com/katalvlaran/summit/region"
	"github.com/katalvlaran/summit/rules"
)

// ID returns the session id.
func (s *Session) ID() string { return s.id }

// Player returns the owning player id.
func (s *Session) Player() int { return s.player }

// Phase returns the current phase.
func (s *Session) Phase() Phase {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.phase
}

// Err returns the error that failed the session, if any.
func (s *Session) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.err
}

// Config returns the resolved configuration.
func (s *Session) Config() options.Config {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.cfg
}

// Items returns the item catalog, empty before BuildCatalogues.
func (s *Session) Items() catalog.ItemTable {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.items
}

// Locations returns the location catalog, empty before BuildCatalogues.
func (s *Session) Locations() catalog.LocationTable {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.locations
}

// Graph returns the region graph, nil before CreateRegions.
func (s *Session) Graph() *region.Graph {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.graph
}

// Pool returns a copy of the shuffled item pool.
func (s *Session) Pool() []catalog.Item {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]catalog.Item(nil), s.pool...)
}

// Placements returns a copy of the locked placements.
func (s *Session) Placements() []policy.Placement {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]policy.Placement(nil), s.placements...)
}

// Groups returns the item groups published for group-count queries.
func (s *Session) Groups() map[string][]string {
	return s.Items().Groups()
}

// CreateItem mints the named item from the session cache. Unknown names,
// or any name before BuildCatalogues, yield catalog.ErrUnknownItem.
func (s *Session) CreateItem(name string) (catalog.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.phase < CataloguesBuilt || s.phase == Failed {
		return s.items.Create(name)
	}
	items, err := s.cache.Items(s.cache.KeyFor(s.data, s.cfg), s.data, s.cfg)
	if err != nil {
		return catalog.Item{}, err
	}

	return items.Create(name)
}

// CacheStats reports how often the session reused its catalogs.
func (s *Session) CacheStats() catalog.CacheStats { return s.cache.Stats() }

// SlotData is the settings summary published to the client: the four
// integer requirements, keyed as in options.Ranges.
func (s *Session) SlotData() map[string]int {
	return s.Config().Options.Values()
}

// CompletionCondition is the win predicate of the session.
func (s *Session) CompletionCondition() rules.Predicate {
	return policy.CompletionCondition(s.Config().CompletionLevel)
}
