package world

import (
	"fmt"
	"io"
	"log"
	"sync"

	"github.com/google/uuid"

	"github.com/katalvlaran/summit/builder"
	"github.com/katalvlaran/summit/catalog"
	"github.com/katalvlaran/summit/dataset"
	"github.com/katalvlaran/summit/options"
	"github.com/katalvlaran/summit/policy"
	"github.com/katalvlaran/summit/region"
)

// Option configures a Session at construction.
type Option func(*Session)

// WithLogger routes phase logs to l's writer, keeping its prefix and
// flags. A nil logger is ignored.
func WithLogger(l *log.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.log = l
		}
	}
}

// WithPlayer sets the player id that owns the session's graph. Panics if
// id < 1.
func WithPlayer(id int) Option {
	if id < 1 {
		panic("world: WithPlayer(id<1)")
	}
	return func(s *Session) { s.player = id }
}

// WithID overrides the generated session id. Useful for reproducible
// exports; ids must still be unique per live session.
func WithID(id string) Option {
	return func(s *Session) {
		if id != "" {
			s.id = id
		}
	}
}

// WithBuilderOptions forwards options to builder.BuildGraph.
func WithBuilderOptions(opts ...builder.BuilderOption) Option {
	return func(s *Session) { s.bopts = append(s.bopts, opts...) }
}

// Session is one player's generation run. Its methods are safe for
// concurrent use but steps still run strictly in order.
type Session struct {
	id     string
	player int
	data   dataset.Dataset
	log    *log.Logger
	bopts  []builder.BuilderOption
	cache  *catalog.Cache

	mu         sync.Mutex
	phase      Phase
	err        error
	cfg        options.Config
	items      catalog.ItemTable
	locations  catalog.LocationTable
	graph      *region.Graph
	pool       []catalog.Item
	placements []policy.Placement
}

// NewSession returns an Unconfigured session over data.
func NewSession(data dataset.Dataset, opts ...Option) *Session {
	s := &Session{
		id:     uuid.NewString(),
		player: 1,
		data:   data,
		log:    log.New(io.Discard, "", 0),
	}
	for _, opt := range opts {
		opt(s)
	}
	// A private logger keeps the session tag off a caller's shared logger.
	s.log = log.New(s.log.Writer(), s.log.Prefix()+"["+s.id[:min(8, len(s.id))]+"] ", s.log.Flags())
	s.cache = catalog.NewCache(s.id)

	return s
}

// step runs fn if the session is in phase from, then moves it to the
// next phase, or to Failed if fn errs.
func (s *Session) step(from Phase, name string, fn func() error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch {
	case s.phase == Failed:
		return fmt.Errorf("%w: %s: %w", ErrSessionFailed, name, s.err)
	case s.phase != from:
		return fmt.Errorf("%w: %s needs %s, session is %s", ErrPhase, name, from, s.phase)
	}
	if err := fn(); err != nil {
		s.phase, s.err = Failed, err
		s.log.Printf("%s failed: %v", name, err)
		return fmt.Errorf("world: %s: %w", name, err)
	}
	s.phase = from + 1
	s.log.Printf("%s → %s", name, s.phase)

	return nil
}

// ResolveOptions clamps o into range and derives the completion level.
func (s *Session) ResolveOptions(o options.Options) error {
	return s.step(Unconfigured, "ResolveOptions", func() error {
		cfg, err := options.Resolve(o.Clamp())
		if err != nil {
			return err
		}
		s.cfg = cfg
		s.log.Printf("goal %s, completion level %d", cfg.Options.Goal, cfg.CompletionLevel)
		return nil
	})
}

// BuildCatalogues builds, or reuses from the session cache, the item and
// location catalogs. The dataset must carry the A-side completion of the
// completion level, since that item is what wins the session.
func (s *Session) BuildCatalogues() error {
	return s.step(OptionsResolved, "BuildCatalogues", func() error {
		if err := s.data.Validate(); err != nil {
			return err
		}
		goal := catalog.CompletionName(s.cfg.CompletionLevel, 0)
		if row, ok := s.data.Get(goal); !ok || row.Category != dataset.Completion {
			return fmt.Errorf("%w: %q missing from dataset", catalog.ErrUnknownItem, goal)
		}
		key := s.cache.KeyFor(s.data, s.cfg)
		items, err := s.cache.Items(key, s.data, s.cfg)
		if err != nil {
			return err
		}
		locs, err := s.cache.Locations(key, s.data, s.cfg)
		if err != nil {
			return err
		}
		s.items, s.locations = items, locs
		s.log.Printf("%d items, %d locations", items.Len(), locs.Len())
		return nil
	})
}

// CreateRegions builds the region graph and attaches every location.
func (s *Session) CreateRegions() error {
	return s.step(CataloguesBuilt, "CreateRegions", func() error {
		opts := append(append([]builder.BuilderOption(nil), s.bopts...), builder.WithPlayer(s.player))
		g, err := builder.BuildGraph(s.data.Topology, s.locations, opts...)
		if err != nil {
			return err
		}
		s.graph = g
		st := g.Stats()
		s.log.Printf("%d regions, %d entrances", st.RegionCount, st.EntranceCount)
		return nil
	})
}

// CreateItems prunes the item table down to the shuffled pool.
func (s *Session) CreateItems() error {
	return s.step(GraphBuilt, "CreateItems", func() error {
		s.pool = policy.Prune(s.items.All(), s.cfg.CompletionLevel)
		s.log.Printf("pool of %d items", len(s.pool))
		return nil
	})
}

// PreFill locks the victory items into their locations.
func (s *Session) PreFill() error {
	return s.step(PoolPruned, "PreFill", func() error {
		placed, err := policy.LockVictoryItems(s.locations, s.items, s.cfg.CompletionLevel)
		if err != nil {
			return err
		}
		s.placements = placed
		s.log.Printf("%d locked placements", len(placed))
		return nil
	})
}

// Finish closes the session.
func (s *Session) Finish() error {
	return s.step(VictoryLocked, "Finish", func() error { return nil })
}

// Generate runs every step in order from an Unconfigured session.
func (s *Session) Generate(o options.Options) error {
	steps := []func() error{
		func() error { return s.ResolveOptions(o) },
		s.BuildCatalogues,
		s.CreateRegions,
		s.CreateItems,
		s.PreFill,
		s.Finish,
	}
	for _, fn := range steps {
		if err := fn(); err != nil {
			return err
		}
	}

	return nil
}
