// SPDX-License-Identifier: MIT
// Package: summit/builder
//
// api.go — public entry-points for the builder package.
//
// Design contract:
//   - One orchestrator: Assemble(bopts, cons...). Creates g, resolves cfg, runs cons in order.
//   - BuildGraph is the canonical composition: Skeleton, LevelRegions, AttachLocations.
//   - Functional options (BuilderOption) resolve into an immutable builderConfig.
//   - Determinism: same inputs/options and constructor order ⇒ identical graphs.
//   - Safety: constructors never panic; they return sentinel errors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/summit/catalog"
	"github.com/katalvlaran/summit/dataset"
	"github.com/katalvlaran/summit/region"
	"github.com/katalvlaran/summit/rules"
)

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. Constructors validate early, return sentinel errors and
// preserve determinism for the same config and call order.
type Constructor func(g *region.Graph, cfg builderConfig) error

// Assemble creates a new region.Graph for the configured player, resolves
// the builder configuration from bopts, and applies all constructors in
// order. Any constructor error is wrapped with "Assemble: %w" and returned
// immediately; the partial graph is discarded.
func Assemble(bopts []BuilderOption, cons ...Constructor) (*region.Graph, error) {
	cfg := newBuilderConfig(bopts...)
	g := region.NewGraph(region.WithPlayer(cfg.player))

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("Assemble: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("Assemble: %w", err)
		}
	}
	if cfg.validate {
		if err := Validate(g); err != nil {
			return nil, fmt.Errorf("Assemble: %w", err)
		}
	}

	return g, nil
}

// BuildGraph builds the canonical region graph: the Menu → Map skeleton,
// one region per side of topo, and every location of locs attached to its
// region. Locations are owned by the returned graph afterwards, so a
// location table can back only one graph.
//
// Errors: ErrBadTopology, ErrUnplacedLocation, catalog.ErrAlreadyOwned,
// ErrUnreachableRegion and dfs.ErrCycleDetected (when validation is on).
func BuildGraph(topo dataset.Topology, locs catalog.LocationTable, opts ...BuilderOption) (*region.Graph, error) {
	return Assemble(opts, Skeleton(), LevelRegions(topo), AttachLocations(locs))
}

// Skeleton adds the Menu and Map regions joined by an ungated entrance.
// Complexity: O(1).
func Skeleton() Constructor {
	return func(g *region.Graph, _ builderConfig) error {
		if g == nil {
			return builderErrorf(MethodSkeleton, "nil graph: %w", ErrConstructFailed)
		}
		for _, name := range []string{MenuRegion, MapRegion} {
			if _, err := g.AddRegion(name); err != nil {
				return builderErrorf(MethodSkeleton, "%w", err)
			}
		}
		if _, err := g.Connect(MenuRegion, MapRegion, "", rules.Always()); err != nil {
			return builderErrorf(MethodSkeleton, "%w", err)
		}

		return nil
	}
}

// LevelRegions adds one region per level side of topo, in table order,
// each entered from Map through SideRule. Requires Skeleton to have run.
// Complexity: O(levels × sides).
func LevelRegions(topo dataset.Topology) Constructor {
	return func(g *region.Graph, cfg builderConfig) error {
		if g == nil {
			return builderErrorf(MethodLevelRegions, "nil graph: %w", ErrConstructFailed)
		}
		if err := topo.Validate(); err != nil {
			return builderErrorf(MethodLevelRegions, "%w: %w", ErrBadTopology, err)
		}
		for _, lvl := range topo.Levels {
			for side := 0; side < lvl.Sides; side++ {
				name := cfg.namer(lvl.Level, side)
				if _, err := g.AddRegion(name); err != nil {
					return builderErrorf(MethodLevelRegions, "%w", err)
				}
				if _, err := g.Connect(MapRegion, name, name, SideRule(topo, lvl.Level, side)); err != nil {
					return builderErrorf(MethodLevelRegions, "%w", err)
				}
			}
		}

		return nil
	}
}

// AttachLocations appends every location of locs, in table order, to the
// region of its level side.
// Complexity: O(locations).
func AttachLocations(locs catalog.LocationTable) Constructor {
	return func(g *region.Graph, cfg builderConfig) error {
		if g == nil {
			return builderErrorf(MethodAttachLocations, "nil graph: %w", ErrConstructFailed)
		}
		for _, loc := range locs.All() {
			name := cfg.namer(loc.Level, loc.Side)
			if !g.HasRegion(name) {
				return builderErrorf(MethodAttachLocations, "%w: %q wants %q", ErrUnplacedLocation, loc.Name, name)
			}
			if err := g.Attach(name, loc); err != nil {
				return builderErrorf(MethodAttachLocations, "%w", err)
			}
		}

		return nil
	}
}

// SideRule is the entrance rule from Map into a level side.
//
//	side 0: open on the first level of topo, else any side of the
//	        previous level complete
//	side 1: the level's cassette
//	side 2: both A-side and B-side crystal hearts of the level
func SideRule(topo dataset.Topology, level, side int) rules.Predicate {
	switch side {
	case 0:
		prev := topo.Previous(level)
		if prev == 0 {
			return rules.Always()
		}
		return rules.HasAny(
			catalog.CompletionName(prev, 0),
			catalog.CompletionName(prev, 1),
			catalog.CompletionName(prev, 2),
		)
	case 1:
		return rules.HasItem(catalog.CassetteName(level), 1)
	case 2:
		return rules.HasAll(catalog.HeartName(level, 0), catalog.HeartName(level, 1))
	}

	return rules.Always()
}
