// SPDX-License-Identifier: MIT
// Package: summit/builder
//
// config.go — internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • namer    = RegionName   ("Level 3 B-Side")
//   • validate = true         (Validate runs after BuildGraph)
//   • player   = 1

package builder

import (
	"fmt"

	"github.com/katalvlaran/summit/dataset"
)

// Fixed skeleton region names.
const (
	MenuRegion = "Menu"
	MapRegion  = "Map"
)

// Method tokens used as error prefixes.
const (
	MethodSkeleton        = "Skeleton"
	MethodLevelRegions    = "LevelRegions"
	MethodAttachLocations = "AttachLocations"
	MethodValidate        = "Validate"
)

const defaultPlayer = 1

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors.
type builderConfig struct {
	// namer maps a level side to its region name.
	namer func(level, side int) string
	// validate runs Validate once BuildGraph has applied every constructor.
	validate bool
	// player owns the built graph.
	player int
}

// newBuilderConfig constructs a config with deterministic defaults and
// applies all options in order; last wins.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		namer:    RegionName,
		validate: true,
		player:   defaultPlayer,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// RegionName is the canonical region name of a level side.
func RegionName(level, side int) string {
	return fmt.Sprintf("Level %d %s-Side", level, dataset.SideLetter(side))
}
