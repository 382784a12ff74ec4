// SPDX-License-Identifier: MIT
// Package: summit/builder
//
// options.go — functional options for the builder package.
//
// Contract:
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors validate and panic on meaningless inputs.
//     Constructors themselves never panic.

package builder

// BuilderOption customizes construction by mutating a builderConfig
// before the first constructor runs.
type BuilderOption func(*builderConfig)

// WithRegionNamer overrides how level sides are named. LevelRegions and
// AttachLocations share it, so locations always land in the renamed
// regions. Panics on nil.
func WithRegionNamer(fn func(level, side int) string) BuilderOption {
	if fn == nil {
		panic("builder: WithRegionNamer(nil)")
	}
	return func(c *builderConfig) {
		c.namer = fn
	}
}

// WithValidation toggles the structural check BuildGraph runs after the
// last constructor. It is on by default.
func WithValidation(on bool) BuilderOption {
	return func(c *builderConfig) {
		c.validate = on
	}
}

// WithPlayer sets the player id recorded on the graph. Panics if id < 1.
func WithPlayer(id int) BuilderOption {
	if id < 1 {
		panic("builder: WithPlayer(id<1)")
	}
	return func(c *builderConfig) {
		c.player = id
	}
}
