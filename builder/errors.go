// SPDX-License-Identifier: MIT
// Package: summit/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context with `%w`.
//   • Constructors never panic; validation panics are confined to
//     option constructors (WithX...).

package builder

import (
	"errors"
	"fmt"
)

// ErrBadTopology indicates a level table the builder cannot turn into
// regions. The underlying dataset.ErrBadTopology is wrapped alongside it.
var ErrBadTopology = errors.New("builder: bad topology")

// ErrUnplacedLocation indicates a location whose (level, side) has no
// region in the graph.
var ErrUnplacedLocation = errors.New("builder: location has no region")

// ErrUnreachableRegion indicates a region no entrance chain from Menu
// reaches, ignoring entrance rules.
var ErrUnreachableRegion = errors.New("builder: region unreachable from menu")

// ErrConstructFailed indicates a programmer error in composition, such as
// a nil constructor or a nil graph.
var ErrConstructFailed = errors.New("builder: construction failed")

// builderErrorf prefixes an error with the constructor that raised it,
// keeping any %w sentinel intact.
func builderErrorf(method, format string, args ...interface{}) error {
	return fmt.Errorf("%s: "+format, append([]interface{}{method}, args...)...)
}
