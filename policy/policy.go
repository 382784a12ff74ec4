// Package policy derives the victory arrangement of a session from its
// completion level: which items are shuffled, which are locked in place,
// and what it means to have won.
package policy

import (
	"fmt"

	"github.com/katalvlaran/summit/catalog"
	"github.com/katalvlaran/summit/dataset"
	"github.com/katalvlaran/summit/rules"
)

// Placement records one item locked into one location.
type Placement struct {
	Location string       `json:"location"`
	Item     catalog.Item `json:"item"`
}

// IsLocked reports whether the item or location at (level, side, cat) is
// fixed for completionLevel: everything past it, and the A-side
// completion of the completion level itself.
func IsLocked(level, side int, cat dataset.Category, completionLevel int) bool {
	return !catalog.InPool(level, side, cat, completionLevel)
}

// Prune returns the items of pool that stay shuffled, preserving order.
func Prune(pool []catalog.Item, completionLevel int) []catalog.Item {
	out := make([]catalog.Item, 0, len(pool))
	for _, it := range pool {
		if !IsLocked(it.Level, it.Side, it.Category, completionLevel) {
			out = append(out, it)
		}
	}

	return out
}

// LockVictoryItems places, into every locked location, a copy of the item
// of the same name. Placements are returned in location table order.
// The A-side completion of completionLevel must exist as both item and
// location, otherwise the session could never be won: its absence yields
// catalog.ErrUnknownItem or catalog.ErrUnknownLocation. A location without
// a same-named item yields catalog.ErrUnknownItem; a location already
// holding an item yields catalog.ErrAlreadyPlaced.
func LockVictoryItems(locs catalog.LocationTable, items catalog.ItemTable, completionLevel int) ([]Placement, error) {
	goal := catalog.CompletionName(completionLevel, 0)
	if _, err := items.Get(goal); err != nil {
		return nil, fmt.Errorf("policy: completion item: %w", err)
	}
	if _, err := locs.Get(goal); err != nil {
		return nil, fmt.Errorf("policy: completion location: %w", err)
	}

	var out []Placement
	for _, loc := range locs.All() {
		if !IsLocked(loc.Level, loc.Side, loc.Category, completionLevel) {
			continue
		}
		it, err := items.Create(loc.Name)
		if err != nil {
			return nil, fmt.Errorf("policy: lock %q: %w", loc.Name, err)
		}
		if err = loc.PlaceLocked(it); err != nil {
			return nil, fmt.Errorf("policy: lock %q: %w", loc.Name, err)
		}
		out = append(out, Placement{Location: loc.Name, Item: it})
	}

	return out, nil
}

// CompletionCondition holds once the player owns the A-side completion of
// completionLevel.
func CompletionCondition(completionLevel int) rules.Predicate {
	return rules.HasItem(catalog.CompletionName(completionLevel, 0), 1)
}
