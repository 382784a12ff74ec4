package rules

import (
	"github.com/zyedidia/generic/mapset"
)

// Inventory is an in-memory State for a single player. It is what tests
// and the CLI use to evaluate predicates; the host brings its own State.
type Inventory struct {
	player int
	counts map[string]int
	groups map[string]*mapset.Set[string]
}

// NewInventory returns an empty inventory for player. groups maps a group
// name to its member item names, as published by the item catalog.
func NewInventory(player int, groups map[string][]string) *Inventory {
	inv := &Inventory{
		player: player,
		counts: make(map[string]int),
		groups: make(map[string]*mapset.Set[string], len(groups)),
	}
	for name, members := range groups {
		set := mapset.New[string]()
		for _, m := range members {
			set.Put(m)
		}
		inv.groups[name] = &set
	}

	return inv
}

// Collect adds n copies of item. Non-positive n is ignored.
func (inv *Inventory) Collect(item string, n int) *Inventory {
	if n > 0 {
		inv.counts[item] += n
	}

	return inv
}

// CollectAll adds one copy of each item.
func (inv *Inventory) CollectAll(items ...string) *Inventory {
	for _, it := range items {
		inv.Collect(it, 1)
	}

	return inv
}

// Remove drops up to n copies of item.
func (inv *Inventory) Remove(item string, n int) {
	if left := inv.counts[item] - n; left > 0 {
		inv.counts[item] = left
		return
	}
	delete(inv.counts, item)
}

// Count implements Counter.
func (inv *Inventory) Count(item string, player int) int {
	if player != inv.player {
		return 0
	}

	return inv.counts[item]
}

// Has implements State.
func (inv *Inventory) Has(item string, player int) bool {
	return inv.Count(item, player) > 0
}

// HasAny implements State.
func (inv *Inventory) HasAny(items []string, player int) bool {
	for _, it := range items {
		if inv.Has(it, player) {
			return true
		}
	}

	return false
}

// HasAll implements State.
func (inv *Inventory) HasAll(items []string, player int) bool {
	for _, it := range items {
		if !inv.Has(it, player) {
			return false
		}
	}

	return true
}

// HasGroup implements State. Copies of the same item count individually.
func (inv *Inventory) HasGroup(group string, player int, count int) bool {
	if count <= 0 {
		return true
	}
	if player != inv.player {
		return false
	}
	set, ok := inv.groups[group]
	if !ok {
		return false
	}
	total := 0
	for item, n := range inv.counts {
		if set.Has(item) {
			total += n
			if total >= count {
				return true
			}
		}
	}

	return false
}

// GroupCount returns how many items of group the inventory holds.
func (inv *Inventory) GroupCount(group string) int {
	set, ok := inv.groups[group]
	if !ok {
		return 0
	}
	total := 0
	for item, n := range inv.counts {
		if set.Has(item) {
			total += n
		}
	}

	return total
}
