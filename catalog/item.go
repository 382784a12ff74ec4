package catalog

import (
	"fmt"

	"github.com/katalvlaran/summit/dataset"
	"github.com/katalvlaran/summit/options"
)

// Game is the game name items and locations are registered under.
const Game = "Celeste"

// Classification tells the host how an item affects logic.
type Classification uint8

// Item classifications.
const (
	Filler Classification = iota
	Progression
	Useful
	Trap
)

var classificationNames = [...]string{"filler", "progression", "useful", "trap"}

func (c Classification) String() string {
	if int(c) < len(classificationNames) {
		return classificationNames[c]
	}

	return fmt.Sprintf("Classification(%d)", uint8(c))
}

// MarshalText encodes c by name.
func (c Classification) MarshalText() ([]byte, error) { return []byte(c.String()), nil }

// UnmarshalText decodes a classification name.
func (c *Classification) UnmarshalText(b []byte) error {
	for i, name := range classificationNames {
		if name == string(b) {
			*c = Classification(i)
			return nil
		}
	}

	return fmt.Errorf("catalog: unknown classification %q", b)
}

// Item is an immutable collectible. Event items carry no external ID.
type Item struct {
	Name           string           `json:"name"`
	ID             int64            `json:"id,omitempty"`
	Event          bool             `json:"event,omitempty"`
	Classification Classification   `json:"classification"`
	Category       dataset.Category `json:"category"`
	Level          int              `json:"level"`
	Side           int              `json:"side"`
}

// ItemTable is the built item catalog, in dataset order.
type ItemTable struct {
	items []Item
	index map[string]int
}

// BuildItems creates one item per row. Rows at or above the victory level
// are event items. A strawberry is Filler when no strawberries are
// required, otherwise Progression; every other category is Progression.
func BuildItems(rows []dataset.Row, topo dataset.Topology, cfg options.Config) ItemTable {
	t := ItemTable{
		items: make([]Item, 0, len(rows)),
		index: make(map[string]int, len(rows)),
	}
	for _, row := range rows {
		class := Progression
		if row.Category == dataset.Strawberry && cfg.Options.BerriesRequired == 0 {
			class = Filler
		}
		it := Item{
			Name:           row.Name,
			Classification: class,
			Category:       row.Category,
			Level:          row.Level,
			Side:           row.Side,
		}
		if row.Level >= topo.VictoryLevel {
			it.Event = true
		} else {
			it.ID = row.ID
		}
		t.index[it.Name] = len(t.items)
		t.items = append(t.items, it)
	}

	return t
}

// Len returns the number of items.
func (t ItemTable) Len() int { return len(t.items) }

// All returns a copy of every item.
func (t ItemTable) All() []Item { return append([]Item(nil), t.items...) }

// Names returns every item name in table order.
func (t ItemTable) Names() []string {
	out := make([]string, len(t.items))
	for i, it := range t.items {
		out[i] = it.Name
	}

	return out
}

// Get returns the item called name. An unknown name is a programming or
// data error and yields ErrUnknownItem.
func (t ItemTable) Get(name string) (Item, error) {
	i, ok := t.index[name]
	if !ok {
		return Item{}, unknown(ErrUnknownItem, name, t.Names())
	}

	return t.items[i], nil
}

// Create mints a fresh copy of the named item for placement.
func (t ItemTable) Create(name string) (Item, error) { return t.Get(name) }

// InPool reports whether an item stays in the randomised pool for the
// given completion level: below it, or on it except for the A-side
// completion that ends the game.
func InPool(level, side int, cat dataset.Category, completionLevel int) bool {
	if level < completionLevel {
		return true
	}

	return level == completionLevel && !(side == 0 && cat == dataset.Completion)
}

// Pool returns the items that are shuffled for completionLevel, in table
// order. The remainder is locked in place by the victory policy.
func (t ItemTable) Pool(completionLevel int) []Item {
	out := make([]Item, 0, len(t.items))
	for _, it := range t.items {
		if InPool(it.Level, it.Side, it.Category, completionLevel) {
			out = append(out, it)
		}
	}

	return out
}
