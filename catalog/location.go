package catalog

import (
	"fmt"

	"github.com/katalvlaran/summit/dataset"
	"github.com/katalvlaran/summit/options"
	"github.com/katalvlaran/summit/rules"
)

// ProgressType is the placement priority of a location.
type ProgressType uint8

// Placement priorities. Excluded locations never receive a prioritised item.
const (
	Default ProgressType = iota
	Prioritized
	Excluded
)

var progressNames = [...]string{"default", "prioritized", "excluded"}

func (p ProgressType) String() string {
	if int(p) < len(progressNames) {
		return progressNames[p]
	}

	return fmt.Sprintf("ProgressType(%d)", uint8(p))
}

// MarshalText encodes p by name.
func (p ProgressType) MarshalText() ([]byte, error) { return []byte(p.String()), nil }

// HeartGates are the crystal hearts needed for sides A, B and C of the
// heart-gate level. They are part of the game, not player options.
var HeartGates = [dataset.MaxSides]int{4, 15, 23}

// Location is a slot holding exactly one item. Parent and locked item are
// set once.
type Location struct {
	Name     string
	ID       int64
	Event    bool
	Category dataset.Category
	Level    int
	Side     int
	Rule     rules.Predicate
	Progress ProgressType

	parent string
	locked *Item
}

// Parent returns the owning region name, or "" before attachment.
func (l *Location) Parent() string { return l.parent }

// SetParent records the owning region. A location has one owner for life.
func (l *Location) SetParent(region string) error {
	if l.parent != "" {
		return fmt.Errorf("%w: %q in %q", ErrAlreadyOwned, l.Name, l.parent)
	}
	l.parent = region

	return nil
}

// PlaceLocked stores it in the location, bypassing random placement.
func (l *Location) PlaceLocked(it Item) error {
	if l.locked != nil {
		return fmt.Errorf("%w: %q holds %q", ErrAlreadyPlaced, l.Name, l.locked.Name)
	}
	l.locked = &it

	return nil
}

// Locked returns the locked item, if any.
func (l *Location) Locked() (Item, bool) {
	if l.locked == nil {
		return Item{}, false
	}

	return *l.locked, true
}

// VictoryRule is the gate of the victory-level location: every threshold
// must hold at once.
func VictoryRule(o options.Options) rules.Predicate {
	return rules.And(
		rules.HasGroup(GroupGemHearts, o.HeartsRequired),
		rules.HasGroup(GroupStrawberries, o.BerriesRequired),
		rules.HasGroup(GroupCompletions, o.LevelsRequired),
		rules.HasGroup(GroupCassettes, o.CassettesRequired),
	)
}

// HeartGateRule is the gate of a location on side of the heart-gate level.
func HeartGateRule(side int) rules.Predicate {
	if side < 0 || side >= len(HeartGates) {
		return rules.Always()
	}

	return rules.HasGroup(GroupGemHearts, HeartGates[side])
}

// LocationTable is the built location catalog, in dataset order.
type LocationTable struct {
	locations []*Location
	index     map[string]int
}

// BuildLocations creates one location per row and assigns access rules:
// heart-gate level locations need a fixed number of crystal hearts, the
// victory level needs every option threshold, everything else is open
// and gated by its region.
func BuildLocations(rows []dataset.Row, topo dataset.Topology, cfg options.Config) LocationTable {
	t := LocationTable{
		locations: make([]*Location, 0, len(rows)),
		index:     make(map[string]int, len(rows)),
	}
	for _, row := range rows {
		loc := &Location{
			Name:     row.Name,
			Category: row.Category,
			Level:    row.Level,
			Side:     row.Side,
			Rule:     rules.Always(),
		}
		if row.Level >= topo.VictoryLevel {
			loc.Event = true
		} else {
			loc.ID = row.ID
		}
		switch {
		case row.Level == topo.VictoryLevel:
			loc.Rule = VictoryRule(cfg.Options)
			loc.Progress = Excluded
		case topo.HeartGateLevel != 0 && row.Level == topo.HeartGateLevel:
			loc.Rule = HeartGateRule(row.Side)
		}
		t.index[loc.Name] = len(t.locations)
		t.locations = append(t.locations, loc)
	}

	return t
}

// Len returns the number of locations.
func (t LocationTable) Len() int { return len(t.locations) }

// All returns every location in table order. The slice is a copy; the
// locations are shared.
func (t LocationTable) All() []*Location {
	return append([]*Location(nil), t.locations...)
}

// Names returns every location name in table order.
func (t LocationTable) Names() []string {
	out := make([]string, len(t.locations))
	for i, l := range t.locations {
		out[i] = l.Name
	}

	return out
}

// Get returns the location called name.
func (t LocationTable) Get(name string) (*Location, error) {
	i, ok := t.index[name]
	if !ok {
		return nil, unknown(ErrUnknownLocation, name, t.Names())
	}

	return t.locations[i], nil
}

// At returns the locations of one level side, in table order.
func (t LocationTable) At(level, side int) []*Location {
	var out []*Location
	for _, l := range t.locations {
		if l.Level == level && l.Side == side {
			out = append(out, l)
		}
	}

	return out
}
