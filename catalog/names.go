package catalog

import (
	"fmt"

	"github.com/katalvlaran/summit/dataset"
)

// Item group names published for group-count queries.
const (
	GroupCassettes    = "cassettes"
	GroupCompletions  = "completions"
	GroupGemHearts    = "gemhearts"
	GroupStrawberries = "strawberries"
)

// CompletionName names the completion item of a level side,
// e.g. "Level 2 B-Side Complete".
func CompletionName(level, side int) string {
	return fmt.Sprintf("Level %d %s-Side Complete", level, dataset.SideLetter(side))
}

// HeartName names the crystal heart of a level side.
func HeartName(level, side int) string {
	return fmt.Sprintf("Level %d %s-Side Crystal Heart", level, dataset.SideLetter(side))
}

// CassetteName names the cassette of a level. Cassettes live on the A-side.
func CassetteName(level int) string {
	return fmt.Sprintf("Level %d A-Side Cassette", level)
}

// GroupOf returns the group an item category belongs to.
func GroupOf(c dataset.Category) string {
	switch c {
	case dataset.Cassette:
		return GroupCassettes
	case dataset.Completion:
		return GroupCompletions
	case dataset.GemHeart:
		return GroupGemHearts
	case dataset.Strawberry:
		return GroupStrawberries
	}

	return ""
}

// Groups maps each group name to the names of its non-event items, in
// table order. All four groups are present even when empty.
func (t ItemTable) Groups() map[string][]string {
	out := map[string][]string{
		GroupCassettes:    {},
		GroupCompletions:  {},
		GroupGemHearts:    {},
		GroupStrawberries: {},
	}
	for _, it := range t.items {
		if it.Event {
			continue
		}
		g := GroupOf(it.Category)
		out[g] = append(out[g], it.Name)
	}

	return out
}

// ItemNameToID is the options-independent identifier table of items:
// every row below the victory level.
func ItemNameToID(rows []dataset.Row, topo dataset.Topology) map[string]int64 {
	out := make(map[string]int64, len(rows))
	for _, row := range rows {
		if row.Level < topo.VictoryLevel {
			out[row.Name] = row.ID
		}
	}

	return out
}

// LocationNameToID is the identifier table of locations. It covers every
// row, the victory level included, so the host can name the victory
// location in its data package even though the event location itself
// carries no ID.
func LocationNameToID(rows []dataset.Row) map[string]int64 {
	out := make(map[string]int64, len(rows))
	for _, row := range rows {
		out[row.Name] = row.ID
	}

	return out
}
