package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/summit/catalog"
	"github.com/katalvlaran/summit/dataset"
	"github.com/katalvlaran/summit/options"
	"github.com/katalvlaran/summit/rules"
)

const player = 1

func load(t *testing.T) dataset.Dataset {
	t.Helper()
	d, err := dataset.Default()
	require.NoError(t, err)

	return d
}

func resolve(t *testing.T, o options.Options) options.Config {
	t.Helper()
	cfg, err := options.Resolve(o)
	require.NoError(t, err)

	return cfg
}

// fill collects the first n members of group.
func fill(inv *rules.Inventory, groups map[string][]string, group string, n int) {
	for _, name := range groups[group][:n] {
		inv.Collect(name, 1)
	}
}

func TestBuildItems_Classification(t *testing.T) {
	d := load(t)

	free := catalog.BuildItems(d.Rows, d.Topology, resolve(t, options.Defaults()))
	berry, err := free.Get("Level 1 A-Side Strawberry 1")
	require.NoError(t, err)
	assert.Equal(t, catalog.Filler, berry.Classification)
	cassette, err := free.Get("Level 1 A-Side Cassette")
	require.NoError(t, err)
	assert.Equal(t, catalog.Progression, cassette.Classification)

	o := options.Defaults()
	o.BerriesRequired = 1
	needed := catalog.BuildItems(d.Rows, d.Topology, resolve(t, o))
	berry, err = needed.Get("Level 1 A-Side Strawberry 1")
	require.NoError(t, err)
	assert.Equal(t, catalog.Progression, berry.Classification)
}

func TestBuildItems_EventItems(t *testing.T) {
	d := load(t)
	items := catalog.BuildItems(d.Rows, d.Topology, resolve(t, options.Defaults()))
	assert.Equal(t, len(d.Rows), items.Len())

	victory, err := items.Get("Level 10 A-Side Complete")
	require.NoError(t, err)
	assert.True(t, victory.Event)
	assert.Zero(t, victory.ID)

	core, err := items.Get("Level 9 A-Side Complete")
	require.NoError(t, err)
	assert.False(t, core.Event)
	assert.NotZero(t, core.ID)
}

func TestPool_Boundary(t *testing.T) {
	d := load(t)
	items := catalog.BuildItems(d.Rows, d.Topology, resolve(t, options.Options{Goal: options.GoalCore}))

	pool := items.Pool(9)
	names := map[string]bool{}
	for _, it := range pool {
		assert.LessOrEqual(t, it.Level, 9, it.Name)
		names[it.Name] = true
	}
	assert.False(t, names["Level 9 A-Side Complete"], "locked, not placed")
	assert.False(t, names["Level 10 A-Side Complete"])
	for _, kept := range []string{
		"Level 9 B-Side Complete", "Level 9 C-Side Complete", "Level 9 A-Side Crystal Heart",
		"Level 9 A-Side Cassette", "Level 8 A-Side Complete", "Level 7 A-Side Complete",
	} {
		assert.True(t, names[kept], kept)
	}
	assert.Len(t, pool, 231)

	assert.Len(t, items.Pool(10), 232)
	assert.Len(t, items.Pool(7), 218)
}

func TestInPool(t *testing.T) {
	assert.True(t, catalog.InPool(6, 0, dataset.Completion, 7))
	assert.False(t, catalog.InPool(7, 0, dataset.Completion, 7))
	assert.True(t, catalog.InPool(7, 0, dataset.GemHeart, 7))
	assert.True(t, catalog.InPool(7, 1, dataset.Completion, 7))
	assert.False(t, catalog.InPool(8, 1, dataset.GemHeart, 7))
}

func TestNameToID_Bijective(t *testing.T) {
	d := load(t)

	items := catalog.ItemNameToID(d.Rows, d.Topology)
	locs := catalog.LocationNameToID(d.Rows)
	assert.Len(t, items, 232)
	assert.Len(t, locs, 233)
	assert.NotContains(t, items, "Level 10 A-Side Complete")
	assert.Contains(t, locs, "Level 10 A-Side Complete")

	for label, table := range map[string]map[string]int64{"items": items, "locations": locs} {
		seen := map[int64]string{}
		for name, id := range table {
			other, dup := seen[id]
			assert.False(t, dup, "%s: %q and %q share id %d", label, name, other, id)
			seen[id] = name
		}
	}
}

func TestGroups(t *testing.T) {
	d := load(t)
	groups := catalog.BuildItems(d.Rows, d.Topology, resolve(t, options.Defaults())).Groups()

	assert.Len(t, groups[catalog.GroupCassettes], 8)
	assert.Len(t, groups[catalog.GroupGemHearts], 24)
	assert.Len(t, groups[catalog.GroupStrawberries], 175)
	assert.Len(t, groups[catalog.GroupCompletions], 25)
	assert.NotContains(t, groups[catalog.GroupCompletions], "Level 10 A-Side Complete")
	assert.Equal(t, "Level 1 A-Side Complete", groups[catalog.GroupCompletions][0])
}

func TestLookup_Unknown(t *testing.T) {
	d := load(t)
	cfg := resolve(t, options.Defaults())
	items := catalog.BuildItems(d.Rows, d.Topology, cfg)

	_, err := items.Get("Level 1 A-Side Casette")
	require.ErrorIs(t, err, catalog.ErrUnknownItem)
	assert.Contains(t, err.Error(), `did you mean "Level 1 A-Side Cassette"`)

	_, err = items.Create("Golden Strawberry")
	require.ErrorIs(t, err, catalog.ErrUnknownItem)
	assert.NotContains(t, err.Error(), "did you mean")

	locs := catalog.BuildLocations(d.Rows, d.Topology, cfg)
	_, err = locs.Get("Level 11 A-Side Complete")
	assert.ErrorIs(t, err, catalog.ErrUnknownLocation)
}

func TestSuggest(t *testing.T) {
	cands := []string{"cassettes", "completions", "gemhearts", "strawberries"}
	assert.Equal(t, "gemhearts", catalog.Suggest("gemheart", cands))
	assert.Equal(t, "", catalog.Suggest("berries", cands))
}

func TestBuildLocations_Events(t *testing.T) {
	d := load(t)
	locs := catalog.BuildLocations(d.Rows, d.Topology, resolve(t, options.Defaults()))
	assert.Equal(t, 233, locs.Len())

	victory, err := locs.Get("Level 10 A-Side Complete")
	require.NoError(t, err)
	assert.True(t, victory.Event)
	assert.Equal(t, catalog.Excluded, victory.Progress)

	first, err := locs.Get("Level 1 A-Side Complete")
	require.NoError(t, err)
	assert.False(t, first.Event)
	assert.True(t, first.Rule.IsAlways())
	assert.Equal(t, catalog.Default, first.Progress)

	assert.Len(t, locs.At(9, 2), 2)
	assert.Empty(t, locs.At(8, 1))
}

func TestVictoryRule_AllThresholds(t *testing.T) {
	d := load(t)
	o := options.Options{BerriesRequired: 10, CassettesRequired: 2, HeartsRequired: 15, LevelsRequired: 5, Goal: options.GoalFarewell}
	cfg := resolve(t, o)
	groups := catalog.BuildItems(d.Rows, d.Topology, cfg).Groups()
	victory, err := catalog.BuildLocations(d.Rows, d.Topology, cfg).Get("Level 10 A-Side Complete")
	require.NoError(t, err)

	full := func() *rules.Inventory {
		inv := rules.NewInventory(player, groups)
		fill(inv, groups, catalog.GroupStrawberries, 10)
		fill(inv, groups, catalog.GroupCassettes, 2)
		fill(inv, groups, catalog.GroupGemHearts, 15)
		fill(inv, groups, catalog.GroupCompletions, 5)
		return inv
	}
	assert.True(t, victory.Rule.Eval(full(), player))

	for group, n := range map[string]int{
		catalog.GroupStrawberries: 10,
		catalog.GroupCassettes:    2,
		catalog.GroupGemHearts:    15,
		catalog.GroupCompletions:  5,
	} {
		inv := full()
		inv.Remove(groups[group][n-1], 1)
		assert.False(t, victory.Rule.Eval(inv, player), "one %s short", group)
	}
}

func TestHeartGates_Fixed(t *testing.T) {
	d := load(t)
	for _, o := range []options.Options{
		options.Defaults(),
		{HeartsRequired: 0, Goal: options.GoalSummit},
		{HeartsRequired: 24, BerriesRequired: 175, Goal: options.GoalCore},
	} {
		cfg := resolve(t, o)
		groups := catalog.BuildItems(d.Rows, d.Topology, cfg).Groups()
		locs := catalog.BuildLocations(d.Rows, d.Topology, cfg)

		for side, need := range []int{4, 15, 23} {
			for _, loc := range locs.At(9, side) {
				assert.True(t, loc.Rule.Equal(rules.HasGroup(catalog.GroupGemHearts, need)), loc.Name)

				short := rules.NewInventory(player, groups)
				fill(short, groups, catalog.GroupGemHearts, need-1)
				assert.False(t, loc.Rule.Eval(short, player), loc.Name)

				enough := rules.NewInventory(player, groups)
				fill(enough, groups, catalog.GroupGemHearts, need)
				assert.True(t, loc.Rule.Eval(enough, player), loc.Name)
			}
		}
	}
}

func TestLocation_SetOnce(t *testing.T) {
	loc := &catalog.Location{Name: "Level 1 A-Side Complete"}
	require.NoError(t, loc.SetParent("Level 1 A-Side"))
	assert.ErrorIs(t, loc.SetParent("Level 2 A-Side"), catalog.ErrAlreadyOwned)
	assert.Equal(t, "Level 1 A-Side", loc.Parent())

	_, ok := loc.Locked()
	assert.False(t, ok)
	require.NoError(t, loc.PlaceLocked(catalog.Item{Name: "Level 1 A-Side Complete"}))
	assert.ErrorIs(t, loc.PlaceLocked(catalog.Item{Name: "x"}), catalog.ErrAlreadyPlaced)
	it, ok := loc.Locked()
	assert.True(t, ok)
	assert.Equal(t, "Level 1 A-Side Complete", it.Name)
}
