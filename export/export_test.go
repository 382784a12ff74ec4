package export_test

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/summit/catalog"
	"github.com/katalvlaran/summit/dataset"
	"github.com/katalvlaran/summit/export"
	"github.com/katalvlaran/summit/options"
	"github.com/katalvlaran/summit/world"
)

func generated(t *testing.T) (dataset.Dataset, *world.Session) {
	t.Helper()
	d, err := dataset.Default()
	require.NoError(t, err)
	s := world.NewSession(d, world.WithPlayer(2))
	require.NoError(t, s.Generate(options.Defaults()))

	return d, s
}

func TestDataPackage(t *testing.T) {
	d, s := generated(t)
	pkg := export.NewDataPackage(d, s.Groups())

	assert.Equal(t, catalog.Game, pkg.Game)
	assert.Len(t, pkg.ItemNameToID, 232)
	assert.Len(t, pkg.LocationNameToID, 233)
	assert.Equal(t, int64(77000001), pkg.ItemNameToID["Level 1 A-Side Complete"])
	assert.NotContains(t, pkg.ItemNameToID, "Level 10 A-Side Complete")
	assert.Contains(t, pkg.LocationNameToID, "Level 10 A-Side Complete")
	assert.NotEmpty(t, pkg.Checksum)

	var a, b bytes.Buffer
	require.NoError(t, pkg.WriteJSON(&a))
	require.NoError(t, export.NewDataPackage(d, s.Groups()).WriteJSON(&b))
	assert.Equal(t, a.String(), b.String())

	back, err := export.ReadDataPackage(&a)
	require.NoError(t, err)
	assert.Equal(t, pkg, back)
}

func TestSummarize(t *testing.T) {
	_, s := generated(t)
	sum := export.Summarize(s)

	assert.Equal(t, s.ID(), sum.ID)
	assert.Equal(t, 2, sum.Player)
	assert.Equal(t, world.Done, sum.Phase)
	assert.Equal(t, "farewell", sum.Goal)
	assert.Equal(t, 232, sum.PoolSize)
	assert.Equal(t, 28, sum.Regions)
	assert.Equal(t, 27, sum.Entrances)
	assert.Len(t, sum.Placements, 1)
	assert.Equal(t, `has("Level 10 A-Side Complete")`, sum.Completion)

	fresh := export.Summarize(world.NewSession(dataset.Dataset{}))
	assert.Equal(t, world.Unconfigured, fresh.Phase)
	assert.Zero(t, fresh.Regions)
}

func TestSQLiteStore(t *testing.T) {
	ctx := context.Background()
	d, s := generated(t)

	path := filepath.Join(t.TempDir(), "nested", "summit.db")
	store, err := export.Open(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	assert.Equal(t, path, store.Path())

	_, err = store.LoadDataPackage(ctx, catalog.Game)
	assert.ErrorIs(t, err, export.ErrNotFound)

	pkg := export.NewDataPackage(d, s.Groups())
	require.NoError(t, store.SaveDataPackage(ctx, pkg))
	require.NoError(t, store.SaveDataPackage(ctx, pkg))
	got, err := store.LoadDataPackage(ctx, catalog.Game)
	require.NoError(t, err)
	assert.Equal(t, pkg, got)

	sum := export.Summarize(s)
	require.NoError(t, store.SaveSession(ctx, sum))
	assert.Error(t, store.SaveSession(ctx, sum), "ids are write-once")

	back, err := store.LoadSession(ctx, sum.ID)
	require.NoError(t, err)
	assert.Equal(t, sum, back)

	ids, err := store.Sessions(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, []string{sum.ID}, ids)

	_, err = store.LoadSession(ctx, "missing")
	assert.ErrorIs(t, err, export.ErrNotFound)
}

func TestSQLiteStore_Reopen(t *testing.T) {
	ctx := context.Background()
	d, s := generated(t)
	path := filepath.Join(t.TempDir(), "summit.db")

	store, err := export.Open(path)
	require.NoError(t, err)
	require.NoError(t, store.SaveDataPackage(ctx, export.NewDataPackage(d, s.Groups())))
	require.NoError(t, store.Close())

	store, err = export.Open(path)
	require.NoError(t, err)
	defer store.Close()
	got, err := store.LoadDataPackage(ctx, catalog.Game)
	require.NoError(t, err)
	assert.Len(t, got.ItemNameToID, 232)
}
