package dfs_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/summit/dfs"
	"github.com/katalvlaran/summit/region"
	"github.com/katalvlaran/summit/rules"
)

// build adds every endpoint in first-seen order and connects each pair.
func build(t *testing.T, edges ...[2]string) *region.Graph {
	t.Helper()
	g := region.NewGraph()
	for _, e := range edges {
		for _, name := range e {
			if !g.HasRegion(name) {
				_, err := g.AddRegion(name)
				require.NoError(t, err)
			}
		}
		_, err := g.Connect(e[0], e[1], e[0]+" → "+e[1], rules.Always())
		require.NoError(t, err)
	}

	return g
}

func TestDFS_Errors(t *testing.T) {
	_, err := dfs.DFS(nil, "A")
	assert.ErrorIs(t, err, dfs.ErrGraphNil)

	_, err = dfs.DFS(build(t, [2]string{"A", "B"}), "Z")
	assert.ErrorIs(t, err, dfs.ErrStartRegionNotFound)
}

func TestDFS_PostOrder(t *testing.T) {
	g := build(t,
		[2]string{"A", "B"}, [2]string{"A", "C"},
		[2]string{"B", "D"}, [2]string{"C", "D"},
	)
	res, err := dfs.DFS(g, "A")
	require.NoError(t, err)
	assert.Equal(t, []string{"D", "B", "C", "A"}, res.Order)
	assert.Equal(t, 2, res.Depth["D"])
	assert.Equal(t, "B", res.Parent["D"])
	assert.True(t, res.Visited("C"))
}

func TestDFS_FilterAndDepth(t *testing.T) {
	g := build(t, [2]string{"A", "B"}, [2]string{"A", "C"}, [2]string{"C", "D"})

	res, err := dfs.DFS(g, "A", dfs.WithFilterTarget(func(name string) bool { return name != "C" }))
	require.NoError(t, err)
	assert.Equal(t, []string{"B", "A"}, res.Order)
	assert.Equal(t, 1, res.SkippedTargets)

	res, err = dfs.DFS(g, "A", dfs.WithMaxDepth(1))
	require.NoError(t, err)
	assert.False(t, res.Visited("D"))
}

func TestDFS_Hooks(t *testing.T) {
	g := build(t, [2]string{"A", "B"})
	var pre []string
	res, err := dfs.DFS(g, "A", dfs.WithOnVisit(func(name string) error {
		pre = append(pre, name)
		return nil
	}))
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B"}, pre)
	assert.Equal(t, []string{"B", "A"}, res.Order)

	boom := errors.New("boom")
	res, err = dfs.DFS(g, "A", dfs.WithOnExit(func(name string) error {
		if name == "B" {
			return boom
		}
		return nil
	}))
	assert.ErrorIs(t, err, boom)
	assert.Nil(t, res.Order)
}

func TestDFS_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := dfs.DFS(build(t, [2]string{"A", "B"}), "A", dfs.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}
