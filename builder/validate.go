package builder

import (
	"fmt"

	"github.com/katalvlaran/summit/bfs"
	"github.com/katalvlaran/summit/dfs"
	"github.com/katalvlaran/summit/region"
)

// Validate checks the shape of g, ignoring entrance rules: every region
// must be reachable from Menu and no entrance chain may loop.
func Validate(g *region.Graph) error {
	if g == nil {
		return builderErrorf(MethodValidate, "nil graph: %w", ErrConstructFailed)
	}
	res, err := bfs.BFS(g, MenuRegion)
	if err != nil {
		return builderErrorf(MethodValidate, "%w", err)
	}
	for _, name := range g.Regions() {
		if !res.Reached(name) {
			return builderErrorf(MethodValidate, "%w: %q", ErrUnreachableRegion, name)
		}
	}
	if _, err = dfs.TopologicalSort(g); err != nil {
		return builderErrorf(MethodValidate, "%w", err)
	}

	return nil
}

// Describe renders the entrances of g one per line as "from → to: rule",
// in insertion order. It is meant for logs and golden comparisons.
func Describe(g *region.Graph) []string {
	es := g.Entrances()
	out := make([]string, len(es))
	for i, e := range es {
		out[i] = fmt.Sprintf("%s → %s: %s", e.From, e.To, e.Rule)
	}

	return out
}
