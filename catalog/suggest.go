package catalog

import (
	"fmt"

	"github.com/agnivade/levenshtein"
)

// unknown builds a lookup error for name, suggesting the closest
// candidate when one is near enough.
func unknown(sentinel error, name string, candidates []string) error {
	if s := Suggest(name, candidates); s != "" {
		return fmt.Errorf("%w: %q (did you mean %q?)", sentinel, name, s)
	}

	return fmt.Errorf("%w: %q", sentinel, name)
}

// Suggest returns the candidate closest to name by edit distance, or ""
// when none is within a length-scaled limit. Ties go to the earlier
// candidate.
func Suggest(name string, candidates []string) string {
	best, bestDist := "", -1
	limit := suggestLimit(len(name))
	for _, c := range candidates {
		d := levenshtein.ComputeDistance(name, c)
		if d > limit {
			continue
		}
		if bestDist < 0 || d < bestDist {
			best, bestDist = c, d
		}
	}

	return best
}

func suggestLimit(length int) int {
	switch {
	case length <= 4:
		return 1
	case length <= 12:
		return 2
	default:
		return 3
	}
}
