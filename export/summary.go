package export

import (
	"github.com/katalvlaran/summit/policy"
	"github.com/katalvlaran/summit/world"
)

// SessionSummary is the published outcome of one session.
type SessionSummary struct {
	ID              string             `json:"id"`
	Player          int                `json:"player"`
	Phase           world.Phase        `json:"phase"`
	Goal            string             `json:"goal"`
	CompletionLevel int                `json:"completion_level"`
	SlotData        map[string]int     `json:"slot_data"`
	PoolSize        int                `json:"pool_size"`
	Regions         int                `json:"regions"`
	Entrances       int                `json:"entrances"`
	Placements      []policy.Placement `json:"placements"`
	Completion      string             `json:"completion_condition"`
}

// Summarize captures s as it stands. Graph counts are zero before
// CreateRegions.
func Summarize(s *world.Session) SessionSummary {
	cfg := s.Config()
	sum := SessionSummary{
		ID:              s.ID(),
		Player:          s.Player(),
		Phase:           s.Phase(),
		Goal:            cfg.Options.Goal.String(),
		CompletionLevel: cfg.CompletionLevel,
		SlotData:        s.SlotData(),
		PoolSize:        len(s.Pool()),
		Placements:      s.Placements(),
		Completion:      s.CompletionCondition().String(),
	}
	if g := s.Graph(); g != nil {
		st := g.Stats()
		sum.Regions, sum.Entrances = st.RegionCount, st.EntranceCount
	}

	return sum
}
