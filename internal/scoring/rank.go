package scoring

import (
	"sort"

	"github.com/soulconnect/matching/internal/db"
)

// RankedProfile pairs a candidate with its compatibility result.
type RankedProfile struct {
	Profile   db.Profile
	Score     float64
	Breakdown map[string]int
	GoodMatch bool
}

// Rank scores every candidate, sorts descending by total, and truncates to
// limit. The sort is stable, so ties keep the candidates' input order;
// callers that feed candidates in id order get reproducible results.
func (s *Scorer) Rank(prefs *db.PartnerPreference, candidates []db.Profile, limit int) []RankedProfile {
	ranked := make([]RankedProfile, 0, len(candidates))
	for i := range candidates {
		res := s.Score(prefs, &candidates[i])
		ranked = append(ranked, RankedProfile{
			Profile:   candidates[i],
			Score:     res.Total,
			Breakdown: res.Breakdown,
			GoodMatch: res.GoodMatch,
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})

	if limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}
