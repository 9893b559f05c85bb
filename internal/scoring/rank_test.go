package scoring_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/soulconnect/matching/internal/db"
	"github.com/soulconnect/matching/internal/scoring"
)

func TestRankOrdersByScoreDescending(t *testing.T) {
	s := newTestScorer()
	prefs := fullPrefs()

	perfect := *candidate()
	perfect.ID = 10

	wrongReligion := *candidate()
	wrongReligion.ID = 11
	wrongReligion.Religion = "christian"

	wrongDiet := *candidate()
	wrongDiet.ID = 12
	wrongDiet.Diet = "vegan"

	ranked := s.Rank(prefs, []db.Profile{wrongReligion, perfect, wrongDiet}, 0)
	require.Len(t, ranked, 3)

	assert.Equal(t, uint64(10), ranked[0].Profile.ID)
	assert.Equal(t, uint64(12), ranked[1].Profile.ID)
	assert.Equal(t, uint64(11), ranked[2].Profile.ID)
	assert.Equal(t, 100.0, ranked[0].Score)
}

func TestRankTruncatesToLimit(t *testing.T) {
	s := newTestScorer()

	candidates := make([]db.Profile, 10)
	for i := range candidates {
		c := *candidate()
		c.ID = uint64(i + 1)
		candidates[i] = c
	}

	ranked := s.Rank(fullPrefs(), candidates, 3)
	assert.Len(t, ranked, 3)
}

// TestRankDeterministic: identical input yields an identical ordering, and
// ties keep input (id) order because the sort is stable.
func TestRankDeterministic(t *testing.T) {
	s := newTestScorer()
	prefs := fullPrefs()

	candidates := make([]db.Profile, 5)
	for i := range candidates {
		c := *candidate() // all tie at 100
		c.ID = uint64(i + 1)
		candidates[i] = c
	}

	first := s.Rank(prefs, candidates, 0)
	second := s.Rank(prefs, candidates, 0)

	for i := range first {
		assert.Equal(t, uint64(i+1), first[i].Profile.ID)
		assert.Equal(t, first[i].Profile.ID, second[i].Profile.ID)
		assert.Equal(t, first[i].Score, second[i].Score)
	}
}

func TestRankNoPreferencesUsesBaseline(t *testing.T) {
	s := scoring.NewScorerAt(scoring.DefaultWeights(), func() time.Time { return fixedNow })

	ranked := s.Rank(nil, []db.Profile{*candidate()}, 0)
	require.Len(t, ranked, 1)
	assert.Equal(t, 50.0, ranked[0].Score)
	assert.False(t, ranked[0].GoodMatch)
}
