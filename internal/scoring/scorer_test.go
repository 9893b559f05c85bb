package scoring_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/soulconnect/matching/internal/db"
	"github.com/soulconnect/matching/internal/scoring"
)

// fixedNow pins the clock so age calculations are deterministic.
var fixedNow = time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC)

func newTestScorer() *scoring.Scorer {
	return scoring.NewScorerAt(scoring.DefaultWeights(), func() time.Time { return fixedNow })
}

// candidate returns a profile that fully satisfies fullPrefs.
func candidate() *db.Profile {
	return &db.Profile{
		ID:            2,
		Gender:        db.GenderFemale,
		DateOfBirth:   time.Date(1995, time.March, 10, 0, 0, 0, 0, time.UTC), // age 30 at fixedNow
		HeightCM:      170,
		Religion:      "hindu",
		Caste:         "maratha",
		Education:     "bachelors",
		City:          "Pune",
		State:         "Maharashtra",
		Country:       "India",
		Diet:          "vegetarian",
		MaritalStatus: "never_married",
	}
}

func fullPrefs() *db.PartnerPreference {
	return &db.PartnerPreference{
		ProfileID:     1,
		AgeFrom:       25,
		AgeTo:         35,
		HeightFrom:    160,
		HeightTo:      180,
		Religion:      db.StringList{"hindu"},
		CasteNoBar:    true,
		Education:     db.StringList{"bachelors", "masters"},
		Diet:          db.StringList{"vegetarian"},
		MaritalStatus: db.StringList{"never_married"},
	}
}

// TestScorePerfectCandidate covers the all-dimensions-100 scenario: caste
// passes via no-bar, location via an entirely unset location preference.
func TestScorePerfectCandidate(t *testing.T) {
	res := newTestScorer().Score(fullPrefs(), candidate())

	for dim, score := range res.Breakdown {
		assert.Equal(t, 100, score, "dimension %s", dim)
	}
	assert.Equal(t, 100.0, res.Total)
	assert.True(t, res.GoodMatch)
}

// TestScoreNoPreferences verifies the neutral baseline: a requester with no
// preference record gets 50 against any candidate, never an error.
func TestScoreNoPreferences(t *testing.T) {
	res := newTestScorer().Score(nil, candidate())

	assert.Equal(t, 50.0, res.Total)
	assert.Empty(t, res.Breakdown)
	assert.False(t, res.GoodMatch)
}

// TestAgeTiers checks the tiered tolerance around the [25,35] range:
// within 2 of a bound -> 70, within 5 -> 40, beyond -> 0.
func TestAgeTiers(t *testing.T) {
	s := newTestScorer()
	prefs := fullPrefs()

	cases := []struct {
		name string
		dob  time.Time
		want int
	}{
		{"in range", time.Date(1995, time.March, 10, 0, 0, 0, 0, time.UTC), 100},     // 30
		{"near band", time.Date(1988, time.January, 1, 0, 0, 0, 0, time.UTC), 70},    // 37, diff 2
		{"just past near", time.Date(1987, time.January, 1, 0, 0, 0, 0, time.UTC), 40}, // 38, diff 3
		{"far band edge", time.Date(1985, time.January, 1, 0, 0, 0, 0, time.UTC), 40},  // 40, diff 5
		{"far over", time.Date(1980, time.January, 1, 0, 0, 0, 0, time.UTC), 0},      // 45, diff 10
		{"just under", time.Date(2001, time.January, 1, 0, 0, 0, 0, time.UTC), 70},   // 24, diff 1
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := candidate()
			c.DateOfBirth = tc.dob
			res := s.Score(prefs, c)
			assert.Equal(t, tc.want, res.Breakdown["age"])
		})
	}
}

// TestAgeAtBirthdayConvention: the current year counts only once the
// birthday has passed.
func TestAgeAtBirthdayConvention(t *testing.T) {
	dob := time.Date(1995, time.June, 16, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, 29, scoring.AgeAt(dob, fixedNow)) // birthday tomorrow

	dob = time.Date(1995, time.June, 15, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, 30, scoring.AgeAt(dob, fixedNow)) // birthday today
}

func TestHeightTiers(t *testing.T) {
	s := newTestScorer()
	prefs := fullPrefs() // [160,180]

	cases := []struct {
		height int
		want   int
	}{
		{170, 100},
		{184, 70}, // diff 4
		{188, 40}, // diff 8
		{195, 0},  // diff 15
		{157, 70}, // diff 3 under
	}

	for _, tc := range cases {
		c := candidate()
		c.HeightCM = tc.height
		res := s.Score(prefs, c)
		assert.Equal(t, tc.want, res.Breakdown["height"], "height %d", tc.height)
	}
}

func TestReligionIsHardFilter(t *testing.T) {
	s := newTestScorer()
	prefs := fullPrefs()

	c := candidate()
	c.Religion = "christian"
	assert.Equal(t, 0, s.Score(prefs, c).Breakdown["religion"])

	prefs.Religion = nil // unconstrained
	assert.Equal(t, 100, s.Score(prefs, c).Breakdown["religion"])
}

func TestCastePartialCredit(t *testing.T) {
	s := newTestScorer()

	prefs := fullPrefs()
	prefs.CasteNoBar = false
	prefs.Caste = db.StringList{"Brahmin"}

	c := candidate()
	c.Caste = "maratha"
	assert.Equal(t, 50, s.Score(prefs, c).Breakdown["caste"])

	// case-insensitive membership
	c.Caste = "BRAHMIN"
	assert.Equal(t, 100, s.Score(prefs, c).Breakdown["caste"])

	// no-bar overrides everything
	prefs.CasteNoBar = true
	c.Caste = "anything"
	assert.Equal(t, 100, s.Score(prefs, c).Breakdown["caste"])
}

func TestEducationAndDietPartialCredit(t *testing.T) {
	s := newTestScorer()
	prefs := fullPrefs()

	c := candidate()
	c.Education = "diploma"
	c.Diet = "vegan"

	res := s.Score(prefs, c)
	assert.Equal(t, 30, res.Breakdown["education"])
	assert.Equal(t, 30, res.Breakdown["diet"])
}

func TestMaritalStatusHardDisqualifier(t *testing.T) {
	s := newTestScorer()
	prefs := fullPrefs()

	c := candidate()
	c.MaritalStatus = "divorced"
	assert.Equal(t, 0, s.Score(prefs, c).Breakdown["marital_status"])
}

func TestLocationComposite(t *testing.T) {
	s := newTestScorer()
	c := candidate() // Pune / Maharashtra / India

	cases := []struct {
		name  string
		prefs *db.PartnerPreference
		want  int
	}{
		{
			name:  "all unset means unconstrained",
			prefs: &db.PartnerPreference{},
			want:  100,
		},
		{
			name: "city match, rest unset",
			prefs: &db.PartnerPreference{
				City: db.StringList{"pune"},
			},
			want: 75, // 50 + 15 + 10
		},
		{
			name: "city mismatch, rest unset",
			prefs: &db.PartnerPreference{
				City: db.StringList{"Mumbai"},
			},
			want: 25, // 0 + 15 + 10
		},
		{
			name: "full match on all three",
			prefs: &db.PartnerPreference{
				City:    db.StringList{"Pune"},
				State:   db.StringList{"maharashtra"},
				Country: db.StringList{"INDIA"},
			},
			want: 100,
		},
		{
			name: "country only, mismatch",
			prefs: &db.PartnerPreference{
				Country: db.StringList{"Canada"},
			},
			want: 40, // 25 + 15 + 0
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res := s.Score(tc.prefs, c)
			assert.Equal(t, tc.want, res.Breakdown["location"])
		})
	}
}

// TestScoreNormalization verifies totals divide by the weight actually
// used, so the percentage stays valid whatever the table sums to.
func TestScoreNormalization(t *testing.T) {
	s := newTestScorer()
	prefs := fullPrefs()

	// religion mismatch zeroes a 20-weight dimension:
	// (90-20)*100 / 90 = 77.8
	c := candidate()
	c.Religion = "christian"
	res := s.Score(prefs, c)
	assert.Equal(t, 77.8, res.Total)
	assert.True(t, res.GoodMatch)

	// marital mismatch zeroes a 10-weight dimension: 80*100/90 = 88.9
	c = candidate()
	c.MaritalStatus = "divorced"
	assert.Equal(t, 88.9, s.Score(prefs, c).Total)
}

// TestScoreZeroWeightDimensionSkipped: zero-weight dimensions drop out of
// both the breakdown and the normalization divisor.
func TestScoreZeroWeightDimensionSkipped(t *testing.T) {
	w := scoring.DefaultWeights()
	w.Diet = 0
	s := scoring.NewScorerAt(w, func() time.Time { return fixedNow })

	c := candidate()
	c.Diet = "vegan" // would score 30 if diet were weighted

	res := s.Score(fullPrefs(), c)
	_, ok := res.Breakdown["diet"]
	assert.False(t, ok)
	assert.Equal(t, 100.0, res.Total)
}

// TestScoreTotalInRange: totals stay in [0,100] across degenerate inputs.
func TestScoreTotalInRange(t *testing.T) {
	s := newTestScorer()

	profiles := []*db.Profile{
		candidate(),
		{}, // zero-valued profile
		{
			DateOfBirth:   time.Date(1950, 1, 1, 0, 0, 0, 0, time.UTC),
			HeightCM:      210,
			Religion:      "other",
			MaritalStatus: "widowed",
		},
	}
	prefSets := []*db.PartnerPreference{
		nil,
		{},
		fullPrefs(),
		{
			AgeFrom:       18,
			AgeTo:         19,
			HeightFrom:    140,
			HeightTo:      141,
			Religion:      db.StringList{"x"},
			Caste:         db.StringList{"y"},
			Education:     db.StringList{"z"},
			City:          db.StringList{"nowhere"},
			Diet:          db.StringList{"none"},
			MaritalStatus: db.StringList{"never_married"},
		},
	}

	for _, p := range prefSets {
		for _, c := range profiles {
			res := s.Score(p, c)
			require.GreaterOrEqual(t, res.Total, 0.0)
			require.LessOrEqual(t, res.Total, 100.0)
		}
	}
}
