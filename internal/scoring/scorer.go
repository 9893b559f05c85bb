package scoring

import (
	"math"
	"strings"
	"time"

	"github.com/soulconnect/matching/internal/db"
)

// GoodMatchThreshold is the total score at which a candidate counts as a
// good match.
const GoodMatchThreshold = 60.0

// NeutralScore is returned when the requester has no preference record at
// all. Missing preferences must never fail a ranking request.
const NeutralScore = 50.0

// Result is the outcome of scoring one candidate against one preference
// record. Breakdown holds the raw 0-100 score per dimension, before
// weighting.
type Result struct {
	Total     float64        `json:"total"`
	Breakdown map[string]int `json:"breakdown"`
	GoodMatch bool           `json:"good_match"`
}

// Scorer computes compatibility scores. It is pure: no I/O, no stored
// state beyond the weight table and the clock used for age calculation.
type Scorer struct {
	weights Weights
	now     func() time.Time
}

// NewScorer creates a scorer with the given weight table and the real
// clock.
func NewScorer(w Weights) *Scorer {
	return &Scorer{weights: w, now: time.Now}
}

// NewScorerAt creates a scorer with a fixed clock, for deterministic
// age scoring in tests.
func NewScorerAt(w Weights, now func() time.Time) *Scorer {
	return &Scorer{weights: w, now: now}
}

// dimension binds a name, its weight, and its scoring function.
type dimension struct {
	name   string
	weight int
	fn     func(prefs *db.PartnerPreference, c *db.Profile) int
}

func (s *Scorer) dimensions() []dimension {
	return []dimension{
		{"age", s.weights.Age, s.ageScore},
		{"height", s.weights.Height, heightScore},
		{"religion", s.weights.Religion, religionScore},
		{"caste", s.weights.Caste, casteScore},
		{"education", s.weights.Education, educationScore},
		{"location", s.weights.Location, locationScore},
		{"diet", s.weights.Diet, dietScore},
		{"marital_status", s.weights.MaritalStatus, maritalStatusScore},
	}
}

// Score computes the weighted compatibility of a candidate against a
// preference record. A nil preference record yields the neutral baseline
// rather than an error.
func (s *Scorer) Score(prefs *db.PartnerPreference, candidate *db.Profile) Result {
	if prefs == nil {
		return Result{
			Total:     NeutralScore,
			Breakdown: map[string]int{},
			GoodMatch: false,
		}
	}

	weighted := 0
	totalWeight := 0
	breakdown := make(map[string]int)

	for _, d := range s.dimensions() {
		if d.weight <= 0 {
			continue
		}
		score := d.fn(prefs, candidate)
		breakdown[d.name] = score
		weighted += score * d.weight
		totalWeight += d.weight
	}

	total := round1(float64(weighted) / float64(totalWeight))
	return Result{
		Total:     total,
		Breakdown: breakdown,
		GoodMatch: total >= GoodMatchThreshold,
	}
}

// AgeAt computes age with the birthday convention: the current year only
// counts once the birthday has passed.
func AgeAt(dob, now time.Time) int {
	age := now.Year() - dob.Year()
	if now.Month() < dob.Month() ||
		(now.Month() == dob.Month() && now.Day() < dob.Day()) {
		age--
	}
	return age
}

func (s *Scorer) ageScore(prefs *db.PartnerPreference, c *db.Profile) int {
	if prefs.AgeFrom == 0 && prefs.AgeTo == 0 {
		return 100 // no preference
	}
	age := AgeAt(c.DateOfBirth, s.now())
	return tieredRange(age, prefs.AgeFrom, prefs.AgeTo, 2, 5)
}

func heightScore(prefs *db.PartnerPreference, c *db.Profile) int {
	if prefs.HeightFrom == 0 || prefs.HeightTo == 0 {
		return 100 // no preference
	}
	return tieredRange(c.HeightCM, prefs.HeightFrom, prefs.HeightTo, 5, 10)
}

func religionScore(prefs *db.PartnerPreference, c *db.Profile) int {
	if len(prefs.Religion) == 0 {
		return 100
	}
	if prefs.Religion.Contains(c.Religion) {
		return 100
	}
	return 0
}

func casteScore(prefs *db.PartnerPreference, c *db.Profile) int {
	if prefs.CasteNoBar {
		return 100
	}
	if len(prefs.Caste) == 0 {
		return 100
	}
	if containsFold(prefs.Caste, c.Caste) {
		return 100
	}
	return 50 // different caste is not a hard disqualifier
}

func educationScore(prefs *db.PartnerPreference, c *db.Profile) int {
	if len(prefs.Education) == 0 {
		return 100
	}
	if prefs.Education.Contains(c.Education) {
		return 100
	}
	return 30
}

// locationScore combines city/state/country sub-checks additively. With no
// location preference at all the dimension is unconstrained and scores 100,
// consistent with every other dimension. Unset sub-preferences contribute
// half their weight.
func locationScore(prefs *db.PartnerPreference, c *db.Profile) int {
	if len(prefs.City) == 0 && len(prefs.State) == 0 && len(prefs.Country) == 0 {
		return 100
	}

	score := 0

	if len(prefs.City) > 0 {
		if containsFold(prefs.City, c.City) {
			score += 50
		}
	} else {
		score += 25
	}

	if len(prefs.State) > 0 {
		if containsFold(prefs.State, c.State) {
			score += 30
		}
	} else {
		score += 15
	}

	if len(prefs.Country) > 0 {
		if containsFold(prefs.Country, c.Country) {
			score += 20
		}
	} else {
		score += 10
	}

	return score
}

func dietScore(prefs *db.PartnerPreference, c *db.Profile) int {
	if len(prefs.Diet) == 0 {
		return 100
	}
	if prefs.Diet.Contains(c.Diet) {
		return 100
	}
	return 30
}

func maritalStatusScore(prefs *db.PartnerPreference, c *db.Profile) int {
	if len(prefs.MaritalStatus) == 0 {
		return 100
	}
	if prefs.MaritalStatus.Contains(c.MaritalStatus) {
		return 100
	}
	return 0 // hard disqualifier
}

// tieredRange scores 100 inside [from, to], then degrades by distance from
// the nearest bound: within near -> 70, within far -> 40, else 0.
func tieredRange(v, from, to, near, far int) int {
	if v >= from && v <= to {
		return 100
	}
	var diff int
	if v < from {
		diff = from - v
	} else {
		diff = v - to
	}
	if diff <= near {
		return 70
	}
	if diff <= far {
		return 40
	}
	return 0
}

func containsFold(list db.StringList, s string) bool {
	for _, v := range list {
		if strings.EqualFold(v, s) {
			return true
		}
	}
	return false
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
