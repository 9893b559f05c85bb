package repository_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/soulconnect/matching/internal/db"
	"github.com/soulconnect/matching/internal/repository"
)

func seedProfile(t *testing.T, gdb *gorm.DB, id uint64, gender string, mutate ...func(*db.Profile)) *db.Profile {
	t.Helper()
	p := &db.Profile{
		ID:           id,
		Email:        fmt.Sprintf("p%d@test.com", id),
		PasswordHash: "x",
		FullName:     "Profile",
		Gender:       gender,
		DateOfBirth:  time.Date(1995, 1, 1, 0, 0, 0, 0, time.UTC),
		HeightCM:     170,
		Active:       true,
		Approved:     true,
	}
	for _, m := range mutate {
		m(p)
	}
	require.NoError(t, gdb.Create(p).Error)
	return p
}

// TestProfileFlagsPersistZeroValues: a profile written inactive or
// unapproved must read back that way. The pool filter depends on the
// stored flags, so a column default must never override a false value.
func TestProfileFlagsPersistZeroValues(t *testing.T) {
	dbase := setupTestDB(t)

	seedProfile(t, dbase, 1, db.GenderFemale, func(p *db.Profile) {
		p.Active = false
		p.Approved = false
	})

	var got db.Profile
	require.NoError(t, dbase.First(&got, 1).Error)
	assert.False(t, got.Active)
	assert.False(t, got.Approved)
	assert.False(t, got.Banned)
}

func TestGetPreferencesMissingIsNotAnError(t *testing.T) {
	ctx := context.Background()
	dbase := setupTestDB(t)
	repo := repository.NewProfileRepository(dbase)

	prefs, err := repo.GetPreferences(ctx, 42)
	require.NoError(t, err)
	assert.Nil(t, prefs)

	require.NoError(t, dbase.Create(&db.PartnerPreference{ProfileID: 42, AgeFrom: 25, AgeTo: 35}).Error)

	prefs, err = repo.GetPreferences(ctx, 42)
	require.NoError(t, err)
	require.NotNil(t, prefs)
	assert.Equal(t, 25, prefs.AgeFrom)
}

func TestGetCandidatesFiltersAndExclusions(t *testing.T) {
	ctx := context.Background()
	dbase := setupTestDB(t)
	profiles := repository.NewProfileRepository(dbase)
	interactions := repository.NewInteractionRepository(dbase)

	requester := seedProfile(t, dbase, 1, db.GenderMale)

	eligible := seedProfile(t, dbase, 2, db.GenderFemale)
	seedProfile(t, dbase, 3, db.GenderMale)   // same gender
	seedProfile(t, dbase, 4, db.GenderFemale, func(p *db.Profile) { p.Active = false })
	seedProfile(t, dbase, 5, db.GenderFemale, func(p *db.Profile) { p.Approved = false })
	seedProfile(t, dbase, 6, db.GenderFemale, func(p *db.Profile) { p.Banned = true })
	liked := seedProfile(t, dbase, 7, db.GenderFemale)
	passed := seedProfile(t, dbase, 8, db.GenderFemale)
	blocked := seedProfile(t, dbase, 9, db.GenderFemale)
	blocker := seedProfile(t, dbase, 10, db.GenderFemale)
	excluded := seedProfile(t, dbase, 11, db.GenderFemale)

	_, err := interactions.CreateLike(ctx, requester.ID, liked.ID, db.LikeTypeLike, "")
	require.NoError(t, err)
	require.NoError(t, interactions.CreatePass(ctx, requester.ID, passed.ID))
	require.NoError(t, interactions.CreateBlock(ctx, requester.ID, blocked.ID))
	require.NoError(t, interactions.CreateBlock(ctx, blocker.ID, requester.ID))

	candidates, err := profiles.GetCandidates(ctx, requester, []uint64{excluded.ID}, 100)
	require.NoError(t, err)

	require.Len(t, candidates, 1)
	assert.Equal(t, eligible.ID, candidates[0].ID)
}

func TestGetCandidatesOrderedAndBounded(t *testing.T) {
	ctx := context.Background()
	dbase := setupTestDB(t)
	profiles := repository.NewProfileRepository(dbase)

	requester := seedProfile(t, dbase, 1, db.GenderFemale)
	for id := uint64(2); id <= 12; id++ {
		seedProfile(t, dbase, id, db.GenderMale)
	}

	candidates, err := profiles.GetCandidates(ctx, requester, nil, 5)
	require.NoError(t, err)
	require.Len(t, candidates, 5)

	// id order keeps downstream ranking deterministic
	for i := 1; i < len(candidates); i++ {
		assert.Greater(t, candidates[i].ID, candidates[i-1].ID)
	}
}
