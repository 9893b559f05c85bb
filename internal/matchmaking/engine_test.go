package matchmaking_test

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/soulconnect/matching/internal/app"
	"github.com/soulconnect/matching/internal/cache"
	"github.com/soulconnect/matching/internal/config"
	"github.com/soulconnect/matching/internal/db"
	"github.com/soulconnect/matching/internal/matchmaking"
)

//
// Test helpers
//

type fixture struct {
	engine *matchmaking.Engine
	db     *gorm.DB
}

// setupEngine spins up an in-memory SQLite DB, applies migrations, starts
// a miniredis, and wires everything into an Engine. Each test gets its own
// isolated DB + Redis.
func setupEngine(t *testing.T) *fixture {
	t.Helper()

	dbName := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	dbase, err := gorm.Open(sqlite.Open(dbName), &gorm.Config{
		NowFunc:                func() time.Time { return time.Now().UTC().Truncate(time.Millisecond) },
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	sqlDB, err := dbase.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, dbase.AutoMigrate(db.Models()...))

	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(func() { mr.Close() })

	cfg := config.New()
	cfg.Redis.Addr = mr.Addr()

	redisCache := cache.NewRedisCache(cfg)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil)) // discard logs in tests

	appCtx := app.New(dbase, redisCache, logger, cfg)
	return &fixture{
		engine: matchmaking.NewEngine(appCtx),
		db:     dbase,
	}
}

func (f *fixture) profile(t *testing.T, id uint64, gender string, mutate ...func(*db.Profile)) *db.Profile {
	t.Helper()
	p := &db.Profile{
		ID:            id,
		Email:         fmt.Sprintf("p%d@test.com", id),
		PasswordHash:  "x",
		FullName:      fmt.Sprintf("Profile %d", id),
		Gender:        gender,
		DateOfBirth:   time.Now().UTC().AddDate(-30, 0, -1),
		HeightCM:      170,
		Religion:      "hindu",
		Caste:         "maratha",
		Education:     "bachelors",
		City:          "Pune",
		State:         "Maharashtra",
		Country:       "India",
		Diet:          "vegetarian",
		MaritalStatus: "never_married",
		Active:        true,
		Approved:      true,
	}
	for _, m := range mutate {
		m(p)
	}
	require.NoError(t, f.db.Create(p).Error)
	return p
}

func (f *fixture) matchCount(t *testing.T) int64 {
	t.Helper()
	var count int64
	require.NoError(t, f.db.Model(&db.Match{}).Count(&count).Error)
	return count
}

//
// Interaction state machine
//

// TestMutualLikeFormsSingleMatch: A likes B, then B likes A. Exactly one
// match exists and chat stays locked for two free members.
func TestMutualLikeFormsSingleMatch(t *testing.T) {
	ctx := context.Background()
	f := setupEngine(t)
	f.profile(t, 1, db.GenderMale)
	f.profile(t, 2, db.GenderFemale)

	out, err := f.engine.SendLike(ctx, 1, 2, "", "")
	require.NoError(t, err)
	assert.False(t, out.Matched)

	out, err = f.engine.SendLike(ctx, 2, 1, "", "hi!")
	require.NoError(t, err)
	require.True(t, out.Matched)
	require.NotNil(t, out.Match)

	assert.Equal(t, uint64(1), out.Match.Profile1ID)
	assert.Equal(t, uint64(2), out.Match.Profile2ID)
	assert.Equal(t, db.MatchStatusActive, out.Match.Status)
	assert.False(t, out.Match.ChatUnlocked)
	assert.Equal(t, int64(1), f.matchCount(t))
}

// TestPremiumUnlocksChatAtCreation: a match with a premium participant is
// born with chat unlocked.
func TestPremiumUnlocksChatAtCreation(t *testing.T) {
	ctx := context.Background()
	f := setupEngine(t)
	f.profile(t, 1, db.GenderMale, func(p *db.Profile) { p.Premium = true })
	f.profile(t, 2, db.GenderFemale)

	_, err := f.engine.SendLike(ctx, 1, 2, "", "")
	require.NoError(t, err)
	out, err := f.engine.SendLike(ctx, 2, 1, "", "")
	require.NoError(t, err)

	require.True(t, out.Matched)
	assert.True(t, out.Match.ChatUnlocked)
}

func TestSelfActionsRejected(t *testing.T) {
	ctx := context.Background()
	f := setupEngine(t)
	f.profile(t, 1, db.GenderMale)

	_, err := f.engine.SendLike(ctx, 1, 1, "", "")
	assert.ErrorIs(t, err, matchmaking.ErrSelfAction)

	err = f.engine.SendPass(ctx, 1, 1)
	assert.ErrorIs(t, err, matchmaking.ErrSelfAction)

	err = f.engine.Block(ctx, 1, 1)
	assert.ErrorIs(t, err, matchmaking.ErrSelfAction)

	_, err = f.engine.SendInterest(ctx, 1, 1, "")
	assert.ErrorIs(t, err, matchmaking.ErrSelfAction)
}

func TestDuplicateLikeRejected(t *testing.T) {
	ctx := context.Background()
	f := setupEngine(t)
	f.profile(t, 1, db.GenderMale)
	f.profile(t, 2, db.GenderFemale)

	_, err := f.engine.SendLike(ctx, 1, 2, "", "")
	require.NoError(t, err)

	_, err = f.engine.SendLike(ctx, 1, 2, "", "")
	assert.ErrorIs(t, err, matchmaking.ErrAlreadyLiked)
}

func TestLikeUnknownProfile(t *testing.T) {
	ctx := context.Background()
	f := setupEngine(t)
	f.profile(t, 1, db.GenderMale)

	_, err := f.engine.SendLike(ctx, 1, 404, "", "")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestPassDoesNotAffectMatches(t *testing.T) {
	ctx := context.Background()
	f := setupEngine(t)
	f.profile(t, 1, db.GenderMale)
	f.profile(t, 2, db.GenderFemale)

	_, err := f.engine.SendLike(ctx, 1, 2, "", "")
	require.NoError(t, err)
	out, err := f.engine.SendLike(ctx, 2, 1, "", "")
	require.NoError(t, err)
	require.True(t, out.Matched)

	// a later pass is recorded but the match survives
	require.NoError(t, f.engine.SendPass(ctx, 1, 2))

	matches, err := f.engine.ListMatches(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, matches, 1)
}

//
// Interest requests
//

// TestInterestAcceptConvergesOnMatch: accepting an interest request
// creates reciprocal likes and forms the match through the same primitive
// as a direct mutual like.
func TestInterestAcceptConvergesOnMatch(t *testing.T) {
	ctx := context.Background()
	f := setupEngine(t)
	f.profile(t, 1, db.GenderMale)
	f.profile(t, 2, db.GenderFemale)

	req, err := f.engine.SendInterest(ctx, 1, 2, "namaste")
	require.NoError(t, err)

	out, err := f.engine.RespondInterest(ctx, req.ID, 2, true)
	require.NoError(t, err)
	assert.True(t, out.Accepted)
	require.NotZero(t, out.MatchID)

	// both like edges exist
	var likeCount int64
	require.NoError(t, f.db.Model(&db.Like{}).Count(&likeCount).Error)
	assert.Equal(t, int64(2), likeCount)

	assert.Equal(t, int64(1), f.matchCount(t))
}

// TestInterestAcceptAfterExistingLike: one direction already liked; the
// acceptance supplies the reverse edge and still yields a single match.
func TestInterestAcceptAfterExistingLike(t *testing.T) {
	ctx := context.Background()
	f := setupEngine(t)
	f.profile(t, 1, db.GenderMale)
	f.profile(t, 2, db.GenderFemale)

	_, err := f.engine.SendLike(ctx, 2, 1, "", "")
	require.NoError(t, err)

	req, err := f.engine.SendInterest(ctx, 1, 2, "")
	require.NoError(t, err)
	out, err := f.engine.RespondInterest(ctx, req.ID, 2, true)
	require.NoError(t, err)

	require.NotZero(t, out.MatchID)
	assert.Equal(t, int64(1), f.matchCount(t))
}

func TestInterestDeclineHasNoSideEffects(t *testing.T) {
	ctx := context.Background()
	f := setupEngine(t)
	f.profile(t, 1, db.GenderMale)
	f.profile(t, 2, db.GenderFemale)

	req, err := f.engine.SendInterest(ctx, 1, 2, "")
	require.NoError(t, err)

	out, err := f.engine.RespondInterest(ctx, req.ID, 2, false)
	require.NoError(t, err)
	assert.False(t, out.Accepted)

	var likeCount int64
	require.NoError(t, f.db.Model(&db.Like{}).Count(&likeCount).Error)
	assert.Zero(t, likeCount)
	assert.Zero(t, f.matchCount(t))

	// declined is terminal
	_, err = f.engine.RespondInterest(ctx, req.ID, 2, true)
	assert.ErrorIs(t, err, matchmaking.ErrRequestResolved)
}

func TestInterestGuards(t *testing.T) {
	ctx := context.Background()
	f := setupEngine(t)
	f.profile(t, 1, db.GenderMale)
	f.profile(t, 2, db.GenderFemale)
	f.profile(t, 3, db.GenderFemale)

	req, err := f.engine.SendInterest(ctx, 1, 2, "")
	require.NoError(t, err)

	// one request per ordered pair
	_, err = f.engine.SendInterest(ctx, 1, 2, "again")
	assert.ErrorIs(t, err, matchmaking.ErrDuplicateInterest)

	// only the recipient may respond
	_, err = f.engine.RespondInterest(ctx, req.ID, 3, true)
	assert.ErrorIs(t, err, matchmaking.ErrNotParticipant)
	_, err = f.engine.RespondInterest(ctx, req.ID, 1, true)
	assert.ErrorIs(t, err, matchmaking.ErrNotParticipant)
}

//
// Match lifecycle
//

func mutualMatch(t *testing.T, ctx context.Context, f *fixture, a, b uint64) *db.Match {
	t.Helper()
	_, err := f.engine.SendLike(ctx, a, b, "", "")
	require.NoError(t, err)
	out, err := f.engine.SendLike(ctx, b, a, "", "")
	require.NoError(t, err)
	require.True(t, out.Matched)
	return out.Match
}

// TestUnmatchIsPermanentPerPair: after an unmatch, the canonical row stays
// unmatched and a fresh convergence attempt does not resurrect it.
func TestUnmatchIsPermanentPerPair(t *testing.T) {
	ctx := context.Background()
	f := setupEngine(t)
	f.profile(t, 1, db.GenderMale)
	f.profile(t, 2, db.GenderFemale)

	match := mutualMatch(t, ctx, f, 1, 2)
	require.NoError(t, f.engine.Unmatch(ctx, match.ID, 1))

	// like edges survive the unmatch
	var likeCount int64
	require.NoError(t, f.db.Model(&db.Like{}).Count(&likeCount).Error)
	assert.Equal(t, int64(2), likeCount)

	// interest acceptance re-runs the formation primitive, which finds
	// the unmatched row and reports no new match
	req, err := f.engine.SendInterest(ctx, 1, 2, "")
	require.NoError(t, err)
	out, err := f.engine.RespondInterest(ctx, req.ID, 2, true)
	require.NoError(t, err)
	assert.True(t, out.Accepted)
	assert.Zero(t, out.MatchID)
	assert.Equal(t, int64(1), f.matchCount(t))

	// unmatch from an already-ended match fails cleanly
	err = f.engine.Unmatch(ctx, match.ID, 2)
	assert.ErrorIs(t, err, matchmaking.ErrMatchNotActive)
}

func TestUnmatchRequiresParticipant(t *testing.T) {
	ctx := context.Background()
	f := setupEngine(t)
	f.profile(t, 1, db.GenderMale)
	f.profile(t, 2, db.GenderFemale)
	f.profile(t, 3, db.GenderMale)

	match := mutualMatch(t, ctx, f, 1, 2)
	err := f.engine.Unmatch(ctx, match.ID, 3)
	assert.ErrorIs(t, err, matchmaking.ErrNotParticipant)
}

func TestChatRequestUnlocksMatch(t *testing.T) {
	ctx := context.Background()
	f := setupEngine(t)
	f.profile(t, 1, db.GenderMale)
	f.profile(t, 2, db.GenderFemale)

	match := mutualMatch(t, ctx, f, 1, 2)
	require.False(t, match.ChatUnlocked)

	req, err := f.engine.SendChatRequest(ctx, match.ID, 1, "may we talk?")
	require.NoError(t, err)

	// the requester cannot answer their own request
	err = f.engine.RespondChatRequest(ctx, req.ID, 1, true)
	assert.ErrorIs(t, err, matchmaking.ErrNotParticipant)

	require.NoError(t, f.engine.RespondChatRequest(ctx, req.ID, 2, true))

	got, err := f.engine.GetMatch(ctx, match.ID, 1)
	require.NoError(t, err)
	assert.True(t, got.ChatUnlocked)

	// further chat requests are pointless once unlocked
	_, err = f.engine.SendChatRequest(ctx, match.ID, 2, "")
	assert.ErrorIs(t, err, matchmaking.ErrChatAlreadyUnlocked)
}

func TestDuplicateChatRequestRejected(t *testing.T) {
	ctx := context.Background()
	f := setupEngine(t)
	f.profile(t, 1, db.GenderMale)
	f.profile(t, 2, db.GenderFemale)

	match := mutualMatch(t, ctx, f, 1, 2)

	_, err := f.engine.SendChatRequest(ctx, match.ID, 1, "")
	require.NoError(t, err)
	_, err = f.engine.SendChatRequest(ctx, match.ID, 1, "")
	assert.ErrorIs(t, err, matchmaking.ErrDuplicateChatRequest)
}

//
// Recommendations and compatibility
//

func TestRecommendationsExcludeInteracted(t *testing.T) {
	ctx := context.Background()
	f := setupEngine(t)
	f.profile(t, 1, db.GenderMale)
	f.profile(t, 2, db.GenderFemale)
	liked := f.profile(t, 3, db.GenderFemale)
	f.profile(t, 4, db.GenderFemale)

	_, err := f.engine.SendLike(ctx, 1, liked.ID, "", "")
	require.NoError(t, err)

	recs, err := f.engine.Recommendations(ctx, 1, 0)
	require.NoError(t, err)

	require.Len(t, recs, 2)
	for _, r := range recs {
		assert.NotEqual(t, liked.ID, r.Profile.ID)
		assert.NotEqual(t, uint64(1), r.Profile.ID)
	}
}

func TestRecommendationsRankByPreferences(t *testing.T) {
	ctx := context.Background()
	f := setupEngine(t)
	f.profile(t, 1, db.GenderMale)
	require.NoError(t, f.db.Create(&db.PartnerPreference{
		ProfileID: 1,
		AgeFrom:   25,
		AgeTo:     35,
		Religion:  db.StringList{"hindu"},
		Diet:      db.StringList{"vegetarian"},
	}).Error)

	f.profile(t, 2, db.GenderFemale, func(p *db.Profile) { p.Religion = "christian" })
	perfect := f.profile(t, 3, db.GenderFemale)

	recs, err := f.engine.Recommendations(ctx, 1, 0)
	require.NoError(t, err)
	require.Len(t, recs, 2)

	assert.Equal(t, perfect.ID, recs[0].Profile.ID)
	assert.Greater(t, recs[0].Score, recs[1].Score)
	assert.True(t, recs[0].GoodMatch)
}

func TestCompatibilityWithoutPreferencesIsNeutral(t *testing.T) {
	ctx := context.Background()
	f := setupEngine(t)
	f.profile(t, 1, db.GenderMale)
	f.profile(t, 2, db.GenderFemale)

	res, err := f.engine.Compatibility(ctx, 1, 2)
	require.NoError(t, err)
	assert.Equal(t, 50.0, res.Total)
	assert.Empty(t, res.Breakdown)
	assert.False(t, res.GoodMatch)

	_, err = f.engine.Compatibility(ctx, 1, 1)
	assert.ErrorIs(t, err, matchmaking.ErrSelfAction)
}

//
// Admirers
//

func TestAdmirersPremiumGate(t *testing.T) {
	ctx := context.Background()
	f := setupEngine(t)
	f.profile(t, 1, db.GenderMale)
	f.profile(t, 2, db.GenderFemale, func(p *db.Profile) { p.Premium = true })
	f.profile(t, 3, db.GenderMale)

	_, err := f.engine.SendLike(ctx, 1, 2, "", "")
	require.NoError(t, err)

	likes, _, err := f.engine.Admirers(ctx, 2, nil, 10)
	require.NoError(t, err)
	require.Len(t, likes, 1)
	assert.Equal(t, uint64(1), likes[0].FromID)

	// free member
	_, _, err = f.engine.Admirers(ctx, 3, nil, 10)
	assert.ErrorIs(t, err, matchmaking.ErrPremiumRequired)
}

// TestCountAdmirersCacheFirst: first call hits the DB and fills Redis; the
// second is served from the cache.
func TestCountAdmirersCacheFirst(t *testing.T) {
	ctx := context.Background()
	f := setupEngine(t)
	f.profile(t, 1, db.GenderMale)
	f.profile(t, 2, db.GenderFemale)

	_, err := f.engine.SendLike(ctx, 1, 2, "", "")
	require.NoError(t, err)

	count, err := f.engine.CountAdmirers(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	// cached now; a direct DB divergence is not visible until expiry
	require.NoError(t, f.db.Exec("DELETE FROM likes").Error)
	count, err = f.engine.CountAdmirers(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

// TestLikeDoesNotSeedStaleAdmirerCount: a like with no cached counter must
// not start one at 1 when the DB already holds more likes; the counter is
// only incremented once a read has populated it.
func TestLikeDoesNotSeedStaleAdmirerCount(t *testing.T) {
	ctx := context.Background()
	f := setupEngine(t)
	f.profile(t, 1, db.GenderMale)
	f.profile(t, 2, db.GenderFemale)
	f.profile(t, 3, db.GenderMale)
	f.profile(t, 4, db.GenderMale)
	f.profile(t, 5, db.GenderMale)

	// likes that predate any cached counter
	require.NoError(t, f.db.Create(&db.Like{FromID: 3, ToID: 2, LikeType: db.LikeTypeLike}).Error)
	require.NoError(t, f.db.Create(&db.Like{FromID: 4, ToID: 2, LikeType: db.LikeTypeLike}).Error)

	_, err := f.engine.SendLike(ctx, 1, 2, "", "")
	require.NoError(t, err)

	count, err := f.engine.CountAdmirers(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)

	// the counter is cached now, so a further like increments it in place
	_, err = f.engine.SendLike(ctx, 5, 2, "", "")
	require.NoError(t, err)

	require.NoError(t, f.db.Exec("DELETE FROM likes").Error)
	count, err = f.engine.CountAdmirers(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(4), count)
}
