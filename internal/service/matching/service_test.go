package matching_test

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
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/soulconnect/matching/internal/app"
	"github.com/soulconnect/matching/internal/cache"
	"github.com/soulconnect/matching/internal/config"
	"github.com/soulconnect/matching/internal/db"
	pb "github.com/soulconnect/matching/internal/proto/matching"
	"github.com/soulconnect/matching/internal/service/matching"
)

//
// Test helpers
//

// SeedMinimalTestData wipes the DB and inserts a minimal, deterministic
// dataset for repeatable service tests.
//
// Dataset:
//   - Profiles: profile1 (male), profile2 (female, premium), profile3 (female)
//   - Likes:
//   - profile1 → profile2 = like
//   - profile3 → profile1 = like (hidden later because profile1 passed 3)
//   - Passes:
//   - profile1 → profile3
//
// This dataset allows us to test all cases:
//   - mutual like detection (2 likes back 1)
//   - filtering out passed admirers
//   - premium gating on the admirer list
//   - cache counting correctness
func SeedMinimalTestData(t *testing.T, gdb *gorm.DB) {
	t.Helper()

	// Clean slate
	require.NoError(t, gdb.Exec("DELETE FROM likes").Error)
	require.NoError(t, gdb.Exec("DELETE FROM passes").Error)
	require.NoError(t, gdb.Exec("DELETE FROM profiles").Error)

	dob := time.Now().UTC().AddDate(-30, 0, -1)
	profiles := []db.Profile{
		{ID: 1, Email: "p1@test.com", PasswordHash: "x", FullName: "Profile One", Gender: db.GenderMale, DateOfBirth: dob, Active: true, Approved: true},
		{ID: 2, Email: "p2@test.com", PasswordHash: "x", FullName: "Profile Two", Gender: db.GenderFemale, DateOfBirth: dob, Active: true, Approved: true, Premium: true},
		{ID: 3, Email: "p3@test.com", PasswordHash: "x", FullName: "Profile Three", Gender: db.GenderFemale, DateOfBirth: dob, Active: true, Approved: true},
	}
	require.NoError(t, gdb.Create(&profiles).Error)

	likes := []db.Like{
		{FromID: 1, ToID: 2, LikeType: db.LikeTypeLike}, // profile1 → profile2
		{FromID: 3, ToID: 1, LikeType: db.LikeTypeLike}, // profile3 → profile1 (excluded later)
	}
	require.NoError(t, gdb.Create(&likes).Error)

	require.NoError(t, gdb.Create(&db.Pass{FromID: 1, ToID: 3}).Error)
}

// setupService spins up an in-memory SQLite DB, applies migrations, seeds
// test data, starts a miniredis, and wires everything into a matching
// Service instance.
//
// Each test gets its own isolated DB + Redis.
func setupService(t *testing.T) *matching.Service {
	t.Helper()

	// In-memory SQLite
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

	// Auto-migrate schema
	require.NoError(t, dbase.AutoMigrate(db.Models()...))

	// Seed data
	SeedMinimalTestData(t, dbase)

	// Fake Redis
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(func() { mr.Close() })

	cfg := config.New()
	cfg.Redis.Addr = mr.Addr()

	redisCache := cache.NewRedisCache(cfg)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil)) // discard logs in tests

	appCtx := app.New(dbase, redisCache, logger, cfg)
	return matching.NewMatchingService(appCtx)
}

//
// Tests
//

// TestSendLikeAndMutualMatch ensures that a mutual like is correctly
// detected when profile2 likes back profile1, who already liked profile2
// in the seed dataset.
func TestSendLikeAndMutualMatch(t *testing.T) {
	ctx := context.Background()
	svc := setupService(t)

	resp, err := svc.SendLike(ctx, &pb.SendLikeRequest{
		FromProfileId: "2",
		ToProfileId:   "1",
	})
	require.NoError(t, err)

	// mutual like confirmed (1 ↔ 2)
	assert.True(t, resp.IsMatch)
	require.NotNil(t, resp.MatchId)

	matches, err := svc.ListMatches(ctx, &pb.ListMatchesRequest{ProfileId: "1"})
	require.NoError(t, err)
	require.Len(t, matches.Matches, 1)
	assert.Equal(t, *resp.MatchId, matches.Matches[0].MatchId)
	assert.Equal(t, "1", matches.Matches[0].Profile1Id)
	assert.Equal(t, "2", matches.Matches[0].Profile2Id)
	// profile2 is premium, so chat unlocks at creation
	assert.True(t, matches.Matches[0].ChatUnlocked)
}

func TestSendLikeInvalidID(t *testing.T) {
	ctx := context.Background()
	svc := setupService(t)

	_, err := svc.SendLike(ctx, &pb.SendLikeRequest{
		FromProfileId: "not-a-number",
		ToProfileId:   "1",
	})
	require.Error(t, err)
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestSendLikeDuplicateMapsToAlreadyExists(t *testing.T) {
	ctx := context.Background()
	svc := setupService(t)

	// seed already has 1 → 2
	_, err := svc.SendLike(ctx, &pb.SendLikeRequest{
		FromProfileId: "1",
		ToProfileId:   "2",
	})
	require.Error(t, err)
	assert.Equal(t, codes.AlreadyExists, status.Code(err))
}

func TestUnmatchAndStatusCodes(t *testing.T) {
	ctx := context.Background()
	svc := setupService(t)

	resp, err := svc.SendLike(ctx, &pb.SendLikeRequest{FromProfileId: "2", ToProfileId: "1"})
	require.NoError(t, err)
	require.NotNil(t, resp.MatchId)

	// outsider cannot unmatch
	_, err = svc.Unmatch(ctx, &pb.UnmatchRequest{MatchId: *resp.MatchId, ProfileId: "3"})
	assert.Equal(t, codes.PermissionDenied, status.Code(err))

	_, err = svc.Unmatch(ctx, &pb.UnmatchRequest{MatchId: *resp.MatchId, ProfileId: "1"})
	require.NoError(t, err)

	// a second unmatch hits the terminal state
	_, err = svc.Unmatch(ctx, &pb.UnmatchRequest{MatchId: *resp.MatchId, ProfileId: "2"})
	assert.Equal(t, codes.FailedPrecondition, status.Code(err))

	matches, err := svc.ListMatches(ctx, &pb.ListMatchesRequest{ProfileId: "1"})
	require.NoError(t, err)
	assert.Empty(t, matches.Matches)
}

func TestRespondInterestActionValidation(t *testing.T) {
	ctx := context.Background()
	svc := setupService(t)

	// profile3 already liked profile1 in the seed; acceptance only needs to
	// supply the reverse edge
	sent, err := svc.SendInterest(ctx, &pb.SendInterestRequest{
		FromProfileId: "3",
		ToProfileId:   "1",
	})
	require.NoError(t, err)

	_, err = svc.RespondInterest(ctx, &pb.RespondInterestRequest{
		RequestId: sent.RequestId,
		ProfileId: "1",
		Action:    "maybe",
	})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))

	resp, err := svc.RespondInterest(ctx, &pb.RespondInterestRequest{
		RequestId: sent.RequestId,
		ProfileId: "1",
		Action:    "accept",
	})
	require.NoError(t, err)
	assert.True(t, resp.Ok)
	require.NotNil(t, resp.MatchId)
}

// TestGetRecommendations checks pool filtering end-to-end: profile1 has
// already liked profile2 and passed profile3, so nothing is left.
// Profile2 still sees profile1 because likes received do not exclude.
func TestGetRecommendations(t *testing.T) {
	ctx := context.Background()
	svc := setupService(t)

	resp, err := svc.GetRecommendations(ctx, &pb.GetRecommendationsRequest{ProfileId: "1"})
	require.NoError(t, err)
	assert.Empty(t, resp.Results)

	resp, err = svc.GetRecommendations(ctx, &pb.GetRecommendationsRequest{ProfileId: "2"})
	require.NoError(t, err)
	require.Len(t, resp.Results, 1)
	assert.Equal(t, "1", resp.Results[0].ProfileId)
	// profile2 has no preference record, so the neutral baseline applies
	assert.Equal(t, 50.0, resp.Results[0].Score)
	assert.False(t, resp.Results[0].IsGoodMatch)
}

func TestGetCompatibilityUnknownProfile(t *testing.T) {
	ctx := context.Background()
	svc := setupService(t)

	_, err := svc.GetCompatibility(ctx, &pb.GetCompatibilityRequest{
		ProfileId:       "1",
		TargetProfileId: "404",
	})
	assert.Equal(t, codes.NotFound, status.Code(err))
}

// TestListAdmirersPremiumGate verifies that only premium members can see
// who liked them. Profile2 (premium) sees profile1; profile1 (free) is
// refused even though profile3 liked them.
func TestListAdmirersPremiumGate(t *testing.T) {
	ctx := context.Background()
	svc := setupService(t)

	resp, err := svc.ListAdmirers(ctx, &pb.ListAdmirersRequest{ProfileId: "2"})
	require.NoError(t, err)
	require.Len(t, resp.Admirers, 1)
	assert.Equal(t, "1", resp.Admirers[0].FromProfileId)

	_, err = svc.ListAdmirers(ctx, &pb.ListAdmirersRequest{ProfileId: "1"})
	assert.Equal(t, codes.PermissionDenied, status.Code(err))
}

// TestCountAdmirersCache verifies admirer counts with cache. Profile3's
// like of profile1 is excluded because profile1 passed profile3.
func TestCountAdmirersCache(t *testing.T) {
	ctx := context.Background()
	svc := setupService(t)

	// First call → DB
	resp1, err := svc.CountAdmirers(ctx, &pb.CountAdmirersRequest{ProfileId: "1"})
	require.NoError(t, err)
	assert.Equal(t, uint64(0), resp1.Count)

	// Second call → cache
	resp2, err := svc.CountAdmirers(ctx, &pb.CountAdmirersRequest{ProfileId: "1"})
	require.NoError(t, err)
	assert.Equal(t, uint64(0), resp2.Count)

	resp3, err := svc.CountAdmirers(ctx, &pb.CountAdmirersRequest{ProfileId: "2"})
	require.NoError(t, err)
	assert.Equal(t, uint64(1), resp3.Count)
}
