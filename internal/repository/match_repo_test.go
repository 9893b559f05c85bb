package repository_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/soulconnect/matching/internal/db"
	"github.com/soulconnect/matching/internal/repository"
)

// setupTestDB opens an in-memory SQLite database with the full schema.
// MaxOpenConns(1) serializes writes at the pool so concurrent callers
// exercise the insert-if-absent logic instead of SQLite lock errors.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	database, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		NowFunc:                func() time.Time { return time.Now().UTC().Truncate(time.Millisecond) },
		SkipDefaultTransaction: true,
	})
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}

	sqlDB, err := database.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	if err := database.AutoMigrate(db.Models()...); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return database
}

func TestFindOrCreateIsCommutative(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewMatchRepository(setupTestDB(t))

	m1, created, err := repo.FindOrCreate(ctx, 2, 1)
	require.NoError(t, err)
	assert.True(t, created)

	// reversed argument order resolves to the same row
	m2, created, err := repo.FindOrCreate(ctx, 1, 2)
	require.NoError(t, err)
	assert.False(t, created)

	assert.Equal(t, m1.ID, m2.ID)
	assert.Equal(t, uint64(1), m2.Profile1ID)
	assert.Equal(t, uint64(2), m2.Profile2ID)
	assert.Equal(t, db.MatchStatusActive, m2.Status)
}

func TestFindOrCreateIdempotent(t *testing.T) {
	ctx := context.Background()
	dbase := setupTestDB(t)
	repo := repository.NewMatchRepository(dbase)

	for i := 0; i < 5; i++ {
		_, _, err := repo.FindOrCreate(ctx, 7, 3)
		require.NoError(t, err)
	}

	var count int64
	require.NoError(t, dbase.Model(&db.Match{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

// TestFindOrCreateConcurrent simulates both sides of a reciprocal like
// racing to create the match. Exactly one row must survive and every
// caller must see that row.
func TestFindOrCreateConcurrent(t *testing.T) {
	ctx := context.Background()
	dbase := setupTestDB(t)
	repo := repository.NewMatchRepository(dbase)

	const callers = 8
	var wg sync.WaitGroup
	ids := make([]uint64, callers)
	errs := make([]error, callers)

	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			// half the callers pass the pair reversed
			a, b := uint64(1), uint64(2)
			if i%2 == 1 {
				a, b = b, a
			}
			match, _, err := repo.FindOrCreate(ctx, a, b)
			if err != nil {
				errs[i] = err
				return
			}
			ids[i] = match.ID
		}(i)
	}
	wg.Wait()

	for i := 0; i < callers; i++ {
		require.NoError(t, errs[i], "caller %d", i)
		assert.Equal(t, ids[0], ids[i], "caller %d saw a different match", i)
	}

	var count int64
	require.NoError(t, dbase.Model(&db.Match{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestUnmatchIsTerminal(t *testing.T) {
	ctx := context.Background()
	dbase := setupTestDB(t)
	repo := repository.NewMatchRepository(dbase)

	match, _, err := repo.FindOrCreate(ctx, 1, 2)
	require.NoError(t, err)

	require.NoError(t, repo.Unmatch(ctx, match.ID, 2))

	got, err := repo.Get(ctx, match.ID)
	require.NoError(t, err)
	assert.Equal(t, db.MatchStatusUnmatched, got.Status)
	require.NotNil(t, got.UnmatchedBy)
	assert.Equal(t, uint64(2), *got.UnmatchedBy)
	assert.NotNil(t, got.UnmatchedAt)

	// a second transition has no active row to act on
	err = repo.Unmatch(ctx, match.ID, 1)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	// the canonical row survives, so re-forming finds it unchanged
	again, created, err := repo.FindOrCreate(ctx, 2, 1)
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, db.MatchStatusUnmatched, again.Status)
}

func TestUnlockChatNeverReverts(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewMatchRepository(setupTestDB(t))

	match, _, err := repo.FindOrCreate(ctx, 1, 2)
	require.NoError(t, err)
	assert.False(t, match.ChatUnlocked)

	require.NoError(t, repo.UnlockChat(ctx, match.ID))
	require.NoError(t, repo.UnlockChat(ctx, match.ID)) // replay is harmless

	got, err := repo.Get(ctx, match.ID)
	require.NoError(t, err)
	assert.True(t, got.ChatUnlocked)
	assert.NotNil(t, got.ChatUnlockedAt)
}

func TestListActiveExcludesEndedMatches(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewMatchRepository(setupTestDB(t))

	m1, _, err := repo.FindOrCreate(ctx, 1, 2)
	require.NoError(t, err)
	m2, _, err := repo.FindOrCreate(ctx, 1, 3)
	require.NoError(t, err)
	m3, _, err := repo.FindOrCreate(ctx, 4, 1)
	require.NoError(t, err)

	require.NoError(t, repo.Unmatch(ctx, m2.ID, 1))
	require.NoError(t, repo.Archive(ctx, m3.ID))

	matches, err := repo.ListActive(ctx, 1)
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, m1.ID, matches[0].ID)
}
