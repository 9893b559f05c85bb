package repository_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/soulconnect/matching/internal/db"
	"github.com/soulconnect/matching/internal/repository"
)

func TestCreateLikeInsertIfAbsent(t *testing.T) {
	ctx := context.Background()
	dbase := setupTestDB(t)
	repo := repository.NewInteractionRepository(dbase)

	created, err := repo.CreateLike(ctx, 1, 2, db.LikeTypeSuperLike, "hello")
	require.NoError(t, err)
	assert.True(t, created)

	// duplicate degrades to a no-op and the first write wins
	created, err = repo.CreateLike(ctx, 1, 2, db.LikeTypeLike, "")
	require.NoError(t, err)
	assert.False(t, created)

	var like db.Like
	require.NoError(t, dbase.First(&like).Error)
	assert.Equal(t, db.LikeTypeSuperLike, like.LikeType)
	assert.Equal(t, "hello", like.Message)

	ok, err := repo.HasLiked(ctx, 1, 2)
	require.NoError(t, err)
	assert.True(t, ok)

	// directed edge: the reverse does not exist
	ok, err = repo.HasLiked(ctx, 2, 1)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestCreatePassAndBlockIdempotent(t *testing.T) {
	ctx := context.Background()
	dbase := setupTestDB(t)
	repo := repository.NewInteractionRepository(dbase)

	require.NoError(t, repo.CreatePass(ctx, 1, 2))
	require.NoError(t, repo.CreatePass(ctx, 1, 2))
	require.NoError(t, repo.CreateBlock(ctx, 1, 3))
	require.NoError(t, repo.CreateBlock(ctx, 1, 3))

	var passes, blocks int64
	require.NoError(t, dbase.Model(&db.Pass{}).Count(&passes).Error)
	require.NoError(t, dbase.Model(&db.BlockedProfile{}).Count(&blocks).Error)
	assert.Equal(t, int64(1), passes)
	assert.Equal(t, int64(1), blocks)
}

func TestGetAdmirersExcludesPassed(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewInteractionRepository(setupTestDB(t))

	// profiles 1 and 2 liked profile 99
	_, err := repo.CreateLike(ctx, 1, 99, db.LikeTypeLike, "")
	require.NoError(t, err)
	_, err = repo.CreateLike(ctx, 2, 99, db.LikeTypeLike, "")
	require.NoError(t, err)
	// 99 passed on 2 -> excluded
	require.NoError(t, repo.CreatePass(ctx, 99, 2))

	likes, next, err := repo.GetAdmirers(ctx, 99, nil, 10)
	require.NoError(t, err)
	require.Len(t, likes, 1)
	assert.Equal(t, uint64(1), likes[0].FromID)
	assert.Nil(t, next)
}

func TestGetAdmirersPagination(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewInteractionRepository(setupTestDB(t))

	for from := uint64(1); from <= 5; from++ {
		_, err := repo.CreateLike(ctx, from, 99, db.LikeTypeLike, "")
		require.NoError(t, err)
	}

	first, next, err := repo.GetAdmirers(ctx, 99, nil, 3)
	require.NoError(t, err)
	require.Len(t, first, 3)
	require.NotNil(t, next)

	second, next, err := repo.GetAdmirers(ctx, 99, next, 3)
	require.NoError(t, err)
	require.Len(t, second, 2)
	assert.Nil(t, next)

	// no overlap between pages
	seen := map[uint64]bool{}
	for _, l := range append(first, second...) {
		assert.False(t, seen[l.FromID])
		seen[l.FromID] = true
	}
}

func TestCountAdmirers(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewInteractionRepository(setupTestDB(t))

	_, err := repo.CreateLike(ctx, 1, 99, db.LikeTypeLike, "")
	require.NoError(t, err)
	_, err = repo.CreateLike(ctx, 2, 99, db.LikeTypeLike, "")
	require.NoError(t, err)
	require.NoError(t, repo.CreatePass(ctx, 99, 2))

	count, err := repo.CountAdmirers(ctx, 99)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}
