package repository_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/soulconnect/matching/internal/db"
	"github.com/soulconnect/matching/internal/repository"
)

func TestResolveInterestPendingGuard(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewRequestRepository(setupTestDB(t))

	req, err := repo.CreateInterest(ctx, 1, 2, "hello")
	require.NoError(t, err)
	assert.Equal(t, db.RequestStatusPending, req.Status)

	exists, err := repo.InterestExists(ctx, 1, 2)
	require.NoError(t, err)
	assert.True(t, exists)

	require.NoError(t, repo.ResolveInterest(ctx, req.ID, db.RequestStatusAccepted))

	got, err := repo.GetInterest(ctx, req.ID)
	require.NoError(t, err)
	assert.Equal(t, db.RequestStatusAccepted, got.Status)
	assert.NotNil(t, got.RespondedAt)

	// a second response loses: the row is no longer pending
	err = repo.ResolveInterest(ctx, req.ID, db.RequestStatusDeclined)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	got, err = repo.GetInterest(ctx, req.ID)
	require.NoError(t, err)
	assert.Equal(t, db.RequestStatusAccepted, got.Status)
}

func TestResolveChatRequestPendingGuard(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewRequestRepository(setupTestDB(t))

	req, err := repo.CreateChatRequest(ctx, 10, 1, "unlock?")
	require.NoError(t, err)

	exists, err := repo.ChatRequestExists(ctx, 10, 1)
	require.NoError(t, err)
	assert.True(t, exists)

	require.NoError(t, repo.ResolveChatRequest(ctx, req.ID, db.RequestStatusDeclined))

	err = repo.ResolveChatRequest(ctx, req.ID, db.RequestStatusAccepted)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
