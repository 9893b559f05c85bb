package repository

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/soulconnect/matching/internal/db"
	"github.com/soulconnect/matching/internal/utils/pagination"
)

// InteractionRepository provides data access for the directed interest
// edges: likes, passes and blocks.
type InteractionRepository struct {
	db *gorm.DB
}

// NewInteractionRepository creates a repository bound to the given DB.
func NewInteractionRepository(database *gorm.DB) *InteractionRepository {
	return &InteractionRepository{db: database}
}

// CreateLike inserts a like edge if absent and reports whether a new row
// was written. The composite PK makes a racing duplicate degrade to a
// no-op instead of an error.
func (r *InteractionRepository) CreateLike(
	ctx context.Context,
	fromID, toID uint64,
	likeType, message string,
) (bool, error) {
	if likeType == "" {
		likeType = db.LikeTypeLike
	}
	like := db.Like{
		FromID:   fromID,
		ToID:     toID,
		LikeType: likeType,
		Message:  message,
	}
	res := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&like)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// HasLiked checks whether a like edge from -> to exists.
//
// Used for the reciprocity check after persisting a like.
func (r *InteractionRepository) HasLiked(
	ctx context.Context,
	fromID, toID uint64,
) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&db.Like{}).
		Where("from_id = ? AND to_id = ?", fromID, toID).
		Count(&count).Error
	return count > 0, err
}

// CreatePass inserts a pass edge if absent. Idempotent.
func (r *InteractionRepository) CreatePass(ctx context.Context, fromID, toID uint64) error {
	pass := db.Pass{FromID: fromID, ToID: toID}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&pass).Error
}

// CreateBlock inserts a block edge if absent. Idempotent. Blocking only
// affects future pool building, never existing matches.
func (r *InteractionRepository) CreateBlock(ctx context.Context, blockerID, blockedID uint64) error {
	block := db.BlockedProfile{BlockerID: blockerID, BlockedID: blockedID}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&block).Error
}

// GetAdmirers returns the likes received by a profile, newest first.
//
// Behavior:
//   - Excludes admirers the profile has already passed on.
//   - Ordered by created_at DESC, from_id DESC.
//   - Supports cursor-based pagination via paginationToken.
func (r *InteractionRepository) GetAdmirers(
	ctx context.Context,
	profileID uint64,
	paginationToken *string,
	limit int,
) ([]db.Like, *string, error) {
	var likes []db.Like

	cursor, err := pagination.Decode(getString(paginationToken))
	if err != nil {
		return nil, nil, err
	}

	query := r.db.WithContext(ctx).
		Table("likes l").
		Where("l.to_id = ?", profileID).
		Where(`
			NOT EXISTS (
				SELECT 1 FROM passes p
				WHERE p.from_id = ?
				  AND p.to_id = l.from_id
			)`, profileID).
		Order("l.created_at DESC, l.from_id DESC").
		Limit(limit + 1)

	if cursor.FromID > 0 && cursor.CreatedUnix > 0 {
		ts := time.UnixMilli(cursor.CreatedUnix)
		query = query.Where(
			"(l.created_at < ? OR (l.created_at = ? AND l.from_id < ?))",
			ts, ts, cursor.FromID,
		)
	}

	if err := query.Find(&likes).Error; err != nil {
		return nil, nil, err
	}

	var nextToken *string
	if len(likes) > limit {
		last := likes[limit-1]
		token, _ := pagination.Encode(pagination.Cursor{
			FromID:      last.FromID,
			CreatedUnix: last.CreatedAt.UnixMilli(),
		})
		nextToken = &token
		likes = likes[:limit]
	}

	return likes, nextToken, nil
}

// CountAdmirers returns how many profiles have liked the given profile,
// excluding ones the profile already passed on. Used with the Redis
// counter cache (DB is the fallback).
func (r *InteractionRepository) CountAdmirers(
	ctx context.Context,
	profileID uint64,
) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("likes l").
		Where("l.to_id = ?", profileID).
		Where(`
			NOT EXISTS (
				SELECT 1 FROM passes p
				WHERE p.from_id = ?
				  AND p.to_id = l.from_id
			)`, profileID).
		Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}

// getString safely dereferences a string pointer for pagination tokens.
func getString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
