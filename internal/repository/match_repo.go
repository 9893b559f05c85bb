package repository

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/soulconnect/matching/internal/db"
)

// MatchRepository provides data access for canonical match records.
type MatchRepository struct {
	db *gorm.DB
}

// NewMatchRepository creates a repository bound to the given DB.
func NewMatchRepository(database *gorm.DB) *MatchRepository {
	return &MatchRepository{db: database}
}

// CanonicalPair orders two profile ids so (A,B) and (B,A) address the same
// match row.
func CanonicalPair(a, b uint64) (uint64, uint64) {
	if a < b {
		return a, b
	}
	return b, a
}

// FindOrCreate returns the canonical match for the unordered pair {a, b},
// creating it if absent. It reports whether this call created the row.
//
// This is the one operation that must be race-safe: two reciprocal likes
// can trigger it concurrently from both sides. Both callers canonicalize
// the pair, attempt an insert-if-absent against the unique (profile1,
// profile2) index, and the loser reads the winner's row back. No
// check-then-act window exists.
func (r *MatchRepository) FindOrCreate(
	ctx context.Context,
	a, b uint64,
) (*db.Match, bool, error) {
	p1, p2 := CanonicalPair(a, b)

	match := db.Match{
		Profile1ID: p1,
		Profile2ID: p2,
		Status:     db.MatchStatusActive,
	}
	res := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&match)
	if res.Error != nil {
		return nil, false, res.Error
	}
	if res.RowsAffected > 0 {
		return &match, true, nil
	}

	// Lost the race or the pair matched before: fetch the surviving row.
	var existing db.Match
	err := r.db.WithContext(ctx).
		Where("profile1_id = ? AND profile2_id = ?", p1, p2).
		First(&existing).Error
	if err != nil {
		return nil, false, err
	}
	return &existing, false, nil
}

// Get fetches a match by id.
func (r *MatchRepository) Get(ctx context.Context, id uint64) (*db.Match, error) {
	var match db.Match
	if err := r.db.WithContext(ctx).First(&match, id).Error; err != nil {
		return nil, err
	}
	return &match, nil
}

// GetByPair fetches the canonical match for an unordered pair, if any.
func (r *MatchRepository) GetByPair(ctx context.Context, a, b uint64) (*db.Match, error) {
	p1, p2 := CanonicalPair(a, b)
	var match db.Match
	err := r.db.WithContext(ctx).
		Where("profile1_id = ? AND profile2_id = ?", p1, p2).
		First(&match).Error
	if err != nil {
		return nil, err
	}
	return &match, nil
}

// ListActive returns the active matches a profile participates in, newest
// first.
func (r *MatchRepository) ListActive(ctx context.Context, profileID uint64) ([]db.Match, error) {
	var matches []db.Match
	err := r.db.WithContext(ctx).
		Where("(profile1_id = ? OR profile2_id = ?) AND status = ?",
			profileID, profileID, db.MatchStatusActive).
		Order("matched_at DESC, id DESC").
		Find(&matches).Error
	return matches, err
}

// Unmatch transitions an active match to unmatched, recording who
// initiated it and when. The transition is terminal; like edges are left
// in place so history survives for dispute handling.
func (r *MatchRepository) Unmatch(ctx context.Context, matchID, byProfileID uint64) error {
	now := time.Now().UTC()
	res := r.db.WithContext(ctx).
		Model(&db.Match{}).
		Where("id = ? AND status = ?", matchID, db.MatchStatusActive).
		Updates(map[string]interface{}{
			"status":       db.MatchStatusUnmatched,
			"unmatched_by": byProfileID,
			"unmatched_at": now,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Archive transitions an active match to archived.
func (r *MatchRepository) Archive(ctx context.Context, matchID uint64) error {
	res := r.db.WithContext(ctx).
		Model(&db.Match{}).
		Where("id = ? AND status = ?", matchID, db.MatchStatusActive).
		Update("status", db.MatchStatusArchived)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// UnlockChat flips the chat gate open. Once unlocked it never reverts, so
// replays are harmless.
func (r *MatchRepository) UnlockChat(ctx context.Context, matchID uint64) error {
	now := time.Now().UTC()
	return r.db.WithContext(ctx).
		Model(&db.Match{}).
		Where("id = ? AND chat_unlocked = ?", matchID, false).
		Updates(map[string]interface{}{
			"chat_unlocked":    true,
			"chat_unlocked_at": now,
		}).Error
}
