package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/soulconnect/matching/internal/db"
)

// ProfileRepository provides read access to profiles, preferences and the
// candidate pool the ranking engine scores.
type ProfileRepository struct {
	db *gorm.DB
}

// NewProfileRepository creates a repository bound to the given DB.
func NewProfileRepository(database *gorm.DB) *ProfileRepository {
	return &ProfileRepository{db: database}
}

// Get fetches a profile by id.
func (r *ProfileRepository) Get(ctx context.Context, id uint64) (*db.Profile, error) {
	var profile db.Profile
	if err := r.db.WithContext(ctx).First(&profile, id).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

// GetPreferences fetches a profile's partner preferences. A missing record
// returns (nil, nil): absent preferences are a neutral-score case for the
// scorer, never an error.
func (r *ProfileRepository) GetPreferences(ctx context.Context, profileID uint64) (*db.PartnerPreference, error) {
	var prefs db.PartnerPreference
	err := r.db.WithContext(ctx).
		Where("profile_id = ?", profileID).
		First(&prefs).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &prefs, nil
}

// GetCandidates builds the bounded candidate pool for one ranking request.
//
// Exclusions: the requester itself, explicit excludeIDs, anyone the
// requester has liked, passed or blocked, and anyone who blocked the
// requester. Remaining candidates must be active, approved, not banned and
// of the complementary gender. Ordered by id so the downstream stable sort
// is reproducible; truncated to poolSize before scoring to bound the cost
// of a ranking request.
func (r *ProfileRepository) GetCandidates(
	ctx context.Context,
	requester *db.Profile,
	excludeIDs []uint64,
	poolSize int,
) ([]db.Profile, error) {
	opposite := db.GenderFemale
	if requester.Gender == db.GenderFemale {
		opposite = db.GenderMale
	}

	query := r.db.WithContext(ctx).
		Table("profiles c").
		Where("c.active = ? AND c.approved = ? AND c.banned = ?", true, true, false).
		Where("c.gender = ?", opposite).
		Where("c.id <> ?", requester.ID).
		Where(`
			NOT EXISTS (
				SELECT 1 FROM likes l
				WHERE l.from_id = ? AND l.to_id = c.id
			)`, requester.ID).
		Where(`
			NOT EXISTS (
				SELECT 1 FROM passes p
				WHERE p.from_id = ? AND p.to_id = c.id
			)`, requester.ID).
		Where(`
			NOT EXISTS (
				SELECT 1 FROM blocked_profiles b
				WHERE (b.blocker_id = ? AND b.blocked_id = c.id)
				   OR (b.blocker_id = c.id AND b.blocked_id = ?)
			)`, requester.ID, requester.ID).
		Order("c.id").
		Limit(poolSize)

	if len(excludeIDs) > 0 {
		query = query.Where("c.id NOT IN ?", excludeIDs)
	}

	var candidates []db.Profile
	if err := query.Find(&candidates).Error; err != nil {
		return nil, err
	}
	return candidates, nil
}
