package matchmaking

import (
	"context"

	"github.com/soulconnect/matching/internal/db"
	"github.com/soulconnect/matching/internal/scoring"
)

// Recommendations builds the candidate pool for a profile, scores it
// against the profile's preferences and returns the top candidates.
//
// The pool is capped before scoring (config MATCHING_POOL_SIZE) so the
// cost of a request stays bounded regardless of population size.
func (e *Engine) Recommendations(ctx context.Context, profileID uint64, limit int) ([]scoring.RankedProfile, error) {
	profile, err := e.profiles.Get(ctx, profileID)
	if err != nil {
		return nil, err
	}

	prefs, err := e.profiles.GetPreferences(ctx, profileID)
	if err != nil {
		return nil, err
	}

	candidates, err := e.profiles.GetCandidates(ctx, profile, nil, e.poolSize)
	if err != nil {
		return nil, err
	}

	if limit <= 0 {
		limit = e.recommendLimit
	}
	return e.scorer.Rank(prefs, candidates, limit), nil
}

// Compatibility scores one specific candidate against a profile's
// preferences. A missing preference record yields the neutral baseline.
func (e *Engine) Compatibility(ctx context.Context, profileID, targetID uint64) (*scoring.Result, error) {
	if profileID == targetID {
		return nil, ErrSelfAction
	}
	if _, err := e.profiles.Get(ctx, profileID); err != nil {
		return nil, err
	}
	target, err := e.profiles.Get(ctx, targetID)
	if err != nil {
		return nil, err
	}
	prefs, err := e.profiles.GetPreferences(ctx, profileID)
	if err != nil {
		return nil, err
	}

	res := e.scorer.Score(prefs, target)
	return &res, nil
}

// Admirers lists who liked the profile, newest first with cursor
// pagination. Premium only.
func (e *Engine) Admirers(ctx context.Context, profileID uint64, paginationToken *string, limit int) ([]db.Like, *string, error) {
	profile, err := e.profiles.Get(ctx, profileID)
	if err != nil {
		return nil, nil, err
	}
	if !profile.Premium {
		return nil, nil, ErrPremiumRequired
	}
	return e.interactions.GetAdmirers(ctx, profileID, paginationToken, limit)
}

// CountAdmirers returns how many profiles liked the given one.
// Cache-first strategy:
//  1. Attempts to read from Redis (admirers:count:profileID).
//  2. On cache miss or parse error, falls back to the DB.
//  3. On DB fetch, updates Redis with a 1h TTL.
func (e *Engine) CountAdmirers(ctx context.Context, profileID uint64) (int64, error) {
	if cached, ok, err := e.appCtx.RedisCache.GetAdmirerCount(ctx, profileID); err == nil && ok {
		return cached, nil
	}

	count, err := e.interactions.CountAdmirers(ctx, profileID)
	if err != nil {
		return 0, err
	}

	_ = e.appCtx.RedisCache.UpdateAdmirerCount(ctx, profileID, count)
	return count, nil
}
