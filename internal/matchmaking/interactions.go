package matchmaking

import (
	"context"

	"github.com/soulconnect/matching/internal/db"
)

// LikeOutcome reports what a like resulted in. Matched is true only when
// an active match exists for the pair after the like; a pair that
// unmatched in the past stays unmatched.
type LikeOutcome struct {
	Matched bool
	Match   *db.Match
}

// SendLike records a like from one profile to another and, on
// reciprocity, forms the canonical match.
//
// Behavior:
//   - Rejects self-likes and duplicate likes.
//   - Persists the like (insert-if-absent).
//   - Checks whether the reverse like exists; if so, forms the match via
//     the race-safe create-or-fetch primitive.
//   - Bumps the recipient's admirer count if one is cached.
func (e *Engine) SendLike(ctx context.Context, fromID, toID uint64, likeType, message string) (*LikeOutcome, error) {
	if fromID == toID {
		return nil, ErrSelfAction
	}

	from, err := e.profiles.Get(ctx, fromID)
	if err != nil {
		return nil, err
	}
	to, err := e.profiles.Get(ctx, toID)
	if err != nil {
		return nil, err
	}

	created, err := e.interactions.CreateLike(ctx, fromID, toID, likeType, message)
	if err != nil {
		return nil, err
	}
	if !created {
		return nil, ErrAlreadyLiked
	}

	// admirer count +1 when cached; an absent counter is left for the
	// next read to fill from the DB
	_ = e.appCtx.RedisCache.BumpAdmirerCount(ctx, toID)

	reciprocal, err := e.interactions.HasLiked(ctx, toID, fromID)
	if err != nil {
		return nil, err
	}
	if !reciprocal {
		return &LikeOutcome{}, nil
	}

	match, err := e.formMatch(ctx, from, to)
	if err != nil {
		return nil, err
	}

	return &LikeOutcome{
		Matched: match.Status == db.MatchStatusActive,
		Match:   match,
	}, nil
}

// SendPass records a pass. Idempotent; existing likes and matches are
// unaffected.
func (e *Engine) SendPass(ctx context.Context, fromID, toID uint64) error {
	if fromID == toID {
		return ErrSelfAction
	}
	if _, err := e.profiles.Get(ctx, toID); err != nil {
		return err
	}
	if err := e.interactions.CreatePass(ctx, fromID, toID); err != nil {
		return err
	}

	// The pass may hide one of the sender's admirers, so the cached count
	// is stale. Drop it and let the next read recompute.
	_ = e.appCtx.RedisCache.Del(ctx, e.appCtx.RedisCache.KeyForAdmirerCount(fromID))
	return nil
}

// Block records a block. Idempotent and forward-looking: both profiles
// disappear from each other's candidate pools, but existing matches are
// not deleted.
func (e *Engine) Block(ctx context.Context, blockerID, blockedID uint64) error {
	if blockerID == blockedID {
		return ErrSelfAction
	}
	if _, err := e.profiles.Get(ctx, blockedID); err != nil {
		return err
	}
	return e.interactions.CreateBlock(ctx, blockerID, blockedID)
}
