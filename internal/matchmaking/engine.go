package matchmaking

import (
	"context"
	"fmt"

	"github.com/soulconnect/matching/internal/app"
	"github.com/soulconnect/matching/internal/db"
	"github.com/soulconnect/matching/internal/repository"
	"github.com/soulconnect/matching/internal/scoring"
)

// Engine implements the matchmaking core: the interaction state machine
// (like/pass/block), interest and chat requests, match lifecycle, and the
// recommendation pipeline. The gRPC layer is a thin facade over it.
type Engine struct {
	appCtx       *app.AppContext
	profiles     *repository.ProfileRepository
	interactions *repository.InteractionRepository
	matches      *repository.MatchRepository
	requests     *repository.RequestRepository
	scorer       *scoring.Scorer

	poolSize       int
	recommendLimit int
}

// NewEngine creates the engine with dependencies from AppContext. Pool
// size and the default recommendation limit come from config.
func NewEngine(appCtx *app.AppContext) *Engine {
	return &Engine{
		appCtx:         appCtx,
		profiles:       repository.NewProfileRepository(appCtx.DB),
		interactions:   repository.NewInteractionRepository(appCtx.DB),
		matches:        repository.NewMatchRepository(appCtx.DB),
		requests:       repository.NewRequestRepository(appCtx.DB),
		scorer:         scoring.NewScorer(scoring.DefaultWeights()),
		poolSize:       appCtx.Config.Matching.PoolSize,
		recommendLimit: appCtx.Config.Matching.RecommendLimit,
	}
}

// formMatch creates or retrieves the canonical match for two profiles and
// unlocks chat on creation when either side is premium.
//
// Safe to call from both sides of a reciprocal like concurrently: the
// repository's insert-if-absent primitive guarantees exactly one row per
// unordered pair, and a lost race simply returns the winner's row. A
// concurrent duplicate is absorbed here, never surfaced to the caller.
func (e *Engine) formMatch(ctx context.Context, a, b *db.Profile) (*db.Match, error) {
	match, created, err := e.matches.FindOrCreate(ctx, a.ID, b.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to form match: %w", err)
	}

	if created {
		e.appCtx.Logger.Info("match formed",
			"match_id", match.ID,
			"profile1", match.Profile1ID,
			"profile2", match.Profile2ID,
		)
		if a.Premium || b.Premium {
			if err := e.matches.UnlockChat(ctx, match.ID); err != nil {
				return nil, fmt.Errorf("failed to unlock chat: %w", err)
			}
			match.ChatUnlocked = true
		}
	}

	return match, nil
}
