package matchmaking

import (
	"context"

	"github.com/soulconnect/matching/internal/db"
)

// SendInterest records a formal interest request. One request per ordered
// pair, ever; a declined request cannot be re-sent.
func (e *Engine) SendInterest(ctx context.Context, fromID, toID uint64, message string) (*db.InterestRequest, error) {
	if fromID == toID {
		return nil, ErrSelfAction
	}
	if _, err := e.profiles.Get(ctx, fromID); err != nil {
		return nil, err
	}
	if _, err := e.profiles.Get(ctx, toID); err != nil {
		return nil, err
	}

	exists, err := e.requests.InterestExists(ctx, fromID, toID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrDuplicateInterest
	}

	return e.requests.CreateInterest(ctx, fromID, toID, message)
}

// InterestOutcome reports the result of responding to an interest request.
// MatchID is set when acceptance produced (or found) an active match.
type InterestOutcome struct {
	Accepted bool
	MatchID  uint64
}

// RespondInterest accepts or declines a pending interest request. Only the
// recipient may respond.
//
// Acceptance creates reciprocal likes in both directions and then runs the
// same match-formation primitive as a direct mutual like, so both entry
// points converge on one canonical match.
func (e *Engine) RespondInterest(ctx context.Context, requestID, responderID uint64, accept bool) (*InterestOutcome, error) {
	req, err := e.requests.GetInterest(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if req.ToID != responderID {
		return nil, ErrNotParticipant
	}
	if req.Status != db.RequestStatusPending {
		return nil, ErrRequestResolved
	}

	if !accept {
		if err := e.requests.ResolveInterest(ctx, requestID, db.RequestStatusDeclined); err != nil {
			return nil, err
		}
		return &InterestOutcome{}, nil
	}

	if err := e.requests.ResolveInterest(ctx, requestID, db.RequestStatusAccepted); err != nil {
		return nil, err
	}

	from, err := e.profiles.Get(ctx, req.FromID)
	if err != nil {
		return nil, err
	}
	to, err := e.profiles.Get(ctx, req.ToID)
	if err != nil {
		return nil, err
	}

	// Reciprocal likes; both inserts are idempotent, so a like that
	// already existed in either direction is fine.
	if _, err := e.interactions.CreateLike(ctx, req.FromID, req.ToID, db.LikeTypeLike, ""); err != nil {
		return nil, err
	}
	if _, err := e.interactions.CreateLike(ctx, req.ToID, req.FromID, db.LikeTypeLike, ""); err != nil {
		return nil, err
	}

	match, err := e.formMatch(ctx, from, to)
	if err != nil {
		return nil, err
	}

	outcome := &InterestOutcome{Accepted: true}
	if match.Status == db.MatchStatusActive {
		outcome.MatchID = match.ID
	}
	return outcome, nil
}
