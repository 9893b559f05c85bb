package matchmaking

import (
	"context"

	"github.com/soulconnect/matching/internal/db"
)

// ListMatches returns a profile's active matches, newest first.
func (e *Engine) ListMatches(ctx context.Context, profileID uint64) ([]db.Match, error) {
	return e.matches.ListActive(ctx, profileID)
}

// GetMatch fetches a match for a participant. The messaging subsystem
// consults the returned ChatUnlocked flag before permitting sends.
func (e *Engine) GetMatch(ctx context.Context, matchID, profileID uint64) (*db.Match, error) {
	match, err := e.matches.Get(ctx, matchID)
	if err != nil {
		return nil, err
	}
	if !match.HasParticipant(profileID) {
		return nil, ErrNotParticipant
	}
	return match, nil
}

// Unmatch transitions an active match to unmatched, recording who
// initiated it. Terminal and permanent per pair: the row survives, so a
// later re-like finds it and does not form a fresh match.
func (e *Engine) Unmatch(ctx context.Context, matchID, byProfileID uint64) error {
	match, err := e.matches.Get(ctx, matchID)
	if err != nil {
		return err
	}
	if !match.HasParticipant(byProfileID) {
		return ErrNotParticipant
	}
	if match.Status != db.MatchStatusActive {
		return ErrMatchNotActive
	}
	return e.matches.Unmatch(ctx, matchID, byProfileID)
}

// ArchiveMatch transitions an active match to archived.
func (e *Engine) ArchiveMatch(ctx context.Context, matchID, byProfileID uint64) error {
	match, err := e.matches.Get(ctx, matchID)
	if err != nil {
		return err
	}
	if !match.HasParticipant(byProfileID) {
		return ErrNotParticipant
	}
	if match.Status != db.MatchStatusActive {
		return ErrMatchNotActive
	}
	return e.matches.Archive(ctx, matchID)
}

// SendChatRequest asks the other side of a match to unlock chat. Used by
// non-premium members; premium matches unlock at creation.
func (e *Engine) SendChatRequest(ctx context.Context, matchID, fromID uint64, message string) (*db.ChatRequest, error) {
	match, err := e.matches.Get(ctx, matchID)
	if err != nil {
		return nil, err
	}
	if !match.HasParticipant(fromID) {
		return nil, ErrNotParticipant
	}
	if match.Status != db.MatchStatusActive {
		return nil, ErrMatchNotActive
	}
	if match.ChatUnlocked {
		return nil, ErrChatAlreadyUnlocked
	}

	exists, err := e.requests.ChatRequestExists(ctx, matchID, fromID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrDuplicateChatRequest
	}

	return e.requests.CreateChatRequest(ctx, matchID, fromID, message)
}

// RespondChatRequest accepts or declines a pending chat request. Only the
// other participant of the match may respond. Acceptance unlocks chat on
// the match; the flag never reverts.
func (e *Engine) RespondChatRequest(ctx context.Context, requestID, responderID uint64, accept bool) error {
	req, err := e.requests.GetChatRequest(ctx, requestID)
	if err != nil {
		return err
	}

	match, err := e.matches.Get(ctx, req.MatchID)
	if err != nil {
		return err
	}
	if !match.HasParticipant(responderID) || req.FromID == responderID {
		return ErrNotParticipant
	}
	if req.Status != db.RequestStatusPending {
		return ErrRequestResolved
	}

	if !accept {
		return e.requests.ResolveChatRequest(ctx, requestID, db.RequestStatusDeclined)
	}

	if err := e.requests.ResolveChatRequest(ctx, requestID, db.RequestStatusAccepted); err != nil {
		return err
	}
	return e.matches.UnlockChat(ctx, req.MatchID)
}
