package matchmaking

import "errors"

// Domain errors surfaced to the transport layer, which maps them onto
// gRPC status codes.
var (
	// ErrSelfAction - likes, passes, blocks and interest requests can
	// never target the acting profile itself.
	ErrSelfAction = errors.New("action cannot target your own profile")

	// ErrAlreadyLiked - at most one like per ordered pair.
	ErrAlreadyLiked = errors.New("profile already liked")

	// ErrDuplicateInterest - at most one interest request per ordered pair.
	ErrDuplicateInterest = errors.New("interest request already sent")

	// ErrDuplicateChatRequest - at most one chat request per side of a match.
	ErrDuplicateChatRequest = errors.New("chat request already sent")

	// ErrRequestResolved - pending is the only state that accepts a response.
	ErrRequestResolved = errors.New("request already resolved")

	// ErrNotParticipant - the acting profile is not a side of the match
	// or request it is operating on.
	ErrNotParticipant = errors.New("profile is not a participant")

	// ErrMatchNotActive - lifecycle transitions start from active only.
	ErrMatchNotActive = errors.New("match is not active")

	// ErrChatAlreadyUnlocked - a chat request on an unlocked match is
	// pointless and rejected.
	ErrChatAlreadyUnlocked = errors.New("chat is already unlocked")

	// ErrPremiumRequired - admirer listings are a premium feature.
	ErrPremiumRequired = errors.New("premium subscription required")
)
