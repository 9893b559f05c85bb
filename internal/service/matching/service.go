package matching

import (
	"context"
	"strconv"

	"github.com/soulconnect/matching/internal/app"
	"github.com/soulconnect/matching/internal/db"
	svcErr "github.com/soulconnect/matching/internal/errors"
	"github.com/soulconnect/matching/internal/matchmaking"
	pb "github.com/soulconnect/matching/internal/proto/matching"
)

// Service implements the Matching gRPC API. It is a thin facade over the
// matchmaking engine: parse ids, delegate, map errors.
// Each method corresponds to a gRPC endpoint defined in matching.proto.
type Service struct {
	appCtx *app.AppContext
	engine *matchmaking.Engine

	pb.UnimplementedMatchingServiceServer
}

// NewMatchingService creates a new Matching service with dependencies from
// AppContext.
func NewMatchingService(appCtx *app.AppContext) *Service {
	return &Service{
		appCtx: appCtx,
		engine: matchmaking.NewEngine(appCtx),
	}
}

func parseID(field, value string) (uint64, error) {
	id, err := strconv.ParseUint(value, 10, 64)
	if err != nil {
		return 0, svcErr.InvalidArgument(field + " must be a valid uint64")
	}
	return id, nil
}

// SendLike records a like and reports whether it completed a mutual match.
func (s *Service) SendLike(ctx context.Context, req *pb.SendLikeRequest) (*pb.SendLikeResponse, error) {
	s.appCtx.Logger.Debug("SendLike called",
		"from", req.GetFromProfileId(),
		"to", req.GetToProfileId(),
		"type", req.GetLikeType(),
	)

	fromID, err := parseID("from_profile_id", req.GetFromProfileId())
	if err != nil {
		return nil, err
	}
	toID, err := parseID("to_profile_id", req.GetToProfileId())
	if err != nil {
		return nil, err
	}

	outcome, err := s.engine.SendLike(ctx, fromID, toID, req.GetLikeType(), req.GetMessage())
	if err != nil {
		s.appCtx.Logger.Error("SendLike failed", "err", err)
		return nil, svcErr.Map(err)
	}

	resp := &pb.SendLikeResponse{Liked: true, IsMatch: outcome.Matched}
	if outcome.Matched {
		matchID := strconv.FormatUint(outcome.Match.ID, 10)
		resp.MatchId = &matchID
	}
	return resp, nil
}

// SendPass records a pass.
func (s *Service) SendPass(ctx context.Context, req *pb.SendPassRequest) (*pb.SendPassResponse, error) {
	fromID, err := parseID("from_profile_id", req.GetFromProfileId())
	if err != nil {
		return nil, err
	}
	toID, err := parseID("to_profile_id", req.GetToProfileId())
	if err != nil {
		return nil, err
	}

	if err := s.engine.SendPass(ctx, fromID, toID); err != nil {
		s.appCtx.Logger.Error("SendPass failed", "err", err)
		return nil, svcErr.Map(err)
	}
	return &pb.SendPassResponse{Passed: true}, nil
}

// BlockProfile records a block.
func (s *Service) BlockProfile(ctx context.Context, req *pb.BlockProfileRequest) (*pb.BlockProfileResponse, error) {
	blockerID, err := parseID("blocker_profile_id", req.GetBlockerProfileId())
	if err != nil {
		return nil, err
	}
	blockedID, err := parseID("blocked_profile_id", req.GetBlockedProfileId())
	if err != nil {
		return nil, err
	}

	if err := s.engine.Block(ctx, blockerID, blockedID); err != nil {
		s.appCtx.Logger.Error("BlockProfile failed", "err", err)
		return nil, svcErr.Map(err)
	}
	return &pb.BlockProfileResponse{Blocked: true}, nil
}

// ListMatches returns the caller's active matches.
func (s *Service) ListMatches(ctx context.Context, req *pb.ListMatchesRequest) (*pb.ListMatchesResponse, error) {
	profileID, err := parseID("profile_id", req.GetProfileId())
	if err != nil {
		return nil, err
	}

	matches, err := s.engine.ListMatches(ctx, profileID)
	if err != nil {
		return nil, svcErr.Map(err)
	}

	resp := &pb.ListMatchesResponse{}
	for i := range matches {
		resp.Matches = append(resp.Matches, matchToProto(&matches[i]))
	}
	return resp, nil
}

// GetMatch returns one match for a participant; the messaging subsystem
// consults chat_unlocked before permitting sends.
func (s *Service) GetMatch(ctx context.Context, req *pb.GetMatchRequest) (*pb.GetMatchResponse, error) {
	matchID, err := parseID("match_id", req.GetMatchId())
	if err != nil {
		return nil, err
	}
	profileID, err := parseID("profile_id", req.GetProfileId())
	if err != nil {
		return nil, err
	}

	match, err := s.engine.GetMatch(ctx, matchID, profileID)
	if err != nil {
		return nil, svcErr.Map(err)
	}
	return &pb.GetMatchResponse{Match: matchToProto(match)}, nil
}

// Unmatch ends an active match permanently.
func (s *Service) Unmatch(ctx context.Context, req *pb.UnmatchRequest) (*pb.UnmatchResponse, error) {
	matchID, err := parseID("match_id", req.GetMatchId())
	if err != nil {
		return nil, err
	}
	profileID, err := parseID("profile_id", req.GetProfileId())
	if err != nil {
		return nil, err
	}

	if err := s.engine.Unmatch(ctx, matchID, profileID); err != nil {
		s.appCtx.Logger.Error("Unmatch failed", "err", err)
		return nil, svcErr.Map(err)
	}
	return &pb.UnmatchResponse{Ok: true}, nil
}

// ArchiveMatch archives an active match.
func (s *Service) ArchiveMatch(ctx context.Context, req *pb.ArchiveMatchRequest) (*pb.ArchiveMatchResponse, error) {
	matchID, err := parseID("match_id", req.GetMatchId())
	if err != nil {
		return nil, err
	}
	profileID, err := parseID("profile_id", req.GetProfileId())
	if err != nil {
		return nil, err
	}

	if err := s.engine.ArchiveMatch(ctx, matchID, profileID); err != nil {
		return nil, svcErr.Map(err)
	}
	return &pb.ArchiveMatchResponse{Ok: true}, nil
}

// SendInterest records a formal interest request.
func (s *Service) SendInterest(ctx context.Context, req *pb.SendInterestRequest) (*pb.SendInterestResponse, error) {
	fromID, err := parseID("from_profile_id", req.GetFromProfileId())
	if err != nil {
		return nil, err
	}
	toID, err := parseID("to_profile_id", req.GetToProfileId())
	if err != nil {
		return nil, err
	}

	interest, err := s.engine.SendInterest(ctx, fromID, toID, req.GetMessage())
	if err != nil {
		s.appCtx.Logger.Error("SendInterest failed", "err", err)
		return nil, svcErr.Map(err)
	}
	return &pb.SendInterestResponse{RequestId: strconv.FormatUint(interest.ID, 10)}, nil
}

// RespondInterest accepts or declines a pending interest request.
func (s *Service) RespondInterest(ctx context.Context, req *pb.RespondInterestRequest) (*pb.RespondInterestResponse, error) {
	requestID, err := parseID("request_id", req.GetRequestId())
	if err != nil {
		return nil, err
	}
	profileID, err := parseID("profile_id", req.GetProfileId())
	if err != nil {
		return nil, err
	}

	accept, err := parseAction(req.GetAction())
	if err != nil {
		return nil, err
	}

	outcome, err := s.engine.RespondInterest(ctx, requestID, profileID, accept)
	if err != nil {
		s.appCtx.Logger.Error("RespondInterest failed", "err", err)
		return nil, svcErr.Map(err)
	}

	resp := &pb.RespondInterestResponse{Ok: true}
	if outcome.MatchID != 0 {
		matchID := strconv.FormatUint(outcome.MatchID, 10)
		resp.MatchId = &matchID
	}
	return resp, nil
}

// SendChatRequest asks the other side of a match to unlock chat.
func (s *Service) SendChatRequest(ctx context.Context, req *pb.SendChatRequestRequest) (*pb.SendChatRequestResponse, error) {
	matchID, err := parseID("match_id", req.GetMatchId())
	if err != nil {
		return nil, err
	}
	fromID, err := parseID("from_profile_id", req.GetFromProfileId())
	if err != nil {
		return nil, err
	}

	chatReq, err := s.engine.SendChatRequest(ctx, matchID, fromID, req.GetMessage())
	if err != nil {
		return nil, svcErr.Map(err)
	}
	return &pb.SendChatRequestResponse{RequestId: strconv.FormatUint(chatReq.ID, 10)}, nil
}

// RespondChatRequest accepts or declines a pending chat request.
func (s *Service) RespondChatRequest(ctx context.Context, req *pb.RespondChatRequestRequest) (*pb.RespondChatRequestResponse, error) {
	requestID, err := parseID("request_id", req.GetRequestId())
	if err != nil {
		return nil, err
	}
	profileID, err := parseID("profile_id", req.GetProfileId())
	if err != nil {
		return nil, err
	}

	accept, err := parseAction(req.GetAction())
	if err != nil {
		return nil, err
	}

	if err := s.engine.RespondChatRequest(ctx, requestID, profileID, accept); err != nil {
		return nil, svcErr.Map(err)
	}
	return &pb.RespondChatRequestResponse{Ok: true}, nil
}

// GetRecommendations returns the caller's ranked candidate list.
func (s *Service) GetRecommendations(ctx context.Context, req *pb.GetRecommendationsRequest) (*pb.GetRecommendationsResponse, error) {
	s.appCtx.Logger.Debug("GetRecommendations called", "profile", req.GetProfileId(), "limit", req.GetLimit())

	profileID, err := parseID("profile_id", req.GetProfileId())
	if err != nil {
		return nil, err
	}

	ranked, err := s.engine.Recommendations(ctx, profileID, int(req.GetLimit()))
	if err != nil {
		s.appCtx.Logger.Error("GetRecommendations failed", "err", err)
		return nil, svcErr.Map(err)
	}

	resp := &pb.GetRecommendationsResponse{}
	for _, r := range ranked {
		resp.Results = append(resp.Results, &pb.Recommendation{
			ProfileId:   strconv.FormatUint(r.Profile.ID, 10),
			FullName:    r.Profile.FullName,
			Score:       r.Score,
			Breakdown:   breakdownToProto(r.Breakdown),
			IsGoodMatch: r.GoodMatch,
		})
	}
	return resp, nil
}

// GetCompatibility scores one candidate against the caller's preferences.
func (s *Service) GetCompatibility(ctx context.Context, req *pb.GetCompatibilityRequest) (*pb.GetCompatibilityResponse, error) {
	profileID, err := parseID("profile_id", req.GetProfileId())
	if err != nil {
		return nil, err
	}
	targetID, err := parseID("target_profile_id", req.GetTargetProfileId())
	if err != nil {
		return nil, err
	}

	res, err := s.engine.Compatibility(ctx, profileID, targetID)
	if err != nil {
		return nil, svcErr.Map(err)
	}
	return &pb.GetCompatibilityResponse{
		Score:       res.Total,
		Breakdown:   breakdownToProto(res.Breakdown),
		IsGoodMatch: res.GoodMatch,
	}, nil
}

// ListAdmirers returns who liked the caller (premium only), paginated.
func (s *Service) ListAdmirers(ctx context.Context, req *pb.ListAdmirersRequest) (*pb.ListAdmirersResponse, error) {
	profileID, err := parseID("profile_id", req.GetProfileId())
	if err != nil {
		return nil, err
	}

	likes, nextToken, err := s.engine.Admirers(ctx, profileID, req.PaginationToken, 20)
	if err != nil {
		return nil, svcErr.Map(err)
	}

	resp := &pb.ListAdmirersResponse{}
	for _, l := range likes {
		resp.Admirers = append(resp.Admirers, &pb.ListAdmirersResponse_Admirer{
			FromProfileId: strconv.FormatUint(l.FromID, 10),
			LikeType:      l.LikeType,
			UnixTimestamp: uint64(l.CreatedAt.UnixMilli()),
		})
	}
	if nextToken != nil {
		resp.NextPaginationToken = nextToken
	}
	return resp, nil
}

// CountAdmirers returns the caller's admirer count, cache-first.
func (s *Service) CountAdmirers(ctx context.Context, req *pb.CountAdmirersRequest) (*pb.CountAdmirersResponse, error) {
	profileID, err := parseID("profile_id", req.GetProfileId())
	if err != nil {
		return nil, err
	}

	count, err := s.engine.CountAdmirers(ctx, profileID)
	if err != nil {
		return nil, svcErr.Map(err)
	}
	return &pb.CountAdmirersResponse{Count: uint64(count)}, nil
}

// --- helpers ---

func parseAction(action string) (bool, error) {
	switch action {
	case "accept":
		return true, nil
	case "decline":
		return false, nil
	default:
		return false, svcErr.InvalidArgument(`action must be "accept" or "decline"`)
	}
}

func matchToProto(m *db.Match) *pb.Match {
	return &pb.Match{
		MatchId:       strconv.FormatUint(m.ID, 10),
		Profile1Id:    strconv.FormatUint(m.Profile1ID, 10),
		Profile2Id:    strconv.FormatUint(m.Profile2ID, 10),
		Status:        m.Status,
		ChatUnlocked:  m.ChatUnlocked,
		MatchedAtUnix: uint64(m.MatchedAt.UnixMilli()),
	}
}

func breakdownToProto(b map[string]int) map[string]int32 {
	if len(b) == 0 {
		return nil
	}
	out := make(map[string]int32, len(b))
	for k, v := range b {
		out[k] = int32(v)
	}
	return out
}
