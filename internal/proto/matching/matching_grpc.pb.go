// Code generated by protoc-gen-go-grpc. DO NOT EDIT.
// versions:
// - protoc-gen-go-grpc v1.5.1
// - protoc             (unknown)
// source: matching/matching.proto

package matching

import (
	context "context"
	grpc "google.golang.org/grpc"
	codes "google.golang.org/grpc/codes"
	status "google.golang.org/grpc/status"
)

// This is a compile-time assertion to ensure that this generated file
// is compatible with the grpc package it is being compiled against.
// Requires gRPC-Go v1.64.0 or later.
const _ = grpc.SupportPackageIsVersion9

const (
	MatchingService_SendLike_FullMethodName           = "/matching.MatchingService/SendLike"
	MatchingService_SendPass_FullMethodName           = "/matching.MatchingService/SendPass"
	MatchingService_BlockProfile_FullMethodName       = "/matching.MatchingService/BlockProfile"
	MatchingService_ListMatches_FullMethodName        = "/matching.MatchingService/ListMatches"
	MatchingService_GetMatch_FullMethodName           = "/matching.MatchingService/GetMatch"
	MatchingService_Unmatch_FullMethodName            = "/matching.MatchingService/Unmatch"
	MatchingService_ArchiveMatch_FullMethodName       = "/matching.MatchingService/ArchiveMatch"
	MatchingService_SendInterest_FullMethodName       = "/matching.MatchingService/SendInterest"
	MatchingService_RespondInterest_FullMethodName    = "/matching.MatchingService/RespondInterest"
	MatchingService_SendChatRequest_FullMethodName    = "/matching.MatchingService/SendChatRequest"
	MatchingService_RespondChatRequest_FullMethodName = "/matching.MatchingService/RespondChatRequest"
	MatchingService_GetRecommendations_FullMethodName = "/matching.MatchingService/GetRecommendations"
	MatchingService_GetCompatibility_FullMethodName   = "/matching.MatchingService/GetCompatibility"
	MatchingService_ListAdmirers_FullMethodName       = "/matching.MatchingService/ListAdmirers"
	MatchingService_CountAdmirers_FullMethodName      = "/matching.MatchingService/CountAdmirers"
)

// MatchingServiceClient is the client API for MatchingService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
//
// MatchingService exposes the compatibility scoring and mutual-match
// formation engine. Profile ids travel as decimal strings.
type MatchingServiceClient interface {
	SendLike(ctx context.Context, in *SendLikeRequest, opts ...grpc.CallOption) (*SendLikeResponse, error)
	SendPass(ctx context.Context, in *SendPassRequest, opts ...grpc.CallOption) (*SendPassResponse, error)
	BlockProfile(ctx context.Context, in *BlockProfileRequest, opts ...grpc.CallOption) (*BlockProfileResponse, error)
	ListMatches(ctx context.Context, in *ListMatchesRequest, opts ...grpc.CallOption) (*ListMatchesResponse, error)
	GetMatch(ctx context.Context, in *GetMatchRequest, opts ...grpc.CallOption) (*GetMatchResponse, error)
	Unmatch(ctx context.Context, in *UnmatchRequest, opts ...grpc.CallOption) (*UnmatchResponse, error)
	ArchiveMatch(ctx context.Context, in *ArchiveMatchRequest, opts ...grpc.CallOption) (*ArchiveMatchResponse, error)
	SendInterest(ctx context.Context, in *SendInterestRequest, opts ...grpc.CallOption) (*SendInterestResponse, error)
	RespondInterest(ctx context.Context, in *RespondInterestRequest, opts ...grpc.CallOption) (*RespondInterestResponse, error)
	SendChatRequest(ctx context.Context, in *SendChatRequestRequest, opts ...grpc.CallOption) (*SendChatRequestResponse, error)
	RespondChatRequest(ctx context.Context, in *RespondChatRequestRequest, opts ...grpc.CallOption) (*RespondChatRequestResponse, error)
	GetRecommendations(ctx context.Context, in *GetRecommendationsRequest, opts ...grpc.CallOption) (*GetRecommendationsResponse, error)
	GetCompatibility(ctx context.Context, in *GetCompatibilityRequest, opts ...grpc.CallOption) (*GetCompatibilityResponse, error)
	ListAdmirers(ctx context.Context, in *ListAdmirersRequest, opts ...grpc.CallOption) (*ListAdmirersResponse, error)
	CountAdmirers(ctx context.Context, in *CountAdmirersRequest, opts ...grpc.CallOption) (*CountAdmirersResponse, error)
}

type matchingServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewMatchingServiceClient(cc grpc.ClientConnInterface) MatchingServiceClient {
	return &matchingServiceClient{cc}
}

func (c *matchingServiceClient) SendLike(ctx context.Context, in *SendLikeRequest, opts ...grpc.CallOption) (*SendLikeResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(SendLikeResponse)
	err := c.cc.Invoke(ctx, MatchingService_SendLike_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *matchingServiceClient) SendPass(ctx context.Context, in *SendPassRequest, opts ...grpc.CallOption) (*SendPassResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(SendPassResponse)
	err := c.cc.Invoke(ctx, MatchingService_SendPass_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *matchingServiceClient) BlockProfile(ctx context.Context, in *BlockProfileRequest, opts ...grpc.CallOption) (*BlockProfileResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(BlockProfileResponse)
	err := c.cc.Invoke(ctx, MatchingService_BlockProfile_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *matchingServiceClient) ListMatches(ctx context.Context, in *ListMatchesRequest, opts ...grpc.CallOption) (*ListMatchesResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListMatchesResponse)
	err := c.cc.Invoke(ctx, MatchingService_ListMatches_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *matchingServiceClient) GetMatch(ctx context.Context, in *GetMatchRequest, opts ...grpc.CallOption) (*GetMatchResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetMatchResponse)
	err := c.cc.Invoke(ctx, MatchingService_GetMatch_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *matchingServiceClient) Unmatch(ctx context.Context, in *UnmatchRequest, opts ...grpc.CallOption) (*UnmatchResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(UnmatchResponse)
	err := c.cc.Invoke(ctx, MatchingService_Unmatch_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *matchingServiceClient) ArchiveMatch(ctx context.Context, in *ArchiveMatchRequest, opts ...grpc.CallOption) (*ArchiveMatchResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ArchiveMatchResponse)
	err := c.cc.Invoke(ctx, MatchingService_ArchiveMatch_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *matchingServiceClient) SendInterest(ctx context.Context, in *SendInterestRequest, opts ...grpc.CallOption) (*SendInterestResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(SendInterestResponse)
	err := c.cc.Invoke(ctx, MatchingService_SendInterest_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *matchingServiceClient) RespondInterest(ctx context.Context, in *RespondInterestRequest, opts ...grpc.CallOption) (*RespondInterestResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(RespondInterestResponse)
	err := c.cc.Invoke(ctx, MatchingService_RespondInterest_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *matchingServiceClient) SendChatRequest(ctx context.Context, in *SendChatRequestRequest, opts ...grpc.CallOption) (*SendChatRequestResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(SendChatRequestResponse)
	err := c.cc.Invoke(ctx, MatchingService_SendChatRequest_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *matchingServiceClient) RespondChatRequest(ctx context.Context, in *RespondChatRequestRequest, opts ...grpc.CallOption) (*RespondChatRequestResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(RespondChatRequestResponse)
	err := c.cc.Invoke(ctx, MatchingService_RespondChatRequest_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *matchingServiceClient) GetRecommendations(ctx context.Context, in *GetRecommendationsRequest, opts ...grpc.CallOption) (*GetRecommendationsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetRecommendationsResponse)
	err := c.cc.Invoke(ctx, MatchingService_GetRecommendations_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *matchingServiceClient) GetCompatibility(ctx context.Context, in *GetCompatibilityRequest, opts ...grpc.CallOption) (*GetCompatibilityResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetCompatibilityResponse)
	err := c.cc.Invoke(ctx, MatchingService_GetCompatibility_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *matchingServiceClient) ListAdmirers(ctx context.Context, in *ListAdmirersRequest, opts ...grpc.CallOption) (*ListAdmirersResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListAdmirersResponse)
	err := c.cc.Invoke(ctx, MatchingService_ListAdmirers_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *matchingServiceClient) CountAdmirers(ctx context.Context, in *CountAdmirersRequest, opts ...grpc.CallOption) (*CountAdmirersResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(CountAdmirersResponse)
	err := c.cc.Invoke(ctx, MatchingService_CountAdmirers_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// MatchingServiceServer is the server API for MatchingService service.
// All implementations must embed UnimplementedMatchingServiceServer
// for forward compatibility.
//
// MatchingService exposes the compatibility scoring and mutual-match
// formation engine. Profile ids travel as decimal strings.
type MatchingServiceServer interface {
	SendLike(context.Context, *SendLikeRequest) (*SendLikeResponse, error)
	SendPass(context.Context, *SendPassRequest) (*SendPassResponse, error)
	BlockProfile(context.Context, *BlockProfileRequest) (*BlockProfileResponse, error)
	ListMatches(context.Context, *ListMatchesRequest) (*ListMatchesResponse, error)
	GetMatch(context.Context, *GetMatchRequest) (*GetMatchResponse, error)
	Unmatch(context.Context, *UnmatchRequest) (*UnmatchResponse, error)
	ArchiveMatch(context.Context, *ArchiveMatchRequest) (*ArchiveMatchResponse, error)
	SendInterest(context.Context, *SendInterestRequest) (*SendInterestResponse, error)
	RespondInterest(context.Context, *RespondInterestRequest) (*RespondInterestResponse, error)
	SendChatRequest(context.Context, *SendChatRequestRequest) (*SendChatRequestResponse, error)
	RespondChatRequest(context.Context, *RespondChatRequestRequest) (*RespondChatRequestResponse, error)
	GetRecommendations(context.Context, *GetRecommendationsRequest) (*GetRecommendationsResponse, error)
	GetCompatibility(context.Context, *GetCompatibilityRequest) (*GetCompatibilityResponse, error)
	ListAdmirers(context.Context, *ListAdmirersRequest) (*ListAdmirersResponse, error)
	CountAdmirers(context.Context, *CountAdmirersRequest) (*CountAdmirersResponse, error)
	mustEmbedUnimplementedMatchingServiceServer()
}

// UnimplementedMatchingServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedMatchingServiceServer struct{}

func (UnimplementedMatchingServiceServer) SendLike(context.Context, *SendLikeRequest) (*SendLikeResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method SendLike not implemented")
}
func (UnimplementedMatchingServiceServer) SendPass(context.Context, *SendPassRequest) (*SendPassResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method SendPass not implemented")
}
func (UnimplementedMatchingServiceServer) BlockProfile(context.Context, *BlockProfileRequest) (*BlockProfileResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method BlockProfile not implemented")
}
func (UnimplementedMatchingServiceServer) ListMatches(context.Context, *ListMatchesRequest) (*ListMatchesResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListMatches not implemented")
}
func (UnimplementedMatchingServiceServer) GetMatch(context.Context, *GetMatchRequest) (*GetMatchResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetMatch not implemented")
}
func (UnimplementedMatchingServiceServer) Unmatch(context.Context, *UnmatchRequest) (*UnmatchResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Unmatch not implemented")
}
func (UnimplementedMatchingServiceServer) ArchiveMatch(context.Context, *ArchiveMatchRequest) (*ArchiveMatchResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ArchiveMatch not implemented")
}
func (UnimplementedMatchingServiceServer) SendInterest(context.Context, *SendInterestRequest) (*SendInterestResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method SendInterest not implemented")
}
func (UnimplementedMatchingServiceServer) RespondInterest(context.Context, *RespondInterestRequest) (*RespondInterestResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method RespondInterest not implemented")
}
func (UnimplementedMatchingServiceServer) SendChatRequest(context.Context, *SendChatRequestRequest) (*SendChatRequestResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method SendChatRequest not implemented")
}
func (UnimplementedMatchingServiceServer) RespondChatRequest(context.Context, *RespondChatRequestRequest) (*RespondChatRequestResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method RespondChatRequest not implemented")
}
func (UnimplementedMatchingServiceServer) GetRecommendations(context.Context, *GetRecommendationsRequest) (*GetRecommendationsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetRecommendations not implemented")
}
func (UnimplementedMatchingServiceServer) GetCompatibility(context.Context, *GetCompatibilityRequest) (*GetCompatibilityResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetCompatibility not implemented")
}
func (UnimplementedMatchingServiceServer) ListAdmirers(context.Context, *ListAdmirersRequest) (*ListAdmirersResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListAdmirers not implemented")
}
func (UnimplementedMatchingServiceServer) CountAdmirers(context.Context, *CountAdmirersRequest) (*CountAdmirersResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method CountAdmirers not implemented")
}
func (UnimplementedMatchingServiceServer) mustEmbedUnimplementedMatchingServiceServer() {}
func (UnimplementedMatchingServiceServer) testEmbeddedByValue()                         {}

// UnsafeMatchingServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to MatchingServiceServer will
// result in compilation errors.
type UnsafeMatchingServiceServer interface {
	mustEmbedUnimplementedMatchingServiceServer()
}

func RegisterMatchingServiceServer(s grpc.ServiceRegistrar, srv MatchingServiceServer) {
	// If the following call pancis, it indicates UnimplementedMatchingServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&MatchingService_ServiceDesc, srv)
}

func _MatchingService_SendLike_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(SendLikeRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MatchingServiceServer).SendLike(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: MatchingService_SendLike_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MatchingServiceServer).SendLike(ctx, req.(*SendLikeRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _MatchingService_SendPass_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(SendPassRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MatchingServiceServer).SendPass(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: MatchingService_SendPass_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MatchingServiceServer).SendPass(ctx, req.(*SendPassRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _MatchingService_BlockProfile_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(BlockProfileRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MatchingServiceServer).BlockProfile(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: MatchingService_BlockProfile_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MatchingServiceServer).BlockProfile(ctx, req.(*BlockProfileRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _MatchingService_ListMatches_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListMatchesRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MatchingServiceServer).ListMatches(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: MatchingService_ListMatches_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MatchingServiceServer).ListMatches(ctx, req.(*ListMatchesRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _MatchingService_GetMatch_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetMatchRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MatchingServiceServer).GetMatch(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: MatchingService_GetMatch_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MatchingServiceServer).GetMatch(ctx, req.(*GetMatchRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _MatchingService_Unmatch_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(UnmatchRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MatchingServiceServer).Unmatch(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: MatchingService_Unmatch_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MatchingServiceServer).Unmatch(ctx, req.(*UnmatchRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _MatchingService_ArchiveMatch_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ArchiveMatchRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MatchingServiceServer).ArchiveMatch(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: MatchingService_ArchiveMatch_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MatchingServiceServer).ArchiveMatch(ctx, req.(*ArchiveMatchRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _MatchingService_SendInterest_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(SendInterestRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MatchingServiceServer).SendInterest(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: MatchingService_SendInterest_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MatchingServiceServer).SendInterest(ctx, req.(*SendInterestRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _MatchingService_RespondInterest_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(RespondInterestRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MatchingServiceServer).RespondInterest(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: MatchingService_RespondInterest_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MatchingServiceServer).RespondInterest(ctx, req.(*RespondInterestRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _MatchingService_SendChatRequest_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(SendChatRequestRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MatchingServiceServer).SendChatRequest(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: MatchingService_SendChatRequest_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MatchingServiceServer).SendChatRequest(ctx, req.(*SendChatRequestRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _MatchingService_RespondChatRequest_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(RespondChatRequestRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MatchingServiceServer).RespondChatRequest(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: MatchingService_RespondChatRequest_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MatchingServiceServer).RespondChatRequest(ctx, req.(*RespondChatRequestRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _MatchingService_GetRecommendations_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetRecommendationsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MatchingServiceServer).GetRecommendations(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: MatchingService_GetRecommendations_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MatchingServiceServer).GetRecommendations(ctx, req.(*GetRecommendationsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _MatchingService_GetCompatibility_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetCompatibilityRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MatchingServiceServer).GetCompatibility(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: MatchingService_GetCompatibility_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MatchingServiceServer).GetCompatibility(ctx, req.(*GetCompatibilityRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _MatchingService_ListAdmirers_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListAdmirersRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MatchingServiceServer).ListAdmirers(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: MatchingService_ListAdmirers_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MatchingServiceServer).ListAdmirers(ctx, req.(*ListAdmirersRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _MatchingService_CountAdmirers_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(CountAdmirersRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MatchingServiceServer).CountAdmirers(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: MatchingService_CountAdmirers_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MatchingServiceServer).CountAdmirers(ctx, req.(*CountAdmirersRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// MatchingService_ServiceDesc is the grpc.ServiceDesc for MatchingService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var MatchingService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "matching.MatchingService",
	HandlerType: (*MatchingServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "SendLike",
			Handler:    _MatchingService_SendLike_Handler,
		},
		{
			MethodName: "SendPass",
			Handler:    _MatchingService_SendPass_Handler,
		},
		{
			MethodName: "BlockProfile",
			Handler:    _MatchingService_BlockProfile_Handler,
		},
		{
			MethodName: "ListMatches",
			Handler:    _MatchingService_ListMatches_Handler,
		},
		{
			MethodName: "GetMatch",
			Handler:    _MatchingService_GetMatch_Handler,
		},
		{
			MethodName: "Unmatch",
			Handler:    _MatchingService_Unmatch_Handler,
		},
		{
			MethodName: "ArchiveMatch",
			Handler:    _MatchingService_ArchiveMatch_Handler,
		},
		{
			MethodName: "SendInterest",
			Handler:    _MatchingService_SendInterest_Handler,
		},
		{
			MethodName: "RespondInterest",
			Handler:    _MatchingService_RespondInterest_Handler,
		},
		{
			MethodName: "SendChatRequest",
			Handler:    _MatchingService_SendChatRequest_Handler,
		},
		{
			MethodName: "RespondChatRequest",
			Handler:    _MatchingService_RespondChatRequest_Handler,
		},
		{
			MethodName: "GetRecommendations",
			Handler:    _MatchingService_GetRecommendations_Handler,
		},
		{
			MethodName: "GetCompatibility",
			Handler:    _MatchingService_GetCompatibility_Handler,
		},
		{
			MethodName: "ListAdmirers",
			Handler:    _MatchingService_ListAdmirers_Handler,
		},
		{
			MethodName: "CountAdmirers",
			Handler:    _MatchingService_CountAdmirers_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "matching/matching.proto",
}
