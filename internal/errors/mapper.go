// internal/errors/mapper.go
package errors

import (
	"context"
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"gorm.io/gorm"

	"github.com/soulconnect/matching/internal/matchmaking"
)

// Map converts domain/repo/infra errors into gRPC-friendly status errors.
// Keeps the service layer clean by centralizing error mapping.
func Map(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return status.Error(codes.NotFound, "record not found")

	case errors.Is(err, matchmaking.ErrSelfAction):
		return status.Error(codes.InvalidArgument, err.Error())

	case errors.Is(err, matchmaking.ErrAlreadyLiked),
		errors.Is(err, matchmaking.ErrDuplicateInterest),
		errors.Is(err, matchmaking.ErrDuplicateChatRequest):
		return status.Error(codes.AlreadyExists, err.Error())

	case errors.Is(err, matchmaking.ErrRequestResolved),
		errors.Is(err, matchmaking.ErrMatchNotActive),
		errors.Is(err, matchmaking.ErrChatAlreadyUnlocked):
		return status.Error(codes.FailedPrecondition, err.Error())

	case errors.Is(err, matchmaking.ErrNotParticipant),
		errors.Is(err, matchmaking.ErrPremiumRequired):
		return status.Error(codes.PermissionDenied, err.Error())

	case errors.Is(err, context.DeadlineExceeded):
		return status.Error(codes.DeadlineExceeded, "request timed out")

	case errors.Is(err, context.Canceled):
		return status.Error(codes.Canceled, "request was canceled")

	default:
		// fallback → bubble up error message for debugging
		return status.Error(codes.Internal, err.Error())
	}
}

// InvalidArgument creates a gRPC InvalidArgument error.
// Use this in service layer for bad input validation.
func InvalidArgument(msg string) error {
	return status.Error(codes.InvalidArgument, msg)
}

// AlreadyExists creates a gRPC AlreadyExists error.
func AlreadyExists(msg string) error {
	return status.Error(codes.AlreadyExists, msg)
}

// NotFound creates a gRPC NotFound error.
func NotFound(msg string) error {
	return status.Error(codes.NotFound, msg)
}
