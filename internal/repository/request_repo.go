package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/soulconnect/matching/internal/db"
)

// RequestRepository provides data access for interest requests and chat
// requests.
type RequestRepository struct {
	db *gorm.DB
}

// NewRequestRepository creates a repository bound to the given DB.
func NewRequestRepository(database *gorm.DB) *RequestRepository {
	return &RequestRepository{db: database}
}

// CreateInterest writes a new interest request.
func (r *RequestRepository) CreateInterest(
	ctx context.Context,
	fromID, toID uint64,
	message string,
) (*db.InterestRequest, error) {
	req := db.InterestRequest{
		FromID:  fromID,
		ToID:    toID,
		Message: message,
		Status:  db.RequestStatusPending,
	}
	if err := r.db.WithContext(ctx).Create(&req).Error; err != nil {
		return nil, err
	}
	return &req, nil
}

// InterestExists checks whether any interest request from -> to exists,
// whatever its status. One request per ordered pair, ever.
func (r *RequestRepository) InterestExists(ctx context.Context, fromID, toID uint64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&db.InterestRequest{}).
		Where("from_id = ? AND to_id = ?", fromID, toID).
		Count(&count).Error
	return count > 0, err
}

// GetInterest fetches an interest request by id.
func (r *RequestRepository) GetInterest(ctx context.Context, id uint64) (*db.InterestRequest, error) {
	var req db.InterestRequest
	if err := r.db.WithContext(ctx).First(&req, id).Error; err != nil {
		return nil, err
	}
	return &req, nil
}

// ResolveInterest transitions a pending interest request to accepted or
// declined. The pending guard in the WHERE clause makes a double response
// lose cleanly instead of rewriting history.
func (r *RequestRepository) ResolveInterest(ctx context.Context, id uint64, status string) error {
	now := time.Now().UTC()
	res := r.db.WithContext(ctx).
		Model(&db.InterestRequest{}).
		Where("id = ? AND status = ?", id, db.RequestStatusPending).
		Updates(map[string]interface{}{
			"status":       status,
			"responded_at": now,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// CreateChatRequest writes a new chat request against a match.
func (r *RequestRepository) CreateChatRequest(
	ctx context.Context,
	matchID, fromID uint64,
	message string,
) (*db.ChatRequest, error) {
	req := db.ChatRequest{
		MatchID: matchID,
		FromID:  fromID,
		Message: message,
		Status:  db.RequestStatusPending,
	}
	if err := r.db.WithContext(ctx).Create(&req).Error; err != nil {
		return nil, err
	}
	return &req, nil
}

// ChatRequestExists checks whether the profile already requested chat on
// the match.
func (r *RequestRepository) ChatRequestExists(ctx context.Context, matchID, fromID uint64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&db.ChatRequest{}).
		Where("match_id = ? AND from_id = ?", matchID, fromID).
		Count(&count).Error
	return count > 0, err
}

// GetChatRequest fetches a chat request by id.
func (r *RequestRepository) GetChatRequest(ctx context.Context, id uint64) (*db.ChatRequest, error) {
	var req db.ChatRequest
	if err := r.db.WithContext(ctx).First(&req, id).Error; err != nil {
		return nil, err
	}
	return &req, nil
}

// ResolveChatRequest transitions a pending chat request, with the same
// pending guard as interest requests.
func (r *RequestRepository) ResolveChatRequest(ctx context.Context, id uint64, status string) error {
	now := time.Now().UTC()
	res := r.db.WithContext(ctx).
		Model(&db.ChatRequest{}).
		Where("id = ? AND status = ?", id, db.RequestStatusPending).
		Updates(map[string]interface{}{
			"status":       status,
			"responded_at": now,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
