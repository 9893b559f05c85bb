package db

import (
	"time"
)

// Gender values stored on Profile. The pool builder assumes a binary
// complement: candidates for a male profile are female and vice versa.
const (
	GenderMale   = "male"
	GenderFemale = "female"
)

// Like types.
const (
	LikeTypeLike      = "like"
	LikeTypeSuperLike = "super_like"
)

// Match statuses.
const (
	MatchStatusActive    = "active"
	MatchStatusArchived  = "archived"
	MatchStatusUnmatched = "unmatched"
)

// Request statuses shared by InterestRequest and ChatRequest.
const (
	RequestStatusPending  = "pending"
	RequestStatusAccepted = "accepted"
	RequestStatusDeclined = "declined"
)

// Profile holds a member's demographic attributes plus the account flags
// the candidate pool filters on. Mutable attributes are owned by the
// member; the scorer only ever reads them.
type Profile struct {
	ID           uint64 `gorm:"primaryKey;autoIncrement"`
	Email        string `gorm:"uniqueIndex;size:128;not null"`
	PasswordHash string `gorm:"size:255;not null"`
	FullName     string `gorm:"size:128;not null"`

	Gender        string    `gorm:"size:16;not null;index:idx_pool,priority:1"`
	DateOfBirth   time.Time `gorm:"not null"`
	HeightCM      int       `gorm:"not null"`
	Religion      string    `gorm:"size:32"`
	Caste         string    `gorm:"size:64"`
	Education     string    `gorm:"size:64"`
	Profession    string    `gorm:"size:64"`
	City          string    `gorm:"size:64"`
	State         string    `gorm:"size:64"`
	Country       string    `gorm:"size:64;default:India"`
	Diet          string    `gorm:"size:32"`
	MaritalStatus string    `gorm:"size:32"`

	// No column defaults on the flags: GORM omits zero-value fields on
	// insert when a default is declared, so a profile created with
	// Active=false would be stored active. Creation sites set the flags
	// explicitly.
	Active   bool `gorm:"not null;index:idx_pool,priority:2"`
	Approved bool `gorm:"not null;index:idx_pool,priority:3"`
	Banned   bool `gorm:"not null;index:idx_pool,priority:4"`
	Premium  bool `gorm:"not null"`

	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

// PartnerPreference is the one-to-one preference record the scorer reads.
//
// Convention: a zero range bound or an empty list means "no constraint" on
// that dimension, which scores as a full 100. This is deliberate — an
// incomplete preference record must never fail a ranking request.
type PartnerPreference struct {
	ProfileID uint64 `gorm:"primaryKey"`

	AgeFrom    int `gorm:"default:0"`
	AgeTo      int `gorm:"default:0"`
	HeightFrom int `gorm:"default:0"`
	HeightTo   int `gorm:"default:0"`

	Religion      StringList `gorm:"type:json"`
	Caste         StringList `gorm:"type:json"`
	CasteNoBar    bool       `gorm:"default:false"`
	Education     StringList `gorm:"type:json"`
	Country       StringList `gorm:"type:json"`
	State         StringList `gorm:"type:json"`
	City          StringList `gorm:"type:json"`
	Diet          StringList `gorm:"type:json"`
	MaritalStatus StringList `gorm:"type:json"`

	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

// Like is a directed interest edge from one profile to another.
//
// Composite PK: (FromID, ToID)
//   - At most one like per ordered pair; the reverse edge is a separate row.
//
// Indexes:
//   - idx_to_created_from(to_id, created_at DESC, from_id)
//     Optimizes "who liked me" listings with cursor pagination.
//
// A like is the event that triggers the reciprocity check; the reverse
// lookup is a PK hit.
type Like struct {
	FromID    uint64    `gorm:"primaryKey"`
	ToID      uint64    `gorm:"primaryKey;index:idx_to_created_from,priority:1"`
	LikeType  string    `gorm:"size:20;not null;default:like"`
	Message   string    `gorm:"size:500"`
	CreatedAt time.Time `gorm:"autoCreateTime;index:idx_to_created_from,priority:2,sort:desc"`
}

// Pass is a directed skip edge. It only affects future pool building.
type Pass struct {
	FromID    uint64    `gorm:"primaryKey"`
	ToID      uint64    `gorm:"primaryKey"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

// BlockedProfile excludes both directions from each other's pools.
// Blocking is forward-looking: existing matches are left untouched.
type BlockedProfile struct {
	BlockerID uint64    `gorm:"primaryKey"`
	BlockedID uint64    `gorm:"primaryKey;index"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

// Match is the canonical record for a mutual connection.
//
// Profile1ID always holds the numerically smaller profile id, so (A,B) and
// (B,A) resolve to the same row. The composite unique index is what makes
// concurrent match creation safe: both racing creators hit the same key and
// the loser reads the winner's row back.
type Match struct {
	ID         uint64 `gorm:"primaryKey;autoIncrement"`
	Profile1ID uint64 `gorm:"not null;uniqueIndex:idx_match_pair,priority:1"`
	Profile2ID uint64 `gorm:"not null;uniqueIndex:idx_match_pair,priority:2;index"`

	Status       string `gorm:"size:20;not null;default:active;index"`
	UnmatchedBy  *uint64
	ChatUnlocked bool `gorm:"default:false"`

	MatchedAt      time.Time `gorm:"autoCreateTime"`
	UnmatchedAt    *time.Time
	ChatUnlockedAt *time.Time
}

// OtherProfile returns the counterpart of the given participant.
func (m *Match) OtherProfile(profileID uint64) uint64 {
	if m.Profile1ID == profileID {
		return m.Profile2ID
	}
	return m.Profile1ID
}

// HasParticipant reports whether the profile is one of the two sides.
func (m *Match) HasParticipant(profileID uint64) bool {
	return m.Profile1ID == profileID || m.Profile2ID == profileID
}

// InterestRequest is the formal interest signal. Accepting one creates
// reciprocal likes so that it converges onto the same match-formation path
// as a direct mutual like.
type InterestRequest struct {
	ID     uint64 `gorm:"primaryKey;autoIncrement"`
	FromID uint64 `gorm:"not null;uniqueIndex:idx_interest_pair,priority:1"`
	ToID   uint64 `gorm:"not null;uniqueIndex:idx_interest_pair,priority:2;index"`

	Message string `gorm:"size:1000"`
	Status  string `gorm:"size:20;not null;default:pending"`

	CreatedAt   time.Time `gorm:"autoCreateTime"`
	RespondedAt *time.Time
}

// ChatRequest asks the other side of a match to unlock chat. Accepting it
// flips the match's ChatUnlocked flag; the flag never reverts.
type ChatRequest struct {
	ID      uint64 `gorm:"primaryKey;autoIncrement"`
	MatchID uint64 `gorm:"not null;uniqueIndex:idx_chat_request,priority:1"`
	FromID  uint64 `gorm:"not null;uniqueIndex:idx_chat_request,priority:2"`

	Message string `gorm:"size:500"`
	Status  string `gorm:"size:20;not null;default:pending"`

	CreatedAt   time.Time `gorm:"autoCreateTime"`
	RespondedAt *time.Time
}
