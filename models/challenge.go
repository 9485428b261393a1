package models

import "time"

type ChallengeType string

const (
	ChallengeDaily   ChallengeType = "daily"
	ChallengeWeekly  ChallengeType = "weekly"
	ChallengeMonthly ChallengeType = "monthly"
)

type Challenge struct {
	ID          string        `gorm:"primaryKey" json:"id"`
	Title       string        `gorm:"not null" json:"title"`
	Description string        `json:"description"`
	Goal        int           `gorm:"not null" json:"goal"`
	Reward      int           `json:"reward"` // loyalty points on completion
	Type        ChallengeType `gorm:"type:VARCHAR(10)" json:"type"`
	IsActive    bool          `gorm:"default:true" json:"is_active"`
	CreatedAt   time.Time     `json:"created_at"`
}

// UserChallenge is a user's progress against one challenge.
type UserChallenge struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	UserID          string    `gorm:"uniqueIndex:idx_user_challenge" json:"user_id"`
	ChallengeID     string    `gorm:"uniqueIndex:idx_user_challenge" json:"challenge_id"`
	CurrentProgress int       `json:"current_progress"`
	IsCompleted     bool      `json:"is_completed"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type LoyaltyTier string

const (
	TierBronze   LoyaltyTier = "bronze"
	TierSilver   LoyaltyTier = "silver"
	TierGold     LoyaltyTier = "gold"
	TierPlatinum LoyaltyTier = "platinum"
)

type LoyaltyPoints struct {
	UserID      string    `gorm:"primaryKey" json:"user_id"`
	TotalPoints int       `json:"total_points"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Tier buckets total points into the four loyalty levels.
func (lp LoyaltyPoints) Tier() LoyaltyTier {
	switch {
	case lp.TotalPoints >= 3000:
		return TierPlatinum
	case lp.TotalPoints >= 1500:
		return TierGold
	case lp.TotalPoints >= 500:
		return TierSilver
	default:
		return TierBronze
	}
}
