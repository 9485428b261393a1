package models

import "time"

type UserRole string

const (
	RoleCliente UserRole = "CLIENTE"
	RoleAdmin   UserRole = "ADMIN"
	RoleNutri   UserRole = "NUTRI"
	RoleStaff   UserRole = "STAFF"
)

type User struct {
	ID           string    `gorm:"primaryKey" json:"id"`
	Email        string    `gorm:"unique;not null" json:"email"`
	PasswordHash string    `gorm:"not null" json:"-"`
	Name         string    `json:"name"`
	Role         UserRole  `gorm:"type:VARCHAR(10);default:'CLIENTE'" json:"role"`
	Avatar       string    `json:"avatar,omitempty"`
	Profile      Profile   `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"profile"`
	Orders       []Order   `gorm:"foreignKey:UserID;constraint:OnDelete:SET NULL" json:"orders,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

type FitnessGoal string

const (
	GoalMuscleGain  FitnessGoal = "muscle_gain"
	GoalFatLoss     FitnessGoal = "fat_loss"
	GoalPerformance FitnessGoal = "performance"
)

// Profile holds the nutrition-facing attributes of a user.
type Profile struct {
	UserID              string      `gorm:"primaryKey" json:"user_id"`
	Goal                FitnessGoal `gorm:"type:VARCHAR(20)" json:"goal,omitempty"`
	Weight              *float64    `json:"weight,omitempty"`
	Height              *float64    `json:"height,omitempty"`
	ActivityLevel       string      `gorm:"type:VARCHAR(20)" json:"activity_level,omitempty"`
	DietaryRestrictions []string    `gorm:"serializer:json" json:"dietary_restrictions"`
	UpdatedAt           time.Time   `json:"updated_at"`
}

// GuestSession tracks an anonymous visitor so their cart survives restarts.
type GuestSession struct {
	ID        string    `gorm:"primaryKey"`
	ExpiresAt time.Time `gorm:"index"`
	CreatedAt time.Time
}
