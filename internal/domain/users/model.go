package users

import "time"

type User struct {
	ID           uint    `gorm:"primaryKey"`
	Name         string
	Email        string  `gorm:"not null;uniqueIndex:idx_users_email"`
	Password     *string `gorm:""`
	AuthProvider string  `gorm:"type:varchar(20);not null;default:'local'"`
	GoogleSub    *string `gorm:"uniqueIndex:idx_users_google_sub"`
	Role         string  `gorm:"not null;default:'user'"`

	// Identity verification, driven by the verification request lifecycle.
	IsVerified         bool
	VerificationStatus string `gorm:"not null;default:''"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
