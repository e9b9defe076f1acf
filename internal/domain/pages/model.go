package pages

import (
	"time"

	"linkpage-app/internal/domain/blocks"
)

// Brand status values a page moves through while a brand verification
// request is under review.
const (
	BrandStatusNone     = ""
	BrandStatusPending  = "pending"
	BrandStatusVerified = "verified"
	BrandStatusRejected = "rejected"
)

type Page struct {
	ID string `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`

	UserID uint `gorm:"not null;index" json:"user_id"`

	Username string `gorm:"not null;uniqueIndex" json:"username"`
	Name     string `gorm:"not null" json:"name"`
	Bio      string `json:"bio"`

	Avatar        *string `json:"avatar,omitempty"`
	Cover         *string `json:"cover,omitempty"`
	CoverPosition int     `gorm:"not null;default:50" json:"cover_position"`
	Theme         string  `gorm:"not null;default:'dark'" json:"theme"`

	IsMain      bool   `gorm:"not null;default:false;index" json:"is_main_page"`
	IsVerified  bool   `gorm:"not null;default:false" json:"is_verified"`
	IsBrand     bool   `gorm:"not null;default:false" json:"is_brand"`
	BrandStatus string `gorm:"not null;default:''" json:"brand_status"`

	Blocks []blocks.Block `gorm:"foreignKey:PageID;references:ID;constraint:OnDelete:CASCADE;" json:"blocks,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ReservedUsername blocks a public name from registration (admin-managed).
type ReservedUsername struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Username  string    `gorm:"not null;uniqueIndex" json:"username"`
	CreatedAt time.Time `json:"created_at"`
}
