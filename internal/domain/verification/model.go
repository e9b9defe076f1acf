package verification

import (
	"encoding/json"
	"time"
)

const (
	TypePersonal = "personal"
	TypeBrand    = "brand"
)

const (
	StatusPending   = "pending"
	StatusApproved  = "approved"
	StatusRejected  = "rejected"
	StatusCancelled = "cancelled"
	StatusRevoked   = "revoked"
)

// Request is one identity (personal) or brand verification submission.
// Personal requests are owned by the user, brand requests by one of the
// user's pages. SocialLinks holds the same platform-tagged link shape the
// classifier produces for blocks.
type Request struct {
	ID string `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`

	UserID uint    `gorm:"not null;index" json:"user_id"`
	PageID *string `gorm:"type:uuid;index" json:"page_id,omitempty"`

	ReqType string `gorm:"not null;default:'personal';index" json:"req_type"`
	Status  string `gorm:"not null;default:'pending';index" json:"status"`

	FullName    string `gorm:"not null" json:"full_name"`
	ContactInfo string `json:"contact_info,omitempty"`
	Comment     string `json:"comment,omitempty"`
	Category    string `json:"category,omitempty"`
	Website     string `json:"website,omitempty"`

	SocialLinks json.RawMessage `gorm:"type:jsonb;not null;default:'[]'" json:"social_links"`

	RejectionReason *string `json:"rejection_reason,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
