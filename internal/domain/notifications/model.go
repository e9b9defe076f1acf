package notifications

import "time"

const (
	TypeVerification = "verification"
	TypeBroadcast    = "broadcast"
)

// Notification is one inbox entry for a user, written by admin verification
// decisions and broadcasts. Consumers poll and fully replace local state.
type Notification struct {
	ID string `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`

	UserID uint   `gorm:"not null;index" json:"user_id"`
	Type   string `gorm:"not null;default:'broadcast'" json:"type"`

	Message string `gorm:"not null" json:"message"`
	Read    bool   `gorm:"not null;default:false" json:"read"`

	CreatedAt time.Time `json:"created_at"`
}
