package blocks

import (
	"encoding/json"
	"time"
)

// Block is one ordered unit of page content. Content is opaque to the
// ordering engine apart from the per-type shape check at creation time.
type Block struct {
	ID string `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`

	PageID    string `gorm:"type:uuid;not null;index" json:"page_id"`
	SortIndex int    `gorm:"not null;default:0;index" json:"order"`

	Type    string          `gorm:"not null;index" json:"block_type"`
	Content json.RawMessage `gorm:"type:jsonb;not null;default:'{}'" json:"content"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
