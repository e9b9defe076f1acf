package verification

import (
	"encoding/json"

	"linkpage-app/internal/domain/verification"
)

type SubmitRequest struct {
	ReqType     string          `json:"req_type"`
	PageID      *string         `json:"page_id"`
	FullName    string          `json:"full_name" binding:"required"`
	ContactInfo string          `json:"contact_info"`
	Comment     string          `json:"comment"`
	Category    string          `json:"category"`
	Website     string          `json:"website"`
	SocialLinks json.RawMessage `json:"social_links"`
}

type RejectRequest struct {
	Reason string `json:"reason" binding:"required"`
}

type CancelRequest struct {
	Reason string `json:"reason"`
}

// AdminRequestDTO enriches a request with the submitting user's email and
// the target page's public username for the review queue.
type AdminRequestDTO struct {
	verification.Request
	UserEmail    string `json:"user_email,omitempty"`
	PageUsername string `json:"page_username,omitempty"`
}
