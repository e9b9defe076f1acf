package blocks

import "encoding/json"

type CreateBlockRequest struct {
	PageID  string          `json:"page_id" binding:"required"`
	Type    string          `json:"block_type" binding:"required"`
	Content json.RawMessage `json:"content"`
	Order   *int            `json:"order"`
}

type UpdateBlockRequest struct {
	Content json.RawMessage `json:"content" binding:"required"`
}

type ReorderRequest struct {
	PageID     string   `json:"page_id" binding:"required"`
	OrderedIDs []string `json:"ordered_ids" binding:"required"`
}

// ClassifyRequest feeds the live link editor: raw input in, detected
// platform + canonical url out.
type ClassifyRequest struct {
	Input    string `json:"input"`
	Platform string `json:"platform"`
}
