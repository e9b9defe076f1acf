package pages

import "linkpage-app/internal/domain/pages"

type CreatePageRequest struct {
	Username string `json:"username" binding:"required"`
	Name     string `json:"name"`
	Bio      string `json:"bio"`
	Theme    string `json:"theme"`
	Template string `json:"template"`
}

type UpdatePageRequest struct {
	Name          *string `json:"name"`
	Bio           *string `json:"bio"`
	Avatar        *string `json:"avatar"`
	Cover         *string `json:"cover"`
	CoverPosition *int    `json:"cover_position"`
	Theme         *string `json:"theme"`
	IsMain        *bool   `json:"is_main_page"`
}

type UpdateUsernameRequest struct {
	Username string `json:"username" binding:"required"`
}

type CheckUsernameResponse struct {
	Username   string `json:"username"`
	Available  bool   `json:"available"`
	Suggestion string `json:"suggestion,omitempty"`
}

// PublicPageDTO is the shape served on the public page endpoint. Owner-only
// fields (user_id, brand_status) are stripped.
type PublicPageDTO struct {
	Username      string        `json:"username"`
	Name          string        `json:"name"`
	Bio           string        `json:"bio"`
	Avatar        *string       `json:"avatar,omitempty"`
	Cover         *string       `json:"cover,omitempty"`
	CoverPosition int           `json:"cover_position"`
	Theme         string        `json:"theme"`
	IsVerified    bool          `json:"is_verified"`
	IsBrand       bool          `json:"is_brand"`
	Blocks        []PublicBlock `json:"blocks"`
}

type PublicBlock struct {
	ID      string      `json:"id"`
	Order   int         `json:"order"`
	Type    string      `json:"block_type"`
	Content interface{} `json:"content"`
}

func toPublicDTO(p pages.Page) PublicPageDTO {
	out := PublicPageDTO{
		Username:      p.Username,
		Name:          p.Name,
		Bio:           p.Bio,
		Avatar:        p.Avatar,
		Cover:         p.Cover,
		CoverPosition: p.CoverPosition,
		Theme:         p.Theme,
		IsVerified:    p.IsVerified,
		IsBrand:       p.IsBrand,
		Blocks:        make([]PublicBlock, 0, len(p.Blocks)),
	}
	for _, b := range p.Blocks {
		out.Blocks = append(out.Blocks, PublicBlock{
			ID:      b.ID,
			Order:   b.SortIndex,
			Type:    b.Type,
			Content: b.Content,
		})
	}
	return out
}
