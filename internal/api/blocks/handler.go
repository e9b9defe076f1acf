package blocks

import (
	"encoding/json"
	"errors"
	"net/http"

	"linkpage-app/database"
	"linkpage-app/internal/domain/blocks"
	"linkpage-app/internal/domain/pages"
	"linkpage-app/internal/domain/platform"
	"linkpage-app/internal/domain/session"

	"github.com/gin-gonic/gin"
)

func mustUserID(c *gin.Context) (uint, bool) {
	userID := c.GetUint("user_id")
	if userID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return 0, false
	}
	return userID, true
}

func mustOwnPage(c *gin.Context, pageID string) bool {
	userID, ok := mustUserID(c)
	if !ok {
		return false
	}

	var page pages.Page
	if err := database.DB.First(&page, "id = ?", pageID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Page not found"})
		return false
	}
	if page.UserID != userID && c.GetString("role") != session.RoleAdmin {
		c.JSON(http.StatusForbidden, gin.H{"error": "Access denied"})
		return false
	}
	return true
}

func mustOwnBlock(c *gin.Context, blockID string) (blocks.Block, bool) {
	var b blocks.Block
	if err := database.DB.First(&b, "id = ?", blockID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Block not found"})
		return blocks.Block{}, false
	}
	if !mustOwnPage(c, b.PageID) {
		return blocks.Block{}, false
	}
	return b, true
}

// writeEngineError maps engine errors onto HTTP statuses.
func writeEngineError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, blocks.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Block not found"})
	case blocks.IsValidation(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong"})
	}
}

// canonicalizeContent runs platform detection for link-bearing block types.
// This is the editor boundary: blocks are stored with the canonical url and
// the detected platform so public rendering never re-classifies.
func canonicalizeContent(blockType string, content json.RawMessage) json.RawMessage {
	switch blockType {
	case blocks.TypeLink:
		var c blocks.LinkContent
		if err := json.Unmarshal(content, &c); err != nil {
			return content
		}
		if res := platform.Classify(c.URL); res != nil {
			c.URL = res.CanonicalURL
			if c.Platform == "" {
				c.Platform = res.Platform
			}
		}
		out, err := json.Marshal(c)
		if err != nil {
			return content
		}
		return out

	case blocks.TypeSocialIcons:
		var c blocks.SocialIconsContent
		if err := json.Unmarshal(content, &c); err != nil {
			return content
		}
		for i, l := range c.Links {
			c.Links[i].URL = platform.ProfileURL(l.Platform, l.URL)
		}
		out, err := json.Marshal(c)
		if err != nil {
			return content
		}
		return out
	}
	return content
}

// POST /blocks
func CreateBlock(c *gin.Context) {
	var req CreateBlockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !mustOwnPage(c, req.PageID) {
		return
	}

	sortIndex := 0
	if req.Order != nil {
		sortIndex = *req.Order
	} else {
		var count int64
		if err := database.DB.Model(&blocks.Block{}).
			Where("page_id = ?", req.PageID).
			Count(&count).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create block"})
			return
		}
		sortIndex = int(count) // append to the end
	}

	content := canonicalizeContent(req.Type, req.Content)
	block, err := blocks.Create(database.DB, req.PageID, req.Type, content, sortIndex)
	if err != nil {
		writeEngineError(c, err)
		return
	}

	c.JSON(http.StatusCreated, block)
}

// PUT /blocks/:id
func UpdateBlock(c *gin.Context) {
	existing, ok := mustOwnBlock(c, c.Param("id"))
	if !ok {
		return
	}

	var req UpdateBlockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	content := canonicalizeContent(existing.Type, req.Content)
	block, err := blocks.UpdateContent(database.DB, existing.ID, content)
	if err != nil {
		writeEngineError(c, err)
		return
	}

	c.JSON(http.StatusOK, block)
}

// PATCH /blocks/reorder
func ReorderBlocks(c *gin.Context) {
	var req ReorderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !mustOwnPage(c, req.PageID) {
		return
	}

	if err := blocks.Reorder(database.DB, req.PageID, req.OrderedIDs); err != nil {
		writeEngineError(c, err)
		return
	}

	var ordered []blocks.Block
	if err := database.DB.
		Where("page_id = ?", req.PageID).
		Order("sort_index ASC").
		Find(&ordered).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load blocks"})
		return
	}

	c.JSON(http.StatusOK, ordered)
}

// DELETE /blocks/:id
func DeleteBlock(c *gin.Context) {
	existing, ok := mustOwnBlock(c, c.Param("id"))
	if !ok {
		return
	}

	if err := blocks.Delete(database.DB, existing.ID); err != nil {
		writeEngineError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Block deleted"})
}

// POST /classify  (live link editor helper; pure, no DB)
func ClassifyLink(c *gin.Context) {
	var req ClassifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.Platform != "" {
		c.JSON(http.StatusOK, platform.Result{
			Platform:     req.Platform,
			CanonicalURL: platform.ProfileURL(req.Platform, req.Input),
		})
		return
	}

	res := platform.Classify(req.Input)
	if res == nil {
		c.JSON(http.StatusOK, gin.H{"platform": nil})
		return
	}
	c.JSON(http.StatusOK, res)
}
