package verification

import (
	"encoding/json"
	"errors"
	"net/http"

	"linkpage-app/database"
	"linkpage-app/internal/domain/verification"

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

// POST /verification/requests
func Submit(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	var input SubmitRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	reqType := input.ReqType
	if reqType == "" {
		reqType = verification.TypePersonal
	}
	if reqType != verification.TypePersonal && reqType != verification.TypeBrand {
		c.JSON(http.StatusBadRequest, gin.H{"error": "req_type must be 'personal' or 'brand'"})
		return
	}

	socialLinks := input.SocialLinks
	if len(socialLinks) == 0 {
		socialLinks = json.RawMessage(`[]`)
	}

	req := verification.Request{
		UserID:      userID,
		PageID:      input.PageID,
		ReqType:     reqType,
		FullName:    input.FullName,
		ContactInfo: input.ContactInfo,
		Comment:     input.Comment,
		Category:    input.Category,
		Website:     input.Website,
		SocialLinks: socialLinks,
	}

	err := verification.Submit(database.DB, &req)
	switch {
	case errors.Is(err, verification.ErrDuplicatePending):
		c.JSON(http.StatusConflict, gin.H{"error": "A verification request is already pending"})
		return
	case errors.Is(err, verification.ErrPageRequired):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Brand verification requires a page_id"})
		return
	case errors.Is(err, verification.ErrPageNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Page not found"})
		return
	case errors.Is(err, verification.ErrBrandNeedsVerifiedPage):
		c.JSON(http.StatusForbidden, gin.H{"error": "Brand verification requires an already verified page"})
		return
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to submit request"})
		return
	}

	c.JSON(http.StatusCreated, req)
}

// GET /verification/requests
func MyRequests(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	var reqs []verification.Request
	if err := database.DB.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&reqs).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load requests"})
		return
	}

	c.JSON(http.StatusOK, reqs)
}
