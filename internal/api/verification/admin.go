package verification

import (
	"errors"
	"net/http"

	"linkpage-app/database"
	"linkpage-app/internal/domain/pages"
	"linkpage-app/internal/domain/users"
	"linkpage-app/internal/domain/verification"

	"github.com/gin-gonic/gin"
)

// writeLifecycleError maps domain errors from the lifecycle store onto HTTP
// statuses shared by all the admin handlers below.
func writeLifecycleError(c *gin.Context, err error) {
	var te *verification.TransitionError
	switch {
	case errors.Is(err, verification.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Request not found"})
	case errors.Is(err, verification.ErrReasonRequired):
		c.JSON(http.StatusBadRequest, gin.H{"error": "A rejection reason is required"})
	case errors.As(err, &te):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong"})
	}
}

// GET /admin/verification/requests?status=pending
func ListRequests(c *gin.Context) {
	query := database.DB.Model(&verification.Request{}).Order("created_at DESC")
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	if reqType := c.Query("req_type"); reqType != "" {
		query = query.Where("req_type = ?", reqType)
	}

	var reqs []verification.Request
	if err := query.Find(&reqs).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load requests"})
		return
	}

	out := make([]AdminRequestDTO, 0, len(reqs))
	for _, r := range reqs {
		dto := AdminRequestDTO{Request: r}

		var user users.User
		if err := database.DB.Select("email").First(&user, r.UserID).Error; err == nil {
			dto.UserEmail = user.Email
		}
		if r.PageID != nil {
			var page pages.Page
			if err := database.DB.Select("username").First(&page, "id = ?", *r.PageID).Error; err == nil {
				dto.PageUsername = page.Username
			}
		}
		out = append(out, dto)
	}

	c.JSON(http.StatusOK, out)
}

// POST /admin/verification/requests/:id/approve
func ApproveRequest(c *gin.Context) {
	req, err := verification.Approve(database.DB, c.Param("id"))
	if err != nil {
		writeLifecycleError(c, err)
		return
	}
	c.JSON(http.StatusOK, req)
}

// POST /admin/verification/requests/:id/reject
func RejectRequestHandler(c *gin.Context) {
	var body RejectRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "A rejection reason is required"})
		return
	}

	req, err := verification.Reject(database.DB, c.Param("id"), body.Reason)
	if err != nil {
		writeLifecycleError(c, err)
		return
	}
	c.JSON(http.StatusOK, req)
}

// POST /admin/verification/requests/:id/cancel
func CancelRequestHandler(c *gin.Context) {
	var body CancelRequest
	// reason is optional for revocation
	_ = c.ShouldBindJSON(&body)

	req, err := verification.Cancel(database.DB, c.Param("id"), body.Reason)
	if err != nil {
		writeLifecycleError(c, err)
		return
	}
	c.JSON(http.StatusOK, req)
}

// POST /admin/verification/requests/:id/resume
func ResumeRequest(c *gin.Context) {
	req, err := verification.Resume(database.DB, c.Param("id"))
	if err != nil {
		writeLifecycleError(c, err)
		return
	}
	c.JSON(http.StatusOK, req)
}

// DELETE /admin/verification/requests/:id
func DeleteRequest(c *gin.Context) {
	if err := verification.DeleteRequest(database.DB, c.Param("id")); err != nil {
		writeLifecycleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Request deleted"})
}
