package notifications

import (
	"net/http"

	"linkpage-app/database"
	"linkpage-app/internal/domain/notifications"

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

// GET /notifications
func List(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	var list []notifications.Notification
	if err := database.DB.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&list).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load notifications"})
		return
	}

	c.JSON(http.StatusOK, list)
}

// POST /notifications/:id/read
func MarkRead(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	res := database.DB.Model(&notifications.Notification{}).
		Where("id = ? AND user_id = ?", c.Param("id"), userID).
		Update("read", true)
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update notification"})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Notification not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Marked as read"})
}

// DELETE /notifications
func ClearAll(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	if err := database.DB.
		Where("user_id = ?", userID).
		Delete(&notifications.Notification{}).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear notifications"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Notifications cleared"})
}
