package users

import (
	"net/http"

	"linkpage-app/database"
	"linkpage-app/internal/domain/notifications"
	"linkpage-app/internal/domain/pages"
	"linkpage-app/internal/domain/users"
	"linkpage-app/internal/domain/verification"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GET /me
func GetCurrentUser(c *gin.Context) {
	userID := c.GetUint("user_id")
	if userID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var user users.User
	if err := database.DB.First(&user, userID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	var pageList []pages.Page
	database.DB.
		Where("user_id = ?", user.ID).
		Order("is_main DESC, created_at ASC").
		Find(&pageList)

	resp := MeResponse{
		User: UserDTO{
			ID:                 user.ID,
			Email:              user.Email,
			Name:               user.Name,
			Role:               user.Role,
			AuthProvider:       user.AuthProvider,
			IsVerified:         user.IsVerified,
			VerificationStatus: user.VerificationStatus,
		},
		Pages: make([]PageSummaryDTO, 0, len(pageList)),
	}
	for _, p := range pageList {
		resp.Pages = append(resp.Pages, PageSummaryDTO{
			ID:         p.ID,
			Username:   p.Username,
			Name:       p.Name,
			IsMain:     p.IsMain,
			IsVerified: p.IsVerified,
			IsBrand:    p.IsBrand,
		})
	}

	c.JSON(http.StatusOK, resp)
}

// PUT /me
func UpdateMe(c *gin.Context) {
	userID := c.GetUint("user_id")
	if userID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var input struct {
		Name *string `json:"name"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	var user users.User
	if err := database.DB.First(&user, userID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	if input.Name != nil {
		user.Name = *input.Name
	}
	if err := database.DB.Save(&user).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update user"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Profile updated"})
}

// DELETE /me
func DeleteMyAccount(c *gin.Context) {
	userID := c.GetUint("user_id")
	if userID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", userID).Delete(&pages.Page{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", userID).Delete(&verification.Request{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", userID).Delete(&notifications.Notification{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", userID).Delete(&users.PasswordResetToken{}).Error; err != nil {
			return err
		}
		return tx.Delete(&users.User{}, userID).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete account"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Account deleted"})
}
