package admin

import (
	"net/http"

	"linkpage-app/database"
	"linkpage-app/internal/domain/blocks"
	"linkpage-app/internal/domain/notifications"
	"linkpage-app/internal/domain/pages"
	"linkpage-app/internal/domain/users"
	"linkpage-app/internal/domain/verification"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GET /admin/stats
func Stats(c *gin.Context) {
	var userCount, pageCount, blockCount, pendingVerifications int64

	database.DB.Model(&users.User{}).Count(&userCount)
	database.DB.Model(&pages.Page{}).Count(&pageCount)
	database.DB.Model(&blocks.Block{}).Count(&blockCount)
	database.DB.Model(&verification.Request{}).
		Where("status = ?", verification.StatusPending).
		Count(&pendingVerifications)

	c.JSON(http.StatusOK, gin.H{
		"users":                 userCount,
		"pages":                 pageCount,
		"blocks":                blockCount,
		"pending_verifications": pendingVerifications,
	})
}

// GET /admin/users
func ListUsers(c *gin.Context) {
	var list []users.User
	if err := database.DB.Order("created_at DESC").Find(&list).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load users"})
		return
	}

	type userRow struct {
		ID                 uint   `json:"id"`
		Name               string `json:"name"`
		Email              string `json:"email"`
		Role               string `json:"role"`
		AuthProvider       string `json:"auth_provider"`
		IsVerified         bool   `json:"is_verified"`
		VerificationStatus string `json:"verification_status"`
	}

	out := make([]userRow, 0, len(list))
	for _, u := range list {
		out = append(out, userRow{
			ID:                 u.ID,
			Name:               u.Name,
			Email:              u.Email,
			Role:               u.Role,
			AuthProvider:       u.AuthProvider,
			IsVerified:         u.IsVerified,
			VerificationStatus: u.VerificationStatus,
		})
	}
	c.JSON(http.StatusOK, out)
}

// DELETE /admin/users/:id
func DeleteUser(c *gin.Context) {
	id := c.Param("id")

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", id).Delete(&pages.Page{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", id).Delete(&verification.Request{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", id).Delete(&notifications.Notification{}).Error; err != nil {
			return err
		}
		res := tx.Delete(&users.User{}, "id = ?", id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
	if err == gorm.ErrRecordNotFound {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete user"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "User deleted"})
}

// POST /admin/notify
//
// Sends a broadcast message to an explicit user id list, an email list, or
// everyone. Each recipient gets their own notification row.
func Notify(c *gin.Context) {
	var input struct {
		Message  string   `json:"message" binding:"required"`
		UserIDs  []uint   `json:"user_ids"`
		Emails   []string `json:"emails"`
		AllUsers bool     `json:"all_users"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var targetIDs []uint
	switch {
	case input.AllUsers:
		if err := database.DB.Model(&users.User{}).Pluck("id", &targetIDs).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load users"})
			return
		}
	case len(input.UserIDs) > 0:
		targetIDs = input.UserIDs
	case len(input.Emails) > 0:
		if err := database.DB.Model(&users.User{}).
			Where("email IN ?", input.Emails).
			Pluck("id", &targetIDs).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load users"})
			return
		}
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "Provide user_ids, emails or all_users"})
		return
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		for _, id := range targetIDs {
			n := notifications.Notification{
				UserID:  id,
				Type:    notifications.TypeBroadcast,
				Message: input.Message,
			}
			if err := tx.Create(&n).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to send notifications"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"sent": len(targetIDs)})
}

// GET /admin/reserved-usernames
func ListReservedUsernames(c *gin.Context) {
	var list []pages.ReservedUsername
	if err := database.DB.Order("username ASC").Find(&list).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load reserved usernames"})
		return
	}
	c.JSON(http.StatusOK, list)
}

// POST /admin/reserved-usernames
func AddReservedUsername(c *gin.Context) {
	var input struct {
		Username string `json:"username" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	entry := pages.ReservedUsername{Username: pages.NormalizeUsername(input.Username)}
	if err := database.DB.Create(&entry).Error; err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Username already reserved"})
		return
	}
	c.JSON(http.StatusCreated, entry)
}

// DELETE /admin/reserved-usernames/:id
func DeleteReservedUsername(c *gin.Context) {
	res := database.DB.Delete(&pages.ReservedUsername{}, "id = ?", c.Param("id"))
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete reserved username"})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Reserved username not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Reserved username deleted"})
}
