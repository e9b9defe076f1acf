package pages

import (
	"errors"
	"net/http"

	"linkpage-app/database"
	"linkpage-app/internal/domain/pages"
	"linkpage-app/internal/domain/session"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func mustUserID(c *gin.Context) (uint, bool) {
	userID := c.GetUint("user_id")
	if userID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return 0, false
	}
	return userID, true
}

// writeUsernameError separates the taken-name conflict from genuine DB
// failures coming out of the create/rename transactions.
func writeUsernameError(c *gin.Context, err error) {
	if errors.Is(err, pages.ErrUsernameTaken) {
		c.JSON(http.StatusConflict, gin.H{"error": "Username is taken"})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong"})
}

// loadOwnedPage fetches a page and checks it belongs to the caller. Admins
// pass the ownership check for moderation endpoints.
func loadOwnedPage(c *gin.Context, pageID string) (pages.Page, bool) {
	userID, ok := mustUserID(c)
	if !ok {
		return pages.Page{}, false
	}

	var page pages.Page
	if err := database.DB.First(&page, "id = ?", pageID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Page not found"})
		return pages.Page{}, false
	}
	if page.UserID != userID && c.GetString("role") != session.RoleAdmin {
		c.JSON(http.StatusForbidden, gin.H{"error": "Access denied"})
		return pages.Page{}, false
	}
	return page, true
}

// POST /pages
func CreatePage(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	var req CreatePageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	username := pages.NormalizeUsername(req.Username)
	if err := pages.ValidateUsername(username); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var page pages.Page
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		available, err := pages.UsernameAvailable(tx, username)
		if err != nil {
			return err
		}
		if !available {
			return pages.ErrUsernameTaken
		}

		var count int64
		if err := tx.Model(&pages.Page{}).Where("user_id = ?", userID).Count(&count).Error; err != nil {
			return err
		}

		name := req.Name
		if name == "" {
			name = username
		}
		theme := req.Theme
		if theme == "" {
			theme = "dark"
		}
		page = pages.Page{
			UserID:   userID,
			Username: username,
			Name:     name,
			Bio:      req.Bio,
			Theme:    theme,
			IsMain:   count == 0, // first page becomes the main one
		}
		if err := tx.Create(&page).Error; err != nil {
			return err
		}

		if req.Template != "" {
			return pages.SeedStarterBlocks(tx, page.ID, req.Template)
		}
		return nil
	})
	if err != nil {
		writeUsernameError(c, err)
		return
	}

	c.JSON(http.StatusCreated, page)
}

// GET /pages
func ListMyPages(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	var pageList []pages.Page
	err := database.DB.
		Where("user_id = ?", userID).
		Preload("Blocks", func(db *gorm.DB) *gorm.DB {
			return db.Order("sort_index ASC")
		}).
		Order("is_main DESC, created_at ASC").
		Find(&pageList).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load pages"})
		return
	}

	c.JSON(http.StatusOK, pageList)
}

// GET /pages/:id
func GetPage(c *gin.Context) {
	page, ok := loadOwnedPage(c, c.Param("id"))
	if !ok {
		return
	}

	if err := database.DB.
		Preload("Blocks", func(db *gorm.DB) *gorm.DB {
			return db.Order("sort_index ASC")
		}).
		First(&page, "id = ?", page.ID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load page"})
		return
	}

	c.JSON(http.StatusOK, page)
}

// GET /p/:username  (public)
func GetPublicPage(c *gin.Context) {
	username := pages.NormalizeUsername(c.Param("username"))

	var page pages.Page
	err := database.DB.
		Where("username = ?", username).
		Preload("Blocks", func(db *gorm.DB) *gorm.DB {
			return db.Order("sort_index ASC")
		}).
		First(&page).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Page not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load page"})
		return
	}

	c.JSON(http.StatusOK, toPublicDTO(page))
}

// PUT /pages/:id
func UpdatePage(c *gin.Context) {
	page, ok := loadOwnedPage(c, c.Param("id"))
	if !ok {
		return
	}

	var req UpdatePageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.Name != nil {
		page.Name = *req.Name
	}
	if req.Bio != nil {
		page.Bio = *req.Bio
	}
	if req.Avatar != nil {
		page.Avatar = req.Avatar
	}
	if req.Cover != nil {
		page.Cover = req.Cover
	}
	if req.CoverPosition != nil {
		page.CoverPosition = *req.CoverPosition
	}
	if req.Theme != nil {
		page.Theme = *req.Theme
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if req.IsMain != nil && *req.IsMain && !page.IsMain {
			// only one main page per user
			if err := tx.Model(&pages.Page{}).
				Where("user_id = ?", page.UserID).
				Update("is_main", false).Error; err != nil {
				return err
			}
			page.IsMain = true
		}
		return tx.Save(&page).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update page"})
		return
	}

	c.JSON(http.StatusOK, page)
}

// PUT /pages/:id/username
func UpdateUsername(c *gin.Context) {
	page, ok := loadOwnedPage(c, c.Param("id"))
	if !ok {
		return
	}

	var req UpdateUsernameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	username := pages.NormalizeUsername(req.Username)
	if err := pages.ValidateUsername(username); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if username == page.Username {
		c.JSON(http.StatusOK, page)
		return
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		available, err := pages.UsernameAvailable(tx, username)
		if err != nil {
			return err
		}
		if !available {
			return pages.ErrUsernameTaken
		}
		page.Username = username
		return tx.Save(&page).Error
	})
	if err != nil {
		writeUsernameError(c, err)
		return
	}

	c.JSON(http.StatusOK, page)
}

// DELETE /pages/:id
func DeletePage(c *gin.Context) {
	page, ok := loadOwnedPage(c, c.Param("id"))
	if !ok {
		return
	}

	if err := database.DB.Select("Blocks").Delete(&page).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete page"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Page deleted"})
}

// GET /check-username?username=...  (public)
func CheckUsername(c *gin.Context) {
	raw := c.Query("username")
	username := pages.NormalizeUsername(raw)

	resp := CheckUsernameResponse{Username: username}

	if err := pages.ValidateUsername(username); err != nil {
		resp.Suggestion = pages.MakeSuggestion(raw)
		c.JSON(http.StatusOK, resp)
		return
	}

	available, err := pages.UsernameAvailable(database.DB, username)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check username"})
		return
	}
	resp.Available = available
	if !available {
		resp.Suggestion = pages.MakeSuggestion(raw)
	}
	c.JSON(http.StatusOK, resp)
}
